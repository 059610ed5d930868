package hotspot

// Report is the hot-topic analysis returned to chat users and API clients.
type Report struct {
	Title    string `json:"title"`
	Summary  string `json:"summary"`
	Analysis string `json:"analysis"`
}
