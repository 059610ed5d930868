package usecase

// Config tunes the confidence gate.
type Config struct {
	// ConfidenceThreshold is exclusive; zero means DefaultConfidenceThreshold.
	ConfidenceThreshold float64
}
