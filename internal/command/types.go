package command

import "time"

// Config holds the links and locale shared by every handler.
type Config struct {
	MiniAppURL string
	SiteURL    string
	Location   *time.Location
}
