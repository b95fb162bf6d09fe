package model

import "time"

// Plugin is a published plugin artifact available for download.
type Plugin struct {
	ID          int64
	Name        string
	Version     string
	Description *string
	FilePath    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
