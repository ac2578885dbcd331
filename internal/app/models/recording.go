package models

import (
	"time"
)

// Recording defines the recording model based on the 'recordings' table.
// URL holds the sanitized filename inside the upload directory.
type Recording struct {
	ID           int64     `json:"id" db:"id"`
	Title        string    `json:"title" db:"title"`
	Description  *string   `json:"description,omitempty" db:"description"`
	URL          string    `json:"url" db:"url"`
	DateUploaded time.Time `json:"dateUploaded" db:"date_uploaded"`
}
