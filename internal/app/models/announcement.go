package models

import (
	"time"
)

// Announcement defines the announcement model based on the 'announcements' table.
// Announcements are created by teachers and are immutable once posted.
type Announcement struct {
	ID         int64     `json:"id" db:"id"`
	Title      string    `json:"title" db:"title"`
	Content    string    `json:"content" db:"content"`
	DatePosted time.Time `json:"datePosted" db:"date_posted"`
}
