package model

import "time"

const (
	EventUpcoming = "upcoming"
	EventPast     = "past"
)

// Event dates are free text ("Friday, 20th February, 2026"), not a
// normalized date column; listing orders on the raw string.
type Event struct {
	ID           uint64    `gorm:"primaryKey" json:"id"`
	Title        string    `gorm:"size:255;not null" json:"title"`
	Date         string    `gorm:"size:100;not null" json:"date"`
	Location     string    `gorm:"size:255;not null" json:"location"`
	Link         string    `gorm:"size:512" json:"link"`
	Type         string    `gorm:"size:16;not null;default:upcoming" json:"type"`
	Category     string    `gorm:"size:100" json:"category"`
	IsFeatured   bool      `gorm:"not null;default:false" json:"is_featured"`
	TeamsLink    string    `gorm:"size:512" json:"teams_link"`
	RecordingURL string    `gorm:"size:512" json:"recording_url"`
	CreatedAt    time.Time `json:"created_at"`
}
