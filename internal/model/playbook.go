package model

import "time"

// FilePath is never serialized; downloads go through the handler so the
// count can be incremented and auth enforced.
type Playbook struct {
	ID            uint64    `gorm:"primaryKey" json:"id"`
	Title         string    `gorm:"size:255;not null" json:"title"`
	Brief         string    `gorm:"type:text" json:"brief"`
	Framework     string    `gorm:"size:100;not null" json:"framework"`
	Category      string    `gorm:"size:100;not null;default:Guide" json:"category"`
	FilePath      string    `gorm:"size:512;not null" json:"-"`
	FileName      string    `gorm:"size:255" json:"file_name"`
	FileType      string    `gorm:"size:16" json:"file_type"`
	DownloadCount int64     `gorm:"not null;default:0" json:"download_count"`
	CreatedAt     time.Time `json:"created_at"`
}
