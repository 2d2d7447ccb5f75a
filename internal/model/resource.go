package model

import "time"

const (
	AccessPublic      = "Public"
	AccessMembersOnly = "Members Only"
)

const (
	ResourceStatusPending  = "pending"
	ResourceStatusApproved = "approved"
	ResourceStatusRejected = "rejected"
)

var validResourceTypes = map[string]bool{
	"whitepaper":     true,
	"guide":          true,
	"tool":           true,
	"article":        true,
	"news":           true,
	"homepage video": true,
	"product":        true,
}

func ValidResourceType(t string) bool {
	return validResourceTypes[t]
}

type Resource struct {
	ID            uint64    `gorm:"primaryKey" json:"id"`
	Title         string    `gorm:"size:255;not null" json:"title"`
	Description   string    `gorm:"type:text" json:"description"`
	Type          string    `gorm:"size:32;not null" json:"type"`
	Access        string    `gorm:"size:16;not null;default:Public" json:"access"`
	Status        string    `gorm:"size:16;not null;default:pending" json:"status"`
	ExternalLink  string    `gorm:"size:512" json:"external_link"`
	FilePath      string    `gorm:"size:512" json:"file_path"`
	DownloadCount int64     `gorm:"not null;default:0" json:"download_count"`
	CategoryID    *uint64   `gorm:"index" json:"category_id"`
	Category      *Category `gorm:"constraint:OnDelete:SET NULL" json:"-"`
	SubmittedBy   *uint64   `json:"submitted_by"`
	CreatedAt     time.Time `json:"created_at"`
}
