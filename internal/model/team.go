package model

import "time"

const (
	TeamLeadership = "leadership"
	TeamIndustrial = "industrial"
	TeamSecurity   = "security"
)

func ValidTeamCategory(c string) bool {
	return c == TeamLeadership || c == TeamIndustrial || c == TeamSecurity
}

type TeamMember struct {
	ID          uint64    `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:100;not null" json:"name"`
	Role        string    `gorm:"size:100;not null" json:"role"`
	Description string    `gorm:"type:text" json:"description"`
	ImageURL    string    `gorm:"size:512" json:"image_url"`
	LinkedinURL string    `gorm:"size:512" json:"linkedin_url"`
	Category    string    `gorm:"size:16;not null;default:leadership" json:"category"`
	CreatedAt   time.Time `json:"created_at"`
}
