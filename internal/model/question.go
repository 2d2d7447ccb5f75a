package model

import "time"

const (
	QuestionOpen     = "open"
	QuestionAnswered = "answered"
	QuestionClosed   = "closed"
)

func ValidQuestionStatus(s string) bool {
	return s == QuestionOpen || s == QuestionAnswered || s == QuestionClosed
}

type Question struct {
	ID         uint64    `gorm:"primaryKey" json:"id"`
	Title      string    `gorm:"size:255;not null" json:"title"`
	Details    string    `gorm:"type:text" json:"details"`
	Status     string    `gorm:"size:16;not null;default:open" json:"status"`
	UserID     *uint64   `gorm:"index" json:"user_id"`
	User       *User     `gorm:"constraint:OnDelete:SET NULL" json:"-"`
	CategoryID *uint64   `gorm:"index" json:"category_id"`
	Category   *Category `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	CreatedAt  time.Time `json:"created_at"`
}

type Answer struct {
	ID         uint64    `gorm:"primaryKey" json:"id"`
	QuestionID uint64    `gorm:"not null;index" json:"question_id"`
	Question   *Question `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	UserID     uint64    `gorm:"not null;index" json:"user_id"`
	User       *User     `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Content    string    `gorm:"type:text;not null" json:"content"`
	IsOfficial bool      `gorm:"not null;default:false" json:"is_official"`
	CreatedAt  time.Time `json:"created_at"`
}
