package model

import "time"

type Product struct {
	ID           uint64    `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"size:255;not null" json:"name"`
	Company      string    `gorm:"size:255" json:"company"`
	Description  string    `gorm:"type:text" json:"description"`
	DownloadLink string    `gorm:"size:512" json:"download_link"`
	CreatedAt    time.Time `json:"created_at"`
}

type ProductReview struct {
	ID         uint64    `gorm:"primaryKey" json:"id"`
	ProductID  uint64    `gorm:"not null;index;uniqueIndex:uk_product_user" json:"product_id"`
	Product    *Product  `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	UserID     uint64    `gorm:"not null;index;uniqueIndex:uk_product_user" json:"user_id"`
	User       *User     `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Stars      int       `gorm:"not null" json:"stars"`
	ReviewText string    `gorm:"type:text" json:"review_text"`
	CreatedAt  time.Time `json:"created_at"`
}

func (ProductReview) TableName() string {
	return "product_reviews"
}
