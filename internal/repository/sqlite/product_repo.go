package sqlite

import (
	"AIGov_Community/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProductRepository struct {
	DB *gorm.DB
}

type ProductReviewRepository struct {
	DB *gorm.DB
}

// ProductRow is a product with its review aggregate.
type ProductRow struct {
	model.Product
	AvgRating   float64 `json:"avg_rating"`
	ReviewCount int64   `json:"review_count"`
}

type ReviewRow struct {
	model.ProductReview
	ReviewerName string `json:"reviewer_name"`
	ReviewerRole string `json:"reviewer_role"`
}

func (r *ProductRepository) List() ([]ProductRow, error) {
	var rows []ProductRow
	err := r.DB.Table("products").
		Select("products.*, ROUND(COALESCE(AVG(pr.stars), 0), 1) AS avg_rating, COUNT(pr.id) AS review_count").
		Joins("LEFT JOIN product_reviews pr ON pr.product_id = products.id").
		Group("products.id").
		Order("products.created_at DESC").
		Scan(&rows).Error
	return rows, err
}

func (r *ProductRepository) FindByID(id uint64) (*model.Product, error) {
	var p model.Product
	err := r.DB.First(&p, id).Error
	return &p, err
}

func (r *ProductRepository) Aggregate(id uint64) (avg float64, count int64, err error) {
	row := struct {
		AvgRating   float64
		ReviewCount int64
	}{}
	err = r.DB.Table("product_reviews").
		Select("ROUND(COALESCE(AVG(stars), 0), 1) AS avg_rating, COUNT(*) AS review_count").
		Where("product_id = ?", id).
		Scan(&row).Error
	return row.AvgRating, row.ReviewCount, err
}

func (r *ProductRepository) Create(p *model.Product) error {
	return r.DB.Create(p).Error
}

func (r *ProductRepository) Delete(id uint64) error {
	return r.DB.Delete(&model.Product{}, id).Error
}

func (r *ProductReviewRepository) ListByProduct(productID uint64) ([]ReviewRow, error) {
	var rows []ReviewRow
	err := r.DB.Table("product_reviews").
		Select("product_reviews.*, users.name AS reviewer_name, users.role AS reviewer_role").
		Joins("JOIN users ON users.id = product_reviews.user_id").
		Where("product_reviews.product_id = ?", productID).
		Order("product_reviews.created_at DESC").
		Scan(&rows).Error
	return rows, err
}

// Upsert writes the review in one statement; the unique (product_id,
// user_id) index makes the database enforce at-most-one per pair.
func (r *ProductReviewRepository) Upsert(review *model.ProductReview) error {
	return r.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "product_id"}, {Name: "user_id"}},
		DoUpdates: clause.Assignments(map[string]any{
			"stars":       review.Stars,
			"review_text": review.ReviewText,
		}),
	}).Create(review).Error
}

func (r *ProductReviewRepository) Exists(productID, userID uint64) (bool, error) {
	var count int64
	err := r.DB.Model(&model.ProductReview{}).
		Where("product_id = ? AND user_id = ?", productID, userID).
		Count(&count).Error
	return count > 0, err
}

func (r *ProductReviewRepository) CountByProduct(productID uint64) (int64, error) {
	var count int64
	err := r.DB.Model(&model.ProductReview{}).
		Where("product_id = ?", productID).
		Count(&count).Error
	return count, err
}
