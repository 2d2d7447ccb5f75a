package service

import (
	"errors"

	"AIGov_Community/internal/model"
	"AIGov_Community/internal/repository/sqlite"

	"gorm.io/gorm"
)

// Roles allowed to submit product reviews.
var reviewerRoles = map[string]bool{
	model.RoleMember:    true,
	model.RoleExecutive: true,
	model.RoleCompany:   true,
	model.RoleAdmin:     true,
}

type ProductService struct {
	repo       *sqlite.ProductRepository
	reviewRepo *sqlite.ProductReviewRepository
}

func NewProductService(db *gorm.DB) *ProductService {
	return &ProductService{
		repo:       &sqlite.ProductRepository{DB: db},
		reviewRepo: &sqlite.ProductReviewRepository{DB: db},
	}
}

func (s *ProductService) List() ([]sqlite.ProductRow, error) {
	return s.repo.List()
}

// Get returns the product with its reviews and rating aggregate.
func (s *ProductService) Get(id uint64) (*model.Product, []sqlite.ReviewRow, float64, int64, error) {
	product, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, 0, 0, ErrNotFound
		}
		return nil, nil, 0, 0, err
	}
	reviews, err := s.reviewRepo.ListByProduct(id)
	if err != nil {
		return nil, nil, 0, 0, err
	}
	avg, count, err := s.repo.Aggregate(id)
	if err != nil {
		return nil, nil, 0, 0, err
	}
	return product, reviews, avg, count, nil
}

func (s *ProductService) Reviews(productID uint64) ([]sqlite.ReviewRow, error) {
	return s.reviewRepo.ListByProduct(productID)
}

func (s *ProductService) Create(name, company, description, downloadLink string) (*model.Product, error) {
	product := &model.Product{
		Name:         name,
		Company:      company,
		Description:  description,
		DownloadLink: downloadLink,
	}
	if err := s.repo.Create(product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *ProductService) Delete(id uint64) error {
	return s.repo.Delete(id)
}

// SubmitReview upserts the caller's review in one statement; the unique
// (product_id, user_id) index keeps it at one row per pair. Returns
// whether an existing review was replaced.
func (s *ProductService) SubmitReview(productID, userID uint64, role string, stars int, text string) (bool, error) {
	if !reviewerRoles[role] {
		return false, ErrForbidden
	}
	if _, err := s.repo.FindByID(productID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, ErrNotFound
		}
		return false, err
	}

	existed, err := s.reviewRepo.Exists(productID, userID)
	if err != nil {
		return false, err
	}

	review := &model.ProductReview{
		ProductID:  productID,
		UserID:     userID,
		Stars:      stars,
		ReviewText: text,
	}
	if err := s.reviewRepo.Upsert(review); err != nil {
		return false, err
	}
	return existed, nil
}
