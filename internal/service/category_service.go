package service

import (
	"AIGov_Community/internal/model"
	"AIGov_Community/internal/repository/sqlite"

	"gorm.io/gorm"
)

type CategoryService struct {
	repo *sqlite.CategoryRepository
}

func NewCategoryService(db *gorm.DB) *CategoryService {
	return &CategoryService{repo: &sqlite.CategoryRepository{DB: db}}
}

func (s *CategoryService) List() ([]model.Category, error) {
	return s.repo.List()
}

// Create passes a duplicate slug through as gorm.ErrDuplicatedKey.
func (s *CategoryService) Create(name, slug, description string) (*model.Category, error) {
	cat := &model.Category{Name: name, Slug: slug, Description: description}
	if err := s.repo.Create(cat); err != nil {
		return nil, err
	}
	return cat, nil
}

// Delete is idempotent: removing an absent category succeeds. Dependent
// rows follow their declared foreign-key policy.
func (s *CategoryService) Delete(id uint64) error {
	return s.repo.Delete(id)
}
