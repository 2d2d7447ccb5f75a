package sqlite

import (
	"AIGov_Community/internal/model"

	"gorm.io/gorm"
)

type CategoryRepository struct {
	DB *gorm.DB
}

func (r *CategoryRepository) Create(c *model.Category) error {
	return r.DB.Create(c).Error
}

func (r *CategoryRepository) List() ([]model.Category, error) {
	var list []model.Category
	err := r.DB.Order("name ASC").Find(&list).Error
	return list, err
}

func (r *CategoryRepository) FindBySlugOrName(key string) (*model.Category, error) {
	var cat model.Category
	err := r.DB.Where("slug = ? OR name = ?", key, key).First(&cat).Error
	return &cat, err
}

func (r *CategoryRepository) Delete(id uint64) error {
	return r.DB.Delete(&model.Category{}, id).Error
}
