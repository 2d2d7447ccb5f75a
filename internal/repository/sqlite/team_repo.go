package sqlite

import (
	"AIGov_Community/internal/model"

	"gorm.io/gorm"
)

type TeamRepository struct {
	DB *gorm.DB
}

func (r *TeamRepository) List(category string) ([]model.TeamMember, error) {
	q := r.DB.Model(&model.TeamMember{})
	if category != "" {
		q = q.Where("category = ?", category)
	}
	var list []model.TeamMember
	err := q.Order("id ASC").Find(&list).Error
	return list, err
}

func (r *TeamRepository) FindByID(id uint64) (*model.TeamMember, error) {
	var tm model.TeamMember
	err := r.DB.First(&tm, id).Error
	return &tm, err
}

func (r *TeamRepository) Create(tm *model.TeamMember) error {
	return r.DB.Create(tm).Error
}

func (r *TeamRepository) Save(tm *model.TeamMember) error {
	return r.DB.Save(tm).Error
}

func (r *TeamRepository) Delete(id uint64) error {
	return r.DB.Delete(&model.TeamMember{}, id).Error
}
