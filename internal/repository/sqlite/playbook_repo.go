package sqlite

import (
	"AIGov_Community/internal/model"

	"gorm.io/gorm"
)

type PlaybookRepository struct {
	DB *gorm.DB
}

func (r *PlaybookRepository) List() ([]model.Playbook, error) {
	var list []model.Playbook
	err := r.DB.Order("created_at DESC").Find(&list).Error
	return list, err
}

func (r *PlaybookRepository) FindByID(id uint64) (*model.Playbook, error) {
	var pb model.Playbook
	err := r.DB.First(&pb, id).Error
	return &pb, err
}

func (r *PlaybookRepository) Create(pb *model.Playbook) error {
	return r.DB.Create(pb).Error
}

func (r *PlaybookRepository) IncrementDownload(id uint64) error {
	return r.DB.Model(&model.Playbook{}).Where("id = ?", id).
		UpdateColumn("download_count", gorm.Expr("download_count + 1")).Error
}

func (r *PlaybookRepository) Delete(id uint64) error {
	return r.DB.Delete(&model.Playbook{}, id).Error
}
