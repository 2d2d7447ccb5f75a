package sqlite

import (
	"AIGov_Community/internal/model"

	"gorm.io/gorm"
)

type ResourceRepository struct {
	DB *gorm.DB
}

// ResourceFilter narrows the listing. The two visibility switches are
// derived from the caller's role by the service layer.
type ResourceFilter struct {
	Type               string
	CategoryID         *uint64
	IncludeUnapproved  bool
	IncludeMembersOnly bool
}

func (r *ResourceRepository) List(f ResourceFilter) ([]model.Resource, error) {
	q := r.DB.Model(&model.Resource{})
	if !f.IncludeUnapproved {
		q = q.Where("status = ?", model.ResourceStatusApproved)
	}
	if !f.IncludeMembersOnly {
		q = q.Where("access = ?", model.AccessPublic)
	}
	if f.Type != "" {
		q = q.Where("type = ?", f.Type)
	}
	if f.CategoryID != nil {
		q = q.Where("category_id = ?", *f.CategoryID)
	}

	var list []model.Resource
	err := q.Order("created_at DESC").Find(&list).Error
	return list, err
}

func (r *ResourceRepository) FindByID(id uint64) (*model.Resource, error) {
	var res model.Resource
	err := r.DB.First(&res, id).Error
	return &res, err
}

func (r *ResourceRepository) Create(res *model.Resource) error {
	return r.DB.Create(res).Error
}

func (r *ResourceRepository) Save(res *model.Resource) error {
	return r.DB.Save(res).Error
}

func (r *ResourceRepository) UpdateStatus(id uint64, status string) error {
	return r.DB.Model(&model.Resource{}).Where("id = ?", id).Update("status", status).Error
}

func (r *ResourceRepository) IncrementDownload(id uint64) error {
	return r.DB.Model(&model.Resource{}).Where("id = ?", id).
		UpdateColumn("download_count", gorm.Expr("download_count + 1")).Error
}

func (r *ResourceRepository) Delete(id uint64) error {
	return r.DB.Delete(&model.Resource{}, id).Error
}
