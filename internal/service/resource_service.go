package service

import (
	"errors"

	"AIGov_Community/internal/model"
	"AIGov_Community/internal/pkg"
	"AIGov_Community/internal/repository/sqlite"

	"gorm.io/gorm"
)

type ResourceService struct {
	repo      *sqlite.ResourceRepository
	catRepo   *sqlite.CategoryRepository
	uploadDir string
}

func NewResourceService(db *gorm.DB, uploadDir string) *ResourceService {
	return &ResourceService{
		repo:      &sqlite.ResourceRepository{DB: db},
		catRepo:   &sqlite.CategoryRepository{DB: db},
		uploadDir: uploadDir,
	}
}

// canModerate: roles that see unapproved submissions.
func canModerate(role string) bool {
	return role == model.RoleAdmin || role == model.RoleExecutive
}

// visible applies the gate in order: approval first, then access tier.
func visible(res *model.Resource, role string) bool {
	if res.Status != model.ResourceStatusApproved && !canModerate(role) {
		return false
	}
	if res.Access == model.AccessMembersOnly && !model.HasMemberAccess(role) {
		return false
	}
	return true
}

func (s *ResourceService) List(role, typeFilter, categoryKey string) ([]model.Resource, error) {
	filter := sqlite.ResourceFilter{
		Type:               typeFilter,
		IncludeUnapproved:  canModerate(role),
		IncludeMembersOnly: model.HasMemberAccess(role),
	}
	if categoryKey != "" {
		cat, err := s.catRepo.FindBySlugOrName(categoryKey)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return []model.Resource{}, nil
			}
			return nil, err
		}
		filter.CategoryID = &cat.ID
	}
	return s.repo.List(filter)
}

func (s *ResourceService) Get(role string, id uint64) (*model.Resource, error) {
	res, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !visible(res, role) {
		return nil, ErrForbidden
	}
	return res, nil
}

// Download bumps the counter after the same visibility gate as Get.
func (s *ResourceService) Download(role string, id uint64) error {
	if _, err := s.Get(role, id); err != nil {
		return err
	}
	return s.repo.IncrementDownload(id)
}

type ResourceInput struct {
	Title        string
	Description  string
	Type         string
	Access       string
	ExternalLink string
	CategoryKey  string
	FilePath     string
}

// Submit applies the role policy: university submissions become pending
// whitepapers, company submissions become pending products, and
// admin/executive submissions keep their requested type, pre-approved.
func (s *ResourceService) Submit(userID uint64, role string, in ResourceInput) (*model.Resource, error) {
	res := &model.Resource{
		Title:        in.Title,
		Description:  in.Description,
		Type:         in.Type,
		Access:       in.Access,
		ExternalLink: in.ExternalLink,
		FilePath:     in.FilePath,
		SubmittedBy:  &userID,
	}
	if res.Type == "" {
		res.Type = "article"
	}
	if res.Access == "" {
		res.Access = model.AccessPublic
	}

	switch role {
	case model.RoleUniversity:
		res.Type = "whitepaper"
		res.Status = model.ResourceStatusPending
	case model.RoleCompany:
		res.Type = "product"
		res.Status = model.ResourceStatusPending
	case model.RoleAdmin, model.RoleExecutive:
		res.Status = model.ResourceStatusApproved
	default:
		return nil, ErrForbidden
	}

	if in.CategoryKey != "" {
		if cat, err := s.catRepo.FindBySlugOrName(in.CategoryKey); err == nil {
			res.CategoryID = &cat.ID
		}
	}

	if err := s.repo.Create(res); err != nil {
		return nil, err
	}
	return res, nil
}

// Update overlays the provided fields, keeping existing values for the
// rest. A new upload replaces the stored file.
func (s *ResourceService) Update(id uint64, in ResourceInput) (*model.Resource, error) {
	res, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if in.Title != "" {
		res.Title = in.Title
	}
	if in.Description != "" {
		res.Description = in.Description
	}
	if in.Type != "" {
		res.Type = in.Type
	}
	if in.Access != "" {
		res.Access = in.Access
	}
	if in.ExternalLink != "" {
		res.ExternalLink = in.ExternalLink
	}
	if in.CategoryKey != "" {
		if cat, err := s.catRepo.FindBySlugOrName(in.CategoryKey); err == nil {
			res.CategoryID = &cat.ID
		}
	}
	if in.FilePath != "" {
		old := res.FilePath
		res.FilePath = in.FilePath
		if old != "" && old != in.FilePath {
			if err := pkg.RemoveUpload(s.uploadDir, old); err != nil {
				logger.Warn().Err(err).Str("path", old).Msg("stale upload not removed")
			}
		}
	}

	if err := s.repo.Save(res); err != nil {
		return nil, err
	}
	return res, nil
}

func (s *ResourceService) SetStatus(id uint64, status string) error {
	if _, err := s.repo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return s.repo.UpdateStatus(id, status)
}

// Delete removes the row and its uploaded file; a file already gone from
// disk is tolerated.
func (s *ResourceService) Delete(id uint64) error {
	res, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if err := pkg.RemoveUpload(s.uploadDir, res.FilePath); err != nil {
		return err
	}
	return s.repo.Delete(id)
}
