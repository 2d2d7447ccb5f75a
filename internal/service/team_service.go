package service

import (
	"errors"

	"AIGov_Community/internal/model"
	"AIGov_Community/internal/repository/sqlite"

	"gorm.io/gorm"
)

type TeamService struct {
	repo *sqlite.TeamRepository
}

func NewTeamService(db *gorm.DB) *TeamService {
	return &TeamService{repo: &sqlite.TeamRepository{DB: db}}
}

func (s *TeamService) List(category string) ([]model.TeamMember, error) {
	return s.repo.List(category)
}

func (s *TeamService) Create(tm *model.TeamMember) error {
	if tm.Category == "" {
		tm.Category = model.TeamLeadership
	}
	return s.repo.Create(tm)
}

type TeamUpdate struct {
	Name        *string
	Role        *string
	Description *string
	ImageURL    *string
	LinkedinURL *string
	Category    *string
}

func (s *TeamService) Update(id uint64, upd TeamUpdate) (*model.TeamMember, error) {
	tm, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if upd.Name != nil {
		tm.Name = *upd.Name
	}
	if upd.Role != nil {
		tm.Role = *upd.Role
	}
	if upd.Description != nil {
		tm.Description = *upd.Description
	}
	if upd.ImageURL != nil {
		tm.ImageURL = *upd.ImageURL
	}
	if upd.LinkedinURL != nil {
		tm.LinkedinURL = *upd.LinkedinURL
	}
	if upd.Category != nil {
		tm.Category = *upd.Category
	}

	if err := s.repo.Save(tm); err != nil {
		return nil, err
	}
	return tm, nil
}

func (s *TeamService) Delete(id uint64) error {
	if _, err := s.repo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return s.repo.Delete(id)
}
