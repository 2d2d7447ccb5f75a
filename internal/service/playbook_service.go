package service

import (
	"errors"
	"os"

	"AIGov_Community/internal/model"
	"AIGov_Community/internal/pkg"
	"AIGov_Community/internal/repository/sqlite"

	"gorm.io/gorm"
)

type PlaybookService struct {
	repo      *sqlite.PlaybookRepository
	uploadDir string
}

func NewPlaybookService(db *gorm.DB, uploadDir string) *PlaybookService {
	return &PlaybookService{
		repo:      &sqlite.PlaybookRepository{DB: db},
		uploadDir: uploadDir,
	}
}

func (s *PlaybookService) List() ([]model.Playbook, error) {
	return s.repo.List()
}

func (s *PlaybookService) Create(pb *model.Playbook) error {
	return s.repo.Create(pb)
}

// Download resolves the stored file and bumps the counter. The counter
// moves even when the binary is gone, matching the recorded intent of
// the download.
func (s *PlaybookService) Download(id uint64) (*model.Playbook, string, error) {
	pb, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrNotFound
		}
		return nil, "", err
	}

	if err := s.repo.IncrementDownload(id); err != nil {
		return nil, "", err
	}

	diskPath := pkg.UploadPath(s.uploadDir, pb.FilePath)
	if _, err := os.Stat(diskPath); err != nil {
		return nil, "", ErrFileMissing
	}
	return pb, diskPath, nil
}

func (s *PlaybookService) Delete(id uint64) error {
	pb, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if err := pkg.RemoveUpload(s.uploadDir, pb.FilePath); err != nil {
		return err
	}
	return s.repo.Delete(id)
}
