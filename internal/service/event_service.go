package service

import (
	"errors"

	"AIGov_Community/internal/model"
	"AIGov_Community/internal/repository/sqlite"

	"gorm.io/gorm"
)

type EventService struct {
	repo *sqlite.EventRepository
}

func NewEventService(db *gorm.DB) *EventService {
	return &EventService{repo: &sqlite.EventRepository{DB: db}}
}

func (s *EventService) List() ([]model.Event, error) {
	return s.repo.List()
}

func (s *EventService) Create(ev *model.Event) error {
	if ev.Type == "" {
		ev.Type = model.EventUpcoming
	}
	return s.repo.Create(ev)
}

type EventUpdate struct {
	Title        *string
	Date         *string
	Location     *string
	Link         *string
	Type         *string
	Category     *string
	IsFeatured   *bool
	TeamsLink    *string
	RecordingURL *string
}

// Update overlays only the provided fields; omitted ones keep their
// stored values.
func (s *EventService) Update(id uint64, upd EventUpdate) (*model.Event, error) {
	ev, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if upd.Title != nil {
		ev.Title = *upd.Title
	}
	if upd.Date != nil {
		ev.Date = *upd.Date
	}
	if upd.Location != nil {
		ev.Location = *upd.Location
	}
	if upd.Link != nil {
		ev.Link = *upd.Link
	}
	if upd.Type != nil {
		ev.Type = *upd.Type
	}
	if upd.Category != nil {
		ev.Category = *upd.Category
	}
	if upd.IsFeatured != nil {
		ev.IsFeatured = *upd.IsFeatured
	}
	if upd.TeamsLink != nil {
		ev.TeamsLink = *upd.TeamsLink
	}
	if upd.RecordingURL != nil {
		ev.RecordingURL = *upd.RecordingURL
	}

	if err := s.repo.Save(ev); err != nil {
		return nil, err
	}
	return ev, nil
}

func (s *EventService) Delete(id uint64) error {
	if _, err := s.repo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return s.repo.Delete(id)
}
