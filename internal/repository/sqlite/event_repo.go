package sqlite

import (
	"AIGov_Community/internal/model"

	"gorm.io/gorm"
)

type EventRepository struct {
	DB *gorm.DB
}

// List orders on the raw date string; the column is free text.
func (r *EventRepository) List() ([]model.Event, error) {
	var list []model.Event
	err := r.DB.Order("date ASC").Find(&list).Error
	return list, err
}

func (r *EventRepository) FindByID(id uint64) (*model.Event, error) {
	var ev model.Event
	err := r.DB.First(&ev, id).Error
	return &ev, err
}

func (r *EventRepository) Create(ev *model.Event) error {
	return r.DB.Create(ev).Error
}

func (r *EventRepository) Save(ev *model.Event) error {
	return r.DB.Save(ev).Error
}

func (r *EventRepository) Delete(id uint64) error {
	return r.DB.Delete(&model.Event{}, id).Error
}
