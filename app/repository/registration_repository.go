package repository

import (
	"gorm.io/gorm"

	"github.com/codevine/trainhub/app/models"
)

// registrationRepository implements the RegistrationRepository interface
type registrationRepository struct {
	db *gorm.DB
}

// NewRegistrationRepository creates a new registration repository instance
func NewRegistrationRepository(db *gorm.DB) RegistrationRepository {
	return &registrationRepository{db: db}
}

// Create stores a new attendee registration
func (r *registrationRepository) Create(registration *models.Registration) error {
	return r.db.Create(registration).Error
}

// ListByEvent retrieves registrations for one event, newest first
func (r *registrationRepository) ListByEvent(eventID uint64, offset, limit int) ([]models.Registration, error) {
	var registrations []models.Registration
	err := r.db.Where("training_event_id = ?", eventID).
		Order("created_at DESC").Offset(offset).Limit(limit).Find(&registrations).Error
	return registrations, err
}

// CountByEvent returns the number of registrations for one event
func (r *registrationRepository) CountByEvent(eventID uint64) (int64, error) {
	var count int64
	err := r.db.Model(&models.Registration{}).Where("training_event_id = ?", eventID).Count(&count).Error
	return count, err
}
