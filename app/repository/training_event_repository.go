package repository

import (
	"time"

	"gorm.io/gorm"

	"github.com/codevine/trainhub/app/models"
)

// trainingEventRepository implements the TrainingEventRepository interface
type trainingEventRepository struct {
	db *gorm.DB
}

// NewTrainingEventRepository creates a new training-event repository instance
func NewTrainingEventRepository(db *gorm.DB) TrainingEventRepository {
	return &trainingEventRepository{db: db}
}

// Create creates a new training event in the database
func (r *trainingEventRepository) Create(event *models.TrainingEvent) error {
	return r.db.Create(event).Error
}

// GetByID retrieves a training event by its ID
func (r *trainingEventRepository) GetByID(id uint64) (*models.TrainingEvent, error) {
	var event models.TrainingEvent
	err := r.db.First(&event, id).Error
	if err != nil {
		return nil, err
	}
	return &event, nil
}

// GetBySlug retrieves a training event by its slug
func (r *trainingEventRepository) GetBySlug(slug string) (*models.TrainingEvent, error) {
	var event models.TrainingEvent
	err := r.db.Where("slug = ?", slug).First(&event).Error
	if err != nil {
		return nil, err
	}
	return &event, nil
}

// ListPublic retrieves active, approved, not-yet-ended events ordered by start date
func (r *trainingEventRepository) ListPublic(now time.Time, offset, limit int) ([]models.TrainingEvent, error) {
	var events []models.TrainingEvent
	err := r.db.Where("active = ? AND approved = ? AND end_date >= ?", true, true, now).
		Order("start_date ASC").Offset(offset).Limit(limit).Find(&events).Error
	return events, err
}

// ListPublicByCategory retrieves the public listing filtered to one category
func (r *trainingEventRepository) ListPublicByCategory(category string, now time.Time, offset, limit int) ([]models.TrainingEvent, error) {
	var events []models.TrainingEvent
	err := r.db.Where("active = ? AND approved = ? AND end_date >= ? AND category = ?", true, true, now, category).
		Order("start_date ASC").Offset(offset).Limit(limit).Find(&events).Error
	return events, err
}

// ListAll retrieves all events regardless of state, newest first (admin view)
func (r *trainingEventRepository) ListAll(offset, limit int) ([]models.TrainingEvent, error) {
	var events []models.TrainingEvent
	err := r.db.Order("created_at DESC").Offset(offset).Limit(limit).Find(&events).Error
	return events, err
}

// Update updates an existing training event in the database
func (r *trainingEventRepository) Update(event *models.TrainingEvent) error {
	return r.db.Save(event).Error
}

// Delete soft deletes a training event by its ID
func (r *trainingEventRepository) Delete(id uint64) error {
	return r.db.Delete(&models.TrainingEvent{}, id).Error
}

// Count returns the total number of training events
func (r *trainingEventRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.TrainingEvent{}).Count(&count).Error
	return count, err
}

// SlugExists checks if a slug already exists
func (r *trainingEventRepository) SlugExists(slug string) (bool, error) {
	var count int64
	err := r.db.Model(&models.TrainingEvent{}).Where("slug = ?", slug).Count(&count).Error
	return count > 0, err
}

// DeactivateExpired marks every event whose end date lies strictly before now
// as inactive. A single conditional bulk update: concurrent sweeps converge to
// the same state, and a second run affects zero rows.
func (r *trainingEventRepository) DeactivateExpired(now time.Time) (int64, error) {
	tx := r.db.Model(&models.TrainingEvent{}).
		Where("end_date < ? AND active = ?", now, true).
		Update("active", false)
	return tx.RowsAffected, tx.Error
}

// MarkPaidAndApproved flips an event to paid, approved and active after a
// verified payment.
func (r *trainingEventRepository) MarkPaidAndApproved(id uint64) error {
	return r.db.Model(&models.TrainingEvent{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"payment_status": models.PaymentStatusPaid,
			"approved":       true,
			"active":         true,
		}).Error
}
