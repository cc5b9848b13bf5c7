package repository

import (
	"gorm.io/gorm"

	"github.com/codevine/trainhub/app/models"
)

// clickEventRepository implements the ClickEventRepository interface
type clickEventRepository struct {
	db *gorm.DB
}

// NewClickEventRepository creates a new click-event repository instance
func NewClickEventRepository(db *gorm.DB) ClickEventRepository {
	return &clickEventRepository{db: db}
}

// Create stores a single click event
func (r *clickEventRepository) Create(click *models.ClickEvent) error {
	return r.db.Create(click).Error
}

// CountByTarget aggregates click counts per target, most clicked first
func (r *clickEventRepository) CountByTarget() ([]TargetCount, error) {
	var counts []TargetCount
	err := r.db.Model(&models.ClickEvent{}).
		Select("target, COUNT(*) as count").
		Group("target").
		Order("count DESC").
		Scan(&counts).Error
	return counts, err
}

// ListRecent retrieves the latest click events
func (r *clickEventRepository) ListRecent(limit int) ([]models.ClickEvent, error) {
	var clicks []models.ClickEvent
	err := r.db.Order("created_at DESC").Limit(limit).Find(&clicks).Error
	return clicks, err
}
