package models

import (
	"time"

	"gorm.io/gorm"
)

// Payment states for a training event listing.
const (
	PaymentStatusPending = "pending"
	PaymentStatusPaid    = "paid"
	PaymentStatusFailed  = "failed"
)

// TrainingEvent represents a bookable training event in the catalog.
// An event only shows up publicly once it is active and approved; both flags
// are set by payment verification and cleared again by the cleanup sweep once
// the event date has passed.
type TrainingEvent struct {
	ID            uint64         `gorm:"primaryKey" json:"id"`
	Title         string         `gorm:"type:varchar(255)" json:"title" validate:"required,min=3,max=255"`
	Slug          string         `gorm:"uniqueIndex;type:varchar(255)" json:"slug" validate:"required,min=3,max=255"`
	Description   string         `gorm:"type:text" json:"description" validate:"required"`
	Category      string         `gorm:"type:varchar(100);index" json:"category" validate:"required,max=100"`
	Location      string         `gorm:"type:varchar(255)" json:"location"`
	PriceCents    int64          `gorm:"not null;default:0" json:"price_cents" validate:"gte=0"`
	StartDate     time.Time      `gorm:"index" json:"start_date" validate:"required"`
	EndDate       time.Time      `gorm:"index" json:"end_date" validate:"required"`
	Active        bool           `gorm:"type:tinyint(1);default:0;index" json:"active"`
	Approved      bool           `gorm:"type:tinyint(1);default:0" json:"approved"`
	PaymentStatus string         `gorm:"type:varchar(20);default:'pending';index" json:"payment_status"`
	CreatedAt     time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name for the TrainingEvent model
func (TrainingEvent) TableName() string {
	return "training_events"
}

// IsExpired reports whether the event ended before the given instant.
func (e *TrainingEvent) IsExpired(now time.Time) bool {
	return e.EndDate.Before(now)
}

// DetailPath returns the public catalog path for this event.
func (e *TrainingEvent) DetailPath() string {
	return "/training-events/" + e.Slug
}
