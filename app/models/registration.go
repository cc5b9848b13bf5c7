package models

import (
	"time"

	"gorm.io/gorm"
)

// Registration is an attendee sign-up for a training event.
type Registration struct {
	ID              uint64         `gorm:"primaryKey" json:"id"`
	TrainingEventID uint64         `gorm:"index;not null" json:"training_event_id"`
	TrainingEvent   TrainingEvent  `gorm:"foreignKey:TrainingEventID" json:"-"`
	Name            string         `gorm:"type:varchar(255)" json:"name" validate:"required,min=2,max=255"`
	Email           string         `gorm:"type:varchar(255);index" json:"email" validate:"required,email"`
	CreatedAt       time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name for the Registration model
func (Registration) TableName() string {
	return "registrations"
}
