package repository

import (
	"time"

	"github.com/codevine/trainhub/app/models"
)

// TrainingEventRepository defines the interface for training-event database operations
type TrainingEventRepository interface {
	Create(event *models.TrainingEvent) error
	GetByID(id uint64) (*models.TrainingEvent, error)
	GetBySlug(slug string) (*models.TrainingEvent, error)
	ListPublic(now time.Time, offset, limit int) ([]models.TrainingEvent, error)
	ListPublicByCategory(category string, now time.Time, offset, limit int) ([]models.TrainingEvent, error)
	ListAll(offset, limit int) ([]models.TrainingEvent, error)
	Update(event *models.TrainingEvent) error
	Delete(id uint64) error
	Count() (int64, error)
	SlugExists(slug string) (bool, error)
	DeactivateExpired(now time.Time) (int64, error)
	MarkPaidAndApproved(id uint64) error
}

// RegistrationRepository defines the interface for attendee registrations
type RegistrationRepository interface {
	Create(registration *models.Registration) error
	ListByEvent(eventID uint64, offset, limit int) ([]models.Registration, error)
	CountByEvent(eventID uint64) (int64, error)
}

// TargetCount is an aggregated click count per target.
type TargetCount struct {
	Target string `json:"target"`
	Count  int64  `json:"count"`
}

// ClickEventRepository defines the interface for click analytics storage
type ClickEventRepository interface {
	Create(click *models.ClickEvent) error
	CountByTarget() ([]TargetCount, error)
	ListRecent(limit int) ([]models.ClickEvent, error)
}

// PaymentRepository defines the interface for payment transaction persistence
type PaymentRepository interface {
	Create(tx *models.PaymentTransaction) error
	GetByReference(reference string) (*models.PaymentTransaction, error)
	MarkVerified(reference, status, payloadJSON string, verifiedAt time.Time) error
}

// CacheRepository defines the interface for cache inspection (developer panel)
type CacheRepository interface {
	GetAllKeys() ([]string, error)
	GetValue(key string) (string, error)
	GetTTL(key string) (time.Duration, error)
	DeleteKey(key string) error
}
