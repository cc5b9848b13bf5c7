package models

import "time"

// PaymentTransaction stores one provider transaction per event listing with the
// raw verification payload for auditing. The unique reference doubles as the
// idempotency key: re-verifying an already verified reference is a no-op.
type PaymentTransaction struct {
	ID              uint64     `gorm:"primaryKey" json:"id"`
	Reference       string     `gorm:"type:varchar(191);not null;uniqueIndex" json:"reference"`
	TrainingEventID uint64     `gorm:"index;not null" json:"training_event_id"`
	AmountCents     int64      `gorm:"not null;default:0" json:"amount_cents"`
	Status          string     `gorm:"type:varchar(20);default:'pending';index" json:"status"`
	PayloadJSON     string     `gorm:"type:longtext" json:"-"`
	VerifiedAt      *time.Time `gorm:"type:timestamp;default:null" json:"verified_at,omitempty"`
	CreatedAt       time.Time  `gorm:"autoCreateTime;index" json:"created_at"`
	UpdatedAt       time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName specifies the table name for the PaymentTransaction model
func (PaymentTransaction) TableName() string {
	return "payment_transactions"
}
