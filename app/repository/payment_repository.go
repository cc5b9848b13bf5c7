package repository

import (
	"time"

	"gorm.io/gorm"

	"github.com/codevine/trainhub/app/models"
)

// paymentRepository implements the PaymentRepository interface
type paymentRepository struct {
	db *gorm.DB
}

// NewPaymentRepository creates a new payment repository instance
func NewPaymentRepository(db *gorm.DB) PaymentRepository {
	return &paymentRepository{db: db}
}

// Create stores a new payment transaction
func (r *paymentRepository) Create(tx *models.PaymentTransaction) error {
	return r.db.Create(tx).Error
}

// GetByReference retrieves a payment transaction by its provider reference
func (r *paymentRepository) GetByReference(reference string) (*models.PaymentTransaction, error) {
	var tx models.PaymentTransaction
	err := r.db.Where("reference = ?", reference).First(&tx).Error
	if err != nil {
		return nil, err
	}
	return &tx, nil
}

// MarkVerified records the provider verification result for a transaction
func (r *paymentRepository) MarkVerified(reference, status, payloadJSON string, verifiedAt time.Time) error {
	return r.db.Model(&models.PaymentTransaction{}).
		Where("reference = ?", reference).
		Updates(map[string]interface{}{
			"status":       status,
			"payload_json": payloadJSON,
			"verified_at":  &verifiedAt,
		}).Error
}
