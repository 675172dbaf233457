package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/boldgroup/website/app/models"
)

// paymentRepository implements PaymentRepository on a SQL database; ids come
// from the auto-increment primary key.
type paymentRepository struct {
	db  *gorm.DB
	now func() time.Time
}

// NewPaymentRepository creates a new gorm-backed payment repository
func NewPaymentRepository(db *gorm.DB) PaymentRepository {
	return &paymentRepository{db: db, now: time.Now}
}

func (r *paymentRepository) Create(ctx context.Context, payment *models.Payment) error {
	stamped := *payment
	stampPayment(&stamped, 0, r.now())

	if err := r.db.WithContext(ctx).Create(&stamped).Error; err != nil {
		return err
	}

	*payment = stamped
	return nil
}

func (r *paymentRepository) GetByID(ctx context.Context, id uint64) (*models.Payment, error) {
	var payment models.Payment
	err := r.db.WithContext(ctx).First(&payment, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPaymentNotFound
		}
		return nil, err
	}
	return &payment, nil
}

func (r *paymentRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Payment{}).Count(&count).Error
	return count, err
}
