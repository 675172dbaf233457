package repository

import (
	"time"

	"github.com/google/uuid"

	"github.com/boldgroup/website/app/models"
)

// stampPayment sets the fields every ledger owns on creation.
func stampPayment(payment *models.Payment, id uint64, now time.Time) {
	payment.ID = id
	payment.Status = models.PAYMENT_STATUS_COMPLETED
	payment.CreatedAt = now
	if payment.Reference == "" {
		payment.Reference = uuid.NewString()
	}
}
