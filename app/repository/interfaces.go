package repository

import (
	"context"
	"errors"

	"github.com/boldgroup/website/app/models"
)

// ErrPaymentNotFound is returned by GetByID when no payment has the given id.
var ErrPaymentNotFound = errors.New("payment not found")

// PaymentRepository is the payment ledger. Create assigns the next sequential
// id starting at 1, fixes the status to completed and stamps CreatedAt.
// Records are never updated or deleted.
type PaymentRepository interface {
	Create(ctx context.Context, payment *models.Payment) error
	GetByID(ctx context.Context, id uint64) (*models.Payment, error)
	Count(ctx context.Context) (int64, error)
}

// Repositories struct holds all repository instances
type Repositories struct {
	Payment PaymentRepository
}
