package repository

import (
	"context"
	"sync"
	"time"

	"github.com/boldgroup/website/app/models"
)

// memoryPaymentRepository keeps payments in process memory. Everything is lost
// on restart; there is no reset.
type memoryPaymentRepository struct {
	mu       sync.RWMutex
	payments map[uint64]models.Payment
	lastID   uint64
	now      func() time.Time
}

// NewMemoryPaymentRepository creates an empty in-memory ledger.
func NewMemoryPaymentRepository() PaymentRepository {
	return newMemoryPaymentRepository(time.Now)
}

func newMemoryPaymentRepository(now func() time.Time) *memoryPaymentRepository {
	return &memoryPaymentRepository{
		payments: make(map[uint64]models.Payment),
		now:      now,
	}
}

// Create stores the payment under the next id. Id assignment and the insert
// happen under one lock so ids stay unique and monotonic.
func (r *memoryPaymentRepository) Create(ctx context.Context, payment *models.Payment) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.lastID++
	stampPayment(payment, r.lastID, r.now())
	r.payments[payment.ID] = *payment
	return nil
}

func (r *memoryPaymentRepository) GetByID(ctx context.Context, id uint64) (*models.Payment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	payment, ok := r.payments[id]
	if !ok {
		return nil, ErrPaymentNotFound
	}
	return &payment, nil
}

func (r *memoryPaymentRepository) Count(ctx context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return int64(len(r.payments)), nil
}
