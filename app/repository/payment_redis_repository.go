package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/boldgroup/website/app/models"
)

const (
	PaymentSequenceKey = "payments:seq"
	PaymentRecordsKey  = "payments:records"
)

// redisPaymentRepository stores payments as JSON in a Redis hash keyed by id.
// Ids come from INCR, which is atomic across processes; an id whose write
// fails is skipped and never reused.
type redisPaymentRepository struct {
	client *redis.Client
	now    func() time.Time
}

// NewRedisPaymentRepository creates a ledger backed by the given Redis client.
func NewRedisPaymentRepository(client *redis.Client) PaymentRepository {
	return &redisPaymentRepository{client: client, now: time.Now}
}

func (r *redisPaymentRepository) Create(ctx context.Context, payment *models.Payment) error {
	id, err := r.client.Incr(ctx, PaymentSequenceKey).Result()
	if err != nil {
		return fmt.Errorf("allocate payment id: %w", err)
	}

	stamped := *payment
	stampPayment(&stamped, uint64(id), r.now())

	data, err := json.Marshal(stamped)
	if err != nil {
		return fmt.Errorf("encode payment %d: %w", id, err)
	}
	if err := r.client.HSet(ctx, PaymentRecordsKey, strconv.FormatInt(id, 10), data).Err(); err != nil {
		return fmt.Errorf("store payment %d: %w", id, err)
	}

	*payment = stamped
	return nil
}

func (r *redisPaymentRepository) GetByID(ctx context.Context, id uint64) (*models.Payment, error) {
	data, err := r.client.HGet(ctx, PaymentRecordsKey, strconv.FormatUint(id, 10)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrPaymentNotFound
		}
		return nil, fmt.Errorf("load payment %d: %w", id, err)
	}

	var payment models.Payment
	if err := json.Unmarshal(data, &payment); err != nil {
		return nil, fmt.Errorf("decode payment %d: %w", id, err)
	}
	return &payment, nil
}

func (r *redisPaymentRepository) Count(ctx context.Context) (int64, error) {
	return r.client.HLen(ctx, PaymentRecordsKey).Result()
}
