package repository

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/boldgroup/website/app/models"
	"github.com/boldgroup/website/internal/pkg/database"
)

func newTestPayment(serviceID, packageID string, amount int64) *models.Payment {
	company := "Acme"
	return &models.Payment{
		ServiceID: serviceID,
		PackageID: packageID,
		FullName:  "A B",
		Email:     "a@b.com",
		Phone:     "123",
		Company:   &company,
		Amount:    amount,
	}
}

// runPaymentRepositoryContract checks the ledger behavior every backend shares.
// The repository must be empty.
func runPaymentRepositoryContract(t *testing.T, repo PaymentRepository) {
	t.Helper()
	ctx := context.Background()

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(0), count)

	first := newTestPayment("social-media-management", "standard", 250000)
	first.Status = "pending"
	require.NoError(t, repo.Create(ctx, first))
	assert.Equal(t, uint64(1), first.ID)
	assert.Equal(t, models.PAYMENT_STATUS_COMPLETED, first.Status)
	assert.False(t, first.CreatedAt.IsZero())
	assert.NotEmpty(t, first.Reference)

	second := newTestPayment("finance-bookkeeping", "basic", 150000)
	second.Company = nil
	require.NoError(t, repo.Create(ctx, second))
	assert.Equal(t, uint64(2), second.ID)
	assert.NotEqual(t, first.Reference, second.Reference)

	got, err := repo.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "social-media-management", got.ServiceID)
	assert.Equal(t, "standard", got.PackageID)
	assert.Equal(t, int64(250000), got.Amount)
	assert.Equal(t, models.PAYMENT_STATUS_COMPLETED, got.Status)
	require.NotNil(t, got.Company)
	assert.Equal(t, "Acme", *got.Company)
	assert.Equal(t, first.Reference, got.Reference)

	got, err = repo.GetByID(ctx, 2)
	require.NoError(t, err)
	assert.Nil(t, got.Company)

	_, err = repo.GetByID(ctx, 99)
	assert.ErrorIs(t, err, ErrPaymentNotFound)

	count, err = repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestMemoryPaymentRepository_Contract(t *testing.T) {
	runPaymentRepositoryContract(t, NewMemoryPaymentRepository())
}

func TestMemoryPaymentRepository_StampsClock(t *testing.T) {
	fixed := time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)
	repo := newMemoryPaymentRepository(func() time.Time { return fixed })

	payment := newTestPayment("customer-support", "premium", 300000)
	payment.CreatedAt = time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Create(context.Background(), payment))

	assert.Equal(t, fixed, payment.CreatedAt)
}

func TestMemoryPaymentRepository_IgnoresCallerID(t *testing.T) {
	repo := NewMemoryPaymentRepository()

	payment := newTestPayment("customer-support", "basic", 125000)
	payment.ID = 42
	require.NoError(t, repo.Create(context.Background(), payment))

	assert.Equal(t, uint64(1), payment.ID)
}

func TestMemoryPaymentRepository_ConcurrentCreate(t *testing.T) {
	repo := NewMemoryPaymentRepository()
	const n = 200

	ids := make(chan uint64, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			payment := newTestPayment("ecommerce-assistance", "basic", 200000)
			if err := repo.Create(context.Background(), payment); err == nil {
				ids <- payment.ID
			}
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[uint64]bool, n)
	for id := range ids {
		assert.False(t, seen[id], "duplicate id %d", id)
		seen[id] = true
	}
	require.Len(t, seen, n)
	for id := uint64(1); id <= n; id++ {
		assert.True(t, seen[id], "missing id %d", id)
	}
}

func TestMemoryPaymentRepository_CanceledContext(t *testing.T) {
	repo := NewMemoryPaymentRepository()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := repo.Create(ctx, newTestPayment("customer-support", "basic", 125000))
	assert.ErrorIs(t, err, context.Canceled)

	count, err := repo.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestPaymentRepository_SQLiteContract(t *testing.T) {
	db, err := database.SetupDatabase(database.Config{
		Driver: database.DRIVER_SQLITE,
		Name:   filepath.Join(t.TempDir(), "payments.db"),
	})
	require.NoError(t, err)

	runPaymentRepositoryContract(t, NewPaymentRepository(db))
}

func TestFactory_Memory(t *testing.T) {
	f := NewFactory(Config{PaymentStore: STORE_MEMORY})

	repos, err := f.GetRepositories(context.Background())
	require.NoError(t, err)
	require.NotNil(t, repos.Payment)

	again, err := f.GetPaymentRepository(context.Background())
	require.NoError(t, err)
	assert.Same(t, repos.Payment, again)
	assert.NoError(t, f.Close())
}

func TestFactory_Database(t *testing.T) {
	f := NewFactory(Config{
		PaymentStore: STORE_DATABASE,
		Database: database.Config{
			Driver: database.DRIVER_SQLITE,
			Name:   filepath.Join(t.TempDir(), "factory.db"),
		},
	})

	repo, err := f.GetPaymentRepository(context.Background())
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), newTestPayment("customer-support", "basic", 125000)))
	assert.NoError(t, f.Close())
}

func TestFactory_UnknownStore(t *testing.T) {
	f := NewFactory(Config{PaymentStore: "s3"})

	_, err := f.GetRepositories(context.Background())
	assert.Error(t, err)
	_, err = f.GetPaymentRepository(context.Background())
	assert.Error(t, err)
}
