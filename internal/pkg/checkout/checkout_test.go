package checkout

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/boldgroup/website/app/models"
	"github.com/boldgroup/website/app/repository"
)

func amount(v int64) *int64 {
	return &v
}

func validRequest() CreatePaymentRequest {
	return CreatePaymentRequest{
		ServiceID:  "social-media-management",
		PackageID:  "standard",
		FullName:   "A B",
		Email:      "a@b.com",
		Phone:      "123",
		CardNumber: "4242424242424242",
		ExpDate:    "12/30",
		CVV:        "123",
		Amount:     amount(250000),
	}
}

type failingRepository struct {
	repository.PaymentRepository
}

func (failingRepository) Create(ctx context.Context, payment *models.Payment) error {
	return errors.New("disk on fire")
}

func TestSubmit_RecordsPayment(t *testing.T) {
	repo := repository.NewMemoryPaymentRepository()
	svc := NewService(repo)

	payment, err := svc.Submit(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, uint64(1), payment.ID)
	assert.Equal(t, models.PAYMENT_STATUS_COMPLETED, payment.Status)
	assert.Equal(t, int64(250000), payment.Amount)
	assert.Nil(t, payment.Company)

	req := validRequest()
	req.Email = "c@d.com"
	second, err := svc.Submit(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, uint64(2), second.ID)
}

func TestSubmit_MissingEmailLeavesLedgerUntouched(t *testing.T) {
	repo := repository.NewMemoryPaymentRepository()
	svc := NewService(repo)
	ctx := context.Background()

	before, err := repo.Count(ctx)
	require.NoError(t, err)

	req := validRequest()
	req.Email = ""
	_, err = svc.Submit(ctx, req)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"email"}, verr.Fields)

	after, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestValidate_RequiredFields(t *testing.T) {
	svc := NewService(repository.NewMemoryPaymentRepository())

	tests := []struct {
		name   string
		mutate func(*CreatePaymentRequest)
		field  string
	}{
		{name: "service", mutate: func(r *CreatePaymentRequest) { r.ServiceID = "" }, field: "serviceId"},
		{name: "package", mutate: func(r *CreatePaymentRequest) { r.PackageID = "" }, field: "packageId"},
		{name: "full name", mutate: func(r *CreatePaymentRequest) { r.FullName = "" }, field: "fullName"},
		{name: "phone", mutate: func(r *CreatePaymentRequest) { r.Phone = "" }, field: "phone"},
		{name: "amount missing", mutate: func(r *CreatePaymentRequest) { r.Amount = nil }, field: "amount"},
		{name: "amount negative", mutate: func(r *CreatePaymentRequest) { r.Amount = amount(-1) }, field: "amount"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)

			var verr *ValidationError
			require.ErrorAs(t, svc.Validate(req), &verr)
			assert.Equal(t, []string{tt.field}, verr.Fields)
		})
	}
}

func TestValidate_RuleOfInvalidAmount(t *testing.T) {
	svc := NewService(repository.NewMemoryPaymentRepository())

	req := validRequest()
	req.Amount = amount(-5)

	var verr *ValidationError
	require.ErrorAs(t, svc.Validate(req), &verr)
	assert.Equal(t, []FieldError{{Field: "amount", Rule: "gte"}}, verr.Violations)
	assert.False(t, verr.MissingOnly())

	req.Amount = nil
	require.ErrorAs(t, svc.Validate(req), &verr)
	assert.Equal(t, []FieldError{{Field: "amount", Rule: "required"}}, verr.Violations)
	assert.True(t, verr.MissingOnly())
}

func TestValidate_OptionalFields(t *testing.T) {
	svc := NewService(repository.NewMemoryPaymentRepository())

	req := validRequest()
	req.CardNumber, req.ExpDate, req.CVV = "", "", ""
	req.Amount = amount(0)
	assert.NoError(t, svc.Validate(req))
}

func TestValidate_ReportsAllMissing(t *testing.T) {
	svc := NewService(repository.NewMemoryPaymentRepository())

	var verr *ValidationError
	require.ErrorAs(t, svc.Validate(CreatePaymentRequest{}), &verr)
	assert.ElementsMatch(t, []string{"serviceId", "packageId", "fullName", "email", "phone", "amount"}, verr.Fields)
	assert.Contains(t, verr.Error(), "missing required fields")
}

func TestSubmit_CompanyNormalized(t *testing.T) {
	svc := NewService(repository.NewMemoryPaymentRepository())

	blank := "  "
	req := validRequest()
	req.Company = &blank
	payment, err := svc.Submit(context.Background(), req)
	require.NoError(t, err)
	assert.Nil(t, payment.Company)

	company := "Bold Clients Ltd"
	req.Company = &company
	payment, err = svc.Submit(context.Background(), req)
	require.NoError(t, err)
	require.NotNil(t, payment.Company)
	assert.Equal(t, "Bold Clients Ltd", *payment.Company)
}

func TestSubmit_LedgerFailure(t *testing.T) {
	svc := NewService(failingRepository{})

	_, err := svc.Submit(context.Background(), validRequest())
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrValidation)
	assert.Contains(t, err.Error(), "disk on fire")
}
