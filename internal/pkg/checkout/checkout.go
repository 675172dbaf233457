package checkout

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/boldgroup/website/app/models"
	"github.com/boldgroup/website/app/repository"
)

// ErrValidation is matched by every rejected submission.
var ErrValidation = errors.New("missing required fields")

// FieldError names an offending field and the rule it broke.
type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
}

// ValidationError lists the JSON names of the fields that failed validation
// and, per field, the broken rule.
type ValidationError struct {
	Fields     []string
	Violations []FieldError
}

// MissingOnly reports whether every failure is an absent required field.
func (e *ValidationError) MissingOnly() bool {
	for _, v := range e.Violations {
		if v.Rule != "required" {
			return false
		}
	}
	return true
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", ErrValidation.Error(), strings.Join(e.Fields, ", "))
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// CreatePaymentRequest is the checkout form as submitted by the client.
// Card fields are accepted but never stored or processed: payment capture is
// simulated.
type CreatePaymentRequest struct {
	ServiceID  string  `json:"serviceId" validate:"required"`
	PackageID  string  `json:"packageId" validate:"required"`
	FullName   string  `json:"fullName" validate:"required"`
	Email      string  `json:"email" validate:"required"`
	Phone      string  `json:"phone" validate:"required"`
	Company    *string `json:"company,omitempty"`
	CardNumber string  `json:"cardNumber"`
	ExpDate    string  `json:"expDate"`
	CVV        string  `json:"cvv"`
	Amount     *int64  `json:"amount" validate:"required,gte=0"`
}

// Service admits checkout submissions into the payment ledger.
type Service struct {
	payments repository.PaymentRepository
	validate *validator.Validate
}

func NewService(payments repository.PaymentRepository) *Service {
	return &Service{
		payments: payments,
		validate: newValidator(),
	}
}

// Submit validates the request and records it. A rejected request never
// reaches the ledger. The amount is recorded as submitted.
func (s *Service) Submit(ctx context.Context, req CreatePaymentRequest) (*models.Payment, error) {
	if err := s.Validate(req); err != nil {
		return nil, err
	}

	payment := &models.Payment{
		ServiceID: req.ServiceID,
		PackageID: req.PackageID,
		FullName:  req.FullName,
		Email:     req.Email,
		Phone:     req.Phone,
		Company:   normalizeOptional(req.Company),
		Amount:    *req.Amount,
	}
	if err := s.payments.Create(ctx, payment); err != nil {
		return nil, fmt.Errorf("record payment: %w", err)
	}

	return payment, nil
}

// Validate checks the required fields and returns a *ValidationError naming
// every offending field.
func (s *Service) Validate(req CreatePaymentRequest) error {
	err := s.validate.Struct(req)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	verr := &ValidationError{
		Fields:     make([]string, 0, len(verrs)),
		Violations: make([]FieldError, 0, len(verrs)),
	}
	for _, fe := range verrs {
		verr.Fields = append(verr.Fields, fe.Field())
		verr.Violations = append(verr.Violations, FieldError{Field: fe.Field(), Rule: fe.Tag()})
	}
	return verr
}

func normalizeOptional(s *string) *string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	v := *s
	return &v
}

// newValidator reports field errors under their JSON names.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}
