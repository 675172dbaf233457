package contact

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmit_Valid(t *testing.T) {
	var got []Inquiry
	svc := NewService(NotifierFunc(func(ctx context.Context, inquiry Inquiry) error {
		got = append(got, inquiry)
		return nil
	}))

	err := svc.Submit(context.Background(), Inquiry{
		Name:    "  Ada  ",
		Email:   "ada@example.com",
		Subject: "Bookkeeping",
		Message: "Do you handle payroll?",
	})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Ada", got[0].Name)
}

func TestSubmit_Invalid(t *testing.T) {
	called := false
	svc := NewService(NotifierFunc(func(ctx context.Context, inquiry Inquiry) error {
		called = true
		return nil
	}))

	err := svc.Submit(context.Background(), Inquiry{Name: "Ada", Email: "not-an-email", Subject: "  "})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidInquiry)
	assert.False(t, called)

	var invalid *InvalidInquiryError
	require.ErrorAs(t, err, &invalid)
	assert.ElementsMatch(t, []FieldError{
		{Field: "email", Rule: "email"},
		{Field: "subject", Rule: "required"},
		{Field: "message", Rule: "required"},
	}, invalid.Fields)
}

func TestSubmit_NotifierError(t *testing.T) {
	svc := NewService(NotifierFunc(func(ctx context.Context, inquiry Inquiry) error {
		return errors.New("mailer down")
	}))

	err := svc.Submit(context.Background(), Inquiry{Name: "Ada", Email: "ada@example.com", Subject: "Hi", Message: "Hello"})
	assert.EqualError(t, err, "mailer down")
}

func TestSubmit_NilNotifier(t *testing.T) {
	svc := NewService(nil)
	assert.NoError(t, svc.Submit(context.Background(), Inquiry{Name: "Ada", Email: "ada@example.com", Subject: "Hi", Message: "Hello"}))
}
