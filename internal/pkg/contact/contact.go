package contact

import (
	"context"
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var ErrInvalidInquiry = errors.New("invalid inquiry")

// Inquiry is a message sent through the contact form.
type Inquiry struct {
	Name    string `json:"name" validate:"required,max=150"`
	Email   string `json:"email" validate:"required,email,max=200"`
	Phone   string `json:"phone" validate:"max=50"`
	Subject string `json:"subject" validate:"required,max=200"`
	Message string `json:"message" validate:"required,max=5000"`
}

// FieldError names an offending field and the rule it broke.
type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
}

type InvalidInquiryError struct {
	Fields []FieldError
}

func (e *InvalidInquiryError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		names = append(names, f.Field+" ("+f.Rule+")")
	}
	return ErrInvalidInquiry.Error() + ": " + strings.Join(names, ", ")
}

func (e *InvalidInquiryError) Is(target error) bool {
	return target == ErrInvalidInquiry
}

// Notifier is told about every accepted inquiry.
type Notifier interface {
	Notify(ctx context.Context, inquiry Inquiry) error
}

type NotifierFunc func(ctx context.Context, inquiry Inquiry) error

func (f NotifierFunc) Notify(ctx context.Context, inquiry Inquiry) error {
	return f(ctx, inquiry)
}

// Service validates inquiries and hands them to the notifier. Nothing is
// stored; delivery is up to the notifier.
type Service struct {
	notifier Notifier
	validate *validator.Validate
}

func NewService(notifier Notifier) *Service {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		return strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	})
	return &Service{notifier: notifier, validate: v}
}

func (s *Service) Submit(ctx context.Context, inquiry Inquiry) error {
	inquiry.Name = strings.TrimSpace(inquiry.Name)
	inquiry.Email = strings.TrimSpace(inquiry.Email)
	inquiry.Subject = strings.TrimSpace(inquiry.Subject)

	if err := s.validate.Struct(inquiry); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return err
		}
		fields := make([]FieldError, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, FieldError{Field: fe.Field(), Rule: fe.Tag()})
		}
		return &InvalidInquiryError{Fields: fields}
	}

	if s.notifier == nil {
		return nil
	}
	return s.notifier.Notify(ctx, inquiry)
}
