package controllers

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	fiberlog "github.com/gofiber/fiber/v2/log"

	"github.com/boldgroup/website/internal/pkg/contact"
	"github.com/boldgroup/website/internal/pkg/metrics"
)

// CaptchaVerifier checks the anti-spam token sent with the contact form.
type CaptchaVerifier interface {
	Verify(ctx context.Context, token string) error
}

type contactRequest struct {
	contact.Inquiry
	CaptchaToken string `json:"captchaToken"`
}

type ContactController struct {
	contact *contact.Service
	captcha CaptchaVerifier
}

// NewContactController wires the inquiry service. A nil captcha skips the
// anti-spam check.
func NewContactController(svc *contact.Service, captcha CaptchaVerifier) *ContactController {
	return &ContactController{contact: svc, captcha: captcha}
}

func (cc *ContactController) HandleSendInquiry(c *fiber.Ctx) error {
	var req contactRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid request body",
		})
	}

	if cc.captcha != nil {
		if err := cc.captcha.Verify(c.UserContext(), req.CaptchaToken); err != nil {
			fiberlog.Warnf("Contact captcha rejected: request_id=%s: %v", requestID(c), err)
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"message": "Captcha verification failed",
			})
		}
	}

	inquiry := req.Inquiry

	if err := cc.contact.Submit(c.UserContext(), inquiry); err != nil {
		var invalid *contact.InvalidInquiryError
		if errors.As(err, &invalid) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"message": "Invalid inquiry",
				"fields":  invalid.Fields,
			})
		}
		fiberlog.Errorf("Contact inquiry failed: request_id=%s: %v", requestID(c), err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to send message",
		})
	}

	metrics.ContactInquiries.Inc()
	fiberlog.Infof("Contact inquiry accepted: subject=%q request_id=%s", inquiry.Subject, requestID(c))
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Message sent",
	})
}
