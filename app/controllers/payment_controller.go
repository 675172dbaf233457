package controllers

import (
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	fiberlog "github.com/gofiber/fiber/v2/log"

	"github.com/boldgroup/website/app/models"
	"github.com/boldgroup/website/app/repository"
	"github.com/boldgroup/website/internal/pkg/catalog"
	"github.com/boldgroup/website/internal/pkg/checkout"
	"github.com/boldgroup/website/internal/pkg/metrics"
	"github.com/boldgroup/website/internal/pkg/pricing"
)

const unknownLabel = "unknown"

// PaymentController handles checkout submissions and receipts.
type PaymentController struct {
	checkout *checkout.Service
	payments repository.PaymentRepository
	catalog  *catalog.Store
}

func NewPaymentController(payments repository.PaymentRepository, store *catalog.Store) *PaymentController {
	return &PaymentController{
		checkout: checkout.NewService(payments),
		payments: payments,
		catalog:  store,
	}
}

// HandleCreatePayment records a checkout order. Payment capture is simulated:
// card fields are read from the body and dropped.
func (pc *PaymentController) HandleCreatePayment(c *fiber.Ctx) error {
	var req checkout.CreatePaymentRequest
	if err := c.BodyParser(&req); err != nil {
		metrics.PaymentsRejected.WithLabelValues("invalid_body").Inc()
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid request body",
		})
	}

	payment, err := pc.checkout.Submit(c.UserContext(), req)
	if err != nil {
		var verr *checkout.ValidationError
		if errors.As(err, &verr) {
			metrics.PaymentsRejected.WithLabelValues("validation").Inc()
			message := "Missing required fields"
			if !verr.MissingOnly() {
				message = "Missing or invalid fields"
			}
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"message": message,
				"fields":  verr.Fields,
				"errors":  verr.Violations,
			})
		}

		metrics.PaymentsRejected.WithLabelValues("ledger").Inc()
		fiberlog.Errorf("Payment failed: service=%s package=%s request_id=%s: %v", req.ServiceID, req.PackageID, requestID(c), err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to process payment",
			"error":   err.Error(),
		})
	}

	serviceLabel, packageLabel := pc.metricLabels(payment)
	metrics.PaymentsRecorded.WithLabelValues(serviceLabel, packageLabel).Inc()
	fiberlog.Infof("Payment recorded: id=%d service=%s package=%s amount=%d request_id=%s",
		payment.ID, payment.ServiceID, payment.PackageID, payment.Amount, requestID(c))

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Payment processed successfully",
		"payment": payment,
	})
}

// HandleGetReceipt renders a recorded payment without the customer's contact
// details.
func (pc *PaymentController) HandleGetReceipt(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil || id == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid payment id"})
	}

	payment, err := pc.payments.GetByID(c.UserContext(), id)
	if err != nil {
		if errors.Is(err, repository.ErrPaymentNotFound) {
			return notFound(c, "Payment not found")
		}
		fiberlog.Errorf("Receipt lookup failed: id=%d: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to load payment"})
	}

	service := fiber.Map{"id": payment.ServiceID}
	if s, ok := pc.catalog.GetServiceByID(payment.ServiceID); ok {
		service["title"] = s.Title
	}
	pkg := fiber.Map{"id": payment.PackageID}
	if p, ok := pc.catalog.GetPackageByID(payment.ServiceID, payment.PackageID); ok {
		pkg["name"] = p.Name
	}

	return c.JSON(fiber.Map{
		"id":        payment.ID,
		"reference": payment.Reference,
		"service":   service,
		"package":   pkg,
		"quote":     pricing.Calculate(payment.Amount),
		"status":    payment.Status,
		"createdAt": payment.CreatedAt.UTC().Format(time.RFC3339),
	})
}

// metricLabels keeps client supplied ids out of the label set unless they
// name a catalog entry.
func (pc *PaymentController) metricLabels(payment *models.Payment) (string, string) {
	if _, ok := pc.catalog.GetPackageByID(payment.ServiceID, payment.PackageID); !ok {
		return unknownLabel, unknownLabel
	}
	return payment.ServiceID, payment.PackageID
}
