package router

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/boldgroup/website/app/controllers"
	"github.com/boldgroup/website/app/repository"
	"github.com/boldgroup/website/internal/pkg/catalog"
	"github.com/boldgroup/website/internal/pkg/contact"
)

type Router interface {
	InstallRouter(app *fiber.App)
}

// Dependencies are the services the routers hand to the controllers.
type Dependencies struct {
	Catalog  *catalog.Store
	Payments repository.PaymentRepository
	Contact  *contact.Service

	// Captcha guards the contact form. Nil disables the check.
	Captcha controllers.CaptchaVerifier

	// LimiterStorage backs the API rate limiter. Nil keeps counters in memory.
	LimiterStorage  fiber.Storage
	RateLimitMax    int
	RateLimitWindow time.Duration
	CORSOrigins     string

	MonitorUser     string
	MonitorPassword string
}

func InstallRouter(app *fiber.App, deps Dependencies) {
	// Ops endpoints go first so /metrics and /monitor stay outside the API
	// rate limit.
	setup(app, NewOpsRouter(deps), NewApiRouter(deps))
}

func setup(app *fiber.App, router ...Router) {
	for _, r := range router {
		r.InstallRouter(app)
	}
}
