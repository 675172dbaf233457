package router

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"github.com/boldgroup/website/app/controllers"
)

type ApiRouter struct {
	deps Dependencies
}

func (h ApiRouter) InstallRouter(app *fiber.App) {
	api := app.Group("/api", cors.New(cors.Config{AllowOrigins: h.corsOrigins()}), limiter.New(h.limiterConfig()))
	api.Get("/ping", func(ctx *fiber.Ctx) error {
		return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
			"ping": "pong",
		})
	})

	catalogController := controllers.NewCatalogController(h.deps.Catalog)
	api.Get("/services", catalogController.HandleListServices)
	api.Get("/services/:id", catalogController.HandleGetService)
	api.Get("/services/:id/packages", catalogController.HandleListPackages)
	api.Get("/services/:id/packages/:packageId", catalogController.HandleGetPackage)
	api.Get("/quote/:serviceId/:packageId", catalogController.HandleGetQuote)
	api.Get("/team", catalogController.HandleListTeam)
	api.Get("/team/all", catalogController.HandleListAllTeam)
	api.Get("/why-choose-us", catalogController.HandleListWhyChooseUs)

	paymentController := controllers.NewPaymentController(h.deps.Payments, h.deps.Catalog)
	api.Post("/create-payment", paymentController.HandleCreatePayment)
	api.Get("/payments/:id/receipt", paymentController.HandleGetReceipt)

	contactController := controllers.NewContactController(h.deps.Contact, h.deps.Captcha)
	api.Post("/contact", contactController.HandleSendInquiry)
}

func (h ApiRouter) corsOrigins() string {
	if h.deps.CORSOrigins == "" {
		return "*"
	}
	return h.deps.CORSOrigins
}

func (h ApiRouter) limiterConfig() limiter.Config {
	cfg := limiter.Config{
		Max:        h.deps.RateLimitMax,
		Expiration: h.deps.RateLimitWindow,
		Storage:    h.deps.LimiterStorage,
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"message": "Too many requests",
			})
		},
	}
	if cfg.Max <= 0 {
		cfg.Max = 60
	}
	if cfg.Expiration <= 0 {
		cfg.Expiration = time.Minute
	}
	return cfg
}

func NewApiRouter(deps Dependencies) *ApiRouter {
	return &ApiRouter{deps: deps}
}
