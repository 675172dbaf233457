package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	fiberlog "github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"

	"github.com/boldgroup/website/app/repository"
	"github.com/boldgroup/website/internal/pkg/apidocs"
	"github.com/boldgroup/website/internal/pkg/cache"
	"github.com/boldgroup/website/internal/pkg/catalog"
	"github.com/boldgroup/website/internal/pkg/contact"
	"github.com/boldgroup/website/internal/pkg/env"
	"github.com/boldgroup/website/internal/pkg/hcaptcha"
	"github.com/boldgroup/website/internal/pkg/logging"
	"github.com/boldgroup/website/internal/pkg/mail"
	"github.com/boldgroup/website/internal/pkg/metrics"
	"github.com/boldgroup/website/internal/pkg/router"
)

const shutdownTimeout = 10 * time.Second

func main() {
	app, factory := NewApplication()
	defer func() {
		if err := factory.Close(); err != nil {
			fiberlog.Errorf("Failed to close stores: %v", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	addr := fmt.Sprintf("%s:%s", env.GetEnv("APP_HOST", "0.0.0.0"), env.GetEnv("APP_PORT", "5000"))
	errChan := make(chan error, 1)
	go func() {
		fiberlog.Infof("Listening on %s", addr)
		errChan <- app.Listen(addr)
	}()

	select {
	case err := <-errChan:
		if err != nil {
			fiberlog.Errorf("Server stopped: %v", err)
		}
	case <-sigChan:
		fiberlog.Info("Shutting down gracefully...")
		if err := app.ShutdownWithTimeout(shutdownTimeout); err != nil {
			fiberlog.Errorf("Error during shutdown: %v", err)
		}
	}
}

func NewApplication() (*fiber.App, *repository.Factory) {
	env.SetupEnvFile()
	logOutput := logging.Setup()

	// Define possible base paths
	basePaths := []string{
		"./",        // Current directory
		"../../",    // From cmd/boldgroup to project root
		"../../../", // Fallback
	}

	// Find the correct base path
	basePath := ""
	for _, path := range basePaths {
		if _, err := os.Stat(path + apidocs.SpecPath); err == nil {
			basePath = path
			break
		}
	}

	if basePath == "" {
		panic("Could not find project root directory")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	repoCfg := repository.ConfigFromEnv()
	factory := repository.NewFactory(repoCfg)
	repos, err := factory.GetRepositories(ctx)
	if err != nil {
		panic(fmt.Sprintf("Could not initialize payment store: %v", err))
	}

	app := fiber.New(fiber.Config{
		AppName:      "Bold Group",
		BodyLimit:    1 << 20,
		ErrorHandler: errorHandler,
	})

	app.Use(requestid.New(requestid.Config{
		Header:    fiber.HeaderXRequestID,
		Generator: uuid.NewString,
	}))
	app.Use(recover.New(recover.Config{EnableStackTrace: env.IsDev()}))
	app.Use(helmet.New())
	app.Use(logger.New(logger.Config{
		Format:     "${time} | ${locals:requestid} | ${status} | ${latency} | ${ip} | ${method} | ${path} | ${error}\n",
		TimeFormat: time.RFC3339,
		TimeZone:   "UTC",
		Output:     logOutput,
	}))
	app.Use(metrics.Middleware())

	// SWAGGER / OPENAPI
	if err := apidocs.Mount(app, basePath); err != nil {
		panic(fmt.Sprintf("Could not load API docs: %v", err))
	}

	deps := router.Dependencies{
		Catalog:         catalog.New(),
		Payments:        repos.Payment,
		Contact:         contact.NewService(contactNotifier()),
		LimiterStorage:  limiterStorage(ctx, repoCfg.Cache),
		RateLimitMax:    env.GetEnvInt("RATE_LIMIT_MAX", 60),
		RateLimitWindow: time.Duration(env.GetEnvInt("RATE_LIMIT_WINDOW_SECONDS", 60)) * time.Second,
		CORSOrigins:     env.GetEnv("CORS_ALLOW_ORIGINS", "*"),
		MonitorUser:     env.GetEnv("MONITOR_USER", ""),
		MonitorPassword: env.GetEnv("MONITOR_PASSWORD", ""),
	}
	if verifier := hcaptcha.FromEnv(); verifier != nil {
		deps.Captcha = verifier
	}

	// ROUTER
	router.InstallRouter(app, deps)

	return app, factory
}

// errorHandler answers unhandled errors with JSON instead of fiber's plain
// text default.
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal Server Error"
	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
		message = e.Message
	}
	if code >= fiber.StatusInternalServerError {
		fiberlog.Errorf("Unhandled error: %s %s: %v", c.Method(), c.Path(), err)
	}
	return c.Status(code).JSON(fiber.Map{"message": message})
}

// limiterStorage shares rate limit counters through Redis when it is
// reachable and falls back to per-process memory otherwise.
func limiterStorage(ctx context.Context, cfg cache.Config) fiber.Storage {
	if env.GetEnv("RATE_LIMIT_STORE", "memory") != "redis" {
		return nil
	}
	client, err := cache.NewClient(ctx, cfg)
	if err != nil {
		fiberlog.Warnf("Rate limiter falls back to memory: %v", err)
		return nil
	}
	_ = client.Close()
	return cache.NewLimiterStorage(cfg)
}

func contactNotifier() contact.Notifier {
	mailCfg := mail.ConfigFromEnv()
	recipient := env.GetEnv("CONTACT_RECIPIENT", "")
	if !mailCfg.Enabled() || recipient == "" {
		return contact.LogNotifier()
	}
	return contact.MailNotifier(mail.NewSMTPMailer(mailCfg), recipient)
}
