package router

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/basicauth"
	"github.com/gofiber/fiber/v2/middleware/monitor"

	"github.com/boldgroup/website/internal/pkg/metrics"
)

// OpsRouter exposes prometheus metrics and the fiber monitor.
type OpsRouter struct {
	monitorUser     string
	monitorPassword string
}

func (h OpsRouter) InstallRouter(app *fiber.App) {
	app.Get("/metrics", metrics.Handler())

	// The monitor stays off unless credentials are configured.
	if h.monitorUser == "" || h.monitorPassword == "" {
		return
	}
	app.Get("/monitor", basicauth.New(basicauth.Config{
		Users: map[string]string{
			h.monitorUser: h.monitorPassword,
		},
	}), monitor.New(monitor.Config{Title: "Bold Group Monitor"}))
}

func NewOpsRouter(deps Dependencies) *OpsRouter {
	return &OpsRouter{
		monitorUser:     deps.MonitorUser,
		monitorPassword: deps.MonitorPassword,
	}
}
