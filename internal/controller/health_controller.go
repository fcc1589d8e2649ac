package controller

import (
	"time"

	"notes-manager/internal/dto"
	"notes-manager/internal/pkg/serverutils"
	"notes-manager/pkg/database"

	"github.com/gofiber/fiber/v2"
)

type IHealthController interface {
	RegisterRoutes(r fiber.Router)
	Health(ctx *fiber.Ctx) error
	Test(ctx *fiber.Ctx) error
}

type healthController struct {
	dbManager   *database.Manager
	environment string
	startedAt   time.Time
}

func NewHealthController(dbManager *database.Manager, environment string) IHealthController {
	return &healthController{
		dbManager:   dbManager,
		environment: environment,
		startedAt:   time.Now(),
	}
}

func (c *healthController) RegisterRoutes(r fiber.Router) {
	r.Get("/health", c.Health)
	r.Get("/test", c.Test)
}

func (c *healthController) Health(ctx *fiber.Ctx) error {
	dbStatus := "connected"
	if c.dbManager == nil || c.dbManager.Ping(ctx.Context()) != nil {
		dbStatus = "disconnected"
	}

	res := dto.HealthResponse{
		Status:      "ok",
		DBStatus:    dbStatus,
		Environment: c.environment,
		Uptime:      time.Since(c.startedAt).String(),
		Timestamp:   time.Now().UTC(),
	}

	return ctx.JSON(serverutils.SuccessResponse("Service is healthy", res))
}

// Test is a bare liveness probe: no store round-trip involved.
func (c *healthController) Test(ctx *fiber.Ctx) error {
	return ctx.JSON(serverutils.SuccessResponse("Notes Manager API is running", fiber.Map{
		"environment": c.environment,
		"version":     "1.0.0",
	}))
}
