package routes

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"gorm.io/gorm"

	database "dtuportal_backend/internals/databases"
	"dtuportal_backend/internals/metrics"
)

const Greeting = "Hello from DTU Portal Backend"

type healthResponse struct {
	Status        string `json:"status"`
	Database      string `json:"database"`
	ServerTime    string `json:"server_time"`
	UptimeSeconds int    `json:"uptime_seconds"`
}

func BaseRoutes(app *fiber.App, db *gorm.DB, m *metrics.Metrics) {
	// never touches the database
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString(Greeting)
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()

		resp := healthResponse{
			Status:        "OK",
			Database:      "Connected",
			ServerTime:    time.Now().Format(time.RFC3339),
			UptimeSeconds: int(time.Since(startTime).Seconds()),
		}
		status := fiber.StatusOK
		if err := database.Ping(ctx, db); err != nil {
			resp.Status = "DOWN"
			resp.Database = "Database connection error"
			status = fiber.StatusServiceUnavailable
		}
		return c.Status(status).JSON(resp)
	})

	app.Get("/metrics", adaptor.HTTPHandler(m.HTTPHandler()))
}
