package server

import (
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"dtuportal_backend/internals/configs"
	helper "dtuportal_backend/internals/helpers"
	"dtuportal_backend/internals/metrics"
	middlewares "dtuportal_backend/internals/middlewares"
	routes "dtuportal_backend/internals/route"
)

// NewApp assembles the fiber app: middleware chain, base routes and the
// academic API, all sharing the injected pool.
func NewApp(cfg *configs.Config, db *gorm.DB, m *metrics.Metrics) *fiber.App {
	app := fiber.New(fiber.Config{
		JSONEncoder:           sonic.Marshal,
		JSONDecoder:           sonic.Unmarshal,
		DisableStartupMessage: true,
		UnescapePath:          true,
		ErrorHandler:          helper.ErrorHandler,
		ReadTimeout:           15 * time.Second,
		WriteTimeout:          30 * time.Second,
		IdleTimeout:           90 * time.Second,
	})

	middlewares.SetupMiddlewares(app, cfg, m)
	routes.SetupRoutes(app, db, m)
	return app
}
