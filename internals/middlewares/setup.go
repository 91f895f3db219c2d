package middlewares

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"

	"dtuportal_backend/internals/configs"
	"dtuportal_backend/internals/metrics"
	"dtuportal_backend/internals/middlewares/logger"
)

// SetupMiddlewares installs the global chain. Order matters: the request id
// must exist before logging, and recovery sits innermost so a panic still
// produces a logged, counted 500.
func SetupMiddlewares(app *fiber.App, cfg *configs.Config, m *metrics.Metrics) {
	app.Use(RequestIDMiddleware())
	app.Use(logger.LoggerMiddleware())
	app.Use(MetricsMiddleware(m))
	app.Use(CorsMiddleware(cfg.CorsAllowOrigins))
	app.Use(compress.New(compress.Config{Level: compress.LevelDefault}))
	app.Use(etag.New())
	app.Use(TimeoutMiddleware(cfg.RequestTimeout))
	app.Use(RecoveryMiddleware())
}
