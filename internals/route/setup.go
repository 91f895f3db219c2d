package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"dtuportal_backend/internals/metrics"
	routeDetails "dtuportal_backend/internals/route/details"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB, m *metrics.Metrics) {
	startTime = time.Now()

	log.Info().Msg("setting up base routes")
	BaseRoutes(app, db, m)

	log.Info().Msg("mounting academic routes")
	api := app.Group("/api")
	routeDetails.AcademicRoutes(api, db)
}
