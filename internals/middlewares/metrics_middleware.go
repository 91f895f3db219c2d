package middlewares

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"dtuportal_backend/internals/metrics"
)

// MetricsMiddleware records every request under its route pattern so that
// path parameters do not explode label cardinality.
func MetricsMiddleware(m *metrics.Metrics) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			status = fiber.StatusInternalServerError
			var fe *fiber.Error
			if errors.As(err, &fe) {
				status = fe.Code
			}
		}
		m.ObserveRequest(c.Method(), c.Route().Path, status, time.Since(start))
		return err
	}
}
