package middlewares

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"

	helper "dtuportal_backend/internals/helpers"
)

// RequestIDMiddleware honours an incoming X-Request-ID or mints a UUID.
func RequestIDMiddleware() fiber.Handler {
	return requestid.New(requestid.Config{
		Header:     fiber.HeaderXRequestID,
		Generator:  uuid.NewString,
		ContextKey: helper.RequestIDLocal,
	})
}
