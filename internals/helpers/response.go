package helper

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	database "dtuportal_backend/internals/databases"
)

// RequestIDLocal is the fiber Locals key the requestid middleware writes to.
const RequestIDLocal = "requestid"

const (
	MsgServerError     = "Server Error"
	MsgStudentNotFound = "Student not found"
)

// NotFoundBody is the structured 404 payload.
type NotFoundBody struct {
	Msg string `json:"msg"`
}

func RequestID(c *fiber.Ctx) string {
	id, _ := c.Locals(RequestIDLocal).(string)
	return id
}

// QueryError logs err with request context and answers 500 with a generic
// text body. SQL text and driver messages never reach the client.
func QueryError(c *fiber.Ctx, err error, msg string) error {
	logRequestError(c, log.Error(), err).Msg(msg)
	return c.Status(fiber.StatusInternalServerError).SendString(MsgServerError)
}

func NotFound(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusNotFound).JSON(NotFoundBody{Msg: msg})
}

// ErrorHandler is the app-level fiber error handler. Framework errors keep
// their status and message; anything else (panics included) becomes a 500.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) && fe.Code < fiber.StatusInternalServerError {
		return c.Status(fe.Code).SendString(fe.Message)
	}
	logRequestError(c, log.Error(), err).Msg("unhandled error")
	return c.Status(fiber.StatusInternalServerError).SendString(MsgServerError)
}

func logRequestError(c *fiber.Ctx, ev *zerolog.Event, err error) *zerolog.Event {
	ev = ev.Err(err).
		Str("method", c.Method()).
		Str("path", c.Path()).
		Str("request_id", RequestID(c))
	if code := database.PgErrorCode(err); code != "" {
		ev = ev.Str("sqlstate", code)
	}
	return ev
}
