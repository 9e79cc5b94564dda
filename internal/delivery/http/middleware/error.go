package middleware

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v3"
)

// AppError carries the status and client-facing message for a failed request.
// The cause is logged server-side, never returned to the client.
type AppError struct {
	StatusCode int
	Message    string
	Cause      error
}

func (e *AppError) Error() string {
	if e == nil {
		return ""
	}
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

func NewAppError(statusCode int, message string, cause error) *AppError {
	return &AppError{StatusCode: statusCode, Message: message, Cause: cause}
}

type errorResponse struct {
	Error string `json:"error"`
}

type ErrorMiddleware struct{}

func NewErrorMiddleware() *ErrorMiddleware {
	return &ErrorMiddleware{}
}

// Middleware normalizes every error leaving the handler chain into an
// {"error": ...} body. Unmatched routes surface here as fiber's 404 error.
func (m *ErrorMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) (err error) {
		defer func() {
			if r := recover(); r != nil {
				log.Printf("panic recovered: %v", r)
				err = c.Status(fiber.StatusInternalServerError).JSON(errorResponse{Error: "Internal server error"})
			}
		}()

		err = c.Next()
		if err == nil {
			return nil
		}

		status, msg := normalizeError(err)
		if status >= 500 {
			log.Printf("request failed: %v", err)
		}
		return c.Status(status).JSON(errorResponse{Error: msg})
	}
}

func normalizeError(err error) (int, string) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		status := appErr.StatusCode
		if status <= 0 {
			status = fiber.StatusInternalServerError
		}
		msg := appErr.Message
		if msg == "" {
			msg = defaultMessageForStatus(status)
		}
		return status, msg
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		status := fiberErr.Code
		if status <= 0 {
			status = fiber.StatusInternalServerError
		}
		if status >= 500 {
			return status, "Internal server error"
		}
		return status, defaultMessageForStatus(status)
	}

	return fiber.StatusInternalServerError, "Internal server error"
}

func defaultMessageForStatus(status int) string {
	switch status {
	case fiber.StatusBadRequest:
		return "Bad request"
	case fiber.StatusNotFound:
		return "Not found"
	case fiber.StatusMethodNotAllowed:
		return "Method not allowed"
	default:
		if status >= 500 {
			return "Internal server error"
		}
		return "Request failed"
	}
}
