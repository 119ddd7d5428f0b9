package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"planregistry/internal/http/middleware"
	"planregistry/internal/service"
)

// errorPayload defines the standardized error response body.
type errorPayload struct {
	RequestID string        `json:"request_id"`
	Error     errorEnvelope `json:"error"`
}

type errorEnvelope struct {
	Code    string   `json:"code"`
	Message string   `json:"message"`
	Fields  []string `json:"fields,omitempty"`
}

// requestIDFromCtx extracts request_id previously stored by middleware.RequestID.
func requestIDFromCtx(c *fiber.Ctx) string {
	if v := c.Locals(middleware.RequestIDLocalKey); v != nil {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// writeError writes a standardized JSON error response without leaking
// internal errors. code is a machine-readable short error code such as
// "VALIDATION_ERROR" or "NOT_FOUND"; message is a safe human-readable string.
func writeError(c *fiber.Ctx, status int, code, message string) error {
	return writeErrorFields(c, status, code, message, nil)
}

// writeErrorFields is writeError with the offending field names attached,
// used by validation failures so the client can mark every missing field.
func writeErrorFields(c *fiber.Ctx, status int, code, message string, fields []string) error {
	res := errorPayload{
		RequestID: requestIDFromCtx(c),
		Error: errorEnvelope{
			Code:    code,
			Message: message,
			Fields:  fields,
		},
	}
	return c.Status(status).JSON(res)
}

// writeServiceError translates the service error taxonomy to HTTP responses.
func writeServiceError(c *fiber.Ctx, err error) error {
	var vErr *service.ValidationError
	var uErr *service.UploadError

	switch {
	case errors.As(err, &vErr):
		return writeErrorFields(c, fiber.StatusBadRequest, "VALIDATION_ERROR", vErr.Error(), vErr.Fields)
	case errors.As(err, &uErr):
		return writeError(c, fiber.StatusBadRequest, "UPLOAD_ERROR", uErr.Reason)
	case errors.Is(err, service.ErrDocIDRequired):
		return writeErrorFields(c, fiber.StatusBadRequest, "VALIDATION_ERROR", err.Error(), []string{"doc_id"})
	case errors.Is(err, service.ErrDocIDConflict):
		return writeError(c, fiber.StatusBadRequest, "CONFLICT", "doc_id already registered")
	case errors.Is(err, service.ErrNotFound):
		return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "resource not found")
	default:
		return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
	}
}

// ErrorHandler returns a Fiber global error handler that standardizes error
// responses for requests that never reached a route handler.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := fiber.StatusInternalServerError
		if e, ok := err.(*fiber.Error); ok {
			status = e.Code
		}

		switch status {
		case fiber.StatusBadRequest:
			return writeError(c, status, "BAD_REQUEST", "bad request")
		case fiber.StatusNotFound:
			return writeError(c, status, "NOT_FOUND", "resource not found")
		case fiber.StatusMethodNotAllowed:
			return writeError(c, status, "METHOD_NOT_ALLOWED", "method not allowed")
		case fiber.StatusRequestEntityTooLarge:
			return writeError(c, status, "UPLOAD_ERROR", "request body too large")
		default:
			return writeError(c, status, "INTERNAL_ERROR", "internal server error")
		}
	}
}
