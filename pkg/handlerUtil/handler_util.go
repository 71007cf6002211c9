package handlerUtil

import (
	"LogoVision/pkg/log"
	"LogoVision/pkg/response"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	TraceID string `json:"traceId,omitempty"`
}

type ErrorHandler struct {
	logger *logrus.Logger
}

func New(logger *logrus.Logger) *ErrorHandler {
	return &ErrorHandler{
		logger: logger,
	}
}

func (h *ErrorHandler) Handle(c *fiber.Ctx, requestID string, err error, path string, operation string) error {
	fields := log.Fields{
		"request_id": requestID,
		"error":      err.Error(),
		"path":       path,
		"operation":  operation,
	}

	var respErr *response.Error
	if errors.As(err, &respErr) {
		fields["code"] = respErr.Code
		if respErr.Code >= fiber.StatusInternalServerError {
			h.logger.WithFields(fields).Error("Operation failed with server error")
		} else {
			h.logger.WithFields(fields).Warn("Operation failed with error response")
		}
		return c.Status(respErr.Code).JSON(ErrorResponse{Success: false, Error: respErr.Error()})
	}

	traceID := log.ErrorWithTraceID(h.logger, fields, "Unexpected error")

	return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
		Success: false,
		Error:   "Unexpected error",
		TraceID: traceID,
	})
}

func (h *ErrorHandler) HandleSuccess(c *fiber.Ctx, statusCode int, data interface{}) error {
	if data == nil {
		return c.SendStatus(statusCode)
	}
	return c.Status(statusCode).JSON(data)
}

// FiberErrorHandler renders errors escaping the handlers, including the
// framework's own (body limit, unknown route, recovered panics), in the
// same envelope. Oversized bodies are reported as tooLarge with 400.
func FiberErrorHandler(logger *logrus.Logger, tooLarge error) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		requestID, _ := c.Locals("X-Request-ID").(string)

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			if fiberErr.Code == fiber.StatusRequestEntityTooLarge && tooLarge != nil {
				return New(logger).Handle(c, requestID, tooLarge, c.Path(), "read_body")
			}

			logger.WithFields(log.Fields{
				"request_id": requestID,
				"path":       c.Path(),
				"code":       fiberErr.Code,
				"error":      fiberErr.Message,
			}).Warn("Request rejected")
			return c.Status(fiberErr.Code).JSON(ErrorResponse{Success: false, Error: fiberErr.Message})
		}

		return New(logger).Handle(c, requestID, err, c.Path(), "unhandled")
	}
}
