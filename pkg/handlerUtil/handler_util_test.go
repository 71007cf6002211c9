package handlerUtil

import (
	"LogoVision/pkg/response"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

func newTestLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func decodeError(t *testing.T, resp *http.Response) ErrorResponse {
	t.Helper()
	defer resp.Body.Close()

	var body ErrorResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	return body
}

func TestHandleMapsResponseErrors(t *testing.T) {
	logger := newTestLogger()
	errNotFound := response.NewError(http.StatusNotFound, "thing not found")

	app := fiber.New()
	app.Get("/known", func(c *fiber.Ctx) error {
		return New(logger).Handle(c, "req-1", fmt.Errorf("lookup: %w", errNotFound), c.Path(), "lookup")
	})
	app.Get("/unknown", func(c *fiber.Ctx) error {
		return New(logger).Handle(c, "req-2", errors.New("disk on fire"), c.Path(), "lookup")
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/known", nil))
	if err != nil {
		t.Fatalf("app.Test() error = %v", err)
	}
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("Expected 404, got %d", resp.StatusCode)
	}
	if body := decodeError(t, resp); body.Success || body.Error != "thing not found" {
		t.Errorf("Unexpected body: %+v", body)
	}

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/unknown", nil))
	if err != nil {
		t.Fatalf("app.Test() error = %v", err)
	}
	if resp.StatusCode != http.StatusInternalServerError {
		t.Errorf("Expected 500, got %d", resp.StatusCode)
	}
	body := decodeError(t, resp)
	if body.Error != "Unexpected error" {
		t.Errorf("Internal error details leaked: %q", body.Error)
	}
	if body.TraceID != "req-2" {
		t.Errorf("Expected request id as trace id, got %q", body.TraceID)
	}
}

func TestFiberErrorHandler(t *testing.T) {
	errTooLarge := response.NewError(http.StatusBadRequest, "too large")

	app := fiber.New(fiber.Config{ErrorHandler: FiberErrorHandler(newTestLogger(), errTooLarge)})
	app.Get("/big", func(c *fiber.Ctx) error {
		return fiber.ErrRequestEntityTooLarge
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/big", nil))
	if err != nil {
		t.Fatalf("app.Test() error = %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("Expected 400, got %d", resp.StatusCode)
	}
	if body := decodeError(t, resp); body.Error != "too large" {
		t.Errorf("Unexpected body: %+v", body)
	}

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/missing", nil))
	if err != nil {
		t.Fatalf("app.Test() error = %v", err)
	}
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("Expected 404, got %d", resp.StatusCode)
	}
	if body := decodeError(t, resp); body.Success || body.Error == "" {
		t.Errorf("Unexpected body: %+v", body)
	}
}
