package serverutils

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"

	"paperspace-be/internal/pkg/apperrors"
)

type noopLogger struct{}

func (noopLogger) Debug(module, message string, details map[string]interface{}) {}
func (noopLogger) Info(module, message string, details map[string]interface{})  {}
func (noopLogger) Warn(module, message string, details map[string]interface{})  {}
func (noopLogger) Error(module, message string, details map[string]interface{}) {}
func (noopLogger) Sync() error                                                  { return nil }

func newTestApp(handler fiber.Handler) *fiber.App {
	app := fiber.New()
	app.Use(ErrorHandlerMiddleware(noopLogger{}))
	app.Get("/probe", handler)
	return app
}

func TestErrorHandlerMiddlewareStatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantError  string
	}{
		{"validation", apperrors.Validation("query is required"), fiber.StatusBadRequest, "validation_error"},
		{"unauthorized", apperrors.Unauthorized("invalid credentials"), fiber.StatusUnauthorized, "unauthorized"},
		{"not found", apperrors.NotFound("workspace not found"), fiber.StatusNotFound, "not_found"},
		{"conflict", apperrors.Conflict("paper already in workspace"), fiber.StatusConflict, "conflict"},
		{"extraction", apperrors.Extraction("no extractable text", nil), fiber.StatusUnprocessableEntity, "extraction_error"},
		{"embedding", apperrors.Embedding("embedding backend failed", nil), fiber.StatusUnprocessableEntity, "embedding_error"},
		{"completion", apperrors.Completion("llm request failed", nil), fiber.StatusBadGateway, "completion_error"},
		{"upstream", apperrors.Upstream("failed to search arxiv", nil), fiber.StatusBadGateway, "upstream_error"},
		{"persistence", apperrors.Persistence("insert failed", nil), fiber.StatusInternalServerError, "persistence_error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApp(func(ctx *fiber.Ctx) error {
				return tt.err
			})

			resp, err := app.Test(httptest.NewRequest("GET", "/probe", nil))
			if err != nil {
				t.Fatalf("request failed: %v", err)
			}
			defer resp.Body.Close()

			if resp.StatusCode != tt.wantStatus {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.wantStatus)
			}

			body, _ := io.ReadAll(resp.Body)
			var payload map[string]string
			if err := json.Unmarshal(body, &payload); err != nil {
				t.Fatalf("invalid JSON body %q: %v", body, err)
			}
			if payload["status"] != "error" {
				t.Errorf("status field = %q, want error", payload["status"])
			}
			if payload["error"] != tt.wantError {
				t.Errorf("error field = %q, want %q", payload["error"], tt.wantError)
			}
		})
	}
}

func TestErrorHandlerMiddlewarePassthrough(t *testing.T) {
	app := newTestApp(func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{"ok": true})
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/probe", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
}

func TestErrorHandlerMiddlewareFiberError(t *testing.T) {
	app := newTestApp(func(ctx *fiber.Ctx) error {
		return fiber.ErrMethodNotAllowed
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/probe", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusMethodNotAllowed {
		t.Errorf("status = %d, want 405", resp.StatusCode)
	}
}
