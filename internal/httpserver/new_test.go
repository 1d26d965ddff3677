package httpserver

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"personal-task-planner/internal/model"
	"personal-task-planner/internal/planner"
	pkgLog "personal-task-planner/pkg/log"
)

type stubUseCase struct{}

func (stubUseCase) ParseFreeform(context.Context, model.Scope, planner.ParseInput) (planner.FreeformParseResult, error) {
	return planner.FreeformParseResult{}, nil
}

func (stubUseCase) InferFields(context.Context, model.StructuredTask, string) (model.InferredTask, error) {
	return model.InferredTask{}, nil
}

func (stubUseCase) GenerateDailyPlan(context.Context, model.Scope, planner.PlanInput) (model.DailyPlan, error) {
	return model.DailyPlan{}, nil
}

func validConfig() Config {
	return Config{
		Port:        8080,
		Mode:        gin.TestMode,
		Environment: model.EnvironmentProduction,
		PlannerUC:   stubUseCase{},
	}
}

func TestNew(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		srv, err := New(pkgLog.NewNop(), validConfig())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if srv.environment != model.EnvironmentProduction {
			t.Errorf("environment = %s", srv.environment)
		}
	})

	t.Run("environment defaults to development", func(t *testing.T) {
		cfg := validConfig()
		cfg.Environment = ""
		srv, err := New(pkgLog.NewNop(), cfg)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if srv.environment != model.EnvironmentDevelopment {
			t.Errorf("environment = %s, want development default", srv.environment)
		}
	})

	t.Run("missing dependencies rejected", func(t *testing.T) {
		if _, err := New(nil, validConfig()); err == nil {
			t.Errorf("expected error for missing logger")
		}

		cfg := validConfig()
		cfg.Port = 0
		if _, err := New(pkgLog.NewNop(), cfg); err == nil {
			t.Errorf("expected error for missing port")
		}

		cfg = validConfig()
		cfg.PlannerUC = nil
		if _, err := New(pkgLog.NewNop(), cfg); err == nil {
			t.Errorf("expected error for missing planner usecase")
		}
	})
}

func TestHealthCheck(t *testing.T) {
	gin.SetMode(gin.TestMode)

	srv, err := New(pkgLog.NewNop(), validConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/health", nil)

	srv.healthCheck(c)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	body := w.Body.String()
	for _, want := range []string{"healthy", ServiceName, string(model.EnvironmentProduction)} {
		if !strings.Contains(body, want) {
			t.Errorf("health body missing %q: %s", want, body)
		}
	}
}
