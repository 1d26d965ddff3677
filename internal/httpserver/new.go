package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"personal-task-planner/internal/model"
	"personal-task-planner/internal/planner"
	pkgLog "personal-task-planner/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	gin         *gin.Engine
	l           pkgLog.Logger
	port        int
	mode        string
	environment model.Environment

	plannerUC  planner.UseCase
	ratePerMin int
}

// Config is the dependency bag passed to New().
type Config struct {
	Port        int
	Mode        string
	Environment model.Environment
	RatePerMin  int

	PlannerUC planner.UseCase
}

// New creates a new HTTPServer instance.
func New(logger pkgLog.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.New(),
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		plannerUC:   cfg.PlannerUC,
		ratePerMin:  cfg.RatePerMin,
	}

	if srv.environment == "" {
		srv.environment = model.EnvironmentDevelopment
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.plannerUC == nil {
		return errors.New("planner usecase is required")
	}
	return nil
}
