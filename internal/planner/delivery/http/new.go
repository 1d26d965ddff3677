package http

import (
	"github.com/gin-gonic/gin"

	"personal-task-planner/internal/planner"
	pkgLog "personal-task-planner/pkg/log"
)

// Handler is the public interface for the planner HTTP delivery layer.
type Handler interface {
	Parse(c *gin.Context)
	Infer(c *gin.Context)
	Plan(c *gin.Context)
}

type handler struct {
	l  pkgLog.Logger
	uc planner.UseCase
}

// New creates a new HTTP handler for the planner domain.
func New(l pkgLog.Logger, uc planner.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
