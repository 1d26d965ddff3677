package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"personal-task-planner/internal/middleware"
	plannerHTTP "personal-task-planner/internal/planner/delivery/http"
)

// setupPlannerDomain wires the planner domain and registers its routes.
func (srv *HTTPServer) setupPlannerDomain(ctx context.Context, api *gin.RouterGroup, mw *middleware.Middleware) error {
	h := plannerHTTP.New(srv.l, srv.plannerUC)

	// Registers /api/v1/planner/{parse,infer,plan}
	plannerHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Planner domain registered")
	return nil
}
