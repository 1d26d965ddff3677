package http

import (
	"github.com/gin-gonic/gin"

	"personal-task-planner/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw *middleware.Middleware) {
	group := rg.Group("/planner")
	{
		group.POST("/parse", mw.RateLimit(), h.Parse)
		group.POST("/infer", mw.RateLimit(), h.Infer)
		group.POST("/plan", mw.RateLimit(), h.Plan)
	}
}
