package http

import (
	"github.com/gin-gonic/gin"

	"personal-task-planner/internal/model"
)

// processParseReq binds and validates the freeform parse request body.
func (h *handler) processParseReq(c *gin.Context) (parseReq, error) {
	var req parseReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processInferReq binds and validates the field inference request body.
func (h *handler) processInferReq(c *gin.Context) (inferReq, error) {
	var req inferReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processPlanReq binds and validates the plan generation request body.
func (h *handler) processPlanReq(c *gin.Context) (planReq, error) {
	var req planReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// scopeFromContext builds the caller scope from request headers.
func scopeFromContext(c *gin.Context) model.Scope {
	return model.Scope{
		UserID:    c.GetHeader("X-User-ID"),
		RequestID: c.GetString("request_id"),
	}
}
