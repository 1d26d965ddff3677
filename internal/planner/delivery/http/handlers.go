package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"personal-task-planner/internal/planner"
	"personal-task-planner/pkg/response"
)

// Parse godoc
// @Summary     Parse freeform task text
// @Description Extracts task candidates from natural-language text, with confidence and rationale per inferred field.
// @Tags        Planner
// @Accept      json
// @Produce     json
// @Param       body body parseReq true "Freeform text"
// @Success     200 {object} parseResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/planner/parse [POST]
func (h *handler) Parse(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processParseReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	result, err := h.uc.ParseFreeform(ctx, scopeFromContext(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ParseFreeform: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, parseResp{Result: result})
}

// Infer godoc
// @Summary     Infer missing task fields
// @Description Fills in missing priority and duration on a partial task with confidence levels and rationales.
// @Tags        Planner
// @Accept      json
// @Produce     json
// @Param       body body inferReq true "Partial task plus optional context"
// @Success     200 {object} inferResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/planner/infer [POST]
func (h *handler) Infer(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processInferReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	task, err := h.uc.InferFields(ctx, req.Task, req.Context)
	if err != nil {
		h.l.Errorf(ctx, "uc.InferFields: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, inferResp{Task: task})
}

// Plan godoc
// @Summary     Generate a daily plan
// @Description Scores every task and partitions the set into now/next/later sections with explainable placement.
// @Tags        Planner
// @Accept      json
// @Produce     json
// @Param       body body planReq true "Tasks, settings and optional plan date"
// @Success     200 {object} planResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/planner/plan [POST]
func (h *handler) Plan(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processPlanReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	plan, err := h.uc.GenerateDailyPlan(ctx, scopeFromContext(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.GenerateDailyPlan: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, planResp{Plan: plan})
}

// mapError translates domain errors into HTTP responses. Boundary validation
// errors are the caller's fault; everything else is a 500.
func (h *handler) mapError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, planner.ErrEmptyInput), errors.Is(err, planner.ErrInvalidTask):
		response.Error(c, err, nil)
	default:
		response.InternalError(c, err)
	}
}
