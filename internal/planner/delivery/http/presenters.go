package http

import (
	"time"

	"personal-task-planner/internal/model"
	"personal-task-planner/internal/planner"
)

// --- Request DTOs ---

type parseReq struct {
	Text string `json:"text" binding:"required,min=1"`
}

func (r parseReq) toInput() planner.ParseInput {
	return planner.ParseInput{RawText: r.Text}
}

// ---

type inferReq struct {
	Task    model.StructuredTask `json:"task" binding:"required"`
	Context string               `json:"context"`
}

// ---

type planReq struct {
	Tasks    []model.InferredTask    `json:"tasks"`
	Settings *model.PlanningSettings `json:"settings"`
	PlanDate *time.Time              `json:"plan_date"`
}

func (r planReq) toInput() planner.PlanInput {
	settings := model.DefaultPlanningSettings()
	if r.Settings != nil {
		settings = *r.Settings
	}
	return planner.PlanInput{
		Tasks:    r.Tasks,
		Settings: settings,
		PlanDate: r.PlanDate,
	}
}

// --- Response DTOs ---

type parseResp struct {
	Result planner.FreeformParseResult `json:"result"`
}

type inferResp struct {
	Task model.InferredTask `json:"task"`
}

type planResp struct {
	Plan model.DailyPlan `json:"plan"`
}
