package planner

import (
	"time"

	"personal-task-planner/internal/model"
)

// ParseInput is the input for freeform parsing.
type ParseInput struct {
	RawText string
}

// FreeformParseResult is the outcome of one freeform parse, regardless of
// which strategy produced it.
type FreeformParseResult struct {
	ExtractedTasks []model.InferredTask `json:"extracted_tasks"`
	AmbiguousLines []string             `json:"ambiguous_lines"`
	ParsingErrors  []string             `json:"parsing_errors"`
	Confidence     model.Confidence     `json:"confidence"`
}

// PlanInput is the input for daily plan generation.
type PlanInput struct {
	Tasks    []model.InferredTask
	Settings model.PlanningSettings
	PlanDate *time.Time // nil means "plan for today"
}
