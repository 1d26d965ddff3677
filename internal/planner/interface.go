package planner

import (
	"context"

	"personal-task-planner/internal/model"
)

// UseCase defines the business logic interface for the planner domain.
type UseCase interface {
	// ParseFreeform turns unstructured text into task candidates, delegating
	// to the external text-understanding service when configured and falling
	// back to local heuristics otherwise.
	ParseFreeform(ctx context.Context, sc model.Scope, input ParseInput) (FreeformParseResult, error)

	// InferFields fills in missing priority and duration on a partial task,
	// annotating every inferred value with confidence and rationale.
	InferFields(ctx context.Context, task model.StructuredTask, taskContext string) (model.InferredTask, error)

	// GenerateDailyPlan scores and partitions tasks into a now/next/later
	// plan for one calendar date.
	GenerateDailyPlan(ctx context.Context, sc model.Scope, input PlanInput) (model.DailyPlan, error)
}
