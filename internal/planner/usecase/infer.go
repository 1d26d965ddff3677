package usecase

import (
	"context"
	"strings"
	"time"

	"personal-task-planner/internal/model"
	"personal-task-planner/internal/planner"
)

// Title keywords driving the duration heuristic.
var (
	complexityVerbs = []string{"research", "analyze", "develop", "design", "create", "build"}
	quickVerbs      = []string{"check", "review", "send", "call", "email"}
)

// InferFields fills in missing priority and duration on a partial task.
// Pure given its input plus the current wall clock, which is used only for
// deadline proximity.
func (uc *implUseCase) InferFields(ctx context.Context, task model.StructuredTask, taskContext string) (model.InferredTask, error) {
	if strings.TrimSpace(task.Title) == "" {
		return model.InferredTask{}, planner.ErrInvalidTask
	}
	if task.DurationMinutes != nil && *task.DurationMinutes <= 0 {
		return model.InferredTask{}, planner.ErrInvalidTask
	}

	out := inferFields(task, uc.now())
	uc.l.Debugf(ctx, "InferFields: task=%s inferred=%d fields", task.ID, len(out.Inferences))
	return out, nil
}

// inferFields is the deterministic core shared with the parsing strategies.
func inferFields(task model.StructuredTask, now time.Time) model.InferredTask {
	out := model.InferredTask{
		StructuredTask: task,
		Inferences:     make(map[string]model.Inference),
	}

	if task.Priority == nil {
		out.Inferences[model.FieldPriority] = inferPriority(task.Deadline, now)
		out.ConditionalHints = append(out.ConditionalHints,
			"priority was inferred; adjust it to move the task between plan sections")
	}

	if task.DurationMinutes == nil {
		out.Inferences[model.FieldDuration] = inferDuration(task.Title)
		out.ConditionalHints = append(out.ConditionalHints,
			"duration estimate can be adjusted; shorter tasks will be scheduled in available gaps")
	}

	return out
}

// inferPriority derives priority from deadline proximity.
func inferPriority(deadline *time.Time, now time.Time) model.Inference {
	if deadline == nil {
		return model.Inference{
			Value:      3,
			Confidence: model.ConfidenceMedium,
			Rationale:  "no deadline, default medium priority",
		}
	}

	hoursUntil := deadline.Sub(now).Hours()
	switch {
	case hoursUntil < 24:
		return model.Inference{
			Value:      5,
			Confidence: model.ConfidenceHigh,
			Rationale:  "deadline within 24 hours",
		}
	case hoursUntil < 72:
		return model.Inference{
			Value:      4,
			Confidence: model.ConfidenceMedium,
			Rationale:  "deadline within 72 hours",
		}
	default:
		return model.Inference{
			Value:      3,
			Confidence: model.ConfidenceMedium,
			Rationale:  "default medium priority",
		}
	}
}

// inferDuration estimates duration from the title text.
func inferDuration(title string) model.Inference {
	lower := strings.ToLower(title)

	if len(title) > 50 || containsAny(lower, complexityVerbs) {
		return model.Inference{
			Value:      120,
			Confidence: model.ConfidenceMedium,
			Rationale:  "complex task, estimated 2 hours",
		}
	}

	if len(title) < 20 && containsAny(lower, quickVerbs) {
		return model.Inference{
			Value:      30,
			Confidence: model.ConfidenceMedium,
			Rationale:  "quick action, estimated 30 minutes",
		}
	}

	return model.Inference{
		Value:      60,
		Confidence: model.ConfidenceLow,
		Rationale:  "default estimate of 1 hour",
	}
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}
