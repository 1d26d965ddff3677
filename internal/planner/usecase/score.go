package usecase

import (
	"time"

	"personal-task-planner/internal/model"
)

// Scoring weights. They sum to 1.0 so the weighted base stays in [0,1].
const (
	weightUrgency         = 0.30
	weightImportance      = 0.25
	weightEffortFit       = 0.15
	weightDependencyReady = 0.15
	weightSlackRisk       = 0.15
)

// scoreTask computes the composite priority score for one task. Pure function
// of the task, the settings and the reference time.
func scoreTask(task model.InferredTask, settings model.PlanningSettings, now time.Time) model.PriorityScore {
	s := model.PriorityScore{
		Urgency:            urgencyFactor(task, now),
		Importance:         importanceFactor(task),
		EffortFit:          effortFitFactor(task, settings),
		DependencyReady:    dependencyReadyFactor(task),
		SlackRisk:          slackRiskFactor(task, settings),
		UncertaintyPenalty: uncertaintyPenalty(task),
	}

	total := weightUrgency*s.Urgency +
		weightImportance*s.Importance +
		weightEffortFit*s.EffortFit +
		weightDependencyReady*s.DependencyReady +
		weightSlackRisk*s.SlackRisk -
		s.UncertaintyPenalty

	s.Total = clamp01(total)
	return s
}

// urgencyFactor maps deadline proximity to [0,1].
func urgencyFactor(task model.InferredTask, now time.Time) float64 {
	deadline, ok := task.EffectiveDeadline()
	if !ok {
		return 0.5
	}

	hoursUntil := deadline.Sub(now).Hours()
	switch {
	case hoursUntil < 4:
		return 1.0
	case hoursUntil < 24:
		return 0.9
	case hoursUntil < 72:
		return 0.7
	default:
		return 0.3
	}
}

// importanceFactor maps priority to [0,1], defaulting to 0.6 when no priority
// exists at all.
func importanceFactor(task model.InferredTask) float64 {
	if p, ok := task.EffectivePriority(); ok {
		return float64(p) / 5.0
	}
	return 0.6
}

// effortFitFactor is a placeholder for duration-fit-to-available-time
// analysis. Isolated here so real logic can replace it without touching the
// scorer's contract.
func effortFitFactor(model.InferredTask, model.PlanningSettings) float64 {
	return 1.0
}

// dependencyReadyFactor is a placeholder for dependency-graph analysis.
func dependencyReadyFactor(model.InferredTask) float64 {
	return 1.0
}

// slackRiskFactor is a placeholder for calendar-conflict analysis.
func slackRiskFactor(model.InferredTask, model.PlanningSettings) float64 {
	return 1.0
}

// uncertaintyPenalty sums a deduction per inference entry: the less certain
// the inference, the larger the deduction.
func uncertaintyPenalty(task model.InferredTask) float64 {
	penalty := 0.0
	for _, inf := range task.Inferences {
		switch inf.Confidence {
		case model.ConfidenceLow:
			penalty += 0.10
		case model.ConfidenceMedium:
			penalty += 0.05
		}
	}
	return penalty
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
