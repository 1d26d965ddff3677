package model

import "time"

// PriorityScore is the composite score for one task. Derived and ephemeral:
// recomputed on every planning run, never persisted.
type PriorityScore struct {
	Urgency            float64 `json:"urgency"`
	Importance         float64 `json:"importance"`
	EffortFit          float64 `json:"effort_fit"`
	DependencyReady    float64 `json:"dependency_ready"`
	SlackRisk          float64 `json:"slack_risk"`
	UncertaintyPenalty float64 `json:"uncertainty_penalty"`
	Total              float64 `json:"total"`
}

// Factors returns the raw factor map carried in the explainability bundle.
func (s PriorityScore) Factors() map[string]float64 {
	return map[string]float64{
		"urgency":             s.Urgency,
		"importance":          s.Importance,
		"effort_fit":          s.EffortFit,
		"dependency_ready":    s.DependencyReady,
		"slack_risk":          s.SlackRisk,
		"uncertainty_penalty": s.UncertaintyPenalty,
	}
}

// TimeWindow is a reserved start/end slot. The current algorithm never
// populates it; it exists for future slot assignment.
type TimeWindow struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Explainability bundles everything needed to justify a placement decision.
type Explainability struct {
	Factors          map[string]float64 `json:"factors"`
	Assumptions      []string           `json:"assumptions"`
	ConditionalHints []string           `json:"conditional_hints,omitempty"`
}

// PlannedTask pairs one InferredTask with its score and placement rationale.
type PlannedTask struct {
	Task             InferredTask   `json:"task"`
	Score            PriorityScore  `json:"score"`
	TimeWindow       *TimeWindow    `json:"time_window,omitempty"`
	SchedulingReason string         `json:"scheduling_reason"`
	Explainability   Explainability `json:"explainability"`
}

// Plan section names.
type PlanSection string

const (
	SectionNow   PlanSection = "now"
	SectionNext  PlanSection = "next"
	SectionLater PlanSection = "later"
)

// PlanSections holds the three-way partition of planned tasks, each slice
// preserving descending score order.
type PlanSections struct {
	Now   []PlannedTask `json:"now"`
	Next  []PlannedTask `json:"next"`
	Later []PlannedTask `json:"later"`
}

// PlanMetadata carries the aggregate counters of a plan.
type PlanMetadata struct {
	TotalTasks           int       `json:"total_tasks"`
	TotalDurationMinutes int       `json:"total_duration_minutes"`
	PlanningDate         time.Time `json:"planning_date"`
}

// DailyPlan is the terminal artifact for one calendar date. Created fresh on
// every planning request and never mutated after assembly.
type DailyPlan struct {
	ID             string        `json:"id"`
	Date           time.Time     `json:"date"`
	Sections       PlanSections  `json:"sections"`
	AmbiguousTasks []string      `json:"ambiguous_tasks"` // ids needing clarification; reserved
	OverdueTasks   []PlannedTask `json:"overdue_tasks"`
	Metadata       PlanMetadata  `json:"metadata"`
}
