package model

import "time"

// HardCommitment is an immovable calendar block on the plan date.
type HardCommitment struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Start       time.Time `json:"start"`
	End         time.Time `json:"end"`
	Description string    `json:"description,omitempty"`
}

// PlanningSettings is external configuration consumed by the engine.
// The current scheduling algorithm reads but does not yet use these to
// constrain placement.
type PlanningSettings struct {
	WorkingHoursStart  string           `json:"working_hours_start"` // HH:MM
	WorkingHoursEnd    string           `json:"working_hours_end"`   // HH:MM
	WeekendEnabled     bool             `json:"weekend_enabled"`
	FocusBlockMinutes  int              `json:"focus_block_minutes"`
	BreakBufferMinutes int              `json:"break_buffer_minutes"`
	HardCommitments    []HardCommitment `json:"hard_commitments,omitempty"`
}

// DefaultPlanningSettings returns a standard 9-to-5 configuration.
func DefaultPlanningSettings() PlanningSettings {
	return PlanningSettings{
		WorkingHoursStart:  "09:00",
		WorkingHoursEnd:    "17:00",
		WeekendEnabled:     false,
		FocusBlockMinutes:  90,
		BreakBufferMinutes: 15,
	}
}
