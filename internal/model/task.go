package model

import "time"

// Confidence is the qualitative certainty attached to an inferred field value.
type Confidence string

const (
	ConfidenceLow    Confidence = "low"
	ConfidenceMedium Confidence = "medium"
	ConfidenceHigh   Confidence = "high"
)

// Valid reports whether c is one of the three known confidence levels.
func (c Confidence) Valid() bool {
	switch c {
	case ConfidenceLow, ConfidenceMedium, ConfidenceHigh:
		return true
	}
	return false
}

// Inferred field names used as keys of InferredTask.Inferences.
const (
	FieldPriority = "priority"
	FieldDuration = "duration"
	FieldDeadline = "deadline"
	FieldCategory = "category"
)

// StructuredTask is a user-supplied or parsed task skeleton.
// ID is assigned once at creation and never reused or mutated.
type StructuredTask struct {
	ID              string     `json:"id"`
	Title           string     `json:"title"`
	Deadline        *time.Time `json:"deadline,omitempty"`
	Priority        *int       `json:"priority,omitempty"` // 1 (lowest) .. 5 (highest)
	DurationMinutes *int       `json:"duration_minutes,omitempty"`
	Dependencies    []string   `json:"dependencies,omitempty"`
	Notes           string     `json:"notes,omitempty"`
	Category        string     `json:"category,omitempty"`
	Splittable      *bool      `json:"splittable,omitempty"`
}

// Inference is a derived value for a field the caller did not supply,
// paired with a confidence level and a human-readable rationale.
type Inference struct {
	Value      any        `json:"value"`
	Confidence Confidence `json:"confidence"`
	Rationale  string     `json:"rationale"`
}

// InferredTask is a StructuredTask plus inference entries for the fields that
// were not explicitly supplied. Immutable once produced: re-inference creates
// a new object.
type InferredTask struct {
	StructuredTask
	Inferences       map[string]Inference `json:"inferences,omitempty"`
	ConditionalHints []string             `json:"conditional_hints,omitempty"`
}

// EffectivePriority returns the explicit priority if set, the inferred one
// otherwise, and ok=false when neither exists.
func (t InferredTask) EffectivePriority() (int, bool) {
	if t.Priority != nil {
		return *t.Priority, true
	}
	if inf, found := t.Inferences[FieldPriority]; found {
		return toInt(inf.Value)
	}
	return 0, false
}

// EffectiveDuration returns the explicit duration in minutes if set, the
// inferred one otherwise, and ok=false when neither exists.
func (t InferredTask) EffectiveDuration() (int, bool) {
	if t.DurationMinutes != nil {
		return *t.DurationMinutes, true
	}
	if inf, found := t.Inferences[FieldDuration]; found {
		return toInt(inf.Value)
	}
	return 0, false
}

// EffectiveDeadline returns the explicit deadline if set, the inferred one
// otherwise, and ok=false when neither exists.
func (t InferredTask) EffectiveDeadline() (time.Time, bool) {
	if t.Deadline != nil {
		return *t.Deadline, true
	}
	if inf, found := t.Inferences[FieldDeadline]; found {
		switch v := inf.Value.(type) {
		case time.Time:
			return v, true
		case string:
			if d, err := time.Parse(time.RFC3339, v); err == nil {
				return d, true
			}
		}
	}
	return time.Time{}, false
}

// toInt normalizes inference values that may arrive as int (local inference)
// or float64 (JSON round-trip through the external service).
func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case float64:
		return int(n), true
	}
	return 0, false
}
