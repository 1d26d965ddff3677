package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"personal-task-planner/internal/model"
	"personal-task-planner/internal/planner"
	"personal-task-planner/pkg/gcalendar"
)

// GenerateDailyPlan scores every task and partitions the set into
// now/next/later sections with an explanation per placement. Total over any
// well-formed task list: the empty list yields an empty plan.
func (uc *implUseCase) GenerateDailyPlan(ctx context.Context, sc model.Scope, input planner.PlanInput) (model.DailyPlan, error) {
	for _, t := range input.Tasks {
		if strings.TrimSpace(t.Title) == "" {
			return model.DailyPlan{}, planner.ErrInvalidTask
		}
		if t.DurationMinutes != nil && *t.DurationMinutes <= 0 {
			return model.DailyPlan{}, planner.ErrInvalidTask
		}
	}

	now := uc.now()
	planDate := now
	if input.PlanDate != nil {
		planDate = *input.PlanDate
	}

	settings := uc.loadHardCommitments(ctx, input.Settings, planDate)

	uc.l.Infof(ctx, "GenerateDailyPlan: user=%s tasks=%d commitments=%d",
		sc.UserID, len(input.Tasks), len(settings.HardCommitments))

	planned := make([]model.PlannedTask, 0, len(input.Tasks))
	for _, t := range input.Tasks {
		score := scoreTask(t, settings, now)
		planned = append(planned, model.PlannedTask{
			Task:             t,
			Score:            score,
			SchedulingReason: schedulingReason(score),
			Explainability: model.Explainability{
				Factors:          score.Factors(),
				Assumptions:      assumptions(t),
				ConditionalHints: t.ConditionalHints,
			},
		})
	}

	// Stable: ties keep original relative order.
	sort.SliceStable(planned, func(i, j int) bool {
		return planned[i].Score.Total > planned[j].Score.Total
	})

	var sections model.PlanSections
	var overdue []model.PlannedTask
	totalDuration := 0

	for _, pt := range planned {
		switch categorize(pt.Score) {
		case model.SectionNow:
			sections.Now = append(sections.Now, pt)
		case model.SectionNext:
			sections.Next = append(sections.Next, pt)
		default:
			sections.Later = append(sections.Later, pt)
		}

		// Overdue tracking is independent of section assignment.
		if deadline, ok := pt.Task.EffectiveDeadline(); ok && deadline.Before(now) {
			overdue = append(overdue, pt)
		}

		if d, ok := pt.Task.EffectiveDuration(); ok {
			totalDuration += d
		}
	}

	return model.DailyPlan{
		ID:             uuid.NewString(),
		Date:           planDate,
		Sections:       sections,
		AmbiguousTasks: []string{},
		OverdueTasks:   overdue,
		Metadata: model.PlanMetadata{
			TotalTasks:           len(planned),
			TotalDurationMinutes: totalDuration,
			PlanningDate:         now,
		},
	}, nil
}

// categorize maps a score to its plan section.
func categorize(s model.PriorityScore) model.PlanSection {
	switch {
	case s.Urgency > 0.8 || s.Total > 0.8:
		return model.SectionNow
	case s.Total > 0.5:
		return model.SectionNext
	default:
		return model.SectionLater
	}
}

// schedulingReason concatenates the triggered reason phrases for a score.
func schedulingReason(s model.PriorityScore) string {
	var reasons []string

	if s.Urgency > 0.8 {
		reasons = append(reasons, "urgent deadline")
	} else if s.Urgency > 0.6 {
		reasons = append(reasons, "approaching deadline")
	}

	if s.Importance > 0.8 {
		reasons = append(reasons, "high priority")
	} else if s.Importance < 0.4 {
		reasons = append(reasons, "lower priority")
	}

	if s.UncertaintyPenalty > 0.1 {
		reasons = append(reasons, "adjusted for inference uncertainty")
	}

	if len(reasons) == 0 {
		return "Scheduled based on availability."
	}
	return fmt.Sprintf("Scheduled due to %s.", strings.Join(reasons, ", "))
}

// assumptions lists one entry per low/medium-confidence inference, in stable
// field order.
func assumptions(t model.InferredTask) []string {
	out := []string{}
	for _, field := range []string{model.FieldPriority, model.FieldDuration, model.FieldDeadline, model.FieldCategory} {
		inf, found := t.Inferences[field]
		if !found || inf.Confidence == model.ConfidenceHigh {
			continue
		}
		out = append(out, fmt.Sprintf("%s inferred with %s confidence: %s", field, inf.Confidence, inf.Rationale))
	}
	return out
}

// loadHardCommitments fills settings.HardCommitments from the calendar when a
// client is configured and the caller supplied none. Calendar failures degrade
// gracefully: the plan proceeds without commitments.
func (uc *implUseCase) loadHardCommitments(ctx context.Context, settings model.PlanningSettings, planDate time.Time) model.PlanningSettings {
	if uc.calendar == nil || len(settings.HardCommitments) > 0 {
		return settings
	}

	dayStart := uc.dateMath.StartOfDay(planDate)
	events, err := uc.calendar.ListEvents(ctx, gcalendar.ListEventsRequest{
		CalendarID: uc.calendarID,
		TimeMin:    dayStart,
		TimeMax:    uc.dateMath.EndOfDay(planDate),
	})
	if err != nil {
		uc.l.Warnf(ctx, "GenerateDailyPlan: could not load calendar commitments (non-fatal): %v", err)
		return settings
	}

	for _, ev := range events {
		settings.HardCommitments = append(settings.HardCommitments, model.HardCommitment{
			ID:          ev.ID,
			Title:       ev.Summary,
			Start:       ev.StartTime,
			End:         ev.EndTime,
			Description: ev.Description,
		})
	}
	return settings
}
