package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"personal-task-planner/internal/model"
	"personal-task-planner/internal/planner"
	"personal-task-planner/pkg/gcalendar"
)

func planInput(tasks ...model.InferredTask) planner.PlanInput {
	return planner.PlanInput{
		Tasks:    tasks,
		Settings: model.DefaultPlanningSettings(),
	}
}

func structured(id, title string) model.InferredTask {
	return model.InferredTask{StructuredTask: model.StructuredTask{ID: id, Title: title}}
}

func allPlanned(p model.DailyPlan) []model.PlannedTask {
	var out []model.PlannedTask
	out = append(out, p.Sections.Now...)
	out = append(out, p.Sections.Next...)
	out = append(out, p.Sections.Later...)
	return out
}

func TestGenerateDailyPlanCoverage(t *testing.T) {
	uc := newTestUseCase(nil, nil)

	tasks := []model.InferredTask{
		structured("a", "review budget"),
		structured("b", "call the bank"),
		structured("c", "research competitors"),
	}
	tasks[0].Deadline = timePtr(testNow.Add(2 * time.Hour))
	tasks[2].Deadline = timePtr(testNow.Add(300 * time.Hour))

	plan, err := uc.GenerateDailyPlan(context.Background(), model.Scope{UserID: "u1"}, planInput(tasks...))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	seen := make(map[string]int)
	for _, pt := range allPlanned(plan) {
		seen[pt.Task.ID]++
	}
	if len(seen) != len(tasks) {
		t.Fatalf("expected %d distinct tasks across sections, got %d", len(tasks), len(seen))
	}
	for id, count := range seen {
		if count != 1 {
			t.Errorf("task %s appears %d times, want exactly once", id, count)
		}
	}
	if plan.Metadata.TotalTasks != len(tasks) {
		t.Errorf("TotalTasks = %d, want %d", plan.Metadata.TotalTasks, len(tasks))
	}
}

func TestGenerateDailyPlanDeterministic(t *testing.T) {
	uc := newTestUseCase(nil, nil)
	ctx := context.Background()

	tasks := []model.InferredTask{
		structured("a", "write report"),
		structured("b", "check email"),
	}
	tasks[0].Deadline = timePtr(testNow.Add(12 * time.Hour))

	first, err := uc.GenerateDailyPlan(ctx, model.Scope{}, planInput(tasks...))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := uc.GenerateDailyPlan(ctx, model.Scope{}, planInput(tasks...))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	firstAll, secondAll := allPlanned(first), allPlanned(second)
	if len(firstAll) != len(secondAll) {
		t.Fatalf("plan sizes differ between runs")
	}
	for i := range firstAll {
		if firstAll[i].Task.ID != secondAll[i].Task.ID {
			t.Errorf("ordering differs at %d: %s vs %s", i, firstAll[i].Task.ID, secondAll[i].Task.ID)
		}
		if firstAll[i].Score.Total != secondAll[i].Score.Total {
			t.Errorf("score differs for %s between runs", firstAll[i].Task.ID)
		}
	}
}

func TestGenerateDailyPlanStableTieOrder(t *testing.T) {
	uc := newTestUseCase(nil, nil)

	// Identical tasks score identically; the stable sort must keep input order.
	tasks := []model.InferredTask{
		structured("first", "same title"),
		structured("second", "same title"),
		structured("third", "same title"),
	}

	plan, err := uc.GenerateDailyPlan(context.Background(), model.Scope{}, planInput(tasks...))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	all := allPlanned(plan)
	for i, wantID := range []string{"first", "second", "third"} {
		if all[i].Task.ID != wantID {
			t.Errorf("position %d = %s, want %s", i, all[i].Task.ID, wantID)
		}
	}
}

func TestGenerateDailyPlanSections(t *testing.T) {
	uc := newTestUseCase(nil, nil)

	// Urgent: deadline in 2h, urgency 1.0 forces "now".
	urgent := structured("urgent", "submit filing")
	urgent.Deadline = timePtr(testNow.Add(2 * time.Hour))

	// Middling: no deadline, no priority, no inferences: total 0.75 lands in "next".
	middling := structured("middling", "tidy backlog")

	// Cold: far deadline plus low-confidence inferences pushes total under 0.5.
	cold := structured("cold", "reorganize archive")
	cold.Deadline = timePtr(testNow.Add(240 * time.Hour))
	cold.Inferences = map[string]model.Inference{
		model.FieldPriority: {Value: 3, Confidence: model.ConfidenceLow, Rationale: "assumed"},
		model.FieldDuration: {Value: 60, Confidence: model.ConfidenceLow, Rationale: "default"},
	}

	plan, err := uc.GenerateDailyPlan(context.Background(), model.Scope{}, planInput(urgent, middling, cold))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(plan.Sections.Now) != 1 || plan.Sections.Now[0].Task.ID != "urgent" {
		t.Errorf("expected urgent task in now, got %+v", plan.Sections.Now)
	}
	if len(plan.Sections.Next) != 1 || plan.Sections.Next[0].Task.ID != "middling" {
		t.Errorf("expected middling task in next, got %+v", plan.Sections.Next)
	}
	if len(plan.Sections.Later) != 1 || plan.Sections.Later[0].Task.ID != "cold" {
		t.Errorf("expected cold task in later, got %+v", plan.Sections.Later)
	}

	if !strings.Contains(plan.Sections.Now[0].SchedulingReason, "urgent deadline") {
		t.Errorf("urgent task reason = %q, want mention of urgent deadline", plan.Sections.Now[0].SchedulingReason)
	}
	if plan.Sections.Next[0].SchedulingReason != "Scheduled based on availability." {
		t.Errorf("middling task reason = %q", plan.Sections.Next[0].SchedulingReason)
	}
	if !strings.Contains(plan.Sections.Later[0].SchedulingReason, "adjusted for inference uncertainty") {
		t.Errorf("cold task reason = %q, want uncertainty mention", plan.Sections.Later[0].SchedulingReason)
	}
}

func TestGenerateDailyPlanOverdue(t *testing.T) {
	uc := newTestUseCase(nil, nil)

	overdue := structured("late", "send invoice")
	overdue.Deadline = timePtr(testNow.Add(-3 * time.Hour))
	fresh := structured("fresh", "draft agenda")

	plan, err := uc.GenerateDailyPlan(context.Background(), model.Scope{}, planInput(overdue, fresh))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(plan.OverdueTasks) != 1 || plan.OverdueTasks[0].Task.ID != "late" {
		t.Fatalf("expected exactly the late task in OverdueTasks, got %+v", plan.OverdueTasks)
	}

	// The overdue task still occupies a section.
	found := false
	for _, pt := range allPlanned(plan) {
		if pt.Task.ID == "late" {
			found = true
		}
	}
	if !found {
		t.Errorf("overdue task must also appear in its section")
	}
}

func TestGenerateDailyPlanEmptyInput(t *testing.T) {
	uc := newTestUseCase(nil, nil)

	plan, err := uc.GenerateDailyPlan(context.Background(), model.Scope{}, planInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(plan.Sections.Now)+len(plan.Sections.Next)+len(plan.Sections.Later) != 0 {
		t.Errorf("expected empty sections")
	}
	if len(plan.OverdueTasks) != 0 {
		t.Errorf("expected no overdue tasks")
	}
	if plan.Metadata.TotalTasks != 0 || plan.Metadata.TotalDurationMinutes != 0 {
		t.Errorf("expected zero totals, got %+v", plan.Metadata)
	}
	if plan.ID == "" {
		t.Errorf("plan must always get an ID")
	}
}

func TestGenerateDailyPlanMetadata(t *testing.T) {
	uc := newTestUseCase(nil, nil)

	withDuration := structured("a", "write docs")
	withDuration.DurationMinutes = intPtr(90)
	inferredDuration := structured("b", "refine roadmap")
	inferredDuration.Inferences = map[string]model.Inference{
		model.FieldDuration: {Value: 30, Confidence: model.ConfidenceMedium, Rationale: "quick"},
	}
	noDuration := structured("c", "misc")

	planDate := time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC)
	input := planInput(withDuration, inferredDuration, noDuration)
	input.PlanDate = &planDate

	plan, err := uc.GenerateDailyPlan(context.Background(), model.Scope{}, input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if plan.Metadata.TotalDurationMinutes != 120 {
		t.Errorf("TotalDurationMinutes = %d, want 120 (missing duration counts as 0)", plan.Metadata.TotalDurationMinutes)
	}
	if !plan.Date.Equal(planDate) {
		t.Errorf("plan date = %v, want %v", plan.Date, planDate)
	}
	if !plan.Metadata.PlanningDate.Equal(testNow) {
		t.Errorf("planning date = %v, want %v", plan.Metadata.PlanningDate, testNow)
	}
}

func TestGenerateDailyPlanHardCommitments(t *testing.T) {
	t.Run("loaded from calendar", func(t *testing.T) {
		cal := &fakeCalendar{events: []gcalendar.Event{
			{ID: "ev1", Summary: "standup", StartTime: testNow, EndTime: testNow.Add(30 * time.Minute)},
		}}
		uc := newTestUseCase(nil, cal)

		_, err := uc.GenerateDailyPlan(context.Background(), model.Scope{}, planInput(structured("a", "x")))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cal.calls != 1 {
			t.Errorf("expected one calendar lookup, got %d", cal.calls)
		}
	})

	t.Run("calendar failure degrades gracefully", func(t *testing.T) {
		cal := &fakeCalendar{err: errors.New("calendar down")}
		uc := newTestUseCase(nil, cal)

		plan, err := uc.GenerateDailyPlan(context.Background(), model.Scope{}, planInput(structured("a", "x")))
		if err != nil {
			t.Fatalf("calendar failure must not fail the plan: %v", err)
		}
		if plan.Metadata.TotalTasks != 1 {
			t.Errorf("plan must still contain the task")
		}
	})

	t.Run("caller-supplied commitments skip the calendar", func(t *testing.T) {
		cal := &fakeCalendar{}
		uc := newTestUseCase(nil, cal)

		input := planInput(structured("a", "x"))
		input.Settings.HardCommitments = []model.HardCommitment{
			{ID: "hc1", Title: "lunch", Start: testNow, End: testNow.Add(time.Hour)},
		}

		if _, err := uc.GenerateDailyPlan(context.Background(), model.Scope{}, input); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cal.calls != 0 {
			t.Errorf("calendar must not be queried when commitments are supplied")
		}
	})
}

func TestGenerateDailyPlanRejectsInvalidTask(t *testing.T) {
	uc := newTestUseCase(nil, nil)

	_, err := uc.GenerateDailyPlan(context.Background(), model.Scope{}, planInput(structured("a", " ")))
	if !errors.Is(err, planner.ErrInvalidTask) {
		t.Errorf("expected ErrInvalidTask, got %v", err)
	}

	bad := structured("b", "ok")
	bad.DurationMinutes = intPtr(-5)
	_, err = uc.GenerateDailyPlan(context.Background(), model.Scope{}, planInput(bad))
	if !errors.Is(err, planner.ErrInvalidTask) {
		t.Errorf("expected ErrInvalidTask, got %v", err)
	}
}

func TestGenerateDailyPlanAssumptions(t *testing.T) {
	uc := newTestUseCase(nil, nil)

	task := structured("a", "draft proposal")
	task.Inferences = map[string]model.Inference{
		model.FieldPriority: {Value: 3, Confidence: model.ConfidenceMedium, Rationale: "default medium priority"},
		model.FieldDuration: {Value: 60, Confidence: model.ConfidenceHigh, Rationale: "explicit duration in text"},
	}
	task.ConditionalHints = []string{"low priority; it will run after higher-priority work"}

	plan, err := uc.GenerateDailyPlan(context.Background(), model.Scope{}, planInput(task))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	pt := allPlanned(plan)[0]
	if len(pt.Explainability.Assumptions) != 1 {
		t.Fatalf("expected one assumption (high-confidence inferences excluded), got %v", pt.Explainability.Assumptions)
	}
	if !strings.Contains(pt.Explainability.Assumptions[0], "default medium priority") {
		t.Errorf("assumption should carry the rationale, got %q", pt.Explainability.Assumptions[0])
	}
	if len(pt.Explainability.ConditionalHints) != 1 {
		t.Errorf("conditional hints must carry through to the planned task")
	}
	if pt.Explainability.Factors["urgency"] != pt.Score.Urgency {
		t.Errorf("factor map must mirror the score")
	}
}
