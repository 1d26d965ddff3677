package usecase

import (
	"context"
	"time"

	"personal-task-planner/pkg/datemath"
	"personal-task-planner/pkg/gcalendar"
	"personal-task-planner/pkg/gemini"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)    {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)     {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)     {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)    {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)    {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)    {}

// fakeCalendar is a canned CommitmentSource for plan tests.
type fakeCalendar struct {
	events []gcalendar.Event
	err    error
	calls  int
}

func (f *fakeCalendar) ListEvents(ctx context.Context, req gcalendar.ListEventsRequest) ([]gcalendar.Event, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.events, nil
}

// testNow is the fixed reference instant used across engine tests.
// Tuesday, March 10 2026, 09:00 UTC.
var testNow = time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

// newTestUseCase builds a usecase over the given collaborators with a frozen clock.
func newTestUseCase(llm gemini.TextModel, calendar CommitmentSource) *implUseCase {
	dateMath, _ := datemath.NewParser("UTC")
	uc := New(&mockLogger{}, llm, calendar, dateMath, "primary")
	uc.now = func() time.Time { return testNow }
	return uc
}

func intPtr(v int) *int              { return &v }
func timePtr(v time.Time) *time.Time { return &v }
