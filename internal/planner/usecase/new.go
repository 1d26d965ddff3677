package usecase

import (
	"context"
	"time"

	"personal-task-planner/pkg/datemath"
	"personal-task-planner/pkg/gcalendar"
	"personal-task-planner/pkg/gemini"
	pkgLog "personal-task-planner/pkg/log"
)

// CommitmentSource lists calendar events for a time range. *gcalendar.Client
// satisfies it; tests substitute a fake.
type CommitmentSource interface {
	ListEvents(ctx context.Context, req gcalendar.ListEventsRequest) ([]gcalendar.Event, error)
}

type implUseCase struct {
	l          pkgLog.Logger
	strategy   parseStrategy
	calendar   CommitmentSource
	dateMath   *datemath.Parser
	calendarID string
	now        func() time.Time
}

// New creates a new planner UseCase instance.
// llm may be nil: freeform parsing then uses local heuristics only.
// calendar may be nil: plans are generated without hard commitments.
func New(
	l pkgLog.Logger,
	llm gemini.TextModel,
	calendar CommitmentSource,
	dateMath *datemath.Parser,
	calendarID string,
) *implUseCase {
	local := newLocalStrategy(dateMath)

	var strategy parseStrategy = local
	if llm != nil {
		strategy = newFallbackStrategy(l, newLLMStrategy(l, llm, dateMath), local)
	}

	return &implUseCase{
		l:          l,
		strategy:   strategy,
		calendar:   calendar,
		dateMath:   dateMath,
		calendarID: calendarID,
		now:        time.Now,
	}
}
