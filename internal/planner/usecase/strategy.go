package usecase

import (
	"context"
	"fmt"
	"time"

	"personal-task-planner/internal/planner"
	pkgLog "personal-task-planner/pkg/log"
)

// parseStrategy extracts task candidates from raw text. now is the reference
// instant for relative date resolution, injected for determinism.
type parseStrategy interface {
	Parse(ctx context.Context, rawText string, now time.Time) (planner.FreeformParseResult, error)
}

// fallbackStrategy tries the primary strategy and, on any failure, runs the
// fallback instead of propagating the error to the caller.
type fallbackStrategy struct {
	l        pkgLog.Logger
	primary  parseStrategy
	fallback parseStrategy
}

func newFallbackStrategy(l pkgLog.Logger, primary, fallback parseStrategy) *fallbackStrategy {
	return &fallbackStrategy{l: l, primary: primary, fallback: fallback}
}

func (s *fallbackStrategy) Parse(ctx context.Context, rawText string, now time.Time) (planner.FreeformParseResult, error) {
	result, err := s.primary.Parse(ctx, rawText, now)
	if err == nil {
		return result, nil
	}

	s.l.Warnf(ctx, "freeform parse: external strategy failed, falling back to local heuristics: %v", err)

	result, fallbackErr := s.fallback.Parse(ctx, rawText, now)
	if fallbackErr != nil {
		return result, fallbackErr
	}

	result.ParsingErrors = append(result.ParsingErrors,
		fmt.Sprintf("external parser unavailable (%v); used local heuristics", err))
	return result, nil
}
