package usecase

import (
	"context"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"personal-task-planner/internal/model"
	"personal-task-planner/internal/planner"
	"personal-task-planner/pkg/datemath"
)

// Line-level extraction patterns. Urgency tiers are checked highest first so
// "!!!" is consumed before "!!" can match inside it.
var (
	urgentRe   = regexp.MustCompile(`(?i)\b(urgent|asap|critical)\b|!{3}`)
	highRe     = regexp.MustCompile(`(?i)\b(important|high)\b|!{2}`)
	lowRe      = regexp.MustCompile(`(?i)\b(low|minor)\b|\bwhen time\b`)
	durationRe = regexp.MustCompile(`(?i)\b(\d+)\s*(hours?|hrs?|minutes?|mins?)\b`)
	todayRe    = regexp.MustCompile(`(?i)\btoday\b`)
	tomorrowRe = regexp.MustCompile(`(?i)\btomorrow\b`)
	spacesRe   = regexp.MustCompile(`\s+`)
)

// localStrategy extracts tasks line by line with keyword heuristics. It never
// returns an error: unusable lines are simply not extracted.
type localStrategy struct {
	dateMath *datemath.Parser
}

func newLocalStrategy(dateMath *datemath.Parser) *localStrategy {
	return &localStrategy{dateMath: dateMath}
}

func (s *localStrategy) Parse(_ context.Context, rawText string, now time.Time) (planner.FreeformParseResult, error) {
	result := planner.FreeformParseResult{
		ExtractedTasks: []model.InferredTask{},
		AmbiguousLines: []string{},
		ParsingErrors:  []string{},
		Confidence:     model.ConfidenceLow,
	}

	for _, line := range strings.Split(rawText, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if task, ok := s.parseLine(line, now); ok {
			result.ExtractedTasks = append(result.ExtractedTasks, task)
		}
	}

	if len(result.ExtractedTasks) > 0 {
		result.Confidence = model.ConfidenceMedium
	}
	return result, nil
}

// parseLine extracts one task candidate from a line. ok is false when the
// line has no usable title once the matched tokens are stripped.
func (s *localStrategy) parseLine(line string, now time.Time) (model.InferredTask, bool) {
	work := line
	inferences := make(map[string]model.Inference)

	// Priority from urgency keywords.
	var priority int
	switch {
	case urgentRe.MatchString(work):
		priority = 5
		inferences[model.FieldPriority] = model.Inference{
			Value: 5, Confidence: model.ConfidenceHigh, Rationale: "urgency keywords",
		}
		work = urgentRe.ReplaceAllString(work, " ")
	case highRe.MatchString(work):
		priority = 4
		inferences[model.FieldPriority] = model.Inference{
			Value: 4, Confidence: model.ConfidenceMedium, Rationale: "importance keywords",
		}
		work = highRe.ReplaceAllString(work, " ")
	case lowRe.MatchString(work):
		priority = 2
		inferences[model.FieldPriority] = model.Inference{
			Value: 2, Confidence: model.ConfidenceMedium, Rationale: "low-priority keywords",
		}
		work = lowRe.ReplaceAllString(work, " ")
	default:
		priority = 3
		inferences[model.FieldPriority] = model.Inference{
			Value: 3, Confidence: model.ConfidenceLow, Rationale: "assumed, no indicators found",
		}
	}

	// Explicit duration, e.g. "2 hours" or "45 min".
	duration := 0
	if m := durationRe.FindStringSubmatch(work); m != nil {
		n, _ := strconv.Atoi(m[1])
		if strings.HasPrefix(strings.ToLower(m[2]), "h") {
			n *= 60
		}
		duration = n
		inferences[model.FieldDuration] = model.Inference{
			Value: n, Confidence: model.ConfidenceHigh, Rationale: "explicit duration in text",
		}
		work = durationRe.ReplaceAllString(work, " ")
	}

	// Deadline keywords resolve to end of working day.
	if todayRe.MatchString(work) {
		deadline, _ := s.dateMath.Deadline("today", now)
		inferences[model.FieldDeadline] = model.Inference{
			Value: deadline, Confidence: model.ConfidenceHigh, Rationale: "deadline keyword \"today\"",
		}
		work = todayRe.ReplaceAllString(work, " ")
	} else if tomorrowRe.MatchString(work) {
		deadline, _ := s.dateMath.Deadline("tomorrow", now)
		inferences[model.FieldDeadline] = model.Inference{
			Value: deadline, Confidence: model.ConfidenceHigh, Rationale: "deadline keyword \"tomorrow\"",
		}
		work = tomorrowRe.ReplaceAllString(work, " ")
	}

	title := cleanTitle(work)
	if title == "" {
		// Intentional simplification: a line that is nothing but stripped
		// tokens is discarded, not flagged ambiguous.
		return model.InferredTask{}, false
	}

	// No explicit duration signal: fall back to the title-based heuristic.
	if duration == 0 {
		inf := inferDuration(title)
		inferences[model.FieldDuration] = inf
		duration = inf.Value.(int)
	}

	return model.InferredTask{
		StructuredTask: model.StructuredTask{
			ID:    uuid.NewString(),
			Title: title,
		},
		Inferences:       inferences,
		ConditionalHints: conditionalHints(priority, duration),
	}, true
}

// cleanTitle collapses whitespace left behind by token stripping and trims
// stray punctuation from the edges.
func cleanTitle(s string) string {
	s = spacesRe.ReplaceAllString(s, " ")
	return strings.Trim(s, " \t:;,.-")
}
