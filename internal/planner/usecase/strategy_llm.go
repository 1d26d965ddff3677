package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"personal-task-planner/internal/model"
	"personal-task-planner/internal/planner"
	"personal-task-planner/pkg/datemath"
	"personal-task-planner/pkg/gemini"
	pkgLog "personal-task-planner/pkg/log"
)

// Cache bounds for memoizing identical freeform inputs. Entries expire so
// stale relative-date resolutions cannot outlive the TTL, and the key carries
// the resolution day so "today" parsed yesterday never answers today.
const (
	parseCacheSize = 128
	parseCacheTTL  = 5 * time.Minute
)

// Clamping bounds applied to every value coming back from the external service.
const (
	minPriority = 1
	maxPriority = 5
	minDuration = 15
	maxDuration = 240
)

// llmStrategy delegates the whole parse to the external text-understanding
// service and defensively validates its payload. Any failure is returned as
// an error so the fallback decorator can run the local strategy.
type llmStrategy struct {
	l        pkgLog.Logger
	llm      gemini.TextModel
	dateMath *datemath.Parser
	cache    *expirable.LRU[string, planner.FreeformParseResult]
}

func newLLMStrategy(l pkgLog.Logger, llm gemini.TextModel, dateMath *datemath.Parser) *llmStrategy {
	return &llmStrategy{
		l:        l,
		llm:      llm,
		dateMath: dateMath,
		cache:    expirable.NewLRU[string, planner.FreeformParseResult](parseCacheSize, nil, parseCacheTTL),
	}
}

// Wire shapes of the external service's JSON response. Never trusted
// verbatim: see validate.
type externalParseResult struct {
	ExtractedTasks []externalTask `json:"extracted_tasks"`
	AmbiguousLines []string       `json:"ambiguous_lines"`
	ParsingErrors  []string       `json:"parsing_errors"`
	Confidence     string         `json:"confidence"`
}

type externalTask struct {
	ID              string                       `json:"id"`
	Title           string                       `json:"title"`
	DurationMinutes *int                         `json:"duration_minutes"`
	Priority        *int                         `json:"priority"`
	Deadline        string                       `json:"deadline"`
	Category        string                       `json:"category"`
	Notes           string                       `json:"notes"`
	Inferences      map[string]externalInference `json:"inferences"`
}

type externalInference struct {
	Value      any    `json:"value"`
	Confidence string `json:"confidence"`
	Rationale  string `json:"rationale"`
}

func (s *llmStrategy) Parse(ctx context.Context, rawText string, now time.Time) (planner.FreeformParseResult, error) {
	key := s.cacheKey(rawText, now)
	if cached, found := s.cache.Get(key); found {
		return withFreshTaskIDs(cached), nil
	}

	ctx, cancel := context.WithTimeout(ctx, gemini.DefaultTimeout)
	defer cancel()

	nowStr := now.In(s.dateMath.Location()).Format(time.RFC3339)
	req := gemini.GenerateRequest{
		Contents: []gemini.Content{
			{Parts: []gemini.Part{{Text: gemini.BuildTaskExtractionPrompt(rawText, nowStr)}}},
		},
		GenerationConfig: &gemini.GenerationConfig{
			Temperature:     0.2, // low temperature for deterministic JSON output
			MaxOutputTokens: 2048,
		},
	}

	resp, err := s.llm.GenerateContent(ctx, req)
	if err != nil {
		return planner.FreeformParseResult{}, fmt.Errorf("llm request failed: %w", err)
	}

	text, err := resp.Text()
	if err != nil {
		return planner.FreeformParseResult{}, err
	}

	cleaned := sanitizeJSONResponse(text)

	var wire externalParseResult
	if err := json.Unmarshal([]byte(cleaned), &wire); err != nil {
		s.l.Errorf(ctx, "llm parse: malformed JSON. Raw=%q Cleaned=%q", text, cleaned)
		return planner.FreeformParseResult{}, fmt.Errorf("failed to parse llm JSON response: %w", err)
	}

	result := s.validate(wire)
	s.cache.Add(key, result)
	return result, nil
}

// cacheKey scopes memoization to the day the relative dates were resolved
// against.
func (s *llmStrategy) cacheKey(rawText string, now time.Time) string {
	return now.In(s.dateMath.Location()).Format("2006-01-02") + "\n" + rawText
}

// withFreshTaskIDs copies a cached result, minting a new ID per task. Task IDs
// are assigned once per extraction and never reused across calls.
func withFreshTaskIDs(cached planner.FreeformParseResult) planner.FreeformParseResult {
	out := cached
	out.ExtractedTasks = make([]model.InferredTask, len(cached.ExtractedTasks))
	for i, t := range cached.ExtractedTasks {
		t.ID = uuid.NewString()
		out.ExtractedTasks[i] = t
	}
	return out
}

// validate turns the untrusted wire payload into a well-formed parse result:
// range-clamped values, normalized confidence labels, no empty titles.
func (s *llmStrategy) validate(wire externalParseResult) planner.FreeformParseResult {
	result := planner.FreeformParseResult{
		ExtractedTasks: []model.InferredTask{},
		AmbiguousLines: wire.AmbiguousLines,
		ParsingErrors:  wire.ParsingErrors,
	}
	if result.AmbiguousLines == nil {
		result.AmbiguousLines = []string{}
	}
	if result.ParsingErrors == nil {
		result.ParsingErrors = []string{}
	}

	for _, et := range wire.ExtractedTasks {
		task, err := s.validateTask(et)
		if err != nil {
			result.ParsingErrors = append(result.ParsingErrors, err.Error())
			continue
		}
		result.ExtractedTasks = append(result.ExtractedTasks, task)
	}

	result.Confidence = model.Confidence(wire.Confidence)
	if !result.Confidence.Valid() {
		if len(result.ExtractedTasks) > 0 {
			result.Confidence = model.ConfidenceMedium
		} else {
			result.Confidence = model.ConfidenceLow
		}
	}
	return result
}

func (s *llmStrategy) validateTask(et externalTask) (model.InferredTask, error) {
	if et.Title == "" {
		return model.InferredTask{}, fmt.Errorf("external parser returned a task without a title")
	}

	st := model.StructuredTask{
		ID:       et.ID,
		Title:    et.Title,
		Category: et.Category,
		Notes:    et.Notes,
	}
	if st.ID == "" {
		st.ID = uuid.NewString()
	}

	if et.Priority != nil {
		p := clampInt(*et.Priority, minPriority, maxPriority)
		st.Priority = &p
	}
	if et.DurationMinutes != nil {
		d := clampInt(*et.DurationMinutes, minDuration, maxDuration)
		st.DurationMinutes = &d
	}
	if et.Deadline != "" {
		if deadline, err := time.Parse(time.RFC3339, et.Deadline); err == nil {
			st.Deadline = &deadline
		}
		// Invalid deadline strings are dropped rather than guessed at.
	}

	task := model.InferredTask{
		StructuredTask: st,
		Inferences:     make(map[string]model.Inference),
	}

	for field, inf := range et.Inferences {
		normalized, keep := normalizeInference(field, inf)
		if keep {
			task.Inferences[field] = normalized
		}
	}

	priority := 3
	if p, ok := task.EffectivePriority(); ok {
		priority = p
	}
	duration := 60
	if d, ok := task.EffectiveDuration(); ok {
		duration = d
	}
	task.ConditionalHints = conditionalHints(priority, duration)

	return task, nil
}

// normalizeInference clamps inferred values to their field's range and
// defaults invalid confidence labels to medium, or low for deadlines.
func normalizeInference(field string, inf externalInference) (model.Inference, bool) {
	out := model.Inference{
		Value:      inf.Value,
		Confidence: model.Confidence(inf.Confidence),
		Rationale:  inf.Rationale,
	}

	switch field {
	case model.FieldPriority, model.FieldDuration:
		n, ok := asInt(inf.Value)
		if !ok {
			return model.Inference{}, false
		}
		if field == model.FieldPriority {
			out.Value = clampInt(n, minPriority, maxPriority)
		} else {
			out.Value = clampInt(n, minDuration, maxDuration)
		}
	case model.FieldDeadline:
		str, isStr := inf.Value.(string)
		if !isStr {
			return model.Inference{}, false
		}
		deadline, err := time.Parse(time.RFC3339, str)
		if err != nil {
			return model.Inference{}, false
		}
		out.Value = deadline
	case model.FieldCategory:
		if _, isStr := inf.Value.(string); !isStr {
			return model.Inference{}, false
		}
	default:
		return model.Inference{}, false
	}

	if !out.Confidence.Valid() {
		if field == model.FieldDeadline {
			out.Confidence = model.ConfidenceLow
		} else {
			out.Confidence = model.ConfidenceMedium
		}
	}
	return out, true
}

func asInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case float64:
		return int(n), true
	}
	return 0, false
}
