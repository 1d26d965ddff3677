package usecase

import (
	"regexp"
	"strings"
)

var codeFenceRe = regexp.MustCompile("(?s)```(?:json)?\\s*(.+?)\\s*```")

// sanitizeJSONResponse removes markdown code fences and leading/trailing
// prose that LLMs often add around JSON output.
func sanitizeJSONResponse(text string) string {
	matches := codeFenceRe.FindStringSubmatch(text)
	if len(matches) > 1 {
		return strings.TrimSpace(matches[1])
	}

	// No code block: find first [ or { and last ] or }
	start := strings.IndexAny(text, "[{")
	if start == -1 {
		return text
	}
	end := strings.LastIndexAny(text, "]}")
	if end == -1 || end < start {
		return text
	}
	return strings.TrimSpace(text[start : end+1])
}

// conditionalHints builds the caveats attached to a parsed task based on its
// final priority and duration.
func conditionalHints(priority, duration int) []string {
	var hints []string
	if priority >= 4 {
		hints = append(hints, "scheduled early due to high priority; later work may move if this is downgraded")
	}
	if duration > 90 {
		hints = append(hints, "long task; consider splitting it across focus blocks")
	}
	if priority <= 2 {
		hints = append(hints, "low priority; it will run after higher-priority work")
	}
	return hints
}

func clampInt(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
