package gemini

// TaskExtractionSystemPrompt instructs the model to extract tasks from free
// text into the JSON shape the freeform parser validates.
const TaskExtractionSystemPrompt = `You are a task extraction assistant. Extract every individual task from the user's text.

RULES:
1. For each task produce an object with:
   - id: empty string (assigned by the caller)
   - title: short, clear task description (required, non-empty)
   - duration_minutes: integer minutes, between 15 and 240
   - priority: integer 1 (lowest) to 5 (highest)
   - deadline: absolute RFC3339 date-time string, or omit when no deadline is implied
   - category: short label, or omit
   - notes: additional details, or omit
   - inferences: an object keyed by "priority", "duration" and "deadline". Include an entry
     only for fields you inferred rather than read directly from the text. Each entry has:
     { "value": <the inferred value>, "confidence": "low"|"medium"|"high", "rationale": <why> }
2. Lines you cannot turn into a task go into "ambiguous_lines" verbatim.
3. Return ONLY a valid JSON object of this exact shape. No markdown, no code blocks, no prose:
{
  "extracted_tasks": [ ... ],
  "ambiguous_lines": [ ... ],
  "parsing_errors": [ ... ],
  "confidence": "low"|"medium"|"high"
}
4. Resolve relative dates ("today", "tomorrow", "next monday") against the current time given below.
   A bare date with no time of day means 17:00 of that day.`

// BuildTaskExtractionPrompt builds the full prompt for freeform task extraction.
func BuildTaskExtractionPrompt(userInput string, currentTime string) string {
	return TaskExtractionSystemPrompt +
		"\n\nCURRENT TIME (USE FOR RELATIVE DATE RESOLUTION):\n" + currentTime +
		"\n\nNow extract tasks from the following input and return ONLY the JSON object:\n" + userInput
}
