package parser

import "fmt"

// Fixed sanitized reply the model must produce for inappropriate input.
// The title is also asserted on the way back in, so a compliant reply can
// never leak any of the original text.
const (
	SanitizedTitle       = "Inappropriate Content"
	SanitizedDescription = "The original input was flagged as inappropriate and has been sanitized."
)

// Sampling parameters for the remote call. Low temperature and a bounded
// output length favor determinism over creativity.
const (
	maxOutputTokens     = 500
	samplingTemperature = 0.3
)

// taskParsingPromptTemplate takes the raw user text, the reference time and
// the two sanitization constants, in that order.
const taskParsingPromptTemplate = `Parse the following natural language task description into structured data.
Extract the task title, description (if any), due date/time (if mentioned), and priority (if mentioned).

Text: %q

Return ONLY a JSON object with this structure:
{
    "title": "concise task title",
    "description": "additional details if any (optional)",
    "due_date": "ISO-8601 datetime if mentioned (optional)",
    "priority": "high/medium/low if mentioned (optional)"
}

Current date/time for reference: %s

RULES:
1. Resolve relative date expressions ("tomorrow", "next Monday", "in 3 days") against the reference time above.
2. If a vague part of day is mentioned with no explicit time, use these defaults: morning = 09:00, afternoon = 15:00, evening = 19:00, night = 21:00.
3. If the input is abusive, illegal, or otherwise inappropriate, do NOT reflect any of it back. Return exactly this object, with due_date set to the reference time plus one hour:
{
    "title": %q,
    "description": %q,
    "due_date": "<reference time + 1 hour>"
}

Examples:
- "remind me to submit taxes next Monday at noon" -> {"title": "Submit taxes", "due_date": "2024-01-15T12:00:00+07:00"}
- "buy groceries tomorrow morning high priority" -> {"title": "Buy groceries", "due_date": "2024-01-10T09:00:00+07:00", "priority": "high"}
- "call mom" -> {"title": "Call mom"}
- "<abusive text targeting a coworker>" -> {"title": %q, "description": %q, "due_date": "2024-01-09T13:00:00+07:00"}`

// BuildTaskParsingPrompt builds the full prompt for a single parse attempt.
// referenceTime is the caller-timezone-adjusted "now" in RFC3339.
func BuildTaskParsingPrompt(text, referenceTime string) string {
	return fmt.Sprintf(taskParsingPromptTemplate,
		text,
		referenceTime,
		SanitizedTitle, SanitizedDescription,
		SanitizedTitle, SanitizedDescription,
	)
}
