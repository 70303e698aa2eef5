package parser

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"time"

	"smart-todo-backend/internal/model"
	"smart-todo-backend/pkg/anthropic"
	"smart-todo-backend/pkg/datemath"
	pkgLog "smart-todo-backend/pkg/log"
)

// llmEngine is the remote interpreter. Unlike the rule engine it can fail:
// transport errors, non-JSON replies and schema violations all propagate so
// the orchestrator can fall back. One attempt per call, no retries.
type llmEngine struct {
	l      pkgLog.Logger
	client *anthropic.Client
}

// llmTask is the JSON object the prompt instructs the model to return.
type llmTask struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	DueDate     string `json:"due_date"`
	Priority    string `json:"priority"`
}

// Interpret sends the constrained prompt to the remote model and decodes
// the reply into a StructuredTask.
func (e *llmEngine) Interpret(ctx context.Context, text string, tzOffsetMinutes *int) (model.StructuredTask, error) {
	now := datemath.Now(tzOffsetMinutes)
	prompt := BuildTaskParsingPrompt(text, now.Format(time.RFC3339))

	resp, err := e.client.CreateMessage(ctx, anthropic.MessageRequest{
		MaxTokens:   maxOutputTokens,
		Temperature: samplingTemperature,
		Messages: []anthropic.Message{
			anthropic.NewTextMessage(anthropic.RoleUser, prompt),
		},
	})
	if err != nil {
		return model.StructuredTask{}, fmt.Errorf("LLM request failed: %w", err)
	}

	raw := resp.Text()
	if strings.TrimSpace(raw) == "" {
		return model.StructuredTask{}, fmt.Errorf("empty response from LLM")
	}
	e.l.Debugf(ctx, "parser: LLM raw response: %s", raw)

	cleaned := extractJSONObject(raw)

	var parsed llmTask
	if err := json.Unmarshal([]byte(cleaned), &parsed); err != nil {
		e.l.Errorf(ctx, "parser: failed to decode LLM response. raw=%q cleaned=%q", raw, cleaned)
		return model.StructuredTask{}, fmt.Errorf("failed to parse LLM JSON response: %w", err)
	}
	if strings.TrimSpace(parsed.Title) == "" {
		return model.StructuredTask{}, fmt.Errorf("LLM response missing required title")
	}

	result := model.StructuredTask{
		Title:       strings.TrimSpace(parsed.Title),
		Description: strings.TrimSpace(parsed.Description),
		Priority:    model.NormalizePriority(strings.ToLower(strings.TrimSpace(parsed.Priority))),
	}

	// An unparseable due_date drops just that field, never the whole call.
	if parsed.DueDate != "" {
		if due, ok := e.parseDueDate(ctx, parsed.DueDate, tzOffsetMinutes); ok {
			result.DueDate = &due
		}
	}

	return result, nil
}

// parseDueDate parses the model's due_date string. Zone-carrying values are
// taken as-is; naive values are anchored to the caller's zone rather than
// left ambiguous.
func (e *llmEngine) parseDueDate(ctx context.Context, value string, tzOffsetMinutes *int) (time.Time, bool) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, true
	}

	loc := time.Local
	if tzOffsetMinutes != nil {
		loc = datemath.LocationFor(*tzOffsetMinutes)
	}

	layouts := []string{
		"2006-01-02T15:04:05",
		"2006-01-02 15:04:05",
		"2006-01-02T15:04",
		"2006-01-02",
	}
	for _, layout := range layouts {
		if t, err := time.ParseInLocation(layout, value, loc); err == nil {
			return t, true
		}
	}

	e.l.Warnf(ctx, "parser: dropping unparseable due_date %q from LLM reply", value)
	return time.Time{}, false
}

var jsonFenceRe = regexp.MustCompile("(?s)```(?:json)?\\s*(\\{.*?\\})\\s*```")

// extractJSONObject strips the markdown code fence LLMs often wrap JSON in,
// falling back to the outermost brace pair, then to the raw text.
func extractJSONObject(text string) string {
	if m := jsonFenceRe.FindStringSubmatch(text); len(m) > 1 {
		return strings.TrimSpace(m[1])
	}

	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end == -1 || end < start {
		return strings.TrimSpace(text)
	}
	return strings.TrimSpace(text[start : end+1])
}
