package parser

import (
	"context"

	"smart-todo-backend/internal/model"
)

// Parser converts free-form natural language into a StructuredTask.
// Implementations never fail: when the primary interpretation path is
// unavailable or errors, a deterministic fallback produces the result.
// tzOffsetMinutes follows the JavaScript getTimezoneOffset convention
// (negative means ahead of UTC); nil means the process-local zone.
type Parser interface {
	Parse(ctx context.Context, text string, tzOffsetMinutes *int) model.StructuredTask
}
