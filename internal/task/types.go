package task

import "time"

// CreateInput is the input for structured task creation.
type CreateInput struct {
	Title       string
	Description string
	DueDate     *time.Time
	Priority    string
}

// ParseInput is the input for natural language task creation.
// TimezoneOffsetMinutes follows the JavaScript getTimezoneOffset sign
// convention (negative means ahead of UTC); nil means process-local time.
type ParseInput struct {
	Text                  string
	TimezoneOffsetMinutes *int
}

// ListInput holds pagination parameters for listing tasks.
type ListInput struct {
	Skip  int
	Limit int
}

// UpdateInput is a partial update; nil fields are left unchanged.
type UpdateInput struct {
	Title       *string
	Description *string
	Completed   *bool
	DueDate     *time.Time
	Priority    *string
}
