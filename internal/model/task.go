package model

import "time"

// Priority levels a task can carry. Parsing normalizes every input synonym
// ("urgent", "critical", "normal", "minor") onto these three values.
const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

// DefaultTaskTitle is used when parsing leaves no usable title.
const DefaultTaskTitle = "New Task"

// Task represents a task persisted in the database.
type Task struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Completed   bool       `json:"completed"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	Priority    string     `json:"priority,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// StructuredTask is the normalized output of natural language parsing,
// produced once per parse call and handed off to the task usecase verbatim.
// DueDate, when set, is always an absolute zone-carrying instant.
type StructuredTask struct {
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	Priority    string     `json:"priority,omitempty"`
}

// NormalizePriority maps a raw priority string onto the canonical levels.
// Unknown values collapse to empty (no priority).
func NormalizePriority(raw string) string {
	switch raw {
	case PriorityHigh, "urgent", "important", "critical":
		return PriorityHigh
	case PriorityMedium, "normal":
		return PriorityMedium
	case PriorityLow, "minor":
		return PriorityLow
	default:
		return ""
	}
}
