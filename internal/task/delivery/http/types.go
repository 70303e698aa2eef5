package http

import "time"

// createTaskRequest is the body for structured task creation.
type createTaskRequest struct {
	Title       string     `json:"title" binding:"required"`
	Description string     `json:"description"`
	DueDate     *time.Time `json:"due_date"`
	Priority    string     `json:"priority"`
}

// parseTaskRequest is the body for natural language task creation.
// TimezoneOffset is the browser's getTimezoneOffset() value in minutes
// (negative means the client is ahead of UTC).
type parseTaskRequest struct {
	Text           string `json:"text" binding:"required"`
	TimezoneOffset *int   `json:"timezone_offset"`
}

// updateTaskRequest is a partial update; absent fields stay unchanged.
type updateTaskRequest struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	Completed   *bool      `json:"completed"`
	DueDate     *time.Time `json:"due_date"`
	Priority    *string    `json:"priority"`
}
