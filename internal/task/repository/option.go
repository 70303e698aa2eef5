package repository

import "time"

// CreateTaskOptions holds the parameters for inserting a task.
type CreateTaskOptions struct {
	Title       string
	Description string
	DueDate     *time.Time
	Priority    string
}

// ListTasksOptions holds pagination parameters for listing tasks.
type ListTasksOptions struct {
	Offset int
	Limit  int // defaults to 100 when <= 0
}

// UpdateTaskOptions is a partial update; nil fields are left unchanged.
type UpdateTaskOptions struct {
	Title       *string
	Description *string
	Completed   *bool
	DueDate     *time.Time
	Priority    *string
}
