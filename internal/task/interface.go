package task

import (
	"context"

	"smart-todo-backend/internal/model"
)

// UseCase defines the business logic interface for the task domain.
type UseCase interface {
	// Create persists a task from structured input.
	Create(ctx context.Context, input CreateInput) (model.Task, error)

	// CreateFromText parses a natural language description into a task and
	// persists it. Parsing never fails; persistence can.
	CreateFromText(ctx context.Context, input ParseInput) (model.Task, error)

	// Get fetches a single task by ID.
	Get(ctx context.Context, id int64) (model.Task, error)

	// List returns tasks with pagination.
	List(ctx context.Context, input ListInput) ([]model.Task, error)

	// Update applies a partial update to an existing task.
	Update(ctx context.Context, id int64, input UpdateInput) (model.Task, error)

	// Delete removes a task by ID.
	Delete(ctx context.Context, id int64) error
}
