package repository

import (
	"context"

	"smart-todo-backend/internal/model"
)

// TaskRepository is the interface for task data access operations.
// Implementations return task.ErrTaskNotFound for missing rows.
type TaskRepository interface {
	Create(ctx context.Context, opt CreateTaskOptions) (model.Task, error)
	GetByID(ctx context.Context, id int64) (model.Task, error)
	List(ctx context.Context, opt ListTasksOptions) ([]model.Task, error)
	Update(ctx context.Context, id int64, opt UpdateTaskOptions) (model.Task, error)
	Delete(ctx context.Context, id int64) error
}
