package usecase

import (
	"context"
	"fmt"
	"strings"

	"smart-todo-backend/internal/model"
	"smart-todo-backend/internal/task"
	"smart-todo-backend/internal/task/repository"
)

// Create persists a task from structured input.
func (uc *implUseCase) Create(ctx context.Context, input task.CreateInput) (model.Task, error) {
	if strings.TrimSpace(input.Title) == "" {
		return model.Task{}, task.ErrEmptyTitle
	}

	uc.l.Infof(ctx, "task: creating task %q", input.Title)

	created, err := uc.repo.Create(ctx, repository.CreateTaskOptions{
		Title:       input.Title,
		Description: input.Description,
		DueDate:     input.DueDate,
		Priority:    model.NormalizePriority(input.Priority),
	})
	if err != nil {
		return model.Task{}, fmt.Errorf("failed to create task: %w", err)
	}
	return created, nil
}

// CreateFromText parses natural language input into a structured task and
// persists it. The parser itself never fails; only persistence can.
func (uc *implUseCase) CreateFromText(ctx context.Context, input task.ParseInput) (model.Task, error) {
	if strings.TrimSpace(input.Text) == "" {
		return model.Task{}, task.ErrEmptyInput
	}

	uc.l.Infof(ctx, "task: creating task from text, input_length=%d", len(input.Text))

	parsed := uc.parser.Parse(ctx, input.Text, input.TimezoneOffsetMinutes)

	created, err := uc.repo.Create(ctx, repository.CreateTaskOptions{
		Title:       parsed.Title,
		Description: parsed.Description,
		DueDate:     parsed.DueDate,
		Priority:    parsed.Priority,
	})
	if err != nil {
		return model.Task{}, fmt.Errorf("failed to create parsed task: %w", err)
	}

	uc.l.Infof(ctx, "task: created task %d from text, title=%q", created.ID, created.Title)
	return created, nil
}

// Get fetches a single task by ID.
func (uc *implUseCase) Get(ctx context.Context, id int64) (model.Task, error) {
	return uc.repo.GetByID(ctx, id)
}

// List returns tasks with pagination.
func (uc *implUseCase) List(ctx context.Context, input task.ListInput) ([]model.Task, error) {
	uc.l.Debugf(ctx, "task: listing tasks skip=%d limit=%d", input.Skip, input.Limit)
	return uc.repo.List(ctx, repository.ListTasksOptions{
		Offset: input.Skip,
		Limit:  input.Limit,
	})
}

// Update applies a partial update to an existing task.
func (uc *implUseCase) Update(ctx context.Context, id int64, input task.UpdateInput) (model.Task, error) {
	if input.Title != nil && strings.TrimSpace(*input.Title) == "" {
		return model.Task{}, task.ErrEmptyTitle
	}

	opt := repository.UpdateTaskOptions{
		Title:       input.Title,
		Description: input.Description,
		Completed:   input.Completed,
		DueDate:     input.DueDate,
	}
	if input.Priority != nil {
		normalized := model.NormalizePriority(*input.Priority)
		opt.Priority = &normalized
	}

	uc.l.Infof(ctx, "task: updating task %d", id)
	return uc.repo.Update(ctx, id, opt)
}

// Delete removes a task by ID.
func (uc *implUseCase) Delete(ctx context.Context, id int64) error {
	uc.l.Infof(ctx, "task: deleting task %d", id)
	return uc.repo.Delete(ctx, id)
}
