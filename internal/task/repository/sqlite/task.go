package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"smart-todo-backend/internal/model"
	"smart-todo-backend/internal/task"
	"smart-todo-backend/internal/task/repository"
)

// Timestamps are stored as RFC3339 text so the zone captured at parse time
// survives the round trip.
const timeLayout = time.RFC3339Nano

const taskColumns = "id, title, description, completed, due_date, priority, created_at, updated_at"

func (r *implRepository) Create(ctx context.Context, opt repository.CreateTaskOptions) (model.Task, error) {
	now := time.Now()

	res, err := r.db.ExecContext(ctx, `
		INSERT INTO tasks (title, description, completed, due_date, priority, created_at, updated_at)
		VALUES (?, ?, 0, ?, ?, ?, ?)`,
		opt.Title,
		nullString(opt.Description),
		nullTime(opt.DueDate),
		nullString(opt.Priority),
		now.Format(timeLayout),
		now.Format(timeLayout),
	)
	if err != nil {
		return model.Task{}, fmt.Errorf("failed to insert task: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return model.Task{}, fmt.Errorf("failed to read inserted task id: %w", err)
	}

	return r.GetByID(ctx, id)
}

func (r *implRepository) GetByID(ctx context.Context, id int64) (model.Task, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+taskColumns+" FROM tasks WHERE id = ?", id)

	t, err := scanTask(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Task{}, task.ErrTaskNotFound
	}
	if err != nil {
		return model.Task{}, fmt.Errorf("failed to fetch task %d: %w", id, err)
	}
	return t, nil
}

func (r *implRepository) List(ctx context.Context, opt repository.ListTasksOptions) ([]model.Task, error) {
	limit := opt.Limit
	if limit <= 0 {
		limit = 100
	}

	rows, err := r.db.QueryContext(ctx,
		"SELECT "+taskColumns+" FROM tasks ORDER BY id LIMIT ? OFFSET ?", limit, opt.Offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	defer rows.Close()

	var tasks []model.Task
	for rows.Next() {
		t, scanErr := scanTask(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("failed to scan task row: %w", scanErr)
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

func (r *implRepository) Update(ctx context.Context, id int64, opt repository.UpdateTaskOptions) (model.Task, error) {
	sets := []string{"updated_at = ?"}
	args := []any{time.Now().Format(timeLayout)}

	if opt.Title != nil {
		sets = append(sets, "title = ?")
		args = append(args, *opt.Title)
	}
	if opt.Description != nil {
		sets = append(sets, "description = ?")
		args = append(args, nullString(*opt.Description))
	}
	if opt.Completed != nil {
		sets = append(sets, "completed = ?")
		args = append(args, boolToInt(*opt.Completed))
	}
	if opt.DueDate != nil {
		sets = append(sets, "due_date = ?")
		args = append(args, opt.DueDate.Format(timeLayout))
	}
	if opt.Priority != nil {
		sets = append(sets, "priority = ?")
		args = append(args, nullString(*opt.Priority))
	}

	args = append(args, id)
	res, err := r.db.ExecContext(ctx,
		"UPDATE tasks SET "+strings.Join(sets, ", ")+" WHERE id = ?", args...)
	if err != nil {
		return model.Task{}, fmt.Errorf("failed to update task %d: %w", id, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return model.Task{}, fmt.Errorf("failed to read update result for task %d: %w", id, err)
	}
	if affected == 0 {
		return model.Task{}, task.ErrTaskNotFound
	}

	return r.GetByID(ctx, id)
}

func (r *implRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM tasks WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete task %d: %w", id, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read delete result for task %d: %w", id, err)
	}
	if affected == 0 {
		return task.ErrTaskNotFound
	}
	return nil
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanTask(s scanner) (model.Task, error) {
	var (
		t           model.Task
		description sql.NullString
		completed   int
		dueDate     sql.NullString
		priority    sql.NullString
		createdAt   string
		updatedAt   string
	)

	if err := s.Scan(&t.ID, &t.Title, &description, &completed, &dueDate, &priority, &createdAt, &updatedAt); err != nil {
		return model.Task{}, err
	}

	t.Description = description.String
	t.Completed = completed != 0
	t.Priority = priority.String

	if dueDate.Valid && dueDate.String != "" {
		due, err := time.Parse(timeLayout, dueDate.String)
		if err != nil {
			return model.Task{}, fmt.Errorf("invalid due_date %q: %w", dueDate.String, err)
		}
		t.DueDate = &due
	}

	var err error
	if t.CreatedAt, err = time.Parse(timeLayout, createdAt); err != nil {
		return model.Task{}, fmt.Errorf("invalid created_at %q: %w", createdAt, err)
	}
	if t.UpdatedAt, err = time.Parse(timeLayout, updatedAt); err != nil {
		return model.Task{}, fmt.Errorf("invalid updated_at %q: %w", updatedAt, err)
	}

	return t, nil
}

func nullString(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func nullTime(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.Format(timeLayout)
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
