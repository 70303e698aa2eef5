package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"smart-todo-backend/internal/model"
	"smart-todo-backend/internal/task"
	"smart-todo-backend/internal/task/repository"
	"smart-todo-backend/internal/task/usecase"
)

// mock dependencies

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

type mockParser struct {
	result     model.StructuredTask
	lastText   string
	lastOffset *int
	calls      int
}

func (m *mockParser) Parse(ctx context.Context, text string, tzOffsetMinutes *int) model.StructuredTask {
	m.calls++
	m.lastText = text
	m.lastOffset = tzOffsetMinutes
	return m.result
}

type mockRepo struct {
	fail       bool
	lastCreate repository.CreateTaskOptions
	lastUpdate repository.UpdateTaskOptions
	lastList   repository.ListTasksOptions
	deletedID  int64
}

func (m *mockRepo) Create(ctx context.Context, opt repository.CreateTaskOptions) (model.Task, error) {
	if m.fail {
		return model.Task{}, errors.New("db error")
	}
	m.lastCreate = opt
	return model.Task{
		ID:          1,
		Title:       opt.Title,
		Description: opt.Description,
		DueDate:     opt.DueDate,
		Priority:    opt.Priority,
	}, nil
}

func (m *mockRepo) GetByID(ctx context.Context, id int64) (model.Task, error) {
	if m.fail {
		return model.Task{}, task.ErrTaskNotFound
	}
	return model.Task{ID: id, Title: "stored"}, nil
}

func (m *mockRepo) List(ctx context.Context, opt repository.ListTasksOptions) ([]model.Task, error) {
	m.lastList = opt
	return []model.Task{{ID: 1, Title: "stored"}}, nil
}

func (m *mockRepo) Update(ctx context.Context, id int64, opt repository.UpdateTaskOptions) (model.Task, error) {
	if m.fail {
		return model.Task{}, task.ErrTaskNotFound
	}
	m.lastUpdate = opt
	return model.Task{ID: id, Title: "updated"}, nil
}

func (m *mockRepo) Delete(ctx context.Context, id int64) error {
	if m.fail {
		return task.ErrTaskNotFound
	}
	m.deletedID = id
	return nil
}

func TestCreate(t *testing.T) {
	t.Run("success normalizes priority", func(t *testing.T) {
		repo := &mockRepo{}
		uc := usecase.New(&mockLogger{}, &mockParser{}, repo)

		created, err := uc.Create(context.Background(), task.CreateInput{
			Title:    "Submit report",
			Priority: "urgent",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.Title != "Submit report" {
			t.Errorf("title = %q, want %q", created.Title, "Submit report")
		}
		if repo.lastCreate.Priority != model.PriorityHigh {
			t.Errorf("stored priority = %q, want %q", repo.lastCreate.Priority, model.PriorityHigh)
		}
	})

	t.Run("empty title rejected", func(t *testing.T) {
		uc := usecase.New(&mockLogger{}, &mockParser{}, &mockRepo{})

		_, err := uc.Create(context.Background(), task.CreateInput{Title: "   "})
		if !errors.Is(err, task.ErrEmptyTitle) {
			t.Errorf("err = %v, want ErrEmptyTitle", err)
		}
	})

	t.Run("repo failure propagates", func(t *testing.T) {
		uc := usecase.New(&mockLogger{}, &mockParser{}, &mockRepo{fail: true})

		_, err := uc.Create(context.Background(), task.CreateInput{Title: "x"})
		if err == nil {
			t.Error("expected error from failing repository")
		}
	})
}

func TestCreateFromText(t *testing.T) {
	t.Run("parsed fields reach the repository", func(t *testing.T) {
		due := time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)
		p := &mockParser{result: model.StructuredTask{
			Title:    "Submit taxes",
			DueDate:  &due,
			Priority: model.PriorityHigh,
		}}
		repo := &mockRepo{}
		uc := usecase.New(&mockLogger{}, p, repo)

		offset := -420
		created, err := uc.CreateFromText(context.Background(), task.ParseInput{
			Text:                  "remind me to submit taxes next Monday at noon",
			TimezoneOffsetMinutes: &offset,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.calls != 1 {
			t.Fatalf("parser called %d times, want 1", p.calls)
		}
		if p.lastText != "remind me to submit taxes next Monday at noon" {
			t.Errorf("parser received text %q", p.lastText)
		}
		if p.lastOffset == nil || *p.lastOffset != -420 {
			t.Errorf("parser received offset %v, want -420", p.lastOffset)
		}
		if created.Title != "Submit taxes" {
			t.Errorf("title = %q, want %q", created.Title, "Submit taxes")
		}
		if repo.lastCreate.DueDate == nil || !repo.lastCreate.DueDate.Equal(due) {
			t.Errorf("stored due date = %v, want %v", repo.lastCreate.DueDate, due)
		}
		if repo.lastCreate.Priority != model.PriorityHigh {
			t.Errorf("stored priority = %q, want %q", repo.lastCreate.Priority, model.PriorityHigh)
		}
	})

	t.Run("empty input rejected before parsing", func(t *testing.T) {
		p := &mockParser{}
		uc := usecase.New(&mockLogger{}, p, &mockRepo{})

		_, err := uc.CreateFromText(context.Background(), task.ParseInput{Text: "  "})
		if !errors.Is(err, task.ErrEmptyInput) {
			t.Errorf("err = %v, want ErrEmptyInput", err)
		}
		if p.calls != 0 {
			t.Errorf("parser called %d times, want 0", p.calls)
		}
	})

	t.Run("repo failure propagates", func(t *testing.T) {
		p := &mockParser{result: model.StructuredTask{Title: "x"}}
		uc := usecase.New(&mockLogger{}, p, &mockRepo{fail: true})

		_, err := uc.CreateFromText(context.Background(), task.ParseInput{Text: "x"})
		if err == nil {
			t.Error("expected error from failing repository")
		}
	})
}

func TestGet(t *testing.T) {
	uc := usecase.New(&mockLogger{}, &mockParser{}, &mockRepo{})

	got, err := uc.Get(context.Background(), 42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != 42 {
		t.Errorf("id = %d, want 42", got.ID)
	}

	uc = usecase.New(&mockLogger{}, &mockParser{}, &mockRepo{fail: true})
	if _, err := uc.Get(context.Background(), 42); !errors.Is(err, task.ErrTaskNotFound) {
		t.Errorf("err = %v, want ErrTaskNotFound", err)
	}
}

func TestList(t *testing.T) {
	repo := &mockRepo{}
	uc := usecase.New(&mockLogger{}, &mockParser{}, repo)

	got, err := uc.List(context.Background(), task.ListInput{Skip: 10, Limit: 5})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 {
		t.Errorf("len = %d, want 1", len(got))
	}
	if repo.lastList.Offset != 10 || repo.lastList.Limit != 5 {
		t.Errorf("pagination passed as %+v, want offset 10 limit 5", repo.lastList)
	}
}

func TestUpdate(t *testing.T) {
	t.Run("priority normalized", func(t *testing.T) {
		repo := &mockRepo{}
		uc := usecase.New(&mockLogger{}, &mockParser{}, repo)

		prio := "urgent"
		_, err := uc.Update(context.Background(), 1, task.UpdateInput{Priority: &prio})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if repo.lastUpdate.Priority == nil || *repo.lastUpdate.Priority != model.PriorityHigh {
			t.Errorf("stored priority = %v, want %q", repo.lastUpdate.Priority, model.PriorityHigh)
		}
	})

	t.Run("blank title rejected", func(t *testing.T) {
		uc := usecase.New(&mockLogger{}, &mockParser{}, &mockRepo{})

		title := "  "
		_, err := uc.Update(context.Background(), 1, task.UpdateInput{Title: &title})
		if !errors.Is(err, task.ErrEmptyTitle) {
			t.Errorf("err = %v, want ErrEmptyTitle", err)
		}
	})

	t.Run("missing task", func(t *testing.T) {
		uc := usecase.New(&mockLogger{}, &mockParser{}, &mockRepo{fail: true})

		title := "x"
		_, err := uc.Update(context.Background(), 99, task.UpdateInput{Title: &title})
		if !errors.Is(err, task.ErrTaskNotFound) {
			t.Errorf("err = %v, want ErrTaskNotFound", err)
		}
	})
}

func TestDelete(t *testing.T) {
	repo := &mockRepo{}
	uc := usecase.New(&mockLogger{}, &mockParser{}, repo)

	if err := uc.Delete(context.Background(), 7); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.deletedID != 7 {
		t.Errorf("deleted id = %d, want 7", repo.deletedID)
	}

	uc = usecase.New(&mockLogger{}, &mockParser{}, &mockRepo{fail: true})
	if err := uc.Delete(context.Background(), 7); !errors.Is(err, task.ErrTaskNotFound) {
		t.Errorf("err = %v, want ErrTaskNotFound", err)
	}
}
