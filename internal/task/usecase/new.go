package usecase

import (
	"smart-todo-backend/internal/parser"
	"smart-todo-backend/internal/task/repository"
	pkgLog "smart-todo-backend/pkg/log"
)

type implUseCase struct {
	l      pkgLog.Logger
	parser parser.Parser
	repo   repository.TaskRepository
}

// New creates a new task UseCase instance.
func New(l pkgLog.Logger, p parser.Parser, repo repository.TaskRepository) *implUseCase {
	return &implUseCase{
		l:      l,
		parser: p,
		repo:   repo,
	}
}
