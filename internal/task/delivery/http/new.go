package http

import (
	"github.com/gin-gonic/gin"

	"smart-todo-backend/internal/task"
	pkgLog "smart-todo-backend/pkg/log"
)

// Handler exposes the task domain over HTTP.
type Handler interface {
	CreateTask(c *gin.Context)
	ParseTask(c *gin.Context)
	ListTasks(c *gin.Context)
	GetTask(c *gin.Context)
	UpdateTask(c *gin.Context)
	DeleteTask(c *gin.Context)
}

type handler struct {
	l  pkgLog.Logger
	uc task.UseCase
}

// New creates a new task HTTP handler.
func New(l pkgLog.Logger, uc task.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
