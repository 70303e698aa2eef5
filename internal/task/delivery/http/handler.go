package http

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"smart-todo-backend/internal/task"
	pkgResponse "smart-todo-backend/pkg/response"
)

// CreateTask handles structured task creation.
// @Summary Create a task
// @Description Create a new task from structured data
// @Tags Tasks
// @Accept json
// @Produce json
// @Param task body createTaskRequest true "Task data"
// @Success 201 {object} response.Resp
// @Router /api/v1/tasks [post]
func (h *handler) CreateTask(c *gin.Context) {
	ctx := c.Request.Context()

	var req createTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(ctx, "task handler: invalid create request: %v", err)
		pkgResponse.Error(c, err, nil)
		return
	}

	created, err := h.uc.Create(ctx, task.CreateInput{
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
		Priority:    req.Priority,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	pkgResponse.Created(c, created)
}

// ParseTask creates a task from a natural language description.
// @Summary Create a task from natural language
// @Description Parse a free-form description into a task and persist it
// @Tags Tasks
// @Accept json
// @Produce json
// @Param request body parseTaskRequest true "Natural language input"
// @Success 201 {object} response.Resp
// @Router /api/v1/tasks/parse [post]
func (h *handler) ParseTask(c *gin.Context) {
	ctx := c.Request.Context()

	var req parseTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(ctx, "task handler: invalid parse request: %v", err)
		pkgResponse.Error(c, err, nil)
		return
	}

	created, err := h.uc.CreateFromText(ctx, task.ParseInput{
		Text:                  req.Text,
		TimezoneOffsetMinutes: req.TimezoneOffset,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	pkgResponse.Created(c, created)
}

// ListTasks returns tasks with pagination.
// @Summary List tasks
// @Tags Tasks
// @Produce json
// @Param skip query int false "Number of tasks to skip"
// @Param limit query int false "Maximum number of tasks to return"
// @Success 200 {object} response.Resp
// @Router /api/v1/tasks [get]
func (h *handler) ListTasks(c *gin.Context) {
	ctx := c.Request.Context()

	skip, _ := strconv.Atoi(c.DefaultQuery("skip", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))

	tasks, err := h.uc.List(ctx, task.ListInput{Skip: skip, Limit: limit})
	if err != nil {
		h.handleError(c, err)
		return
	}

	pkgResponse.OK(c, tasks)
}

// GetTask returns a single task by ID.
// @Summary Get a task
// @Tags Tasks
// @Produce json
// @Param id path int true "Task ID"
// @Success 200 {object} response.Resp
// @Router /api/v1/tasks/{id} [get]
func (h *handler) GetTask(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := parseID(c)
	if err != nil {
		pkgResponse.Error(c, err, nil)
		return
	}

	found, err := h.uc.Get(ctx, id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	pkgResponse.OK(c, found)
}

// UpdateTask applies a partial update to a task.
// @Summary Update a task
// @Tags Tasks
// @Accept json
// @Produce json
// @Param id path int true "Task ID"
// @Param task body updateTaskRequest true "Fields to update"
// @Success 200 {object} response.Resp
// @Router /api/v1/tasks/{id} [put]
func (h *handler) UpdateTask(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := parseID(c)
	if err != nil {
		pkgResponse.Error(c, err, nil)
		return
	}

	var req updateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(ctx, "task handler: invalid update request: %v", err)
		pkgResponse.Error(c, err, nil)
		return
	}

	updated, err := h.uc.Update(ctx, id, task.UpdateInput{
		Title:       req.Title,
		Description: req.Description,
		Completed:   req.Completed,
		DueDate:     req.DueDate,
		Priority:    req.Priority,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	pkgResponse.OK(c, updated)
}

// DeleteTask removes a task by ID.
// @Summary Delete a task
// @Tags Tasks
// @Param id path int true "Task ID"
// @Success 204
// @Router /api/v1/tasks/{id} [delete]
func (h *handler) DeleteTask(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := parseID(c)
	if err != nil {
		pkgResponse.Error(c, err, nil)
		return
	}

	if err := h.uc.Delete(ctx, id); err != nil {
		h.handleError(c, err)
		return
	}

	pkgResponse.NoContent(c)
}

func (h *handler) handleError(c *gin.Context, err error) {
	ctx := c.Request.Context()

	switch {
	case errors.Is(err, task.ErrTaskNotFound):
		pkgResponse.NotFound(c, err)
	case errors.Is(err, task.ErrEmptyInput), errors.Is(err, task.ErrEmptyTitle):
		pkgResponse.Error(c, err, nil)
	default:
		h.l.Errorf(ctx, "task handler: unexpected error: %v", err)
		pkgResponse.InternalError(c, err)
	}
}

func parseID(c *gin.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}
