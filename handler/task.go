package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ncobase/taskboard/logging/logger"
	"github.com/ncobase/taskboard/net/resp"
	"github.com/ncobase/taskboard/service"
)

// TaskHandler handles HTTP requests for tasks.
type TaskHandler struct {
	svc    *service.TaskService
	logger *logger.Logger
}

// NewTaskHandler creates a new task handler.
func NewTaskHandler(svc *service.TaskService, logger *logger.Logger) *TaskHandler {
	return &TaskHandler{svc: svc, logger: logger}
}

// List handles GET /api/tasks?projectId=&status=.
func (h *TaskHandler) List(c *gin.Context) {
	params := &service.ListTaskParams{
		ProjectID: c.Query("projectId"),
		Status:    c.Query("status"),
	}

	tasks, err := h.svc.List(c.Request.Context(), params)
	if err != nil {
		fail(c, h.logger, "failed to list tasks", err)
		return
	}
	resp.Success(c.Writer, tasks)
}

// Create handles POST /api/tasks.
func (h *TaskHandler) Create(c *gin.Context) {
	var body service.CreateTaskBody
	if err := c.ShouldBindJSON(&body); err != nil {
		badJSON(c, h.logger, err)
		return
	}

	task, err := h.svc.Create(c.Request.Context(), &body)
	if err != nil {
		fail(c, h.logger, "failed to create task", err)
		return
	}
	resp.WithStatusCode(c.Writer, http.StatusCreated, task)
}

// Get handles GET /api/tasks/:id.
func (h *TaskHandler) Get(c *gin.Context) {
	task, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, h.logger, "failed to get task", err)
		return
	}
	resp.Success(c.Writer, task)
}

// UpdateStatus handles PATCH /api/tasks/:id.
func (h *TaskHandler) UpdateStatus(c *gin.Context) {
	var body service.UpdateTaskBody
	if err := c.ShouldBindJSON(&body); err != nil {
		badJSON(c, h.logger, err)
		return
	}

	task, err := h.svc.UpdateStatus(c.Request.Context(), c.Param("id"), &body)
	if err != nil {
		fail(c, h.logger, "failed to update task", err)
		return
	}
	resp.Success(c.Writer, task)
}

// Delete handles DELETE /api/tasks/:id.
func (h *TaskHandler) Delete(c *gin.Context) {
	task, err := h.svc.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, h.logger, "failed to delete task", err)
		return
	}
	resp.Success(c.Writer, task)
}
