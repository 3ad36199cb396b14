// Package handler provides the HTTP handlers for the JSON API and the
// browser pages.
package handler

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/wire"

	"github.com/ncobase/taskboard/ecode"
	"github.com/ncobase/taskboard/logging/logger"
	"github.com/ncobase/taskboard/net/resp"
	"github.com/ncobase/taskboard/service"
)

// ProviderSet is the wire provider set for the handler package.
var ProviderSet = wire.NewSet(NewHandler)

// Pinger reports whether the backing stores are reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Handler aggregates all HTTP handlers.
type Handler struct {
	Project *ProjectHandler
	Task    *TaskHandler
	Health  *HealthHandler
	Web     *WebHandler
	logger  *logger.Logger
}

// NewHandler creates a new handler instance with all sub-handlers initialized.
func NewHandler(svc *service.Service, pinger Pinger, logger *logger.Logger) (*Handler, error) {
	web, err := NewWebHandler(svc.Project, logger)
	if err != nil {
		return nil, err
	}
	return &Handler{
		Project: NewProjectHandler(svc.Project, logger),
		Task:    NewTaskHandler(svc.Task, logger),
		Health:  NewHealthHandler(pinger, logger),
		Web:     web,
		logger:  logger,
	}, nil
}

// RegisterRoutes registers all HTTP routes.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/health", h.Health.Check)

	api := r.Group("/api")
	{
		projects := api.Group("/projects")
		{
			projects.GET("", h.Project.List)
			projects.POST("", h.Project.Create)
			projects.GET("/:id", h.Project.Get)
		}
		tasks := api.Group("/tasks")
		{
			tasks.GET("", h.Task.List)
			tasks.POST("", h.Task.Create)
			tasks.GET("/:id", h.Task.Get)
			tasks.PATCH("/:id", h.Task.UpdateStatus)
			tasks.DELETE("/:id", h.Task.Delete)
		}
	}

	h.Web.RegisterRoutes(r)
}

// fail writes a service error, logging anything that is not a client error.
func fail(c *gin.Context, l *logger.Logger, msg string, err error) {
	e := resp.FromError(err)
	if e.Code == ecode.InternalError {
		l.Error(c.Request.Context(), msg, "error", err)
		_ = c.Error(err)
	}
	resp.Fail(c.Writer, e)
}

// badJSON answers a body that could not be decoded.
func badJSON(c *gin.Context, l *logger.Logger, err error) {
	l.Warn(c.Request.Context(), "invalid request body", "error", err)
	resp.Fail(c.Writer, resp.BadRequest("request body must be valid JSON"))
}
