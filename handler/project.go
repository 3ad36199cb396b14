package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ncobase/taskboard/logging/logger"
	"github.com/ncobase/taskboard/net/resp"
	"github.com/ncobase/taskboard/service"
)

// ProjectHandler handles HTTP requests for projects.
type ProjectHandler struct {
	svc    *service.ProjectService
	logger *logger.Logger
}

// NewProjectHandler creates a new project handler.
func NewProjectHandler(svc *service.ProjectService, logger *logger.Logger) *ProjectHandler {
	return &ProjectHandler{svc: svc, logger: logger}
}

// List handles GET /api/projects.
func (h *ProjectHandler) List(c *gin.Context) {
	projects, err := h.svc.List(c.Request.Context())
	if err != nil {
		fail(c, h.logger, "failed to list projects", err)
		return
	}
	resp.Success(c.Writer, projects)
}

// Create handles POST /api/projects.
func (h *ProjectHandler) Create(c *gin.Context) {
	var body service.CreateProjectBody
	if err := c.ShouldBindJSON(&body); err != nil {
		badJSON(c, h.logger, err)
		return
	}

	project, err := h.svc.Create(c.Request.Context(), &body)
	if err != nil {
		fail(c, h.logger, "failed to create project", err)
		return
	}
	resp.WithStatusCode(c.Writer, http.StatusCreated, project)
}

// Get handles GET /api/projects/:id.
func (h *ProjectHandler) Get(c *gin.Context) {
	project, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, h.logger, "failed to get project", err)
		return
	}
	resp.Success(c.Writer, project)
}
