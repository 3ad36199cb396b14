package handler

import (
	"fmt"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ncobase/taskboard/ecode"
	"github.com/ncobase/taskboard/logging/logger"
	"github.com/ncobase/taskboard/service"
	"github.com/ncobase/taskboard/structs"
	"github.com/ncobase/taskboard/web"
)

// WebHandler renders the browser pages.
type WebHandler struct {
	projects  *service.ProjectService
	templates *template.Template
	logger    *logger.Logger
}

// NewWebHandler parses the embedded templates.
func NewWebHandler(projects *service.ProjectService, logger *logger.Logger) (*WebHandler, error) {
	tmpl, err := web.Templates()
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &WebHandler{projects: projects, templates: tmpl, logger: logger}, nil
}

// RegisterRoutes registers the page routes and static assets.
func (h *WebHandler) RegisterRoutes(r *gin.Engine) {
	r.SetHTMLTemplate(h.templates)
	r.StaticFS("/static", http.FS(web.Static()))
	r.GET("/", h.Projects)
	r.GET("/projects/:id", h.Tasks)
}

// Projects handles GET /, the project list.
func (h *WebHandler) Projects(c *gin.Context) {
	projects, err := h.projects.List(c.Request.Context())
	if err != nil {
		h.logger.Error(c.Request.Context(), "failed to render projects", "error", err)
		h.errorPage(c, http.StatusInternalServerError, "Something went wrong", ecode.Text(ecode.InternalError))
		return
	}

	c.HTML(http.StatusOK, "projects.html", gin.H{
		"Title":    "Projects",
		"Projects": projects,
	})
}

// Tasks handles GET /projects/:id, the task board of one project.
func (h *WebHandler) Tasks(c *gin.Context) {
	project, err := h.projects.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if e, ok := ecode.As(err); ok && e.Code == ecode.ProjectNotFound {
			h.errorPage(c, http.StatusNotFound, "Project not found", "No project has this id.")
			return
		}
		h.logger.Error(c.Request.Context(), "failed to render tasks", "error", err)
		h.errorPage(c, http.StatusInternalServerError, "Something went wrong", ecode.Text(ecode.InternalError))
		return
	}

	c.HTML(http.StatusOK, "tasks.html", gin.H{
		"Title":    project.Name,
		"Project":  project,
		"Statuses": structs.Statuses(),
	})
}

func (h *WebHandler) errorPage(c *gin.Context, status int, title, message string) {
	c.HTML(status, "error.html", gin.H{
		"Title":   title,
		"Message": message,
	})
}
