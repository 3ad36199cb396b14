package service

import (
	"context"
	"errors"
	"strings"

	"github.com/ncobase/taskboard/data/repository"
	"github.com/ncobase/taskboard/ecode"
	"github.com/ncobase/taskboard/logging/logger"
	"github.com/ncobase/taskboard/logging/observes"
	"github.com/ncobase/taskboard/structs"
	"github.com/ncobase/taskboard/utils/nanoid"
	"github.com/ncobase/taskboard/validation/validator"
)

// ProjectService handles project-related business logic.
type ProjectService struct {
	projects repository.ProjectRepository
	logger   *logger.Logger
}

// NewProjectService creates a new project service.
func NewProjectService(projects repository.ProjectRepository, logger *logger.Logger) *ProjectService {
	return &ProjectService{projects: projects, logger: logger}
}

// CreateProjectBody represents the request to create a project.
type CreateProjectBody struct {
	Name string `json:"name" validate:"notblank,max=255"`
}

// List returns all projects, newest first.
func (s *ProjectService) List(ctx context.Context) ([]*structs.Project, error) {
	ctx, span := observes.StartSpan(ctx, observes.LayerService, "ProjectService.List")
	defer span.End()

	projects, err := s.projects.List(ctx)
	if err != nil {
		return nil, ecode.Internal(err)
	}
	return projects, nil
}

// Create creates a project with a trimmed, non-empty name.
func (s *ProjectService) Create(ctx context.Context, body *CreateProjectBody) (*structs.Project, error) {
	ctx, span := observes.StartSpan(ctx, observes.LayerService, "ProjectService.Create")
	defer span.End()

	if body == nil {
		body = &CreateProjectBody{}
	}
	body.Name = strings.TrimSpace(body.Name)

	if err := validate(body); err != nil {
		s.logger.Debug(ctx, "rejected project", "error", err)
		return nil, err
	}

	created, err := s.projects.Create(ctx, &structs.Project{Name: body.Name})
	if err != nil {
		return nil, ecode.Internal(err)
	}
	return created, nil
}

// Get returns one project.
func (s *ProjectService) Get(ctx context.Context, id string) (*structs.Project, error) {
	ctx, span := observes.StartSpan(ctx, observes.LayerService, "ProjectService.Get")
	defer span.End()

	// ids are never anything but generated keys, so malformed ones miss
	// without a query.
	if !nanoid.IsPrimaryKey(id) {
		s.logger.Debug(ctx, "malformed project id", "id", id)
		return nil, ecode.New(ecode.ProjectNotFound, "")
	}

	p, err := s.projects.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ecode.New(ecode.ProjectNotFound, "")
	}
	if err != nil {
		return nil, ecode.Internal(err)
	}
	return p, nil
}

// validate runs struct validation and turns failures into one
// VALIDATION_ERROR whose message is the first failing field in fields order.
func validate(body any, order ...string) error {
	fields := validator.ValidateStruct(body)
	if len(fields) == 0 {
		return nil
	}

	message := ""
	for _, name := range order {
		if msg, ok := fields[name]; ok {
			message = msg
			break
		}
	}
	if message == "" {
		for _, msg := range fields {
			message = msg
			break
		}
	}
	return ecode.Validation(message, fields)
}
