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

// TaskService handles task-related business logic.
type TaskService struct {
	tasks    repository.TaskRepository
	projects repository.ProjectRepository
	logger   *logger.Logger
}

// NewTaskService creates a new task service.
func NewTaskService(tasks repository.TaskRepository, projects repository.ProjectRepository, logger *logger.Logger) *TaskService {
	return &TaskService{tasks: tasks, projects: projects, logger: logger}
}

// CreateTaskBody represents the request to create a task.
type CreateTaskBody struct {
	Title       string  `json:"title" validate:"notblank,max=255"`
	Description *string `json:"description"`
	Status      string  `json:"status" validate:"omitempty,status"`
	ProjectID   string  `json:"projectId" validate:"notblank"`
	Assignee    string  `json:"assignee" validate:"notblank,max=255"`
}

// UpdateTaskBody represents the request to change a task's status.
type UpdateTaskBody struct {
	Status string `json:"status" validate:"status"`
}

// ListTaskParams are the optional query filters for listing tasks.
type ListTaskParams struct {
	ProjectID string `form:"projectId" json:"projectId"`
	Status    string `form:"status" json:"status"`
}

var createTaskFieldOrder = []string{"title", "projectId", "assignee", "status"}

// List returns the tasks matching params, newest first. Empty params impose
// no constraint; an unknown status is rejected.
func (s *TaskService) List(ctx context.Context, params *ListTaskParams) ([]*structs.Task, error) {
	ctx, span := observes.StartSpan(ctx, observes.LayerService, "TaskService.List")
	defer span.End()

	if params == nil {
		params = &ListTaskParams{}
	}

	var opts []structs.TaskFilterOption
	if id := strings.TrimSpace(params.ProjectID); id != "" {
		opts = append(opts, structs.WithProject(id))
	}
	if params.Status != "" {
		if msg := validator.Var("status", params.Status, "status"); msg != "" {
			s.logger.Debug(ctx, "rejected task filter", "status", params.Status)
			return nil, ecode.Validation(msg, map[string]string{"status": msg})
		}
		opts = append(opts, structs.WithStatus(structs.Status(params.Status)))
	}

	tasks, err := s.tasks.List(ctx, structs.NewTaskFilter(opts...))
	if err != nil {
		return nil, ecode.Internal(err)
	}
	return tasks, nil
}

// Create creates a task in an existing project. Status defaults to TODO.
func (s *TaskService) Create(ctx context.Context, body *CreateTaskBody) (*structs.Task, error) {
	ctx, span := observes.StartSpan(ctx, observes.LayerService, "TaskService.Create")
	defer span.End()

	if body == nil {
		body = &CreateTaskBody{}
	}
	body.Title = strings.TrimSpace(body.Title)
	body.ProjectID = strings.TrimSpace(body.ProjectID)
	body.Assignee = strings.TrimSpace(body.Assignee)

	if err := validate(body, createTaskFieldOrder...); err != nil {
		s.logger.Debug(ctx, "rejected task", "error", err)
		return nil, err
	}

	status := structs.StatusTodo
	if body.Status != "" {
		status = structs.Status(body.Status)
	}

	if !nanoid.IsPrimaryKey(body.ProjectID) {
		s.logger.Warn(ctx, "task for unknown project", "project_id", body.ProjectID)
		return nil, ecode.New(ecode.ProjectNotFound, "")
	}
	if _, err := s.projects.GetByID(ctx, body.ProjectID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			s.logger.Warn(ctx, "task for unknown project", "project_id", body.ProjectID)
			return nil, ecode.New(ecode.ProjectNotFound, "")
		}
		return nil, ecode.Internal(err)
	}

	created, err := s.tasks.Create(ctx, &structs.Task{
		Title:       body.Title,
		Description: body.Description,
		Status:      status,
		ProjectID:   body.ProjectID,
		Assignee:    body.Assignee,
	})
	if err != nil {
		return nil, ecode.Internal(err)
	}
	return created, nil
}

// Get returns one task.
func (s *TaskService) Get(ctx context.Context, id string) (*structs.Task, error) {
	ctx, span := observes.StartSpan(ctx, observes.LayerService, "TaskService.Get")
	defer span.End()

	if !nanoid.IsPrimaryKey(id) {
		return nil, ecode.New(ecode.TaskNotFound, "")
	}

	t, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		return nil, taskError(err)
	}
	return t, nil
}

// UpdateStatus changes only the status of a task.
func (s *TaskService) UpdateStatus(ctx context.Context, id string, body *UpdateTaskBody) (*structs.Task, error) {
	ctx, span := observes.StartSpan(ctx, observes.LayerService, "TaskService.UpdateStatus")
	defer span.End()

	if body == nil {
		body = &UpdateTaskBody{}
	}
	if err := validate(body); err != nil {
		s.logger.Debug(ctx, "rejected status change", "id", id, "error", err)
		return nil, err
	}
	if !nanoid.IsPrimaryKey(id) {
		return nil, ecode.New(ecode.TaskNotFound, "")
	}

	t, err := s.tasks.UpdateStatus(ctx, id, structs.Status(body.Status))
	if err != nil {
		return nil, taskError(err)
	}
	return t, nil
}

// Delete removes a task and returns it as it was.
func (s *TaskService) Delete(ctx context.Context, id string) (*structs.Task, error) {
	ctx, span := observes.StartSpan(ctx, observes.LayerService, "TaskService.Delete")
	defer span.End()

	if !nanoid.IsPrimaryKey(id) {
		return nil, ecode.New(ecode.TaskNotFound, "")
	}

	t, err := s.tasks.Delete(ctx, id)
	if err != nil {
		return nil, taskError(err)
	}
	return t, nil
}

func taskError(err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return ecode.New(ecode.TaskNotFound, "")
	}
	return ecode.Internal(err)
}
