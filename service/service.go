// Package service contains the business rules for projects and tasks.
package service

import (
	"github.com/google/wire"

	"github.com/ncobase/taskboard/data/repository"
	"github.com/ncobase/taskboard/logging/logger"
)

// ProviderSet is the wire provider set for the service package.
var ProviderSet = wire.NewSet(NewService)

// Service aggregates all business logic services.
type Service struct {
	Project *ProjectService
	Task    *TaskService
}

// NewService creates a new service instance with all sub-services initialized.
func NewService(repo *repository.Repository, logger *logger.Logger) *Service {
	return &Service{
		Project: NewProjectService(repo.Project, logger),
		Task:    NewTaskService(repo.Task, repo.Project, logger),
	}
}
