package repository

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"

	"github.com/ncobase/taskboard/data"
	"github.com/ncobase/taskboard/data/schema"
	"github.com/ncobase/taskboard/logging/logger"
	"github.com/ncobase/taskboard/structs"
)

// TaskRepository defines the interface for task data operations.
type TaskRepository interface {
	Create(ctx context.Context, t *structs.Task) (*structs.Task, error)
	GetByID(ctx context.Context, id string) (*structs.Task, error)
	List(ctx context.Context, filter *structs.TaskFilter) ([]*structs.Task, error)
	UpdateStatus(ctx context.Context, id string, status structs.Status) (*structs.Task, error)
	Delete(ctx context.Context, id string) (*structs.Task, error)
}

type taskRepository struct {
	base
}

// NewTaskRepository creates a new task repository instance.
func NewTaskRepository(d *data.Data, l *logger.Logger, o *options) TaskRepository {
	return &taskRepository{base: newBase(d, l, o)}
}

var taskColumns = []string{
	schema.FieldID,
	schema.FieldTitle,
	schema.FieldDescription,
	schema.FieldStatus,
	schema.FieldProjectID,
	schema.FieldAssignee,
	schema.FieldCreatedAt,
	schema.FieldUpdatedAt,
}

func scanTask(s scanner) (*structs.Task, error) {
	var (
		t           structs.Task
		description entsql.NullString
		status      string
	)
	if err := s.Scan(&t.ID, &t.Title, &description, &status, &t.ProjectID, &t.Assignee, &t.CreatedAt, &t.UpdatedAt); err != nil {
		return nil, fmt.Errorf("scan task: %w", err)
	}
	if description.Valid {
		t.Description = &description.String
	}
	t.Status = structs.Status(status)
	t.CreatedAt = t.CreatedAt.UTC()
	t.UpdatedAt = t.UpdatedAt.UTC()
	return &t, nil
}

// Create creates a new task. ID and timestamps are assigned here and an
// empty status becomes TODO.
func (r *taskRepository) Create(ctx context.Context, t *structs.Task) (*structs.Task, error) {
	now := r.timestamp()
	created := &structs.Task{
		ID:          r.newID(),
		Title:       t.Title,
		Description: t.Description,
		Status:      t.Status,
		ProjectID:   t.ProjectID,
		Assignee:    t.Assignee,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if created.Status == "" {
		created.Status = structs.StatusTodo
	}

	var description any
	if created.Description != nil {
		description = *created.Description
	}

	query, args := r.builder().Insert(schema.TaskTable).
		Columns(taskColumns...).
		Values(created.ID, created.Title, description, string(created.Status),
			created.ProjectID, created.Assignee, created.CreatedAt, created.UpdatedAt).
		Query()
	if _, err := exec(ctx, r.d.Driver(), query, args); err != nil {
		r.logger.Error(ctx, "failed to create task", "error", err)
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	r.logger.Info(ctx, "task created", "id", created.ID, "project_id", created.ProjectID)
	return created, nil
}

// GetByID retrieves a task by ID.
func (r *taskRepository) GetByID(ctx context.Context, id string) (*structs.Task, error) {
	t, err := r.get(ctx, r.d.Driver(), id)
	if err != nil && !errors.Is(err, ErrNotFound) {
		r.logger.Error(ctx, "failed to get task", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get task: %w", err)
	}
	return t, err
}

func (r *taskRepository) get(ctx context.Context, q querier, id string) (*structs.Task, error) {
	query, args := r.builder().Select(taskColumns...).
		From(entsql.Table(schema.TaskTable)).
		Where(entsql.EQ(schema.FieldID, id)).
		Limit(1).
		Query()

	var found *structs.Task
	err := queryRows(ctx, q, query, args, func(s scanner) (err error) {
		found, err = scanTask(s)
		return err
	})
	if err != nil {
		return nil, err
	}
	if found == nil {
		return nil, ErrNotFound
	}
	return found, nil
}

// List returns the tasks matching filter, newest first. A nil filter or
// nil filter fields impose no constraint.
func (r *taskRepository) List(ctx context.Context, filter *structs.TaskFilter) ([]*structs.Task, error) {
	sel := r.builder().Select(taskColumns...).
		From(entsql.Table(schema.TaskTable))

	if filter != nil {
		if filter.ProjectID != nil {
			sel.Where(entsql.EQ(schema.FieldProjectID, *filter.ProjectID))
		}
		if filter.Status != nil {
			sel.Where(entsql.EQ(schema.FieldStatus, string(*filter.Status)))
		}
	}

	query, args := sel.
		OrderBy(entsql.Desc(schema.FieldCreatedAt), entsql.Desc(schema.FieldID)).
		Query()

	tasks := make([]*structs.Task, 0)
	err := queryRows(ctx, r.d.Driver(), query, args, func(s scanner) error {
		t, err := scanTask(s)
		if err != nil {
			return err
		}
		tasks = append(tasks, t)
		return nil
	})
	if err != nil {
		r.logger.Error(ctx, "failed to list tasks", "error", err)
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

// UpdateStatus sets the status of a task and bumps updated_at. Concurrent
// updates are last-write-wins.
func (r *taskRepository) UpdateStatus(ctx context.Context, id string, status structs.Status) (*structs.Task, error) {
	var updated *structs.Task
	err := r.d.WithTx(ctx, func(tx dialect.Tx) error {
		if _, err := r.get(ctx, tx, id); err != nil {
			return err
		}

		query, args := r.builder().Update(schema.TaskTable).
			Set(schema.FieldStatus, string(status)).
			Set(schema.FieldUpdatedAt, r.timestamp()).
			Where(entsql.EQ(schema.FieldID, id)).
			Query()
		if _, err := exec(ctx, tx, query, args); err != nil {
			return err
		}

		t, err := r.get(ctx, tx, id)
		if err != nil {
			return err
		}
		updated = t
		return nil
	})
	if errors.Is(err, ErrNotFound) {
		return nil, err
	}
	if err != nil {
		r.logger.Error(ctx, "failed to update task", "id", id, "error", err)
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	r.logger.Info(ctx, "task updated", "id", id, "status", status.String())
	return updated, nil
}

// Delete removes a task and returns the row as it was before deletion.
func (r *taskRepository) Delete(ctx context.Context, id string) (*structs.Task, error) {
	var deleted *structs.Task
	err := r.d.WithTx(ctx, func(tx dialect.Tx) error {
		t, err := r.get(ctx, tx, id)
		if err != nil {
			return err
		}

		query, args := r.builder().Delete(schema.TaskTable).
			Where(entsql.EQ(schema.FieldID, id)).
			Query()
		n, err := exec(ctx, tx, query, args)
		if err != nil {
			return err
		}
		if n == 0 {
			return ErrNotFound
		}
		deleted = t
		return nil
	})
	if errors.Is(err, ErrNotFound) {
		return nil, err
	}
	if err != nil {
		r.logger.Error(ctx, "failed to delete task", "id", id, "error", err)
		return nil, fmt.Errorf("failed to delete task: %w", err)
	}

	r.logger.Info(ctx, "task deleted", "id", id)
	return deleted, nil
}
