package repository

import (
	"context"
	"fmt"

	entsql "entgo.io/ent/dialect/sql"

	"github.com/ncobase/taskboard/data"
	"github.com/ncobase/taskboard/data/cache"
	"github.com/ncobase/taskboard/data/schema"
	"github.com/ncobase/taskboard/logging/logger"
	"github.com/ncobase/taskboard/structs"

	"github.com/sony/gobreaker"
)

const projectListField = "list"

// ProjectRepository defines the interface for project data operations.
type ProjectRepository interface {
	Create(ctx context.Context, p *structs.Project) (*structs.Project, error)
	GetByID(ctx context.Context, id string) (*structs.Project, error)
	List(ctx context.Context) ([]*structs.Project, error)
}

type projectRepository struct {
	base
	cache *cache.Cache[[]*structs.Project]
}

// NewProjectRepository creates a new project repository instance.
func NewProjectRepository(d *data.Data, l *logger.Logger, o *options) ProjectRepository {
	opts := []cache.Option{
		cache.WithStateChange(func(name string, from, to gobreaker.State) {
			l.Warn(context.Background(), "cache breaker state changed", "name", name, "from", from.String(), "to", to.String())
		}),
	}
	if rc := d.CacheConfig(); rc != nil {
		opts = append(opts,
			cache.WithTTL(rc.CacheTTL),
			cache.WithBreaker(rc.BreakerMaxFailures, rc.BreakerTimeout),
		)
	}

	return &projectRepository{
		base:  newBase(d, l, o),
		cache: cache.NewCache[[]*structs.Project](d.Redis(), schema.ProjectTable, opts...),
	}
}

// listField keys the cached list by generation. Create bumps the
// generation, so a list read before an insert can only land under a
// generation nobody reads anymore.
func listField(gen int64) string {
	return fmt.Sprintf("%s:%d", projectListField, gen)
}

var projectColumns = []string{
	schema.FieldID,
	schema.FieldName,
	schema.FieldCreatedAt,
}

func scanProject(s scanner) (*structs.Project, error) {
	p := &structs.Project{}
	if err := s.Scan(&p.ID, &p.Name, &p.CreatedAt); err != nil {
		return nil, fmt.Errorf("scan project: %w", err)
	}
	p.CreatedAt = p.CreatedAt.UTC()
	return p, nil
}

// Create creates a new project. ID and CreatedAt are assigned here.
func (r *projectRepository) Create(ctx context.Context, p *structs.Project) (*structs.Project, error) {
	created := &structs.Project{
		ID:        r.newID(),
		Name:      p.Name,
		CreatedAt: r.timestamp(),
	}

	query, args := r.builder().Insert(schema.ProjectTable).
		Columns(projectColumns...).
		Values(created.ID, created.Name, created.CreatedAt).
		Query()
	if _, err := exec(ctx, r.d.Driver(), query, args); err != nil {
		r.logger.Error(ctx, "failed to create project", "error", err)
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	if gen, err := r.cache.Bump(ctx); err != nil {
		r.logger.Warn(ctx, "failed to invalidate project cache", "error", err)
	} else if err := r.cache.Delete(ctx, listField(gen-1)); err != nil {
		r.logger.Warn(ctx, "failed to drop stale project list", "error", err)
	}

	r.logger.Info(ctx, "project created", "id", created.ID)
	return created, nil
}

// GetByID retrieves a project by ID.
func (r *projectRepository) GetByID(ctx context.Context, id string) (*structs.Project, error) {
	query, args := r.builder().Select(projectColumns...).
		From(entsql.Table(schema.ProjectTable)).
		Where(entsql.EQ(schema.FieldID, id)).
		Limit(1).
		Query()

	var found *structs.Project
	err := queryRows(ctx, r.d.Driver(), query, args, func(s scanner) (err error) {
		found, err = scanProject(s)
		return err
	})
	if err != nil {
		r.logger.Error(ctx, "failed to get project", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	if found == nil {
		return nil, ErrNotFound
	}
	return found, nil
}

// List returns every project, newest first. The result is served from
// cache when redis is configured.
func (r *projectRepository) List(ctx context.Context) ([]*structs.Project, error) {
	var (
		gen       int64
		cacheable bool
	)
	if r.cache.Enabled() {
		var err error
		gen, err = r.cache.Generation(ctx)
		if err != nil {
			r.logger.Warn(ctx, "failed to read project cache generation", "error", err)
		} else {
			cacheable = true
			cached, err := r.cache.Get(ctx, listField(gen))
			if err != nil {
				r.logger.Warn(ctx, "failed to read project cache", "error", err)
			}
			if cached != nil {
				return *cached, nil
			}
		}
	}

	query, args := r.builder().Select(projectColumns...).
		From(entsql.Table(schema.ProjectTable)).
		OrderBy(entsql.Desc(schema.FieldCreatedAt), entsql.Desc(schema.FieldID)).
		Query()

	projects := make([]*structs.Project, 0)
	err := queryRows(ctx, r.d.Driver(), query, args, func(s scanner) error {
		p, err := scanProject(s)
		if err != nil {
			return err
		}
		projects = append(projects, p)
		return nil
	})
	if err != nil {
		r.logger.Error(ctx, "failed to list projects", "error", err)
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}

	if cacheable {
		if err := r.cache.Set(ctx, listField(gen), &projects); err != nil {
			r.logger.Warn(ctx, "failed to write project cache", "error", err)
		}
	}
	return projects, nil
}
