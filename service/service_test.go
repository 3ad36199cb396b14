package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ncobase/taskboard/data/datatest"
	"github.com/ncobase/taskboard/data/repository"
	"github.com/ncobase/taskboard/ecode"
	"github.com/ncobase/taskboard/structs"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	clock := datatest.NewClock(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	l := datatest.Logger()
	return NewService(repository.New(datatest.Open(t), l, repository.WithClock(clock.Now)), l)
}

func requireCode(t *testing.T, err error, code string) *ecode.Error {
	t.Helper()
	e, ok := ecode.As(err)
	require.True(t, ok, "expected *ecode.Error, got %v", err)
	assert.Equal(t, code, e.Code)
	return e
}

func TestProjectCreate(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	p, err := svc.Project.Create(ctx, &CreateProjectBody{Name: "  Launch  "})
	require.NoError(t, err)
	assert.Equal(t, "Launch", p.Name)

	got, err := svc.Project.Get(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, p.ID, got.ID)

	for _, name := range []string{"", "   "} {
		_, err := svc.Project.Create(ctx, &CreateProjectBody{Name: name})
		e := requireCode(t, err, ecode.ValidationError)
		assert.Equal(t, "name is required", e.Message)
	}

	_, err = svc.Project.Get(ctx, "missing")
	requireCode(t, err, ecode.ProjectNotFound)
}

func TestProjectListEmpty(t *testing.T) {
	projects, err := newTestService(t).Project.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, projects)
}

func TestTaskCreateValidation(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)
	p, err := svc.Project.Create(ctx, &CreateProjectBody{Name: "p"})
	require.NoError(t, err)

	tests := []struct {
		name    string
		body    *CreateTaskBody
		code    string
		message string
	}{
		{"missing title", &CreateTaskBody{ProjectID: p.ID, Assignee: "a"}, ecode.ValidationError, "title is required"},
		{"blank assignee", &CreateTaskBody{Title: "t", ProjectID: p.ID, Assignee: "  "}, ecode.ValidationError, "assignee is required"},
		{"missing project id", &CreateTaskBody{Title: "t", Assignee: "a"}, ecode.ValidationError, "projectId is required"},
		{"bad status", &CreateTaskBody{Title: "t", ProjectID: p.ID, Assignee: "a", Status: "BLOCKED"}, ecode.ValidationError, structs.StatusMessage},
		{"padded status", &CreateTaskBody{Title: "t", ProjectID: p.ID, Assignee: "a", Status: " TODO "}, ecode.ValidationError, structs.StatusMessage},
		{"unknown project", &CreateTaskBody{Title: "t", ProjectID: "nope", Assignee: "a"}, ecode.ProjectNotFound, "Project not found"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Task.Create(ctx, tt.body)
			e := requireCode(t, err, tt.code)
			assert.Equal(t, tt.message, e.Message)
		})
	}
}

func TestTaskFlow(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)
	p, err := svc.Project.Create(ctx, &CreateProjectBody{Name: "p"})
	require.NoError(t, err)

	created, err := svc.Task.Create(ctx, &CreateTaskBody{Title: "Ship", ProjectID: p.ID, Assignee: "kim"})
	require.NoError(t, err)
	assert.Equal(t, structs.StatusTodo, created.Status)

	done, err := svc.Task.Create(ctx, &CreateTaskBody{Title: "Plan", ProjectID: p.ID, Assignee: "kim", Status: "DONE"})
	require.NoError(t, err)
	assert.Equal(t, structs.StatusDone, done.Status)

	list, err := svc.Task.List(ctx, &ListTaskParams{ProjectID: p.ID})
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, done.ID, list[0].ID)

	list, err = svc.Task.List(ctx, &ListTaskParams{ProjectID: p.ID, Status: "TODO"})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, created.ID, list[0].ID)

	for _, status := range []string{"todo", " TODO", "DONE\n"} {
		_, err = svc.Task.List(ctx, &ListTaskParams{Status: status})
		requireCode(t, err, ecode.ValidationError)
	}

	updated, err := svc.Task.UpdateStatus(ctx, created.ID, &UpdateTaskBody{Status: "IN_PROGRESS"})
	require.NoError(t, err)
	assert.Equal(t, structs.StatusInProgress, updated.Status)
	assert.Equal(t, created.Title, updated.Title)

	for _, status := range []string{"", "BOGUS", " DONE ", "done"} {
		_, err = svc.Task.UpdateStatus(ctx, created.ID, &UpdateTaskBody{Status: status})
		e := requireCode(t, err, ecode.ValidationError)
		assert.Equal(t, structs.StatusMessage, e.Message, "status=%q", status)
	}

	unchanged, err := svc.Task.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, structs.StatusInProgress, unchanged.Status)
	assert.True(t, updated.UpdatedAt.Equal(unchanged.UpdatedAt))

	_, err = svc.Task.UpdateStatus(ctx, "missing", &UpdateTaskBody{Status: "DONE"})
	requireCode(t, err, ecode.TaskNotFound)

	deleted, err := svc.Task.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, structs.StatusInProgress, deleted.Status)

	_, err = svc.Task.Delete(ctx, created.ID)
	requireCode(t, err, ecode.TaskNotFound)

	_, err = svc.Task.Get(ctx, created.ID)
	requireCode(t, err, ecode.TaskNotFound)

	list, err = svc.Task.List(ctx, &ListTaskParams{ProjectID: p.ID})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, done.ID, list[0].ID)
}

// recordingTasks fails the test if a lookup reaches the store.
type recordingTasks struct {
	repository.TaskRepository
	t *testing.T
}

func (r recordingTasks) GetByID(context.Context, string) (*structs.Task, error) {
	r.t.Error("GetByID should not be called")
	return nil, repository.ErrNotFound
}

func (r recordingTasks) UpdateStatus(context.Context, string, structs.Status) (*structs.Task, error) {
	r.t.Error("UpdateStatus should not be called")
	return nil, repository.ErrNotFound
}

func (r recordingTasks) Delete(context.Context, string) (*structs.Task, error) {
	r.t.Error("Delete should not be called")
	return nil, repository.ErrNotFound
}

func TestMalformedTaskIDSkipsStore(t *testing.T) {
	ctx := context.Background()
	svc := NewTaskService(recordingTasks{t: t}, nil, datatest.Logger())

	for _, id := range []string{"missing", "", "abc/def", "0123456789abcdef0"} {
		_, err := svc.Get(ctx, id)
		requireCode(t, err, ecode.TaskNotFound)

		_, err = svc.UpdateStatus(ctx, id, &UpdateTaskBody{Status: "DONE"})
		requireCode(t, err, ecode.TaskNotFound)

		_, err = svc.Delete(ctx, id)
		requireCode(t, err, ecode.TaskNotFound)
	}
}
