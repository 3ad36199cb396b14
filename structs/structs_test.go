package structs

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatus(t *testing.T) {
	for _, s := range Statuses() {
		got, err := ParseStatus(string(s))
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}

	for _, raw := range []string{"", "todo", "BOGUS", "Done", " DONE ", "\tIN_PROGRESS\n", "TODO "} {
		_, err := ParseStatus(raw)
		assert.ErrorIs(t, err, ErrInvalidStatus, "raw=%q", raw)
	}
}

func TestStatusStringsOrder(t *testing.T) {
	assert.Equal(t, []string{"TODO", "IN_PROGRESS", "DONE"}, StatusStrings())
}

func TestNewTaskFilter(t *testing.T) {
	f := NewTaskFilter()
	assert.Nil(t, f.ProjectID)
	assert.Nil(t, f.Status)

	f = NewTaskFilter(WithProject("p1"), WithStatus(StatusDone))
	require.NotNil(t, f.ProjectID)
	require.NotNil(t, f.Status)
	assert.Equal(t, "p1", *f.ProjectID)
	assert.Equal(t, StatusDone, *f.Status)
}

func TestTaskJSONShape(t *testing.T) {
	ts := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	b, err := json.Marshal(&Task{
		ID: "t1", Title: "Fix bug", Status: StatusTodo, ProjectID: "p1",
		Assignee: "alice", CreatedAt: ts, UpdatedAt: ts,
	})
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(b, &m))
	assert.Equal(t, "p1", m["projectId"])
	assert.Nil(t, m["description"])
	assert.Contains(t, m, "description")
	assert.Equal(t, "2024-05-01T10:00:00Z", m["createdAt"])
}
