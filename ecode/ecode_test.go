package ecode

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToHTTPStatus(t *testing.T) {
	tests := []struct {
		code string
		want int
	}{
		{ValidationError, http.StatusBadRequest},
		{TaskNotFound, http.StatusNotFound},
		{ProjectNotFound, http.StatusNotFound},
		{InternalError, http.StatusInternalServerError},
		{"UNKNOWN", http.StatusInternalServerError},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ToHTTPStatus(tt.code), tt.code)
	}
}

func TestNewDefaultsMessage(t *testing.T) {
	assert.Equal(t, "Task not found", New(TaskNotFound, "").Message)
	assert.Equal(t, "gone", New(TaskNotFound, "gone").Message)
}

func TestInternalKeepsCause(t *testing.T) {
	cause := errors.New("db down")
	e := Internal(cause)

	assert.Equal(t, InternalError, e.Code)
	assert.Equal(t, "Internal server error", e.Message)
	assert.ErrorIs(t, e, cause)
	assert.Contains(t, e.Error(), "db down")
}

func TestAs(t *testing.T) {
	wrapped := fmt.Errorf("handler: %w", Validation("title is required", map[string]string{"title": "title is required"}))

	e, ok := As(wrapped)
	assert.True(t, ok)
	assert.Equal(t, ValidationError, e.Code)
	assert.Equal(t, "title is required", e.Fields["title"])

	_, ok = As(errors.New("plain"))
	assert.False(t, ok)
}

func TestFieldMessages(t *testing.T) {
	assert.Equal(t, "name is required", FieldIsRequired("name"))
	assert.Equal(t, "is required", FieldIsRequired())
	assert.Equal(t, "status is invalid", FieldIsInvalid("status"))
}
