package resp

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ncobase/taskboard/ecode"
)

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestSuccessWritesPlainBody(t *testing.T) {
	w := httptest.NewRecorder()
	WithStatusCode(w, http.StatusCreated, map[string]string{"id": "abc"})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "application/json; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Equal(t, map[string]any{"id": "abc"}, decode(t, w))
}

func TestSuccessEmptySlice(t *testing.T) {
	w := httptest.NewRecorder()
	Success(w, []string{})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestFailBadRequest(t *testing.T) {
	w := httptest.NewRecorder()
	Fail(w, BadRequest("title is required", map[string]string{"title": "title is required"}))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "application/json; charset=utf-8", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"error":"VALIDATION_ERROR","message":"title is required","errors":{"title":"title is required"}}`, w.Body.String())
}

func TestFailDefaultsStatusAndMessage(t *testing.T) {
	w := httptest.NewRecorder()
	Fail(w, &Exception{Code: ecode.TaskNotFound})

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"TASK_NOT_FOUND","message":"Task not found"}`, w.Body.String())
}

func TestFailNil(t *testing.T) {
	w := httptest.NewRecorder()
	Fail(w, nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "INTERNAL_ERROR", decode(t, w)["error"])
}

func TestFromError(t *testing.T) {
	e := FromError(ecode.New(ecode.ProjectNotFound, ""))
	assert.Equal(t, http.StatusNotFound, e.Status)
	assert.Equal(t, ecode.ProjectNotFound, e.Code)

	e = FromError(ecode.Validation("bad", map[string]string{"status": "bad"}))
	assert.Equal(t, http.StatusBadRequest, e.Status)
	assert.Equal(t, "bad", e.Errors["status"])

	e = FromError(errors.New("connection refused"))
	assert.Equal(t, http.StatusInternalServerError, e.Status)
	assert.Equal(t, ecode.InternalError, e.Code)
	assert.Empty(t, e.Message)
}
