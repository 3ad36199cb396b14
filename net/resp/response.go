package resp

import (
	"encoding/json"
	"net/http"

	"github.com/ncobase/taskboard/ecode"
)

// Exception is the body of a failed request.
type Exception struct {
	Status  int               `json:"-"`                // HTTP status
	Code    string            `json:"error"`            // Error code
	Message string            `json:"message"`          // Message
	Errors  map[string]string `json:"errors,omitempty"` // Per-field validation errors
}

// Success writes data with 200.
func Success(w http.ResponseWriter, data any) {
	WithStatusCode(w, http.StatusOK, data)
}

// WithStatusCode writes data with a custom success status.
func WithStatusCode(w http.ResponseWriter, statusCode int, data any) {
	writeJSON(w, statusCode, data)
}

// Fail writes a failure. A nil exception becomes INTERNAL_ERROR.
func Fail(w http.ResponseWriter, r *Exception) {
	if r == nil {
		r = InternalServer()
	}
	status, body := buildFailureResponse(r)
	writeJSON(w, status, body)
}

// buildFailureResponse fills in defaults from the error code.
func buildFailureResponse(r *Exception) (int, *Exception) {
	code := r.Code
	if code == "" {
		code = ecode.InternalError
	}

	status := r.Status
	if status == 0 {
		status = ecode.ToHTTPStatus(code)
	}

	message := r.Message
	if message == "" {
		message = ecode.Text(code)
	}

	return status, &Exception{
		Status:  status,
		Code:    code,
		Message: message,
		Errors:  r.Errors,
	}
}

// BadRequest is a 400 VALIDATION_ERROR.
func BadRequest(message string, fields ...map[string]string) *Exception {
	e := &Exception{
		Status:  http.StatusBadRequest,
		Code:    ecode.ValidationError,
		Message: message,
	}
	if len(fields) > 0 && len(fields[0]) > 0 {
		e.Errors = fields[0]
	}
	return e
}

// InternalServer is a 500 INTERNAL_ERROR. The message never carries the
// underlying cause.
func InternalServer() *Exception {
	return &Exception{
		Status: http.StatusInternalServerError,
		Code:   ecode.InternalError,
	}
}

// FromError converts a service error. Errors that are not *ecode.Error
// become INTERNAL_ERROR.
func FromError(err error) *Exception {
	e, ok := ecode.As(err)
	if !ok {
		return InternalServer()
	}
	return &Exception{
		Status:  ecode.ToHTTPStatus(e.Code),
		Code:    e.Code,
		Message: e.Message,
		Errors:  e.Fields,
	}
}

// writeJSON sets the content type before the status line is written.
func writeJSON(w http.ResponseWriter, code int, res any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(res); err != nil {
		http.Error(w, "Failed to encode JSON response", http.StatusInternalServerError)
	}
}
