package ecode

import "net/http"

// Error codes.
const (
	ValidationError = "VALIDATION_ERROR"
	TaskNotFound    = "TASK_NOT_FOUND"
	ProjectNotFound = "PROJECT_NOT_FOUND"
	InternalError   = "INTERNAL_ERROR"
)

type codeInfo struct {
	text   string
	status int
}

var codes = map[string]codeInfo{
	ValidationError: {"Invalid request", http.StatusBadRequest},
	TaskNotFound:    {"Task not found", http.StatusNotFound},
	ProjectNotFound: {"Project not found", http.StatusNotFound},
	InternalError:   {"Internal server error", http.StatusInternalServerError},
}

// Text returns the default message for code.
func Text(code string) string {
	if info, ok := codes[code]; ok {
		return info.text
	}
	return codes[InternalError].text
}

// ToHTTPStatus maps code to an HTTP status. Unknown codes are 500.
func ToHTTPStatus(code string) int {
	if info, ok := codes[code]; ok {
		return info.status
	}
	return http.StatusInternalServerError
}
