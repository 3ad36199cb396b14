// Package ecode defines the error codes returned by the API and the error
// type the service layer uses to carry them.
//
// Codes are strings and each maps to one HTTP status:
//
//	ecode.ValidationError  // 400
//	ecode.TaskNotFound     // 404
//	ecode.ProjectNotFound  // 404
//	ecode.InternalError    // 500
//
// Services return *ecode.Error; handlers turn it into a response body:
//
//	return nil, ecode.Validation("name is required", map[string]string{"name": "name is required"})
//
//	if e, ok := ecode.As(err); ok {
//	    status := ecode.ToHTTPStatus(e.Code)
//	}
package ecode
