// Package resp writes JSON API responses.
//
// Success bodies are the resource itself:
//
//	resp.Success(w, project)                            // 200
//	resp.WithStatusCode(w, http.StatusCreated, task)    // 201
//
// Failures share one shape:
//
//	{"error": "VALIDATION_ERROR", "message": "title is required", "errors": {"title": "title is required"}}
//
//	resp.Fail(w, resp.BadRequest("title is required", fields))
//	resp.Fail(w, resp.FromError(err))
package resp
