package structs

// TaskFilter selects tasks for listing. Nil fields impose no constraint;
// each set field narrows the result.
type TaskFilter struct {
	ProjectID *string
	Status    *Status
}

// TaskFilterOption configures a TaskFilter.
type TaskFilterOption func(*TaskFilter)

// WithProject restricts the filter to tasks of one project.
func WithProject(id string) TaskFilterOption {
	return func(f *TaskFilter) {
		f.ProjectID = &id
	}
}

// WithStatus restricts the filter to tasks in one status.
func WithStatus(s Status) TaskFilterOption {
	return func(f *TaskFilter) {
		f.Status = &s
	}
}

// NewTaskFilter builds a filter from options.
func NewTaskFilter(opts ...TaskFilterOption) *TaskFilter {
	f := &TaskFilter{}
	for _, opt := range opts {
		opt(f)
	}
	return f
}
