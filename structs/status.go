package structs

import "errors"

// Status is the lifecycle state of a task.
type Status string

const (
	StatusTodo       Status = "TODO"
	StatusInProgress Status = "IN_PROGRESS"
	StatusDone       Status = "DONE"
)

// StatusMessage is the validation message for values outside Statuses().
const StatusMessage = "status must be TODO, IN_PROGRESS or DONE"

// ErrInvalidStatus is returned by ParseStatus for unknown values.
var ErrInvalidStatus = errors.New(StatusMessage)

// Statuses returns every status in display order.
func Statuses() []Status {
	return []Status{StatusTodo, StatusInProgress, StatusDone}
}

// StatusStrings returns Statuses as plain strings, e.g. for enum columns.
func StatusStrings() []string {
	out := make([]string, 0, 3)
	for _, s := range Statuses() {
		out = append(out, string(s))
	}
	return out
}

// Valid reports whether s is one of the enumerated statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusTodo, StatusInProgress, StatusDone:
		return true
	}
	return false
}

// String implements fmt.Stringer.
func (s Status) String() string {
	return string(s)
}

// ParseStatus converts raw input into a Status. Matching is exact: "todo"
// and " DONE " are rejected like any other unknown value.
func ParseStatus(raw string) (Status, error) {
	s := Status(raw)
	if !s.Valid() {
		return "", ErrInvalidStatus
	}
	return s, nil
}
