package stage

import "fmt"

// Error is a stage failure: which stage broke and what happened.
// The detail ends up verbatim in Task.Error, so it must never carry secrets.
type Error struct {
	Stage  string
	Detail string
	Cause  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Stage, e.Detail)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

func NewError(stage, detail string) *Error {
	return &Error{Stage: stage, Detail: detail}
}

func Errorf(stage, format string, args ...any) *Error {
	return &Error{Stage: stage, Detail: fmt.Sprintf(format, args...)}
}

// WrapError attaches a stage name to an underlying error, preserving the
// cause chain. Returns nil for a nil error.
func WrapError(stage string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Stage: stage, Detail: err.Error(), Cause: err}
}
