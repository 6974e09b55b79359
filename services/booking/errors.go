package booking

import (
	"errors"
	"fmt"
)

// Signal codes for rejected edits.
const (
	CodeDuplicate  = "duplicate"
	CodeOutOfStock = "outOfStock"
	CodeForbidden  = "forbidden"
	CodeNotFound   = "notFound"
	CodeBadIndex   = "badIndex"
	CodeBadValue   = "badValue"
)

// MutationError reports a rejected edit. The booking is always returned
// unchanged alongside one of these; rejections are signals, not faults.
type MutationError struct {
	Code    string
	Message string
}

func (e *MutationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewMutationError(code, msg string) error {
	return &MutationError{Code: code, Message: msg}
}

// IsSignal reports whether err is a MutationError carrying the given code.
func IsSignal(err error, code string) bool {
	var me *MutationError
	return errors.As(err, &me) && me.Code == code
}

// TransitionError reports an assignment transition the state machine does
// not define.
type TransitionError struct {
	Action string
	From   AssignmentState
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("no %q transition from state %q", e.Action, e.From)
}
