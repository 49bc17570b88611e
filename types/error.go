package types

import (
	"fmt"
	"strings"
)

// Error is an access failure carrying its code, message arguments and the
// call site it was raised from
type Error struct {
	Code ErrorCode
	Args []any
	Call string
}

// NewError creates a new access error
func NewError(code ErrorCode, args ...any) *Error {
	return &Error{Code: code, Args: args}
}

// Error formats the message the way the host prints it
func (e *Error) Error() string {
	msg := e.Code.Message()
	if strings.Contains(msg, "%") {
		msg = fmt.Sprintf(msg, e.Args...)
	}
	if e.Call != "" {
		return "Error in " + e.Call + " : " + msg
	}
	return msg
}

// Is matches another *Error with the same code
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

// IsWarning returns true for recoverable conditions
func (e *Error) IsWarning() bool {
	return e.Code == E_NOT_MULTIPLE_REPLACEMENT
}

// WithCall returns a copy of the error attributed to the given call site.
// An error that already names a call site is returned unchanged.
func (e *Error) WithCall(call string) *Error {
	if e.Call != "" || call == "" {
		return e
	}
	c := *e
	c.Call = call
	return &c
}
