package apperr

import (
	"fmt"
)

// Error codes
const (
	CodeConfigInvalid = 1001
	CodeLoggerFailed  = 1002
	CodeQueueCreate   = 2001
	CodeQueueFull     = 2002
	CodeQueueEmpty    = 2003
	CodeQueueInternal = 2099
)

// Generic Action Messages
const (
	MsgCreateFailed  = "failed to create"
	MsgLoadFailed    = "failed to load"
	MsgEnqueueFailed = "failed to enqueue"
	MsgDequeueFailed = "failed to dequeue"
	MsgReleaseFailed = "failed to release"
)

// MapError wraps an error with a standardized message
func MapError(component string, err error, code int, msg string, exitCode int) *AppError {
	if err == nil {
		return nil
	}

	formattedMsg := fmt.Sprintf("%s %s", component, msg)
	return Wrap(err, code, formattedMsg, exitCode)
}

// NewError creates a new AppError with standardized message format
func NewError(component string, code int, msg string, exitCode int, cause error) *AppError {
	formattedMsg := fmt.Sprintf("%s %s", component, msg)
	return New(code, formattedMsg, exitCode, cause)
}
