package apperr

import (
	"fmt"
)

// Exit codes returned by the command line tools.
const (
	ExitOK      = 0
	ExitFailure = 1
)

// AppError is an error carrying a stable code and the process exit code it maps to.
type AppError struct {
	Code     int
	Message  string
	ExitCode int
	Cause    error
}

// New creates an AppError.
func New(code int, msg string, exitCode int, cause error) *AppError {
	return &AppError{Code: code, Message: msg, ExitCode: exitCode, Cause: cause}
}

// Wrap wraps err into an AppError. A nil err yields nil.
func Wrap(err error, code int, msg string, exitCode int) *AppError {
	if err == nil {
		return nil
	}
	return New(code, msg, exitCode, err)
}

func (e *AppError) Error() string {
	if e.Cause == nil {
		return fmt.Sprintf("[%d] %s", e.Code, e.Message)
	}
	return fmt.Sprintf("[%d] %s: %v", e.Code, e.Message, e.Cause)
}

func (e *AppError) Unwrap() error { return e.Cause }
