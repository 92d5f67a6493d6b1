package domain

import (
	"errors"
)

// Failure kinds of a space check. Every one of them ends the run with exit code 1.
var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrLaunch            = errors.New("info command could not be started")
	ErrCommandFailed     = errors.New("info command exited with failure")
	ErrTimeout           = errors.New("info command timed out")
	ErrDecode            = errors.New("info output could not be decoded")
	ErrSpaceQuery        = errors.New("available space could not be determined")
	ErrInsufficientSpace = errors.New("insufficient space")
)

// Exit codes reported to the shell.
const (
	ExitOK      = 0
	ExitFailure = 1
)

// CheckError carries the one-line message shown to the operator
// together with the failure kind and the underlying cause.
type CheckError struct {
	Kind    error
	Message string
	Err     error
}

// Error returns the error message
func (e *CheckError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Kind.Error() + ": " + e.Err.Error()
	}
	return e.Kind.Error()
}

// Unwrap exposes both the kind and the cause to errors.Is and errors.As.
func (e *CheckError) Unwrap() []error {
	errs := make([]error, 0, 2)
	if e.Kind != nil {
		errs = append(errs, e.Kind)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

// NewCheckError creates a new CheckError
func NewCheckError(kind error, message string, cause error) *CheckError {
	return &CheckError{Kind: kind, Message: message, Err: cause}
}

// ExitCode maps the outcome of a run to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	return ExitFailure
}

// IsReported returns true when the error was already written to the
// operator as a normal check outcome rather than as a diagnostic.
func IsReported(err error) bool {
	return errors.Is(err, ErrInsufficientSpace)
}
