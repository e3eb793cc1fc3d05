// Package errors provides sentinel errors and exit-code mapping for the licensor CLI.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for known conditions.
var (
	// ErrValidation indicates a bad flag, argument, or config value.
	ErrValidation = errors.New("validation error")

	// ErrUnavailable indicates the registry listing endpoint could not be reached
	// or returned a non-success status.
	ErrUnavailable = errors.New("registry unavailable")

	// ErrRetrieval indicates a per-key license fetch failed.
	ErrRetrieval = errors.New("retrieval error")

	// ErrWrite indicates the destination path could not be written.
	ErrWrite = errors.New("write error")
)

// Exit codes reported by the CLI.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError = 1

	// ExitValidationError indicates invalid flags, arguments, or config.
	ExitValidationError = 2

	// ExitUnavailable indicates the registry listing endpoint was unreachable.
	ExitUnavailable = 3

	// ExitRetrievalError indicates a per-key license fetch failed.
	ExitRetrievalError = 4

	// ExitWriteError indicates the destination file could not be written.
	ExitWriteError = 5
)

// ExitCodeName returns the name of the exit code.
func ExitCodeName(code int) string {
	switch code {
	case ExitSuccess:
		return "Success"
	case ExitGeneralError:
		return "General Error"
	case ExitValidationError:
		return "Validation Error"
	case ExitUnavailable:
		return "Registry Unavailable"
	case ExitRetrievalError:
		return "Retrieval Error"
	case ExitWriteError:
		return "Write Error"
	default:
		return "Unknown"
	}
}

// ExitError wraps an error with an exit code.
type ExitError struct {
	Err  error
	Code int

	// Printed records whether the command layer already printed the error,
	// so main does not print it twice.
	Printed bool
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	return e.Err.Error()
}

// Unwrap returns the wrapped error.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates a new ExitError with the given error and exit code.
func NewExitError(err error, code int) *ExitError {
	return &ExitError{Err: err, Code: code}
}

// ExitCodeFromError determines the appropriate exit code for an error.
func ExitCodeFromError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	switch {
	case errors.Is(err, ErrValidation):
		return ExitValidationError
	case errors.Is(err, ErrUnavailable):
		return ExitUnavailable
	case errors.Is(err, ErrRetrieval):
		return ExitRetrievalError
	case errors.Is(err, ErrWrite):
		return ExitWriteError
	default:
		return ExitGeneralError
	}
}

// DetailError captures structured error information for terminal output.
type DetailError struct {
	// Type is the error category (required).
	Type string

	// Message is the specific description (required).
	Message string

	// Location is a file path or URL (optional).
	Location string

	// Context contains additional key-value context (optional).
	Context map[string]string

	// Hint provides actionable guidance (optional).
	Hint string

	// Cause is the underlying error (optional).
	Cause error
}

// Error implements the error interface.
func (e *DetailError) Error() string {
	var b strings.Builder

	b.WriteString("Error: ")
	b.WriteString(e.Type)
	b.WriteString("\n")

	if e.Location != "" {
		b.WriteString("  Location: ")
		b.WriteString(e.Location)
		b.WriteString("\n")
	}
	for k, v := range e.Context {
		b.WriteString("  ")
		b.WriteString(k)
		b.WriteString(": ")
		b.WriteString(v)
		b.WriteString("\n")
	}

	b.WriteString("\n  ")
	b.WriteString(e.Message)
	b.WriteString("\n")

	if e.Hint != "" {
		b.WriteString("\nHint: ")
		b.WriteString(e.Hint)
		b.WriteString("\n")
	}

	return b.String()
}

// Unwrap returns the underlying error.
func (e *DetailError) Unwrap() error {
	return e.Cause
}

// Wrap wraps an error with a sentinel error type.
func Wrap(sentinel error, message string) error {
	return fmt.Errorf("%s: %w", message, sentinel)
}

// Wrapf wraps an underlying error with a sentinel and a message.
func Wrapf(sentinel error, err error, msg string) error {
	return fmt.Errorf("%s: %w: %w", msg, sentinel, err)
}
