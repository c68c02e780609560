package errors

import (
	"errors"
	"fmt"
	"os"

	"github.com/julianstephens/minihab/internal/logger"
)

// Engine error kinds. Repository operations wrap one of these sentinels so
// callers can branch with errors.Is without string matching.
var (
	// ErrNotFound indicates a lookup by id missed.
	ErrNotFound = errors.New("not found")

	// ErrRejected indicates a business-rule refusal, e.g. a second
	// completion for the same habit on the same calendar day.
	ErrRejected = errors.New("rejected")

	// ErrInvalidArgument indicates caller-supplied input that fails
	// validation, e.g. a non-positive focus duration.
	ErrInvalidArgument = errors.New("invalid argument")
)

// PersistenceError wraps a failure from the underlying store.
type PersistenceError struct {
	Op  string // the repository operation that failed
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence failure in %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// Persistence wraps err as a PersistenceError for the given operation.
// It returns nil when err is nil.
func Persistence(op string, err error) error {
	if err == nil {
		return nil
	}
	return &PersistenceError{Op: op, Err: err}
}

// IsPersistence reports whether err is (or wraps) a PersistenceError.
func IsPersistence(err error) bool {
	var pe *PersistenceError
	return errors.As(err, &pe)
}

// Format formats an error message with a consistent "Error: " prefix
func Format(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Error: %v", err)
}

// Formatf formats an error message with a consistent "Error: " prefix using a format string
func Formatf(format string, args ...interface{}) string {
	return fmt.Sprintf("Error: "+format, args...)
}

// Fatal logs an error and exits the program with exit code 1
func Fatal(err error) {
	if err != nil {
		logger.Error("Command execution failed", "error", err)
		fmt.Fprintf(os.Stderr, "%s\n", Format(err))
		os.Exit(1)
	}
}

// Fatalf logs and formats an error message, then exits the program with exit code 1
func Fatalf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	logger.Error("Command execution failed", "error", msg)
	fmt.Fprintf(os.Stderr, "%s\n", Formatf(format, args...))
	os.Exit(1)
}
