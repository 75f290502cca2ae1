package errors

import (
	"errors"
	"fmt"
	"os"

	"github.com/julianstephens/lifeadvance/internal/logger"
)

var (
	// ErrInvalidInput is returned when a record fails structural validation,
	// e.g. an empty title on add.
	ErrInvalidInput = errors.New("invalid input")
	// ErrNotFound is returned by storage providers when a key holds no value.
	ErrNotFound = errors.New("not found")
	// ErrPersist wraps failures to write a collection back to storage.
	ErrPersist = errors.New("failed to persist")
	// ErrNotInitialized is returned by a storage Load when nothing has been created yet.
	ErrNotInitialized = errors.New("storage not initialized, run 'lifeadvance init' first")
)

// New returns an error that formats as the given text.
func New(text string) error {
	return errors.New(text)
}

// Is reports whether any error in err's tree matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// Invalidf returns an error wrapping ErrInvalidInput with a formatted detail.
func Invalidf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}

// Format formats an error message with a consistent "Error: " prefix
func Format(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Error: %v", err)
}

// Fatal logs an error and exits the program with exit code 1
func Fatal(err error) {
	if err != nil {
		logger.Error("Command execution failed", "error", err)
		fmt.Fprintf(os.Stderr, "%s\n", Format(err))
		os.Exit(1)
	}
}
