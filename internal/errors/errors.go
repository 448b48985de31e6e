package errors

import (
	stderrors "errors"
	"fmt"
	"os"

	"github.com/julianstephens/daywell/internal/logger"
)

// ValidationError reports rejected user input. No state was changed.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// NotFoundError reports an operation on a record that no longer exists.
type NotFoundError struct {
	Kind string
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.ID)
}

// DeserializationError wraps a malformed stored record. Callers recover by
// treating the record as empty and logging this error.
type DeserializationError struct {
	Partition string
	Key       string
	Err       error
}

func (e *DeserializationError) Error() string {
	return fmt.Sprintf("malformed record %s/%s: %v", e.Partition, e.Key, e.Err)
}

func (e *DeserializationError) Unwrap() error {
	return e.Err
}

// Validation builds a ValidationError.
func Validation(field, format string, args ...interface{}) error {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// NotFound builds a NotFoundError.
func NotFound(kind, id string) error {
	return &NotFoundError{Kind: kind, ID: id}
}

// IsValidation reports whether err is or wraps a ValidationError.
func IsValidation(err error) bool {
	var target *ValidationError
	return stderrors.As(err, &target)
}

// IsNotFound reports whether err is or wraps a NotFoundError.
func IsNotFound(err error) bool {
	var target *NotFoundError
	return stderrors.As(err, &target)
}

// Recovered logs a DeserializationError; the caller continues with defaults.
func Recovered(partition, key string, err error) {
	derr := &DeserializationError{Partition: partition, Key: key, Err: err}
	logger.Warn("Recovered from malformed record", "partition", partition, "key", key, "error", derr)
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
