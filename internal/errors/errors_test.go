package errors

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{name: "nil error", err: nil, expected: ""},
		{name: "simple error", err: errors.New("something went wrong"), expected: "Error: something went wrong"},
		{name: "validation error", err: Validation("name", "must not be empty"), expected: "Error: invalid name: must not be empty"},
		{name: "not found error", err: NotFound("habit", "abc"), expected: `Error: habit "abc" not found`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := Format(tt.err); result != tt.expected {
				t.Errorf("Format(%v) = %q, want %q", tt.err, result, tt.expected)
			}
		})
	}
}

func TestFormatf(t *testing.T) {
	got := Formatf("habit %s failed: %d", "x", 3)
	if got != "Error: habit x failed: 3" {
		t.Errorf("Formatf() = %q", got)
	}
}

func TestKindHelpers(t *testing.T) {
	wrappedValidation := fmt.Errorf("add habit: %w", Validation("name", "empty"))
	wrappedNotFound := fmt.Errorf("toggle: %w", NotFound("habit", "id-1"))

	if !IsValidation(wrappedValidation) {
		t.Error("IsValidation() = false for wrapped ValidationError")
	}
	if IsValidation(wrappedNotFound) {
		t.Error("IsValidation() = true for NotFoundError")
	}
	if !IsNotFound(wrappedNotFound) {
		t.Error("IsNotFound() = false for wrapped NotFoundError")
	}
	if IsNotFound(errors.New("plain")) {
		t.Error("IsNotFound() = true for plain error")
	}
}

func TestDeserializationErrorUnwrap(t *testing.T) {
	var target interface{}
	jsonErr := json.Unmarshal([]byte("{not json"), &target)
	derr := &DeserializationError{Partition: "mood", Key: "2024-01-01", Err: jsonErr}

	var syntaxErr *json.SyntaxError
	if !errors.As(derr, &syntaxErr) {
		t.Error("DeserializationError should unwrap to the json error")
	}
}
