// Package errors provides the error taxonomy for skyset. Every error carries
// a kind that callers match with errors.Is, plus optional context that the
// TUI and CLI can show to the operator.
package errors

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Sentinel kinds for use with errors.Is().
var (
	// ErrValidation indicates rejected field input (malformed color, unknown enum value).
	ErrValidation = errors.New("validation error")
	// ErrStorage indicates a failure reading, decoding, encoding or writing the document file.
	ErrStorage = errors.New("storage error")
	// ErrConfig indicates invalid editor settings.
	ErrConfig = errors.New("configuration error")
)

// SkysetError is the base error type for skyset errors.
// It wraps an underlying error and provides additional context.
type SkysetError struct {
	// Kind is the category of error (ErrValidation, ErrStorage, ErrConfig).
	Kind error
	// Message is the human-readable error message.
	Message string
	// Suggestion provides actionable advice for resolving the error.
	Suggestion string
	// Cause is the underlying error that caused this error.
	Cause error
	// Details provides additional context (e.g., file path, rejected input).
	Details map[string]string
}

// Error implements the error interface.
func (e *SkysetError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying cause for use with errors.Is/errors.As.
func (e *SkysetError) Unwrap() error {
	if e.Cause != nil {
		return e.Cause
	}
	return e.Kind
}

// Is reports whether the error's kind matches the target.
func (e *SkysetError) Is(target error) bool {
	return errors.Is(e.Kind, target)
}

// Format returns a multi-line message with details and suggestion.
func (e *SkysetError) Format() string {
	var sb strings.Builder

	sb.WriteString("Error: ")
	sb.WriteString(e.Error())
	sb.WriteString("\n")

	if len(e.Details) > 0 {
		keys := make([]string, 0, len(e.Details))
		for k := range e.Details {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		sb.WriteString("\nDetails:\n")
		for _, k := range keys {
			sb.WriteString(fmt.Sprintf("  %s: %s\n", k, e.Details[k]))
		}
	}

	if e.Suggestion != "" {
		sb.WriteString("\nSuggestion: ")
		sb.WriteString(e.Suggestion)
		sb.WriteString("\n")
	}

	return sb.String()
}

// WithDetails adds details to the error.
func (e *SkysetError) WithDetails(key, value string) *SkysetError {
	if e.Details == nil {
		e.Details = make(map[string]string)
	}
	e.Details[key] = value
	return e
}

// WithCause sets the underlying cause of the error.
func (e *SkysetError) WithCause(cause error) *SkysetError {
	e.Cause = cause
	return e
}

// New creates a new SkysetError with the given kind and message.
func New(kind error, message string) *SkysetError {
	return &SkysetError{
		Kind:    kind,
		Message: message,
	}
}

// Wrap wraps an existing error with additional context.
func Wrap(err error, kind error, message string) *SkysetError {
	return &SkysetError{
		Kind:    kind,
		Message: message,
		Cause:   err,
	}
}

// IsValidation reports whether err is a validation error.
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}

// IsStorage reports whether err is a storage error.
func IsStorage(err error) bool {
	return errors.Is(err, ErrStorage)
}
