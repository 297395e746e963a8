package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestSkysetError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *SkysetError
		expected string
	}{
		{
			name:     "simple message",
			err:      New(ErrValidation, "bad input"),
			expected: "bad input",
		},
		{
			name: "with cause",
			err: &SkysetError{
				Kind:    ErrStorage,
				Message: "write failed",
				Cause:   errors.New("disk full"),
			},
			expected: "write failed: disk full",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestSkysetError_Unwrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := Wrap(cause, ErrStorage, "wrapped error")

	if unwrapped := errors.Unwrap(err); unwrapped != cause {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, cause)
	}

	// Without cause, should return Kind
	errNoWrap := New(ErrValidation, "no cause")
	if !errors.Is(errors.Unwrap(errNoWrap), ErrValidation) {
		t.Errorf("Unwrap() should return Kind when no cause")
	}
}

func TestSkysetError_Is(t *testing.T) {
	err := InvalidColor("#12")

	if !errors.Is(err, ErrValidation) {
		t.Error("errors.Is should return true for matching Kind")
	}
	if errors.Is(err, ErrStorage) {
		t.Error("errors.Is should return false for non-matching Kind")
	}
	if !IsValidation(err) || IsStorage(err) {
		t.Error("IsValidation/IsStorage disagree with Kind")
	}

	if !IsStorage(WriteFailed("/tmp/x.yml", errors.New("denied"))) {
		t.Error("WriteFailed should be a storage error")
	}
	if !IsStorage(ReadFailed("/tmp/x.yml", errors.New("denied"))) {
		t.Error("ReadFailed should be a storage error")
	}
	if !errors.Is(ConfigValidationError("poll_interval", "must be positive"), ErrConfig) {
		t.Error("ConfigValidationError should be a config error")
	}
}

func TestSkysetError_Format(t *testing.T) {
	err := DecodeFailed("/home/me/latest.yml", errors.New("yaml: line 2"))
	formatted := err.Format()

	for _, want := range []string{
		"Error: failed to parse /home/me/latest.yml: yaml: line 2",
		"Details:",
		"path: /home/me/latest.yml",
		"Suggestion:",
	} {
		if !strings.Contains(formatted, want) {
			t.Errorf("Format() missing %q:\n%s", want, formatted)
		}
	}
}

func TestSkysetError_WithDetails(t *testing.T) {
	err := New(ErrValidation, "bad").WithDetails("field", "accent").WithCause(errors.New("cause"))

	if err.Details["field"] != "accent" {
		t.Errorf("Details[field] = %q, want %q", err.Details["field"], "accent")
	}
	if err.Cause == nil || err.Cause.Error() != "cause" {
		t.Errorf("Cause = %v, want cause", err.Cause)
	}
}

func TestConfigValidationErrorSuggestsEnvVar(t *testing.T) {
	err := ConfigValidationError("log.level", "unknown level")
	if !strings.Contains(err.Suggestion, "SKYSET_LOG_LEVEL") {
		t.Errorf("Suggestion = %q, want env var SKYSET_LOG_LEVEL", err.Suggestion)
	}
}
