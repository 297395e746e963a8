package errors

import "fmt"

// ReadFailed creates an error for a document file that could not be read.
func ReadFailed(path string, cause error) *SkysetError {
	return &SkysetError{
		Kind:    ErrStorage,
		Message: fmt.Sprintf("failed to read %s", path),
		Cause:   cause,
		Details: map[string]string{"path": path},
		Suggestion: `Check that the file is readable:
  ls -l ` + path,
	}
}

// DecodeFailed creates an error for document content that does not match the schema.
func DecodeFailed(path string, cause error) *SkysetError {
	return &SkysetError{
		Kind:    ErrStorage,
		Message: fmt.Sprintf("failed to parse %s", path),
		Cause:   cause,
		Details: map[string]string{"path": path},
		Suggestion: `The file is not a valid skyset document; defaults are shown.
Saving will overwrite it.`,
	}
}

// EncodeFailed creates an error for a document that could not be serialized.
func EncodeFailed(cause error) *SkysetError {
	return &SkysetError{
		Kind:    ErrStorage,
		Message: "failed to encode document",
		Cause:   cause,
	}
}

// WriteFailed creates an error for a save that could not be completed.
func WriteFailed(path string, cause error) *SkysetError {
	return &SkysetError{
		Kind:    ErrStorage,
		Message: fmt.Sprintf("failed to write %s", path),
		Cause:   cause,
		Details: map[string]string{"path": path},
		Suggestion: "Check that the directory exists and is writable.",
	}
}

// ConfigParseError creates an error for editor settings that fail to load.
func ConfigParseError(path string, cause error) *SkysetError {
	return &SkysetError{
		Kind:    ErrConfig,
		Message: fmt.Sprintf("failed to parse settings: %s", path),
		Cause:   cause,
		Details: map[string]string{"path": path},
		Suggestion: `Check editor.yaml for syntax errors:
  1. Ensure proper YAML indentation (use spaces, not tabs)
  2. Durations need a unit, e.g. 30s or 2m`,
	}
}

// ConfigValidationError creates an error for an out-of-range setting.
func ConfigValidationError(field, message string) *SkysetError {
	return &SkysetError{
		Kind:       ErrConfig,
		Message:    fmt.Sprintf("invalid setting %s: %s", field, message),
		Details:    map[string]string{"field": field},
		Suggestion: fmt.Sprintf("Fix the %q setting in editor.yaml or unset SKYSET_%s", field, envName(field)),
	}
}

func envName(field string) string {
	out := make([]byte, 0, len(field))
	for i := 0; i < len(field); i++ {
		c := field[i]
		switch {
		case c == '.':
			out = append(out, '_')
		case c >= 'a' && c <= 'z':
			out = append(out, c-'a'+'A')
		default:
			out = append(out, c)
		}
	}
	return string(out)
}
