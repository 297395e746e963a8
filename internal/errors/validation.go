package errors

import "fmt"

// InvalidColor creates an error for input that is not a 6-digit hex color.
func InvalidColor(input string) *SkysetError {
	return &SkysetError{
		Kind:       ErrValidation,
		Message:    fmt.Sprintf("invalid hex color %q", input),
		Details:    map[string]string{"input": input},
		Suggestion: "Use six hex digits with an optional leading '#', e.g. #7C4DFF",
	}
}

// InvalidThemeMode creates an error for an unrecognized theme mode.
func InvalidThemeMode(input string) *SkysetError {
	return &SkysetError{
		Kind:       ErrValidation,
		Message:    "theme mode must be dark, light, or system",
		Details:    map[string]string{"input": input},
		Suggestion: "Valid options: dark, light, system",
	}
}
