package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		appError *AppError
		expected string
	}{
		{
			name: "error with wrapped error",
			appError: &AppError{
				Type:    ErrorTypeInput,
				Message: "failed to read input",
				Err:     errors.New("file not found"),
			},
			expected: "input: failed to read input: file not found",
		},
		{
			name: "error without wrapped error",
			appError: &AppError{
				Type:    ErrorTypeParsing,
				Message: "invalid JSON syntax",
				Err:     nil,
			},
			expected: "parsing: invalid JSON syntax",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.appError.Error()
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	wrappedErr := errors.New("wrapped error")
	appErr := &AppError{
		Type:    ErrorTypeInput,
		Message: "test message",
		Err:     wrappedErr,
	}

	result := appErr.Unwrap()
	assert.Equal(t, wrappedErr, result)
}

func TestAppError_Is(t *testing.T) {
	tests := []struct {
		name     string
		appError *AppError
		target   error
		expected bool
	}{
		{
			name: "same type",
			appError: &AppError{
				Type:    ErrorTypeInput,
				Message: "test message",
				Err:     nil,
			},
			target: &AppError{
				Type:    ErrorTypeInput,
				Message: "different message",
				Err:     errors.New("some error"),
			},
			expected: true,
		},
		{
			name: "different type",
			appError: &AppError{
				Type:    ErrorTypeInput,
				Message: "test message",
				Err:     nil,
			},
			target: &AppError{
				Type:    ErrorTypeParsing,
				Message: "test message",
				Err:     nil,
			},
			expected: false,
		},
		{
			name: "not an AppError",
			appError: &AppError{
				Type:    ErrorTypeInput,
				Message: "test message",
				Err:     nil,
			},
			target:   errors.New("standard error"),
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.appError.Is(tt.target)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestConstructors_SetStage(t *testing.T) {
	cause := errors.New("boom")
	tests := []struct {
		err      *AppError
		expected ErrorType
	}{
		{NewInputError("m", cause), ErrorTypeInput},
		{NewParsingError("m", cause), ErrorTypeParsing},
		{NewAnalysisError("m", cause), ErrorTypeAnalysis},
		{NewGenerateError("m", cause), ErrorTypeGenerate},
		{NewFormatError("m", cause), ErrorTypeFormat},
		{NewOutputError("m", cause), ErrorTypeOutput},
	}

	for _, tt := range tests {
		t.Run(string(tt.expected), func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Type)
			assert.ErrorIs(t, tt.err, cause)
		})
	}
}

func TestAppError_WrapsSentinel(t *testing.T) {
	err := NewAnalysisError("declaration 2", ErrMissingName)
	assert.ErrorIs(t, err, ErrMissingName)
	assert.ErrorIs(t, err, &AppError{Type: ErrorTypeAnalysis})
	assert.NotErrorIs(t, err, &AppError{Type: ErrorTypeParsing})
}

func TestUserFriendlyError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "input error",
			err:      NewInputError("failed to read file", nil),
			expected: "Input error: failed to read file",
		},
		{
			name:     "parsing error",
			err:      NewParsingError("mapping values are not allowed here", nil),
			expected: "Document parsing error: mapping values are not allowed here",
		},
		{
			name:     "analysis error",
			err:      NewAnalysisError("declaration 3 (enum)", ErrMissingName),
			expected: "Declaration error: declaration 3 (enum)",
		},
		{
			name:     "generate error",
			err:      NewGenerateError("failed to render module", nil),
			expected: "Code generation error: failed to render module",
		},
		{
			name:     "format error",
			err:      NewFormatError("failed to format code", nil),
			expected: "Code formatting error: failed to format code",
		},
		{
			name:     "output error",
			err:      NewOutputError("failed to write output", nil),
			expected: "Output error: failed to write output",
		},
		{
			name:     "unknown stage",
			err:      &AppError{Type: ErrorTypeUnknown, Message: "odd"},
			expected: "Error: odd",
		},
		{
			name:     "standard error - empty input",
			err:      ErrEmptyInput,
			expected: "Error: The input is empty. Please provide a module document.",
		},
		{
			name:     "standard error - invalid document",
			err:      ErrInvalidDocument,
			expected: "Error: The input is not a valid module document. Please check the YAML or JSON syntax.",
		},
		{
			name:     "wrapped sentinel",
			err:      fmt.Errorf("reading: %w", ErrNoInput),
			expected: "Error: No input provided. Please specify a file with -i or pipe a document to stdin.",
		},
		{
			name:     "unknown error",
			err:      errors.New("some unknown error"),
			expected: "Error: some unknown error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := UserFriendlyError(tt.err)
			assert.Equal(t, tt.expected, result)
		})
	}
}
