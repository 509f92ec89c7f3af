package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the document pipeline
var (
	ErrEmptyInput      = errors.New("input is empty or contains only whitespace")
	ErrInvalidDocument = errors.New("invalid module document")
	ErrUnknownKind     = errors.New("unknown declaration kind")
	ErrMissingName     = errors.New("declaration requires a name")
	ErrFileNotFound    = errors.New("file not found")
	ErrFileEmpty       = errors.New("file is empty")
	ErrNoInput         = errors.New("no input provided: please specify a file with -i or pipe a document to stdin")
	ErrInvalidFilePath = errors.New("invalid file path")
	ErrUnresolvedRef   = errors.New("unresolved schema reference")
)

// ErrorType categorizes errors by pipeline stage
type ErrorType string

const (
	ErrorTypeInput    ErrorType = "input"
	ErrorTypeParsing  ErrorType = "parsing"
	ErrorTypeAnalysis ErrorType = "analysis"
	ErrorTypeGenerate ErrorType = "generate"
	ErrorTypeFormat   ErrorType = "format"
	ErrorTypeOutput   ErrorType = "output"
	ErrorTypeUnknown  ErrorType = "unknown"
)

// AppError is a pipeline error tagged with the stage that produced it
type AppError struct {
	Type    ErrorType
	Message string
	Err     error
}

// Error implements error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns wrapped error
func (e *AppError) Unwrap() error {
	return e.Err
}

// Is matches another *AppError of the same stage
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Type == t.Type
}

func newError(t ErrorType, message string, err error) *AppError {
	return &AppError{Type: t, Message: message, Err: err}
}

// NewInputError creates an error raised while reading input
func NewInputError(message string, err error) *AppError {
	return newError(ErrorTypeInput, message, err)
}

// NewParsingError creates an error raised while decoding a document
func NewParsingError(message string, err error) *AppError {
	return newError(ErrorTypeParsing, message, err)
}

// NewAnalysisError creates an error raised while resolving declarations
func NewAnalysisError(message string, err error) *AppError {
	return newError(ErrorTypeAnalysis, message, err)
}

// NewGenerateError creates an error raised while rendering a module
func NewGenerateError(message string, err error) *AppError {
	return newError(ErrorTypeGenerate, message, err)
}

// NewFormatError creates an error raised while post-processing output
func NewFormatError(message string, err error) *AppError {
	return newError(ErrorTypeFormat, message, err)
}

// NewOutputError creates an error raised while writing output
func NewOutputError(message string, err error) *AppError {
	return newError(ErrorTypeOutput, message, err)
}

var stageLabels = map[ErrorType]string{
	ErrorTypeInput:    "Input error",
	ErrorTypeParsing:  "Document parsing error",
	ErrorTypeAnalysis: "Declaration error",
	ErrorTypeGenerate: "Code generation error",
	ErrorTypeFormat:   "Code formatting error",
	ErrorTypeOutput:   "Output error",
}

var sentinelMessages = []struct {
	err     error
	message string
}{
	{ErrEmptyInput, "Error: The input is empty. Please provide a module document."},
	{ErrInvalidDocument, "Error: The input is not a valid module document. Please check the YAML or JSON syntax."},
	{ErrUnknownKind, "Error: A declaration has an unknown kind."},
	{ErrMissingName, "Error: A declaration is missing its name."},
	{ErrFileNotFound, "Error: The specified file could not be found. Please check the file path."},
	{ErrFileEmpty, "Error: The specified file is empty. Please provide a file with a module document."},
	{ErrNoInput, "Error: No input provided. Please specify a file with -i or pipe a document to stdin."},
	{ErrInvalidFilePath, "Error: Invalid file path. Please provide a valid file path."},
	{ErrUnresolvedRef, "Error: A schema $ref could not be resolved."},
}

// UserFriendlyError returns a message suitable for printing to a terminal
func UserFriendlyError(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		if label, ok := stageLabels[appErr.Type]; ok {
			return fmt.Sprintf("%s: %s", label, appErr.Message)
		}
		return fmt.Sprintf("Error: %s", appErr.Message)
	}

	for _, s := range sentinelMessages {
		if errors.Is(err, s.err) {
			return s.message
		}
	}

	return fmt.Sprintf("Error: %v", err)
}
