package parser

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	stderrors "errors" // Standard errors package

	"gopkg.in/yaml.v3"

	"github.com/mcncl/tsgen/internal/errors" // Custom errors package
	"github.com/mcncl/tsgen/internal/models"
)

// ParseDocument decodes a module document from YAML or JSON. Unknown keys
// are rejected and only a single document is accepted.
func ParseDocument(reader io.Reader) (models.Document, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return models.Document{}, errors.NewInputError("failed to read input", err)
	}
	return parseDocumentBytes(data)
}

func parseDocumentBytes(data []byte) (models.Document, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return models.Document{}, errors.NewParsingError("input is empty or contains only whitespace", errors.ErrEmptyInput)
	}

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	var doc models.Document
	if err := decoder.Decode(&doc); err != nil {
		if stderrors.Is(err, io.EOF) {
			// Comments only
			return models.Document{}, errors.NewParsingError("input contains no document", errors.ErrEmptyInput)
		}
		var typeError *yaml.TypeError
		if stderrors.As(err, &typeError) {
			return models.Document{}, errors.NewParsingError(
				fmt.Sprintf("document structure error: %s", strings.Join(typeError.Errors, "; ")),
				errors.ErrInvalidDocument,
			)
		}
		return models.Document{}, errors.NewParsingError(
			fmt.Sprintf("syntax error: %s", strings.TrimPrefix(err.Error(), "yaml: ")),
			errors.ErrInvalidDocument,
		)
	}

	// A second document in the same stream is ambiguous.
	var trailing yaml.Node
	if err := decoder.Decode(&trailing); err == nil {
		return models.Document{}, errors.NewParsingError("multiple documents found in input", errors.ErrInvalidDocument)
	} else if !stderrors.Is(err, io.EOF) {
		return models.Document{}, errors.NewParsingError("invalid trailing data after first document", err)
	}

	return doc, nil
}

// ParseDocumentString parses a module document from a string
func ParseDocumentString(document string) (models.Document, error) {
	if strings.TrimSpace(document) == "" {
		return models.Document{}, errors.NewInputError("input string is empty", errors.ErrEmptyInput)
	}
	return parseDocumentBytes([]byte(document))
}

// ParseDocumentFile parses a module document from a file path
func ParseDocumentFile(filePath string) (models.Document, error) {
	data, err := readFile(filePath)
	if err != nil {
		return models.Document{}, err
	}
	return parseDocumentBytes(data)
}

// readFile reads a whole input file, mapping missing and empty files to
// input errors.
func readFile(filePath string) ([]byte, error) {
	if strings.TrimSpace(filePath) == "" {
		return nil, errors.NewInputError("file path is empty", errors.ErrInvalidFilePath)
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewInputError(
				fmt.Sprintf("file '%s' not found", filePath),
				errors.ErrFileNotFound,
			)
		}
		return nil, errors.NewInputError(
			fmt.Sprintf("failed to read file '%s'", filePath),
			err,
		)
	}

	if len(data) == 0 {
		return nil, errors.NewInputError(
			fmt.Sprintf("input file '%s' is empty", filePath),
			errors.ErrFileEmpty,
		)
	}

	return data, nil
}
