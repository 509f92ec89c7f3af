package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mcncl/tsgen/internal/models"
)

func strPtr(s string) *string { return &s }

func TestGenBlock(t *testing.T) {
	tests := []struct {
		name       string
		statements []string
		indent     string
		expected   string
	}{
		{"empty", nil, "", "{}"},
		{"single", []string{"return x;"}, "", "{\n  return x;\n}"},
		{"indented", []string{"return x;"}, "  ", "{\n    return x;\n  }"},
		{"multiline statement", []string{"if (a) {\n  b();\n}"}, "", "{\n  if (a) {\n    b();\n  }\n}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, GenBlock(tt.statements, tt.indent))
		})
	}
}

func TestGenParam(t *testing.T) {
	tests := []struct {
		param    models.TypeField
		expected string
	}{
		{models.TypeField{Name: "x"}, "x"},
		{models.TypeField{Name: "x", Type: "number"}, "x: number"},
		{models.TypeField{Name: "x", Optional: true, Type: "number"}, "x?: number"},
		{models.TypeField{Name: "x", Type: "number", Default: strPtr("1")}, "x: number = 1"},
		{models.TypeField{Name: "opts", Default: strPtr("{}")}, "opts = {}"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, GenParam(tt.param))
		})
	}

	assert.Equal(t, "()", GenParams(nil))
	assert.Equal(t, "(a: string, b?: number)", GenParams([]models.TypeField{
		{Name: "a", Type: "string"},
		{Name: "b", Type: "number", Optional: true},
	}))
}

func TestGenGenerics(t *testing.T) {
	assert.Equal(t, "", GenGenerics(nil))
	assert.Equal(t, "<T>", GenGenerics([]models.TypeGeneric{{Name: "T"}}))
	assert.Equal(t, "<T extends object = {}, U>", GenGenerics([]models.TypeGeneric{
		{Name: "T", Extends: "object", Default: "{}"},
		{Name: "U"},
	}))
}

func TestGenFunction(t *testing.T) {
	tests := []struct {
		name     string
		opts     FunctionOptions
		expected string
	}{
		{
			name:     "empty",
			opts:     FunctionOptions{Name: "foo"},
			expected: "function foo() {}",
		},
		{
			name: "params and body",
			opts: FunctionOptions{
				Name:       "add",
				Parameters: []models.TypeField{{Name: "a", Type: "number"}, {Name: "b", Type: "number"}},
				Body:       []string{"return a + b;"},
				ReturnType: "number",
				Export:     true,
			},
			expected: "export function add(a: number, b: number): number {\n  return a + b;\n}",
		},
		{
			name: "async generic",
			opts: FunctionOptions{
				Name:       "load",
				Generics:   []models.TypeGeneric{{Name: "T"}},
				Parameters: []models.TypeField{{Name: "url", Type: "string"}},
				Async:      true,
				ReturnType: "Promise<T>",
				Body:       []string{"const res = await fetch(url);", "return res.json();"},
			},
			expected: "async function load<T>(url: string): Promise<T> {\n  const res = await fetch(url);\n  return res.json();\n}",
		},
		{
			name: "generator",
			opts: FunctionOptions{
				Name:      "ids",
				Generator: true,
				Body:      []string{"yield 1;"},
			},
			expected: "function* ids() {\n  yield 1;\n}",
		},
		{
			name: "jsdoc",
			opts: FunctionOptions{
				Name:  "noop",
				JSDoc: models.NewJSDoc("Does nothing"),
			},
			expected: "/** Does nothing */\nfunction noop() {}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, GenFunction(tt.opts, ""))
		})
	}
}

func TestGenArrowFunction(t *testing.T) {
	x := []models.TypeField{{Name: "x", Type: "number"}}

	assert.Equal(t, "() => {}", GenArrowFunction(ArrowFunctionOptions{}))
	assert.Equal(t, "(x: number) => x * 2", GenArrowFunction(ArrowFunctionOptions{Parameters: x, Expression: "x * 2"}))
	assert.Equal(t, "(x: number): number => {\n  return x;\n}", GenArrowFunction(ArrowFunctionOptions{
		Parameters: x,
		Body:       []string{"return x;"},
		ReturnType: "number",
	}))
	assert.Equal(t, "async <T>() => fetchIt<T>()", GenArrowFunction(ArrowFunctionOptions{
		Async:      true,
		Generics:   []models.TypeGeneric{{Name: "T"}},
		Expression: "fetchIt<T>()",
	}))
}
