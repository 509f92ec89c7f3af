package syntax

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mcncl/tsgen/internal/models"
)

func TestWrapInDelimiters(t *testing.T) {
	tests := []struct {
		name       string
		lines      []string
		indent     string
		delimiters string
		withComma  bool
		expected   string
	}{
		{
			name:       "empty object",
			lines:      nil,
			delimiters: "{}",
			withComma:  true,
			expected:   "{}",
		},
		{
			name:       "empty array",
			lines:      []string{},
			delimiters: "[]",
			withComma:  true,
			expected:   "[]",
		},
		{
			name:       "with commas",
			lines:      []string{"  a: 1", "  b: 2"},
			delimiters: "{}",
			withComma:  true,
			expected:   "{\n  a: 1,\n  b: 2\n}",
		},
		{
			name:       "without commas",
			lines:      []string{"  a: 1", "  b: 2"},
			delimiters: "{}",
			withComma:  false,
			expected:   "{\n  a: 1\n  b: 2\n}",
		},
		{
			name:       "closing delimiter at indent",
			lines:      []string{"    1"},
			indent:     "  ",
			delimiters: "[]",
			withComma:  true,
			expected:   "[\n    1\n  ]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, WrapInDelimiters(tt.lines, tt.indent, tt.delimiters, tt.withComma))
		})
	}
}

func TestIndentLines(t *testing.T) {
	got := IndentLines([]string{"a;", "if (x) {\n  b;\n}"}, "  ")
	assert.Equal(t, []string{"  a;", "  if (x) {", "    b;", "  }"}, got)
}

func TestGenObjectKey(t *testing.T) {
	tests := []struct {
		key      string
		expected string
	}{
		{"foo", "foo"},
		{"$foo", "$foo"},
		{"_foo", "_foo"},
		{"foo_bar1", "foo_bar1"},
		{"1", "1"},
		{"2", "2"},
		{"12", `"12"`},
		{"2xs", `"2xs"`},
		{"xs2", "xs2"},
		{"obj 1", `"obj 1"`},
		{"foo-bar", `"foo-bar"`},
		{"", `""`},
		{"default", "default"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			assert.Equal(t, tt.expected, GenObjectKey(tt.key))
			assert.Equal(t, tt.expected, GenKey(tt.key))
		})
	}
}

func TestGenString(t *testing.T) {
	tests := []struct {
		input  string
		double string
		single string
	}{
		{`foo`, `"foo"`, `'foo'`},
		{"foo\nbar", `"foo\nbar"`, `'foo\nbar'`},
		{`foo'bar`, `"foo'bar"`, `'foo\'bar'`},
		{`foo"bar`, `"foo\"bar"`, `'foo"bar'`},
		{`back\slash`, `"back\\slash"`, `'back\\slash'`},
		{`quote\"mix`, `"quote\\\"mix"`, `'quote\\"mix'`},
		{"tab\there", `"tab\there"`, `'tab\there'`},
		{"bell\x07", `"bell\u0007"`, `'bell\u0007'`},
		{"<a&b>", `"<a&b>"`, `'<a&b>'`},
		{"snow ☃", `"snow ☃"`, `'snow ☃'`},
		{"", `""`, `''`},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.double, GenString(tt.input, models.CodegenOptions{}))
			assert.Equal(t, tt.single, GenString(tt.input, models.CodegenOptions{SingleQuotes: true}))
		})
	}
}

func TestEscapeString(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"plain", "plain"},
		{"foo'bar", `foo\'bar`},
		{"foo\nbar", "foo\\\nbar"},
		{"foo\rbar", "foo\\\rbar"},
		{`a\b`, `a\\b`},
		{"line\u2028sep", "line\\\u2028sep"},
		{"para\u2029sep", "para\\\u2029sep"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, EscapeString(tt.input))
		})
	}
}

func TestGenTemplateLiteral(t *testing.T) {
	tests := []struct {
		parts    []string
		expected string
	}{
		{[]string{"hello ", "x"}, "`hello ${x}`"},
		{[]string{"prefix", "expr", "suffix"}, "`prefix${expr}suffix`"},
		{[]string{"", "value"}, "`${value}`"},
		{[]string{"text"}, "`text`"},
		{nil, "``"},
		{[]string{"Hello ", "name", ", you are ", "age", " years old"}, "`Hello ${name}, you are ${age} years old`"},
		{[]string{"text with `backtick`"}, "`text with \\`backtick\\``"},
		{[]string{"text with ${interpolation}"}, "`text with \\${interpolation}`"},
		{[]string{`a\b`}, "`a\\\\b`"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, GenTemplateLiteral(tt.parts))
		})
	}
}

func TestGenVariableName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"valid_import", "valid_import"},
		{"for", "_for"},
		{"with space", "with_32space"},
		{"123 numbers", "_123_32numbers"},
		{"foo-bar", "foo_45bar"},
		{"$el", "_36el"},
		{"Infinity", "_Infinity"},
		{"é", "_233"},
		{"😀", "_55357_56832"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, GenVariableName(tt.input))
		})
	}
}

func TestGenJSDocComment(t *testing.T) {
	tests := []struct {
		name     string
		doc      *models.JSDoc
		indent   string
		expected string
	}{
		{
			name:     "nil",
			doc:      nil,
			expected: "",
		},
		{
			name:     "single line",
			doc:      models.NewJSDoc("Single line"),
			expected: "/** Single line */\n",
		},
		{
			name:     "multiple lines",
			doc:      models.NewJSDoc("Line one", "@param x - number", "@returns void"),
			expected: "/**\n * Line one\n * @param x - number\n * @returns void\n */\n",
		},
		{
			name:     "indented single line",
			doc:      models.NewJSDoc("Indented"),
			indent:   "  ",
			expected: "  /** Indented */\n",
		},
		{
			name:     "indented multiple lines",
			doc:      models.NewJSDoc("A", "B"),
			indent:   "  ",
			expected: "  /**\n   * A\n   * B\n   */\n",
		},
		{
			name: "tags",
			doc: models.NewJSDoc("Fn").
				WithTag(models.JSDocTag{Tag: "param", Type: "number", Name: "x"}).
				WithTag(models.JSDocTag{Tag: "param", Type: "string", Name: "y"}).
				WithTag(models.JSDocTag{Tag: "returns", Type: "void"}),
			expected: "/**\n * Fn\n * @param {number} x\n * @param {string} y\n * @returns {void}\n */\n",
		},
		{
			name: "tag with name and text",
			doc: models.NewJSDoc().
				WithTag(models.JSDocTag{Tag: "property", Type: "string", Name: "name", Text: "label"}),
			expected: "/** @property {string} name - label */\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, GenJSDocComment(tt.doc, tt.indent))
		})
	}
}

func TestGenComment(t *testing.T) {
	assert.Equal(t, "// hello", GenComment("hello", ""))
	assert.Equal(t, "  // a\n  //\n  // b", GenComment("a\n\nb", "  "))
}
