package generator

import (
	"strings"

	"github.com/mcncl/tsgen/internal/models"
	"github.com/mcncl/tsgen/internal/syntax"
)

// FunctionOptions describe a function declaration.
type FunctionOptions struct {
	Name       string
	Parameters []models.TypeField
	Body       []string
	Export     bool
	JSDoc      *models.JSDoc
	Async      bool
	Generator  bool
	ReturnType string
	Generics   []models.TypeGeneric
}

// ArrowFunctionOptions describe an arrow function. Expression takes
// precedence over Body; with neither the body is `{}`.
type ArrowFunctionOptions struct {
	Parameters []models.TypeField
	Expression string
	Body       []string
	Async      bool
	ReturnType string
	Generics   []models.TypeGeneric
}

// GenParam renders `name?: type = default`.
func GenParam(p models.TypeField) string {
	s := p.Name
	if p.Optional {
		s += "?"
	}
	if p.Type != "" {
		s += ": " + p.Type
	}
	if p.Default != nil {
		s += " = " + *p.Default
	}
	return s
}

// GenParams renders a parenthesised parameter list.
func GenParams(params []models.TypeField) string {
	parts := make([]string, len(params))
	for i, p := range params {
		parts[i] = GenParam(p)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// GenGenerics renders `<T extends U = V, ...>`, or nothing.
func GenGenerics(generics []models.TypeGeneric) string {
	if len(generics) == 0 {
		return ""
	}
	parts := make([]string, len(generics))
	for i, g := range generics {
		s := g.Name
		if g.Extends != "" {
			s += " extends " + g.Extends
		}
		if g.Default != "" {
			s += " = " + g.Default
		}
		parts[i] = s
	}
	return "<" + strings.Join(parts, ", ") + ">"
}

// GenBlock renders statements inside braces, one line per statement line,
// indented one level past indent. No statements renders `{}`.
func GenBlock(statements []string, indent string) string {
	lines := syntax.IndentLines(statements, indent+"  ")
	if len(lines) == 0 {
		return "{}"
	}
	return syntax.WrapInDelimiters(lines, indent, "{}", false)
}

// GenFunction renders a function declaration.
func GenFunction(opts FunctionOptions, indent string) string {
	signature := opts.Name + GenGenerics(opts.Generics) + GenParams(opts.Parameters) + genReturnType(opts.ReturnType)

	parts := make([]string, 0, 4)
	if opts.Export {
		parts = append(parts, "export")
	}
	if opts.Async {
		parts = append(parts, "async")
	}
	if opts.Generator {
		parts = append(parts, "function*")
	} else {
		parts = append(parts, "function")
	}
	parts = append(parts, signature)

	return syntax.GenJSDocComment(opts.JSDoc, "") + strings.Join(parts, " ") + " " + GenBlock(opts.Body, indent)
}

// GenArrowFunction renders `(params): ret => body`.
func GenArrowFunction(opts ArrowFunctionOptions) string {
	var body string
	switch {
	case opts.Expression != "":
		body = opts.Expression
	case opts.Body != nil:
		body = GenBlock(opts.Body, "")
	default:
		body = "{}"
	}

	prefix := ""
	if opts.Async {
		prefix = "async "
	}
	return prefix + GenGenerics(opts.Generics) + GenParams(opts.Parameters) + genReturnType(opts.ReturnType) + " => " + body
}

func genReturnType(t string) string {
	if t == "" {
		return ""
	}
	return ": " + t
}
