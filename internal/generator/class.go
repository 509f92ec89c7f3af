package generator

import (
	"strings"

	"github.com/mcncl/tsgen/internal/models"
	"github.com/mcncl/tsgen/internal/syntax"
)

// ClassOptions control a class declaration.
type ClassOptions struct {
	Export     bool
	Extends    string
	Implements []string
	JSDoc      *models.JSDoc
}

// MethodKind selects between a plain method and an accessor.
type MethodKind string

const (
	MethodPlain  MethodKind = "method"
	MethodGetter MethodKind = "get"
	MethodSetter MethodKind = "set"
)

// MethodOptions describe a class method.
type MethodOptions struct {
	Name       string
	Kind       MethodKind
	Parameters []models.TypeField
	Body       []string
	Static     bool
	Async      bool
	Generator  bool
	ReturnType string
	Generics   []models.TypeGeneric
	JSDoc      *models.JSDoc
}

// GenClass renders a class declaration. Members are already rendered and
// are indented one level.
func GenClass(name string, members []string, opts ClassOptions, indent string) string {
	head := name
	if opts.Extends != "" {
		head += " extends " + opts.Extends
	}
	if len(opts.Implements) > 0 {
		head += " implements " + strings.Join(opts.Implements, ", ")
	}
	head = joinNonEmpty(exportKeyword(opts.Export), "class", head)

	body := "{}"
	if len(members) > 0 {
		body = syntax.WrapInDelimiters(syntax.IndentLines(members, indent+"  "), indent, "{}", false)
	}
	return syntax.GenJSDocComment(opts.JSDoc, "") + indent + head + " " + body
}

// GenConstructor renders a constructor. A non-nil super prepends a
// `super(...)` call.
func GenConstructor(params []models.TypeField, body []string, super *string, indent string) string {
	statements := body
	if super != nil {
		statements = append([]string{"super(" + *super + ");"}, body...)
	}
	return indent + "constructor" + GenParams(params) + " " + GenBlock(statements, indent)
}

// GenClassProperty renders a property declaration with its modifiers and
// optional initializer.
func GenClassProperty(field models.TypeField, indent string) string {
	var mods []string
	if field.Static {
		mods = append(mods, "static")
	}
	if field.Readonly {
		mods = append(mods, "readonly")
	}
	if field.Public {
		mods = append(mods, "public")
	}
	if field.Private {
		mods = append(mods, "private")
	}
	if field.Protected {
		mods = append(mods, "protected")
	}

	decl := field.Name
	if field.Optional {
		decl += "?"
	}
	if field.Type != "" {
		decl += ": " + field.Type
	}
	if field.Value != nil {
		decl += " = " + *field.Value
	}

	line := decl
	if len(mods) > 0 {
		line = strings.Join(mods, " ") + " " + decl
	}
	return syntax.GenJSDocComment(field.JSDoc, indent) + indent + line
}

// GenClassMethod renders a method, getter or setter.
func GenClassMethod(opts MethodOptions, indent string) string {
	static := ""
	if opts.Static {
		static = "static"
	}

	var prefix string
	switch opts.Kind {
	case MethodGetter:
		prefix = joinNonEmpty(static, "get", opts.Name+"()"+genReturnType(opts.ReturnType))
	case MethodSetter:
		prefix = joinNonEmpty(static, "set", opts.Name+GenParams(opts.Parameters))
	default:
		star := ""
		if opts.Generator {
			star = "*"
		}
		async := ""
		if opts.Async {
			async = "async"
		}
		prefix = joinNonEmpty(static, async, star+opts.Name+GenGenerics(opts.Generics)+GenParams(opts.Parameters)+genReturnType(opts.ReturnType))
	}

	return syntax.GenJSDocComment(opts.JSDoc, "") + indent + prefix + " " + GenBlock(opts.Body, indent)
}

// GenGetter renders `get name(): T { ... }`.
func GenGetter(name string, body []string, returnType string, doc *models.JSDoc, indent string) string {
	return GenClassMethod(MethodOptions{
		Name:       name,
		Kind:       MethodGetter,
		Body:       body,
		ReturnType: returnType,
		JSDoc:      doc,
	}, indent)
}

// GenSetter renders `set name(param: T) { ... }`.
func GenSetter(name, param string, body []string, paramType string, doc *models.JSDoc, indent string) string {
	return GenClassMethod(MethodOptions{
		Name:       name,
		Kind:       MethodSetter,
		Parameters: []models.TypeField{{Name: param, Type: paramType}},
		Body:       body,
		JSDoc:      doc,
	}, indent)
}

// GenDecorator renders `@name` or `@name(args)`. Args are written as given,
// including parentheses.
func GenDecorator(name, args, indent string) string {
	return indent + "@" + name + args
}
