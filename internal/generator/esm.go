package generator

import (
	"strings"

	"github.com/mcncl/tsgen/internal/models"
	"github.com/mcncl/tsgen/internal/syntax"
)

// ESMOptions control import and export statements.
type ESMOptions struct {
	models.CodegenOptions
	// Type emits `import type` / `export type`.
	Type bool
	// Attributes adds `with { type: "..." }`.
	Attributes string
	// Assert adds `assert { type: "..." }`.
	Assert string
}

// DynamicImportOptions control import() expressions.
type DynamicImportOptions struct {
	ESMOptions
	// Name selects an export in type mode.
	Name string
	// Comment is written inside the call, e.g. a webpack magic comment.
	Comment string
	// Wrapper emits `() => import(...)`.
	Wrapper bool
	// InteropDefault appends `.then(m => m.default || m)`.
	InteropDefault bool
}

// Clause is the binding part of an import or export statement. The zero
// value is a bare side-effect statement.
type Clause struct {
	names  []models.ESMName
	single bool
	set    bool
}

// Named creates a `{ a, b as c }` clause.
func Named(names ...models.ESMName) Clause {
	return Clause{names: names, set: true}
}

// NamedStrings creates a `{ a, b }` clause from plain names.
func NamedStrings(names ...string) Clause {
	out := make([]models.ESMName, len(names))
	for i, n := range names {
		out[i] = models.ESMName{Name: n}
	}
	return Named(out...)
}

// Default creates a single-binding clause such as `foo` or `*`.
func Default(name string) Clause {
	return Single(models.ESMName{Name: name})
}

// Namespace creates a `* as ns` clause.
func Namespace(as string) Clause {
	return Single(models.ESMName{Name: "*", As: as})
}

// Single creates a clause with one unbraced binding.
func Single(name models.ESMName) Clause {
	return Clause{names: []models.ESMName{name}, single: true, set: true}
}

// NewClause builds a clause from parsed names. A nil slice is a bare
// statement.
func NewClause(names []models.ESMName, single bool) Clause {
	if names == nil {
		return Clause{}
	}
	if single && len(names) == 1 {
		return Single(names[0])
	}
	return Named(names...)
}

func (c Clause) String() string {
	if c.single {
		return genBinding(c.names[0])
	}
	parts := make([]string, len(c.names))
	for i, n := range c.names {
		parts[i] = genBinding(n)
	}
	if len(parts) == 0 {
		return "{}"
	}
	return "{ " + strings.Join(parts, ", ") + " }"
}

func genBinding(n models.ESMName) string {
	if n.As == "" || n.As == n.Name {
		return n.Name
	}
	return n.Name + " as " + n.As
}

// GenImport renders an import statement.
func GenImport(specifier string, clause Clause, opts ESMOptions) string {
	keyword := "import"
	if opts.Type {
		keyword = "import type"
	}
	return genStatement(keyword, specifier, clause, opts)
}

// GenTypeImport renders `import type { ... } from "..."`.
func GenTypeImport(specifier string, clause Clause, opts ESMOptions) string {
	opts.Type = true
	return GenImport(specifier, clause, opts)
}

// GenExport renders a re-export statement.
func GenExport(specifier string, clause Clause, opts ESMOptions) string {
	keyword := "export"
	if opts.Type {
		keyword = "export type"
	}
	return genStatement(keyword, specifier, clause, opts)
}

// GenTypeExport renders `export type { ... } from "..."`.
func GenTypeExport(specifier string, clause Clause, opts ESMOptions) string {
	opts.Type = true
	return GenExport(specifier, clause, opts)
}

// GenExportStar renders `export * from "..."`.
func GenExportStar(specifier string, opts ESMOptions) string {
	return "export * from " + syntax.GenString(specifier, opts.CodegenOptions) + genAttributes(opts) + ";"
}

// GenExportStarAs renders `export * as ns from "..."`.
func GenExportStarAs(specifier, namespace string, opts ESMOptions) string {
	return "export * as " + namespace + " from " + syntax.GenString(specifier, opts.CodegenOptions) + genAttributes(opts) + ";"
}

// GenDefaultExport renders `export default value;`.
func GenDefaultExport(value string) string {
	return "export default " + value + ";"
}

// GenDynamicImport renders an import() expression, or its type with
// opts.Type.
func GenDynamicImport(specifier string, opts DynamicImportOptions) string {
	var b strings.Builder
	b.WriteString("import(")
	b.WriteString(syntax.GenString(specifier, opts.CodegenOptions))
	if opts.Comment != "" {
		b.WriteString(" /* " + opts.Comment + " */")
	}
	switch {
	case opts.Assert != "":
		b.WriteString(", { assert: { type: " + syntax.GenString(opts.Assert, models.CodegenOptions{}) + " } }")
	case opts.Attributes != "":
		b.WriteString(", { with: { type: " + syntax.GenString(opts.Attributes, models.CodegenOptions{}) + " } }")
	}
	b.WriteString(")")
	expr := b.String()

	if opts.Type {
		name := ""
		if opts.Name != "" {
			if syntax.IsValidIdentifier(opts.Name) {
				name = "." + opts.Name
			} else {
				name = "[" + syntax.GenString(opts.Name, models.CodegenOptions{}) + "]"
			}
		}
		return "typeof " + expr + name
	}

	if opts.Wrapper {
		expr = "() => " + expr
	}
	if opts.InteropDefault {
		expr += ".then(m => m.default || m)"
	}
	return expr
}

// GenInlineTypeImport renders `typeof import("...").name`. An empty name
// selects the default export.
func GenInlineTypeImport(specifier, name string, opts ESMOptions) string {
	if name == "" {
		name = "default"
	}
	opts.Type = false
	return "typeof " + GenDynamicImport(specifier, DynamicImportOptions{ESMOptions: opts}) + "." + name
}

func genStatement(keyword, specifier string, clause Clause, opts ESMOptions) string {
	spec := syntax.GenString(specifier, opts.CodegenOptions)
	if !clause.set {
		return keyword + " " + spec + genAttributes(opts) + ";"
	}
	return keyword + " " + clause.String() + " from " + spec + genAttributes(opts) + ";"
}

func genAttributes(opts ESMOptions) string {
	switch {
	case opts.Attributes != "":
		return " with { type: " + syntax.GenString(opts.Attributes, models.CodegenOptions{}) + " }"
	case opts.Assert != "":
		return " assert { type: " + syntax.GenString(opts.Assert, models.CodegenOptions{}) + " }"
	}
	return ""
}
