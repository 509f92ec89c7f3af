package generator

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/mcncl/tsgen/internal/errors"
	"github.com/mcncl/tsgen/internal/models"
	"github.com/mcncl/tsgen/internal/syntax"
)

// Generator renders analyzed modules to TypeScript source
type Generator struct {
	codegen models.CodegenOptions
}

// NewGenerator creates a new Generator instance
func NewGenerator(codegen models.CodegenOptions) *Generator {
	return &Generator{codegen: codegen}
}

// GenerateModule renders every item of the module, separated by a blank
// line and preceded by the header comment
func (g *Generator) GenerateModule(module models.Module) (string, error) {
	var buf bytes.Buffer

	if module.Header != "" {
		buf.WriteString(syntax.GenComment(module.Header, ""))
		buf.WriteString("\n")
		if len(module.Items) > 0 {
			buf.WriteString("\n")
		}
	}

	for i, item := range module.Items {
		code, err := g.GenerateItem(item)
		if err != nil {
			return "", errors.NewGenerateError(fmt.Sprintf("declaration %d (%s)", i+1, item.Kind), err)
		}
		buf.WriteString(code)
		buf.WriteString("\n")

		if i < len(module.Items)-1 {
			buf.WriteString("\n")
		}
	}

	return buf.String(), nil
}

// GenerateItem renders a single module item
func (g *Generator) GenerateItem(item models.ModuleItem) (string, error) {
	d := item.Decl
	esm := ESMOptions{CodegenOptions: g.codegen, Type: d.TypeOnly, Attributes: d.Attributes}

	switch item.Kind {
	case models.KindImport:
		return GenImport(d.From, NewClause(item.Names, item.Single), esm), nil

	case models.KindExport:
		return GenExport(d.From, NewClause(item.Names, item.Single), esm), nil

	case models.KindExportStar:
		if d.As != "" {
			return GenExportStarAs(d.From, d.As, esm), nil
		}
		return GenExportStar(d.From, esm), nil

	case models.KindDefaultExport:
		return GenDefaultExport(item.Value), nil

	case models.KindVariable:
		return syntax.GenJSDocComment(d.JSDoc, "") + GenVariable(d.Name, item.Value, VariableOptions{Export: d.Export, Kind: d.VarKind}), nil

	case models.KindEnum:
		opts := EnumOptions{CodegenOptions: g.codegen, Const: d.Const, Export: d.Export}
		return syntax.GenJSDocComment(d.JSDoc, "") + GenEnum(d.Name, item.Members, opts, ""), nil

	case models.KindInterface:
		var body models.InterfaceBody
		switch {
		case len(d.Fields) > 0:
			body = models.TypeFields(d.Fields)
		case item.Shape != nil:
			body = item.Shape
		}
		return GenInterface(d.Name, body, InterfaceOptions{Export: d.Export, Extends: d.Extends, JSDoc: d.JSDoc}, ""), nil

	case models.KindType:
		opts := TypeAliasOptions{Export: d.Export, Generics: d.Generics}
		doc := syntax.GenJSDocComment(d.JSDoc, "")
		if item.Shape != nil {
			return doc + GenTypeAliasObject(d.Name, item.Shape, opts, ""), nil
		}
		return doc + GenTypeAlias(d.Name, d.Type, opts), nil

	case models.KindFunction:
		return GenFunction(FunctionOptions{
			Name:       d.Name,
			Parameters: d.Parameters,
			Body:       d.Body,
			Export:     d.Export,
			JSDoc:      d.JSDoc,
			Async:      d.Async,
			Generator:  d.Generator,
			ReturnType: d.ReturnType,
			Generics:   d.Generics,
		}, ""), nil

	case models.KindClass:
		return g.generateClass(d), nil

	case models.KindNamespace:
		return GenNamespace(d.Name, d.Body), nil

	case models.KindModule:
		return GenAugmentation(d.Name, d.Body), nil

	case models.KindDeclare:
		return GenDeclareNamespace(d.Name, d.Body), nil

	case models.KindRaw:
		return d.Code, nil

	case models.KindComment:
		return syntax.GenComment(d.Code, ""), nil

	case models.KindInfer, models.KindSchema:
		return g.generateDefinitions(item.Types, d.Export), nil
	}

	return "", fmt.Errorf("%w: %q", errors.ErrUnknownKind, item.Kind)
}

func (g *Generator) generateClass(d models.Declaration) string {
	members := make([]string, 0, len(d.Properties)+len(d.Methods)+1)
	for _, p := range d.Properties {
		members = append(members, GenClassProperty(p, ""))
	}
	if d.Constructor != nil {
		members = append(members, GenConstructor(d.Constructor.Parameters, d.Constructor.Body, d.Constructor.Super, ""))
	}
	for _, m := range d.Methods {
		members = append(members, GenClassMethod(MethodOptions{
			Name:       m.Name,
			Kind:       MethodKind(m.Kind),
			Parameters: m.Parameters,
			Body:       m.Body,
			Static:     m.Static,
			Async:      m.Async,
			Generator:  m.Generator,
			ReturnType: m.ReturnType,
			Generics:   m.Generics,
			JSDoc:      m.JSDoc,
		}, ""))
	}

	return GenClass(d.Name, members, ClassOptions{
		Export:     d.Export,
		Extends:    firstOrEmpty(d.Extends),
		Implements: d.Implements,
		JSDoc:      d.JSDoc,
	}, "")
}

// generateDefinitions renders aliases first, then interfaces with the root
// interface leading
func (g *Generator) generateDefinitions(defs models.TypeDefinitions, export bool) string {
	var buf bytes.Buffer

	for i, alias := range defs.Aliases {
		if i > 0 {
			buf.WriteString("\n\n")
		}
		buf.WriteString(syntax.GenJSDocComment(alias.JSDoc, ""))
		buf.WriteString(GenTypeAlias(alias.Name, alias.Type, TypeAliasOptions{Export: export}))
	}

	for i, def := range sortInterfaces(defs.Interfaces) {
		if i > 0 || len(defs.Aliases) > 0 {
			buf.WriteString("\n\n")
		}
		buf.WriteString(GenInterface(def.Name, def.Fields, InterfaceOptions{Export: export, JSDoc: def.JSDoc}, ""))
	}

	return buf.String()
}

// sortInterfaces puts root interfaces first, followed by nested ones by name
func sortInterfaces(defs []models.InterfaceDef) []models.InterfaceDef {
	sorted := make([]models.InterfaceDef, len(defs))
	copy(sorted, defs)

	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].IsRoot != sorted[j].IsRoot {
			return sorted[i].IsRoot
		}
		return sorted[i].Name < sorted[j].Name
	})

	return sorted
}

func firstOrEmpty(values []string) string {
	if len(values) == 0 {
		return ""
	}
	return values[0]
}
