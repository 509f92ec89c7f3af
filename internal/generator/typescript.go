package generator

import (
	"encoding/json"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/mcncl/tsgen/internal/models"
	"github.com/mcncl/tsgen/internal/serializer"
	"github.com/mcncl/tsgen/internal/syntax"
)

// VariableOptions control a variable declaration.
type VariableOptions struct {
	Export bool
	// Kind is const, let or var. Empty means const.
	Kind string
}

// TypeAliasOptions control a type alias declaration.
type TypeAliasOptions struct {
	Export   bool
	Generics []models.TypeGeneric
}

// InterfaceOptions control an interface declaration.
type InterfaceOptions struct {
	Export  bool
	Extends []string
	JSDoc   *models.JSDoc
}

// EnumOptions control an enum declaration.
type EnumOptions struct {
	models.CodegenOptions
	Const  bool
	Export bool
}

// SignatureOptions describe call and construct signatures.
type SignatureOptions struct {
	Parameters []models.TypeField
	ReturnType string
	Generics   []models.TypeGeneric
}

// GenVariable renders `const name = value`.
func GenVariable(name, value string, opts VariableOptions) string {
	kind := opts.Kind
	if kind == "" {
		kind = "const"
	}
	return joinNonEmpty(exportKeyword(opts.Export), kind, name) + " = " + value
}

// GenTypeAlias renders `type Name = value`.
func GenTypeAlias(name, value string, opts TypeAliasOptions) string {
	return joinNonEmpty(exportKeyword(opts.Export), "type", name+GenGenerics(opts.Generics)) + " = " + value
}

// GenTypeAliasObject renders a type alias whose value is an object type.
func GenTypeAliasObject(name string, obj models.TypeObject, opts TypeAliasOptions, indent string) string {
	return GenTypeAlias(name, GenTypeObject(obj, indent), opts)
}

var optionalKeyRe = regexp.MustCompile(`^(.*[^?])(\?)?$`)

// splitOptionalKey separates a trailing "?" from a property key.
func splitOptionalKey(key string) (string, string) {
	m := optionalKeyRe.FindStringSubmatch(key)
	if m == nil {
		return key, ""
	}
	return m[1], m[2]
}

// GenTypeObject renders an object type. Properties are newline separated.
func GenTypeObject(obj models.TypeObject, indent string) string {
	newIndent := indent + "  "
	lines := make([]string, 0, len(obj))
	for _, prop := range obj {
		key, optional := splitOptionalKey(prop.Key)
		name := syntax.GenObjectKey(key) + optional

		typ := prop.Type
		if prop.Nested != nil {
			typ = GenTypeObject(prop.Nested, newIndent)
		}
		lines = append(lines, syntax.GenJSDocComment(prop.JSDoc, newIndent)+newIndent+name+": "+typ)
	}
	return syntax.WrapInDelimiters(lines, indent, "{}", false)
}

// GenTypeFields renders the list form of an object type. Fields are
// optional unless marked required and default to `any`.
func GenTypeFields(fields []models.TypeObjectField, indent string) string {
	newIndent := indent + "  "
	lines := make([]string, 0, len(fields))
	for _, f := range fields {
		optional := "?"
		if f.Required {
			optional = ""
		}
		typ := f.Type
		if typ == "" {
			typ = "any"
		}
		lines = append(lines, syntax.GenJSDocComment(f.JSDoc, newIndent)+newIndent+syntax.GenObjectKey(f.Name)+optional+": "+typ)
	}
	return syntax.WrapInDelimiters(lines, indent, "{}", false)
}

// GenProperty renders a property signature with its JSDoc.
func GenProperty(field models.TypeField, indent string) string {
	typ := field.Type
	if typ == "" {
		typ = "any"
	}
	optional := ""
	if field.Optional {
		optional = "?"
	}
	return syntax.GenJSDocComment(field.JSDoc, indent) + indent + syntax.GenObjectKey(field.Name) + optional + ": " + typ
}

// GenInterface renders an interface declaration. A nil body renders `{}`.
func GenInterface(name string, body models.InterfaceBody, opts InterfaceOptions, indent string) string {
	var rendered string
	switch b := body.(type) {
	case models.TypeFields:
		newIndent := indent + "  "
		lines := make([]string, len(b))
		for i, f := range b {
			lines[i] = GenProperty(f, newIndent)
		}
		rendered = syntax.WrapInDelimiters(lines, indent, "{}", false)
	case models.TypeObject:
		rendered = GenTypeObject(b, indent)
	default:
		rendered = "{}"
	}

	extends := ""
	if len(opts.Extends) > 0 {
		extends = "extends " + strings.Join(opts.Extends, ", ")
	}
	return syntax.GenJSDocComment(opts.JSDoc, "") + joinNonEmpty(exportKeyword(opts.Export), "interface "+name, extends, rendered)
}

// GenIndexSignature renders `[key: K]: V`. An empty keyName uses "key".
func GenIndexSignature(keyType, valueType, keyName string) string {
	if keyName == "" {
		keyName = "key"
	}
	return "[" + keyName + ": " + keyType + "]: " + valueType
}

// GenCallSignature renders `<T>(params): ret`.
func GenCallSignature(opts SignatureOptions) string {
	return GenGenerics(opts.Generics) + GenParams(opts.Parameters) + genReturnType(opts.ReturnType)
}

// GenConstructSignature renders `new <T>(params): ret`.
func GenConstructSignature(opts SignatureOptions) string {
	return "new " + GenCallSignature(opts)
}

// GenUnion joins types with `|`. No types renders `never`.
func GenUnion(types ...string) string {
	return joinTypes(types, " | ")
}

// GenIntersection joins types with `&`. No types renders `never`.
func GenIntersection(types ...string) string {
	return joinTypes(types, " & ")
}

func joinTypes(types []string, sep string) string {
	if len(types) == 0 {
		return "never"
	}
	return strings.Join(types, sep)
}

// GenMappedType renders `{ [K in Keys]: V }`.
func GenMappedType(keyName, keyType, valueType string) string {
	return "{ [" + keyName + " in " + keyType + "]: " + valueType + " }"
}

// GenTemplateLiteralType renders a template literal type. Odd parts are
// type expressions. Literal parts are written unescaped.
func GenTemplateLiteralType(parts []string) string {
	var b strings.Builder
	b.WriteByte('`')
	for i, part := range parts {
		if i%2 == 1 {
			b.WriteString("${" + part + "}")
		} else {
			b.WriteString(part)
		}
	}
	b.WriteByte('`')
	return b.String()
}

// GenKeyOf renders `keyof T`.
func GenKeyOf(typ string) string { return "keyof " + typ }

// GenTypeof renders `typeof expr`.
func GenTypeof(expr string) string { return "typeof " + expr }

// GenTypeAssertion renders `expr as T`.
func GenTypeAssertion(expr, typ string) string { return expr + " as " + typ }

// GenSatisfies renders `expr satisfies T`.
func GenSatisfies(expr, typ string) string { return expr + " satisfies " + typ }

// GenConditionalType renders `A extends B ? C : D`.
func GenConditionalType(checkType, extendsType, trueType, falseType string) string {
	return checkType + " extends " + extendsType + " ? " + trueType + " : " + falseType
}

// GenEnum renders an enum. Members without a value continue counting from
// the previous numeric member, or start at zero.
func GenEnum(name string, members []models.EnumMember, opts EnumOptions, indent string) string {
	newIndent := indent + "  "
	lines := make([]string, 0, len(members))

	var last *float64
	for _, m := range members {
		key := syntax.GenObjectKey(m.Name)
		switch v := m.Value.(type) {
		case string:
			last = nil
			lines = append(lines, newIndent+key+" = "+syntax.GenString(v, opts.CodegenOptions))
		case nil:
			if last == nil {
				zero := 0.0
				last = &zero
				lines = append(lines, newIndent+key)
				continue
			}
			next := *last + 1
			last = &next
			lines = append(lines, newIndent+key+" = "+formatEnumNumber(next))
		default:
			n, ok := toFloat(v)
			if !ok {
				lines = append(lines, newIndent+key+" = "+fmt.Sprint(v))
				continue
			}
			last = &n
			lines = append(lines, newIndent+key+" = "+formatEnumNumber(n))
		}
	}

	constKeyword := ""
	if opts.Const {
		constKeyword = "const"
	}
	prefix := joinNonEmpty(exportKeyword(opts.Export), constKeyword, "enum", name)
	if len(lines) == 0 {
		return prefix + " {}"
	}
	return prefix + " " + syntax.WrapInDelimiters(lines, indent, "{}", true)
}

// GenConstEnum renders a const enum.
func GenConstEnum(name string, members []models.EnumMember, opts EnumOptions, indent string) string {
	opts.Const = true
	return GenEnum(name, members, opts, indent)
}

// GenAugmentation renders `declare module "x" { ... }`.
func GenAugmentation(specifier string, statements []string) string {
	return "declare module " + syntax.GenString(specifier, models.CodegenOptions{}) + " " + GenBlock(statements, "")
}

// GenModule is an alias of GenAugmentation.
func GenModule(specifier string, statements []string) string {
	return GenAugmentation(specifier, statements)
}

// GenDeclareNamespace renders `declare ns { ... }`.
func GenDeclareNamespace(namespace string, statements []string) string {
	return "declare " + namespace + " " + GenBlock(statements, "")
}

// GenNamespace renders `namespace Name { ... }`.
func GenNamespace(name string, statements []string) string {
	return "namespace " + name + " " + GenBlock(statements, "")
}

func exportKeyword(export bool) string {
	if export {
		return "export"
	}
	return ""
}

func joinNonEmpty(parts ...string) string {
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, " ")
}

func formatEnumNumber(n float64) string {
	return serializer.FormatNumber(n, 64)
}

func toFloat(v any) (float64, bool) {
	if n, ok := v.(json.Number); ok {
		f, err := n.Float64()
		return f, err == nil
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	}
	return 0, false
}
