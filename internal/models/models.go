package models

// RawValue is any value accepted by the serializer.
// It can be Undefined, nil, a primitive, a Code fragment, a slice, an ordered
// map, or a plain Go map with string keys.
type RawValue = any

type undefined struct{}

// String renders the JavaScript token so fmt-based coercion stays consistent.
func (undefined) String() string { return "undefined" }

// Undefined is the JavaScript `undefined` value. It is distinct from nil,
// which renders as `null`.
var Undefined = undefined{}

// Code is a pre-formatted source fragment. It is always inlined verbatim,
// even when primitive values are being quoted.
type Code string

// CodegenOptions holds options shared by every string-producing generator.
type CodegenOptions struct {
	SingleQuotes bool `yaml:"single_quotes"`
}

// Field is one entry of the field-array form of an object literal.
// Value is already-formatted code and is never quoted.
type Field struct {
	Name  string `yaml:"name"`
	Value string `yaml:"value"`
	JSDoc *JSDoc `yaml:"jsdoc,omitempty"`
}

// LiteralField describes one entry of a shorthand object literal.
// Use Shorthand, Pair or Spread to build one.
type LiteralField struct {
	Key       string
	Value     string
	shorthand bool
}

// SpreadKey is the key that turns a Pair into a spread entry.
const SpreadKey = "..."

// Shorthand creates a `{ name }` entry.
func Shorthand(name string) LiteralField {
	return LiteralField{Key: name, shorthand: true}
}

// Pair creates a `{ key: value }` entry. A key of "..." creates a spread.
func Pair(key, value string) LiteralField {
	return LiteralField{Key: key, Value: value}
}

// Spread creates a `{ ...expr }` entry.
func Spread(expr string) LiteralField {
	return LiteralField{Key: SpreadKey, Value: expr}
}

// IsShorthand reports whether the field renders as a bare name.
func (f LiteralField) IsShorthand() bool { return f.shorthand }

// IsSpread reports whether the field renders as `...expr`.
func (f LiteralField) IsSpread() bool { return !f.shorthand && f.Key == SpreadKey }

// MapEntry is a single key/value pair passed to GenMap.
type MapEntry struct {
	Key   RawValue
	Value RawValue
}

// TypeGeneric is a generic type parameter such as `T extends string = "a"`.
type TypeGeneric struct {
	Name    string `yaml:"name"`
	Extends string `yaml:"extends,omitempty"`
	Default string `yaml:"default,omitempty"`
}

// TypeField describes a parameter or a property signature.
type TypeField struct {
	Name     string `yaml:"name"`
	Type     string `yaml:"type,omitempty"`
	Optional bool   `yaml:"optional,omitempty"`
	JSDoc    *JSDoc `yaml:"jsdoc,omitempty"`
	// Default is a parameter default value (code).
	Default *string `yaml:"default,omitempty"`
	// Value is a class property initializer (code).
	Value *string `yaml:"value,omitempty"`

	// Class property modifiers.
	Static    bool `yaml:"static,omitempty"`
	Readonly  bool `yaml:"readonly,omitempty"`
	Public    bool `yaml:"public,omitempty"`
	Private   bool `yaml:"private,omitempty"`
	Protected bool `yaml:"protected,omitempty"`
}

// TypeObjectField is the list form of an object type. Fields are optional
// unless Required is set and default to `any`.
type TypeObjectField struct {
	Name     string `yaml:"name"`
	Type     string `yaml:"type,omitempty"`
	Required bool   `yaml:"required,omitempty"`
	JSDoc    *JSDoc `yaml:"jsdoc,omitempty"`
}

// TypeProperty is one entry of a TypeObject. Exactly one of Type or Nested
// is used; a non-nil Nested renders as a nested object type.
// A key ending in "?" marks the property optional.
type TypeProperty struct {
	Key    string
	Type   string
	Nested TypeObject
	JSDoc  *JSDoc
}

// TypeObject is an ordered object type shape.
type TypeObject []TypeProperty

// TypeFields is a list of property signatures.
type TypeFields []TypeField

// InterfaceBody is the body of an interface: a TypeObject or TypeFields.
type InterfaceBody interface {
	isInterfaceBody()
}

func (TypeObject) isInterfaceBody() {}
func (TypeFields) isInterfaceBody() {}

// InterfaceDef is a named interface produced by type inference or by
// JSON Schema conversion.
type InterfaceDef struct {
	Name   string
	Fields TypeFields
	JSDoc  *JSDoc
	IsRoot bool
}

// TypeAliasDef is a named type alias produced by JSON Schema conversion.
type TypeAliasDef struct {
	Name  string
	Type  string
	JSDoc *JSDoc
}

// TypeDefinitions is the result of inferring or converting types.
type TypeDefinitions struct {
	Interfaces []InterfaceDef
	Aliases    []TypeAliasDef
}
