package models

// ValueKind selects the renderer for a value expression.
type ValueKind string

const (
	ValueCode          ValueKind = "code"
	ValueObject        ValueKind = "object"
	ValueFields        ValueKind = "fields"
	ValueArray         ValueKind = "array"
	ValueMap           ValueKind = "map"
	ValueSet           ValueKind = "set"
	ValueLiteral       ValueKind = "literal"
	ValueString        ValueKind = "string"
	ValueTemplate      ValueKind = "template"
	ValueArrow         ValueKind = "arrow"
	ValueDynamicImport ValueKind = "dynamic_import"
)

// ValueKinds lists the selectors accepted in a value mapping.
var ValueKinds = []ValueKind{
	ValueObject,
	ValueFields,
	ValueArray,
	ValueMap,
	ValueSet,
	ValueLiteral,
	ValueString,
	ValueTemplate,
	ValueArrow,
	ValueDynamicImport,
}

// ValueSpec is a decoded value expression. Only the fields for Kind are set.
type ValueSpec struct {
	Kind ValueKind

	// Code is the raw source for ValueCode.
	Code string
	// Data holds object, array and set payloads.
	Data RawValue
	// Fields holds the field-array form of an object.
	Fields []Field
	// Entries holds map entries in document order.
	Entries []MapEntry
	// Literal holds shorthand object literal entries.
	Literal []LiteralField
	// Text is the unquoted content of a string literal.
	Text string
	// Parts alternates literal text and expressions of a template literal.
	Parts []string

	Arrow  *ArrowSpec
	Import *DynamicImportSpec

	// PreserveTypes overrides the serializer default when set.
	PreserveTypes *bool
}

// ArrowSpec describes an arrow function value.
type ArrowSpec struct {
	Parameters []TypeField   `yaml:"parameters"`
	Expression string        `yaml:"expression"`
	Body       []string      `yaml:"body"`
	Async      bool          `yaml:"async"`
	ReturnType string        `yaml:"return_type"`
	Generics   []TypeGeneric `yaml:"generics"`
}

// DynamicImportSpec describes an import() value.
type DynamicImportSpec struct {
	From           string `yaml:"from"`
	Name           string `yaml:"name"`
	Comment        string `yaml:"comment"`
	Wrapper        bool   `yaml:"wrapper"`
	InteropDefault bool   `yaml:"interop_default"`
	Type           bool   `yaml:"type"`
	Attributes     string `yaml:"attributes"`
	Assert         string `yaml:"assert"`
}
