package models

import "gopkg.in/yaml.v3"

// DeclarationKind selects how a document declaration is rendered.
type DeclarationKind string

const (
	KindImport        DeclarationKind = "import"
	KindExport        DeclarationKind = "export"
	KindExportStar    DeclarationKind = "export_star"
	KindDefaultExport DeclarationKind = "default_export"
	KindVariable      DeclarationKind = "variable"
	KindEnum          DeclarationKind = "enum"
	KindInterface     DeclarationKind = "interface"
	KindType          DeclarationKind = "type"
	KindFunction      DeclarationKind = "function"
	KindClass         DeclarationKind = "class"
	KindNamespace     DeclarationKind = "namespace"
	KindModule        DeclarationKind = "module"
	KindDeclare       DeclarationKind = "declare"
	KindRaw           DeclarationKind = "raw"
	KindComment       DeclarationKind = "comment"
	KindInfer         DeclarationKind = "infer"
	KindSchema        DeclarationKind = "schema"
)

// Document is a module description read from YAML or JSON.
type Document struct {
	Header       string        `yaml:"header"`
	Declarations []Declaration `yaml:"declarations"`
}

// Declaration is a single top-level statement of a document. Which fields
// apply depends on Kind.
type Declaration struct {
	Kind   DeclarationKind `yaml:"kind"`
	Name   string          `yaml:"name"`
	Export bool            `yaml:"export"`
	JSDoc  *JSDoc          `yaml:"jsdoc"`

	// import, export, export_star
	From       string    `yaml:"from"`
	Names      yaml.Node `yaml:"names"`
	TypeOnly   bool      `yaml:"type_only"`
	Attributes string    `yaml:"attributes"`
	As         string    `yaml:"as"`

	// variable, default_export
	VarKind string    `yaml:"var_kind"`
	Value   yaml.Node `yaml:"value"`

	// type, interface
	Type    string      `yaml:"type"`
	Shape   yaml.Node   `yaml:"shape"`
	Fields  []TypeField `yaml:"fields"`
	Extends []string    `yaml:"extends"`

	// enum
	Members yaml.Node `yaml:"members"`
	Const   bool      `yaml:"const"`

	// function, namespace, module, declare
	Parameters []TypeField   `yaml:"parameters"`
	Body       []string      `yaml:"body"`
	Async      bool          `yaml:"async"`
	Generator  bool          `yaml:"generator"`
	ReturnType string        `yaml:"return_type"`
	Generics   []TypeGeneric `yaml:"generics"`

	// class
	Implements  []string         `yaml:"implements"`
	Properties  []TypeField      `yaml:"properties"`
	Methods     []MethodSpec     `yaml:"methods"`
	Constructor *ConstructorSpec `yaml:"constructor"`

	// raw, comment
	Code string `yaml:"code"`

	// infer, schema
	Sample yaml.Node `yaml:"sample"`
	Schema yaml.Node `yaml:"schema"`
}

// MethodSpec describes a class method, getter or setter.
type MethodSpec struct {
	Name       string        `yaml:"name"`
	Kind       string        `yaml:"kind"`
	Static     bool          `yaml:"static"`
	Async      bool          `yaml:"async"`
	Generator  bool          `yaml:"generator"`
	Parameters []TypeField   `yaml:"parameters"`
	Body       []string      `yaml:"body"`
	ReturnType string        `yaml:"return_type"`
	Generics   []TypeGeneric `yaml:"generics"`
	JSDoc      *JSDoc        `yaml:"jsdoc"`
}

// ConstructorSpec describes a class constructor.
type ConstructorSpec struct {
	Parameters []TypeField `yaml:"parameters"`
	Body       []string    `yaml:"body"`
	Super      *string     `yaml:"super"`
}

// ESMName is an imported or exported binding, optionally renamed.
type ESMName struct {
	Name string `yaml:"name"`
	As   string `yaml:"as,omitempty"`
}

// EnumMember is one enum member. A nil Value auto-increments from the
// previous numeric member.
type EnumMember struct {
	Name  string
	Value any
}

// Module is the analyzed form of a Document, ready for rendering.
type Module struct {
	Header string
	Items  []ModuleItem
}

// ModuleItem is a declaration with every nested value resolved.
type ModuleItem struct {
	Kind DeclarationKind
	Decl Declaration

	// Value is the rendered initializer for variables and default exports.
	Value string
	// Names holds import/export bindings. Single is set when the declaration
	// named one binding rather than a list.
	Names  []ESMName
	Single bool
	// Members holds enum members in document order.
	Members []EnumMember
	// Shape holds an object type for type aliases and interfaces.
	Shape TypeObject
	// Types holds inferred or converted definitions.
	Types TypeDefinitions
}
