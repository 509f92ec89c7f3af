// Package schema provides JSON Schema parsing and conversion to TypeScript
// interfaces and type aliases
package schema

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/elliotchance/orderedmap/v3"
	"gopkg.in/yaml.v3"

	"github.com/mcncl/tsgen/internal/errors"
	"github.com/mcncl/tsgen/internal/models"
	"github.com/mcncl/tsgen/internal/naming"
	"github.com/mcncl/tsgen/internal/serializer"
	"github.com/mcncl/tsgen/internal/syntax"
)

// SchemaType handles JSON Schema type field which can be string or array of strings
type SchemaType struct {
	Types []string
}

// UnmarshalYAML handles both string and array forms of type
func (st *SchemaType) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		st.Types = []string{value.Value}
		return nil
	case yaml.SequenceNode:
		var arr []string
		if err := value.Decode(&arr); err != nil {
			return fmt.Errorf("type must be string or array of strings")
		}
		st.Types = arr
		return nil
	}
	return fmt.Errorf("type must be string or array of strings")
}

// Primary returns the primary (first) type, or empty string if none
func (st SchemaType) Primary() string {
	if len(st.Types) > 0 {
		return st.Types[0]
	}
	return ""
}

// IsNullable returns true if "null" is one of the allowed types
func (st SchemaType) IsNullable() bool {
	for _, t := range st.Types {
		if t == "null" {
			return true
		}
	}
	return false
}

// nonNull returns the allowed types without "null"
func (st SchemaType) nonNull() []string {
	types := make([]string, 0, len(st.Types))
	for _, t := range st.Types {
		if t != "null" {
			types = append(types, t)
		}
	}
	return types
}

// AdditionalProperties handles JSON Schema additionalProperties which can be bool or Schema
type AdditionalProperties struct {
	Allowed bool    // If true, any additional properties allowed; if false, none allowed
	Schema  *Schema // If set, additional properties must match this schema
}

// UnmarshalYAML handles both boolean and schema forms
func (ap *AdditionalProperties) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		var b bool
		if err := value.Decode(&b); err != nil {
			return fmt.Errorf("additionalProperties must be boolean or schema")
		}
		ap.Allowed = b
		ap.Schema = nil
		return nil
	}

	var s Schema
	if err := value.Decode(&s); err != nil {
		return fmt.Errorf("additionalProperties must be boolean or schema: %w", err)
	}
	ap.Allowed = true
	ap.Schema = &s
	return nil
}

// Properties keeps schema properties in document order
type Properties struct {
	*orderedmap.OrderedMap[string, *Schema]
}

// UnmarshalYAML decodes a mapping of property schemas in key order
func (p *Properties) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("properties must be a mapping")
	}
	p.OrderedMap = orderedmap.NewOrderedMap[string, *Schema]()
	for i := 0; i+1 < len(value.Content); i += 2 {
		var s Schema
		if err := value.Content[i+1].Decode(&s); err != nil {
			return fmt.Errorf("property %s: %w", value.Content[i].Value, err)
		}
		p.Set(value.Content[i].Value, &s)
	}
	return nil
}

// Len returns the number of properties, zero for an unset value
func (p Properties) Len() int {
	if p.OrderedMap == nil {
		return 0
	}
	return p.OrderedMap.Len()
}

// Schema represents a JSON Schema document
type Schema struct {
	// Meta
	Schema      string `yaml:"$schema,omitempty"`
	ID          string `yaml:"$id,omitempty"`
	Ref         string `yaml:"$ref,omitempty"`
	Title       string `yaml:"title,omitempty"`
	Description string `yaml:"description,omitempty"`
	Deprecated  bool   `yaml:"deprecated,omitempty"`

	// Type - can be string or array of strings in JSON Schema
	Type SchemaType `yaml:"type,omitempty"`

	// Object properties
	Properties           Properties            `yaml:"properties,omitempty"`
	Required             []string              `yaml:"required,omitempty"`
	AdditionalProperties *AdditionalProperties `yaml:"additionalProperties,omitempty"`

	// Array items
	Items *Schema `yaml:"items,omitempty"`

	Format string `yaml:"format,omitempty"`

	// Enum and const values are rendered as literal types
	Enum  []any     `yaml:"enum,omitempty"`
	Const yaml.Node `yaml:"const,omitempty"`

	// Nullable (OpenAPI style)
	Nullable bool `yaml:"nullable,omitempty"`

	// Composition
	AllOf []*Schema `yaml:"allOf,omitempty"`
	AnyOf []*Schema `yaml:"anyOf,omitempty"`
	OneOf []*Schema `yaml:"oneOf,omitempty"`

	// Definitions for $ref resolution
	Definitions map[string]*Schema `yaml:"definitions,omitempty"`
	Defs        map[string]*Schema `yaml:"$defs,omitempty"` // JSON Schema draft 2019-09+

	// Default value
	Default any `yaml:"default,omitempty"`
}

// ParseFile reads and parses a JSON Schema from a JSON or YAML file
func ParseFile(path string) (*Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema file: %w", err)
	}

	return ParseBytes(data)
}

// ParseBytes parses JSON Schema from JSON or YAML bytes
func ParseBytes(data []byte) (*Schema, error) {
	var schema Schema
	if err := yaml.Unmarshal(data, &schema); err != nil {
		return nil, fmt.Errorf("failed to parse JSON Schema: %w", err)
	}

	return &schema, nil
}

// ParseString parses JSON Schema from a string
func ParseString(s string) (*Schema, error) {
	return ParseBytes([]byte(s))
}

// ParseNode decodes an inline schema from a document node
func ParseNode(node *yaml.Node) (*Schema, error) {
	var schema Schema
	if err := node.Decode(&schema); err != nil {
		return nil, fmt.Errorf("failed to parse JSON Schema: %w", err)
	}
	return &schema, nil
}

// Converter converts JSON Schema to TypeScript definitions
type Converter struct {
	schema       *Schema
	codegen      models.CodegenOptions
	interfaces   []models.InterfaceDef
	aliases      []models.TypeAliasDef
	names        *naming.Registry
	definitions  map[string]*Schema // Merged definitions for $ref resolution
	resolvedRefs map[string]string  // Cache of $ref to declared type name
}

// NewConverter creates a new schema converter
func NewConverter(schema *Schema, codegen models.CodegenOptions) *Converter {
	// Merge definitions and $defs
	definitions := make(map[string]*Schema)
	for k, v := range schema.Definitions {
		definitions[k] = v
	}
	for k, v := range schema.Defs {
		definitions[k] = v
	}

	return &Converter{
		schema:       schema,
		codegen:      codegen,
		names:        naming.NewRegistry(),
		definitions:  definitions,
		resolvedRefs: make(map[string]string),
	}
}

// Convert processes the schema and returns the generated definitions. The
// root becomes an interface when it is an object and a type alias otherwise.
func (c *Converter) Convert(rootName string) (models.TypeDefinitions, error) {
	if rootName == "" {
		rootName = c.schema.Title
		if rootName == "" {
			rootName = "Root"
		}
	}

	name := c.names.Unique(naming.TypeName(rootName))
	if err := c.convertNamed(c.schema, name, true); err != nil {
		return models.TypeDefinitions{}, fmt.Errorf("failed to convert schema: %w", err)
	}

	return models.TypeDefinitions{
		Interfaces: c.interfaces,
		Aliases:    c.aliases,
	}, nil
}

// convertNamed declares schema under an already reserved name
func (c *Converter) convertNamed(schema *Schema, name string, isRoot bool) error {
	resolved := c.flatten(schema)
	if c.isObject(resolved) && resolved.Properties.Len() > 0 && !resolved.Nullable {
		return c.convertObject(resolved, name, isRoot)
	}

	typ, err := c.convertSchema(schema, name)
	if err != nil {
		return err
	}
	c.aliases = append(c.aliases, models.TypeAliasDef{
		Name:  name,
		Type:  typ,
		JSDoc: c.describe(schema),
	})
	return nil
}

// flatten merges allOf so object detection sees the combined properties
func (c *Converter) flatten(schema *Schema) *Schema {
	if len(schema.AllOf) > 0 {
		return c.mergeAllOf(schema.AllOf, schema)
	}
	return schema
}

func (c *Converter) isObject(schema *Schema) bool {
	if schema.Ref != "" || len(schema.Enum) > 0 || schema.Const.Kind != 0 || len(schema.AnyOf) > 0 || len(schema.OneOf) > 0 {
		return false
	}
	types := schema.Type.nonNull()
	if len(types) > 1 || schema.Type.IsNullable() {
		return false
	}
	if len(types) == 1 {
		return types[0] == "object"
	}
	return schema.Properties.Len() > 0
}

// convertSchema recursively converts a schema to a TypeScript type expression
func (c *Converter) convertSchema(schema *Schema, suggestedName string) (string, error) {
	// Handle $ref
	if schema.Ref != "" {
		return c.resolveRef(schema.Ref)
	}

	// Handle allOf by merging schemas
	if len(schema.AllOf) > 0 {
		merged := c.mergeAllOf(schema.AllOf, schema)
		return c.convertSchema(merged, suggestedName)
	}

	typ, err := c.convertBase(schema, suggestedName)
	if err != nil {
		return "", err
	}

	if schema.Nullable || schema.Type.IsNullable() {
		typ = addNull(typ)
	}
	return typ, nil
}

func (c *Converter) convertBase(schema *Schema, suggestedName string) (string, error) {
	if schema.Const.Kind != 0 {
		return c.literal(&schema.Const)
	}

	if len(schema.Enum) > 0 {
		values := make([]string, 0, len(schema.Enum))
		for _, v := range schema.Enum {
			values = appendUnique(values, c.literalValue(v))
		}
		return strings.Join(values, " | "), nil
	}

	variants := make([]*Schema, 0, len(schema.AnyOf)+len(schema.OneOf))
	variants = append(variants, schema.AnyOf...)
	variants = append(variants, schema.OneOf...)
	if len(variants) > 0 {
		types := make([]string, 0, len(variants))
		for i, variant := range variants {
			typ, err := c.convertSchema(variant, fmt.Sprintf("%sOption%d", suggestedName, i+1))
			if err != nil {
				return "", err
			}
			types = appendUnique(types, typ)
		}
		return strings.Join(types, " | "), nil
	}

	types := schema.Type.nonNull()
	if len(types) == 0 {
		// Infer type from properties
		switch {
		case schema.Properties.Len() > 0 || schema.AdditionalProperties != nil:
			types = []string{"object"}
		case schema.Items != nil:
			types = []string{"array"}
		case schema.Type.IsNullable():
			return "null", nil
		default:
			return "unknown", nil
		}
	}

	union := make([]string, 0, len(types))
	for _, t := range types {
		typ, err := c.convertPrimitive(t, schema, suggestedName)
		if err != nil {
			return "", err
		}
		union = appendUnique(union, typ)
	}
	return strings.Join(union, " | "), nil
}

func (c *Converter) convertPrimitive(schemaType string, schema *Schema, suggestedName string) (string, error) {
	switch schemaType {
	case "object":
		if schema.Properties.Len() > 0 {
			name := c.names.Unique(suggestedName)
			if err := c.convertObject(schema, name, false); err != nil {
				return "", err
			}
			return name, nil
		}
		return c.convertRecord(schema, suggestedName)
	case "array":
		return c.convertArray(schema, suggestedName)
	case "string":
		return "string", nil
	case "integer", "number":
		return "number", nil
	case "boolean":
		return "boolean", nil
	case "null":
		return "null", nil
	default:
		return "unknown", nil
	}
}

// convertObject converts an object schema to an interface
func (c *Converter) convertObject(schema *Schema, name string, isRoot bool) error {
	// Build required field set
	requiredSet := make(map[string]bool)
	for _, r := range schema.Required {
		requiredSet[r] = true
	}

	fields := make(models.TypeFields, 0, schema.Properties.Len())
	for propName, propSchema := range schema.Properties.AllFromFront() {
		nestedName := name + naming.TypeName(propName)
		typ, err := c.convertSchema(propSchema, nestedName)
		if err != nil {
			return fmt.Errorf("failed to convert property %s: %w", propName, err)
		}

		fields = append(fields, models.TypeField{
			Name:     propName,
			Type:     typ,
			Optional: !requiredSet[propName],
			JSDoc:    c.describe(propSchema),
		})
	}

	c.interfaces = append(c.interfaces, models.InterfaceDef{
		Name:   name,
		Fields: fields,
		JSDoc:  c.describe(schema),
		IsRoot: isRoot,
	})
	return nil
}

// convertRecord converts a property-less object to a Record type
func (c *Converter) convertRecord(schema *Schema, suggestedName string) (string, error) {
	ap := schema.AdditionalProperties
	switch {
	case ap == nil:
		return "Record<string, unknown>", nil
	case ap.Schema != nil:
		typ, err := c.convertSchema(ap.Schema, naming.Singularize(suggestedName)+"Value")
		if err != nil {
			return "", fmt.Errorf("failed to convert additionalProperties: %w", err)
		}
		return "Record<string, " + typ + ">", nil
	case !ap.Allowed:
		return "Record<string, never>", nil
	default:
		return "Record<string, unknown>", nil
	}
}

// convertArray converts an array schema to T[]
func (c *Converter) convertArray(schema *Schema, suggestedName string) (string, error) {
	if schema.Items == nil {
		return "unknown[]", nil
	}

	elementType, err := c.convertSchema(schema.Items, naming.Singularize(suggestedName))
	if err != nil {
		return "", fmt.Errorf("failed to convert array items: %w", err)
	}
	return ArrayOf(elementType), nil
}

// resolveRef resolves a local $ref to the name of its declaration
func (c *Converter) resolveRef(ref string) (string, error) {
	// Check cache first to avoid duplicate declarations
	if cached, ok := c.resolvedRefs[ref]; ok {
		return cached, nil
	}

	defName, ok := localRef(ref)
	if !ok {
		return "", errors.NewAnalysisError("external $ref not supported: "+ref, errors.ErrUnresolvedRef)
	}
	defSchema, ok := c.definitions[defName]
	if !ok {
		return "", errors.NewAnalysisError("unresolved $ref: "+ref, errors.ErrUnresolvedRef)
	}

	// Register before converting so recursive references terminate
	name := c.names.Unique(naming.TypeName(defName))
	c.resolvedRefs[ref] = name
	if err := c.convertNamed(defSchema, name, false); err != nil {
		return "", err
	}
	return name, nil
}

func localRef(ref string) (string, bool) {
	for _, prefix := range []string{"#/definitions/", "#/$defs/"} {
		if strings.HasPrefix(ref, prefix) {
			return strings.TrimPrefix(ref, prefix), true
		}
	}
	return "", false
}

// mergeAllOf merges multiple schemas from allOf into parent
func (c *Converter) mergeAllOf(schemas []*Schema, parent *Schema) *Schema {
	merged := &Schema{
		Title:       parent.Title,
		Description: parent.Description,
		Properties:  Properties{orderedmap.NewOrderedMap[string, *Schema]()},
		Required:    append([]string{}, parent.Required...),
		Nullable:    parent.Nullable,
	}
	if parent.Properties.Len() > 0 {
		for k, v := range parent.Properties.AllFromFront() {
			merged.Properties.Set(k, v)
		}
	}

	for _, s := range schemas {
		// Resolve refs first
		resolved := s
		if name, ok := localRef(s.Ref); ok {
			if defSchema, ok := c.definitions[name]; ok {
				resolved = defSchema
			}
		}
		resolved = c.flatten(resolved)

		// Merge properties
		if resolved.Properties.Len() > 0 {
			for k, v := range resolved.Properties.AllFromFront() {
				merged.Properties.Set(k, v)
			}
		}

		// Merge required
		merged.Required = append(merged.Required, resolved.Required...)

		// Take first non-empty title/description
		if merged.Title == "" && resolved.Title != "" {
			merged.Title = resolved.Title
		}
		if merged.Description == "" && resolved.Description != "" {
			merged.Description = resolved.Description
		}
	}

	merged.Type = SchemaType{Types: []string{"object"}}
	return merged
}

// describe builds the JSDoc for a schema from its description, format,
// default and deprecation
func (c *Converter) describe(schema *Schema) *models.JSDoc {
	doc := &models.JSDoc{}
	if schema.Description != "" {
		doc.Lines = strings.Split(strings.TrimSpace(schema.Description), "\n")
	}
	if schema.Format != "" {
		doc.WithTag(models.JSDocTag{Tag: "format", Text: schema.Format})
	}
	if schema.Default != nil {
		doc.WithTag(models.JSDocTag{Tag: "default", Text: c.literalValue(schema.Default)})
	}
	if schema.Deprecated {
		doc.WithTag(models.JSDocTag{Tag: "deprecated"})
	}
	if len(doc.Lines) == 0 && len(doc.Tags) == 0 {
		return nil
	}
	return doc
}

// literal renders a const node as a literal type
func (c *Converter) literal(node *yaml.Node) (string, error) {
	var v any
	if err := node.Decode(&v); err != nil {
		return "", fmt.Errorf("invalid const: %w", err)
	}
	return c.literalValue(v), nil
}

// literalValue renders a decoded scalar as a TypeScript literal type.
// Non-scalar values render as JSON object or array literals.
func (c *Converter) literalValue(v any) string {
	switch val := v.(type) {
	case nil:
		return "null"
	case string:
		return syntax.GenString(val, c.codegen)
	case bool:
		return strconv.FormatBool(val)
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case uint64:
		return strconv.FormatUint(val, 10)
	case float64:
		return serializer.FormatNumber(val, 64)
	case []any:
		return serializer.GenArray(val, "", serializer.WithPreserveTypes(true), serializer.WithCodegenOptions(c.codegen))
	case map[string]any:
		return serializer.GenObject(val, "", serializer.WithPreserveTypes(true), serializer.WithCodegenOptions(c.codegen))
	default:
		return fmt.Sprint(val)
	}
}

// ArrayOf renders the array type of element, parenthesizing unions
func ArrayOf(element string) string {
	if strings.Contains(element, " | ") || strings.Contains(element, " & ") {
		return "(" + element + ")[]"
	}
	return element + "[]"
}

func addNull(typ string) string {
	for _, part := range strings.Split(typ, " | ") {
		if part == "null" {
			return typ
		}
	}
	return typ + " | null"
}

func appendUnique(types []string, typ string) []string {
	for _, t := range types {
		if t == typ {
			return types
		}
	}
	return append(types, typ)
}
