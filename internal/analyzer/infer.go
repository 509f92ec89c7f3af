package analyzer

import (
	"encoding/json"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/elliotchance/orderedmap/v3"

	"github.com/mcncl/tsgen/internal/models"
	"github.com/mcncl/tsgen/internal/naming"
	"github.com/mcncl/tsgen/internal/schema"
)

type object = *orderedmap.OrderedMap[string, any]

// String formats reported as a @format tag on inferred properties
// (ordered by specificity - most specific first)
var stringFormats = []struct {
	name  string
	regex *regexp.Regexp
}{
	{"uuid", regexp.MustCompile(`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$`)},
	{"date-time", regexp.MustCompile(`^\d{4}-\d{2}-\d{2}[T ]\d{2}:\d{2}:\d{2}(\.\d+)?(Z|[+-]\d{2}:?\d{2})?$`)},
	{"date", regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)},
	{"email", regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)},
	{"uri", regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9+.-]*://\S+$`)},
}

// inference holds the state of one Infer call
type inference struct {
	a          *Analyzer
	names      *naming.Registry
	interfaces []models.InterfaceDef
}

// Infer derives interfaces from a sample value. An object root becomes the
// root interface, an array of objects becomes the root interface plus a
// `<Root>List` alias, and anything else becomes a type alias.
func (a *Analyzer) Infer(sample models.RawValue, rootName string) (models.TypeDefinitions, error) {
	inf := &inference{a: a, names: naming.NewRegistry()}

	if rootName == "" {
		rootName = a.config.RootName()
	}
	// Ensure the root name is a valid identifier and PascalCase
	rootName = inf.names.Unique(naming.TypeName(rootName))

	var aliases []models.TypeAliasDef
	if obj, ok := asObject(sample); ok {
		if err := inf.addRoot([]object{obj}, rootName); err != nil {
			return models.TypeDefinitions{}, err
		}
	} else if objs, ok := asObjects(sample); ok {
		if err := inf.addRoot(objs, rootName); err != nil {
			return models.TypeDefinitions{}, err
		}
		listName := inf.names.Unique(rootName + "List")
		aliases = append(aliases, models.TypeAliasDef{Name: listName, Type: rootName + "[]"})
	} else {
		typ, err := inf.typeOf(sample, rootName)
		if err != nil {
			return models.TypeDefinitions{}, fmt.Errorf("failed to analyze root value: %w", err)
		}
		aliases = append(aliases, models.TypeAliasDef{Name: rootName, Type: typ})
	}

	return models.TypeDefinitions{Interfaces: inf.interfaces, Aliases: aliases}, nil
}

func (inf *inference) addRoot(objs []object, name string) error {
	fields, err := inf.fields(objs, name)
	if err != nil {
		return fmt.Errorf("failed to analyze root value: %w", err)
	}
	inf.interfaces = append(inf.interfaces, models.InterfaceDef{Name: name, Fields: fields, IsRoot: true})
	return nil
}

// typeOf determines the TypeScript type of a single value, declaring
// interfaces for nested objects as needed
func (inf *inference) typeOf(value models.RawValue, suggestedName string) (string, error) {
	switch v := value.(type) {
	case nil:
		return "null", nil
	case bool:
		return "boolean", nil
	case string:
		return "string", nil
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64, json.Number:
		return "number", nil
	case models.Code:
		return "unknown", nil
	case []any:
		return inf.arrayType(v, suggestedName)
	}

	if value == models.Undefined {
		return "undefined", nil
	}
	if obj, ok := asObject(value); ok {
		return inf.objectType([]object{obj}, suggestedName)
	}
	return "", fmt.Errorf("unexpected value type: %T", value)
}

// arrayType infers the element type of an array. Object elements are
// merged into a single interface and mixed elements become a union.
func (inf *inference) arrayType(arr []any, suggestedName string) (string, error) {
	if len(arr) == 0 {
		return "unknown[]", nil
	}

	elementName := naming.Singularize(suggestedName)

	if objs, ok := asObjects(arr); ok {
		name, err := inf.objectType(objs, elementName)
		if err != nil {
			return "", err
		}
		return schema.ArrayOf(name), nil
	}

	var types []string
	var objs []object
	for i, element := range arr {
		if obj, ok := asObject(element); ok {
			objs = append(objs, obj)
			continue
		}
		typ, err := inf.typeOf(element, elementName)
		if err != nil {
			return "", fmt.Errorf("failed to analyze element %d of array '%s': %w", i, suggestedName, err)
		}
		types = appendType(types, typ)
	}
	if len(objs) > 0 {
		name, err := inf.objectType(objs, elementName)
		if err != nil {
			return "", err
		}
		types = appendType(types, name)
	}

	return schema.ArrayOf(strings.Join(types, " | ")), nil
}

// objectType merges objs into one interface and returns its name
func (inf *inference) objectType(objs []object, suggestedName string) (string, error) {
	fields, err := inf.fields(objs, suggestedName)
	if err != nil {
		return "", err
	}
	return inf.findOrAdd(fields, suggestedName), nil
}

// fields builds the properties of the merged objects in first-seen key
// order. Keys absent from some objects are optional when configured.
func (inf *inference) fields(objs []object, structName string) (models.TypeFields, error) {
	merged := inf.mergeValues(objs)
	cfg := inf.a.config

	fields := make(models.TypeFields, 0, merged.Len())
	for key, values := range merged.AllFromFront() {
		field := models.TypeField{
			Name:     key,
			Optional: cfg.Inference.OptionalMissing && len(values) < len(objs),
		}

		// Check for custom type mapping first
		if mapping, found := cfg.FindTypeMapping(key); found {
			field.Type = mapping.Type
			if mapping.Comment != "" {
				field.JSDoc = models.NewJSDoc(mapping.Comment)
			}
			fields = append(fields, field)
			continue
		}

		typ, err := inf.valuesType(values, structName+naming.TypeName(key))
		if err != nil {
			return nil, fmt.Errorf("failed to analyze field '%s' in object '%s': %w", key, structName, err)
		}
		field.Type = typ
		if format := commonFormat(values); format != "" {
			field.JSDoc = (&models.JSDoc{}).WithTag(models.JSDocTag{Tag: "format", Text: format})
		}
		fields = append(fields, field)
	}
	return fields, nil
}

// mergeValues groups the values of every key across objs
func (inf *inference) mergeValues(objs []object) *orderedmap.OrderedMap[string, []any] {
	merged := orderedmap.NewOrderedMap[string, []any]()
	for _, obj := range objs {
		for key, value := range obj.AllFromFront() {
			values, _ := merged.Get(key)
			merged.Set(key, append(values, value))
		}
	}
	return merged
}

// valuesType infers the type shared by all samples of one key
func (inf *inference) valuesType(values []any, suggestedName string) (string, error) {
	if objs, ok := asObjects(values); ok {
		return inf.objectType(objs, suggestedName)
	}

	// Arrays across samples are analyzed as one array
	var elements []any
	var types []string
	sawArray := false
	for _, value := range values {
		if arr, ok := value.([]any); ok {
			sawArray = true
			elements = append(elements, arr...)
			continue
		}
		typ, err := inf.typeOf(value, suggestedName)
		if err != nil {
			return "", err
		}
		types = appendType(types, typ)
	}
	if sawArray {
		typ, err := inf.arrayType(elements, suggestedName)
		if err != nil {
			return "", err
		}
		types = appendType(types, typ)
	}

	return strings.Join(types, " | "), nil
}

// findOrAdd returns the name of an existing equivalent interface or
// declares a new one under a unique name
func (inf *inference) findOrAdd(fields models.TypeFields, suggestedName string) string {
	for _, existing := range inf.interfaces {
		if !existing.IsRoot && equivalentFields(existing.Fields, fields) {
			return existing.Name
		}
	}

	name := inf.names.Unique(suggestedName)
	inf.interfaces = append(inf.interfaces, models.InterfaceDef{Name: name, Fields: fields})
	return name
}

// equivalentFields compares two property lists regardless of order
func equivalentFields(a, b models.TypeFields) bool {
	if len(a) != len(b) {
		return false
	}

	byName := make(map[string]models.TypeField, len(a))
	for _, f := range a {
		byName[f.Name] = f
	}
	for _, f := range b {
		other, ok := byName[f.Name]
		if !ok || other.Type != f.Type || other.Optional != f.Optional {
			return false
		}
	}
	return true
}

// commonFormat returns the string format shared by every sample, if any
func commonFormat(values []any) string {
	format := ""
	for _, value := range values {
		s, ok := value.(string)
		if !ok {
			return ""
		}
		f := stringFormat(s)
		if f == "" || (format != "" && f != format) {
			return ""
		}
		format = f
	}
	return format
}

func stringFormat(s string) string {
	for _, f := range stringFormats {
		if f.regex.MatchString(s) {
			return f.name
		}
	}
	return ""
}

// asObject accepts ordered maps and plain string-keyed maps, the latter in
// sorted key order
func asObject(value any) (object, bool) {
	switch v := value.(type) {
	case object:
		return v, v != nil
	case map[string]any:
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		m := orderedmap.NewOrderedMap[string, any]()
		for _, k := range keys {
			m.Set(k, v[k])
		}
		return m, true
	}
	return nil, false
}

// asObjects reports whether value is a non-empty list of objects
func asObjects(value any) ([]object, bool) {
	arr, ok := value.([]any)
	if !ok || len(arr) == 0 {
		return nil, false
	}

	objs := make([]object, 0, len(arr))
	for _, element := range arr {
		obj, ok := asObject(element)
		if !ok {
			return nil, false
		}
		objs = append(objs, obj)
	}
	return objs, true
}

func appendType(types []string, typ string) []string {
	for _, t := range types {
		if t == typ {
			return types
		}
	}
	return append(types, typ)
}
