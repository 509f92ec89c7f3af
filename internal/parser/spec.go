package parser

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/mcncl/tsgen/internal/errors"
	"github.com/mcncl/tsgen/internal/models"
)

const (
	preserveTypesKey = "preserve_types"
	typeKey          = "$type"
	jsdocKey         = "$jsdoc"
)

// invalid wraps ErrInvalidDocument with the offending line.
func invalid(node *yaml.Node, format string, args ...any) error {
	return fmt.Errorf("%w: line %d: %s", errors.ErrInvalidDocument, node.Line, fmt.Sprintf(format, args...))
}

// DecodeValueSpec decodes a value expression. A scalar is raw code; a
// mapping names exactly one renderer and may set preserve_types.
func DecodeValueSpec(node *yaml.Node) (models.ValueSpec, error) {
	if node == nil || node.Kind == 0 {
		return models.ValueSpec{}, fmt.Errorf("%w: value is required", errors.ErrInvalidDocument)
	}
	if node.Kind == yaml.AliasNode {
		return DecodeValueSpec(node.Alias)
	}

	switch node.Kind {
	case yaml.ScalarNode:
		return models.ValueSpec{Kind: models.ValueCode, Code: node.Value}, nil
	case yaml.MappingNode:
	default:
		return models.ValueSpec{}, invalid(node, "value must be code or a mapping with one of %s", valueKindList())
	}

	var spec models.ValueSpec
	var payload *yaml.Node
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i].Value, node.Content[i+1]

		if key == preserveTypesKey {
			var preserve bool
			if err := value.Decode(&preserve); err != nil {
				return models.ValueSpec{}, invalid(value, "preserve_types must be a boolean")
			}
			spec.PreserveTypes = &preserve
			continue
		}

		if !isValueKind(key) {
			return models.ValueSpec{}, invalid(node.Content[i], "unknown value key %q", key)
		}
		if payload != nil {
			return models.ValueSpec{}, invalid(node.Content[i], "value sets both %q and %q", spec.Kind, key)
		}
		spec.Kind = models.ValueKind(key)
		payload = value
	}

	if payload == nil {
		return models.ValueSpec{}, invalid(node, "value mapping needs one of %s", valueKindList())
	}
	if err := decodePayload(&spec, payload); err != nil {
		return models.ValueSpec{}, err
	}
	return spec, nil
}

func decodePayload(spec *models.ValueSpec, payload *yaml.Node) error {
	switch spec.Kind {
	case models.ValueObject:
		if payload.Kind != yaml.MappingNode {
			return invalid(payload, "object value must be a mapping")
		}
		data, err := NodeToValue(payload)
		if err != nil {
			return err
		}
		spec.Data = data

	case models.ValueArray, models.ValueSet:
		if payload.Kind != yaml.SequenceNode {
			return invalid(payload, "%s value must be a sequence", spec.Kind)
		}
		data, err := NodeToValue(payload)
		if err != nil {
			return err
		}
		spec.Data = data

	case models.ValueFields:
		if err := payload.Decode(&spec.Fields); err != nil {
			return invalid(payload, "fields must be a list of name/value pairs: %v", err)
		}

	case models.ValueMap:
		entries, err := decodeMapEntries(payload)
		if err != nil {
			return err
		}
		spec.Entries = entries

	case models.ValueLiteral:
		fields, err := decodeLiteral(payload)
		if err != nil {
			return err
		}
		spec.Literal = fields

	case models.ValueString:
		if payload.Kind != yaml.ScalarNode {
			return invalid(payload, "string value must be a scalar")
		}
		spec.Text = payload.Value

	case models.ValueTemplate:
		if err := payload.Decode(&spec.Parts); err != nil {
			return invalid(payload, "template must be a list of strings")
		}

	case models.ValueArrow:
		spec.Arrow = &models.ArrowSpec{}
		if err := payload.Decode(spec.Arrow); err != nil {
			return invalid(payload, "invalid arrow function: %v", err)
		}

	case models.ValueDynamicImport:
		spec.Import = &models.DynamicImportSpec{}
		if payload.Kind == yaml.ScalarNode {
			spec.Import.From = payload.Value
			return nil
		}
		if err := payload.Decode(spec.Import); err != nil {
			return invalid(payload, "invalid dynamic import: %v", err)
		}
		if spec.Import.From == "" {
			return invalid(payload, "dynamic import requires from")
		}
	}
	return nil
}

// decodeMapEntries accepts a list of [key, value] pairs or a mapping.
func decodeMapEntries(node *yaml.Node) ([]models.MapEntry, error) {
	switch node.Kind {
	case yaml.MappingNode:
		entries := make([]models.MapEntry, 0, len(node.Content)/2)
		for i := 0; i+1 < len(node.Content); i += 2 {
			key, err := NodeToValue(node.Content[i])
			if err != nil {
				return nil, err
			}
			value, err := NodeToValue(node.Content[i+1])
			if err != nil {
				return nil, err
			}
			entries = append(entries, models.MapEntry{Key: key, Value: value})
		}
		return entries, nil

	case yaml.SequenceNode:
		entries := make([]models.MapEntry, 0, len(node.Content))
		for _, pair := range node.Content {
			if pair.Kind != yaml.SequenceNode || len(pair.Content) != 2 {
				return nil, invalid(pair, "map entries must be [key, value] pairs")
			}
			key, err := NodeToValue(pair.Content[0])
			if err != nil {
				return nil, err
			}
			value, err := NodeToValue(pair.Content[1])
			if err != nil {
				return nil, err
			}
			entries = append(entries, models.MapEntry{Key: key, Value: value})
		}
		return entries, nil
	}

	return nil, invalid(node, "map value must be a mapping or a list of pairs")
}

// decodeLiteral reads shorthand names, "...spread" strings and single-pair
// mappings.
func decodeLiteral(node *yaml.Node) ([]models.LiteralField, error) {
	if node.Kind != yaml.SequenceNode {
		return nil, invalid(node, "literal value must be a sequence")
	}

	fields := make([]models.LiteralField, 0, len(node.Content))
	for _, item := range node.Content {
		switch item.Kind {
		case yaml.ScalarNode:
			if rest, ok := strings.CutPrefix(item.Value, models.SpreadKey); ok {
				fields = append(fields, models.Spread(rest))
			} else {
				fields = append(fields, models.Shorthand(item.Value))
			}
		case yaml.MappingNode:
			if len(item.Content) != 2 || item.Content[1].Kind != yaml.ScalarNode {
				return nil, invalid(item, "literal pairs must be a single key with a code value")
			}
			fields = append(fields, models.Pair(item.Content[0].Value, item.Content[1].Value))
		default:
			return nil, invalid(item, "unsupported literal entry")
		}
	}
	return fields, nil
}

// DecodeNames reads import/export bindings. A scalar or a {name, as}
// mapping is a single binding; a sequence is a braced list. An absent node
// returns nil.
func DecodeNames(node *yaml.Node) ([]models.ESMName, bool, error) {
	if node == nil || node.Kind == 0 {
		return nil, false, nil
	}

	switch node.Kind {
	case yaml.ScalarNode:
		return []models.ESMName{{Name: node.Value}}, true, nil
	case yaml.MappingNode:
		var name models.ESMName
		if err := node.Decode(&name); err != nil || name.Name == "" {
			return nil, false, invalid(node, "binding requires a name")
		}
		return []models.ESMName{name}, true, nil
	case yaml.SequenceNode:
		names := make([]models.ESMName, 0, len(node.Content))
		for _, item := range node.Content {
			if item.Kind == yaml.ScalarNode {
				names = append(names, models.ESMName{Name: item.Value})
				continue
			}
			var name models.ESMName
			if err := item.Decode(&name); err != nil || name.Name == "" {
				return nil, false, invalid(item, "binding requires a name")
			}
			names = append(names, name)
		}
		return names, false, nil
	}

	return nil, false, invalid(node, "names must be a string, a mapping or a list")
}

// DecodeMembers reads enum members from a mapping of name to value or a
// list of names and {name, value} mappings. A null value auto-increments.
func DecodeMembers(node *yaml.Node) ([]models.EnumMember, error) {
	if node == nil || node.Kind == 0 {
		return nil, nil
	}

	switch node.Kind {
	case yaml.MappingNode:
		members := make([]models.EnumMember, 0, len(node.Content)/2)
		for i := 0; i+1 < len(node.Content); i += 2 {
			value, err := memberValue(node.Content[i+1])
			if err != nil {
				return nil, err
			}
			members = append(members, models.EnumMember{Name: node.Content[i].Value, Value: value})
		}
		return members, nil

	case yaml.SequenceNode:
		members := make([]models.EnumMember, 0, len(node.Content))
		for _, item := range node.Content {
			if item.Kind == yaml.ScalarNode {
				members = append(members, models.EnumMember{Name: item.Value})
				continue
			}
			var raw struct {
				Name  string    `yaml:"name"`
				Value yaml.Node `yaml:"value"`
			}
			if err := item.Decode(&raw); err != nil || raw.Name == "" {
				return nil, invalid(item, "enum member requires a name")
			}
			value, err := memberValue(&raw.Value)
			if err != nil {
				return nil, err
			}
			members = append(members, models.EnumMember{Name: raw.Name, Value: value})
		}
		return members, nil
	}

	return nil, invalid(node, "members must be a mapping or a list")
}

func memberValue(node *yaml.Node) (any, error) {
	if node.Kind == 0 {
		return nil, nil
	}
	if node.Kind != yaml.ScalarNode {
		return nil, invalid(node, "enum values must be strings or numbers")
	}
	value, err := NodeToValue(node)
	if err != nil {
		return nil, err
	}
	if _, ok := value.(bool); ok {
		return nil, invalid(node, "enum values must be strings or numbers")
	}
	return value, nil
}

// DecodeShape reads an object type. Scalar values are type expressions,
// mappings are nested objects, and a mapping with `$type` is a property
// with documentation. `$jsdoc` documents the enclosing property.
func DecodeShape(node *yaml.Node) (models.TypeObject, error) {
	if node == nil || node.Kind == 0 {
		return nil, nil
	}
	if node.Kind != yaml.MappingNode {
		return nil, invalid(node, "shape must be a mapping")
	}

	shape := make(models.TypeObject, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i].Value, node.Content[i+1]
		if key == jsdocKey {
			continue
		}

		prop := models.TypeProperty{Key: key}
		switch value.Kind {
		case yaml.ScalarNode:
			prop.Type = value.Value
		case yaml.MappingNode:
			doc, err := shapeDoc(value)
			if err != nil {
				return nil, err
			}
			prop.JSDoc = doc

			if typ := mappingValue(value, typeKey); typ != nil {
				prop.Type = typ.Value
				break
			}
			nested, err := DecodeShape(value)
			if err != nil {
				return nil, err
			}
			prop.Nested = nested
		default:
			return nil, invalid(value, "property %q must be a type or a nested shape", key)
		}
		shape = append(shape, prop)
	}
	return shape, nil
}

func shapeDoc(node *yaml.Node) (*models.JSDoc, error) {
	docNode := mappingValue(node, jsdocKey)
	if docNode == nil {
		return nil, nil
	}
	doc := &models.JSDoc{}
	if err := docNode.Decode(doc); err != nil {
		return nil, invalid(docNode, "invalid jsdoc: %v", err)
	}
	return doc, nil
}

func mappingValue(node *yaml.Node, key string) *yaml.Node {
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == key {
			return node.Content[i+1]
		}
	}
	return nil
}

func isValueKind(key string) bool {
	for _, k := range models.ValueKinds {
		if string(k) == key {
			return true
		}
	}
	return false
}

func valueKindList() string {
	names := make([]string, len(models.ValueKinds))
	for i, k := range models.ValueKinds {
		names[i] = string(k)
	}
	return strings.Join(names, ", ")
}
