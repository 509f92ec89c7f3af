package parser

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	stderrors "errors"

	"github.com/elliotchance/orderedmap/v3"
	"gopkg.in/yaml.v3"

	"github.com/mcncl/tsgen/internal/errors"
	"github.com/mcncl/tsgen/internal/models"
)

// Local tags understood in value payloads.
const (
	// TagCode marks a scalar as raw source, e.g. `handler: !code () => {}`.
	TagCode = "!code"
	// TagUndefined produces the undefined value.
	TagUndefined = "!undefined"
)

// ParseValue decodes bare YAML or JSON data into a RawValue. Mappings keep
// their key order.
func ParseValue(reader io.Reader) (models.RawValue, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, errors.NewInputError("failed to read input", err)
	}
	return parseValueBytes(data)
}

// ParseValueFile decodes bare data from a file path
func ParseValueFile(filePath string) (models.RawValue, error) {
	data, err := readFile(filePath)
	if err != nil {
		return nil, err
	}
	return parseValueBytes(data)
}

func parseValueBytes(data []byte) (models.RawValue, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, errors.NewParsingError("input is empty or contains only whitespace", errors.ErrEmptyInput)
	}

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	var root yaml.Node
	if err := decoder.Decode(&root); err != nil {
		if stderrors.Is(err, io.EOF) {
			return nil, errors.NewParsingError("input contains no value", errors.ErrEmptyInput)
		}
		return nil, errors.NewParsingError(fmt.Sprintf("syntax error: %v", err), errors.ErrInvalidDocument)
	}

	value, err := NodeToValue(&root)
	if err != nil {
		return nil, errors.NewParsingError("failed to decode value", err)
	}
	return value, nil
}

// NodeToValue converts a YAML node to a RawValue: mappings become
// *orderedmap.OrderedMap[string, any], sequences []any, and scalars their
// typed Go value. A nil or empty node yields nil.
func NodeToValue(node *yaml.Node) (models.RawValue, error) {
	if node == nil {
		return nil, nil
	}

	switch node.Kind {
	case 0:
		return nil, nil
	case yaml.DocumentNode:
		if len(node.Content) == 0 {
			return nil, nil
		}
		return NodeToValue(node.Content[0])
	case yaml.AliasNode:
		return NodeToValue(node.Alias)
	case yaml.SequenceNode:
		items := make([]any, 0, len(node.Content))
		for _, child := range node.Content {
			v, err := NodeToValue(child)
			if err != nil {
				return nil, err
			}
			items = append(items, v)
		}
		return items, nil
	case yaml.MappingNode:
		m := orderedmap.NewOrderedMap[string, any]()
		if err := mergeMapping(m, node); err != nil {
			return nil, err
		}
		return m, nil
	case yaml.ScalarNode:
		return scalarValue(node)
	}

	return nil, fmt.Errorf("line %d: unsupported node kind %d", node.Line, node.Kind)
}

// mergeMapping copies the pairs of node into m, expanding `<<` merge keys.
func mergeMapping(m *orderedmap.OrderedMap[string, any], node *yaml.Node) error {
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], node.Content[i+1]

		if key.ShortTag() == "!!merge" {
			if err := mergeSources(m, key, value); err != nil {
				return err
			}
			continue
		}

		if key.Kind != yaml.ScalarNode {
			return fmt.Errorf("line %d: mapping keys must be scalars", key.Line)
		}
		v, err := NodeToValue(value)
		if err != nil {
			return err
		}
		m.Set(key.Value, v)
	}
	return nil
}

// mergeSources applies the mapping or sequence of mappings named by a `<<`
// key. Within a sequence, earlier mappings win.
func mergeSources(m *orderedmap.OrderedMap[string, any], key, value *yaml.Node) error {
	value = resolveAlias(value)
	switch value.Kind {
	case yaml.MappingNode:
		return mergeMapping(m, value)
	case yaml.SequenceNode:
		merged := orderedmap.NewOrderedMap[string, any]()
		for _, item := range value.Content {
			item = resolveAlias(item)
			if item.Kind != yaml.MappingNode {
				return fmt.Errorf("line %d: merge sequence may only contain mappings", item.Line)
			}
			source := orderedmap.NewOrderedMap[string, any]()
			if err := mergeMapping(source, item); err != nil {
				return err
			}
			for k, v := range source.AllFromFront() {
				if _, ok := merged.Get(k); !ok {
					merged.Set(k, v)
				}
			}
		}
		for k, v := range merged.AllFromFront() {
			m.Set(k, v)
		}
		return nil
	}
	return fmt.Errorf("line %d: merge key requires a mapping or a sequence of mappings", key.Line)
}

func resolveAlias(node *yaml.Node) *yaml.Node {
	for node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}
	return node
}

func scalarValue(node *yaml.Node) (models.RawValue, error) {
	switch node.Tag {
	case TagCode:
		return models.Code(node.Value), nil
	case TagUndefined:
		return models.Undefined, nil
	}

	switch node.ShortTag() {
	case "!!null":
		return nil, nil
	case "!!bool":
		var b bool
		if err := node.Decode(&b); err != nil {
			return nil, err
		}
		return b, nil
	case "!!int":
		var i int64
		if err := node.Decode(&i); err != nil {
			// Out of int64 range; keep the digits.
			return json.Number(node.Value), nil
		}
		return i, nil
	case "!!float":
		var f float64
		if err := node.Decode(&f); err != nil {
			return nil, err
		}
		return f, nil
	case "!!str", "!!timestamp", "!!binary":
		return node.Value, nil
	}

	return nil, fmt.Errorf("line %d: unsupported tag %q", node.Line, node.Tag)
}
