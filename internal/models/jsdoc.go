package models

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// JSDoc is a documentation comment: free-form lines followed by tags.
type JSDoc struct {
	Lines []string
	Tags  []JSDocTag
}

// JSDocTag is a single block tag such as `@param {number} x - count`.
type JSDocTag struct {
	Tag  string
	Type string
	Name string
	Text string
}

// NewJSDoc creates a JSDoc from plain lines.
func NewJSDoc(lines ...string) *JSDoc {
	return &JSDoc{Lines: lines}
}

// WithTag appends a tag and returns the receiver.
func (d *JSDoc) WithTag(tag JSDocTag) *JSDoc {
	d.Tags = append(d.Tags, tag)
	return d
}

// String renders the tag without the comment decoration.
func (t JSDocTag) String() string {
	var b strings.Builder
	b.WriteString("@")
	b.WriteString(t.Tag)
	if t.Type != "" {
		b.WriteString(" {" + t.Type + "}")
	}
	if t.Name != "" {
		b.WriteString(" " + t.Name)
	}
	if t.Text != "" {
		if t.Name != "" {
			b.WriteString(" - ")
		} else {
			b.WriteString(" ")
		}
		b.WriteString(t.Text)
	}
	return b.String()
}

// AllLines returns description lines followed by rendered tags.
func (d *JSDoc) AllLines() []string {
	if d == nil {
		return nil
	}
	lines := make([]string, 0, len(d.Lines)+len(d.Tags))
	lines = append(lines, d.Lines...)
	for _, tag := range d.Tags {
		lines = append(lines, tag.String())
	}
	return lines
}

// UnmarshalYAML accepts a string, a list of strings, or a mapping of
// description and tags. Mapping order is kept for tags.
func (d *JSDoc) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		d.Lines = []string{value.Value}
		return nil
	case yaml.SequenceNode:
		var lines []string
		if err := value.Decode(&lines); err != nil {
			return fmt.Errorf("jsdoc list must contain strings: %w", err)
		}
		d.Lines = lines
		return nil
	case yaml.MappingNode:
		for i := 0; i+1 < len(value.Content); i += 2 {
			key := value.Content[i].Value
			if err := d.decodeEntry(key, value.Content[i+1]); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("jsdoc must be a string, list or mapping")
	}
}

func (d *JSDoc) decodeEntry(key string, node *yaml.Node) error {
	switch key {
	case "description":
		lines, err := stringOrList(node)
		if err != nil {
			return fmt.Errorf("jsdoc description: %w", err)
		}
		d.Lines = append(d.Lines, lines...)
	case "param", "property":
		if node.Kind != yaml.MappingNode {
			return fmt.Errorf("jsdoc %s must be a mapping of name to type", key)
		}
		for i := 0; i+1 < len(node.Content); i += 2 {
			typ, text, _ := strings.Cut(node.Content[i+1].Value, " - ")
			d.Tags = append(d.Tags, JSDocTag{
				Tag:  key,
				Type: typ,
				Name: node.Content[i].Value,
				Text: text,
			})
		}
	case "returns", "return":
		d.Tags = append(d.Tags, JSDocTag{Tag: "returns", Type: node.Value})
	case "template":
		names, err := stringOrList(node)
		if err != nil {
			return fmt.Errorf("jsdoc template: %w", err)
		}
		for _, name := range names {
			d.Tags = append(d.Tags, JSDocTag{Tag: "template", Name: name})
		}
	default:
		values, err := stringOrList(node)
		if err != nil {
			return fmt.Errorf("jsdoc %s: %w", key, err)
		}
		for _, v := range values {
			d.Tags = append(d.Tags, JSDocTag{Tag: key, Text: v})
		}
	}
	return nil
}

func stringOrList(node *yaml.Node) ([]string, error) {
	switch node.Kind {
	case yaml.ScalarNode:
		return []string{node.Value}, nil
	case yaml.SequenceNode:
		var out []string
		if err := node.Decode(&out); err != nil {
			return nil, err
		}
		return out, nil
	default:
		return nil, fmt.Errorf("expected string or list of strings")
	}
}
