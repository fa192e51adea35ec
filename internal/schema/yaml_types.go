package schema

import (
	"fmt"
	"go/token"

	"gopkg.in/yaml.v3"

	"optgen/internal/directive"
)

// UnmarshalYAML records the container's line.
func (c *Container) UnmarshalYAML(node *yaml.Node) error {
	type plain Container

	var p plain
	if err := node.Decode(&p); err != nil {
		return err
	}

	*c = Container(p)
	c.Line = node.Line

	return nil
}

// UnmarshalYAML implements custom YAML unmarshaling for Directives.
// Accepts:
//   - Tag syntax string: "rename='cnt', skip"
//   - Sequence of items: [skip, {rename: cnt}, {with: {path: conv.Count}}]
func (d *Directives) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		if node.Tag == "!!null" {
			*d = nil
			return nil
		}

		list, err := directive.Parse(node.Value)
		if err != nil {
			return fmt.Errorf("line %d: %w", node.Line, err)
		}

		*d = Directives(list)

		return nil

	case yaml.SequenceNode:
		list, err := decodeList(node)
		if err != nil {
			return err
		}

		*d = Directives(list)

		return nil

	default:
		return fmt.Errorf("line %d: expected directive string or sequence", node.Line)
	}
}

func decodeList(node *yaml.Node) (directive.List, error) {
	list := make(directive.List, 0, len(node.Content))

	for _, item := range node.Content {
		d, err := decodeItem(item)
		if err != nil {
			return nil, err
		}

		list = append(list, d)
	}

	return list, nil
}

func decodeItem(node *yaml.Node) (directive.Directive, error) {
	switch node.Kind {
	case yaml.ScalarNode:
		if !isDirectiveName(node.Value) {
			return directive.Directive{}, fmt.Errorf("line %d: invalid directive name %q", node.Line, node.Value)
		}

		return directive.Word(node.Value), nil

	case yaml.MappingNode:
		if len(node.Content) != 2 {
			return directive.Directive{}, fmt.Errorf("line %d: directive mapping must have exactly one key", node.Line)
		}

		key, val := node.Content[0], node.Content[1]
		if !isDirectiveName(key.Value) {
			return directive.Directive{}, fmt.Errorf("line %d: invalid directive name %q", key.Line, key.Value)
		}

		value, err := decodeValue(val)
		if err != nil {
			return directive.Directive{}, fmt.Errorf("directive %q: %w", key.Value, err)
		}

		return directive.New(key.Value, value), nil

	default:
		return directive.Directive{}, fmt.Errorf("line %d: expected directive name or single-key mapping", node.Line)
	}
}

// isDirectiveName accepts keywords since "default" is a directive.
func isDirectiveName(s string) bool {
	return directive.IsIdent(s) || token.IsKeyword(s)
}

func decodeValue(node *yaml.Node) (directive.Value, error) {
	switch node.Kind {
	case yaml.ScalarNode:
		switch node.Tag {
		case "!!null":
			return directive.WordValue(), nil
		case "!!bool":
			var b bool
			if err := node.Decode(&b); err != nil {
				return directive.Value{}, err
			}

			return directive.BoolValue(b), nil
		case "!!str":
			return directive.StringValue(node.Value), nil
		default:
			return directive.Value{}, fmt.Errorf("line %d: unsupported %s value %q (quote it for a string)",
				node.Line, node.Tag, node.Value)
		}

	case yaml.MappingNode:
		var m struct {
			Path string `yaml:"path"`
		}

		if len(node.Content) != 2 || node.Content[0].Value != "path" {
			return directive.Value{}, fmt.Errorf("line %d: expected {path: ...}", node.Line)
		}

		if err := node.Decode(&m); err != nil {
			return directive.Value{}, err
		}

		p, err := directive.ParsePath(m.Path)
		if err != nil {
			return directive.Value{}, fmt.Errorf("line %d: %w", node.Line, err)
		}

		return directive.PathValue(p), nil

	case yaml.SequenceNode:
		list, err := decodeList(node)
		if err != nil {
			return directive.Value{}, err
		}

		return directive.ListValue(list...), nil

	default:
		return directive.Value{}, fmt.Errorf("line %d: unsupported directive value", node.Line)
	}
}
