package loader

import (
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"
)

// decodeYAML reads a single YAML document through yaml.Node so mapping keys
// stay in document order.
func decodeYAML(data []byte) (Value, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Value{}, &SyntaxError{Format: FormatYAML, Msg: err.Error()}
	}
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return Value{}, ErrEmptyInput
	}
	return yamlNodeToValue(doc.Content[0], 0)
}

// maxAliasDepth bounds alias expansion.
const maxAliasDepth = 64

func yamlNodeToValue(n *yaml.Node, aliases int) (Value, error) {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return Null(), nil
		}
		return yamlNodeToValue(n.Content[0], aliases)
	case yaml.MappingNode:
		members := make([]Member, 0, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			key, err := yamlNodeToValue(n.Content[i], aliases)
			if err != nil {
				return Value{}, err
			}
			val, err := yamlNodeToValue(n.Content[i+1], aliases)
			if err != nil {
				return Value{}, err
			}
			members = append(members, Member{Key: yamlKey(key), Value: val})
		}
		return Object(members...), nil
	case yaml.SequenceNode:
		items := make([]Value, 0, len(n.Content))
		for _, c := range n.Content {
			val, err := yamlNodeToValue(c, aliases)
			if err != nil {
				return Value{}, err
			}
			items = append(items, val)
		}
		return Array(items...), nil
	case yaml.ScalarNode:
		return yamlScalar(n)
	case yaml.AliasNode:
		if n.Alias == nil {
			return Null(), nil
		}
		if aliases >= maxAliasDepth {
			return Value{}, &SyntaxError{Format: FormatYAML, Line: n.Line, Column: n.Column, Msg: "alias nesting too deep"}
		}
		return yamlNodeToValue(n.Alias, aliases+1)
	default:
		return Value{}, &SyntaxError{Format: FormatYAML, Line: n.Line, Column: n.Column, Msg: fmt.Sprintf("unsupported node kind %d", n.Kind)}
	}
}

func yamlScalar(n *yaml.Node) (Value, error) {
	switch n.ShortTag() {
	case "!!null":
		return Null(), nil
	case "!!bool":
		var b bool
		if err := n.Decode(&b); err != nil {
			return Value{}, &SyntaxError{Format: FormatYAML, Line: n.Line, Column: n.Column, Msg: err.Error()}
		}
		return Bool(b), nil
	case "!!int", "!!float":
		return Number(n.Value), nil
	default:
		return String(n.Value), nil
	}
}

// yamlKey renders a mapping key as a label. Non-scalar keys fall back to a
// compact description.
func yamlKey(v Value) string {
	switch v.Kind() {
	case KindObject:
		return "{" + strconv.Itoa(v.Len()) + " keys}"
	case KindArray:
		return "[" + strconv.Itoa(v.Len()) + " items]"
	default:
		return v.Text()
	}
}
