package mdto

import (
	"bytes"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// MarshalJSON renders the entity as a JSON object with its fields in wire
// order. Single values stay scalar and repeated values become arrays, as
// in the decoded tree. The JSON form is for inspection only.
func (e *Entity) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	first := true
	for _, f := range Order(e.typ) {
		value := e.values[f.Name]
		if isEmpty(value) {
			continue
		}
		if !first {
			buf.WriteByte(',')
		}
		first = false

		key, err := json.Marshal(f.Name)
		if err != nil {
			return nil, err
		}
		data, err := json.Marshal(value)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(data)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalYAML renders the entity as an ordered YAML mapping.
func (e *Entity) MarshalYAML() (interface{}, error) {
	return e.yamlNode()
}

func (e *Entity) yamlNode() (*yaml.Node, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, f := range Order(e.typ) {
		value := e.values[f.Name]
		if isEmpty(value) {
			continue
		}
		child, err := yamlValue(value)
		if err != nil {
			return nil, err
		}
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: f.Name},
			child,
		)
	}
	return node, nil
}

func yamlValue(value any) (*yaml.Node, error) {
	if child, ok := value.(*Entity); ok {
		return child.yamlNode()
	}
	if items, ok := sequence(value); ok {
		node := &yaml.Node{Kind: yaml.SequenceNode}
		for _, item := range items {
			child, err := yamlValue(item)
			if err != nil {
				return nil, err
			}
			node.Content = append(node.Content, child)
		}
		return node, nil
	}
	node := &yaml.Node{}
	if err := node.Encode(value); err != nil {
		return nil, err
	}
	return node, nil
}
