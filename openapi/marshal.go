package openapi

import (
	"bytes"
	"fmt"

	json "github.com/goccy/go-json"
	"go.yaml.in/yaml/v4"
)

// MarshalOrderedJSON marshals the document to compact JSON. Response codes
// keep registration order; other map keys are sorted.
func (d *Document) MarshalOrderedJSON() ([]byte, error) {
	data, err := json.Marshal(d)
	if err != nil {
		return nil, fmt.Errorf("openapi: marshaling document: %w", err)
	}
	return data, nil
}

// MarshalOrderedJSONIndent is like MarshalOrderedJSON but indents the output.
func (d *Document) MarshalOrderedJSONIndent(prefix, indent string) ([]byte, error) {
	data, err := d.MarshalOrderedJSON()
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, data, prefix, indent); err != nil {
		return nil, fmt.Errorf("openapi: indenting document: %w", err)
	}
	return buf.Bytes(), nil
}

// MarshalOrderedYAML marshals the document to block-style YAML with the same
// key order as MarshalOrderedJSON.
//
// The JSON encoding is parsed as YAML (JSON is a YAML subset) so the node
// tree keeps its key order, then node styles are reset to block/plain before
// re-encoding.
func (d *Document) MarshalOrderedYAML() ([]byte, error) {
	data, err := d.MarshalOrderedJSON()
	if err != nil {
		return nil, err
	}
	return JSONToYAML(data)
}

// JSONToYAML converts a JSON text to block-style YAML preserving key order.
func JSONToYAML(data []byte) ([]byte, error) {
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, fmt.Errorf("openapi: reading JSON as YAML: %w", err)
	}
	resetStyle(&node)

	out, err := yaml.Marshal(&node)
	if err != nil {
		return nil, fmt.Errorf("openapi: encoding YAML: %w", err)
	}
	return out, nil
}

// resetStyle clears flow and quoting styles inherited from the JSON source.
// Scalars that would change type when unquoted (e.g. the response key "200")
// are still quoted by the encoder because their tag stays !!str.
func resetStyle(n *yaml.Node) {
	n.Style = 0
	for _, child := range n.Content {
		resetStyle(child)
	}
}

// MarshalYAML emits responses as a mapping in registration order.
func (r *Responses) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, code := range r.codes {
		var value yaml.Node
		if err := value.Encode(r.byCode[code]); err != nil {
			return nil, err
		}
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: code},
			&value,
		)
	}
	return node, nil
}
