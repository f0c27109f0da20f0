package colfmt

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrNotMapping is returned by [ReadPairs] when the document is not a
// YAML mapping.
var ErrNotMapping = errors.New("document is not a mapping")

// ReadPairs decodes a YAML mapping from r into key-value pairs in document
// order. Scalar values are used as written; nested values are re-encoded
// as flow-style YAML. An empty document yields no pairs.
func ReadPairs(r io.Reader) ([]KeyValue, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, err
	}
	node := &doc
	if node.Kind == yaml.DocumentNode && len(node.Content) > 0 {
		node = node.Content[0]
	}
	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: line %d", ErrNotMapping, node.Line)
	}
	pairs := make([]KeyValue, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		value, err := scalarText(node.Content[i+1])
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, KeyValue{Key: node.Content[i].Value, Value: value})
	}
	return pairs, nil
}

func scalarText(n *yaml.Node) (string, error) {
	if n.Kind == yaml.ScalarNode {
		return n.Value, nil
	}
	flow := *n
	flow.Style = yaml.FlowStyle
	var sb strings.Builder
	enc := yaml.NewEncoder(&sb)
	if err := enc.Encode(&flow); err != nil {
		return "", err
	}
	if err := enc.Close(); err != nil {
		return "", err
	}
	return strings.TrimSpace(sb.String()), nil
}
