// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package source

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/ggchart"
)

// decodeYAML handles YAML and JSON alike. It walks the node tree instead of
// unmarshaling into a map so mapping order survives.
func decodeYAML(data []byte) (*Document, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}

	doc := &Document{Format: FormatYAML, Data: &ggchart.DataSet{}}
	if root.Kind == 0 {
		return doc, nil // empty file
	}

	m := &root
	if m.Kind == yaml.DocumentNode && len(m.Content) == 1 {
		m = m.Content[0]
	}
	if m.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: line %d: expected a mapping", ErrInvalidDocument, m.Line)
	}

	table := m
	if title, ok := mappingValue(m, "title"); ok && title.Kind == yaml.ScalarNode && title.ShortTag() == "!!str" {
		doc.Title = title.Value
	}
	if data, ok := mappingValue(m, "data"); ok && data.Kind == yaml.MappingNode {
		table = data
	}

	for i := 0; i+1 < len(table.Content); i += 2 {
		key, val := table.Content[i], table.Content[i+1]
		if table == m && key.Value == "title" && doc.Title != "" {
			continue
		}
		v, err := scalarNumber(val)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %s: %w", ErrInvalidValue, val.Line, key.Value, err)
		}
		doc.Data.Set(key.Value, v)
	}
	return doc, nil
}

func mappingValue(m *yaml.Node, key string) (*yaml.Node, bool) {
	for i := 0; i+1 < len(m.Content); i += 2 {
		if m.Content[i].Value == key {
			return m.Content[i+1], true
		}
	}
	return nil, false
}

func scalarNumber(n *yaml.Node) (float64, error) {
	if n.Kind != yaml.ScalarNode || (n.ShortTag() != "!!int" && n.ShortTag() != "!!float") {
		return 0, fmt.Errorf("not a number: %q", n.Value)
	}
	var v float64
	if err := n.Decode(&v); err != nil {
		return 0, err
	}
	return v, nil
}
