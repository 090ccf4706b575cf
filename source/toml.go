// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package source

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/gogpu/ggchart"
)

// decodeTOML decodes into a map for the values and walks MetaData.Keys for
// the order, since Go maps do not keep it.
func decodeTOML(data []byte) (*Document, error) {
	var raw map[string]any
	md, err := toml.Decode(string(data), &raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}

	doc := &Document{Format: FormatTOML, Data: &ggchart.DataSet{}}
	if title, ok := raw["title"].(string); ok {
		doc.Title = title
	}

	table := raw
	depth := 1
	if nested, ok := raw["data"].(map[string]any); ok {
		table = nested
		depth = 2
	}

	for _, key := range md.Keys() {
		if len(key) != depth || (depth == 2 && key[0] != "data") {
			continue
		}
		label := key[depth-1]
		if depth == 1 && label == "title" && doc.Title != "" {
			continue
		}
		v, err := number(table[label])
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrInvalidValue, key, err)
		}
		doc.Data.Set(label, v)
	}
	return doc, nil
}

// number converts a decoded scalar to float64.
func number(v any) (float64, error) {
	switch n := v.(type) {
	case int64:
		return float64(n), nil
	case float64:
		return n, nil
	case int:
		return float64(n), nil
	}
	return 0, fmt.Errorf("not a number: %v", v)
}
