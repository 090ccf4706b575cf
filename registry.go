// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ggchart

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Kind identifies a chart kind.
type Kind string

// Built-in chart kinds.
const (
	KindBar Kind = "bar"
	KindPie Kind = "pie"
)

// Builder computes the geometry of a chart kind.
type Builder func(ds *DataSet, vp Viewport, opts Options) *Geometry

// KindEntry describes a registered chart kind.
type KindEntry struct {
	// Kind is the unique name.
	Kind Kind

	// Build computes shapes for this kind.
	Build Builder

	// SizeRule derives the viewport from the container size.
	SizeRule SizeRule

	// Description is shown by tooling.
	Description string
}

// globalRegistry holds the built-in kinds.
var globalRegistry = NewRegistry()

func init() {
	Register(KindBar, BuildBarGeometry, BarSizeRule, "vertical bars in data set order")
	Register(KindPie, BuildPieGeometry, PieSizeRule, "clockwise slices from 12 o'clock")
}

// Registry maps chart kinds to their geometry builders.
type Registry struct {
	mu      sync.RWMutex
	entries map[Kind]*KindEntry
}

// NewRegistry creates an empty registry.
// Most code should use the global registry via Register and Lookup.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[Kind]*KindEntry)}
}

// Register adds a kind to the global registry, replacing any previous entry.
func Register(kind Kind, build Builder, rule SizeRule, description string) {
	globalRegistry.Register(kind, build, rule, description)
}

// Lookup returns the global registry entry for kind.
func Lookup(kind Kind) (*KindEntry, bool) {
	return globalRegistry.Lookup(kind)
}

// Kinds returns the registered kinds sorted by name.
func Kinds() []Kind {
	return globalRegistry.Kinds()
}

// ParseKind resolves a kind name against the global registry.
func ParseKind(name string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(name)))
	if _, ok := Lookup(k); !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, name)
	}
	return k, nil
}

// Register adds a kind to this registry.
func (r *Registry) Register(kind Kind, build Builder, rule SizeRule, description string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries[kind] = &KindEntry{
		Kind:        kind,
		Build:       build,
		SizeRule:    rule,
		Description: description,
	}
}

// Unregister removes a kind from this registry.
func (r *Registry) Unregister(kind Kind) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.entries, kind)
}

// Lookup returns a copy of the entry for kind.
func (r *Registry) Lookup(kind Kind) (*KindEntry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.entries[kind]
	if !ok {
		return nil, false
	}
	entryCopy := *e
	return &entryCopy, true
}

// Kinds returns the registered kinds sorted by name.
func (r *Registry) Kinds() []Kind {
	r.mu.RLock()
	defer r.mu.RUnlock()

	kinds := make([]Kind, 0, len(r.entries))
	for k := range r.entries {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}
