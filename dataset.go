// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ggchart

import "math"

// Entry is one (label, value) pair of a DataSet.
type Entry struct {
	Label string
	Value float64
}

// DataSet is an ordered mapping from unique labels to values.
//
// Order is significant: bars are laid out left to right and pie slices
// clockwise from 12 o'clock in insertion order. The zero value is an empty
// data set ready to use. A nil *DataSet behaves as an empty data set.
type DataSet struct {
	entries []Entry
	index   map[string]int
}

// NewDataSet creates a data set from entries in order.
// A repeated label keeps its first position and takes the later value.
func NewDataSet(entries ...Entry) *DataSet {
	ds := &DataSet{}
	for _, e := range entries {
		ds.Set(e.Label, e.Value)
	}
	return ds
}

// Set assigns value to label. A new label is appended; an existing label
// keeps its position.
func (d *DataSet) Set(label string, value float64) {
	if d.index == nil {
		d.index = make(map[string]int)
	}
	if i, ok := d.index[label]; ok {
		d.entries[i].Value = value
		return
	}
	d.index[label] = len(d.entries)
	d.entries = append(d.entries, Entry{Label: label, Value: value})
}

// Len returns the number of entries.
func (d *DataSet) Len() int {
	if d == nil {
		return 0
	}
	return len(d.entries)
}

// At returns the i-th entry in order.
func (d *DataSet) At(i int) Entry {
	return d.entries[i]
}

// Value returns the value stored for label.
func (d *DataSet) Value(label string) (float64, bool) {
	if d == nil {
		return 0, false
	}
	i, ok := d.index[label]
	if !ok {
		return 0, false
	}
	return d.entries[i].Value, true
}

// Entries returns a copy of the entries in order.
func (d *DataSet) Entries() []Entry {
	if d == nil {
		return nil
	}
	out := make([]Entry, len(d.entries))
	copy(out, d.entries)
	return out
}

// Labels returns the labels in order.
func (d *DataSet) Labels() []string {
	out := make([]string, d.Len())
	for i := range out {
		out[i] = d.entries[i].Label
	}
	return out
}

// Truncate returns a new data set holding the first n entries in order.
// n <= 0 or n >= Len returns a copy of the whole set.
func (d *DataSet) Truncate(n int) *DataSet {
	if n <= 0 || n > d.Len() {
		n = d.Len()
	}
	out := &DataSet{}
	for i := 0; i < n; i++ {
		out.Set(d.entries[i].Label, d.entries[i].Value)
	}
	return out
}

// Max returns the largest drawable value, or 0 for an empty set.
func (d *DataSet) Max() float64 {
	m := 0.0
	for i := 0; i < d.Len(); i++ {
		m = math.Max(m, drawable(d.entries[i].Value))
	}
	return m
}

// Sum returns the total of drawable values.
func (d *DataSet) Sum() float64 {
	s := 0.0
	for i := 0; i < d.Len(); i++ {
		s += drawable(d.entries[i].Value)
	}
	return s
}

// drawable maps values that cannot be drawn (negative, NaN, infinite) to 0.
func drawable(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}
