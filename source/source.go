// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package source loads chart data sets from files.
//
// Supported formats are TOML, YAML, JSON and XLSX. The order of entries in
// the file is kept, since it decides bar order and slice order.
//
// TOML, YAML and JSON documents are either a flat mapping of labels to
// numbers or a mapping with an optional "title" string and a "data"
// mapping:
//
//	title = "Weekly practice"
//
//	[data]
//	Reading = 12
//	Writing = 7.8
//
// Spreadsheets hold labels in column A and values in column B. A first row
// whose B cell is not a number is a header; its B cell becomes the title.
package source

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gogpu/ggchart"
)

// Errors returned by the loaders.
var (
	// ErrUnsupportedFormat is returned for an unknown file extension or format.
	ErrUnsupportedFormat = errors.New("source: unsupported format")

	// ErrInvalidDocument is returned when the document is not a mapping.
	ErrInvalidDocument = errors.New("source: invalid document")

	// ErrInvalidValue is returned when a data value is not a number.
	ErrInvalidValue = errors.New("source: invalid value")

	// ErrSheetNotFound is returned when the requested sheet does not exist.
	ErrSheetNotFound = errors.New("source: sheet not found")
)

// Format is a data set file format.
type Format string

// Supported formats.
const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
	FormatXLSX Format = "xlsx"
)

// FormatFor returns the format implied by the file extension of path.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	case ".xlsx", ".xlsm":
		return FormatXLSX, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
}

// Document is a loaded data set with its optional title.
type Document struct {
	Path   string
	Format Format
	Title  string
	Data   *ggchart.DataSet
}

// Options returns chart options carrying the document title, if any.
func (d *Document) Options() []ggchart.Option {
	if d == nil || d.Title == "" {
		return nil
	}
	return []ggchart.Option{ggchart.WithTitle(d.Title)}
}

type options struct {
	format Format
	sheet  string
}

// Option configures Load.
type Option func(*options)

// WithFormat overrides the format detected from the file extension.
func WithFormat(f Format) Option {
	return func(o *options) { o.format = f }
}

// WithSheet selects the spreadsheet sheet. The default is the first sheet.
func WithSheet(name string) Option {
	return func(o *options) { o.sheet = name }
}

// Load reads the data set at path.
func Load(path string, opts ...Option) (*Document, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.format == "" {
		f, err := FormatFor(path)
		if err != nil {
			return nil, err
		}
		o.format = f
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("source: open %s: %w", path, err)
	}
	defer f.Close()

	doc, err := decode(f, o)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	doc.Path = path
	ggchart.Logger().Debug("source: loaded", "path", path, "format", doc.Format, "entries", doc.Data.Len())
	return doc, nil
}

// Decode reads a data set of the given format from r.
func Decode(r io.Reader, format Format, opts ...Option) (*Document, error) {
	o := options{format: format}
	for _, opt := range opts {
		opt(&o)
	}
	return decode(r, o)
}

func decode(r io.Reader, o options) (*Document, error) {
	if o.format == FormatXLSX {
		return decodeXLSX(r, o.sheet)
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("source: read: %w", err)
	}
	switch o.format {
	case FormatTOML:
		return decodeTOML(data)
	case FormatYAML, FormatJSON:
		doc, err := decodeYAML(data)
		if doc != nil {
			doc.Format = o.format
		}
		return doc, err
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, o.format)
}
