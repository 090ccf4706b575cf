// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package source

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/gogpu/ggchart"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func entries(doc *Document) []ggchart.Entry {
	return doc.Data.Entries()
}

var practiceEntries = []ggchart.Entry{
	{Label: "Reading", Value: 12},
	{Label: "Writing", Value: 7.8},
	{Label: "Listening", Value: 3},
}

func TestFormatFor(t *testing.T) {
	tests := []struct {
		path    string
		want    Format
		wantErr bool
	}{
		{"a.toml", FormatTOML, false},
		{"a.YAML", FormatYAML, false},
		{"dir/a.yml", FormatYAML, false},
		{"a.json", FormatJSON, false},
		{"a.xlsx", FormatXLSX, false},
		{"a.csv", "", true},
		{"noext", "", true},
	}
	for _, tt := range tests {
		got, err := FormatFor(tt.path)
		if tt.wantErr {
			if !errors.Is(err, ErrUnsupportedFormat) {
				t.Errorf("FormatFor(%q) error = %v, want ErrUnsupportedFormat", tt.path, err)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("FormatFor(%q) = %q, %v, want %q", tt.path, got, err, tt.want)
		}
	}
}

func TestLoadTextFormats(t *testing.T) {
	tests := []struct {
		name      string
		file      string
		content   string
		wantTitle string
	}{
		{
			name: "toml flat",
			file: "d.toml",
			content: `Reading = 12
Writing = 7.8
Listening = 3
`,
		},
		{
			name: "toml nested",
			file: "d.toml",
			content: `title = "Weekly practice"

[data]
Reading = 12
Writing = 7.8
Listening = 3
`,
			wantTitle: "Weekly practice",
		},
		{
			name: "yaml flat",
			file: "d.yaml",
			content: `Reading: 12
Writing: 7.8
Listening: 3
`,
		},
		{
			name: "yaml nested",
			file: "d.yml",
			content: `title: Weekly practice
data:
  Reading: 12
  Writing: 7.8
  Listening: 3
`,
			wantTitle: "Weekly practice",
		},
		{
			name:    "json flat",
			file:    "d.json",
			content: `{"Reading": 12, "Writing": 7.8, "Listening": 3}`,
		},
		{
			name:      "json nested",
			file:      "d.json",
			content:   `{"title": "Weekly practice", "data": {"Reading": 12, "Writing": 7.8, "Listening": 3}}`,
			wantTitle: "Weekly practice",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := Load(writeFile(t, tt.file, tt.content))
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			if got := entries(doc); !reflect.DeepEqual(got, practiceEntries) {
				t.Errorf("entries = %v, want %v", got, practiceEntries)
			}
			if doc.Title != tt.wantTitle {
				t.Errorf("Title = %q, want %q", doc.Title, tt.wantTitle)
			}
		})
	}
}

func TestLoadKeepsFileOrder(t *testing.T) {
	// Reverse alphabetical so a sorted map walk would be caught.
	path := writeFile(t, "d.toml", "zeta = 1\nmu = 2\nalpha = 3\n")
	doc, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := doc.Data.Labels(), []string{"zeta", "mu", "alpha"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Labels() = %v, want %v", got, want)
	}

	path = writeFile(t, "d.yaml", "zeta: 1\nmu: 2\nalpha: 3\n")
	doc, err = Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := doc.Data.Labels(), []string{"zeta", "mu", "alpha"}; !reflect.DeepEqual(got, want) {
		t.Errorf("yaml Labels() = %v, want %v", got, want)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		want    error
	}{
		{"unsupported", "d.csv", "a,1", ErrUnsupportedFormat},
		{"toml string value", "d.toml", `Reading = "lots"`, ErrInvalidValue},
		{"toml syntax", "d.toml", `Reading = = 1`, ErrInvalidDocument},
		{"yaml string value", "d.yaml", "Reading: lots\n", ErrInvalidValue},
		{"yaml sequence", "d.yaml", "- 1\n- 2\n", ErrInvalidDocument},
		{"json quoted number", "d.json", `{"Reading": "12"}`, ErrInvalidValue},
		{"json nested object", "d.json", `{"Reading": {"a": 1}}`, ErrInvalidValue},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeFile(t, tt.file, tt.content))
			if !errors.Is(err, tt.want) {
				t.Errorf("Load() error = %v, want %v", err, tt.want)
			}
		})
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Load(missing) error = %v, want os.ErrNotExist", err)
	}
}

func TestLoadEmptyYAML(t *testing.T) {
	doc, err := Load(writeFile(t, "d.yaml", ""))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if doc.Data.Len() != 0 {
		t.Errorf("Len() = %d, want 0", doc.Data.Len())
	}
}

func TestLoadWithFormat(t *testing.T) {
	path := writeFile(t, "data.txt", "Reading: 12\n")
	doc, err := Load(path, WithFormat(FormatYAML))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if v, ok := doc.Data.Value("Reading"); !ok || v != 12 {
		t.Errorf("Value(Reading) = %v, %v", v, ok)
	}
}

func TestDecode(t *testing.T) {
	doc, err := Decode(strings.NewReader(`{"a": 1, "b": 2.5}`), FormatJSON)
	if err != nil {
		t.Fatal(err)
	}
	if doc.Format != FormatJSON || doc.Data.Len() != 2 {
		t.Errorf("Decode() = %+v", doc)
	}
	if _, err := Decode(strings.NewReader(""), "ini"); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Decode(ini) error = %v, want ErrUnsupportedFormat", err)
	}
}

func TestDocumentOptions(t *testing.T) {
	var nilDoc *Document
	if opts := nilDoc.Options(); opts != nil {
		t.Errorf("nil Options() = %v", opts)
	}
	doc := &Document{Title: "Weekly"}
	if got := ggchart.NewOptions(doc.Options()...).Title; got != "Weekly" {
		t.Errorf("Title = %q, want Weekly", got)
	}
}

func writeWorkbook(t *testing.T, sheet string, rows [][]any) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	if sheet != "Sheet1" {
		if _, err := f.NewSheet(sheet); err != nil {
			t.Fatal(err)
		}
	}
	for i, row := range rows {
		for j, v := range row {
			cell, err := excelize.CoordinatesToCellName(j+1, i+1)
			if err != nil {
				t.Fatal(err)
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				t.Fatal(err)
			}
		}
	}
	path := filepath.Join(t.TempDir(), "data.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadXLSX(t *testing.T) {
	path := writeWorkbook(t, "Sheet1", [][]any{
		{"Skill", "Hours"},
		{"Reading", 12},
		{"Writing", 7.8},
		{"", 100},
		{"Listening", 3},
	})

	doc, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got := entries(doc); !reflect.DeepEqual(got, practiceEntries) {
		t.Errorf("entries = %v, want %v", got, practiceEntries)
	}
	if doc.Title != "Hours" {
		t.Errorf("Title = %q, want Hours", doc.Title)
	}
	if doc.Format != FormatXLSX {
		t.Errorf("Format = %q, want xlsx", doc.Format)
	}
}

func TestLoadXLSXNoHeader(t *testing.T) {
	path := writeWorkbook(t, "Sheet1", [][]any{{"a", 1}, {"b", 2}})
	doc, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if doc.Data.Len() != 2 || doc.Title != "" {
		t.Errorf("Len() = %d, Title = %q, want 2, empty", doc.Data.Len(), doc.Title)
	}
}

func TestLoadXLSXSheets(t *testing.T) {
	path := writeWorkbook(t, "Scores", [][]any{{"a", 1}})

	doc, err := Load(path, WithSheet("Scores"))
	if err != nil {
		t.Fatalf("Load(WithSheet) error = %v", err)
	}
	if v, ok := doc.Data.Value("a"); !ok || v != 1 {
		t.Errorf("Value(a) = %v, %v", v, ok)
	}

	if _, err := Load(path, WithSheet("Nope")); !errors.Is(err, ErrSheetNotFound) {
		t.Errorf("Load(WithSheet(Nope)) error = %v, want ErrSheetNotFound", err)
	}
}

func TestLoadXLSXInvalidValue(t *testing.T) {
	path := writeWorkbook(t, "Sheet1", [][]any{{"a", 1}, {"b", "lots"}})
	_, err := Load(path)
	if !errors.Is(err, ErrInvalidValue) {
		t.Fatalf("Load() error = %v, want ErrInvalidValue", err)
	}
	if !strings.Contains(err.Error(), "B2") {
		t.Errorf("error %q does not name the cell", err)
	}
}
