// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package cli

import (
	"io"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/gogpu/ggchart"
	"github.com/gogpu/ggchart/source"
)

const skillTOML = `title = "Weekly practice"

[data]
Reading = 12
Writing = 7.8
Listening = 3
Speaking = 6
Grammar = 9
`

// testCLI returns a CLI that discards log output.
func testCLI() *CLI {
	return &CLI{Logger: newLogger(io.Discard, log.InfoLevel)}
}

// writeFile writes content to name in a temporary directory.
func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestParsePoint(t *testing.T) {
	tests := []struct {
		in      string
		x, y    float64
		wantErr bool
	}{
		{"10,20", 10, 20, false},
		{" 1.5 , 2.25 ", 1.5, 2.25, false},
		{"-3,0", -3, 0, false},
		{"10", 0, 0, true},
		{"a,1", 0, 0, true},
		{"1,b", 0, 0, true},
		{"", 0, 0, true},
	}
	for _, tt := range tests {
		x, y, err := parsePoint(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("parsePoint(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && (x != tt.x || y != tt.y) {
			t.Errorf("parsePoint(%q) = (%v, %v), want (%v, %v)", tt.in, x, y, tt.x, tt.y)
		}
	}
}

func TestChartFlagsMount(t *testing.T) {
	doc := &source.Document{
		Title: "Practice",
		Data:  ggchart.NewDataSet(ggchart.Entry{Label: "A", Value: 1}, ggchart.Entry{Label: "B", Value: 2}),
	}

	f := defaultChartFlags()
	c, err := f.mount(doc)
	if err != nil {
		t.Fatalf("mount() error = %v", err)
	}
	defer c.Unmount()

	if c.Kind() != ggchart.KindBar {
		t.Errorf("Kind() = %v, want %v", c.Kind(), ggchart.KindBar)
	}
	if got, want := c.Viewport(), ggchart.BarSizeRule.Apply(defaultWidth, 0); got != want {
		t.Errorf("Viewport() = %v, want %v", got, want)
	}
	if got := c.Geometry().Options.Title; got != "Practice" {
		t.Errorf("title = %q, want %q", got, "Practice")
	}
	if got := c.Geometry().Len(); got != 2 {
		t.Errorf("Geometry().Len() = %d, want 2", got)
	}
}

func TestChartFlagsOverrides(t *testing.T) {
	doc := &source.Document{
		Title: "From file",
		Data: ggchart.NewDataSet(
			ggchart.Entry{Label: "A", Value: 1},
			ggchart.Entry{Label: "B", Value: 2},
			ggchart.Entry{Label: "C", Value: 3},
		),
	}

	f := defaultChartFlags()
	f.title = "From flag"
	f.maxShapes = 2
	f.format = "decimal"
	c, err := f.mount(doc)
	if err != nil {
		t.Fatalf("mount() error = %v", err)
	}
	defer c.Unmount()

	g := c.Geometry()
	if g.Options.Title != "From flag" {
		t.Errorf("title = %q, want %q", g.Options.Title, "From flag")
	}
	if g.Len() != 2 {
		t.Errorf("Len() = %d, want 2", g.Len())
	}
	if g.Options.ValueFormat != ggchart.FormatDecimal {
		t.Errorf("ValueFormat = %v, want %v", g.Options.ValueFormat, ggchart.FormatDecimal)
	}
}

func TestChartFlagsMountErrors(t *testing.T) {
	doc := &source.Document{Data: ggchart.NewDataSet()}

	tests := []struct {
		name   string
		modify func(*chartFlags)
	}{
		{"unknown kind", func(f *chartFlags) { f.kind = "donut" }},
		{"unknown theme", func(f *chartFlags) { f.theme = "sepia" }},
		{"zero width", func(f *chartFlags) { f.width = 0 }},
		{"zero dpr", func(f *chartFlags) { f.dpr = 0 }},
		{"NaN width", func(f *chartFlags) { f.width = math.NaN() }},
		{"infinite width", func(f *chartFlags) { f.width = math.Inf(1) }},
		{"NaN dpr", func(f *chartFlags) { f.dpr = math.NaN() }},
		{"bad format", func(f *chartFlags) { f.format = "roman" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := defaultChartFlags()
			tt.modify(&f)
			c, err := f.mount(doc)
			if err == nil {
				c.Unmount()
				t.Fatal("mount() error = nil, want error")
			}
		})
	}
}
