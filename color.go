// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ggchart

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/gogpu/gg"
	"github.com/lucasb-eyer/go-colorful"
)

// DefaultPalette is used when Options.Palette is empty.
var DefaultPalette = []string{
	"#3b82f6", "#10b981", "#f59e0b", "#ef4444",
	"#8b5cf6", "#ec4899", "#06b6d4", "#84cc16",
}

// ParseColor parses a color token.
//
// Supported forms:
//   - "#rgb", "#rgba", "#rrggbb", "#rrggbbaa"
//   - "hsl(210, 40%, 98%)", "hsl(210 40% 98% / 0.5)"
//   - bare HSL triples as used by CSS theme variables: "222.2 84% 4.9%"
//   - "rgb(59, 130, 246)", "rgba(59, 130, 246, 0.5)"
func ParseColor(token string) (gg.RGBA, error) {
	s := strings.TrimSpace(token)
	lower := strings.ToLower(s)
	switch {
	case s == "":
		return gg.RGBA{}, fmt.Errorf("%w: empty token", ErrInvalidColor)
	case strings.HasPrefix(s, "#"):
		return parseHexColor(s[1:])
	case strings.HasPrefix(lower, "hsla(") || strings.HasPrefix(lower, "hsl("):
		inner, ok := functionArgs(lower)
		if !ok {
			return gg.RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, token)
		}
		return parseHSLArgs(inner)
	case strings.HasPrefix(lower, "rgba(") || strings.HasPrefix(lower, "rgb("):
		inner, ok := functionArgs(lower)
		if !ok {
			return gg.RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, token)
		}
		return parseRGBArgs(inner)
	default:
		return parseHSLArgs(lower)
	}
}

// MustParseColor is like ParseColor but panics on error.
// Use only for hard-coded tokens.
func MustParseColor(token string) gg.RGBA {
	c, err := ParseColor(token)
	if err != nil {
		panic(err)
	}
	return c
}

// ColorHex formats c as "#rrggbb", dropping alpha.
func ColorHex(c gg.RGBA) string {
	return colorful.Color{R: c.R, G: c.G, B: c.B}.Clamped().Hex()
}

// Shade returns the hover variant of c: lighter colors are darkened and
// darker colors lightened by amount in HSL lightness. Alpha is kept.
func Shade(c gg.RGBA, amount float64) gg.RGBA {
	h, s, l := colorful.Color{R: c.R, G: c.G, B: c.B}.Hsl()
	if l > 0.5 {
		l -= amount
	} else {
		l += amount
	}
	l = math.Max(0, math.Min(1, l))
	out := colorful.Hsl(h, s, l).Clamped()
	return gg.RGBA{R: out.R, G: out.G, B: out.B, A: c.A}
}

// Palette is a resolved, cyclable list of shape colors.
type Palette []gg.RGBA

// ResolvePalette parses palette tokens. Tokens that fail to parse are
// replaced by the default palette color at the same position.
// An empty token list resolves to DefaultPalette.
func ResolvePalette(tokens []string) Palette {
	if len(tokens) == 0 {
		tokens = DefaultPalette
	}
	p := make(Palette, len(tokens))
	for i, tok := range tokens {
		c, err := ParseColor(tok)
		if err != nil {
			Logger().Warn("ggchart: palette color fallback", "index", i, "token", tok, "err", err)
			c = MustParseColor(DefaultPalette[i%len(DefaultPalette)])
		}
		p[i] = c
	}
	return p
}

// At returns the color for shape i, cycling when the palette is shorter
// than the data set.
func (p Palette) At(i int) gg.RGBA {
	if len(p) == 0 {
		return MustParseColor(DefaultPalette[i%len(DefaultPalette)])
	}
	return p[i%len(p)]
}

func functionArgs(s string) (string, bool) {
	open := strings.IndexByte(s, '(')
	if open < 0 || !strings.HasSuffix(s, ")") {
		return "", false
	}
	return s[open+1 : len(s)-1], true
}

// splitArgs splits "a, b, c / d" and "a b c / d" into components.
func splitArgs(s string) []string {
	s = strings.NewReplacer(",", " ", "/", " ").Replace(s)
	return strings.Fields(s)
}

func parseHSLArgs(s string) (gg.RGBA, error) {
	parts := splitArgs(s)
	if len(parts) != 3 && len(parts) != 4 {
		return gg.RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	h, err := strconv.ParseFloat(strings.TrimSuffix(parts[0], "deg"), 64)
	if err != nil {
		return gg.RGBA{}, fmt.Errorf("%w: hue %q", ErrInvalidColor, parts[0])
	}
	sat, err := parsePercent(parts[1])
	if err != nil {
		return gg.RGBA{}, err
	}
	light, err := parsePercent(parts[2])
	if err != nil {
		return gg.RGBA{}, err
	}
	alpha := 1.0
	if len(parts) == 4 {
		if alpha, err = parseAlpha(parts[3]); err != nil {
			return gg.RGBA{}, err
		}
	}
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	c := colorful.Hsl(h, sat, light).Clamped()
	return gg.RGBA{R: c.R, G: c.G, B: c.B, A: alpha}, nil
}

func parseRGBArgs(s string) (gg.RGBA, error) {
	parts := splitArgs(s)
	if len(parts) != 3 && len(parts) != 4 {
		return gg.RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	var ch [3]float64
	for i := range ch {
		v, err := strconv.ParseFloat(parts[i], 64)
		if err != nil || v < 0 || v > 255 {
			return gg.RGBA{}, fmt.Errorf("%w: channel %q", ErrInvalidColor, parts[i])
		}
		ch[i] = v / 255
	}
	alpha := 1.0
	if len(parts) == 4 {
		var err error
		if alpha, err = parseAlpha(parts[3]); err != nil {
			return gg.RGBA{}, err
		}
	}
	return gg.RGBA{R: ch[0], G: ch[1], B: ch[2], A: alpha}, nil
}

func parsePercent(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSuffix(s, "%"), 64)
	if err != nil || v < 0 || v > 100 {
		return 0, fmt.Errorf("%w: percentage %q", ErrInvalidColor, s)
	}
	return v / 100, nil
}

func parseAlpha(s string) (float64, error) {
	if strings.HasSuffix(s, "%") {
		return parsePercent(s)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 || v > 1 {
		return 0, fmt.Errorf("%w: alpha %q", ErrInvalidColor, s)
	}
	return v, nil
}

// parseHexColor parses "rgb", "rgba", "rrggbb" and "rrggbbaa".
func parseHexColor(hex string) (gg.RGBA, error) {
	var r, g, b uint64
	a := uint64(255)
	var err error
	digit := func(s string, scale uint64) uint64 {
		if err != nil {
			return 0
		}
		var v uint64
		v, err = strconv.ParseUint(s, 16, 8)
		return v * scale
	}

	switch len(hex) {
	case 3:
		r, g, b = digit(hex[0:1], 17), digit(hex[1:2], 17), digit(hex[2:3], 17)
	case 4:
		r, g, b, a = digit(hex[0:1], 17), digit(hex[1:2], 17), digit(hex[2:3], 17), digit(hex[3:4], 17)
	case 6:
		r, g, b = digit(hex[0:2], 1), digit(hex[2:4], 1), digit(hex[4:6], 1)
	case 8:
		r, g, b, a = digit(hex[0:2], 1), digit(hex[2:4], 1), digit(hex[4:6], 1), digit(hex[6:8], 1)
	default:
		return gg.RGBA{}, fmt.Errorf("%w: #%s", ErrInvalidColor, hex)
	}
	if err != nil {
		return gg.RGBA{}, fmt.Errorf("%w: #%s", ErrInvalidColor, hex)
	}

	return gg.RGBA{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
		A: float64(a) / 255,
	}, nil
}
