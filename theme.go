// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ggchart

import (
	"sync"

	"github.com/gogpu/gg"
)

// Theme token names read at draw time.
const (
	TokenForeground      = "foreground"
	TokenMutedForeground = "muted-foreground"
	TokenBackground      = "background"
)

// ThemeProvider exposes named color tokens of the active visual theme.
// Token values use any form accepted by ParseColor.
type ThemeProvider interface {
	Token(name string) (value string, ok bool)
}

// ThemeColors is the set of theme colors a chart draws with.
type ThemeColors struct {
	Foreground      gg.RGBA
	MutedForeground gg.RGBA
	Background      gg.RGBA
}

// FallbackColors is used for any token the provider cannot supply.
var FallbackColors = ThemeColors{
	Foreground:      gg.RGB(0, 0, 0),
	MutedForeground: gg.RGB(0.4, 0.4, 0.4),
	Background:      gg.RGB(1, 1, 1),
}

// ResolveColors reads the chart colors from p. It is called on every draw
// and never cached, so a theme switch between draws is picked up. Missing
// or malformed tokens fall back to FallbackColors; a nil provider yields
// FallbackColors.
func ResolveColors(p ThemeProvider) ThemeColors {
	return ThemeColors{
		Foreground:      resolveToken(p, TokenForeground, FallbackColors.Foreground),
		MutedForeground: resolveToken(p, TokenMutedForeground, FallbackColors.MutedForeground),
		Background:      resolveToken(p, TokenBackground, FallbackColors.Background),
	}
}

func resolveToken(p ThemeProvider, name string, fallback gg.RGBA) gg.RGBA {
	if p == nil {
		return fallback
	}
	v, ok := p.Token(name)
	if !ok {
		return fallback
	}
	c, err := ParseColor(v)
	if err != nil {
		Logger().Warn("ggchart: theme token fallback", "token", name, "value", v, "err", err)
		return fallback
	}
	return c
}

// Theme is a ThemeProvider backed by a token map.
type Theme map[string]string

// Token implements ThemeProvider.
func (t Theme) Token(name string) (string, bool) {
	v, ok := t[name]
	return v, ok
}

// LightTheme and DarkTheme carry the HSL triples of a common light/dark
// dashboard design system.
var (
	LightTheme = Theme{
		TokenForeground:      "222.2 84% 4.9%",
		TokenMutedForeground: "215.4 16.3% 46.9%",
		TokenBackground:      "0 0% 100%",
	}
	DarkTheme = Theme{
		TokenForeground:      "210 40% 98%",
		TokenMutedForeground: "215 20.2% 65.1%",
		TokenBackground:      "222.2 84% 4.9%",
	}
)

// ThemeFunc adapts a lookup function to ThemeProvider.
type ThemeFunc func(name string) (string, bool)

// Token implements ThemeProvider.
func (f ThemeFunc) Token(name string) (string, bool) { return f(name) }

// SwitchableTheme forwards token lookups to the currently selected provider.
// Hosts flip it when the presentation mode changes; charts see the new
// colors on their next draw without being told.
//
// SwitchableTheme is safe for concurrent use.
type SwitchableTheme struct {
	mu      sync.RWMutex
	current ThemeProvider
}

// NewSwitchableTheme creates a SwitchableTheme starting at p.
func NewSwitchableTheme(p ThemeProvider) *SwitchableTheme {
	return &SwitchableTheme{current: p}
}

// Set selects the active provider.
func (s *SwitchableTheme) Set(p ThemeProvider) {
	s.mu.Lock()
	s.current = p
	s.mu.Unlock()
}

// Token implements ThemeProvider.
func (s *SwitchableTheme) Token(name string) (string, bool) {
	s.mu.RLock()
	p := s.current
	s.mu.RUnlock()
	if p == nil {
		return "", false
	}
	return p.Token(name)
}

// ThemeByName returns LightTheme or DarkTheme for "light" and "dark".
func ThemeByName(name string) (Theme, bool) {
	switch name {
	case "light":
		return LightTheme, true
	case "dark":
		return DarkTheme, true
	}
	return nil, false
}
