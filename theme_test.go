// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ggchart

import (
	"sync"
	"testing"

	"github.com/gogpu/gg"
)

func TestResolveColorsNilProvider(t *testing.T) {
	if got := ResolveColors(nil); got != FallbackColors {
		t.Errorf("ResolveColors(nil) = %+v, want %+v", got, FallbackColors)
	}
}

func TestResolveColorsFallbackPerToken(t *testing.T) {
	p := Theme{
		TokenForeground: "#112233",
		TokenBackground: "not-a-color",
	}
	got := ResolveColors(p)

	if want := MustParseColor("#112233"); got.Foreground != want {
		t.Errorf("Foreground = %+v, want %+v", got.Foreground, want)
	}
	if got.MutedForeground != FallbackColors.MutedForeground {
		t.Errorf("MutedForeground = %+v, want fallback %+v", got.MutedForeground, FallbackColors.MutedForeground)
	}
	if got.Background != FallbackColors.Background {
		t.Errorf("Background = %+v, want fallback %+v", got.Background, FallbackColors.Background)
	}
}

func TestLightDarkThemes(t *testing.T) {
	light := ResolveColors(LightTheme)
	dark := ResolveColors(DarkTheme)

	if !colorNear(light.Background, gg.RGB(1, 1, 1), colorEps) {
		t.Errorf("light background = %+v, want white", light.Background)
	}
	if light.Foreground != dark.Background {
		t.Errorf("light foreground %+v != dark background %+v", light.Foreground, dark.Background)
	}
	if light.Background == dark.Background {
		t.Error("light and dark backgrounds are equal")
	}
}

func TestThemeByName(t *testing.T) {
	for _, name := range []string{"light", "dark"} {
		if _, ok := ThemeByName(name); !ok {
			t.Errorf("ThemeByName(%q) ok = false", name)
		}
	}
	if _, ok := ThemeByName("sepia"); ok {
		t.Error("ThemeByName(sepia) ok = true, want false")
	}
}

func TestThemeFunc(t *testing.T) {
	calls := 0
	f := ThemeFunc(func(name string) (string, bool) {
		calls++
		if name == TokenForeground {
			return "#ff0000", true
		}
		return "", false
	})
	got := ResolveColors(f)
	if got.Foreground != gg.RGB(1, 0, 0) {
		t.Errorf("Foreground = %+v, want red", got.Foreground)
	}
	if calls != 3 {
		t.Errorf("provider consulted %d times, want 3", calls)
	}
}

func TestSwitchableTheme(t *testing.T) {
	st := NewSwitchableTheme(LightTheme)
	before := ResolveColors(st)

	st.Set(DarkTheme)
	after := ResolveColors(st)

	if before.Background == after.Background {
		t.Error("background did not change after switching theme")
	}
	if after != ResolveColors(DarkTheme) {
		t.Errorf("ResolveColors after Set(DarkTheme) = %+v", after)
	}

	st.Set(nil)
	if got := ResolveColors(st); got != FallbackColors {
		t.Errorf("ResolveColors with nil current = %+v, want fallback", got)
	}
}

func TestSwitchableThemeConcurrent(t *testing.T) {
	st := NewSwitchableTheme(LightTheme)
	var wg sync.WaitGroup
	for i := range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if i%2 == 0 {
				st.Set(DarkTheme)
			} else {
				_ = ResolveColors(st)
			}
		}()
	}
	wg.Wait()
}
