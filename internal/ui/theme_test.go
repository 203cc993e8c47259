package ui

import (
	"testing"

	"github.com/five82/lullaby/internal/countdown"
	"github.com/five82/lullaby/internal/prefs"
)

func TestThemeCycleCoversEveryTheme(t *testing.T) {
	seen := map[string]bool{}
	name := themeOrder[0]
	for range themeOrder {
		seen[name] = true
		name = NextTheme(name)
	}
	if len(seen) != len(themes) {
		t.Fatalf("cycling visits %d themes, want %d", len(seen), len(themes))
	}
	if name != themeOrder[0] {
		t.Fatalf("cycle did not return to %s, got %s", themeOrder[0], name)
	}
}

func TestNextTheme(t *testing.T) {
	if got := NextTheme("Nightfox"); got != "Kanagawa" {
		t.Fatalf("NextTheme(Nightfox) = %q, want Kanagawa", got)
	}
	if got := NextTheme("Slate"); got != "Nightfox" {
		t.Fatalf("NextTheme(Slate) = %q, want Nightfox", got)
	}
	if got := NextTheme("Unknown"); got != "Nightfox" {
		t.Fatalf("NextTheme(Unknown) = %q, want Nightfox", got)
	}
}

func TestGetTheme(t *testing.T) {
	for _, name := range themeOrder {
		if got := GetTheme(name).Name; got != name {
			t.Fatalf("GetTheme(%s).Name = %q", name, got)
		}
	}
	if got := GetTheme("Unknown").Name; got != "Nightfox" {
		t.Fatalf("GetTheme(Unknown).Name = %q, want Nightfox (fallback)", got)
	}
}

func TestDefaultPrefsThemeExists(t *testing.T) {
	if got := GetTheme(prefs.DefaultTheme()).Name; got != prefs.DefaultTheme() {
		t.Fatalf("prefs default theme %q is not a known theme", prefs.DefaultTheme())
	}
}

func TestThemesCoverEveryBadge(t *testing.T) {
	badges := []string{
		countdown.StateIdle.String(),
		countdown.StateRunning.String(),
		countdown.StateCompleting.String(),
		badgeWarned,
	}
	for _, name := range themeOrder {
		th := GetTheme(name)
		for _, b := range badges {
			if th.StatusColors[b] == "" {
				t.Fatalf("theme %s has no color for %q", name, b)
			}
		}
		if th.ProgressStart == "" || th.ProgressEnd == "" {
			t.Fatalf("theme %s has no progress gradient", name)
		}
	}
}
