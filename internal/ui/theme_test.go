package ui

import "testing"

func TestGetThemeFallsBackToDefault(t *testing.T) {
	if got := GetTheme("NoSuchTheme"); got.Name != "Onyx" {
		t.Fatalf("GetTheme fallback = %q, want Onyx", got.Name)
	}
	if got := GetTheme("Daylight"); got.Name != "Daylight" {
		t.Fatalf("GetTheme = %q, want Daylight", got.Name)
	}
}

func TestNextThemeCycles(t *testing.T) {
	seen := map[string]bool{}
	name := themes[0].Name
	for range themes {
		seen[name] = true
		name = NextTheme(name)
	}
	if name != themes[0].Name {
		t.Fatalf("cycle did not wrap, ended at %q", name)
	}
	if len(seen) != len(themes) {
		t.Fatalf("cycle visited %d themes, want %d", len(seen), len(themes))
	}
}
