package prefs

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	p := Load(filepath.Join(t.TempDir(), "prefs.toml"))
	if p.Theme != "Onyx" || p.Sort != "price-low" {
		t.Fatalf("defaults = %#v", p)
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "prefs.toml")

	if err := Save(path, Prefs{Theme: "Daylight", Sort: "newest"}); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	p := Load(path)
	if p.Theme != "Daylight" || p.Sort != "newest" {
		t.Fatalf("round trip = %#v", p)
	}
}

func TestLoad_BlankFieldsFallBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.toml")
	if err := os.WriteFile(path, []byte("theme = \"\"\nsort = \" \"\n"), 0o644); err != nil {
		t.Fatalf("write prefs: %v", err)
	}
	p := Load(path)
	if p.Theme != "Onyx" || p.Sort != "price-low" {
		t.Fatalf("blank fields not defaulted: %#v", p)
	}
}
