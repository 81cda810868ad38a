package favorites

import (
	"os"
	"path/filepath"
	"testing"
)

// writeBlocker creates a plain file where the store expects a directory,
// making every subsequent persist attempt fail.
func writeBlocker(path string) error {
	return os.WriteFile(path, []byte("blocker"), 0o644)
}

func TestToggle_IsAnInvolution(t *testing.T) {
	s := Load(filepath.Join(t.TempDir(), "saved.toml"))

	if s.IsSaved(7) {
		t.Fatalf("fresh store reports 7 saved")
	}
	if !s.Toggle(7) {
		t.Fatalf("first toggle should save")
	}
	if !s.IsSaved(7) {
		t.Fatalf("7 not saved after toggle")
	}
	if s.Toggle(7) {
		t.Fatalf("second toggle should unsave")
	}
	if s.IsSaved(7) || s.Count() != 0 {
		t.Fatalf("double toggle changed the set")
	}
}

func TestToggle_PersistsAcrossLoads(t *testing.T) {
	path := filepath.Join(t.TempDir(), "saved.toml")

	s := Load(path)
	s.Toggle(3)
	s.Toggle(1)
	s.Toggle(2)
	s.Toggle(3) // back off

	restored := Load(path)
	if restored.Count() != 2 {
		t.Fatalf("restored count = %d, want 2", restored.Count())
	}
	for _, id := range []int64{1, 2} {
		if !restored.IsSaved(id) {
			t.Fatalf("id %d lost across reload", id)
		}
	}
	if restored.IsSaved(3) {
		t.Fatalf("toggled-off id survived reload")
	}
}

func TestToggle_PersistenceFailureIsSwallowed(t *testing.T) {
	// A directory that cannot be created under a file path makes persist fail.
	base := filepath.Join(t.TempDir(), "blocker")
	s := Load(filepath.Join(base, "saved.toml"))

	if err := writeBlocker(base); err != nil {
		t.Fatalf("prepare blocker: %v", err)
	}
	if !s.Toggle(5) {
		t.Fatalf("toggle result lost when persistence fails")
	}
	if !s.IsSaved(5) {
		t.Fatalf("in-memory set not updated when persistence fails")
	}
}
