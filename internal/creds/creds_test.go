package creds

import (
	"encoding/base64"
	"os"
	"path/filepath"
	"testing"
)

func TestStore_SetPersistsAndLoadRestores(t *testing.T) {
	path := filepath.Join(t.TempDir(), "credentials.toml")

	s := Load(path)
	if s.Token() != "" {
		t.Fatalf("fresh store has token %q", s.Token())
	}

	if err := s.Set("admin", "admin123"); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}
	want := base64.StdEncoding.EncodeToString([]byte("admin:admin123"))
	if s.Token() != want {
		t.Fatalf("token = %q, want %q", s.Token(), want)
	}
	if s.Username() != "admin" {
		t.Fatalf("username = %q, want admin", s.Username())
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("credentials file not written: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0o600 {
		t.Fatalf("credentials file mode = %o, want 600", perm)
	}

	restored := Load(path)
	if restored.Token() != want || restored.Username() != "admin" {
		t.Fatalf("reload lost credentials: token=%q username=%q", restored.Token(), restored.Username())
	}
}

func TestStore_ClearRemovesFileAndIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "credentials.toml")

	s := Load(path)
	if err := s.Set("admin", "admin123"); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}
	if err := s.Clear(); err != nil {
		t.Fatalf("Clear returned error: %v", err)
	}
	if s.Token() != "" || s.Username() != "" {
		t.Fatalf("store not empty after Clear")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("credentials file still present after Clear")
	}
	// Clearing an already-clear store is fine.
	if err := s.Clear(); err != nil {
		t.Fatalf("second Clear returned error: %v", err)
	}
}

func TestLoad_CorruptFileDegradesToEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "credentials.toml")
	if err := os.WriteFile(path, []byte("not toml ["), 0o600); err != nil {
		t.Fatalf("write corrupt file: %v", err)
	}
	s := Load(path)
	if s.Token() != "" {
		t.Fatalf("corrupt file produced token %q", s.Token())
	}
}
