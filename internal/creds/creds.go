// Package creds persists the opaque basic-auth credential token.
// The token is stored in ~/.config/carfind/credentials.toml and survives
// restarts; it is the only place credentials live on disk.
package creds

import (
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	toml "github.com/pelletier/go-toml/v2"
)

const defaultCredsPath = "~/.config/carfind/credentials.toml"

// fileFormat is the on-disk shape.
type fileFormat struct {
	Token    string `toml:"token"`
	Username string `toml:"username"`
}

// Store wraps the persisted credential token. The zero value is unusable;
// construct with Load.
type Store struct {
	path string

	mu       sync.Mutex
	token    string
	username string
}

// DefaultPath returns the default credentials file path.
func DefaultPath() string {
	return defaultCredsPath
}

// Load reads the stored credential, degrading to an empty store when the
// file is missing or unreadable. Loading never fails: an unreadable token
// only means the user signs in again.
func Load(path string) *Store {
	s := &Store{path: path}

	resolved, err := resolvePath(path)
	if err != nil {
		return s
	}
	raw, err := os.ReadFile(resolved)
	if err != nil {
		return s
	}
	var file fileFormat
	if err := toml.Unmarshal(raw, &file); err != nil {
		return s
	}
	s.token = strings.TrimSpace(file.Token)
	s.username = strings.TrimSpace(file.Username)
	return s
}

// Token returns the stored opaque token, or "" when logged out.
func (s *Store) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// Username returns the username the token was derived from.
func (s *Store) Username() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.username
}

// Set derives the opaque token from the credential pair and persists it.
func (s *Store) Set(username, password string) error {
	token := base64.StdEncoding.EncodeToString([]byte(username + ":" + password))

	s.mu.Lock()
	s.token = token
	s.username = username
	s.mu.Unlock()

	resolved, err := resolvePath(s.path)
	if err != nil {
		return fmt.Errorf("resolve credentials path: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(resolved), 0o755); err != nil {
		return fmt.Errorf("create credentials dir: %w", err)
	}
	raw, err := toml.Marshal(fileFormat{Token: token, Username: username})
	if err != nil {
		return fmt.Errorf("marshal credentials: %w", err)
	}
	// The token is reversible, so keep the file private to the user.
	if err := os.WriteFile(resolved, raw, 0o600); err != nil {
		return fmt.Errorf("write credentials: %w", err)
	}
	return nil
}

// Clear forgets the token in memory and removes the file.
func (s *Store) Clear() error {
	s.mu.Lock()
	s.token = ""
	s.username = ""
	s.mu.Unlock()

	resolved, err := resolvePath(s.path)
	if err != nil {
		return fmt.Errorf("resolve credentials path: %w", err)
	}
	if err := os.Remove(resolved); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove credentials: %w", err)
	}
	return nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultCredsPath)
	}
	return expandPath(path)
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
