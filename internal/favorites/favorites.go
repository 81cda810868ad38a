// Package favorites persists the set of vehicle ids the user marked as
// saved. The set lives in ~/.config/carfind/saved.toml, is keyed by backend
// id, and may reference ids that no longer exist in the inventory; readers
// must tolerate that.
package favorites

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	toml "github.com/pelletier/go-toml/v2"
)

const defaultSavedPath = "~/.config/carfind/saved.toml"

type fileFormat struct {
	Saved []int64 `toml:"saved"`
}

// Store is the persisted saved-vehicle set. Persistence is best-effort:
// a write failure never blocks the toggle.
type Store struct {
	path string

	mu  sync.Mutex
	ids map[int64]bool
}

// DefaultPath returns the default saved-set file path.
func DefaultPath() string {
	return defaultSavedPath
}

// Load reads the saved set, degrading to an empty set when the file is
// missing or unreadable.
func Load(path string) *Store {
	s := &Store{path: path, ids: map[int64]bool{}}

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
	for _, id := range file.Saved {
		s.ids[id] = true
	}
	return s
}

// IsSaved reports whether the id is in the saved set.
func (s *Store) IsSaved(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ids[id]
}

// Toggle flips membership for the id, persists immediately, and returns the
// new membership state.
func (s *Store) Toggle(id int64) bool {
	s.mu.Lock()
	saved := !s.ids[id]
	if saved {
		s.ids[id] = true
	} else {
		delete(s.ids, id)
	}
	snapshot := s.sortedIDs()
	s.mu.Unlock()

	// Best effort: quota or permission problems must not break the flow.
	_ = s.persist(snapshot)
	return saved
}

// Count returns the size of the saved set.
func (s *Store) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.ids)
}

func (s *Store) sortedIDs() []int64 {
	ids := make([]int64, 0, len(s.ids))
	for id := range s.ids {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func (s *Store) persist(ids []int64) error {
	resolved, err := resolvePath(s.path)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(resolved), 0o755); err != nil {
		return err
	}
	raw, err := toml.Marshal(fileFormat{Saved: ids})
	if err != nil {
		return err
	}
	return os.WriteFile(resolved, raw, 0o644)
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultSavedPath)
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
