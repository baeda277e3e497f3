package profile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/stacktower/stacktower/internal/game"
)

// Store owns the persisted profile. All mutation goes through Update,
// which runs the Apply reducer and writes the result back to disk.
// Callers are expected to be the UI event loop; there is no internal
// locking beyond sequential method calls.
type Store struct {
	path    string
	current Profile
}

// Open loads the profile from path, creating a factory-default profile
// (and parent directories) when no file exists yet.
func Open(path string) (*Store, error) {
	path, err := expandHome(path)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("profile: cannot create directory %s: %w", filepath.Dir(path), err)
	}

	s := &Store{path: path, current: Factory()}

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		if err := s.save(); err != nil {
			return nil, err
		}
		return s, nil
	case err != nil:
		return nil, fmt.Errorf("profile: cannot read %s: %w", path, err)
	}

	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("profile: cannot parse %s: %w", path, err)
	}
	s.current = normalize(p)
	return s, nil
}

// Current returns a snapshot of the profile. The snapshot is a deep
// copy; mutating it has no effect on the store.
func (s *Store) Current() Profile {
	return clone(s.current)
}

// Path returns the location of the profile file.
func (s *Store) Path() string {
	return s.path
}

// Update applies a patch through the reducer and persists the result.
// On persistence failure the in-memory state is left unchanged.
func (s *Store) Update(patch Patch) error {
	prev := s.current
	s.current = Apply(s.current, patch)
	if err := s.save(); err != nil {
		s.current = prev
		return err
	}
	return nil
}

// SetDifficulty records the selected difficulty level.
func (s *Store) SetDifficulty(d game.Difficulty) error {
	if !d.Valid() {
		return fmt.Errorf("profile: unknown difficulty %q", d)
	}
	return s.Update(Patch{Difficulty: &d})
}

// ResetToFactory replaces the profile with the canonical fresh state.
func (s *Store) ResetToFactory() error {
	prev := s.current
	s.current = Factory()
	if err := s.save(); err != nil {
		s.current = prev
		return err
	}
	return nil
}

func (s *Store) save() error {
	data, err := yaml.Marshal(s.current)
	if err != nil {
		return fmt.Errorf("profile: cannot encode profile: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("profile: cannot write %s: %w", s.path, err)
	}
	return nil
}

// expandHome resolves a leading ~ to the user's home directory.
func expandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("profile: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}
