package driver

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// Store persists the single session record. Writes go to a temporary
// file in the target directory followed by a rename, so a reader never
// observes a partially written record. Every operation re-reads disk;
// nothing is cached in memory.
type Store struct {
	fs   afero.Fs
	path string
}

// NewStore returns a store backed by fs at the given file path.
func NewStore(fs afero.Fs, path string) *Store {
	return &Store{fs: fs, path: path}
}

// Path returns the file the store reads and writes.
func (s *Store) Path() string { return s.path }

// Load reads the persisted session record. A missing file is ErrNoSession;
// an unreadable or incomplete record is its own error, since silently
// treating it as absent could leak a running driver process.
func (s *Store) Load() (*Session, error) {
	data, err := afero.ReadFile(s.fs, s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNoSession
		}
		return nil, fmt.Errorf("read session record %s: %w", s.path, err)
	}
	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return nil, fmt.Errorf("parse session record %s: %w", s.path, err)
	}
	if sess.Port <= 0 || sess.SessionID == "" || sess.PID <= 0 {
		return nil, fmt.Errorf("session record %s is incomplete", s.path)
	}
	return &sess, nil
}

// Save writes the session record atomically, creating the containing
// directory on demand.
func (s *Store) Save(sess *Session) error {
	dir := filepath.Dir(s.path)
	if err := s.fs.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create state directory %s: %w", dir, err)
	}
	data, err := json.MarshalIndent(sess, "", "  ")
	if err != nil {
		return fmt.Errorf("encode session record: %w", err)
	}
	data = append(data, '\n')

	tmpPath := s.path + ".tmp"
	_ = s.fs.Remove(tmpPath)
	if err := afero.WriteFile(s.fs, tmpPath, data, 0o600); err != nil {
		return fmt.Errorf("write session record: %w", err)
	}
	if err := s.fs.Rename(tmpPath, s.path); err != nil {
		_ = s.fs.Remove(tmpPath)
		return fmt.Errorf("finalize session record: %w", err)
	}
	return nil
}

// Clear removes the session record. Clearing an absent record succeeds.
func (s *Store) Clear() error {
	if err := s.fs.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove session record %s: %w", s.path, err)
	}
	return nil
}
