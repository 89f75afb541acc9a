package session

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"digital-kuota-backend/entities"
)

type (
	// Store holds the current customer snapshot. The snapshot is a copy of the
	// store record at the moment it was set; after any mutation of the user
	// record the caller must Set the store's response back, or the snapshot
	// silently diverges. A persisted session never expires; it lives until
	// Clear (logout) or the next Set.
	Store interface {
		Get() (*entities.User, bool)
		Set(user *entities.User) error
		Clear() error
	}

	fileStore struct {
		mu      sync.RWMutex
		path    string
		current *entities.User
	}
)

// NewFileStore restores any snapshot persisted at path, or starts absent.
// A missing or unreadable snapshot is not an error, just an empty session.
func NewFileStore(path string) Store {
	s := &fileStore{path: path}

	data, err := os.ReadFile(path)
	if err != nil {
		return s
	}
	var user entities.User
	if err := json.Unmarshal(data, &user); err != nil {
		return s
	}
	s.current = &user
	return s
}

func (s *fileStore) Get() (*entities.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return nil, false
	}
	snapshot := *s.current
	return &snapshot, true
}

func (s *fileStore) Set(user *entities.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := *user
	data, err := json.Marshal(&snapshot)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(s.path), os.ModePerm); err != nil {
		return err
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return err
	}
	s.current = &snapshot
	return nil
}

func (s *fileStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	s.current = nil
	return nil
}
