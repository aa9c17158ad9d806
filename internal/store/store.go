// Package store provides the key-value blob store used for persisted
// history, display options and the theme flag.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Store is a key-value blob store with get/set/remove semantics.
type Store interface {
	// Get returns the blob for key and whether it exists.
	Get(key string) ([]byte, bool, error)
	// Set stores the blob under key, replacing any previous value.
	Set(key string, blob []byte) error
	// Remove deletes the blob for key; removing a missing key is not an error.
	Remove(key string) error
}

// MemoryStore is an in-process Store. The zero value is not usable; use
// NewMemoryStore.
type MemoryStore struct {
	mu    sync.RWMutex
	blobs map[string][]byte
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{blobs: make(map[string][]byte)}
}

// Get returns the blob for key.
func (s *MemoryStore) Get(key string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	blob, ok := s.blobs[key]
	if !ok {
		return nil, false, nil
	}
	out := make([]byte, len(blob))
	copy(out, blob)
	return out, true, nil
}

// Set stores the blob under key.
func (s *MemoryStore) Set(key string, blob []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := make([]byte, len(blob))
	copy(cp, blob)
	s.blobs[key] = cp
	return nil
}

// Remove deletes the blob for key.
func (s *MemoryStore) Remove(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.blobs, key)
	return nil
}

// FileStore persists all blobs in a single JSON file, rewritten on every
// mutation. Suited to the small blob counts this server keeps (one history
// document, options, theme). Blob values are base64-encoded in the file.
type FileStore struct {
	mu    sync.Mutex
	path  string
	blobs map[string][]byte
}

// NewFileStore opens (or creates) the store file at path.
func NewFileStore(path string) (*FileStore, error) {
	s := &FileStore{path: path, blobs: make(map[string][]byte)}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening store file: %w", err)
	}
	if len(data) > 0 {
		if err := json.Unmarshal(data, &s.blobs); err != nil {
			return nil, fmt.Errorf("reading store file %s: %w", path, err)
		}
	}
	return s, nil
}

// Get returns the blob for key.
func (s *FileStore) Get(key string) ([]byte, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	blob, ok := s.blobs[key]
	if !ok {
		return nil, false, nil
	}
	out := make([]byte, len(blob))
	copy(out, blob)
	return out, true, nil
}

// Set stores the blob under key and rewrites the store file.
func (s *FileStore) Set(key string, blob []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := make([]byte, len(blob))
	copy(cp, blob)
	s.blobs[key] = cp
	return s.flushLocked()
}

// Remove deletes the blob for key and rewrites the store file.
func (s *FileStore) Remove(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.blobs[key]; !ok {
		return nil
	}
	delete(s.blobs, key)
	return s.flushLocked()
}

func (s *FileStore) flushLocked() error {
	data, err := json.Marshal(s.blobs)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}
