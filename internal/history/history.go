// Package history keeps the capped ring buffer of recent raw inputs plus
// persisted display preferences, all on top of the blob store.
package history

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sync"
	"sync/atomic"
	"time"
	"unicode/utf8"

	"github.com/zeebo/blake3"

	"github.com/Lele-bigLe/chrome-DevTools-JSON/internal/store"
)

// Store keys.
const (
	keyHistory = "history"
	keyOptions = "options"
	keyTheme   = "theme"
)

// Entry is one remembered raw input, most recent first in listings.
type Entry struct {
	ID        string `json:"id"`
	AddedAtMs int64  `json:"added_at_ms"`
	Raw       string `json:"raw"`
	Size      int    `json:"size"`                // original size in bytes
	Truncated bool   `json:"truncated,omitempty"` // raw was cut at the size ceiling
}

// History is the ring buffer. Adding an input the buffer already holds
// (same content hash) moves it to the front instead of duplicating it.
type History struct {
	mu            sync.Mutex
	store         store.Store
	capacity      int
	entryMaxBytes int
	version       atomic.Int64 // bumped on every mutation, read by the indexer
}

// New creates a History over the given store.
func New(s store.Store, capacity, entryMaxBytes int) *History {
	if capacity <= 0 {
		capacity = 1
	}
	return &History{store: s, capacity: capacity, entryMaxBytes: entryMaxBytes}
}

// Version returns a counter that changes whenever history content changes.
func (h *History) Version() int64 {
	return h.version.Load()
}

// EntryID returns the content hash used as an entry's identifier.
func EntryID(raw []byte) string {
	sum := blake3.Sum256(raw)
	return hex.EncodeToString(sum[:8])
}

// Add remembers a raw input at the front of the buffer, truncating it above
// the size ceiling and evicting the oldest entry past capacity.
func (h *History) Add(raw []byte) (*Entry, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	entry := &Entry{
		ID:        EntryID(raw),
		AddedAtMs: time.Now().UnixMilli(),
		Size:      len(raw),
	}
	if h.entryMaxBytes > 0 && len(raw) > h.entryMaxBytes {
		entry.Raw = string(truncateAtRuneBoundary(raw, h.entryMaxBytes))
		entry.Truncated = true
	} else {
		entry.Raw = string(raw)
	}

	entries, err := h.loadLocked()
	if err != nil {
		return nil, err
	}

	// Drop a previous occurrence of the same content, then prepend.
	kept := make([]*Entry, 0, len(entries)+1)
	kept = append(kept, entry)
	for _, e := range entries {
		if e.ID == entry.ID {
			continue
		}
		kept = append(kept, e)
	}
	if len(kept) > h.capacity {
		kept = kept[:h.capacity]
	}

	if err := h.saveLocked(kept); err != nil {
		return nil, err
	}
	h.version.Add(1)
	return entry, nil
}

// truncateAtRuneBoundary cuts raw at max bytes, backing up so the cut never
// splits a multi-byte rune. Callers guarantee len(raw) > max > 0.
func truncateAtRuneBoundary(raw []byte, max int) []byte {
	for max > 0 && !utf8.RuneStart(raw[max]) {
		max--
	}
	return raw[:max]
}

// List returns all entries, most recent first.
func (h *History) List() ([]*Entry, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.loadLocked()
}

// Get returns the entry with the given ID.
func (h *History) Get(id string) (*Entry, bool, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	entries, err := h.loadLocked()
	if err != nil {
		return nil, false, err
	}
	for _, e := range entries {
		if e.ID == id {
			return e, true, nil
		}
	}
	return nil, false, nil
}

// Clear removes all entries.
func (h *History) Clear() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if err := h.store.Remove(keyHistory); err != nil {
		return fmt.Errorf("clearing history: %w", err)
	}
	h.version.Add(1)
	return nil
}

func (h *History) loadLocked() ([]*Entry, error) {
	blob, ok, err := h.store.Get(keyHistory)
	if err != nil {
		return nil, fmt.Errorf("loading history: %w", err)
	}
	if !ok {
		return nil, nil
	}
	var entries []*Entry
	if err := json.Unmarshal(blob, &entries); err != nil {
		return nil, fmt.Errorf("decoding history: %w", err)
	}
	return entries, nil
}

func (h *History) saveLocked(entries []*Entry) error {
	blob, err := json.Marshal(entries)
	if err != nil {
		return err
	}
	if err := h.store.Set(keyHistory, blob); err != nil {
		return fmt.Errorf("saving history: %w", err)
	}
	return nil
}
