// Package indexer builds an inverted token index over history entries using
// roaring bitmaps, so history search stays fast as the buffer fills.
package indexer

import (
	"log/slog"
	"sync"

	"github.com/RoaringBitmap/roaring/v2"
	"golang.org/x/sync/singleflight"

	"github.com/Lele-bigLe/chrome-DevTools-JSON/internal/history"
	"github.com/Lele-bigLe/chrome-DevTools-JSON/pkg/jsonvalue"
)

const previewMaxLen = 120

// EntryMeta is the per-document metadata kept alongside the bitmaps.
type EntryMeta struct {
	DocID     uint32
	EntryID   string
	AddedAtMs int64
	Size      int
	Preview   string
	TopKeys   []string
}

// Index is an inverted token index over the history buffer. It rebuilds
// lazily: callers hit Refresh before querying, and rebuilds are collapsed
// through singleflight so concurrent searches trigger one scan.
type Index struct {
	history *history.History
	logger  *slog.Logger

	mu      sync.RWMutex
	tokens  map[string]*roaring.Bitmap
	docs    []*EntryMeta
	byID    map[string]*EntryMeta
	version int64
	built   bool

	group singleflight.Group
}

// New creates an index over the given history.
func New(h *history.History, logger *slog.Logger) *Index {
	return &Index{
		history: h,
		logger:  logger,
		tokens:  make(map[string]*roaring.Bitmap),
		byID:    make(map[string]*EntryMeta),
	}
}

// Refresh rebuilds the index when the history has changed since the last
// build. Safe for concurrent use.
func (ix *Index) Refresh() error {
	current := ix.history.Version()

	ix.mu.RLock()
	fresh := ix.built && ix.version == current
	ix.mu.RUnlock()
	if fresh {
		return nil
	}

	_, err, _ := ix.group.Do("rebuild", func() (any, error) {
		return nil, ix.rebuild(current)
	})
	return err
}

func (ix *Index) rebuild(version int64) error {
	entries, err := ix.history.List()
	if err != nil {
		return err
	}

	tokens := make(map[string]*roaring.Bitmap)
	docs := make([]*EntryMeta, 0, len(entries))
	byID := make(map[string]*EntryMeta, len(entries))

	for i, e := range entries {
		docID := uint32(i)
		meta := &EntryMeta{
			DocID:     docID,
			EntryID:   e.ID,
			AddedAtMs: e.AddedAtMs,
			Size:      e.Size,
			Preview:   preview(e.Raw),
			TopKeys:   topKeys(e.Raw),
		}
		docs = append(docs, meta)
		byID[e.ID] = meta

		for _, tok := range Tokenize(e.Raw) {
			bm, ok := tokens[tok]
			if !ok {
				bm = roaring.New()
				tokens[tok] = bm
			}
			bm.Add(docID)
		}
	}

	ix.mu.Lock()
	ix.tokens = tokens
	ix.docs = docs
	ix.byID = byID
	ix.version = version
	ix.built = true
	ix.mu.Unlock()

	ix.logger.Debug("index rebuilt", "entries", len(docs), "tokens", len(tokens))
	return nil
}

// Lookup returns the bitmap of documents containing the token, or nil.
// The returned bitmap must not be mutated.
func (ix *Index) Lookup(token string) *roaring.Bitmap {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	return ix.tokens[token]
}

// Docs returns the metadata for all indexed documents, most recent first.
func (ix *Index) Docs() []*EntryMeta {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	return ix.docs
}

// Doc returns the metadata for one document ID.
func (ix *Index) Doc(docID uint32) (*EntryMeta, bool) {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	if int(docID) >= len(ix.docs) {
		return nil, false
	}
	return ix.docs[docID], true
}

// preview returns the first line of raw, cut to previewMaxLen runes.
func preview(raw string) string {
	for i, r := range raw {
		if r == '\n' {
			raw = raw[:i]
			break
		}
	}
	runes := []rune(raw)
	if len(runes) > previewMaxLen {
		return string(runes[:previewMaxLen]) + "..."
	}
	return raw
}

// topKeys extracts the top-level object keys of a stored input, when it
// parses as a JSON object. Non-object and malformed inputs yield nil.
func topKeys(raw string) []string {
	v, err := jsonvalue.DecodeString(raw)
	if err != nil {
		return nil
	}
	obj, ok := v.(*jsonvalue.Object)
	if !ok {
		return nil
	}
	keys := make([]string, 0, obj.Len())
	for pair := obj.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	return keys
}
