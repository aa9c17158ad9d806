// Package search ranks history entries against free-text queries using the
// token index.
package search

import (
	"sort"
	"strings"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/Lele-bigLe/chrome-DevTools-JSON/internal/indexer"
)

// Result is one ranked history entry.
type Result struct {
	EntryID    string   `json:"entry_id"`
	AddedAtMs  int64    `json:"added_at_ms"`
	Size       int      `json:"size"`
	Preview    string   `json:"preview"`
	TopKeys    []string `json:"top_keys,omitempty"`
	Score      float64  `json:"score"`
	Highlights []string `json:"highlights,omitempty"` // query tokens that matched
}

// Engine answers search queries over one index.
type Engine struct {
	index *indexer.Index
}

// NewEngine creates a search engine over the given index.
func NewEngine(ix *indexer.Index) *Engine {
	return &Engine{index: ix}
}

// Search returns up to limit entries matching all query tokens, best first.
// An empty query lists the most recent entries unranked.
func (e *Engine) Search(query string, limit int) ([]*Result, error) {
	if err := e.index.Refresh(); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = 10
	}

	tokens := indexer.Tokenize(query)
	if len(tokens) == 0 {
		return e.recent(limit), nil
	}

	var matched *roaring.Bitmap
	hits := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		bm := e.index.Lookup(tok)
		if bm == nil {
			// Require every token; a single miss empties the result.
			return []*Result{}, nil
		}
		hits = append(hits, tok)
		if matched == nil {
			matched = bm.Clone()
		} else {
			matched.And(bm)
		}
	}
	if matched == nil || matched.IsEmpty() {
		return []*Result{}, nil
	}

	docs := e.index.Docs()
	results := make([]*Result, 0, matched.GetCardinality())
	it := matched.Iterator()
	for it.HasNext() {
		meta, ok := e.index.Doc(it.Next())
		if !ok {
			continue
		}
		results = append(results, &Result{
			EntryID:    meta.EntryID,
			AddedAtMs:  meta.AddedAtMs,
			Size:       meta.Size,
			Preview:    meta.Preview,
			TopKeys:    meta.TopKeys,
			Score:      score(meta, hits, len(docs)),
			Highlights: hits,
		})
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return results[i].AddedAtMs > results[j].AddedAtMs
	})
	if len(results) > limit {
		results = results[:limit]
	}
	return results, nil
}

// score blends key relevance and recency. Docs sit most-recent-first, so a
// low DocID means a fresher entry.
func score(meta *indexer.EntryMeta, tokens []string, total int) float64 {
	s := 1.0

	// Boost entries whose top-level keys contain a query token.
	for _, tok := range tokens {
		for _, key := range meta.TopKeys {
			if strings.Contains(strings.ToLower(key), tok) {
				s += 0.5
			}
		}
	}

	if total > 1 {
		recency := 1.0 - float64(meta.DocID)/float64(total-1)
		s += recency
	} else {
		s += 1.0
	}
	return s
}

func (e *Engine) recent(limit int) []*Result {
	docs := e.index.Docs()
	results := make([]*Result, 0, limit)
	for _, meta := range docs {
		if len(results) == limit {
			break
		}
		results = append(results, &Result{
			EntryID:   meta.EntryID,
			AddedAtMs: meta.AddedAtMs,
			Size:      meta.Size,
			Preview:   meta.Preview,
			TopKeys:   meta.TopKeys,
			Score:     0,
		})
	}
	return results
}
