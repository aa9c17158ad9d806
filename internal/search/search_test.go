package search

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Lele-bigLe/chrome-DevTools-JSON/internal/history"
	"github.com/Lele-bigLe/chrome-DevTools-JSON/internal/indexer"
	"github.com/Lele-bigLe/chrome-DevTools-JSON/internal/store"
)

func newTestEngine(t *testing.T) (*history.History, *Engine) {
	t.Helper()
	h := history.New(store.NewMemoryStore(), 50, 0)
	return h, NewEngine(indexer.New(h, slog.Default()))
}

func TestSearch_MatchesTokens(t *testing.T) {
	h, e := newTestEngine(t)

	users, err := h.Add([]byte(`{"users": [{"name": "alice"}]}`))
	require.NoError(t, err)
	_, err = h.Add([]byte(`{"orders": [{"total": 10}]}`))
	require.NoError(t, err)

	results, err := e.Search("alice", 10)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, users.ID, results[0].EntryID)
	assert.Equal(t, []string{"alice"}, results[0].Highlights)
}

func TestSearch_TokensAreANDed(t *testing.T) {
	h, e := newTestEngine(t)

	_, err := h.Add([]byte(`{"name": "alice", "role": "admin"}`))
	require.NoError(t, err)
	_, err = h.Add([]byte(`{"name": "alice"}`))
	require.NoError(t, err)

	results, err := e.Search("alice admin", 10)
	require.NoError(t, err)
	assert.Len(t, results, 1)
}

func TestSearch_MissingTokenEmptiesResult(t *testing.T) {
	h, e := newTestEngine(t)

	_, err := h.Add([]byte(`{"name": "alice"}`))
	require.NoError(t, err)

	results, err := e.Search("alice nosuchtoken", 10)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestSearch_KeyMatchScoresHigher(t *testing.T) {
	h, e := newTestEngine(t)

	// "status" appears as a value here but as a key below.
	asValue, err := h.Add([]byte(`{"note": "status"}`))
	require.NoError(t, err)
	asKey, err := h.Add([]byte(`{"status": 200}`))
	require.NoError(t, err)

	results, err := e.Search("status", 10)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, asKey.ID, results[0].EntryID)
	assert.Equal(t, asValue.ID, results[1].EntryID)
}

func TestSearch_EmptyQueryListsRecent(t *testing.T) {
	h, e := newTestEngine(t)

	_, err := h.Add([]byte(`{"first": 1}`))
	require.NoError(t, err)
	latest, err := h.Add([]byte(`{"second": 2}`))
	require.NoError(t, err)

	results, err := e.Search("", 1)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, latest.ID, results[0].EntryID)
}

func TestSearch_LimitApplied(t *testing.T) {
	h, e := newTestEngine(t)

	for _, doc := range []string{`{"tag": "a"}`, `{"tag": "b"}`, `{"tag": "c"}`} {
		_, err := h.Add([]byte(doc))
		require.NoError(t, err)
	}

	results, err := e.Search("tag", 2)
	require.NoError(t, err)
	assert.Len(t, results, 2)
}

func TestSearch_EmptyHistory(t *testing.T) {
	_, e := newTestEngine(t)

	results, err := e.Search("anything", 10)
	require.NoError(t, err)
	assert.Empty(t, results)
}
