package mcp

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Lele-bigLe/chrome-DevTools-JSON/internal/cache"
	"github.com/Lele-bigLe/chrome-DevTools-JSON/internal/clipboard"
	"github.com/Lele-bigLe/chrome-DevTools-JSON/internal/config"
	"github.com/Lele-bigLe/chrome-DevTools-JSON/internal/history"
	"github.com/Lele-bigLe/chrome-DevTools-JSON/internal/indexer"
	"github.com/Lele-bigLe/chrome-DevTools-JSON/internal/mcp/tools"
	"github.com/Lele-bigLe/chrome-DevTools-JSON/internal/search"
	"github.com/Lele-bigLe/chrome-DevTools-JSON/internal/store"
)

func newTestDeps(t *testing.T) *tools.Deps {
	t.Helper()

	cfg := &config.Config{
		HistoryCapacity:    10,
		ShapeCacheMaxItems: 16,
		BatchWorkers:       4,
		ShowLength:         true,
	}
	shapeCache, err := cache.NewShapeCache(cfg.ShapeCacheMaxItems)
	require.NoError(t, err)

	hist := history.New(store.NewMemoryStore(), cfg.HistoryCapacity, 0)
	idx := indexer.New(hist, slog.Default())

	return &tools.Deps{
		Config:    cfg,
		History:   hist,
		Cache:     shapeCache,
		Index:     idx,
		Search:    search.NewEngine(idx),
		Clipboard: clipboard.NewMemory(),
	}
}

func TestNewServer_RequiresDeps(t *testing.T) {
	_, err := NewServer(nil)
	assert.Error(t, err)
}

func TestNewServer_RegistersBuiltinTools(t *testing.T) {
	// Registration runs the output schema checks; a nil-slice output bug
	// would panic here.
	srv, err := NewServer(newTestDeps(t), WithBuiltinTools())
	require.NoError(t, err)
	assert.NotNil(t, srv.MCPServer())
}

func TestParseResourceURI(t *testing.T) {
	id, err := parseResourceURI("json://history/abc123", "history")
	require.NoError(t, err)
	assert.Equal(t, "abc123", id)

	_, err = parseResourceURI("other://history/abc", "history")
	assert.Error(t, err)

	_, err = parseResourceURI("json://history/", "history")
	assert.Error(t, err)

	_, err = parseResourceURI("json://shape/abc", "history")
	assert.Error(t, err)
}
