package mcpsrv

import (
	"github.com/Lele-bigLe/chrome-DevTools-JSON/internal/cache"
	"github.com/Lele-bigLe/chrome-DevTools-JSON/internal/clipboard"
	"github.com/Lele-bigLe/chrome-DevTools-JSON/internal/config"
	"github.com/Lele-bigLe/chrome-DevTools-JSON/internal/history"
	"github.com/Lele-bigLe/chrome-DevTools-JSON/internal/indexer"
	"github.com/Lele-bigLe/chrome-DevTools-JSON/internal/search"
)

// Deps contains all dependencies available to custom tools.
// This gives custom tools access to the same infrastructure as builtin tools.
type Deps struct {
	Config    *config.Config
	History   *history.History
	Cache     *cache.ShapeCache
	Index     *indexer.Index
	Search    *search.Engine
	Clipboard clipboard.Clipboard
}
