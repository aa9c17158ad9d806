package tools

import (
	"github.com/Lele-bigLe/chrome-DevTools-JSON/internal/cache"
	"github.com/Lele-bigLe/chrome-DevTools-JSON/internal/clipboard"
	"github.com/Lele-bigLe/chrome-DevTools-JSON/internal/config"
	"github.com/Lele-bigLe/chrome-DevTools-JSON/internal/history"
	"github.com/Lele-bigLe/chrome-DevTools-JSON/internal/indexer"
	"github.com/Lele-bigLe/chrome-DevTools-JSON/internal/search"
	"github.com/Lele-bigLe/chrome-DevTools-JSON/pkg/shape"
)

// Deps contains all dependencies needed by tool handlers.
type Deps struct {
	Config    *config.Config
	History   *history.History
	Cache     *cache.ShapeCache
	Index     *indexer.Index
	Search    *search.Engine
	Clipboard clipboard.Clipboard
}

// EffectivePolicy resolves the display policy for a tool call: persisted
// options when saved, environment defaults otherwise, then per-call
// overrides on top.
func (d *Deps) EffectivePolicy(o *PolicyOverrides) (*shape.Policy, error) {
	base, ok, err := d.History.Options()
	if err != nil {
		return nil, WrapError(err)
	}
	if !ok {
		base = d.Config.Policy()
	}
	return applyOverrides(base, o), nil
}
