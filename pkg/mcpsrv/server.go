package mcpsrv

import (
	"context"
	"fmt"
	"log/slog"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/Lele-bigLe/chrome-DevTools-JSON/internal/cache"
	"github.com/Lele-bigLe/chrome-DevTools-JSON/internal/clipboard"
	"github.com/Lele-bigLe/chrome-DevTools-JSON/internal/config"
	"github.com/Lele-bigLe/chrome-DevTools-JSON/internal/history"
	"github.com/Lele-bigLe/chrome-DevTools-JSON/internal/indexer"
	"github.com/Lele-bigLe/chrome-DevTools-JSON/internal/logging"
	"github.com/Lele-bigLe/chrome-DevTools-JSON/internal/mcp"
	"github.com/Lele-bigLe/chrome-DevTools-JSON/internal/mcp/tools"
	"github.com/Lele-bigLe/chrome-DevTools-JSON/internal/search"
	"github.com/Lele-bigLe/chrome-DevTools-JSON/internal/store"
)

// Server is the JSON analysis MCP server.
// It wraps the internal implementation and provides extension points.
type Server struct {
	internal   *mcp.Server
	deps       *Deps
	logCleanup func() error
}

// NewServer creates a new MCP server with the builtin analysis tools.
//
// Configuration defaults come from the environment. Use functional options
// to configure logging, swap the store or clipboard, add custom tools, etc.
func NewServer(opts ...Option) (*Server, error) {
	// Build configuration from options
	cfg := &serverConfig{
		config: config.Load(), // Load defaults from environment
	}
	for _, opt := range opts {
		opt(cfg)
	}

	// Setup logging
	logCfg := logging.Config{
		Level:      cfg.config.LogLevel,
		FilePath:   cfg.config.LogFile,
		MaxSizeMB:  cfg.config.LogMaxSizeMB,
		MaxBackups: cfg.config.LogMaxBackups,
		MaxAgeDays: cfg.config.LogMaxAgeDays,
		Compress:   cfg.config.LogCompress,
	}
	if cfg.logLevel != "" {
		logCfg.Level = cfg.logLevel
	}
	if cfg.logFile != "" {
		logCfg.FilePath = cfg.logFile
	}
	logCleanup, err := logging.Setup(logCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to setup logging: %w", err)
	}

	// Create infrastructure
	blobStore := cfg.store
	if blobStore == nil {
		if cfg.config.HistoryFile != "" {
			blobStore, err = store.NewFileStore(cfg.config.HistoryFile)
			if err != nil {
				return nil, fmt.Errorf("failed to open history file: %w", err)
			}
		} else {
			blobStore = store.NewMemoryStore()
		}
	}

	clip := cfg.clipboard
	if clip == nil {
		clip = clipboard.NewMemory()
	}

	shapeCache, err := cache.NewShapeCache(cfg.config.ShapeCacheMaxItems)
	if err != nil {
		return nil, fmt.Errorf("failed to create shape cache: %w", err)
	}

	hist := history.New(blobStore, cfg.config.HistoryCapacity, cfg.config.HistoryEntryMaxBytes)
	idx := indexer.New(hist, slog.Default())
	searchEngine := search.NewEngine(idx)

	// Create deps for internal tools and custom tools
	toolDeps := &tools.Deps{
		Config:    cfg.config,
		History:   hist,
		Cache:     shapeCache,
		Index:     idx,
		Search:    searchEngine,
		Clipboard: clip,
	}

	// Create public deps (same values, different type for public API)
	deps := &Deps{
		Config:    cfg.config,
		History:   hist,
		Cache:     shapeCache,
		Index:     idx,
		Search:    searchEngine,
		Clipboard: clip,
	}

	// Build internal server options
	var internalOpts []mcp.ServerOption
	if !cfg.disableBuiltinTools {
		internalOpts = append(internalOpts, mcp.WithBuiltinTools())
	}

	// Add custom extension registration callbacks
	for _, fn := range cfg.toolRegistrations {
		internalOpts = append(internalOpts, mcp.WithCustomRegistration(fn))
	}
	for _, fn := range cfg.resourceRegistrations {
		internalOpts = append(internalOpts, mcp.WithCustomRegistration(fn))
	}

	// Add deferred tool registrations (tools that need Deps access)
	for _, fn := range cfg.deferredToolRegistrations {
		internalOpts = append(internalOpts, mcp.WithCustomRegistration(func(srv *sdkmcp.Server) {
			fn(srv, deps)
		}))
	}

	// Create internal server
	internal, err := mcp.NewServer(toolDeps, internalOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create server: %w", err)
	}

	return &Server{
		internal:   internal,
		deps:       deps,
		logCleanup: logCleanup,
	}, nil
}

// Run starts the MCP server with stdio transport.
// The server runs until the context is cancelled.
func (s *Server) Run(ctx context.Context) error {
	return s.internal.Run(ctx)
}

// Close cleans up server resources.
func (s *Server) Close() error {
	if s.logCleanup != nil {
		return s.logCleanup()
	}
	return nil
}

// Deps returns the dependencies for building custom tools.
func (s *Server) Deps() *Deps {
	return s.deps
}
