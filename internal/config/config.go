// Package config provides configuration loading from environment variables.
package config

import (
	"os"
	"strconv"

	"github.com/Lele-bigLe/chrome-DevTools-JSON/pkg/shape"
)

// History defaults.
const (
	DefaultHistoryCapacity      = 50
	DefaultHistoryEntryMaxBytes = 262144 // 256KB ceiling per stored input
)

// Cache and batch defaults.
const (
	DefaultShapeCacheMaxItems = 256
	DefaultBatchWorkers       = 8
)

// Config holds all configuration for the MCP server.
type Config struct {
	HistoryFile          string // HISTORY_FILE, default "" (in-memory store)
	HistoryCapacity      int    // HISTORY_CAPACITY, default 50
	HistoryEntryMaxBytes int    // HISTORY_ENTRY_MAX_BYTES, default 262144
	ShapeCacheMaxItems   int    // SHAPE_CACHE_MAX_ITEMS, default 256
	BatchWorkers         int    // BATCH_WORKERS, default 8

	// Default display policy (each overridable per tool call)
	ShowLength bool // SHAPE_SHOW_LENGTH, default true
	ShowSample bool // SHAPE_SHOW_SAMPLE, default false
	KeysOnly   bool // SHAPE_KEYS_ONLY, default false
	Compact    bool // SHAPE_COMPACT, default false
	MaxDepth   int  // SHAPE_MAX_DEPTH, default 0 (unlimited)

	// Logging configuration
	LogLevel      string // LOG_LEVEL, default "info"
	LogFile       string // LOG_FILE, default "" (stderr only)
	LogMaxSizeMB  int    // LOG_MAX_SIZE_MB, default 10
	LogMaxBackups int    // LOG_MAX_BACKUPS, default 5
	LogMaxAgeDays int    // LOG_MAX_AGE_DAYS, default 28
	LogCompress   bool   // LOG_COMPRESS, default true
}

// Load reads configuration from environment variables with sensible defaults.
func Load() *Config {
	return &Config{
		HistoryFile:          getEnvString("HISTORY_FILE", ""),
		HistoryCapacity:      getEnvInt("HISTORY_CAPACITY", DefaultHistoryCapacity),
		HistoryEntryMaxBytes: getEnvInt("HISTORY_ENTRY_MAX_BYTES", DefaultHistoryEntryMaxBytes),
		ShapeCacheMaxItems:   getEnvInt("SHAPE_CACHE_MAX_ITEMS", DefaultShapeCacheMaxItems),
		BatchWorkers:         getEnvInt("BATCH_WORKERS", DefaultBatchWorkers),

		ShowLength: getEnvBool("SHAPE_SHOW_LENGTH", true),
		ShowSample: getEnvBool("SHAPE_SHOW_SAMPLE", false),
		KeysOnly:   getEnvBool("SHAPE_KEYS_ONLY", false),
		Compact:    getEnvBool("SHAPE_COMPACT", false),
		MaxDepth:   getEnvInt("SHAPE_MAX_DEPTH", 0),

		LogLevel:      getEnvString("LOG_LEVEL", "info"),
		LogFile:       getEnvString("LOG_FILE", ""),
		LogMaxSizeMB:  getEnvInt("LOG_MAX_SIZE_MB", 10),
		LogMaxBackups: getEnvInt("LOG_MAX_BACKUPS", 5),
		LogMaxAgeDays: getEnvInt("LOG_MAX_AGE_DAYS", 28),
		LogCompress:   getEnvBool("LOG_COMPRESS", true),
	}
}

// Policy builds the default display policy from configuration.
func (c *Config) Policy() *shape.Policy {
	return &shape.Policy{
		ShowLength: c.ShowLength,
		ShowSample: c.ShowSample,
		KeysOnly:   c.KeysOnly,
		Compact:    c.Compact,
		MaxDepth:   c.MaxDepth,
	}
}

func getEnvBool(key string, defaultVal bool) bool {
	if v := os.Getenv(key); v != "" {
		switch v {
		case "1", "true", "yes", "on":
			return true
		case "0", "false", "no", "off":
			return false
		}
	}
	return defaultVal
}

func getEnvString(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultVal
}
