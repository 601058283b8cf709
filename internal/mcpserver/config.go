package mcpserver

import (
	"log/slog"
	"os"
	"time"

	"github.com/erraggy/flexschema/generator"
	"github.com/erraggy/flexschema/translate/gostruct"
)

// Config holds the configurable server defaults. The flexschema command
// fills it from flags, FLEXSCHEMA_* environment variables and the config
// file.
type Config struct {
	// CacheEnabled turns parse result caching on.
	CacheEnabled bool
	// CacheMaxSize bounds the number of cached parse results.
	CacheMaxSize int
	// CacheTTL is how long a cached parse result stays valid.
	CacheTTL time.Duration
	// CacheSweepInterval is how often expired entries are removed.
	CacheSweepInterval time.Duration

	// MaxInlineSize caps inline content in bytes.
	MaxInlineSize int64

	// Targets are used by generate when the call names none.
	Targets []string
	// GoPackage is the package clause used by generate when none is given.
	GoPackage string

	// Logger receives server logs. Nil logs warnings to stderr.
	Logger *slog.Logger
}

// DefaultConfig returns the defaults used when no configuration is given.
func DefaultConfig() Config {
	return Config{
		CacheEnabled:       true,
		CacheMaxSize:       10,
		CacheTTL:           15 * time.Minute,
		CacheSweepInterval: time.Minute,
		MaxInlineSize:      10 << 20,
		Targets:            generator.New().Targets,
		GoPackage:          gostruct.DefaultPackageName,
	}
}

// normalize replaces zero and invalid values with defaults.
func (c Config) normalize() Config {
	d := DefaultConfig()
	if c.CacheMaxSize <= 0 {
		c.CacheMaxSize = d.CacheMaxSize
	}
	if c.CacheTTL <= 0 {
		c.CacheTTL = d.CacheTTL
	}
	if c.CacheSweepInterval <= 0 {
		c.CacheSweepInterval = d.CacheSweepInterval
	}
	if c.MaxInlineSize <= 0 {
		c.MaxInlineSize = d.MaxInlineSize
	}
	if len(c.Targets) == 0 {
		c.Targets = d.Targets
	}
	if c.GoPackage == "" {
		c.GoPackage = d.GoPackage
	}
	if c.Logger == nil {
		c.Logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	}
	return c
}
