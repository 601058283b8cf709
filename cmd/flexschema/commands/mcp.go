package commands

import (
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/erraggy/flexschema/internal/mcpserver"
)

func (a *app) newMCPCmd() *cobra.Command {
	defaults := mcpserver.DefaultConfig()
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "Serve parse and generate as MCP tools over stdio",
		Long: `Start a Model Context Protocol server on stdin/stdout exposing the parse and
generate tools. Logs go to stderr.`,
		Args: cobra.NoArgs,
		RunE: a.runMCP,
	}
	fs := cmd.Flags()
	fs.Bool("mcp.cache-enabled", defaults.CacheEnabled, "cache parse results")
	fs.Int("mcp.cache-max-size", defaults.CacheMaxSize, "maximum number of cached parse results")
	fs.Duration("mcp.cache-ttl", defaults.CacheTTL, "lifetime of a cached parse result")
	fs.Int64("mcp.max-inline-size", defaults.MaxInlineSize, "maximum inline document size in bytes")
	fs.StringSlice("target", defaults.Targets, "backends generate runs when the call names none")
	fs.String("go-package", defaults.GoPackage, "package clause generate uses when the call names none")
	return cmd
}

func (a *app) runMCP(cmd *cobra.Command, _ []string) error {
	a.bindFlags(cmd, "mcp.cache-enabled", "mcp.cache-max-size", "mcp.cache-ttl", "mcp.max-inline-size", "target", "go-package")

	cfg := mcpserver.Config{
		CacheEnabled:  a.v.GetBool("mcp.cache-enabled"),
		CacheMaxSize:  a.v.GetInt("mcp.cache-max-size"),
		CacheTTL:      a.v.GetDuration("mcp.cache-ttl"),
		MaxInlineSize: a.v.GetInt64("mcp.max-inline-size"),
		Targets:       a.stringList("target"),
		GoPackage:     a.v.GetString("go-package"),
		Logger: slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
			Level: slogLevel(a.v.GetString("log-level")),
		})),
	}
	a.logger.Debug().Dur("cache_ttl", cfg.CacheTTL).Int("cache_max_size", cfg.CacheMaxSize).Msg("starting MCP server")
	return mcpserver.New(cfg).Run(cmd.Context())
}

// slogLevel maps a --log-level value to a slog level.
func slogLevel(name string) slog.Level {
	switch strings.ToLower(name) {
	case "debug", "trace":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error", "fatal", "panic":
		return slog.LevelError
	case "disabled":
		return slog.Level(100)
	}
	return slog.LevelWarn
}
