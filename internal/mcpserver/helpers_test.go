package mcpserver

import (
	"io"
	"log/slog"
	"testing"
)

// newTestServer returns a server with caching enabled and logging discarded.
func newTestServer(t *testing.T) *Server {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(cfg)
}
