package commands

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileWatcher(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "schemas.json")
	other := filepath.Join(dir, "other.json")
	require.NoError(t, os.WriteFile(path, []byte(`{}`), 0o600))

	var calls atomic.Int32
	w := &fileWatcher{
		path:     path,
		debounce: 10 * time.Millisecond,
		logger:   zerolog.Nop(),
		onChange: func() error {
			calls.Add(1)
			return nil
		},
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	// Writes may land before the watch is registered, so keep writing.
	assert.Eventually(t, func() bool {
		_ = os.WriteFile(other, []byte(`{}`), 0o600)
		_ = os.WriteFile(path, []byte(`{"type":"object"}`), 0o600)
		return calls.Load() > 0
	}, 5*time.Second, 50*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not stop after cancel")
	}
}

func TestFileWatcher_MissingDir(t *testing.T) {
	w := &fileWatcher{
		path:     filepath.Join(t.TempDir(), "gone", "schemas.json"),
		debounce: time.Millisecond,
		logger:   zerolog.Nop(),
		onChange: func() error { return nil },
	}
	err := w.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to watch")
}
