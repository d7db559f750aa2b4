package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatchReloadsValidChanges(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "showroom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("engine:\n  tickRate: 60\n"), 0o644))

	changes := make(chan *Config, 8)
	w, err := Watch(path, func(cfg *Config) { changes <- cfg })
	require.NoError(t, err)
	defer w.Close()

	// invalid documents are skipped
	require.NoError(t, os.WriteFile(path, []byte("engine:\n  tickRate: -1\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("x: 1\n"), 0o644))
	require.NoError(t, os.WriteFile(path, []byte("engine:\n  tickRate: 30\n"), 0o644))

	deadline := time.After(3 * time.Second)
	for {
		select {
		case cfg := <-changes:
			assert.NotEqual(t, -1, cfg.Engine.TickRate)
			if cfg.Engine.TickRate == 30 {
				require.NoError(t, w.Close())
				require.NoError(t, w.Close())
				return
			}
		case <-deadline:
			t.Fatal("config change was not observed")
		}
	}
}

func TestWatchMissingDirectory(t *testing.T) {
	_, err := Watch(filepath.Join(t.TempDir(), "nope", "showroom.yaml"), nil)
	assert.Error(t, err)
}
