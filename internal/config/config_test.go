package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
window_width = 1280
damping_factor = 0.1
snapshot_size = 512
debounce_ms = 50
`), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 1280, cfg.WindowWidth)
	assert.Equal(t, 0, cfg.WindowHeight)
	assert.Equal(t, 0.1, cfg.DampingFactor)
	assert.Equal(t, 512, cfg.SnapshotSize)
	assert.Equal(t, 50*time.Millisecond, cfg.Debounce())
}

func TestLoadInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("window_width = ["), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadOptional(t *testing.T) {
	cfg, err := LoadOptional(filepath.Join(t.TempDir(), "missing.toml"))
	require.NoError(t, err)
	assert.Equal(t, Config{}, cfg)

	cfg, err = LoadOptional("")
	require.NoError(t, err)
	assert.Equal(t, Config{}, cfg)
}

func TestResolveDefaults(t *testing.T) {
	var cfg Config
	cfg.Resolve(Flags{})

	assert.Equal(t, Config{
		WindowWidth:    1024,
		WindowHeight:   768,
		TargetFPS:      60,
		DampingFactor:  0.05,
		SnapshotSize:   800,
		Supersample:    2,
		DebounceMillis: 200,
	}, cfg)
}

func TestResolveFlagsOverrideFile(t *testing.T) {
	cfg := Config{WindowWidth: 1280, WindowHeight: 720, Supersample: 4, DampingFactor: 2}
	cfg.Resolve(Flags{Width: 640, SnapshotSize: 256})

	assert.Equal(t, 640, cfg.WindowWidth)
	assert.Equal(t, 720, cfg.WindowHeight, "file value kept without a flag")
	assert.Equal(t, 256, cfg.SnapshotSize)
	assert.Equal(t, 4, cfg.Supersample)
	assert.Equal(t, 0.05, cfg.DampingFactor, "out of range damping falls back to the default")
}
