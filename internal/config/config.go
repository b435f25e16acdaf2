// Package config holds viewer and snapshot settings loaded from a TOML file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

// Config holds window, controls and snapshot settings
type Config struct {
	// Window
	WindowWidth  int `toml:"window_width"`
	WindowHeight int `toml:"window_height"`
	TargetFPS    int `toml:"target_fps"`

	// Controls
	DampingFactor float64 `toml:"damping_factor"`

	// Snapshot
	SnapshotSize int `toml:"snapshot_size"`
	Supersample  int `toml:"supersample"`

	// Watch debounce in milliseconds
	DebounceMillis int `toml:"debounce_ms"`
}

// Flags holds CLI flag values that override config file settings
type Flags struct {
	Width        int
	Height       int
	FPS          int
	Damping      float64
	SnapshotSize int
	Supersample  int
}

// DefaultPath returns the settings file location in the user config directory
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "gogarment", "config.toml")
}

// Load reads a TOML config file.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	var cfg Config
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		fmt.Fprintf(os.Stderr, "Warning: unknown settings in %s: %v\n", path, undecoded)
	}
	return cfg, nil
}

// LoadOptional reads path when it exists; a missing file yields the zero Config
func LoadOptional(path string) (Config, error) {
	if path == "" {
		return Config{}, nil
	}
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return Config{}, nil
	}
	return Load(path)
}

// Resolve applies flag overrides and fills unset fields with defaults.
// CLI flags take priority when non-zero.
func (c *Config) Resolve(flags Flags) {
	if flags.Width > 0 {
		c.WindowWidth = flags.Width
	}
	if flags.Height > 0 {
		c.WindowHeight = flags.Height
	}
	if flags.FPS > 0 {
		c.TargetFPS = flags.FPS
	}
	if flags.Damping > 0 {
		c.DampingFactor = flags.Damping
	}
	if flags.SnapshotSize > 0 {
		c.SnapshotSize = flags.SnapshotSize
	}
	if flags.Supersample > 0 {
		c.Supersample = flags.Supersample
	}

	if c.WindowWidth <= 0 {
		c.WindowWidth = 1024
	}
	if c.WindowHeight <= 0 {
		c.WindowHeight = 768
	}
	if c.TargetFPS <= 0 {
		c.TargetFPS = 60
	}
	if c.DampingFactor <= 0 || c.DampingFactor > 1 {
		c.DampingFactor = 0.05
	}
	if c.SnapshotSize <= 0 {
		c.SnapshotSize = 800
	}
	if c.Supersample <= 0 {
		c.Supersample = 2
	}
	if c.DebounceMillis <= 0 {
		c.DebounceMillis = 200
	}
}

// Debounce returns the watch debounce as a duration
func (c Config) Debounce() time.Duration {
	return time.Duration(c.DebounceMillis) * time.Millisecond
}
