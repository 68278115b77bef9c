// Package config loads editor settings from a TOML file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Config holds the user-tunable editor settings.
type Config struct {
	// TabWidth is the column interval tabs expand to.
	TabWidth int `toml:"tab_width"`

	// QuitTimes is how many extra quit presses a dirty buffer requires.
	QuitTimes int `toml:"quit_times"`

	// MessageTimeout is how long a status message stays visible, in seconds.
	MessageTimeout int `toml:"message_timeout_seconds"`

	// ShowWelcome controls the banner shown on an empty buffer.
	ShowWelcome bool `toml:"show_welcome"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		TabWidth:       8,
		QuitTimes:      2,
		MessageTimeout: 5,
		ShowWelcome:    true,
	}
}

// DefaultPath returns the conventional config file location.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "kiln", "kiln.toml")
}

// Load reads settings from path, falling back to defaults for anything the
// file does not set. A missing file is not an error; a malformed one is.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config file %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("parsing config file %s: %w", path, err)
	}

	cfg.normalize()
	return cfg, nil
}

// normalize clamps out-of-range values back to usable ones.
func (c *Config) normalize() {
	if c.TabWidth < 1 {
		c.TabWidth = Default().TabWidth
	}
	if c.QuitTimes < 0 {
		c.QuitTimes = Default().QuitTimes
	}
	if c.MessageTimeout < 1 {
		c.MessageTimeout = Default().MessageTimeout
	}
}
