// Package config handles configuration file loading and parsing.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/mj1618/scratchpad/internal/geometry"
	"github.com/mj1618/scratchpad/internal/scratchpad"
)

// Default configuration values.
const (
	DefaultWidth       = 95
	DefaultHeight      = 90
	DefaultPlacement   = string(geometry.PlaceCenter)
	DefaultSettleDelay = "50ms"
)

// Config represents the scratchpad configuration.
type Config struct {
	Defaults    Defaults              `toml:"defaults"`
	Scratchpads map[string]Scratchpad `toml:"scratchpads"`
}

// Defaults apply to every scratchpad unless overridden.
type Defaults struct {
	Socket      string `toml:"socket"`       // IPC socket ("" = discover)
	Width       int    `toml:"width"`        // Percent of display width
	Height      int    `toml:"height"`       // Percent of display height
	WidthPx     int    `toml:"width_px"`     // Absolute width (0 = use percent)
	HeightPx    int    `toml:"height_px"`    // Absolute height (0 = use percent)
	Placement   string `toml:"placement"`    // center, offset
	SettleDelay string `toml:"settle_delay"` // Pause between show and resize
	Notify      bool   `toml:"notify"`       // Notify when a launch is abandoned
}

// Scratchpad is a named scratchpad. Zero values and unset keys inherit
// from Defaults. The pixel sizes and notify are pointers so that an
// explicit width_px = 0 or notify = false overrides the defaults.
type Scratchpad struct {
	Command     []string `toml:"command"`
	Width       int      `toml:"width"`
	Height      int      `toml:"height"`
	WidthPx     *int     `toml:"width_px"`
	HeightPx    *int     `toml:"height_px"`
	Placement   string   `toml:"placement"`
	SettleDelay string   `toml:"settle_delay"`
	Notify      *bool    `toml:"notify"`
}

// Resolved is a scratchpad with defaults applied.
type Resolved struct {
	Name        string
	Command     []string
	Width       int
	Height      int
	WidthPx     int
	HeightPx    int
	Placement   geometry.Placement
	SettleDelay time.Duration
	Notify      bool
}

// Size returns the configured window size.
func (r Resolved) Size() geometry.Size {
	return geometry.NewSize(r.Width, r.Height, r.WidthPx, r.HeightPx)
}

// Options returns the controller options for r.
func (r Resolved) Options() scratchpad.Options {
	return scratchpad.Options{
		Size:        r.Size(),
		Placement:   r.Placement,
		SettleDelay: r.SettleDelay,
		Notify:      r.Notify,
	}
}

// Target returns the scratchpad target for r.
func (r Resolved) Target() scratchpad.Target {
	return scratchpad.NewTarget(r.Name, r.Command)
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Defaults: Defaults{
			Width:       DefaultWidth,
			Height:      DefaultHeight,
			Placement:   DefaultPlacement,
			SettleDelay: DefaultSettleDelay,
		},
		Scratchpads: make(map[string]Scratchpad),
	}
}

// ConfigPath returns the path to the config file.
// Uses XDG_CONFIG_HOME if set, otherwise ~/.config.
func ConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "scratchpad", "config.toml")
}

// LoadConfig loads configuration from the specified path.
// If path is empty, uses the default config path.
// Returns default config if file doesn't exist.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		path = ConfigPath()
	}

	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, err
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if cfg.Scratchpads == nil {
		cfg.Scratchpads = make(map[string]Scratchpad)
	}
	return cfg, nil
}

// Scratchpad returns the named scratchpad merged over the defaults. Names
// without a [scratchpads.<name>] table resolve to the defaults alone.
func (c *Config) Scratchpad(name string) (Resolved, error) {
	d := c.Defaults
	r := Resolved{
		Name:     name,
		Width:    d.Width,
		Height:   d.Height,
		WidthPx:  d.WidthPx,
		HeightPx: d.HeightPx,
		Notify:   d.Notify,
	}
	placement := d.Placement
	settle := d.SettleDelay

	if sp, ok := c.Scratchpads[name]; ok {
		r.Command = sp.Command
		if sp.Width != 0 {
			r.Width = sp.Width
		}
		if sp.Height != 0 {
			r.Height = sp.Height
		}
		if sp.WidthPx != nil {
			r.WidthPx = *sp.WidthPx
		}
		if sp.HeightPx != nil {
			r.HeightPx = *sp.HeightPx
		}
		if sp.Placement != "" {
			placement = sp.Placement
		}
		if sp.SettleDelay != "" {
			settle = sp.SettleDelay
		}
		if sp.Notify != nil {
			r.Notify = *sp.Notify
		}
	}

	p, err := geometry.ParsePlacement(placement)
	if err != nil {
		return Resolved{}, fmt.Errorf("scratchpad %q: %w", name, err)
	}
	r.Placement = p

	if settle != "" {
		delay, err := time.ParseDuration(settle)
		if err != nil {
			return Resolved{}, fmt.Errorf("scratchpad %q: invalid settle_delay %q: %w", name, settle, err)
		}
		if delay < 0 {
			return Resolved{}, fmt.Errorf("scratchpad %q: invalid settle_delay %q: must not be negative", name, settle)
		}
		r.SettleDelay = delay
	}
	if r.WidthPx < 0 || r.HeightPx < 0 {
		return Resolved{}, fmt.Errorf("scratchpad %q: pixel sizes must not be negative", name)
	}
	return r, nil
}
