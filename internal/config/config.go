// Package config stores the persistent editor settings.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/OpenTraceLab/OpenTraceSchematic/pkg/render"
	"github.com/OpenTraceLab/OpenTraceSchematic/pkg/schematic"
)

// EnvPath names the environment variable that overrides the config path.
const EnvPath = "OTS_CONFIG"

// Config holds settings shared by the CLI and the editor window.
type Config struct {
	Grid   int     `json:"grid"`
	Scale  float64 `json:"scale"`
	Width  int     `json:"width"`
	Height int     `json:"height"`
	Theme  string  `json:"theme"`
}

// Default returns the settings used when no config file exists.
func Default() *Config {
	return &Config{
		Grid:   schematic.DefaultGrid,
		Scale:  schematic.DefaultView().Scale,
		Width:  800,
		Height: 600,
		Theme:  "light",
	}
}

// Validate clamps out-of-range values and rejects an unknown theme.
func (c *Config) Validate() error {
	if c.Grid < 1 {
		c.Grid = schematic.DefaultGrid
	}

	if c.Scale <= 0 {
		c.Scale = schematic.DefaultView().Scale
	}
	c.Scale = max(schematic.MinScale, min(schematic.MaxScale, c.Scale))

	if c.Width < 16 {
		c.Width = 16
	}
	if c.Height < 16 {
		c.Height = 16
	}

	if _, err := render.ParseTheme(c.Theme); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// ColorTheme returns the parsed theme, falling back to light.
func (c *Config) ColorTheme() render.Theme {
	th, err := render.ParseTheme(c.Theme)
	if err != nil {
		return render.ThemeLight
	}
	return th
}

// Path returns the config file location: $OTS_CONFIG if set, otherwise
// config.json under the user config directory.
func Path() (string, error) {
	if p := os.Getenv(EnvPath); p != "" {
		return p, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "opentraceschematic", "config.json"), nil
}

// Load reads the config at path. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return nil, err
	}

	cfg := Default()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes cfg to path, creating the directory if needed.
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, append(data, '\n'), 0644)
}
