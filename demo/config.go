package demo

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the demo's startup settings.
type Config struct {
	Window struct {
		Width  int  `yaml:"width"`
		Height int  `yaml:"height"`
		VSync  bool `yaml:"vsync"`
	} `yaml:"window"`

	// DisplayScale converts viewport panel points to render-target
	// pixels. 1.0 means points are pixels; HiDPI setups set 2.0.
	DisplayScale float32 `yaml:"display_scale"`

	// ClearColor is the viewport background, RGBA in [0,1].
	ClearColor [4]float32 `yaml:"clear_color"`
}

// DefaultConfig returns the settings used when no file is present.
func DefaultConfig() Config {
	var c Config
	c.Window.Width = 1280
	c.Window.Height = 720
	c.Window.VSync = true
	c.DisplayScale = 1.0
	c.ClearColor = [4]float32{0.1, 0.1, 0.12, 1.0}
	return c
}

// LoadConfig reads a YAML config file. A missing file yields the
// defaults; a malformed one is a startup error. Fields absent from the
// file keep their default values.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}

	if cfg.DisplayScale <= 0 {
		cfg.DisplayScale = 1.0
	}
	if cfg.Window.Width <= 0 || cfg.Window.Height <= 0 {
		def := DefaultConfig()
		cfg.Window.Width = def.Window.Width
		cfg.Window.Height = def.Window.Height
	}

	return cfg, nil
}
