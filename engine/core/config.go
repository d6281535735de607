package core

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config for the engine run. Loaded from an optional YAML file.
type Config struct {
	Window WindowConfig `yaml:"window"`
	Font   FontConfig   `yaml:"font"`
	Log    LogConfig    `yaml:"log"`
	Debug  DebugConfig  `yaml:"debug"`
}

type WindowConfig struct {
	Title      string     `yaml:"title,omitempty"`
	Width      int        `yaml:"width,omitempty"`
	Height     int        `yaml:"height,omitempty"`
	VSync      *bool      `yaml:"vsync,omitempty"`
	ClearColor [4]float32 `yaml:"clear_color,omitempty"` // RGBA
}

type FontConfig struct {
	Path    string  `yaml:"path,omitempty"` // empty: built-in Go Regular
	Size    float32 `yaml:"size,omitempty"`
	Padding float32 `yaml:"padding,omitempty"` // auto-size padding per side
}

type LogConfig struct {
	Level string `yaml:"level,omitempty"`
}

type DebugConfig struct {
	Layout bool `yaml:"layout,omitempty"` // draw container boxes
}

func DefaultConfig() Config {
	vsync := true
	return Config{
		Window: WindowConfig{
			Title:      "maleo",
			Width:      440,
			Height:     260,
			VSync:      &vsync,
			ClearColor: [4]float32{0.08, 0.10, 0.12, 1},
		},
		Font: FontConfig{Size: 14, Padding: 12},
		Log:  LogConfig{Level: "info"},
	}
}

func (w WindowConfig) VSyncEnabled() bool { return w.VSync == nil || *w.VSync }

// LoadConfig reads path if present and fills unset fields with defaults.
// A missing file is not an error.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config %q: %w", path, err)
	}
	return ParseConfig(data)
}

// ParseConfig decodes YAML over the defaults.
func ParseConfig(data []byte) (Config, error) {
	var file Config
	if err := yaml.Unmarshal(data, &file); err != nil {
		return DefaultConfig(), fmt.Errorf("parse config: %w", err)
	}
	cfg := DefaultConfig()
	cfg.merge(file)
	if err := cfg.validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c *Config) merge(o Config) {
	if t := strings.TrimSpace(o.Window.Title); t != "" {
		c.Window.Title = t
	}
	if o.Window.Width != 0 {
		c.Window.Width = o.Window.Width
	}
	if o.Window.Height != 0 {
		c.Window.Height = o.Window.Height
	}
	if o.Window.VSync != nil {
		c.Window.VSync = o.Window.VSync
	}
	if o.Window.ClearColor != ([4]float32{}) {
		c.Window.ClearColor = o.Window.ClearColor
	}
	if o.Font.Path != "" {
		c.Font.Path = o.Font.Path
	}
	if o.Font.Size != 0 {
		c.Font.Size = o.Font.Size
	}
	if o.Font.Padding != 0 {
		c.Font.Padding = o.Font.Padding
	}
	if o.Log.Level != "" {
		c.Log.Level = o.Log.Level
	}
	c.Debug.Layout = c.Debug.Layout || o.Debug.Layout
}

func (c Config) validate() error {
	if c.Window.Width < 0 || c.Window.Height < 0 {
		return fmt.Errorf("config: window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Font.Size < 0 {
		return fmt.Errorf("config: font size must be positive, got %v", c.Font.Size)
	}
	return nil
}
