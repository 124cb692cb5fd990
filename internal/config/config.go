// Package config provides configuration management for graphpaint.
//
// Every setting has a default, so the config file is optional. Command line
// flags override values from the file.
//
// Config file locations (priority order):
//  1. $GRAPHPAINT_CONFIG
//  2. ./graphpaint.yaml
//  3. $XDG_CONFIG_HOME/graphpaint/config.yaml
//  4. ~/.config/graphpaint/config.yaml
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultAddr       = "127.0.0.1:0"
	DefaultCloseGrace = 3 * time.Second
	DefaultColormap   = "viridis"
	DefaultLogLevel   = "info"
)

// Load finds and loads the config file, or returns defaults if none found
func Load() (*Config, string, error) {
	path := FindConfigPath()

	if path == "" {
		return DefaultConfig(), "", nil
	}

	return LoadFromPath(path)
}

// LoadFromPath loads config from a specific path
func LoadFromPath(path string) (*Config, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, path, fmt.Errorf("read config: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, path, fmt.Errorf("parse config: %w", err)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, path, err
	}

	return cfg, path, nil
}

// DefaultConfig returns the settings used when no config file exists
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		Layout: LayoutConfig{
			Iterations: 50,
			Threshold:  1e-4,
		},
		Render: RenderConfig{
			Width:    800,
			Height:   600,
			NodeSize: 500,
			FontSize: 12,
			Colormap: DefaultColormap,
		},
		Viewer: ViewerConfig{
			Addr:        DefaultAddr,
			OpenBrowser: true,
			CloseGrace:  Duration(DefaultCloseGrace),
		},
		Log: LogConfig{Level: DefaultLogLevel},
	}
}

// applyDefaults fills in values the file explicitly zeroed
func (c *Config) applyDefaults() {
	def := DefaultConfig()

	if c.Version == 0 {
		c.Version = def.Version
	}
	if c.Layout.Iterations == 0 {
		c.Layout.Iterations = def.Layout.Iterations
	}
	if c.Layout.Threshold == 0 {
		c.Layout.Threshold = def.Layout.Threshold
	}
	if c.Render.Width == 0 {
		c.Render.Width = def.Render.Width
	}
	if c.Render.Height == 0 {
		c.Render.Height = def.Render.Height
	}
	if c.Render.NodeSize == 0 {
		c.Render.NodeSize = def.Render.NodeSize
	}
	if c.Render.FontSize == 0 {
		c.Render.FontSize = def.Render.FontSize
	}
	if c.Render.Colormap == "" {
		c.Render.Colormap = def.Render.Colormap
	}
	if c.Viewer.Addr == "" {
		c.Viewer.Addr = def.Viewer.Addr
	}
	if c.Log.Level == "" {
		c.Log.Level = def.Log.Level
	}
}

// Summary returns a human-readable config summary
func (c *Config) Summary() string {
	return fmt.Sprintf("layout: %d iterations, seed %d; render: %dx%d %s; viewer: %s",
		c.Layout.Iterations, c.Layout.Seed,
		c.Render.Width, c.Render.Height, c.Render.Colormap,
		c.Viewer.Addr)
}
