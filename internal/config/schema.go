package config

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the graphpaint configuration file
type Config struct {
	Version int          `yaml:"version"`
	Layout  LayoutConfig `yaml:"layout"`
	Render  RenderConfig `yaml:"render"`
	Viewer  ViewerConfig `yaml:"viewer"`
	Log     LogConfig    `yaml:"log"`
}

// LayoutConfig holds spring layout settings
type LayoutConfig struct {
	Iterations int     `yaml:"iterations" validate:"gte=1,lte=10000"`
	Threshold  float64 `yaml:"threshold" validate:"gt=0"`
	Seed       uint64  `yaml:"seed,omitempty"` // 0 derives the seed from the graph
}

// RenderConfig holds drawing settings
type RenderConfig struct {
	Width    int     `yaml:"width" validate:"gte=100,lte=10000"`
	Height   int     `yaml:"height" validate:"gte=100,lte=10000"`
	NodeSize float64 `yaml:"node_size" validate:"gt=0"`
	FontSize int     `yaml:"font_size" validate:"gte=1,lte=200"`
	Colormap string  `yaml:"colormap" validate:"colormap"`
}

// ViewerConfig holds settings for the interactive viewer
type ViewerConfig struct {
	Addr        string   `yaml:"addr" validate:"required,listen_addr"`
	OpenBrowser bool     `yaml:"open_browser"`
	CloseGrace  Duration `yaml:"close_grace" validate:"gte=0"`
}

// LogConfig holds logging settings
type LogConfig struct {
	Level string `yaml:"level" validate:"oneof=debug info warn error"`
}

// Duration wraps time.Duration for YAML unmarshaling
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	*d = Duration(parsed)
	return nil
}

// MarshalYAML implements yaml.Marshaler
func (d Duration) MarshalYAML() (interface{}, error) {
	return time.Duration(d).String(), nil
}

// Duration returns the underlying time.Duration
func (d Duration) Duration() time.Duration {
	return time.Duration(d)
}
