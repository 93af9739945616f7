// Package config handles shtool configuration loading and management.
package config

import (
	"errors"
	"fmt"

	"github.com/Faultbox/midgard-sh/internal/lighting"
	"github.com/Faultbox/midgard-sh/pkg/sh"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid value")

// Output formats.
const (
	FormatText = "text"
	FormatYAML = "yaml"
)

// Config holds all shtool settings.
type Config struct {
	SH      SHConfig      `yaml:"sh"`
	Output  OutputConfig  `yaml:"output"`
	Scene   SceneConfig   `yaml:"scene"`
	Logging LoggingConfig `yaml:"logging"`
}

// SHConfig holds engine settings.
type SHConfig struct {
	Order     int `yaml:"order"`     // band order, 2-6
	Precision int `yaml:"precision"` // significant digits printed in text output
}

// OutputConfig holds result formatting settings.
type OutputConfig struct {
	Format string `yaml:"format"` // text or yaml
}

// SceneConfig holds the lights baked by "shtool bake".
type SceneConfig struct {
	Lights []lighting.Light `yaml:"lights"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		SH: SHConfig{
			Order:     3,
			Precision: 6,
		},
		Output: OutputConfig{
			Format: FormatText,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate checks values that the engine or the output writer would reject.
func (c *Config) Validate() error {
	if c.SH.Order < sh.MinOrder || c.SH.Order > sh.MaxOrder {
		return fmt.Errorf("sh.order %d not in [%d, %d]: %w", c.SH.Order, sh.MinOrder, sh.MaxOrder, ErrInvalid)
	}
	if c.SH.Precision < 1 || c.SH.Precision > 17 {
		return fmt.Errorf("sh.precision %d not in [1, 17]: %w", c.SH.Precision, ErrInvalid)
	}
	switch c.Output.Format {
	case FormatText, FormatYAML:
	default:
		return fmt.Errorf("output.format %q: %w", c.Output.Format, ErrInvalid)
	}
	if len(c.Scene.Lights) > lighting.MaxLights {
		return fmt.Errorf("scene has %d lights, at most %d allowed: %w", len(c.Scene.Lights), lighting.MaxLights, ErrInvalid)
	}
	return nil
}
