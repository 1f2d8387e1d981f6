// Package config handles loading and saving gospline settings.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/philipparndt/gospline/internal/logger"
	"github.com/philipparndt/gospline/pkg/arraymesh"
	"github.com/philipparndt/gospline/pkg/spline"
	"github.com/philipparndt/gospline/pkg/strip"
)

// Config holds all settings.
type Config struct {
	Sampling SamplingConfig `yaml:"sampling"`
	Frames   FramesConfig   `yaml:"frames"`
	Strip    StripConfig    `yaml:"strip"`
	Array    ArrayConfig    `yaml:"array"`
	Preview  PreviewConfig  `yaml:"preview"`
	Output   OutputConfig   `yaml:"output"`
	Watch    WatchConfig    `yaml:"watch"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// SamplingConfig holds resampling settings.
type SamplingConfig struct {
	Spacing    float64 `yaml:"spacing"`
	Resolution float64 `yaml:"resolution"`
}

// FramesConfig holds frame construction settings.
type FramesConfig struct {
	ZUp        bool       `yaml:"z_up"`
	AnchorAxis string     `yaml:"anchor_axis"` // world or local
	LocalUp    [3]float64 `yaml:"local_up,flow"`
}

// StripConfig holds tessellation settings.
type StripConfig struct {
	Width     float64 `yaml:"width"`
	ArrayMode string  `yaml:"array_mode"` // continuous or no-space
}

// ArrayConfig holds element arraying settings.
type ArrayConfig struct {
	Skip        int               `yaml:"skip"`
	SlideOffset float64           `yaml:"slide_offset"`
	HeightScale float64           `yaml:"height_scale"`
	Ranges      []arraymesh.Range `yaml:"ranges,omitempty"`
}

// PreviewConfig holds PNG preview settings.
type PreviewConfig struct {
	Width     int     `yaml:"width"`
	Height    int     `yaml:"height"`
	Elevation float64 `yaml:"elevation"`
	Azimuth   float64 `yaml:"azimuth"`
}

// OutputConfig holds STL output settings.
type OutputConfig struct {
	Binary bool `yaml:"binary"`
}

// WatchConfig holds file watching settings.
type WatchConfig struct {
	Debounce time.Duration `yaml:"debounce"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Sampling: SamplingConfig{
			Spacing:    1,
			Resolution: 1,
		},
		Frames: FramesConfig{
			AnchorAxis: spline.AxisWorld.String(),
			LocalUp:    [3]float64{0, 1, 0},
		},
		Strip: StripConfig{
			Width:     1,
			ArrayMode: strip.Continuous.String(),
		},
		Array: ArrayConfig{
			HeightScale: 1,
		},
		Preview: PreviewConfig{
			Width:     800,
			Height:    600,
			Elevation: 35,
			Azimuth:   30,
		},
		Output: OutputConfig{
			Binary: true,
		},
		Watch: WatchConfig{
			Debounce: 200 * time.Millisecond,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Validate reports every setting that cannot be used.
func (c *Config) Validate() error {
	var errs []error
	if !(c.Sampling.Spacing > 0) {
		errs = append(errs, fmt.Errorf("sampling.spacing must be positive, got %v", c.Sampling.Spacing))
	}
	if !(c.Sampling.Resolution > 0) {
		errs = append(errs, fmt.Errorf("sampling.resolution must be positive, got %v", c.Sampling.Resolution))
	}
	if _, err := spline.ParseAnchorAxis(c.Frames.AnchorAxis); err != nil {
		errs = append(errs, fmt.Errorf("frames.anchor_axis: %w", err))
	}
	if !(c.Strip.Width > 0) {
		errs = append(errs, fmt.Errorf("strip.width must be positive, got %v", c.Strip.Width))
	}
	if _, err := strip.ParseArrayMode(c.Strip.ArrayMode); err != nil {
		errs = append(errs, fmt.Errorf("strip.array_mode: %w", err))
	}
	if err := c.ArrayOptions().Validate(); err != nil {
		errs = append(errs, fmt.Errorf("array: %w", err))
	}
	if c.Preview.Width <= 0 || c.Preview.Height <= 0 {
		errs = append(errs, fmt.Errorf("preview size must be positive, got %dx%d", c.Preview.Width, c.Preview.Height))
	}
	if c.Watch.Debounce < 0 {
		errs = append(errs, fmt.Errorf("watch.debounce must not be negative, got %v", c.Watch.Debounce))
	}
	if _, err := logger.ParseLevel(c.Logging.Level); err != nil {
		errs = append(errs, fmt.Errorf("logging.level: %w", err))
	}
	return errors.Join(errs...)
}
