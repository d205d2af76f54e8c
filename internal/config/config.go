// Package config handles viewer configuration loading and management.
package config

import "time"

// Config holds all viewer settings.
type Config struct {
	Window  WindowConfig  `yaml:"window"`
	Camera  CameraConfig  `yaml:"camera"`
	Astro   AstroConfig   `yaml:"astro"`
	Logging LoggingConfig `yaml:"logging"`
}

// WindowConfig holds display settings.
type WindowConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
}

// CameraConfig holds orbit camera settings. Distances are in planet radii.
type CameraConfig struct {
	Distance        float64 `yaml:"distance"`
	MinDistance     float64 `yaml:"min_distance"`
	MaxDistance     float64 `yaml:"max_distance"`
	DragSensitivity float64 `yaml:"drag_sensitivity"`
	TiltSensitivity float64 `yaml:"tilt_sensitivity"`
}

// AstroConfig holds astronomical resampling settings.
type AstroConfig struct {
	RotationInterval Duration `yaml:"rotation_interval"`
	SunInterval      Duration `yaml:"sun_interval"`
	PreciseSun       bool     `yaml:"precise_sun"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
		},
		Camera: CameraConfig{
			Distance:        2.2,
			MinDistance:     1.2,
			MaxDistance:     8.0,
			DragSensitivity: 0.01,
			TiltSensitivity: 0.05,
		},
		Astro: AstroConfig{
			RotationInterval: Duration(time.Minute),
			SunInterval:      Duration(time.Hour),
			PreciseSun:       false,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
