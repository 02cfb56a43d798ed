// Package config handles pipeline configuration loading and management.
package config

import "github.com/lumenworks/luxrig/pkg/photometry"

// Config holds all pipeline settings.
type Config struct {
	Scene       SceneConfig       `yaml:"scene"`
	Photometric PhotometricConfig `yaml:"photometric"`
	Output      OutputConfig      `yaml:"output"`
	Logging     LoggingConfig     `yaml:"logging"`
}

// SceneConfig holds room geometry and the scene directory.
type SceneConfig struct {
	Dir               string  `yaml:"dir"`                // Directory with structure.yaml and mesh assets
	RoomWidth         float64 `yaml:"room_width"`         // Meters along X
	RoomDepth         float64 `yaml:"room_depth"`         // Meters along Z
	RoomHeight        float64 `yaml:"room_height"`        // Meters along Y
	MountingClearance float64 `yaml:"mounting_clearance"` // Drop below the ceiling in meters
}

// PhotometricConfig holds bundle-level photometric inputs.
type PhotometricConfig struct {
	FallbackFlux      float64               `yaml:"fallback_flux"`       // Lumens when the scene carries no summary
	FallbackColorTemp float64               `yaml:"fallback_color_temp"` // Kelvin when the scene carries no appearance
	Summary           *photometry.Summary   `yaml:"summary"`
	Overrides         []photometry.Override `yaml:"overrides"`
}

// OutputConfig holds result dump settings.
type OutputConfig struct {
	Path string `yaml:"path"` // Derived emitters/meshes are written here, empty disables
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Scene: SceneConfig{
			Dir:               "scene",
			RoomWidth:         4.0,
			RoomDepth:         5.0,
			RoomHeight:        2.8,
			MountingClearance: 0.1,
		},
		Photometric: PhotometricConfig{
			FallbackFlux:      photometry.FallbackFlux,
			FallbackColorTemp: photometry.FallbackColorTemp,
		},
		Output: OutputConfig{
			Path: "",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
