// Package photometry provides the color science and photometric defaults
// used to derive light emitters from luminaire data.
package photometry

import (
	"strconv"
	"strings"
)

// Scene-wide fallbacks used when no photometric summary is supplied.
const (
	FallbackColorTemp = 4000.0 // kelvin, neutral warm white
	FallbackFlux      = 1000.0 // lumens
)

// Emergency behavior tags.
const (
	// EmergencyOnly marks an emitter that is lit only in emergency mode;
	// normal-mode previews dim its flux by EmergencyDimFactor.
	EmergencyOnly      = "EmergencyOnly"
	EmergencyDimFactor = 0.1
)

// Summary carries the scene-wide photometric defaults extracted from a
// luminaire's photometric report.
type Summary struct {
	TotalFlux        float64 `yaml:"total_flux"`         // lumens
	ColorAppearance  string  `yaml:"color_appearance"`   // e.g. "4000K"
	LightOutputRatio float64 `yaml:"light_output_ratio"` // 0 means unspecified
}

// DefaultFlux returns the total flux scaled by the light output ratio. An
// unspecified ratio counts as 1.
func (s *Summary) DefaultFlux() float64 {
	ratio := s.LightOutputRatio
	if ratio == 0 {
		ratio = 1
	}
	return s.TotalFlux * ratio
}

// ColorTemperature parses the color appearance ("4000K", "3000k", or a bare
// number) into kelvin, falling back to FallbackColorTemp when the string is
// not numeric.
func (s *Summary) ColorTemperature() float64 {
	appearance := strings.TrimSpace(s.ColorAppearance)
	appearance = strings.TrimRight(appearance, "Kk")

	value, err := strconv.ParseFloat(strings.TrimSpace(appearance), 64)
	if err != nil {
		return FallbackColorTemp
	}
	return value
}

// Override adjusts one emitter's photometric parameters, matched against a
// surface by exact name equality. Nil fields leave the scene default in
// effect.
type Override struct {
	Name             string   `yaml:"name"`
	Flux             *float64 `yaml:"flux,omitempty"`              // lumens
	ColorTemperature *float64 `yaml:"color_temperature,omitempty"` // kelvin
	Emergency        string   `yaml:"emergency,omitempty"`         // behavior tag
}

// IsEmergencyOnly reports whether the override tags its emitter as lit only
// in emergency mode.
func (o *Override) IsEmergencyOnly() bool {
	return o.Emergency == EmergencyOnly
}
