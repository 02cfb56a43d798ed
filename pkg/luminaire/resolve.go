package luminaire

import (
	"github.com/chewxy/math32"
	dvec3 "github.com/flywave/go3d/float64/vec3"
	"github.com/flywave/go3d/vec3"
	"go.uber.org/zap"

	"github.com/lumenworks/luxrig/pkg/formats"
	"github.com/lumenworks/luxrig/pkg/photometry"
)

// Glow sizing clamps and fallbacks, meters.
const (
	minRectGlow    = 0.015
	minCircleGlow  = 0.03
	unknownGlow    = 0.05
	unknownFalloff = 0.05
)

// Emitter is a fully resolved light source, ready for scene assembly.
type Emitter struct {
	Name          string        `yaml:"name"`
	Position      vec3.T        `yaml:"position"`      // host scene space (Y up, mounting offset applied)
	AimDirection  vec3.T        `yaml:"aim_direction"` // direction light exits toward
	Shape         formats.Shape `yaml:"shape"`
	Color         [3]float32    `yaml:"color"`          // linear RGB in [0,1]
	Flux          float64       `yaml:"flux"`           // lumens, after emergency dimming
	GlowRadius    float32       `yaml:"glow_radius"`    // glow primitive half size, meters
	FalloffRadius float32       `yaml:"falloff_radius"` // point light falloff radius, meters
	EmergencyOnly bool          `yaml:"emergency_only"`
}

// resolveEmitters converts walked surfaces into host space and merges
// per-surface overrides with the scene-wide defaults. The default flux share
// divides by the total surface count, not by the count of surfaces lacking
// an override; adding an override does not rebalance the remaining shares.
func resolveEmitters(surfaces []Surface, mountingOffset dvec3.T, overrides []photometry.Override, summary *photometry.Summary, log *zap.Logger) []Emitter {
	if len(surfaces) == 0 {
		return nil
	}

	defaultTemp := photometry.FallbackColorTemp
	defaultFlux := photometry.FallbackFlux
	if summary != nil {
		defaultTemp = summary.ColorTemperature()
		defaultFlux = summary.DefaultFlux()
	}
	defaultColor := colorFromKelvin(defaultTemp)
	fluxShare := defaultFlux / float64(len(surfaces))

	byName := make(map[string]*photometry.Override, len(overrides))
	for i := range overrides {
		byName[overrides[i].Name] = &overrides[i]
	}

	emitters := make([]Emitter, 0, len(surfaces))
	for _, s := range surfaces {
		position, aim := ConvertSurface(s, mountingOffset)

		flux := fluxShare
		color := defaultColor
		emergency := false

		if ov := byName[s.Name]; ov != nil {
			if ov.Flux != nil {
				flux = *ov.Flux
			}
			if ov.ColorTemperature != nil {
				color = colorFromKelvin(*ov.ColorTemperature)
			}
			emergency = ov.IsEmergencyOnly()
		}
		if emergency {
			flux *= photometry.EmergencyDimFactor
		}

		glow, falloff := glowSize(s.Shape)

		emitters = append(emitters, Emitter{
			Name:          s.Name,
			Position:      vec3.T{float32(position[0]), float32(position[1]), float32(position[2])},
			AimDirection:  vec3.T{float32(aim[0]), float32(aim[1]), float32(aim[2])},
			Shape:         s.Shape,
			Color:         color,
			Flux:          flux,
			GlowRadius:    glow,
			FalloffRadius: falloff,
			EmergencyOnly: emergency,
		})

		log.Debug("emitter resolved",
			zap.String("name", s.Name),
			zap.String("shape", s.Shape.Type.String()),
			zap.Float64("flux", flux))
	}

	return emitters
}

// glowSize derives the glow primitive half size and the point light falloff
// radius from a surface extent.
func glowSize(shape formats.Shape) (glow, falloff float32) {
	switch shape.Type {
	case formats.ShapeRectangle:
		half := math32.Max(shape.Width, shape.Height) / 2
		return math32.Max(half, minRectGlow), half
	case formats.ShapeCircle:
		half := shape.Diameter / 2
		return math32.Max(half, minCircleGlow), half
	default:
		return unknownGlow, unknownFalloff
	}
}

func colorFromKelvin(kelvin float64) [3]float32 {
	r, g, b := photometry.KelvinToRGB(kelvin)
	return [3]float32{float32(r), float32(g), float32(b)}
}
