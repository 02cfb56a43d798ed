// Package photometry provides the color science and photometric defaults
// used to derive light emitters from luminaire data.
package photometry

import "math"

// Clamp bounds for the black-body approximation, in kelvin/100.
const (
	minTemp = 10.0
	maxTemp = 400.0
)

// KelvinToRGB approximates the perceived color of a black-body radiator at
// the given color temperature. Channels are linear RGB in [0,1]. Input is
// clamped to [1000K, 40000K], the range the approximation was fitted for.
func KelvinToRGB(kelvin float64) (r, g, b float64) {
	t := kelvin / 100
	if t < minTemp {
		t = minTemp
	}
	if t > maxTemp {
		t = maxTemp
	}

	if t <= 66 {
		r = 1
	} else {
		r = clamp01(329.698727446 * math.Pow(t-60, -0.1332047592) / 255)
	}

	if t <= 66 {
		g = clamp01((99.4708025861*math.Log(t) - 161.1195681661) / 255)
	} else {
		g = clamp01(288.1221695283 * math.Pow(t-60, -0.0755148492) / 255)
	}

	switch {
	case t >= 66:
		b = 1
	case t <= 19:
		b = 0
	default:
		b = clamp01((138.5177312231*math.Log(t-10) - 305.0447927307) / 255)
	}

	return r, g, b
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
