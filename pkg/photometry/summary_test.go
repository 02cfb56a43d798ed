package photometry

import "testing"

func TestSummary_ColorTemperature(t *testing.T) {
	tests := []struct {
		name       string
		appearance string
		want       float64
	}{
		{"uppercase suffix", "4000K", 4000},
		{"lowercase suffix", "3000k", 3000},
		{"bare number", "2700", 2700},
		{"padded", "  5000K  ", 5000},
		{"fractional", "3152.5K", 3152.5},
		{"words fall back", "warm white", FallbackColorTemp},
		{"empty falls back", "", FallbackColorTemp},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Summary{ColorAppearance: tt.appearance}
			if got := s.ColorTemperature(); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSummary_DefaultFlux(t *testing.T) {
	tests := []struct {
		name    string
		summary Summary
		want    float64
	}{
		{"unspecified ratio counts as 1", Summary{TotalFlux: 1000}, 1000},
		{"ratio scales flux", Summary{TotalFlux: 1000, LightOutputRatio: 0.8}, 800},
		{"full ratio", Summary{TotalFlux: 2500, LightOutputRatio: 1}, 2500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.summary.DefaultFlux(); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestOverride_IsEmergencyOnly(t *testing.T) {
	tests := []struct {
		tag  string
		want bool
	}{
		{"EmergencyOnly", true},
		{"", false},
		{"emergencyonly", false},
		{"Always", false},
	}

	for _, tt := range tests {
		o := Override{Emergency: tt.tag}
		if got := o.IsEmergencyOnly(); got != tt.want {
			t.Errorf("tag %q: got %v, want %v", tt.tag, got, tt.want)
		}
	}
}
