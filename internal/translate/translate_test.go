package translate

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/skybrief/metar-speech/internal/domain"
)

func TestWind(t *testing.T) {
	tests := []struct {
		name     string
		wdir     string
		wspd     string
		wgst     string
		wvar     []string
		cardinal bool
		expected string
	}{
		{"cardinal bearing", "360", "12", "", nil, true, "N-360 at 12 kt"},
		{"east bearing", "090", "12", "", nil, true, "E-090 at 12 kt"},
		{"cardinals disabled", "090", "12", "", nil, false, "090 at 12 kt"},
		{"calm", "000", "5", "", nil, true, "Calm at 5 kt"},
		{"variable token", "VRB", "8", "", nil, true, "Variable at 8 kt"},
		{"gusting", "270", "15", "25", nil, true, "W-270 at 15 kt gusting to 25 kt"},
		{"variable range", "120", "10", "", []string{"100", "140"}, true, "ESE-120 (variable 100 to 140) at 10 kt"},
		{"zero speed suppressed", "270", "0", "", nil, true, "W-270"},
		{"empty everything", "", "", "", nil, true, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Wind(tt.wdir, tt.wspd, tt.wgst, tt.wvar, "kt", tt.cardinal))
		})
	}
}

func TestVisibility(t *testing.T) {
	tests := []struct {
		name     string
		vis      string
		unit     string
		expected string
	}{
		{"statute miles", "10", "sm", "10sm (16.1km)"},
		{"meters render as km", "9999", "m", "10km (6.2sm)"},
		{"short meters", "0350", "m", "0.3km (0.2sm)"},
		{"less than fraction", "M1/4", "sm", "Less than 0.2sm (0.4km)"},
		{"greater than", "P6", "sm", "Greater than 6sm (9.7km)"},
		{"improper fraction", "5/2", "sm", "2.5sm (4km)"},
		{"unknown sentinel", "////", "m", ""},
		{"empty", "", "m", ""},
		{"unparseable", "ABC", "sm", ""},
		{"unrecognized unit passes through", "3", "u", "3u"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Visibility(tt.vis, tt.unit))
		})
	}
}

func TestClouds(t *testing.T) {
	t.Run("unreported group", func(t *testing.T) {
		assert.Empty(t, Clouds(nil, "ft"))
	})

	t.Run("clear sky code", func(t *testing.T) {
		assert.Equal(t, "Sky clear", Clouds([]domain.CloudLayer{{Type: "CLR"}}, "ft"))
	})

	t.Run("single layer", func(t *testing.T) {
		got := Clouds([]domain.CloudLayer{{Type: "BKN", Height: "015"}}, "ft")
		assert.Equal(t, "Broken layer at 1500ft - Reported AGL", got)
	})

	t.Run("multiple layers with modifier", func(t *testing.T) {
		layers := []domain.CloudLayer{
			{Type: "SCT", Height: "020", Modifier: "CB"},
			{Type: "OVC", Height: "045"},
		}
		got := Clouds(layers, "ft")
		assert.Equal(t, "Scattered clouds at 2000ft (Cumulonimbus), Overcast layer at 4500ft - Reported AGL", got)
	})

	t.Run("unknown coverage skipped", func(t *testing.T) {
		layers := []domain.CloudLayer{
			{Type: "ZZZ", Height: "010"},
			{Type: "FEW", Height: "010"},
		}
		assert.Equal(t, "Few clouds at 1000ft - Reported AGL", Clouds(layers, "ft"))
	})
}

func TestWxCode(t *testing.T) {
	tests := []struct {
		code     string
		expected string
	}{
		{"", ""},
		{"RA", "Rain"},
		{"-RA", "Light Rain"},
		{"+TSRA", "Heavy Thunderstorm Rain"},
		{"VCSH", "Vicinity Showers"},
		{"FZFG", "Freezing Fog"},
		{"DRSN", "Low Drifting Snow"},
		{"XX", "XX"},
		{"RAZ", "Rain Z"},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.expected, WxCode(tt.code))
		})
	}
}
