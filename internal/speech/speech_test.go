package speech

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/skybrief/metar-speech/internal/domain"
)

const unknownToken = "////"

func TestWind(t *testing.T) {
	t.Run("calm direction passes through", func(t *testing.T) {
		got := Wind("000", "05", "", nil, "kt")
		assert.Equal(t, "Winds Calm at five knots", got)
		assert.False(t, strings.ContainsAny(got, "0123456789"), "spoken wind must not contain digits")
	})

	t.Run("variable direction passes through", func(t *testing.T) {
		assert.Equal(t, "Winds Variable at one zero knots", Wind("VRB", "10", "", nil, "kt"))
	})

	t.Run("direction and gust spelled", func(t *testing.T) {
		got := Wind("090", "10", "20", nil, "kt")
		assert.Equal(t, "Winds zero nine zero at one zero knots gusting to two zero knots", got)
	})

	t.Run("variable range spelled", func(t *testing.T) {
		got := Wind("120", "08", "", []string{"100", "140"}, "kt")
		assert.Equal(t, "Winds one two zero (variable one zero zero to one four zero) at eight knots", got)
	})

	t.Run("caller slice untouched", func(t *testing.T) {
		wvar := []string{"100", "140"}
		Wind("120", "08", "", wvar, "kt")
		assert.Equal(t, []string{"100", "140"}, wvar)
	})

	t.Run("zero speed drops the speed clause", func(t *testing.T) {
		assert.Equal(t, "Winds Calm", Wind("000", "00", "", nil, "kt"))
	})

	t.Run("nothing to say", func(t *testing.T) {
		assert.Equal(t, "Winds unknown", Wind("", "", "", nil, "kt"))
	})

	t.Run("unmapped unit passes through", func(t *testing.T) {
		assert.Equal(t, "Winds zero nine zero at one zero kp", Wind("090", "10", "", nil, "kp"))
	})
}

func TestTemperature(t *testing.T) {
	tests := []struct {
		name     string
		header   string
		temp     string
		unit     string
		expected string
	}{
		{"plural", "Temperature", "20", "C", "Temperature two zero degrees Celsius"},
		{"padded", "Dew point", "05", "C", "Dew point five degrees Celsius"},
		{"singular one", "Temperature", "01", "C", "Temperature one degree Celsius"},
		{"singular minus one", "Temperature", "M01", "C", "Temperature minus one degree Celsius"},
		{"minus many", "Temperature", "M12", "C", "Temperature minus one two degrees Celsius"},
		{"fahrenheit", "Temperature", "68", "F", "Temperature six eight degrees Fahrenheit"},
		{"unmapped unit passes through", "Temperature", "20", "K", "Temperature two zero degrees K"},
		{"unknown sentinel", "Temperature", unknownToken, "C", "Temperature unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Temperature(tt.header, tt.temp, tt.unit))
		})
	}
}

func TestVisibility(t *testing.T) {
	t.Run("unknown sentinel", func(t *testing.T) {
		assert.Equal(t, "Visibility unknown", Visibility(unknownToken, "m"))
	})

	t.Run("less than prefix", func(t *testing.T) {
		got := Visibility("M1/4", "m")
		assert.True(t, strings.HasPrefix(got, "Visibility less than "), got)
	})

	t.Run("greater than prefix", func(t *testing.T) {
		assert.Equal(t, "Visibility greater than six miles", Visibility("P6", "sm"))
	})

	t.Run("half mile keeps singular unit", func(t *testing.T) {
		assert.Equal(t, "Visibility one half mile", Visibility("1/2", "sm"))
	})

	t.Run("mixed number from improper fraction", func(t *testing.T) {
		assert.Equal(t, "Visibility one and one half miles", Visibility("3/2", "sm"))
	})

	t.Run("statute miles spelled", func(t *testing.T) {
		assert.Equal(t, "Visibility one zero miles", Visibility("10", "sm"))
	})

	t.Run("meters speak as kilometers", func(t *testing.T) {
		assert.Equal(t, "Visibility one zero kilometers", Visibility("9999", "m"))
	})

	t.Run("sub-kilometer meters", func(t *testing.T) {
		assert.Equal(t, "Visibility point three kilometers", Visibility("0350", "m"))
	})
}

func TestAltimeter(t *testing.T) {
	t.Run("inHg splits on the positional decimal", func(t *testing.T) {
		got := Altimeter("2992", "inHg")
		assert.Equal(t, "Altimeter "+SpellNumber("29")+" point "+SpellNumber("92"), got)
		assert.Equal(t, "Altimeter two nine point nine two", got)
	})

	t.Run("hPa spelled whole", func(t *testing.T) {
		assert.Equal(t, "Altimeter one zero one three", Altimeter("1013", "hPa"))
	})

	t.Run("unknown sentinel", func(t *testing.T) {
		assert.Equal(t, "Altimeter unknown", Altimeter(unknownToken, "inHg"))
	})

	t.Run("unrecognized unit yields bare prefix", func(t *testing.T) {
		assert.Equal(t, "Altimeter ", Altimeter("1013", "mb"))
	})
}

func TestPhenomena(t *testing.T) {
	t.Run("vicinity moves to the tail", func(t *testing.T) {
		got := Phenomena([]string{"VCSH"})
		assert.Equal(t, "Showers in the Vicinity", got)
		assert.False(t, strings.HasPrefix(got, "Vicinity"))
	})

	t.Run("codes join with sentence breaks", func(t *testing.T) {
		assert.Equal(t, "Light Rain. Mist", Phenomena([]string{"-RA", "BR"}))
	})

	t.Run("intensity prefix", func(t *testing.T) {
		assert.Equal(t, "Heavy Thunderstorm Rain", Phenomena([]string{"+TSRA"}))
	})

	t.Run("empty list", func(t *testing.T) {
		assert.Empty(t, Phenomena(nil))
	})
}

func fullObservation() (domain.Observation, domain.Units) {
	obs := domain.Observation{
		WindDirection: "090",
		WindSpeed:     "10",
		Visibility:    "10",
		Temperature:   "20",
		Dewpoint:      "15",
		Altimeter:     "2992",
	}
	units := domain.Units{
		WindSpeed:   "kt",
		Visibility:  "sm",
		Temperature: "C",
		Altitude:    "ft",
		Altimeter:   "inHg",
	}
	return obs, units
}

func TestRender(t *testing.T) {
	t.Run("five segments in fixed order", func(t *testing.T) {
		obs, units := fullObservation()
		got := Render(obs, units)

		expected := strings.Join([]string{
			"Winds zero nine zero at one zero knots",
			"Visibility one zero miles",
			"Temperature two zero degrees Celsius",
			"Dew point one five degrees Celsius",
			"Altimeter two nine point nine two",
		}, ". ")
		assert.Equal(t, expected, got)
		assert.NotContains(t, got, ",")
	})

	t.Run("omitted field leaves no separator artifact", func(t *testing.T) {
		obs, units := fullObservation()
		obs.Altimeter = ""
		got := Render(obs, units)

		assert.NotContains(t, got, "Altimeter")
		assert.NotContains(t, got, ". .")
		assert.False(t, strings.HasPrefix(got, ". "))
		assert.False(t, strings.HasSuffix(got, ". "))
		assert.True(t, strings.HasSuffix(got, "Dew point one five degrees Celsius"))
	})

	t.Run("cloud commas become sentence breaks", func(t *testing.T) {
		obs, units := fullObservation()
		obs.Clouds = []domain.CloudLayer{
			{Type: "BKN", Height: "015"},
			{Type: "OVC", Height: "040"},
		}
		got := Render(obs, units)

		assert.Contains(t, got, "Broken layer at 1500ft. Overcast layer at 4000ft")
		assert.NotContains(t, got, ",")
		assert.NotContains(t, got, "Reported AGL")
	})

	t.Run("phenomena included when present", func(t *testing.T) {
		obs, units := fullObservation()
		obs.WxCodes = []string{"VCSH"}
		got := Render(obs, units)

		assert.Contains(t, got, "Showers in the Vicinity")
	})

	t.Run("wind omitted without both direction and speed", func(t *testing.T) {
		obs, units := fullObservation()
		obs.WindSpeed = ""
		got := Render(obs, units)

		assert.NotContains(t, got, "Winds")
		assert.True(t, strings.HasPrefix(got, "Visibility"))
	})

	t.Run("caller observation untouched", func(t *testing.T) {
		obs, units := fullObservation()
		obs.WindVariableDirection = []string{"060", "120"}
		obs.WxCodes = []string{"VCSH"}
		Render(obs, units)

		assert.Equal(t, []string{"060", "120"}, obs.WindVariableDirection)
		assert.Equal(t, []string{"VCSH"}, obs.WxCodes)
	})

	t.Run("empty observation renders empty string", func(t *testing.T) {
		assert.Empty(t, Render(domain.Observation{}, domain.Units{}))
	})

	t.Run("never contains commas", func(t *testing.T) {
		obs, units := fullObservation()
		obs.WxCodes = []string{"+TSRA", "VCSH", "BR"}
		obs.Clouds = []domain.CloudLayer{
			{Type: "FEW", Height: "010"},
			{Type: "BKN", Height: "025", Modifier: "CB"},
			{Type: "OVC", Height: "070"},
		}
		obs.WindGust = "25"
		obs.WindVariableDirection = []string{"060", "120"}

		assert.NotContains(t, Render(obs, units), ",")
	})
}
