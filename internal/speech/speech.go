// Package speech converts a decoded METAR observation into one
// natural-language sentence for text-to-speech playback.
//
// Every function here is total: malformed or missing tokens degrade to a
// partial phrase or a "<field> unknown" fallback, never an error. The output
// contains no commas, since TTS engines tend to read them as list pauses
// that distort cadence.
package speech

import (
	"strings"

	"github.com/skybrief/metar-speech/internal/domain"
	"github.com/skybrief/metar-speech/internal/translate"
)

// spokenUnits maps unit tags to the words a TTS engine should read in their
// place. Tags absent from the table pass through literally.
var spokenUnits = map[string]string{
	"sm":  "mile",
	"km":  "kilometer",
	"C":   "Celsius",
	"F":   "Fahrenheit",
	"kt":  "knots",
	"m/s": "meters per second",
}

// Wind formats wind details into a spoken phrase prefixed "Winds ".
// The calm ("000") and variable ("VRB") direction tokens pass through for
// the translation layer to describe; any other direction is spelled.
func Wind(wdir, wspd, wgst string, wvar []string, unit string) string {
	if name, ok := spokenUnits[unit]; ok {
		unit = name
	}
	if wdir != "000" && wdir != "VRB" {
		wdir = SpellNumber(wdir)
	}
	spelledVar := make([]string, len(wvar))
	for i, v := range wvar {
		spelledVar[i] = SpellNumber(v)
	}
	spd := StripLeadingZeros(wspd)
	if spd == "0" {
		spd = "" // calm speeds carry no speed clause
	} else {
		spd = SpellNumber(spd)
	}
	val := translate.Wind(wdir, spd, SpellNumber(StripLeadingZeros(wgst)), spelledVar, unit, false)
	if val == "" {
		val = "unknown"
	}
	return "Winds " + val
}

// Temperature formats a temperature or dew point value under the given
// header, e.g. "Temperature two zero degrees Celsius".
func Temperature(header, temp, unit string) string {
	if domain.IsUnknown(temp) {
		return header + " unknown"
	}
	if name, ok := spokenUnits[unit]; ok {
		unit = name
	}
	spelled := SpellNumber(StripLeadingZeros(temp))
	degrees := "degrees"
	if spelled == "one" || spelled == "minus one" {
		degrees = "degree"
	}
	return strings.Join([]string{header, spelled, degrees, unit}, " ")
}

// Visibility formats a visibility token into a spoken phrase prefixed
// "Visibility ". M/P prefixes speak as "less/greater than", fractions join
// their parts with "and", and plain values go through the translation layer
// before spelling.
func Visibility(vis, unit string) string {
	if domain.IsUnknown(vis) {
		return "Visibility unknown"
	}
	var spoken string
	switch {
	case strings.HasPrefix(vis, "M"):
		spoken = "less than " + SpellNumber(StripLeadingZeros(vis[1:]))
	case strings.HasPrefix(vis, "P"):
		spoken = "greater than " + SpellNumber(StripLeadingZeros(vis[1:]))
	case strings.Contains(vis, "/"):
		parts := strings.Fields(domain.UnpackFraction(vis))
		for i, p := range parts {
			parts[i] = SpellNumber(StripLeadingZeros(p))
		}
		spoken = strings.Join(parts, " and ")
	default:
		described := translate.Visibility(vis, unit)
		// Drop the parenthetical alternate-unit annotation, then the unit's
		// own text, leaving only the value to spell.
		if i := strings.Index(described, " ("); i >= 0 {
			described = described[:i]
		}
		if unit == "m" {
			unit = "km" // the translation layer renders meters as kilometers
		}
		described = strings.TrimSpace(strings.ReplaceAll(strings.ToLower(described), unit, ""))
		spoken = SpellNumber(StripLeadingZeros(described))
	}
	ret := "Visibility " + spoken
	name, ok := spokenUnits[unit]
	if !ok {
		return ret + unit
	}
	ret += " " + name
	// "one half" alone and "of a" phrases are already singular/fractional;
	// everything else pluralizes the unit word.
	singular := (strings.Contains(spoken, "one half") && !strings.Contains(spoken, " and ")) ||
		strings.Contains(spoken, "of a")
	if !singular {
		ret += "s"
	}
	return ret
}

// Altimeter formats an altimeter setting. The inHg decimal point is
// positional: the first two characters are the whole inches.
func Altimeter(alt, unit string) string {
	ret := "Altimeter "
	switch {
	case domain.IsUnknown(alt):
		ret += "unknown"
	case unit == "inHg":
		whole, frac := alt, ""
		if len(alt) >= 2 {
			whole, frac = alt[:2], alt[2:]
		}
		ret += SpellNumber(whole) + " point " + SpellNumber(frac)
	case unit == "hPa":
		ret += SpellNumber(alt)
	}
	return ret
}

// Phenomena formats weather phenomenon codes into phrases joined with ". ".
// A phrase opening with the word "Vicinity" is rewritten to trail
// "in the Vicinity" instead, which reads better aloud.
func Phenomena(codes []string) string {
	phrases := make([]string, 0, len(codes))
	for _, code := range codes {
		phrase := translate.WxCode(code)
		if rest, found := strings.CutPrefix(phrase, "Vicinity "); found {
			phrase = rest + " in the Vicinity"
		} else if phrase == "Vicinity" {
			phrase = "in the Vicinity"
		}
		phrases = append(phrases, phrase)
	}
	return strings.Join(phrases, ". ")
}

// Render assembles the full spoken briefing for one observation. Fields are
// rendered in fixed order, present fields only; empty segments are dropped
// and the rest joined with ". ". Commas never survive to the output.
//
// Render works on its own copy of the observation, so callers may share
// inputs across goroutines.
func Render(obs domain.Observation, units domain.Units) string {
	data := obs.Clone()
	segments := make([]string, 0, 7)
	if data.WindDirection != "" && data.WindSpeed != "" {
		segments = append(segments, Wind(data.WindDirection, data.WindSpeed, data.WindGust,
			data.WindVariableDirection, units.WindSpeed))
	}
	if data.Visibility != "" {
		segments = append(segments, Visibility(data.Visibility, units.Visibility))
	}
	if data.Temperature != "" {
		segments = append(segments, Temperature("Temperature", data.Temperature, units.Temperature))
	}
	if data.Dewpoint != "" {
		segments = append(segments, Temperature("Dew point", data.Dewpoint, units.Temperature))
	}
	if data.Altimeter != "" {
		segments = append(segments, Altimeter(data.Altimeter, units.Altimeter))
	}
	if len(data.WxCodes) > 0 {
		segments = append(segments, Phenomena(data.WxCodes))
	}
	clouds := translate.Clouds(data.Clouds, units.Altitude)
	segments = append(segments, strings.ReplaceAll(clouds, " - Reported AGL", ""))

	kept := segments[:0]
	for _, s := range segments {
		if s != "" {
			kept = append(kept, s)
		}
	}
	return strings.ReplaceAll(strings.Join(kept, ". "), ",", ".")
}
