// Package translate renders decoded METAR field tokens as human-readable
// phrases. The speech package consumes it for the descriptive parts of a
// briefing; output here may still contain digits, commas, and parenthetical
// alternate units, which the speech layer post-processes.
package translate

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/skybrief/metar-speech/internal/domain"
)

// Wind formats wind details into a descriptive phrase, e.g.
// "N-360 at 12 kt gusting to 20 kt". Direction, speed, and gust are taken
// verbatim, so callers may pass digits or already-spelled words. A zero or
// empty speed suppresses the speed clause. With useCardinals set, a numeric
// direction gains its compass-point prefix.
func Wind(wdir, wspd, wgst string, wvar []string, unit string, useCardinals bool) string {
	var ret string
	switch {
	case wdir == "000":
		ret = "Calm"
	case wdir == "VRB":
		ret = "Variable"
	case wdir != "":
		if c := cardinalDirection(wdir); useCardinals && c != "" {
			ret = c + "-" + wdir
		} else {
			ret = wdir
		}
	}
	if len(wvar) == 2 {
		ret += " (variable " + wvar[0] + " to " + wvar[1] + ")"
	}
	if wspd != "" && wspd != "0" && wspd != "00" {
		ret += " at " + wspd + " " + unit
	}
	if wgst != "" {
		ret += " gusting to " + wgst + " " + unit
	}
	return strings.TrimSpace(ret)
}

// cardinalDirection maps a numeric bearing to one of the sixteen compass
// points, or "" when the token is not numeric.
func cardinalDirection(wdir string) string {
	deg, err := strconv.Atoi(wdir)
	if err != nil || deg < 0 {
		return ""
	}
	idx := ((deg%360)*10 + 112) / 225 % 16
	return cardinals[idx]
}

// Visibility formats a visibility token with its unit, rendering meters as
// kilometers and appending the alternate unit in parentheses, e.g.
// "10sm (16.1km)". M/P prefixes become "Less than "/"Greater than ".
// Unknown tokens yield "".
func Visibility(vis, unit string) string {
	if domain.IsUnknown(vis) {
		return ""
	}
	var prefix string
	switch {
	case strings.HasPrefix(vis, "M"):
		prefix, vis = "Less than ", vis[1:]
	case strings.HasPrefix(vis, "P"):
		prefix, vis = "Greater than ", vis[1:]
	}
	value, ok := parseVisValue(vis)
	if !ok {
		return ""
	}
	switch unit {
	case "m":
		return prefix + trimFloat(value/1000) + "km (" + trimFloat(value*0.000621371) + "sm)"
	case "sm":
		return prefix + trimFloat(value) + "sm (" + trimFloat(value*1.609344) + "km)"
	default:
		return prefix + vis + unit
	}
}

// parseVisValue parses a visibility token that may be a plain number, a
// fraction, or a mixed number after unpacking ("1 1/2").
func parseVisValue(vis string) (float64, bool) {
	var total float64
	for _, part := range strings.Fields(domain.UnpackFraction(vis)) {
		if num, den, found := strings.Cut(part, "/"); found {
			n, errN := strconv.ParseFloat(num, 64)
			d, errD := strconv.ParseFloat(den, 64)
			if errN != nil || errD != nil || d == 0 {
				return 0, false
			}
			total += n / d
			continue
		}
		v, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return 0, false
		}
		total += v
	}
	return total, vis != ""
}

// trimFloat renders a float rounded to one decimal with no trailing ".0".
func trimFloat(v float64) string {
	s := strconv.FormatFloat(v, 'f', 1, 64)
	return strings.TrimSuffix(s, ".0")
}

// Clouds formats cloud layers into a phrase like
// "Broken layer at 1500ft (Cumulonimbus), Overcast layer at 4000ft - Reported AGL".
// Layers without a numeric height (CLR, SKC) carry no altitude clause; a
// non-empty layer list that formats to nothing reads "Sky clear". An empty
// list yields "" since the group was not reported at all.
func Clouds(layers []domain.CloudLayer, unit string) string {
	if len(layers) == 0 {
		return ""
	}
	parts := make([]string, 0, len(layers))
	for _, layer := range layers {
		tmpl, ok := cloudTranslations[layer.Type]
		if !ok {
			continue
		}
		alt, err := strconv.Atoi(layer.Height)
		if err != nil || !strings.Contains(tmpl, "%s") {
			continue // altitude-free coverage codes (CLR, SKC) mean a clear sky
		}
		phrase := fmt.Sprintf(tmpl, strconv.Itoa(alt*100), unit)
		if mod, ok := cloudTranslations[layer.Modifier]; ok && layer.Modifier != "" {
			phrase += " (" + mod + ")"
		}
		parts = append(parts, phrase)
	}
	if len(parts) == 0 {
		return "Sky clear"
	}
	return strings.Join(parts, ", ") + " - Reported AGL"
}

// WxCode expands a weather phenomenon code into words, e.g.
// "+TSRA" -> "Heavy Thunderstorm Rain", "VCSH" -> "Vicinity Showers".
// Chunks missing from the table pass through literally.
func WxCode(code string) string {
	if code == "" {
		return ""
	}
	var prefix string
	switch code[0] {
	case '+':
		prefix, code = "Heavy ", code[1:]
	case '-':
		prefix, code = "Light ", code[1:]
	}
	var words []string
	for len(code) >= 2 {
		if w, ok := wxTranslations[code[:2]]; ok {
			words = append(words, w)
		} else {
			words = append(words, code[:2])
		}
		code = code[2:]
	}
	if code != "" {
		words = append(words, code)
	}
	return strings.TrimSpace(prefix + strings.Join(words, " "))
}
