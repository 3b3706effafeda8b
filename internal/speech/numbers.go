package speech

import "strings"

// numberWords spells single characters of a report token. Characters absent
// from the table are dropped from the spoken output rather than failing.
var numberWords = map[rune]string{
	'0': "zero",
	'1': "one",
	'2': "two",
	'3': "three",
	'4': "four",
	'5': "five",
	'6': "six",
	'7': "seven",
	'8': "eight",
	'9': "nine",
	'-': "minus",
	'M': "minus",
	'.': "point",
}

// fractionWords overrides character-by-character spelling for whole fraction
// tokens. Matched against the full token only, never per character.
var fractionWords = map[string]string{
	"1/4": "one quarter of a mile",
	"1/2": "one half",
	"3/4": "three quarters of a mile",
}

// SpellNumber returns the spoken form of a report token, e.g.
// "1.2" -> "one point two". Fraction exceptions map to their dedicated
// phrase; everything else is spelled character by character.
func SpellNumber(token string) string {
	if phrase, ok := fractionWords[token]; ok {
		return phrase
	}
	words := make([]string, 0, len(token))
	for _, c := range token {
		if w, ok := numberWords[c]; ok {
			words = append(words, w)
		}
	}
	return strings.Join(words, " ")
}

// StripLeadingZeros removes leading zeros while preserving a leading M or -
// sign marker. A token reduced to nothing (or to a bare sign) collapses to
// "0"; the empty token stays empty.
func StripLeadingZeros(token string) string {
	if token == "" {
		return token
	}
	var ret string
	switch {
	case strings.HasPrefix(token, "M"):
		ret = "M" + strings.TrimLeft(token[1:], "0")
	case strings.HasPrefix(token, "-"):
		ret = "-" + strings.TrimLeft(token[1:], "0")
	default:
		ret = strings.TrimLeft(token, "0")
	}
	switch ret {
	case "", "M", "-":
		return "0"
	}
	return ret
}
