package translate

// cloudTranslations maps coverage codes to phrase templates. %s slots are
// altitude and unit; codes without slots are complete phrases.
var cloudTranslations = map[string]string{
	"OVC": "Overcast layer at %s%s",
	"BKN": "Broken layer at %s%s",
	"SCT": "Scattered clouds at %s%s",
	"FEW": "Few clouds at %s%s",
	"VV":  "Vertical visibility up to %s%s",
	"CLR": "Sky clear",
	"SKC": "Sky clear",
	"AC":  "Altocumulus",
	"ACC": "Altocumulus Castellanus",
	"AS":  "Altostratus",
	"CB":  "Cumulonimbus",
	"CC":  "Cirrocumulus",
	"CI":  "Cirrus",
	"CS":  "Cirrostratus",
	"CU":  "Cumulus",
	"NS":  "Nimbostratus",
	"SC":  "Stratocumulus",
	"ST":  "Stratus",
	"TCU": "Towering Cumulus",
}

// wxTranslations maps two-letter wx chunks to their descriptive words.
var wxTranslations = map[string]string{
	"BC": "Patchy",
	"BL": "Blowing",
	"BR": "Mist",
	"DR": "Low Drifting",
	"DS": "Duststorm",
	"DU": "Wide Dust",
	"DZ": "Drizzle",
	"FC": "Funnel Cloud",
	"FG": "Fog",
	"FU": "Smoke",
	"FZ": "Freezing",
	"GR": "Hail",
	"GS": "Small Hail",
	"HZ": "Haze",
	"IC": "Ice Crystals",
	"MI": "Shallow",
	"PL": "Ice Pellets",
	"PO": "Dust Whirls",
	"PR": "Partial",
	"PY": "Spray",
	"RA": "Rain",
	"SA": "Sand",
	"SG": "Snow Grains",
	"SH": "Showers",
	"SN": "Snow",
	"SQ": "Squall",
	"SS": "Sandstorm",
	"TS": "Thunderstorm",
	"UP": "Unknown Precip",
	"VA": "Volcanic Ash",
	"VC": "Vicinity",
}

// cardinals lists the sixteen compass points clockwise from north.
var cardinals = [16]string{
	"N", "NNE", "NE", "ENE", "E", "ESE", "SE", "SSE",
	"S", "SSW", "SW", "WSW", "W", "WNW", "NW", "NNW",
}
