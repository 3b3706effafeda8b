// Package domain models decoded METAR observations and their spoken briefings.
//
// # Data Source
//
// Observations arrive on the source Kafka topic as JSON produced by the
// upstream decoder service, which fetches raw METAR reports (e.g. from
// https://aviationweather.gov), splits them into fields, and publishes one
// message per station refresh. This service never sees raw METAR text except
// as an opaque passthrough string; every field is already an isolated report
// token.
//
// # Report Token Conventions
//
// Numeric fields keep their METAR encoding rather than being converted to
// numbers, because the spoken rendering depends on the exact digit sequence:
//
//	Wind direction:  three digits ("090"), "000" for calm, "VRB" for variable.
//	Wind speed/gust: plain digits, possibly zero-padded ("05").
//	Visibility:      digits ("10", "0350"), fractions ("1/2"), a leading "M"
//	                 meaning "less than" and "P" meaning "greater than".
//	Temperature:     digits with a leading "M" meaning below zero ("M05").
//	Altimeter:       four digits; the inHg decimal point is positional,
//	                 not encoded ("2992" = 29.92).
//	Unknown:         a token of all slashes ("////") means the quantity was
//	                 not reported. See [IsUnknown].
//
// Wx (weather phenomena) codes follow the standard grammar: optional +/-
// intensity prefix followed by two-letter descriptor/precipitation chunks,
// e.g. "-RA" (light rain), "VCSH" (showers in the vicinity).
//
// Cloud groups are a coverage code with a three-digit height in hundreds of
// feet, e.g. BKN 015 = broken layer at 1,500 ft AGL.
//
// # Units
//
// Units travel with the observation as opaque tags (kt, sm, m, C, F, ft,
// inHg, hPa), one per measurable quantity. The speech layer resolves tags to
// spoken names through a lookup table; unresolved tags pass through
// literally.
//
// # Ownership
//
// Formatters never mutate a caller's Observation or Units. The speech
// orchestrator works on [Observation.Clone], so concurrent renderings over
// shared inputs need no locking.
package domain
