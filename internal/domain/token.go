package domain

import (
	"strconv"
	"strings"
)

// IsUnknown reports whether a token is the not-reported sentinel: empty, or
// made entirely of slashes ("////").
func IsUnknown(token string) bool {
	return strings.Trim(token, "/") == ""
}

// UnpackFraction rewrites an improper fraction token as a mixed number,
// e.g. "5/2" -> "2 1/2". Tokens that are not improper fractions pass through
// unchanged.
func UnpackFraction(token string) string {
	parts := strings.Split(token, "/")
	if len(parts) != 2 {
		return token
	}
	num, errN := strconv.Atoi(parts[0])
	den, errD := strconv.Atoi(parts[1])
	if errN != nil || errD != nil || den <= 0 || num <= den {
		return token
	}
	whole := num / den
	rem := num % den
	if rem == 0 {
		return strconv.Itoa(whole)
	}
	return strconv.Itoa(whole) + " " + strconv.Itoa(rem) + "/" + strconv.Itoa(den)
}
