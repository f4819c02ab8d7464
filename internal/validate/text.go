package validate

import (
	"regexp"
	"strings"
)

var postalRe = regexp.MustCompile(`\d{6}`)

// Address accepts a candidate only if it looks like a postal address:
// at least one comma-delimited segment boundary and a 6-digit postal code.
func Address(s string) bool {
	return strings.Contains(s, ",") && postalRe.MatchString(s)
}

// PersonName accepts a cleaned name candidate: two or three purely
// alphabetic words. Cleaning (noise stripping, exclusion filtering) happens
// upstream; this is the final structural check.
func PersonName(s string) bool {
	words := strings.Fields(s)
	if len(words) < 2 || len(words) > 3 {
		return false
	}
	for _, w := range words {
		if len(w) < 2 || !alphabetic(w) {
			return false
		}
	}
	return true
}

func alphabetic(s string) bool {
	for _, r := range s {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') {
			return false
		}
	}
	return s != ""
}
