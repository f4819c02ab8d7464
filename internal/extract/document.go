package extract

import (
	"regexp"
	"strings"
	"unicode"
)

// Document is the normalized view of one OCR text. Strategies pick whichever
// representation suits them: Raw keeps blank-line structure for block-shaped
// regexes, Clean has noise characters stripped, Lines is Clean split into
// trimmed non-empty lines with order preserved for positional heuristics.
type Document struct {
	Raw   string
	Clean string
	Lines []string
}

// NewDocument normalizes raw OCR output once per extraction call.
func NewDocument(raw string) *Document {
	clean := CleanText(raw)
	return &Document{
		Raw:   raw,
		Clean: clean,
		Lines: SplitLines(clean),
	}
}

// CleanText replaces characters outside the allow-list with spaces. Letters,
// digits, whitespace and the punctuation field patterns depend on (slashes
// and dashes for dates, colons for labels, commas for addresses, apostrophes
// for label markers) survive; line breaks are kept so positional heuristics
// still work.
func CleanText(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case unicode.IsLetter(r), unicode.IsDigit(r), unicode.IsSpace(r):
			return r
		case r == '/' || r == '-' || r == ':' || r == ',' || r == '\'' || r == '_':
			return r
		default:
			return ' '
		}
	}, s)
}

// SplitLines splits on line breaks, trims each line and drops empties.
func SplitLines(s string) []string {
	raw := strings.Split(strings.ReplaceAll(s, "\r", ""), "\n")
	lines := make([]string, 0, len(raw))
	for _, l := range raw {
		l = strings.TrimSpace(l)
		if l == "" {
			continue
		}
		lines = append(lines, l)
	}
	return lines
}

var spaceRe = regexp.MustCompile(`\s+`)

// CollapseSpaces folds runs of whitespace into single spaces and trims.
func CollapseSpaces(s string) string {
	return strings.TrimSpace(spaceRe.ReplaceAllString(s, " "))
}

// isUpperAlpha reports whether s contains at least one letter and no
// lowercase letters, the shape OCR yields for printed cardholder names.
func isUpperAlpha(s string) bool {
	hasLetter := false
	for _, r := range s {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsLetter(r) {
			hasLetter = true
		}
	}
	return hasLetter
}

// digitsOf strips everything but digits.
func digitsOf(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// containsDigit reports whether s carries any digit.
func containsDigit(s string) bool {
	return strings.ContainsAny(s, "0123456789")
}
