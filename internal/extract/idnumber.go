package extract

import (
	"regexp"
	"strings"

	"github.com/ppiankov/identia/internal/model"
)

var (
	// 12 digits grouped 4-4-4 with optional internal whitespace.
	aadhaarNumberRe = regexp.MustCompile(`\b\d{4}\s?\d{4}\s?\d{4}\b`)
	// 5 uppercase letters, 4 digits, 1 uppercase letter.
	panNumberRe      = regexp.MustCompile(`[A-Z]{5}[0-9]{4}[A-Z]`)
	panNumberStartRe = regexp.MustCompile(`^[A-Z]{5}[0-9]{4}[A-Z]`)
)

// AadhaarNumber matches the 12-digit national identifier anywhere in the
// raw text, whitespace-tolerant. A single regex, first match wins.
func AadhaarNumber() Strategy {
	return Strategy{
		Name: "number_grouped_digits",
		Run: func(doc *Document, _ Partial) []model.Candidate {
			var out []model.Candidate
			for _, m := range aadhaarNumberRe.FindAllString(doc.Raw, -1) {
				out = append(out, model.Candidate{Value: m, Line: -1})
			}
			return out
		},
	}
}

// FormatAadhaarNumber canonicalizes to "XXXX XXXX XXXX": strip whatever
// whitespace OCR injected, then re-insert single spaces every four digits.
func FormatAadhaarNumber(s string) string {
	digits := digitsOf(s)
	if len(digits) != 12 {
		return s
	}
	return digits[:4] + " " + digits[4:8] + " " + digits[8:12]
}

// ValidAadhaarNumber requires exactly 12 digits once whitespace is removed.
func ValidAadhaarNumber(s string) bool {
	return len(digitsOf(s)) == 12
}

// PANNumber matches the fixed 10-character alphanumeric tax identifier in
// the cleaned text. First match wins, upper-cased.
func PANNumber() Strategy {
	return Strategy{
		Name: "number_alphanumeric",
		Run: func(doc *Document, _ Partial) []model.Candidate {
			var out []model.Candidate
			for _, m := range panNumberRe.FindAllString(doc.Clean, -1) {
				out = append(out, model.Candidate{Value: strings.ToUpper(m), Line: -1})
			}
			return out
		},
	}
}
