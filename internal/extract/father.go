package extract

import (
	"regexp"
	"strings"

	"github.com/ppiankov/identia/internal/model"
)

var (
	// Marker forms tolerate the apostrophe OCR drops or displaces.
	fatherMarkerRe = regexp.MustCompile(`(?i)(?:Father[\s']*s?\s*Name|S/O|D/O)`)

	fatherLabeledRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i:Father[\s']*s?\s*Name)\s*:?\s*([A-Z][A-Z ]+)`),
		regexp.MustCompile(`(?:S/O|D/O)\s*:?\s*([A-Z][A-Z ]+)`),
	}

	fatherNoiseRe  = regexp.MustCompile(`(?i)(father|name|s/o|d/o)`)
	fatherRejectRe = regexp.MustCompile(`(?i)(?:Name|PAN|Number|Card|Date|DOB)`)
	anyDateRe      = regexp.MustCompile(`\d{8}|\d{2}[/-]\d{2}[/-]\d{4}`)
)

// FatherLabeled fires only when a relation marker ("Father's Name", "S/O",
// "D/O") exists somewhere in the text, and applies label-anchored patterns
// scoped to it.
func FatherLabeled() Strategy {
	return Strategy{
		Name: "father_labeled",
		Run: func(doc *Document, _ Partial) []model.Candidate {
			if !fatherMarkerRe.MatchString(doc.Clean) {
				return nil
			}
			var out []model.Candidate
			for _, re := range fatherLabeledRes {
				for _, m := range re.FindAllStringSubmatch(doc.Clean, -1) {
					cand := fatherNoiseRe.ReplaceAllString(m[1], "")
					cand = digitRunRe.ReplaceAllString(cand, "")
					cand = CollapseSpaces(cand)
					if len(strings.Fields(cand)) >= 2 {
						out = append(out, model.Candidate{Value: cand, Line: -1})
					}
				}
			}
			return out
		},
	}
}

// FatherAfterName assumes the line printed right after the cardholder's
// name carries the father's name. It runs only when no relation marker
// exists, and accepts the line only if it is free of field labels and ID
// patterns, fully uppercase, and at least two words.
func FatherAfterName(nameField string) Strategy {
	return Strategy{
		Name: "father_after_name",
		Run: func(doc *Document, prior Partial) []model.Candidate {
			name := strings.ToUpper(prior[nameField])
			if name == "" || fatherMarkerRe.MatchString(doc.Clean) {
				return nil
			}
			for i, line := range doc.Lines {
				if !strings.Contains(strings.ToUpper(line), name) {
					continue
				}
				if i+1 >= len(doc.Lines) {
					return nil
				}
				next := doc.Lines[i+1]
				if fatherRejectRe.MatchString(next) || panNumberRe.MatchString(next) {
					return nil
				}
				cand := strings.TrimSpace(digitRunRe.ReplaceAllString(next, ""))
				if isUpperAlpha(cand) && len(strings.Fields(cand)) >= 2 {
					return []model.Candidate{{Value: cand, Line: i + 1}}
				}
				return nil
			}
			return nil
		},
	}
}

// FatherDateLine is the last resort: on lines that carry a date, strip the
// date and accept the remainder when it is fully uppercase, at least two
// words, and not the cardholder's own name. Known to misfire on arbitrary
// all-caps lines containing a date; kept for parity with observed layouts.
func FatherDateLine(nameField string) Strategy {
	return Strategy{
		Name: "father_date_line",
		Run: func(doc *Document, prior Partial) []model.Candidate {
			name := strings.ToUpper(prior[nameField])
			var out []model.Candidate
			for i, line := range doc.Lines {
				if !anyDateRe.MatchString(line) {
					continue
				}
				cand := strings.TrimSpace(anyDateRe.ReplaceAllString(line, ""))
				if !isUpperAlpha(cand) || len(strings.Fields(cand)) < 2 {
					continue
				}
				if name != "" && strings.ToUpper(cand) == name {
					continue
				}
				out = append(out, model.Candidate{Value: cand, Line: i})
			}
			return out
		},
	}
}
