package extract

import (
	"regexp"
	"strings"

	"github.com/ppiankov/identia/internal/model"
)

var (
	labeledDateRe  = regexp.MustCompile(`(?i)(?:DOB|Date of Birth|Birth)[:\s]+(\d{2}[/-]\d{2}[/-]\d{4})`)
	bareDateRe     = regexp.MustCompile(`\b(\d{2}[/-]\d{2}[/-]\d{4})\b`)
	issueOrPrintRe = regexp.MustCompile(`(?i)(?:Issue|Print)\s*Date`)
	compactDateRe  = regexp.MustCompile(`\b(\d{8})\b`)
)

// LabeledDate anchors on a birth label ("DOB", "Date of Birth", "Birth")
// followed by a delimited date.
func LabeledDate() Strategy {
	return Strategy{
		Name: "date_labeled",
		Run: func(doc *Document, _ Partial) []model.Candidate {
			var out []model.Candidate
			for _, m := range labeledDateRe.FindAllStringSubmatch(doc.Clean, -1) {
				out = append(out, model.Candidate{Value: m[1], Line: -1})
			}
			return out
		},
	}
}

// BareDate takes any delimited date in the text, skipping lines that carry
// issue or print dates so administrative dates never pose as birth dates.
func BareDate() Strategy {
	return Strategy{
		Name: "date_bare",
		Run: func(doc *Document, _ Partial) []model.Candidate {
			var out []model.Candidate
			for i, line := range doc.Lines {
				if issueOrPrintRe.MatchString(line) {
					continue
				}
				for _, m := range bareDateRe.FindAllStringSubmatch(line, -1) {
					out = append(out, model.Candidate{Value: m[1], Line: i})
				}
			}
			return out
		},
	}
}

// CompactDate reads 8 contiguous digits as ddmmyyyy and reformats them.
// Digit runs that are a substring of the already-extracted identifier in
// idField are skipped; OCR sometimes fuses the ID number into one run.
func CompactDate(idField string) Strategy {
	return Strategy{
		Name: "date_compact",
		Run: func(doc *Document, prior Partial) []model.Candidate {
			idDigits := digitsOf(prior[idField])
			var out []model.Candidate
			for i, line := range doc.Lines {
				if issueOrPrintRe.MatchString(line) {
					continue
				}
				for _, m := range compactDateRe.FindAllStringSubmatch(line, -1) {
					if idDigits != "" && strings.Contains(idDigits, m[1]) {
						continue
					}
					v := m[1][:2] + "/" + m[1][2:4] + "/" + m[1][4:8]
					out = append(out, model.Candidate{Value: v, Line: i})
				}
			}
			return out
		},
	}
}
