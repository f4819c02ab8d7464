package extract

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/ppiankov/identia/internal/model"
)

var (
	nonLetterRe  = regexp.MustCompile(`[^A-Za-z\s]`)
	labelNoiseRe = regexp.MustCompile(`(?i)(name|card|permanent|account|number)`)
	digitRunRe   = regexp.MustCompile(`\d+`)

	// Layout-shaped name patterns for the national-ID card: consecutive
	// capitalized-word lines, the block after an issue-date stamp, and the
	// line preceding the birth-date label.
	aadhaarNameRes = []*regexp.Regexp{
		regexp.MustCompile(`([A-Z][A-Za-z]+)\s+([A-Z][A-Za-z]+)[^\n]*\n([A-Z][A-Za-z]+)`),
		regexp.MustCompile(`([A-Z][A-Za-z]+\s+[A-Z][A-Za-z]+)\s*\n\s*([A-Z][A-Za-z]+\s+[A-Za-z]+)`),
		regexp.MustCompile(`([A-Z][A-Za-z]+\s+[A-Z][A-Za-z]+)`),
		regexp.MustCompile(`Issue Date:.*?\n\n(.*?)\n`),
		regexp.MustCompile(`(?m)^([A-Za-z ]+)\nDate of Birth`),
	}

	// Tax-ID card equivalents: a name label (or its frequent OCR misreads)
	// followed by a caps run, a caps line before a relation/date label, and
	// an explicit "Name:" label.
	panNameRes = []*regexp.Regexp{
		regexp.MustCompile(`(?:Name|Permanent Account Number Card|~|aT\s*/\s*Name)\s*([A-Z][A-Z ]+)`),
		regexp.MustCompile(`(?m)^([A-Z][A-Z ]+)\n(?:Father|Mother|Date)`),
		regexp.MustCompile(`Name\s*:\s*([A-Z][A-Z ]+)`),
	}

	// Line markers whose following line likely carries the printed name.
	// "aT / Name" and "~" are recurrent OCR renderings of the bilingual label.
	nameMarkerRe = regexp.MustCompile(`(?i)(?:aT\s*/\s*Name|Name|~)`)
)

// AadhaarNamePatterns returns the structural name regexes tuned to the
// national-ID letter layout.
func AadhaarNamePatterns() []*regexp.Regexp { return aadhaarNameRes }

// PANNamePatterns returns the structural name regexes tuned to the tax-ID
// card layout.
func PANNamePatterns() []*regexp.Regexp { return panNameRes }

// UppercaseTokenLine scans every line for all-uppercase tokens of length
// 3-15 outside the exclusion vocabulary. A line yielding two or more such
// tokens becomes a name candidate from its first three tokens.
func UppercaseTokenLine(excl ExclusionSet) Strategy {
	return Strategy{
		Name: "name_caps_tokens",
		Run: func(doc *Document, _ Partial) []model.Candidate {
			var out []model.Candidate
			for i, line := range doc.Lines {
				clean := nonLetterRe.ReplaceAllString(line, "")
				var parts []string
				for _, w := range strings.Fields(clean) {
					if isUpperAlpha(w) && len(w) >= 3 && len(w) <= 15 && !excl.Has(w) {
						parts = append(parts, w)
					}
				}
				if len(parts) >= 2 {
					if len(parts) > 3 {
						parts = parts[:3]
					}
					out = append(out, model.Candidate{Value: strings.Join(parts, " "), Line: i})
				}
			}
			return out
		},
	}
}

// StructuralName applies a fixed list of layout regexes against the raw
// text (blank lines intact). Multi-group matches join their first three
// parts into one candidate.
func StructuralName(patterns []*regexp.Regexp) Strategy {
	return Strategy{
		Name: "name_structural",
		Run: func(doc *Document, _ Partial) []model.Candidate {
			var out []model.Candidate
			for _, re := range patterns {
				for _, m := range re.FindAllStringSubmatch(doc.Raw, -1) {
					var parts []string
					for _, g := range m[1:] {
						if g = strings.TrimSpace(g); g != "" {
							parts = append(parts, g)
						}
					}
					if len(parts) == 0 {
						continue
					}
					if len(parts) > 3 {
						parts = parts[:3]
					}
					out = append(out, model.Candidate{Value: strings.Join(parts, " "), Line: -1})
				}
			}
			return out
		},
	}
}

// MarkerNextLine locates the first line carrying a name marker and takes
// the following line as the candidate, stripped of label words and digits.
func MarkerNextLine() Strategy {
	return Strategy{
		Name: "name_marker_next_line",
		Run: func(doc *Document, _ Partial) []model.Candidate {
			for i, line := range doc.Lines {
				if !nameMarkerRe.MatchString(line) {
					continue
				}
				if i+1 >= len(doc.Lines) {
					return nil
				}
				next := doc.Lines[i+1]
				if panNumberStartRe.MatchString(next) {
					return nil
				}
				cand := labelNoiseRe.ReplaceAllString(next, "")
				cand = digitRunRe.ReplaceAllString(cand, "")
				cand = CollapseSpaces(cand)
				if cand == "" {
					return nil
				}
				return []model.Candidate{{Value: cand, Line: i + 1}}
			}
			return nil
		},
	}
}

// CleanNameCandidate normalizes a pooled name candidate: strip everything
// but letters and spaces, drop one-letter OCR strays, cap at three words.
// A candidate carrying any excluded word is discarded whole rather than
// trimmed, as are candidates reduced below two words.
func CleanNameCandidate(excl ExclusionSet) func(string) (string, bool) {
	return func(s string) (string, bool) {
		clean := CollapseSpaces(nonLetterRe.ReplaceAllString(s, ""))
		var words []string
		for _, w := range strings.Fields(clean) {
			if len(w) < 2 {
				continue
			}
			if excl.Has(w) {
				return "", false
			}
			if len(words) < 3 {
				words = append(words, w)
			}
		}
		if len(words) < 2 {
			return "", false
		}
		return strings.Join(words, " "), true
	}
}

// TitleCase formats a name or address fragment in English title case.
// A fresh caser per call keeps extraction safe to run in parallel.
func TitleCase(s string) string {
	return cases.Title(language.English).String(s)
}
