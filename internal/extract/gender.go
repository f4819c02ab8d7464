package extract

import (
	"regexp"

	"github.com/ppiankov/identia/internal/model"
)

var (
	labeledGenderRe    = regexp.MustCompile(`(?i)(?:Gender|Sex)[:\s]+(Male|Female)`)
	standaloneGenderRe = regexp.MustCompile(`(?i)(?:^|[:/\s])(Male|Female)(?:[:/\s]|$)`)
	bareGenderRe       = regexp.MustCompile(`(?i)\b(Male|Female)\b`)
)

func genderStrategy(name string, re *regexp.Regexp) Strategy {
	return Strategy{
		Name: name,
		Run: func(doc *Document, _ Partial) []model.Candidate {
			if m := re.FindStringSubmatch(doc.Clean); m != nil {
				return []model.Candidate{{Value: m[1], Line: -1}}
			}
			return nil
		},
	}
}

// GenderStrategies is the ordered gender cascade: label-anchored, then a
// standalone token bounded by punctuation or whitespace, then a bare
// word-boundary match anywhere.
func GenderStrategies() []Strategy {
	return []Strategy{
		genderStrategy("gender_labeled", labeledGenderRe),
		genderStrategy("gender_standalone", standaloneGenderRe),
		genderStrategy("gender_bare", bareGenderRe),
	}
}
