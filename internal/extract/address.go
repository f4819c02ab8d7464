package extract

import (
	"regexp"

	"github.com/ppiankov/identia/internal/model"
)

var (
	// Label-anchored block: capture after "Address:" until a blank line or a
	// new section opening with a word character.
	labeledAddressRe = regexp.MustCompile(`(?is)Address\s*:(.+?)(?:\n\n|\n\w|$)`)
	// Comma-delimited segments ending in a 6-digit postal code, with and
	// without the label.
	labeledPostalAddressRe = regexp.MustCompile(`(?is)Address:([^,]+,[^,]+,[^,]+,.*?\d{6})`)
	barePostalAddressRe    = regexp.MustCompile(`(?is)([^,]+,[^,]+,[^,]+,.*?\d{6})`)

	// Looser rescue boundary: the block ends at a blank line or the next
	// capitalized-line start.
	rescueAddressRe = regexp.MustCompile(`(?is)Address:(.*?)(?:\n\n|\n[A-Z]|$)`)
)

func addressStrategy(name string, re *regexp.Regexp) Strategy {
	return Strategy{
		Name: name,
		Run: func(doc *Document, _ Partial) []model.Candidate {
			if m := re.FindStringSubmatch(doc.Raw); m != nil {
				return []model.Candidate{{Value: m[1], Line: -1}}
			}
			return nil
		},
	}
}

// AddressStrategies is the ordered address cascade. Acceptance (comma plus
// 6-digit postal code) lives in the field's validation predicate, so a
// rejected label-anchored block falls through to the postal-shaped patterns.
func AddressStrategies() []Strategy {
	return []Strategy{
		addressStrategy("address_labeled", labeledAddressRe),
		addressStrategy("address_labeled_postal", labeledPostalAddressRe),
		addressStrategy("address_bare_postal", barePostalAddressRe),
	}
}
