package extract

import (
	"strings"

	"github.com/ppiankov/identia/internal/model"
)

// Rescue is a cross-field fallback pass the assembler applies after the
// per-field cascade. Each pass inspects the current value of its field and
// either returns a replacement or leaves it alone.
type Rescue struct {
	Field string
	Run   func(doc *Document, current string) (string, bool)
}

// RescueAddress re-scans the raw text for an "Address:" block with a looser
// boundary rule (blank line or next capitalized-line start) and adopts it
// when the primary pass came up empty.
func RescueAddress() Rescue {
	return Rescue{
		Field: model.FieldAddress,
		Run: func(doc *Document, current string) (string, bool) {
			if current != "" {
				return "", false
			}
			m := rescueAddressRe.FindStringSubmatch(doc.Raw)
			if m == nil {
				return "", false
			}
			addr := CollapseSpaces(m[1])
			if addr == "" {
				return "", false
			}
			return addr, true
		},
	}
}

// rescueNamePoison are substrings that disqualify a rescued name line.
var rescueNamePoison = []string{"issue", "date", "print", "address", "male", "female"}

// RescueName recovers a missing or label-contaminated name from the lines
// just above the birth-date anchor. The printed name sits within three
// lines of the "DOB" label on the layouts this engine targets.
func RescueName() Rescue {
	return Rescue{
		Field: model.FieldName,
		Run: func(doc *Document, current string) (string, bool) {
			if current != "" && !strings.Contains(strings.ToLower(current), "issue") {
				return "", false
			}
			lines := strings.Split(doc.Raw, "\n")
			for i, line := range lines {
				if !strings.Contains(line, "DOB") && !strings.Contains(line, "Date of Birth") {
					continue
				}
				for j := 1; j <= 3; j++ {
					if i-j < 0 {
						break
					}
					cand := strings.TrimSpace(lines[i-j])
					if len(cand) <= 5 || containsDigit(cand) {
						continue
					}
					lower := strings.ToLower(cand)
					poisoned := false
					for _, p := range rescueNamePoison {
						if strings.Contains(lower, p) {
							poisoned = true
							break
						}
					}
					if poisoned {
						continue
					}
					return TitleCase(cand), true
				}
				return "", false
			}
			return "", false
		},
	}
}
