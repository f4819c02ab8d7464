package extract

import (
	"strings"

	"github.com/ppiankov/identia/internal/model"
)

// Partial holds the fields a profile run has already extracted, keyed by
// field name. A handful of strategies are cross-field by contract (the
// compact-date filter needs the ID number, the father's-name fallback needs
// the cardholder's name); they read earlier results from here and never
// write anything.
type Partial map[string]string

// Strategy is one extraction attempt for a field: a named pure function of
// the normalized document (plus earlier fields) returning zero or more
// candidates. Strategies never fail; finding nothing means an empty slice.
type Strategy struct {
	Name string
	Run  func(doc *Document, prior Partial) []model.Candidate
}

// FieldSpec is the static per-field configuration of the cascade: the
// ordered strategy list plus the normalization, validation and formatting
// applied around selection. Specs are built once per profile and immutable
// afterwards.
type FieldSpec struct {
	Field      string
	Strategies []Strategy

	// Pooled fields run every strategy and select among all surviving
	// candidates; otherwise the first valid candidate in strategy order wins.
	Pooled bool

	// Normalize cleans a raw candidate value before validation. Returning
	// false discards the candidate.
	Normalize func(string) (string, bool)

	// Validate is the structural acceptance predicate. Nil accepts anything
	// the strategies produced.
	Validate func(string) bool

	// MaxWords truncates the winning value to the first n words when > 0.
	MaxWords int

	// Format produces the final stored representation of the winner.
	Format func(string) string
}

// Collect runs every strategy of the spec against the document and returns
// the candidates that survive normalization and validation, in strategy
// order. Selection between them is the scorer's job.
func Collect(doc *Document, prior Partial, spec FieldSpec) []model.Candidate {
	var out []model.Candidate
	for rank, st := range spec.Strategies {
		for _, c := range st.Run(doc, prior) {
			value := c.Value
			if spec.Normalize != nil {
				v, ok := spec.Normalize(value)
				if !ok {
					continue
				}
				value = v
			}
			if spec.Validate != nil && !spec.Validate(value) {
				continue
			}
			c.Field = spec.Field
			c.Value = value
			c.Rank = rank
			out = append(out, c)
		}
	}
	return out
}

// TruncateWords keeps at most n leading words of s.
func TruncateWords(s string, n int) string {
	words := strings.Fields(s)
	if n > 0 && len(words) > n {
		words = words[:n]
	}
	return strings.Join(words, " ")
}
