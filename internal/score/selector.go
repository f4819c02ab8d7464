// Package score selects the winning candidate per field. Single-winner
// fields take the first structurally valid candidate in strategy order;
// pooled free-text fields (name) score by cleaned character length because
// the longest surviving candidate is most likely the complete value.
package score

import "github.com/ppiankov/identia/internal/model"

// First returns the earliest candidate in strategy order. Candidates arrive
// already ordered by rank, so position decides.
func First(cands []model.Candidate) (model.Candidate, bool) {
	if len(cands) == 0 {
		return model.Candidate{}, false
	}
	return cands[0], true
}

// Longest returns the candidate with the greatest character length.
// Ties break toward the earlier strategy, then toward the earlier candidate.
func Longest(cands []model.Candidate) (model.Candidate, bool) {
	if len(cands) == 0 {
		return model.Candidate{}, false
	}
	best := cands[0]
	for _, c := range cands[1:] {
		if len(c.Value) > len(best.Value) {
			best = c
			continue
		}
		if len(c.Value) == len(best.Value) && c.Rank < best.Rank {
			best = c
		}
	}
	return best, true
}
