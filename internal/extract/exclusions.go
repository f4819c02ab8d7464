package extract

import "strings"

// ExclusionSet is a fixed vocabulary of lowercase tokens (field labels,
// boilerplate, document chrome) that disqualify name and address candidates.
// It is built once and never mutated afterwards; profiles receive it at
// construction so independent engines can run side by side.
type ExclusionSet map[string]struct{}

// NewExclusionSet lowercases the given words into a set.
func NewExclusionSet(words ...string) ExclusionSet {
	set := make(ExclusionSet, len(words))
	for _, w := range words {
		set[strings.ToLower(w)] = struct{}{}
	}
	return set
}

// DefaultExclusions is the vocabulary tuned for the two supported card
// layouts: label words, issuer boilerplate and frequent OCR misreads.
func DefaultExclusions() ExclusionSet {
	return NewExclusionSet(
		"male", "female", "address", "date", "issue", "print", "year", "birth",
		"dob", "art", "uid", "uidai", "aadhaar", "aadhar", "number", "mobile",
		"phone", "wot", "verify", "front", "back", "govt", "government",
	)
}

// Has reports whether the lowercased word is excluded.
func (e ExclusionSet) Has(word string) bool {
	_, ok := e[strings.ToLower(word)]
	return ok
}

// HasAnyToken reports whether any whitespace-separated token of s is in the
// set. Candidates carrying even one excluded token are rejected outright.
func (e ExclusionSet) HasAnyToken(s string) bool {
	for _, tok := range strings.Fields(s) {
		if e.Has(tok) {
			return true
		}
	}
	return false
}
