// Package pipeline assembles extraction results. It runs the pattern
// cascade once per field of the active document profile, applies the
// profile's cross-field rescue passes, and enforces the mandatory-field
// gate. Extraction is a pure, synchronous computation over the input text:
// no I/O, no shared mutable state, safe to run from any number of
// goroutines against the same Extractor.
package pipeline

import (
	"fmt"

	"github.com/ppiankov/identia/internal/extract"
	"github.com/ppiankov/identia/internal/extract/profiles"
	"github.com/ppiankov/identia/internal/model"
	"github.com/ppiankov/identia/internal/score"
)

// Extractor turns raw OCR text into structured records.
type Extractor struct {
	registry *profiles.Registry
}

// New creates an extractor over the given profile registry.
func New(registry *profiles.Registry) *Extractor {
	return &Extractor{registry: registry}
}

// Extract runs the full cascade for one document. It returns the assembled
// record, or an *ExtractionError when the profile's mandatory field could
// not be validated. Garbage or empty input never faults: the worst case is
// a record full of nulls, which the gate then rejects.
func (e *Extractor) Extract(rawText string, docType model.DocumentType) (*model.Record, error) {
	profile, ok := e.registry.Lookup(docType)
	if !ok {
		return nil, fmt.Errorf("no profile registered for document type %q", docType)
	}

	doc := extract.NewDocument(rawText)
	rec := model.NewRecord(docType, profile.FieldNames())
	rec.RawText = rawText
	prior := extract.Partial{}

	for _, spec := range profile.Fields() {
		cands := extract.Collect(doc, prior, spec)

		var winner model.Candidate
		var found bool
		if spec.Pooled {
			winner, found = score.Longest(cands)
		} else {
			winner, found = score.First(cands)
		}
		if !found {
			continue
		}

		value := winner.Value
		if spec.MaxWords > 0 {
			value = extract.TruncateWords(value, spec.MaxWords)
		}
		if spec.Format != nil {
			value = spec.Format(value)
		}
		rec.Set(spec.Field, value)
		prior[spec.Field] = value
	}

	for _, rescue := range profile.Rescues() {
		if v, ok := rescue.Run(doc, rec.Get(rescue.Field)); ok {
			rec.Set(rescue.Field, v)
		}
	}

	if !rec.Has(profile.Mandatory()) {
		return nil, &ExtractionError{
			Field:   profile.Mandatory(),
			Message: profile.MissingMessage(),
		}
	}
	return rec, nil
}

// Languages returns the default OCR language string for a document type,
// falling back to English for unknown types.
func (e *Extractor) Languages(docType model.DocumentType) string {
	if p, ok := e.registry.Lookup(docType); ok {
		return p.Languages()
	}
	return "eng"
}
