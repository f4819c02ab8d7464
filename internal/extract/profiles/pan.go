package profiles

import (
	"github.com/ppiankov/identia/internal/extract"
	"github.com/ppiankov/identia/internal/model"
	"github.com/ppiankov/identia/internal/validate"
)

// NewPAN builds the tax-ID profile. Field order is load-bearing: the
// identifier comes first because the compact-date filter reads it, and the
// name precedes the father's name because two of the father strategies
// anchor on the extracted name.
func NewPAN(excl extract.ExclusionSet) *Profile {
	return &Profile{
		docType:   model.DocumentPAN,
		mandatory: model.FieldPANNumber,
		missing:   "Could not identify PAN number - please check if the document is a valid PAN card",
		languages: "eng",
		fields: []extract.FieldSpec{
			{
				Field:      model.FieldPANNumber,
				Strategies: []extract.Strategy{extract.PANNumber()},
			},
			{
				// Unlike the national-ID layout, the tax card prints the
				// holder's and father's names in adjacent caps lines, so
				// pooled longest-wins would routinely pick the wrong person.
				// The marker-anchored strategy stays authoritative.
				Field: model.FieldName,
				Strategies: []extract.Strategy{
					extract.MarkerNextLine(),
					extract.StructuralName(extract.PANNamePatterns()),
					extract.UppercaseTokenLine(excl),
				},
				Normalize: extract.CleanNameCandidate(excl),
				Validate:  validate.PersonName,
				MaxWords:  3,
				Format:    extract.TitleCase,
			},
			{
				Field: model.FieldFatherName,
				Strategies: []extract.Strategy{
					extract.FatherLabeled(),
					extract.FatherAfterName(model.FieldName),
					extract.FatherDateLine(model.FieldName),
				},
				Validate: func(s string) bool { return !excl.HasAnyToken(s) },
				MaxWords: 3,
				Format:   extract.TitleCase,
			},
			{
				Field: model.FieldDOB,
				Strategies: []extract.Strategy{
					extract.LabeledDate(),
					extract.BareDate(),
					extract.CompactDate(model.FieldPANNumber),
				},
				Validate: validate.Date,
				Format:   validate.FormatDMY,
			},
		},
	}
}
