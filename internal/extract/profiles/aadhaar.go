package profiles

import (
	"strings"

	"github.com/ppiankov/identia/internal/extract"
	"github.com/ppiankov/identia/internal/model"
	"github.com/ppiankov/identia/internal/validate"
)

// NewAadhaar builds the national-ID profile: the 12-digit identifier is
// mandatory, name selection is pooled across strategies, and two rescue
// passes recover addresses and names the primary cascade misses on the
// letter-style layout.
func NewAadhaar(excl extract.ExclusionSet) *Profile {
	return &Profile{
		docType:   model.DocumentAadhaar,
		mandatory: model.FieldAadhaarNumber,
		missing:   "Could not identify Aadhaar number - please check if the document is a valid Aadhaar card",
		languages: "eng+guj",
		fields: []extract.FieldSpec{
			{
				Field:      model.FieldAadhaarNumber,
				Strategies: []extract.Strategy{extract.AadhaarNumber()},
				Validate:   extract.ValidAadhaarNumber,
				Format:     extract.FormatAadhaarNumber,
			},
			{
				Field:      model.FieldDOB,
				Strategies: []extract.Strategy{extract.LabeledDate(), extract.BareDate()},
				Validate:   validate.Date,
				Format:     validate.FormatDMY,
			},
			{
				Field:      model.FieldGender,
				Strategies: extract.GenderStrategies(),
				Format:     strings.ToUpper,
			},
			{
				Field:  model.FieldName,
				Pooled: true,
				Strategies: []extract.Strategy{
					extract.UppercaseTokenLine(excl),
					extract.StructuralName(extract.AadhaarNamePatterns()),
				},
				Normalize: extract.CleanNameCandidate(excl),
				Validate:  validate.PersonName,
				MaxWords:  3,
				Format:    extract.TitleCase,
			},
			{
				Field:      model.FieldAddress,
				Strategies: extract.AddressStrategies(),
				Normalize: func(s string) (string, bool) {
					return extract.CollapseSpaces(s), true
				},
				Validate: validate.Address,
			},
		},
		rescues: []extract.Rescue{
			extract.RescueAddress(),
			extract.RescueName(),
		},
	}
}
