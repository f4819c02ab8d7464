// Package profiles binds the cascade engine to the supported document
// families. A profile owns the ordered field specs, the cross-field rescue
// passes and the mandatory-field gate configuration for one card layout;
// the engine mechanics are shared.
package profiles

import (
	"github.com/ppiankov/identia/internal/extract"
	"github.com/ppiankov/identia/internal/model"
)

// Profile is the immutable extraction configuration for one document family.
type Profile struct {
	docType   model.DocumentType
	fields    []extract.FieldSpec
	rescues   []extract.Rescue
	mandatory string
	missing   string
	languages string
}

// Type returns the document family this profile handles.
func (p *Profile) Type() model.DocumentType { return p.docType }

// Fields returns the per-field specs in extraction order. Order matters:
// cross-field strategies read fields extracted earlier in the same run.
func (p *Profile) Fields() []extract.FieldSpec { return p.fields }

// Rescues returns the cross-field fallback passes, applied after the
// per-field cascade.
func (p *Profile) Rescues() []extract.Rescue { return p.rescues }

// Mandatory names the field whose absence fails the whole extraction.
func (p *Profile) Mandatory() string { return p.mandatory }

// MissingMessage is the user-facing reason when the mandatory field is absent.
func (p *Profile) MissingMessage() string { return p.missing }

// Languages is the default OCR language string for this document family.
func (p *Profile) Languages() string { return p.languages }

// FieldNames lists the record fields this profile populates.
func (p *Profile) FieldNames() []string {
	names := make([]string, len(p.fields))
	for i, f := range p.fields {
		names[i] = f.Field
	}
	return names
}

// Registry maps document types to their profiles.
type Registry struct {
	profiles map[model.DocumentType]*Profile
}

// NewRegistry builds a registry with the built-in profiles, all sharing one
// exclusion vocabulary.
func NewRegistry() *Registry {
	excl := extract.DefaultExclusions()
	r := &Registry{profiles: make(map[model.DocumentType]*Profile)}
	r.Register(NewAadhaar(excl))
	r.Register(NewPAN(excl))
	return r
}

// Register adds a profile; later registrations replace earlier ones for the
// same document type.
func (r *Registry) Register(p *Profile) {
	r.profiles[p.Type()] = p
}

// Lookup finds the profile for a document type.
func (r *Registry) Lookup(t model.DocumentType) (*Profile, bool) {
	p, ok := r.profiles[t]
	return p, ok
}
