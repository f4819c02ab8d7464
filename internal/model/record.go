package model

// Record is the structured result of one extraction call.
//
// Every field the active profile defines is present in Fields; a nil value
// means no strategy produced a candidate that survived validation. Non-nil
// values have already passed their field's validation predicate. RawText is
// the untouched OCR output, returned for diagnostics.
type Record struct {
	Type    DocumentType       `json:"-"`
	Fields  map[string]*string `json:"data"`
	RawText string             `json:"raw_text"`
}

// NewRecord initializes a record with every profile field present and nil.
func NewRecord(docType DocumentType, fields []string) *Record {
	m := make(map[string]*string, len(fields))
	for _, f := range fields {
		m[f] = nil
	}
	return &Record{Type: docType, Fields: m}
}

// Set stores a validated value for a field.
func (r *Record) Set(field, value string) {
	v := value
	r.Fields[field] = &v
}

// Get returns the extracted value for a field, or "" when still unset.
func (r *Record) Get(field string) string {
	if v, ok := r.Fields[field]; ok && v != nil {
		return *v
	}
	return ""
}

// Has reports whether the field holds a non-nil value.
func (r *Record) Has(field string) bool {
	v, ok := r.Fields[field]
	return ok && v != nil
}
