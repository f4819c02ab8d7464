package model

import "fmt"

// DocumentType identifies the document family an extraction runs against.
type DocumentType string

const (
	// DocumentAadhaar is the 12-digit national identity card.
	DocumentAadhaar DocumentType = "aadhaar"
	// DocumentPAN is the 10-character tax identity card.
	DocumentPAN DocumentType = "pan"
)

// ParseDocumentType maps a user-supplied string to a DocumentType.
func ParseDocumentType(s string) (DocumentType, error) {
	switch DocumentType(s) {
	case DocumentAadhaar, DocumentPAN:
		return DocumentType(s), nil
	default:
		return "", fmt.Errorf("unknown document type %q (expected %q or %q)", s, DocumentAadhaar, DocumentPAN)
	}
}

// Field names shared across document profiles. Profiles declare which of
// these they populate; absent fields are simply not part of the record.
const (
	FieldName          = "name"
	FieldFatherName    = "father_name"
	FieldDOB           = "dob"
	FieldGender        = "gender"
	FieldAadhaarNumber = "aadhaar_number"
	FieldPANNumber     = "pan_number"
	FieldAddress       = "address"
)
