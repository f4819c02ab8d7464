package pipeline

import (
	"reflect"
	"sync"
	"testing"

	"github.com/ppiankov/identia/internal/extract/profiles"
	"github.com/ppiankov/identia/internal/model"
)

const aadhaarText = `Government of India
RAHUL KUMAR SHARMA
DOB: 15/06/1990
Male
1234 5678 9012
Address: 123 MG Road, Koramangala, Bangalore, Karnataka 560034
`

// panText prints the holder's and father's names on adjacent caps lines;
// the father's longer name must not displace the holder's.
const panText = `INCOME TAX DEPARTMENT
Permanent Account
ABCDE1234F
Name
RAHUL SHARMA
Father's Name
RAMESH KUMAR SHARMA
Date of Birth
15/06/1990
`

func newExtractor() *Extractor {
	return New(profiles.NewRegistry())
}

func TestExtract_Aadhaar(t *testing.T) {
	rec, err := newExtractor().Extract(aadhaarText, model.DocumentAadhaar)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := map[string]string{
		model.FieldAadhaarNumber: "1234 5678 9012",
		model.FieldDOB:           "15/06/1990",
		model.FieldGender:        "MALE",
		model.FieldName:          "Rahul Kumar Sharma",
		model.FieldAddress:       "123 MG Road, Koramangala, Bangalore, Karnataka 560034",
	}
	for field, value := range want {
		if got := rec.Get(field); got != value {
			t.Errorf("%s = %q, want %q", field, got, value)
		}
	}
	if rec.RawText != aadhaarText {
		t.Error("raw text must be preserved on the record")
	}
}

func TestExtract_PAN(t *testing.T) {
	rec, err := newExtractor().Extract(panText, model.DocumentPAN)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := rec.Get(model.FieldPANNumber); got != "ABCDE1234F" {
		t.Errorf("pan_number = %q", got)
	}
	if got := rec.Get(model.FieldName); got != "Rahul Sharma" {
		t.Errorf("name = %q (the father's longer name must not win)", got)
	}
	if got := rec.Get(model.FieldFatherName); got != "Ramesh Kumar Sharma" {
		t.Errorf("father_name = %q", got)
	}
	if got := rec.Get(model.FieldDOB); got != "15/06/1990" {
		t.Errorf("dob = %q", got)
	}
}

func TestExtract_PANCompactDate(t *testing.T) {
	text := "INCOME TAX DEPARTMENT\nABCDE1234F\nName\nRAHUL SHARMA\n15061990\n"
	rec, err := newExtractor().Extract(text, model.DocumentPAN)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := rec.Get(model.FieldDOB); got != "15/06/1990" {
		t.Errorf("dob = %q", got)
	}
}

func TestExtract_MandatoryGate(t *testing.T) {
	_, err := newExtractor().Extract("some unrelated scanned letter", model.DocumentAadhaar)
	extErr, ok := AsExtractionError(err)
	if !ok {
		t.Fatalf("expected ExtractionError, got %v", err)
	}
	if extErr.Field != model.FieldAadhaarNumber {
		t.Errorf("gate field = %q", extErr.Field)
	}
	if extErr.Message == "" {
		t.Error("gate must carry a user-facing message")
	}
}

func TestExtract_PartialResult(t *testing.T) {
	// Only the identifier is present: every other field stays null rather
	// than failing the extraction.
	rec, err := newExtractor().Extract("ref 1234 5678 9012 end", model.DocumentAadhaar)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := rec.Get(model.FieldAadhaarNumber); got != "1234 5678 9012" {
		t.Errorf("aadhaar_number = %q", got)
	}
	for _, field := range []string{model.FieldName, model.FieldDOB, model.FieldGender, model.FieldAddress} {
		v, present := rec.Fields[field]
		if !present {
			t.Errorf("field %s must exist in the record", field)
		}
		if v != nil {
			t.Errorf("field %s = %q, want null", field, *v)
		}
	}
}

func TestExtract_EmptyInput(t *testing.T) {
	if _, err := newExtractor().Extract("", model.DocumentAadhaar); err == nil {
		t.Error("empty input must fail the mandatory gate")
	}
}

func TestExtract_UnknownType(t *testing.T) {
	_, err := newExtractor().Extract(aadhaarText, model.DocumentType("passport"))
	if err == nil {
		t.Fatal("expected error for unknown document type")
	}
	if _, ok := AsExtractionError(err); ok {
		t.Error("unknown type is a caller fault, not an extraction outcome")
	}
}

func TestExtract_Idempotent(t *testing.T) {
	e := newExtractor()
	first, err := e.Extract(aadhaarText, model.DocumentAadhaar)
	if err != nil {
		t.Fatal(err)
	}
	second, err := e.Extract(aadhaarText, model.DocumentAadhaar)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(first.Fields, second.Fields) {
		t.Errorf("repeated extraction differs: %v vs %v", first.Fields, second.Fields)
	}
}

func TestExtract_Concurrent(t *testing.T) {
	e := newExtractor()
	base, err := e.Extract(panText, model.DocumentPAN)
	if err != nil {
		t.Fatal(err)
	}

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			rec, err := e.Extract(panText, model.DocumentPAN)
			if err != nil {
				t.Errorf("concurrent extract: %v", err)
				return
			}
			if !reflect.DeepEqual(rec.Fields, base.Fields) {
				t.Error("concurrent extraction produced a different record")
			}
		}()
	}
	wg.Wait()
}

func TestExtract_NameRescue(t *testing.T) {
	// OCR lowercased the name, so no cascade strategy accepts it; the
	// rescue pass reads the line above the birth-date anchor instead.
	text := "Government of India\nrahul kumar sharma\nDOB: 15/06/1990\n1234 5678 9012\n"
	rec, err := newExtractor().Extract(text, model.DocumentAadhaar)
	if err != nil {
		t.Fatal(err)
	}
	if got := rec.Get(model.FieldName); got != "Rahul Kumar Sharma" {
		t.Errorf("rescued name = %q", got)
	}
}

func TestLanguages(t *testing.T) {
	e := newExtractor()
	if got := e.Languages(model.DocumentAadhaar); got != "eng+guj" {
		t.Errorf("aadhaar languages = %q", got)
	}
	if got := e.Languages(model.DocumentPAN); got != "eng" {
		t.Errorf("pan languages = %q", got)
	}
	if got := e.Languages(model.DocumentType("passport")); got != "eng" {
		t.Errorf("unknown type fallback = %q", got)
	}
}
