package extract

import "testing"

func TestRescueAddress(t *testing.T) {
	rescue := RescueAddress()
	doc := NewDocument("header\nAddress:12 Station Rd\nNavrangpura 380009\n\nfooter")

	got, ok := rescue.Run(doc, "")
	if !ok {
		t.Fatal("expected a rescued address")
	}
	if got != "12 Station Rd" {
		t.Errorf("got %q", got)
	}

	// A populated field is left alone.
	if _, ok := rescue.Run(doc, "already set"); ok {
		t.Error("rescue must not overwrite an extracted address")
	}

	if _, ok := rescue.Run(NewDocument("nothing here"), ""); ok {
		t.Error("no label, no rescue")
	}
}

func TestRescueName(t *testing.T) {
	rescue := RescueName()
	doc := NewDocument("Government of India\nRahul Kumar Sharma\nDOB: 15/06/1990")

	got, ok := rescue.Run(doc, "")
	if !ok || got != "Rahul Kumar Sharma" {
		t.Fatalf("got %q, %v", got, ok)
	}

	// Label contamination triggers a re-extraction too.
	got, ok = rescue.Run(doc, "Issue Date")
	if !ok || got != "Rahul Kumar Sharma" {
		t.Errorf("contaminated name: got %q, %v", got, ok)
	}

	// A clean extracted name is kept.
	if _, ok := rescue.Run(doc, "Someone Else"); ok {
		t.Error("rescue must not overwrite a clean name")
	}
}

func TestRescueName_SkipsPoisonedLines(t *testing.T) {
	rescue := RescueName()
	doc := NewDocument("Rahul Kumar Sharma\nIssue Date: 01/01/2020\nPrint helper\nDOB: 15/06/1990")

	got, ok := rescue.Run(doc, "")
	if !ok || got != "Rahul Kumar Sharma" {
		t.Errorf("got %q, %v", got, ok)
	}

	// Only the three lines above the anchor are considered.
	far := NewDocument("Rahul Kumar Sharma\na\nb\nc\nDOB: 15/06/1990")
	if _, ok := rescue.Run(far, ""); ok {
		t.Error("lines beyond the window must not be rescued")
	}
}
