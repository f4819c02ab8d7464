package extract

import "testing"

func runStrategy(t *testing.T, s Strategy, text string) []string {
	t.Helper()
	doc := NewDocument(text)
	var vals []string
	for _, c := range s.Run(doc, Partial{}) {
		vals = append(vals, c.Value)
	}
	return vals
}

func TestAadhaarNumber(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{"grouped", "UID: 1234 5678 9012", []string{"1234 5678 9012"}},
		{"fused", "123456789012", []string{"123456789012"}},
		{"phone number ignored", "Mobile: 9876543210", nil},
		{"none", "no digits here", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := runStrategy(t, AadhaarNumber(), tt.text)
			if len(got) != len(tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("got %v, want %v", got, tt.want)
				}
			}
		})
	}
}

func TestFormatAadhaarNumber(t *testing.T) {
	if got := FormatAadhaarNumber("123456789012"); got != "1234 5678 9012" {
		t.Errorf("fused: got %q", got)
	}
	if got := FormatAadhaarNumber("1234  5678\t9012"); got != "1234 5678 9012" {
		t.Errorf("messy whitespace: got %q", got)
	}
	// Not 12 digits: formatting stays total and returns the input.
	if got := FormatAadhaarNumber("1234"); got != "1234" {
		t.Errorf("short input: got %q", got)
	}
}

func TestValidAadhaarNumber(t *testing.T) {
	if !ValidAadhaarNumber("1234 5678 9012") {
		t.Error("12 digits with spaces must be valid")
	}
	if ValidAadhaarNumber("1234 5678 901") {
		t.Error("11 digits must be invalid")
	}
}

func TestPANNumber(t *testing.T) {
	got := runStrategy(t, PANNumber(), "Permanent Account\nABCDE1234F\nmore text")
	if len(got) != 1 || got[0] != "ABCDE1234F" {
		t.Fatalf("got %v", got)
	}

	if got := runStrategy(t, PANNumber(), "ABCD1234F"); got != nil {
		t.Errorf("4-letter prefix must not match: %v", got)
	}
}
