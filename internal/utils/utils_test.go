package utils

import "testing"

func TestKeep(t *testing.T) {
	testCases := []struct {
		input       string
		wantDigits  string
		wantLetters string
	}{
		{"(2)255.63", "225563", ""},
		{"1-800-CALL-ME", "1800", "CALLME"},
		{"don't", "", "dont"},
		{"café 42", "42", "caf"},
		{"", "", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			if got := KeepDigits(tc.input); got != tc.wantDigits {
				t.Errorf("KeepDigits(%q) = %q, want %q", tc.input, got, tc.wantDigits)
			}
			if got := KeepLetters(tc.input); got != tc.wantLetters {
				t.Errorf("KeepLetters(%q) = %q, want %q", tc.input, got, tc.wantLetters)
			}
		})
	}
}

func TestDistinctFilter(t *testing.T) {
	f := NewDistinctFilter()
	for _, s := range []string{"me", "Me", "me", "", ""} {
		f.ShouldInclude(s)
	}
	if f.Len() != 3 {
		t.Errorf("Len() = %d, want 3", f.Len())
	}
	if f.ShouldInclude("Me") {
		t.Error("ShouldInclude(Me) = true for a repeat")
	}
}

func TestFormatWithCommas(t *testing.T) {
	testCases := map[int]string{
		0:        "0",
		999:      "999",
		1000:     "1,000",
		1234567:  "1,234,567",
		-1234567: "-1,234,567",
	}
	for n, want := range testCases {
		if got := FormatWithCommas(n); got != want {
			t.Errorf("FormatWithCommas(%d) = %q, want %q", n, got, want)
		}
	}
}
