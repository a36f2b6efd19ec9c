package validator

import "testing"

func TestNormalizePhone(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"9876543210", "9876543210"},
		{"+91 98765-43210", "+919876543210"},
		{" 98765 43210 ", "9876543210"},
		{"(987) 654-3210", "9876543210"},
		{"+91+9876543210", "+919876543210"},
	}
	for _, tc := range cases {
		if got := NormalizePhone(tc.in); got != tc.want {
			t.Errorf("NormalizePhone(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestValidPhone(t *testing.T) {
	valid := []string{"9876543210", "+919876543210", "919876543210"}
	for _, s := range valid {
		if !ValidPhone(s) {
			t.Errorf("expected %q to be a valid phone", s)
		}
	}

	invalid := []string{"", "12345", "98765432101234567", "98765abc10"}
	for _, s := range invalid {
		if ValidPhone(s) {
			t.Errorf("expected %q to be rejected", s)
		}
	}
}

// The 15-character bound counts the leading "+": the whole string must
// fit the phone column, so "+" plus 15 digits is one too long.
func TestValidPhoneLengthBoundary(t *testing.T) {
	accepted := []string{
		"999999999999999",  // 15 digits
		"+99999999999999",  // "+" plus 14 digits, 15 chars
		"+999999999",       // "+" plus 9 digits, 10 chars
	}
	for _, s := range accepted {
		if !ValidPhone(s) {
			t.Errorf("expected %q (%d chars) to be accepted", s, len(s))
		}
	}

	rejected := []string{
		"+999999999999999", // "+" plus 15 digits, 16 chars
		"9999999999999999", // 16 digits
		"999999999",        // 9 digits
	}
	for _, s := range rejected {
		if ValidPhone(s) {
			t.Errorf("expected %q (%d chars) to be rejected", s, len(s))
		}
	}
}

func TestNormalizeAndValidPincode(t *testing.T) {
	if got := NormalizePincode("600 001"); got != "600001" {
		t.Errorf("NormalizePincode = %q, want 600001", got)
	}
	if !ValidPincode("600001") {
		t.Error("expected 600001 to be valid")
	}
	for _, s := range []string{"60001", "6000011", "60000a", ""} {
		if ValidPincode(s) {
			t.Errorf("expected %q to be rejected", s)
		}
	}
}

func TestValidGSTIN(t *testing.T) {
	if !ValidGSTIN("33AAACT2727Q1ZW") {
		t.Error("expected well formed GSTIN to pass")
	}

	invalid := []string{
		"33AAACT2727Q1XW", // 14th char must be Z
		"33aaact2727q1zw", // lowercase
		"33AAACT2727Q1Z",  // too short
		"33AAACT2727Q0ZW", // entity code cannot be 0
	}
	for _, s := range invalid {
		if ValidGSTIN(s) {
			t.Errorf("expected %q to be rejected", s)
		}
	}
}
