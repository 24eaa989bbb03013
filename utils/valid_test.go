package utils

import "testing"

func TestSanitizeEmail(t *testing.T) {
	cases := []struct {
		in   string
		want string
		ok   bool
	}{
		{"  User@Example.COM ", "user@example.com", true},
		{"plain@domain.io", "plain@domain.io", true},
		{"not-an-email", "", false},
		{"missing@tld", "", false},
		{"", "", false},
	}

	for _, c := range cases {
		got, err := SanitizeEmail(c.in)
		if (err == nil) != c.ok || got != c.want {
			t.Errorf("SanitizeEmail(%q) = %q, %v", c.in, got, err)
		}
	}
}

func TestSanitizePhone(t *testing.T) {
	cases := []struct {
		in   string
		want string
		ok   bool
	}{
		{"", "", true}, // optional
		{"  ", "", true},
		{"+91 98765 43210", "+919876543210", true},
		{"(555) 123-4567", "+5551234567", true},
		{"12345", "", false}, // too short
	}

	for _, c := range cases {
		got, err := SanitizePhone(c.in)
		if (err == nil) != c.ok || got != c.want {
			t.Errorf("SanitizePhone(%q) = %q, %v", c.in, got, err)
		}
	}
}

func TestSanitizeInput(t *testing.T) {
	if got := SanitizeInput("  hello \x00world  "); got != "hello world" {
		t.Errorf("control chars not stripped: %q", got)
	}
	if got := SanitizeInput("<b>bold</b>"); got != "&lt;b&gt;bold&lt;/b&gt;" {
		t.Errorf("html not escaped: %q", got)
	}
}

func TestValidateFile(t *testing.T) {
	if err := ValidateFile("photo.jpg", 1024); err != nil {
		t.Errorf("valid file rejected: %v", err)
	}
	if err := ValidateFile("photo.jpg", 6*1024*1024); err == nil {
		t.Error("oversized file accepted")
	}
	if err := ValidateFile("script.exe", 1024); err == nil {
		t.Error("disallowed extension accepted")
	}
}
