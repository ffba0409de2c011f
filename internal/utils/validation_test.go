package utils

import (
	"strings"
	"testing"
)

func TestValidateEmail(t *testing.T) {
	cases := []struct {
		name  string
		email string
		want  bool
	}{
		{name: "plain", email: "user@example.com", want: true},
		{name: "subdomain", email: "user@mail.example.co", want: true},
		{name: "plus_tag", email: "user+tag@example.com", want: true},
		{name: "leading_space_trimmed", email: "  user@example.com", want: true},
		{name: "missing_at", email: "userexample.com", want: false},
		{name: "missing_tld", email: "user@example", want: false},
		{name: "empty", email: "", want: false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ValidateEmail(tc.email); got != tc.want {
				t.Fatalf("ValidateEmail(%q)=%v, want %v", tc.email, got, tc.want)
			}
		})
	}
}

func TestValidatePassword(t *testing.T) {
	cases := []struct {
		name     string
		password string
		want     bool
	}{
		{name: "valid", password: "hunter2hunter2", want: true},
		{name: "valid_mixed", password: "orbit2024pass", want: true},
		{name: "too_short", password: "ab1", want: false},
		{name: "digits_only", password: "12345678", want: false},
		{name: "letters_only", password: "abcdefgh", want: false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, reason := ValidatePassword(tc.password)
			if got != tc.want {
				t.Fatalf("ValidatePassword(%q)=%v (%s), want %v", tc.password, got, reason, tc.want)
			}
			if !got && reason == "" {
				t.Fatalf("rejected password must carry a reason")
			}
		})
	}
}

func TestGeneratePolicyNumber(t *testing.T) {
	n := GeneratePolicyNumber()
	parts := strings.Split(n, "-")
	if len(parts) != 3 || parts[0] != "POL" {
		t.Fatalf("unexpected policy number format: %s", n)
	}
	if len(parts[1]) != 8 || len(parts[2]) != 8 {
		t.Fatalf("unexpected segment lengths in %s", n)
	}
	if n == GeneratePolicyNumber() {
		t.Fatalf("policy numbers must be unique")
	}
}
