package validation

import (
	"strings"
	"testing"
)

func TestValidateURL(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		valid   bool
		wantMsg string
	}{
		{"valid https", "https://example.com/travel_recommendation_api.json", true, ""},
		{"valid http", "http://example.com", true, ""},
		{"valid with port", "https://example.com:8080", true, ""},
		{"empty string", "", false, "URL is required"},
		{"javascript scheme", "javascript:alert(1)", false, "URL must use http:// or https:// scheme"},
		{"ftp scheme", "ftp://example.com", false, "URL must use http:// or https:// scheme"},
		{"no scheme", "example.com", false, "URL must use http:// or https:// scheme"},
		{"uppercase scheme", "HTTPS://example.com", true, ""},
		{"scheme only", "https://", false, "URL must have a valid host"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			valid, msg := ValidateURL(tt.url)
			if valid != tt.valid {
				t.Errorf("ValidateURL(%q) valid = %v, want %v", tt.url, valid, tt.valid)
			}
			if !valid && msg != tt.wantMsg {
				t.Errorf("ValidateURL(%q) msg = %q, want %q", tt.url, msg, tt.wantMsg)
			}
		})
	}
}

func TestValidateDatasetLocation(t *testing.T) {
	tests := []struct {
		name     string
		location string
		want     bool
	}{
		{"relative path", "./data/travel_recommendation_api.json", true},
		{"absolute path", "/srv/data.json", true},
		{"file url", "file:///srv/data.json", true},
		{"https url", "https://cdn.example.com/data.json", true},
		{"ftp url", "ftp://cdn.example.com/data.json", false},
		{"blank", "   ", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got, _ := ValidateDatasetLocation(tt.location); got != tt.want {
				t.Errorf("ValidateDatasetLocation(%q) = %v, want %v", tt.location, got, tt.want)
			}
		})
	}
}

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		email string
		want  bool
	}{
		{"ana@example.com", true},
		{"first.last+tag@sub.example.org", true},
		{"", false},
		{"not-an-email", false},
		{"Ana <ana@example.com>", false},
		{"ana@", false},
		{strings.Repeat("a", 250) + "@example.com", false},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			if got := ValidateEmail(tt.email); got != tt.want {
				t.Errorf("ValidateEmail(%q) = %v, want %v", tt.email, got, tt.want)
			}
		})
	}
}

func TestValidateContactForm(t *testing.T) {
	tests := []struct {
		name    string
		cName   string
		email   string
		message string
		valid   bool
		wantMsg string
	}{
		{"valid", "Ana", "ana@example.com", "Hello!", true, ""},
		{"missing name", "  ", "ana@example.com", "Hello!", false, "Name is required"},
		{"long name", strings.Repeat("n", MaxNameLength+1), "ana@example.com", "Hello!", false, "Name is too long"},
		{"bad email", "Ana", "ana", "Hello!", false, "A valid email address is required"},
		{"missing message", "Ana", "ana@example.com", "\n", false, "Message is required"},
		{"long message", "Ana", "ana@example.com", strings.Repeat("m", MaxMessageLength+1), false, "Message is too long"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			valid, msg := ValidateContactForm(tt.cName, tt.email, tt.message)
			if valid != tt.valid {
				t.Errorf("ValidateContactForm() valid = %v, want %v", valid, tt.valid)
			}
			if msg != tt.wantMsg {
				t.Errorf("ValidateContactForm() msg = %q, want %q", msg, tt.wantMsg)
			}
		})
	}
}
