package validation

import (
	"net/mail"
	"net/url"
	"strings"
	"unicode/utf8"
)

// Contact form limits.
const (
	MaxNameLength    = 100
	MaxEmailLength   = 254
	MaxMessageLength = 5000
)

// ValidateURL checks if a URL is valid and uses an allowed scheme (http/https only).
func ValidateURL(urlStr string) (bool, string) {
	if urlStr == "" {
		return false, "URL is required"
	}

	u, err := url.Parse(urlStr)
	if err != nil {
		return false, "Invalid URL format"
	}

	scheme := strings.ToLower(u.Scheme)
	if scheme != "http" && scheme != "https" {
		return false, "URL must use http:// or https:// scheme"
	}

	if u.Host == "" {
		return false, "URL must have a valid host"
	}

	return true, ""
}

// ValidateDatasetLocation checks a dataset location: either an http(s) URL
// or a local file path.
func ValidateDatasetLocation(location string) (bool, string) {
	if strings.TrimSpace(location) == "" {
		return false, "dataset location is required"
	}
	if strings.Contains(location, "://") && !strings.HasPrefix(strings.ToLower(location), "file://") {
		return ValidateURL(location)
	}
	return true, ""
}

// ValidateEmail checks that an address is a single bare email address.
func ValidateEmail(email string) bool {
	if email == "" || len(email) > MaxEmailLength {
		return false
	}
	addr, err := mail.ParseAddress(email)
	if err != nil {
		return false
	}
	return addr.Address == email
}

// ValidateContactForm checks the contact form fields, returning a
// user-facing message for the first problem found.
func ValidateContactForm(name, email, message string) (bool, string) {
	name = strings.TrimSpace(name)
	message = strings.TrimSpace(message)

	if name == "" {
		return false, "Name is required"
	}
	if utf8.RuneCountInString(name) > MaxNameLength {
		return false, "Name is too long"
	}
	if !ValidateEmail(strings.TrimSpace(email)) {
		return false, "A valid email address is required"
	}
	if message == "" {
		return false, "Message is required"
	}
	if utf8.RuneCountInString(message) > MaxMessageLength {
		return false, "Message is too long"
	}
	return true, ""
}
