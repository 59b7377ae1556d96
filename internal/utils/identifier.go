package utils

import (
	"regexp"
	"strings"
)

// phonePattern matches identifiers that look like a phone number: 10-15
// characters of digits with an optional leading plus.
var phonePattern = regexp.MustCompile(`^[0-9+]{10,15}$`)

// IsPhoneNumber reports whether the login identifier looks like a phone
// number rather than an email address.
func IsPhoneNumber(identifier string) bool {
	return phonePattern.MatchString(identifier)
}

// NormalizeEmail lowercases and trims an email address so uniqueness
// checks are case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// NormalizeIdentifier normalizes a login identifier: emails are
// case-normalized, phone numbers only trimmed.
func NormalizeIdentifier(identifier string) string {
	identifier = strings.TrimSpace(identifier)
	if IsPhoneNumber(identifier) {
		return identifier
	}
	return NormalizeEmail(identifier)
}
