package utils

import (
	"math"
	"regexp"
	"strings"
)

// RE2's \s is ASCII only; the class also excludes vertical tab, Unicode
// separators and the BOM.
var emailRegex = regexp.MustCompile(`^[^\s\v\p{Z}\x{FEFF}@]+@[^\s\v\p{Z}\x{FEFF}@]+\.[^\s\v\p{Z}\x{FEFF}@]+$`)

var htmlReplacer = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#x27;",
)

// ValidateEmail is a cheap typo/spam filter, not an RFC 5322 parser.
func ValidateEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// SanitizeInput escapes markup-significant characters before the value is
// embedded in an HTML email body.
func SanitizeInput(input string) string {
	return htmlReplacer.Replace(input)
}

// IsSpam reports whether the hidden honeypot field was filled in. The value
// is whatever the form decoded to: null, false, "" and 0 count as empty, any
// other value (including non-string ones) is spam.
func IsSpam(honeypot any) bool {
	switch v := honeypot.(type) {
	case nil:
		return false
	case bool:
		return v
	case string:
		return v != ""
	case float64:
		return v != 0 && !math.IsNaN(v)
	case int:
		return v != 0
	default:
		return true
	}
}

// HasEmpty reports whether any of the required values is empty.
func HasEmpty(values ...string) bool {
	for _, v := range values {
		if v == "" {
			return true
		}
	}
	return false
}
