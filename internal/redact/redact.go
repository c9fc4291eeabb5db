// Package redact provides utilities for redacting sensitive information from strings
// before they are logged. Student email addresses are the main concern: they are
// masked so logs can still correlate requests without recording full addresses.
package redact

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Constants for redaction placeholders
const (
	RedactionPlaceholder          = "[REDACTED]"
	RedactedPathPlaceholder       = "[REDACTED_PATH]"
	RedactedCredentialPlaceholder = "[REDACTED_CREDENTIAL]"
	RedactedEmailPlaceholder      = "[REDACTED_EMAIL]"
)

// Precompiled regex patterns
var (
	// Credentials and tokens
	passwordRegex = regexp.MustCompile(`(?i)(password|passwd|pwd)([=:\s]?['"]?)[^'"&\s]{3,}`)
	apiKeyRegex   = regexp.MustCompile(
		`(?i)(api[_-]?key|token|secret)(['"\s:=]+)[A-Za-z0-9_\-.~+/]{8,}`,
	)

	// File paths
	unixPathRegex = regexp.MustCompile(`(/[\w.-]+){2,}`)

	// Stack trace fragments
	stackTraceRegex = regexp.MustCompile(`(?:goroutine \d+|panic:)[\s\S]*?(\n\t.*)+`)

	// Email addresses
	emailRegex = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)

	// Order matters: emails go before paths so "a@b.edu/x" is not half-matched.
	patterns = []struct {
		re          *regexp.Regexp
		placeholder string
	}{
		{passwordRegex, RedactedCredentialPlaceholder},
		{apiKeyRegex, RedactedCredentialPlaceholder},
		{stackTraceRegex, "[STACK_TRACE_REDACTED]"},
		{emailRegex, RedactedEmailPlaceholder},
		{unixPathRegex, RedactedPathPlaceholder},
	}
)

// String redacts sensitive information from the input string
func String(input string) string {
	if input == "" {
		return input
	}

	result := input
	for _, p := range patterns {
		result = p.re.ReplaceAllString(result, p.placeholder)
	}

	return result
}

// Error redacts sensitive information from an error's Error() output
func Error(err error) string {
	if err == nil {
		return ""
	}

	return String(err.Error())
}

// Email masks the local part of an address, keeping its first character and
// the domain: "alex@mergington.edu" becomes "a***@mergington.edu".
// Values that do not look like an address are fully redacted.
func Email(email string) string {
	at := strings.LastIndex(email, "@")
	if at <= 0 || at == len(email)-1 {
		if email == "" {
			return ""
		}
		return RedactionPlaceholder
	}

	// Keep a whole rune so the masked value stays valid UTF-8.
	first, _ := utf8.DecodeRuneInString(email)
	return string(first) + "***" + email[at:]
}
