// Package redact masks personal data in strings bound for logs. Readings
// are built from a birth date and a full name, both of which end up
// embedded in error text (a malformed date is echoed back, an unsupported
// character is quoted in context). The core never persists or transmits
// personal data, and that includes its own log stream.
package redact

import "regexp"

// Redaction placeholders.
const (
	RedactedNamePlaceholder = "[REDACTED_NAME]"
	RedactedDatePlaceholder = "[REDACTED_DATE]"
	RedactedCharPlaceholder = "[REDACTED_CHAR]"
)

// Precompiled patterns for the personal data our own errors embed.
var (
	// Double-quoted fragments: names wrapped with %q in error text.
	quotedNameRegex = regexp.MustCompile(`"[^"\n]*"`)

	// Single-quoted runes: offending characters wrapped with %q.
	quotedRuneRegex = regexp.MustCompile(`'(?:[^'\\\n]|\\.)+'`)

	// Calendar dates in the formats our errors use.
	isoDateRegex   = regexp.MustCompile(`\b\d{4}-\d{2}-\d{2}\b`)
	slashDateRegex = regexp.MustCompile(`\b\d{1,2}/\d{1,2}/\d{4}\b`)
)

// String masks personal data in the input string.
func String(input string) string {
	if input == "" {
		return input
	}

	result := quotedNameRegex.ReplaceAllString(input, RedactedNamePlaceholder)
	result = quotedRuneRegex.ReplaceAllString(result, RedactedCharPlaceholder)
	result = isoDateRegex.ReplaceAllString(result, RedactedDatePlaceholder)
	result = slashDateRegex.ReplaceAllString(result, RedactedDatePlaceholder)

	return result
}

// Error masks personal data in an error's Error() output.
func Error(err error) string {
	if err == nil {
		return ""
	}
	return String(err.Error())
}
