// Package redact strips sensitive or user-supplied content from strings
// before they are logged. Error messages produced while decoding request
// bodies can echo fragments of task titles and descriptions; those, along
// with credentials, file paths and stack traces, never reach the logs verbatim.
package redact

import (
	"regexp"
)

// Placeholders substituted for redacted content.
const (
	RedactionPlaceholder          = "[REDACTED]"
	RedactedPathPlaceholder       = "[REDACTED_PATH]"
	RedactedCredentialPlaceholder = "[REDACTED_CREDENTIAL]"
	RedactedEmailPlaceholder      = "[REDACTED_EMAIL]"
	RedactedStackPlaceholder      = "[STACK_TRACE_REDACTED]"
	RedactedValuePlaceholder      = `"[REDACTED_VALUE]"`
)

type rule struct {
	pattern     *regexp.Regexp
	placeholder string
}

// Rules run in order; stack traces go first so the path rule does not
// shred them into fragments.
var rules = []rule{
	{
		regexp.MustCompile(`(?:goroutine \d+|panic:)[\s\S]*?(\n\t.*)+`),
		RedactedStackPlaceholder,
	},
	{
		regexp.MustCompile(`(?i)(password|passwd|pwd|secret|token|api[_-]?key)(['"\s:=]+)[^'"&\s]{3,}`),
		RedactedCredentialPlaceholder,
	},
	{
		regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`),
		RedactedEmailPlaceholder,
	},
	{
		regexp.MustCompile(`(/[\w.-]+){2,}`),
		RedactedPathPlaceholder,
	},
	{
		regexp.MustCompile(`[A-Za-z]:\\[^\\]+(\\[^\\]+)+`),
		RedactedPathPlaceholder,
	},
	{
		// Double-quoted literals of 3+ chars, as echoed by encoding/json.
		regexp.MustCompile(`"(?:[^"\\]|\\.){3,}"`),
		RedactedValuePlaceholder,
	},
}

// String redacts sensitive information from the input string.
func String(input string) string {
	if input == "" {
		return input
	}

	result := input
	for _, r := range rules {
		result = r.pattern.ReplaceAllString(result, r.placeholder)
	}
	return result
}

// Error redacts sensitive information from an error's Error() output.
func Error(err error) string {
	if err == nil {
		return ""
	}
	return String(err.Error())
}
