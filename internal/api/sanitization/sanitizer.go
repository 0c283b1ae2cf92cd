package sanitization

import (
	"regexp"
	"strings"
)

var multiSpace = regexp.MustCompile(`\s+`)

// SanitizeText normalizes free-form user input: collapses whitespace runs
// and trims the ends. HTML escaping happens at render time, not here.
func SanitizeText(input string) string {
	safe := multiSpace.ReplaceAllString(input, " ")
	return strings.TrimSpace(safe)
}

// SanitizeEmail normalizes an email address
func SanitizeEmail(input string) string {
	return strings.ToLower(strings.TrimSpace(input))
}

// SanitizeName normalizes a person's name: whitespace collapsed, control
// characters removed
func SanitizeName(input string) string {
	safe := strings.Map(func(r rune) rune {
		if r < 0x20 || r == 0x7f {
			return -1
		}
		return r
	}, input)
	return SanitizeText(safe)
}
