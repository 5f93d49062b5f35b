// Package patterns validates the regular-expression text carried by
// numbering-plan records. Validation happens once, at load time, so a
// compiled metadata table never contains a pattern that fails to compile.
package patterns

import (
	"regexp"
	"strings"
	"unicode"

	errs "github.com/jacoelho/phonemeta/errors"
)

// Validate checks that pattern compiles as a regular expression and returns
// it otherwise unchanged. When stripWhitespace is set, all whitespace
// (including newlines) is removed before compilation, so multi-line
// human-formatted patterns keep their meaning regardless of formatting.
func Validate(pattern string, stripWhitespace bool) (string, error) {
	candidate := pattern
	if stripWhitespace {
		candidate = stripAllWhitespace(pattern)
	}
	if _, err := regexp.Compile(candidate); err != nil {
		return "", errs.NewBuildf(errs.ErrInvalidPattern, "pattern does not compile: %v", err).WithRaw(pattern)
	}
	return candidate, nil
}

func stripAllWhitespace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}
