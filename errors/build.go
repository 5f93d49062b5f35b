package errors

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorCode classifies a metadata build failure. Every code is fatal: the
// compilation of the whole input is rejected on the first error encountered.
type ErrorCode string

const (
	// ErrMalformedLengthSpec indicates a possible-length specification that
	// does not follow the comma-separated literal/range mini-grammar.
	ErrMalformedLengthSpec ErrorCode = "malformed-length-spec"
	// ErrInvalidPattern indicates a field whose text does not compile as a
	// regular expression.
	ErrInvalidPattern ErrorCode = "invalid-pattern"
	// ErrDuplicateTypeElement indicates more than one occurrence of a number
	// type element under a single territory.
	ErrDuplicateTypeElement ErrorCode = "duplicate-type-element"
	// ErrLengthNotCoveredByParent indicates a type declares a possible length
	// absent from the general descriptor it inherits from.
	ErrLengthNotCoveredByParent ErrorCode = "length-not-covered-by-parent"
	// ErrUnexpectedGeneralDescLengths indicates the general descriptor element
	// declares possible lengths directly; they are always derived.
	ErrUnexpectedGeneralDescLengths ErrorCode = "unexpected-general-desc-lengths"
	// ErrUnexpectedLocalOnlyLengths indicates local-only lengths in a
	// short-number record, where local dialing is undefined.
	ErrUnexpectedLocalOnlyLengths ErrorCode = "unexpected-local-only-lengths"
	// ErrOverlappingLengthSets indicates a length present both as a national
	// and a local-only length on the same element.
	ErrOverlappingLengthSets ErrorCode = "overlapping-length-sets"
	// ErrFormatCount indicates a number-format element without exactly one
	// format child.
	ErrFormatCount ErrorCode = "format-count"
	// ErrDuplicateIntlFormat indicates more than one international format
	// child under a single number-format element.
	ErrDuplicateIntlFormat ErrorCode = "duplicate-intl-format"
	// ErrConflictingBuildFlags indicates the lite and special build flags were
	// both supplied; they are mutually exclusive.
	ErrConflictingBuildFlags ErrorCode = "conflicting-build-flags"
)

// Build describes a metadata build error with a taxonomy code and enough
// context (offending territory id, offending raw text) to diagnose without
// re-running the build.
type Build struct {
	Code      ErrorCode
	Message   string
	Territory string
	Raw       string
}

// Error formats the build error for display, including code and context.
func (b *Build) Error() string {
	if b == nil {
		return "build <nil>"
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("[%s] %s", b.Code, b.Message))
	if b.Territory != "" {
		sb.WriteString(fmt.Sprintf(" (territory %s)", b.Territory))
	}
	if b.Raw != "" {
		sb.WriteString(fmt.Sprintf(" (input %q)", b.Raw))
	}
	return sb.String()
}

// NewBuild builds a Build error with a code and message.
func NewBuild(code ErrorCode, msg string) *Build {
	return &Build{Code: code, Message: msg}
}

// NewBuildf formats a message and builds a Build error.
func NewBuildf(code ErrorCode, format string, args ...any) *Build {
	return NewBuild(code, fmt.Sprintf(format, args...))
}

// WithTerritory returns a copy of the error annotated with the territory id.
// Annotating an already-attributed error is a no-op so the innermost
// attribution wins.
func (b *Build) WithTerritory(id string) *Build {
	if b == nil || b.Territory != "" {
		return b
	}
	c := *b
	c.Territory = id
	return &c
}

// WithRaw returns a copy of the error annotated with the offending raw text.
func (b *Build) WithRaw(raw string) *Build {
	if b == nil || b.Raw != "" {
		return b
	}
	c := *b
	c.Raw = raw
	return &c
}

// AsBuild extracts a Build error from an error chain.
func AsBuild(err error) (*Build, bool) {
	if err == nil {
		return nil, false
	}
	var b *Build
	if errors.As(err, &b) && b != nil {
		return b, true
	}
	return nil, false
}

// CodeOf returns the taxonomy code carried by err, or the empty code.
func CodeOf(err error) ErrorCode {
	if b, ok := AsBuild(err); ok {
		return b.Code
	}
	return ""
}
