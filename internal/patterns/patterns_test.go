package patterns

import (
	"testing"

	errs "github.com/jacoelho/phonemeta/errors"
)

func TestValidateReturnsPatternUnchanged(t *testing.T) {
	pattern := `[2-7]\d{7}`
	got, err := Validate(pattern, false)
	if err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if got != pattern {
		t.Fatalf("Validate() = %q, want %q", got, pattern)
	}
}

func TestValidateStripsWhitespace(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		want    string
	}{
		{
			name:    "multi-line human formatting",
			pattern: "[2-7]\\d{7}|\n  8\\d{9}",
			want:    `[2-7]\d{7}|8\d{9}`,
		},
		{
			name:    "tabs and spaces",
			pattern: "1\t2 3",
			want:    "123",
		},
		{
			name:    "already compact",
			pattern: `\d{4}`,
			want:    `\d{4}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Validate(tt.pattern, true)
			if err != nil {
				t.Fatalf("Validate() error = %v", err)
			}
			if got != tt.want {
				t.Fatalf("Validate() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestValidateRejectsInvalidPatterns(t *testing.T) {
	for _, pattern := range []string{`[2-7`, `\d{2,1}`, `(`} {
		_, err := Validate(pattern, false)
		if err == nil {
			t.Fatalf("Validate(%q) error = nil, want invalid-pattern", pattern)
		}
		if code := errs.CodeOf(err); code != errs.ErrInvalidPattern {
			t.Fatalf("Validate(%q) code = %q, want %q", pattern, code, errs.ErrInvalidPattern)
		}
	}
}

func TestValidateAcceptsLiteralBrace(t *testing.T) {
	// A { that opens no well-formed repetition is a literal to the engine,
	// not a syntax error.
	got, err := Validate(`\d{`, false)
	if err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if got != `\d{` {
		t.Fatalf("Validate() = %q, want %q", got, `\d{`)
	}
}

func TestValidateStripRescuesFormattingOnlyBreakage(t *testing.T) {
	// The newline splitting the group flags only compiles once stripped.
	pattern := "(?\n:\\d{4})"
	if _, err := Validate(pattern, false); err == nil {
		t.Fatal("Validate() without stripping error = nil, want invalid-pattern")
	}
	got, err := Validate(pattern, true)
	if err != nil {
		t.Fatalf("Validate() with stripping error = %v", err)
	}
	if got != `(?:\d{4})` {
		t.Fatalf("Validate() = %q, want %q", got, `(?:\d{4})`)
	}
}
