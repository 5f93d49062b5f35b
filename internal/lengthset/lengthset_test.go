package lengthset

import (
	"testing"

	"github.com/stretchr/testify/require"

	errs "github.com/jacoelho/phonemeta/errors"
)

func TestParseValidSpecs(t *testing.T) {
	tests := []struct {
		name string
		spec string
		want []int
	}{
		{name: "single literal", spec: "7", want: []int{7}},
		{name: "literal list", spec: "6,7", want: []int{6, 7}},
		{name: "range", spec: "[6-8]", want: []int{6, 7, 8}},
		{name: "range and literals", spec: "5,[7-9],13", want: []int{5, 7, 8, 9, 13}},
		{name: "result is sorted", spec: "13,[7-9],5", want: []int{5, 7, 8, 9, 13}},
		{name: "minimal range width", spec: "[4-6]", want: []int{4, 5, 6}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.spec)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestParseMalformedSpecs(t *testing.T) {
	tests := []struct {
		name string
		spec string
	}{
		{name: "empty input", spec: ""},
		{name: "adjacent commas", spec: "6,,7"},
		{name: "leading comma", spec: ",6"},
		{name: "trailing comma", spec: "6,"},
		{name: "range too narrow one element", spec: "[6-6]"},
		{name: "range too narrow two elements", spec: "[6-7]"},
		{name: "inverted range", spec: "[8-6]"},
		{name: "missing closing bracket", spec: "[6-8"},
		{name: "two hyphens in range", spec: "[6-8-9]"},
		{name: "no hyphen in range", spec: "[68]"},
		{name: "duplicate literal", spec: "6,6"},
		{name: "duplicate across range and literal", spec: "[6-9],7"},
		{name: "duplicate across ranges", spec: "[6-9],[8-11]"},
		{name: "not an integer", spec: "six"},
		{name: "zero", spec: "0"},
		{name: "negative", spec: "-1"},
		{name: "non-integer range bound", spec: "[a-8]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.spec)
			require.Error(t, err)
			require.Equal(t, errs.ErrMalformedLengthSpec, errs.CodeOf(err), "want malformed-length-spec, got %v", err)
		})
	}
}

func TestParseIsDeterministic(t *testing.T) {
	first, err := Parse("13,[7-9],5")
	require.NoError(t, err)
	second, err := Parse("13,[7-9],5")
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestParseErrorCarriesOffendingText(t *testing.T) {
	_, err := Parse("6,6")
	b, ok := errs.AsBuild(err)
	require.True(t, ok)
	require.Equal(t, "6,6", b.Raw)
}
