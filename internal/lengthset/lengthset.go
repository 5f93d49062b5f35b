// Package lengthset parses the possible-length mini-grammar used by
// numbering-plan records: comma-separated tokens, each a literal positive
// integer or an inclusive bracketed range such as [6-8].
package lengthset

import (
	"sort"
	"strconv"
	"strings"

	errs "github.com/jacoelho/phonemeta/errors"
)

// Parse parses a possible-length specification into a sorted set of lengths.
// The result never contains duplicates; any violation of the grammar is a
// malformed-length-spec build error carrying the offending text.
func Parse(spec string) ([]int, error) {
	if spec == "" {
		return nil, errs.NewBuild(errs.ErrMalformedLengthSpec, "empty length specification")
	}

	seen := make(map[int]struct{})
	var lengths []int
	add := func(v int) error {
		if _, dup := seen[v]; dup {
			return errs.NewBuildf(errs.ErrMalformedLengthSpec, "duplicate length %d", v).WithRaw(spec)
		}
		seen[v] = struct{}{}
		lengths = append(lengths, v)
		return nil
	}

	for _, token := range strings.Split(spec, ",") {
		if token == "" {
			return nil, errs.NewBuild(errs.ErrMalformedLengthSpec, "empty length token").WithRaw(spec)
		}
		if !strings.HasPrefix(token, "[") {
			v, err := parseLength(token, spec)
			if err != nil {
				return nil, err
			}
			if err := add(v); err != nil {
				return nil, err
			}
			continue
		}

		if !strings.HasSuffix(token, "]") {
			return nil, errs.NewBuildf(errs.ErrMalformedLengthSpec, "range %s missing closing bracket", token).WithRaw(spec)
		}
		bounds := strings.Split(token[1:len(token)-1], "-")
		if len(bounds) != 2 {
			return nil, errs.NewBuildf(errs.ErrMalformedLengthSpec, "range %s must contain exactly one hyphen", token).WithRaw(spec)
		}
		min, err := parseLength(bounds[0], spec)
		if err != nil {
			return nil, err
		}
		max, err := parseLength(bounds[1], spec)
		if err != nil {
			return nil, err
		}
		// Ranges expanding to fewer than three values must be written as
		// literals instead.
		if max-min < 2 {
			return nil, errs.NewBuildf(errs.ErrMalformedLengthSpec, "range %s too narrow, list lengths explicitly", token).WithRaw(spec)
		}
		for v := min; v <= max; v++ {
			if err := add(v); err != nil {
				return nil, err
			}
		}
	}

	sort.Ints(lengths)
	return lengths, nil
}

func parseLength(text, spec string) (int, error) {
	v, err := strconv.Atoi(text)
	if err != nil || v <= 0 {
		return 0, errs.NewBuildf(errs.ErrMalformedLengthSpec, "length %q is not a positive integer", text).WithRaw(spec)
	}
	return v, nil
}
