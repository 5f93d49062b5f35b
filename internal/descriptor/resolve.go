// Package descriptor resolves per-number-type descriptors against the
// general descriptor they inherit from, and derives the general descriptor's
// own possible lengths bottom-up from its siblings.
package descriptor

import (
	"sort"
	"strings"

	errs "github.com/jacoelho/phonemeta/errors"
	"github.com/jacoelho/phonemeta/internal/lengthset"
	"github.com/jacoelho/phonemeta/internal/patterns"
	"github.com/jacoelho/phonemeta/internal/plannames"
	"github.com/jacoelho/phonemeta/internal/xmltree"
	"github.com/jacoelho/phonemeta/metadata"
)

// ResolveType builds the descriptor for one number type of a territory.
//
// A territory with no element for the type yields the absent sentinel: a
// descriptor whose only possible length is metadata.AbsentLength and carries no
// pattern or example. An empty length list is reserved for "same lengths as
// the general descriptor", so absence must never be encoded as empty.
func ResolveType(doc *xmltree.Document, territory xmltree.NodeID, typeName string, parent *metadata.PhoneNumberDesc) (*metadata.PhoneNumberDesc, error) {
	elems := doc.ChildrenByName(territory, typeName)
	switch len(elems) {
	case 0:
		return &metadata.PhoneNumberDesc{PossibleLengths: []int{metadata.AbsentLength}}, nil
	case 1:
	default:
		return nil, errs.NewBuildf(errs.ErrDuplicateTypeElement, "multiple elements of type %s", typeName)
	}
	elem := elems[0]

	lengths := make(map[int]struct{})
	localOnly := make(map[int]struct{})
	if err := ExtractLengths(doc, elem, lengths, localOnly); err != nil {
		return nil, err
	}

	desc := &metadata.PhoneNumberDesc{}
	if err := setResolvedLengths(desc, lengths, localOnly, parent, typeName); err != nil {
		return nil, err
	}
	if err := readPatternAndExample(doc, elem, desc); err != nil {
		return nil, err
	}
	return desc, nil
}

// ExtractLengths reads every possibleLengths child of elem into the running
// sets. The national attribute is required; localOnly is optional. Lengths
// repeated across sibling possibleLengths nodes merge silently, but a length
// that is both national and local-only on the same node is an overlap error.
func ExtractLengths(doc *xmltree.Document, elem xmltree.NodeID, lengths, localOnly map[int]struct{}) error {
	for _, node := range doc.ChildrenByName(elem, plannames.PossibleLengths) {
		national, err := lengthset.Parse(doc.GetAttribute(node, plannames.National))
		if err != nil {
			return err
		}
		if doc.HasAttribute(node, plannames.LocalOnly) {
			raw := doc.GetAttribute(node, plannames.LocalOnly)
			local, err := lengthset.Parse(raw)
			if err != nil {
				return err
			}
			for _, v := range local {
				if containsInt(national, v) {
					return errs.NewBuildf(errs.ErrOverlappingLengthSets, "length %d is both national and local-only", v).WithRaw(raw)
				}
				localOnly[v] = struct{}{}
			}
		}
		for _, v := range national {
			lengths[v] = struct{}{}
		}
	}
	return nil
}

// setResolvedLengths validates the type's lengths against the parent and
// applies the inherit-by-omission compression: a national set identical to
// the parent's is stored as empty.
func setResolvedLengths(desc *metadata.PhoneNumberDesc, lengths, localOnly map[int]struct{}, parent *metadata.PhoneNumberDesc, typeName string) error {
	national := sortedKeys(lengths)
	for _, v := range national {
		if parent != nil && !containsInt(parent.PossibleLengths, v) {
			return errs.NewBuildf(errs.ErrLengthNotCoveredByParent,
				"type %s declares length %d absent from the general descriptor", typeName, v)
		}
	}
	if parent == nil || !equalInts(national, parent.PossibleLengths) {
		desc.PossibleLengths = national
	}

	for _, v := range sortedKeys(localOnly) {
		// A local-only length may be covered by the parent as either kind.
		if parent != nil && !containsInt(parent.PossibleLengths, v) && !containsInt(parent.PossibleLengthsLocalOnly, v) {
			return errs.NewBuildf(errs.ErrLengthNotCoveredByParent,
				"type %s declares local-only length %d absent from the general descriptor", typeName, v)
		}
		if _, dup := lengths[v]; dup {
			continue
		}
		desc.PossibleLengthsLocalOnly = append(desc.PossibleLengthsLocalOnly, v)
	}
	return nil
}

func readPatternAndExample(doc *xmltree.Document, elem xmltree.NodeID, desc *metadata.PhoneNumberDesc) error {
	if nodes := doc.ChildrenByName(elem, plannames.NationalNumberPattern); len(nodes) > 0 {
		pattern, err := patterns.Validate(doc.Text(nodes[0]), true)
		if err != nil {
			return err
		}
		desc.NationalNumberPattern = pattern
	}
	if nodes := doc.ChildrenByName(elem, plannames.ExampleNumber); len(nodes) > 0 {
		desc.ExampleNumber = strings.TrimSpace(doc.Text(nodes[0]))
	}
	return nil
}

func sortedKeys(set map[int]struct{}) []int {
	if len(set) == 0 {
		return nil
	}
	out := make([]int, 0, len(set))
	for v := range set {
		out = append(out, v)
	}
	sort.Ints(out)
	return out
}

func containsInt(values []int, v int) bool {
	for _, x := range values {
		if x == v {
			return true
		}
	}
	return false
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
