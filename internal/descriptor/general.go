package descriptor

import (
	errs "github.com/jacoelho/phonemeta/errors"
	"github.com/jacoelho/phonemeta/internal/plannames"
	"github.com/jacoelho/phonemeta/internal/xmltree"
	"github.com/jacoelho/phonemeta/metadata"
)

// excludedFromGeneralLengths lists descriptor elements that do not contribute
// to the general descriptor's derived lengths. noInternationalDialling has no
// structurally matching number type, so its lengths are left out; the rule is
// preserved verbatim from the numbering-plan vocabulary.
var excludedFromGeneralLengths = map[string]bool{
	plannames.NoInternationalDialling: true,
	plannames.GeneralDesc:             true,
	plannames.AvailableFormats:        true,
}

// DeriveGeneral builds a territory's general descriptor. Its possible
// lengths are always derived from the sibling type elements, never authored:
// the general element declaring its own lengths is an error. Short-number
// records derive from the shortCode element only and admit no local-only
// lengths.
func DeriveGeneral(doc *xmltree.Document, territory xmltree.NodeID, shortNumber bool) (*metadata.PhoneNumberDesc, error) {
	generals := doc.ChildrenByName(territory, plannames.GeneralDesc)
	if len(generals) > 1 {
		return nil, errs.NewBuildf(errs.ErrDuplicateTypeElement, "multiple elements of type %s", plannames.GeneralDesc)
	}

	desc := &metadata.PhoneNumberDesc{}
	if len(generals) == 1 {
		general := generals[0]
		if len(doc.ChildrenByName(general, plannames.PossibleLengths)) > 0 {
			return nil, errs.NewBuild(errs.ErrUnexpectedGeneralDescLengths,
				"possible lengths on the general descriptor must be derived from child elements, not declared")
		}
		if err := readPatternAndExample(doc, general, desc); err != nil {
			return nil, err
		}
	}

	lengths := make(map[int]struct{})
	localOnly := make(map[int]struct{})

	if shortNumber {
		for _, shortCode := range doc.ChildrenByName(territory, plannames.ShortCode) {
			if err := ExtractLengths(doc, shortCode, lengths, localOnly); err != nil {
				return nil, err
			}
		}
		if len(localOnly) > 0 {
			return nil, errs.NewBuild(errs.ErrUnexpectedLocalOnlyLengths,
				"local-only lengths are not defined for short-number records")
		}
	} else {
		for _, child := range doc.Children(territory) {
			if excludedFromGeneralLengths[doc.Name(child)] {
				continue
			}
			if err := ExtractLengths(doc, child, lengths, localOnly); err != nil {
				return nil, err
			}
		}
	}

	desc.PossibleLengths = sortedKeys(lengths)
	// Lengths contributed as national by one sibling and local-only by
	// another count as national for the aggregate; the two subsets of a
	// resolved descriptor stay disjoint.
	for _, v := range sortedKeys(localOnly) {
		if _, dup := lengths[v]; dup {
			continue
		}
		desc.PossibleLengthsLocalOnly = append(desc.PossibleLengthsLocalOnly, v)
	}
	return desc, nil
}
