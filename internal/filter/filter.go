// Package filter applies build-profile field filtering to resolved territory
// metadata before it joins the output collection.
package filter

import (
	errs "github.com/jacoelho/phonemeta/errors"
	"github.com/jacoelho/phonemeta/metadata"
)

// Metadata strips fields from a resolved territory according to a build
// profile. It is invoked exactly once per territory, between resolution and
// collection assembly; this is the only mutation a resolved value ever sees.
type Metadata interface {
	Filter(*metadata.TerritoryMetadata)
}

// ForBuildFlags selects the filter for the given build flags. The flags are
// mutually exclusive; neither selects the no-op filter.
func ForBuildFlags(liteBuild, specialBuild bool) (Metadata, error) {
	switch {
	case liteBuild && specialBuild:
		return nil, errs.NewBuild(errs.ErrConflictingBuildFlags, "the lite and special build flags are mutually exclusive")
	case specialBuild:
		return special{}, nil
	case liteBuild:
		return lite{}, nil
	default:
		return noop{}, nil
	}
}

type noop struct{}

func (noop) Filter(*metadata.TerritoryMetadata) {}

// lite drops example numbers everywhere; a lite table validates and formats
// but carries no sample data.
type lite struct{}

func (lite) Filter(t *metadata.TerritoryMetadata) {
	if t == nil {
		return
	}
	for _, desc := range descriptors(t) {
		desc.ExampleNumber = ""
	}
}

// special reduces the table to what mobile classification needs: the general
// and mobile descriptors plus the country-code routing fields. Formatting
// rules and the remaining types are dropped.
type special struct{}

func (special) Filter(t *metadata.TerritoryMetadata) {
	if t == nil {
		return
	}
	t.FixedLine = nil
	t.TollFree = nil
	t.PremiumRate = nil
	t.SharedCost = nil
	t.PersonalNumber = nil
	t.Voip = nil
	t.Pager = nil
	t.UAN = nil
	t.Voicemail = nil
	t.NoInternationalDialling = nil
	t.Emergency = nil
	t.ShortCode = nil
	t.StandardRate = nil
	t.CarrierSpecific = nil
	t.SMSServices = nil

	t.NumberFormats = nil
	t.IntlNumberFormats = nil
	t.PreferredExtnPrefix = ""
	t.PreferredInternationalPrefix = ""

	for _, desc := range descriptors(t) {
		desc.ExampleNumber = ""
	}
}

func descriptors(t *metadata.TerritoryMetadata) []*metadata.PhoneNumberDesc {
	all := []*metadata.PhoneNumberDesc{
		t.GeneralDesc, t.FixedLine, t.Mobile, t.TollFree, t.PremiumRate,
		t.SharedCost, t.PersonalNumber, t.Voip, t.Pager, t.UAN, t.Voicemail,
		t.NoInternationalDialling, t.Emergency, t.ShortCode, t.StandardRate,
		t.CarrierSpecific, t.SMSServices,
	}
	var out []*metadata.PhoneNumberDesc
	for _, d := range all {
		if d != nil {
			out = append(out, d)
		}
	}
	return out
}
