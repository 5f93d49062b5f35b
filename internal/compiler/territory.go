// Package compiler orchestrates descriptor, format-rule, and territory-level
// resolution into complete metadata values, and assembles them into the
// output collection.
package compiler

import (
	"fmt"
	"strconv"

	errs "github.com/jacoelho/phonemeta/errors"
	"github.com/jacoelho/phonemeta/internal/descriptor"
	"github.com/jacoelho/phonemeta/internal/formatrule"
	"github.com/jacoelho/phonemeta/internal/patterns"
	"github.com/jacoelho/phonemeta/internal/plannames"
	"github.com/jacoelho/phonemeta/internal/xmltree"
	"github.com/jacoelho/phonemeta/metadata"
)

// Config selects which kind of numbering-plan document is being compiled.
// Short-number records derive their general descriptor from shortCode and
// resolve the short-number type set; alternate-formats records only carry
// formatting rules, so descriptor resolution is skipped entirely.
type Config struct {
	ShortNumber      bool
	AlternateFormats bool
}

// standardTypes maps the number types resolved for regular records to their
// metadata fields.
var standardTypes = []struct {
	name   string
	assign func(*metadata.TerritoryMetadata, *metadata.PhoneNumberDesc)
}{
	{plannames.FixedLine, func(t *metadata.TerritoryMetadata, d *metadata.PhoneNumberDesc) { t.FixedLine = d }},
	{plannames.Mobile, func(t *metadata.TerritoryMetadata, d *metadata.PhoneNumberDesc) { t.Mobile = d }},
	{plannames.SharedCost, func(t *metadata.TerritoryMetadata, d *metadata.PhoneNumberDesc) { t.SharedCost = d }},
	{plannames.Voip, func(t *metadata.TerritoryMetadata, d *metadata.PhoneNumberDesc) { t.Voip = d }},
	{plannames.Voicemail, func(t *metadata.TerritoryMetadata, d *metadata.PhoneNumberDesc) { t.Voicemail = d }},
	{plannames.Pager, func(t *metadata.TerritoryMetadata, d *metadata.PhoneNumberDesc) { t.Pager = d }},
	{plannames.UAN, func(t *metadata.TerritoryMetadata, d *metadata.PhoneNumberDesc) { t.UAN = d }},
	{plannames.TollFree, func(t *metadata.TerritoryMetadata, d *metadata.PhoneNumberDesc) { t.TollFree = d }},
	{plannames.PremiumRate, func(t *metadata.TerritoryMetadata, d *metadata.PhoneNumberDesc) { t.PremiumRate = d }},
	{plannames.PersonalNumber, func(t *metadata.TerritoryMetadata, d *metadata.PhoneNumberDesc) { t.PersonalNumber = d }},
	{plannames.NoInternationalDialling, func(t *metadata.TerritoryMetadata, d *metadata.PhoneNumberDesc) { t.NoInternationalDialling = d }},
}

// shortNumberTypes maps the number types resolved for short-number records.
var shortNumberTypes = []struct {
	name   string
	assign func(*metadata.TerritoryMetadata, *metadata.PhoneNumberDesc)
}{
	{plannames.StandardRate, func(t *metadata.TerritoryMetadata, d *metadata.PhoneNumberDesc) { t.StandardRate = d }},
	{plannames.ShortCode, func(t *metadata.TerritoryMetadata, d *metadata.PhoneNumberDesc) { t.ShortCode = d }},
	{plannames.CarrierSpecific, func(t *metadata.TerritoryMetadata, d *metadata.PhoneNumberDesc) { t.CarrierSpecific = d }},
	{plannames.SMSServices, func(t *metadata.TerritoryMetadata, d *metadata.PhoneNumberDesc) { t.SMSServices = d }},
	{plannames.Emergency, func(t *metadata.TerritoryMetadata, d *metadata.PhoneNumberDesc) { t.Emergency = d }},
	{plannames.TollFree, func(t *metadata.TerritoryMetadata, d *metadata.PhoneNumberDesc) { t.TollFree = d }},
	{plannames.PremiumRate, func(t *metadata.TerritoryMetadata, d *metadata.PhoneNumberDesc) { t.PremiumRate = d }},
}

// CompileTerritory resolves one territory record into a complete metadata
// value. Any failure aborts the record; no partial territory is ever
// returned.
func CompileTerritory(doc *xmltree.Document, territory xmltree.NodeID, cfg Config) (*metadata.TerritoryMetadata, error) {
	meta := &metadata.TerritoryMetadata{ID: doc.GetAttribute(territory, plannames.ID)}

	if err := compileTerritory(doc, territory, cfg, meta); err != nil {
		if b, ok := errs.AsBuild(err); ok {
			return nil, b.WithTerritory(meta.ID)
		}
		return nil, fmt.Errorf("territory %s: %w", meta.ID, err)
	}
	return meta, nil
}

func compileTerritory(doc *xmltree.Document, territory xmltree.NodeID, cfg Config, meta *metadata.TerritoryMetadata) error {
	if err := resolveTerritoryAttributes(doc, territory, meta); err != nil {
		return err
	}

	defaults := formattingDefaults(doc, territory, meta.NationalPrefix)
	national, intl, err := formatrule.Resolve(doc, territory, defaults)
	if err != nil {
		return err
	}
	meta.NumberFormats = national
	meta.IntlNumberFormats = intl

	// Alternate-formats data only needs formatting rules.
	if cfg.AlternateFormats {
		return nil
	}

	general, err := descriptor.DeriveGeneral(doc, territory, cfg.ShortNumber)
	if err != nil {
		return err
	}
	meta.GeneralDesc = general

	types := standardTypes
	if cfg.ShortNumber {
		types = shortNumberTypes
	}
	for _, t := range types {
		desc, err := descriptor.ResolveType(doc, territory, t.name, general)
		if err != nil {
			return err
		}
		t.assign(meta, desc)
	}

	if !cfg.ShortNumber {
		// Textual identity of the two patterns, not semantic equivalence.
		meta.SameMobileAndFixedLinePattern =
			meta.Mobile.NationalNumberPattern == meta.FixedLine.NationalNumberPattern
	}
	return nil
}

func resolveTerritoryAttributes(doc *xmltree.Document, territory xmltree.NodeID, meta *metadata.TerritoryMetadata) error {
	rawCode := doc.GetAttribute(territory, plannames.CountryCode)
	code, err := strconv.Atoi(rawCode)
	if err != nil {
		return fmt.Errorf("countryCode %q is not an integer", rawCode)
	}
	meta.CountryCode = code

	if doc.HasAttribute(territory, plannames.LeadingDigits) {
		pattern, err := patterns.Validate(doc.GetAttribute(territory, plannames.LeadingDigits), false)
		if err != nil {
			return err
		}
		meta.LeadingDigits = pattern
	}
	if doc.HasAttribute(territory, plannames.InternationalPrefix) {
		pattern, err := patterns.Validate(doc.GetAttribute(territory, plannames.InternationalPrefix), false)
		if err != nil {
			return err
		}
		meta.InternationalPrefix = pattern
	}
	meta.PreferredInternationalPrefix = doc.GetAttribute(territory, plannames.PreferredInternationalPrefix)
	meta.PreferredExtnPrefix = doc.GetAttribute(territory, plannames.PreferredExtnPrefix)

	if doc.HasAttribute(territory, plannames.NationalPrefixForParsing) {
		pattern, err := patterns.Validate(doc.GetAttribute(territory, plannames.NationalPrefixForParsing), true)
		if err != nil {
			return err
		}
		meta.NationalPrefixForParsing = pattern

		if doc.HasAttribute(territory, plannames.NationalPrefixTransformRule) {
			rule, err := patterns.Validate(doc.GetAttribute(territory, plannames.NationalPrefixTransformRule), true)
			if err != nil {
				return err
			}
			meta.NationalPrefixTransformRule = rule
		}
	}
	if doc.HasAttribute(territory, plannames.NationalPrefix) {
		meta.NationalPrefix = doc.GetAttribute(territory, plannames.NationalPrefix)
		if meta.NationalPrefixForParsing == "" {
			meta.NationalPrefixForParsing = meta.NationalPrefix
		}
	}

	meta.MainCountryForCode = boolAttr(doc, territory, plannames.MainCountryForCode)
	meta.LeadingZeroPossible = boolAttr(doc, territory, plannames.LeadingZeroPossible)
	meta.MobileNumberPortableRegion = boolAttr(doc, territory, plannames.MobileNumberPortableRegion)
	return nil
}

func formattingDefaults(doc *xmltree.Document, territory xmltree.NodeID, nationalPrefix string) formatrule.Defaults {
	defaults := formatrule.Defaults{
		NationalPrefix:                       nationalPrefix,
		NationalPrefixOptionalWhenFormatting: boolAttr(doc, territory, plannames.NationalPrefixOptionalWhenFormatting),
	}
	if doc.HasAttribute(territory, plannames.NationalPrefixFormattingRule) {
		raw := doc.GetAttribute(territory, plannames.NationalPrefixFormattingRule)
		defaults.NationalPrefixFormattingRule = formatrule.SubstituteTokens(raw, nationalPrefix)
	}
	if doc.HasAttribute(territory, plannames.CarrierCodeFormattingRule) {
		raw := doc.GetAttribute(territory, plannames.CarrierCodeFormattingRule)
		defaults.CarrierCodeFormattingRule = formatrule.SubstituteTokens(raw, nationalPrefix)
	}
	return defaults
}

func boolAttr(doc *xmltree.Document, id xmltree.NodeID, name string) bool {
	return doc.GetAttribute(id, name) == "true"
}
