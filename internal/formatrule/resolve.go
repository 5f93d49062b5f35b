// Package formatrule resolves a territory's national and international
// number-format rule sequences, including formatting-rule token substitution
// and default-international-format suppression.
package formatrule

import (
	"strings"

	errs "github.com/jacoelho/phonemeta/errors"
	"github.com/jacoelho/phonemeta/internal/patterns"
	"github.com/jacoelho/phonemeta/internal/plannames"
	"github.com/jacoelho/phonemeta/internal/xmltree"
	"github.com/jacoelho/phonemeta/metadata"
)

// Defaults carries the territory-level formatting-rule defaults a
// numberFormat element falls back to when it declares none of its own. The
// rule strings are stored already token-substituted.
type Defaults struct {
	NationalPrefix                       string
	NationalPrefixFormattingRule         string
	NationalPrefixOptionalWhenFormatting bool
	CarrierCodeFormattingRule            string
}

// SubstituteTokens replaces the first occurrence of $NP with the territory's
// national prefix and the first occurrence of $FG with the first-capture-group
// placeholder. A formatting rule is expected to reference each token at most
// once, so only the first occurrence is substituted.
func SubstituteTokens(rule, nationalPrefix string) string {
	rule = strings.Replace(rule, plannames.NationalPrefixToken, nationalPrefix, 1)
	return strings.Replace(rule, plannames.FirstGroupToken, plannames.FirstGroupPlaceholder, 1)
}

// Resolve builds the ordered national rule sequence and, only where any rule
// genuinely differs from its national counterpart, the international one.
// When no numberFormat element carries an explicit international directive
// the international sequence is discarded entirely: absence means "identical
// to the national sequence".
func Resolve(doc *xmltree.Document, territory xmltree.NodeID, defaults Defaults) (national, intl []metadata.NumberFormat, err error) {
	hasExplicitIntl := false
	for _, available := range doc.ChildrenByName(territory, plannames.AvailableFormats) {
		for _, elem := range doc.ChildrenByName(available, plannames.NumberFormat) {
			rule, err := resolveNational(doc, elem, defaults)
			if err != nil {
				return nil, nil, err
			}
			national = append(national, rule)

			intlRule, keep, explicit, err := resolveInternational(doc, elem, rule)
			if err != nil {
				return nil, nil, err
			}
			if keep {
				intl = append(intl, intlRule)
			}
			hasExplicitIntl = hasExplicitIntl || explicit
		}
	}
	if !hasExplicitIntl {
		intl = nil
	}
	return national, intl, nil
}

func resolveNational(doc *xmltree.Document, elem xmltree.NodeID, defaults Defaults) (metadata.NumberFormat, error) {
	rule := metadata.NumberFormat{
		NationalPrefixFormattingRule:         defaults.NationalPrefixFormattingRule,
		NationalPrefixOptionalWhenFormatting: defaults.NationalPrefixOptionalWhenFormatting,
		DomesticCarrierCodeFormattingRule:    defaults.CarrierCodeFormattingRule,
	}
	if doc.HasAttribute(elem, plannames.NationalPrefixFormattingRule) {
		raw := doc.GetAttribute(elem, plannames.NationalPrefixFormattingRule)
		rule.NationalPrefixFormattingRule = SubstituteTokens(raw, defaults.NationalPrefix)
	}
	if doc.HasAttribute(elem, plannames.NationalPrefixOptionalWhenFormatting) {
		rule.NationalPrefixOptionalWhenFormatting = doc.GetAttribute(elem, plannames.NationalPrefixOptionalWhenFormatting) == "true"
	}
	if doc.HasAttribute(elem, plannames.CarrierCodeFormattingRule) {
		raw := doc.GetAttribute(elem, plannames.CarrierCodeFormattingRule)
		rule.DomesticCarrierCodeFormattingRule = SubstituteTokens(raw, defaults.NationalPrefix)
	}

	pattern, err := patterns.Validate(doc.GetAttribute(elem, plannames.Pattern), false)
	if err != nil {
		return metadata.NumberFormat{}, err
	}
	rule.Pattern = pattern

	leading, err := leadingDigitsPatterns(doc, elem)
	if err != nil {
		return metadata.NumberFormat{}, err
	}
	rule.LeadingDigitsPatterns = leading

	formats := doc.ChildrenByName(elem, plannames.Format)
	if len(formats) != 1 {
		return metadata.NumberFormat{}, errs.NewBuildf(errs.ErrFormatCount, "invalid number of format patterns (%d)", len(formats))
	}
	rule.Format = doc.Text(formats[0])
	return rule, nil
}

// resolveInternational applies the international directive of one
// numberFormat element. Zero intlFormat children default the international
// rule to the national one verbatim; the NA sentinel suppresses the rule
// entirely; any other single value becomes the rule's own template.
func resolveInternational(doc *xmltree.Document, elem xmltree.NodeID, national metadata.NumberFormat) (rule metadata.NumberFormat, keep, explicit bool, err error) {
	intlFormats := doc.ChildrenByName(elem, plannames.IntlFormat)
	switch len(intlFormats) {
	case 0:
		return national, true, false, nil
	case 1:
	default:
		return metadata.NumberFormat{}, false, false,
			errs.NewBuildf(errs.ErrDuplicateIntlFormat, "invalid number of intlFormat patterns (%d)", len(intlFormats))
	}

	template := doc.Text(intlFormats[0])
	if template == plannames.NoIntlFormat {
		return metadata.NumberFormat{}, false, true, nil
	}
	rule = metadata.NumberFormat{
		Pattern:               national.Pattern,
		Format:                template,
		LeadingDigitsPatterns: national.LeadingDigitsPatterns,
	}
	return rule, true, true, nil
}

func leadingDigitsPatterns(doc *xmltree.Document, elem xmltree.NodeID) ([]string, error) {
	var out []string
	for _, node := range doc.ChildrenByName(elem, plannames.LeadingDigits) {
		pattern, err := patterns.Validate(doc.Text(node), true)
		if err != nil {
			return nil, err
		}
		out = append(out, pattern)
	}
	return out, nil
}
