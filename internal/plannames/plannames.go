// Package plannames holds the element and attribute names of the
// numbering-plan document vocabulary.
package plannames

// Element names.
const (
	// Territory is the per-region record element.
	Territory = "territory"
	// GeneralDesc is the descriptor all number types inherit from.
	GeneralDesc = "generalDesc"

	FixedLine               = "fixedLine"
	Mobile                  = "mobile"
	TollFree                = "tollFree"
	PremiumRate             = "premiumRate"
	SharedCost              = "sharedCost"
	PersonalNumber          = "personalNumber"
	Voip                    = "voip"
	Pager                   = "pager"
	UAN                     = "uan"
	Voicemail               = "voicemail"
	NoInternationalDialling = "noInternationalDialling"
	Emergency               = "emergency"
	ShortCode               = "shortCode"
	StandardRate            = "standardRate"
	CarrierSpecific         = "carrierSpecific"
	SMSServices             = "smsServices"

	// PossibleLengths carries the per-type length sets.
	PossibleLengths = "possibleLengths"
	// NationalNumberPattern is the per-type validation pattern.
	NationalNumberPattern = "nationalNumberPattern"
	// ExampleNumber is a sample number of the type.
	ExampleNumber = "exampleNumber"

	// AvailableFormats groups a territory's formatting rules.
	AvailableFormats = "availableFormats"
	// NumberFormat is one national formatting rule.
	NumberFormat = "numberFormat"
	// Format is the rule's output template.
	Format = "format"
	// IntlFormat is the rule's international output template.
	IntlFormat = "intlFormat"
	// LeadingDigits narrows which rule applies by number prefix.
	LeadingDigits = "leadingDigits"
)

// Attribute names.
const (
	National  = "national"
	LocalOnly = "localOnly"

	ID                           = "id"
	CountryCode                  = "countryCode"
	MainCountryForCode           = "mainCountryForCode"
	LeadingZeroPossible          = "leadingZeroPossible"
	MobileNumberPortableRegion   = "mobileNumberPortableRegion"
	NationalPrefix               = "nationalPrefix"
	InternationalPrefix          = "internationalPrefix"
	PreferredInternationalPrefix = "preferredInternationalPrefix"
	NationalPrefixForParsing     = "nationalPrefixForParsing"
	NationalPrefixTransformRule  = "nationalPrefixTransformRule"
	PreferredExtnPrefix          = "preferredExtnPrefix"
	NationalPrefixFormattingRule = "nationalPrefixFormattingRule"
	NationalPrefixOptionalWhenFormatting = "nationalPrefixOptionalWhenFormatting"
	CarrierCodeFormattingRule    = "carrierCodeFormattingRule"
	Pattern                      = "pattern"
)

// Formatting-rule substitution tokens.
const (
	// NationalPrefixToken is replaced by the territory's national prefix.
	NationalPrefixToken = "$NP"
	// FirstGroupToken is replaced by the first-capture-group placeholder.
	FirstGroupToken = "$FG"
	// FirstGroupPlaceholder is the substituted first-capture-group reference.
	FirstGroupPlaceholder = "${1}"
	// NoIntlFormat marks a rule with no international rendering.
	NoIntlFormat = "NA"
)
