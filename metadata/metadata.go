// Package metadata holds the compiled numbering-plan metadata values. All
// values are built once by the compiler and treated as immutable afterwards,
// except for the single field-filter pass applied before a territory joins
// the output collection.
package metadata

// AbsentLength is stored as the only possible length of a number type the
// territory does not define. It can never match a real dial-string length,
// which keeps absent types structurally uniform with defined ones. An empty
// length list is the distinct encoding for "same as the general descriptor".
const AbsentLength = -1

// PhoneNumberDesc describes one number category of a territory: its
// validation pattern, an example number, and the dial-string lengths it
// admits.
type PhoneNumberDesc struct {
	NationalNumberPattern    string
	ExampleNumber            string
	PossibleLengths          []int
	PossibleLengthsLocalOnly []int
}

// IsAbsent reports whether the descriptor encodes a type the territory does
// not define.
func (d *PhoneNumberDesc) IsAbsent() bool {
	return d != nil && len(d.PossibleLengths) == 1 && d.PossibleLengths[0] == AbsentLength
}

// EffectiveLengths resolves the inherit-by-omission compression: an empty
// length list means the descriptor admits exactly the parent's lengths.
func (d *PhoneNumberDesc) EffectiveLengths(parent *PhoneNumberDesc) []int {
	if d == nil {
		return nil
	}
	if len(d.PossibleLengths) == 0 && parent != nil {
		return parent.PossibleLengths
	}
	return d.PossibleLengths
}

// NumberFormat is one formatting rule: a matching pattern, an output
// template, and leading-digits patterns narrowing where it applies (order
// significant, first match wins downstream).
type NumberFormat struct {
	Pattern                              string
	Format                               string
	LeadingDigitsPatterns                []string
	NationalPrefixFormattingRule         string
	NationalPrefixOptionalWhenFormatting bool
	DomesticCarrierCodeFormattingRule    string
}

// TerritoryMetadata is the compiled record for one territory. CountryCode is
// always set; every regex-bearing field compiled successfully before the
// value was considered resolved.
type TerritoryMetadata struct {
	ID                           string
	CountryCode                  int
	InternationalPrefix          string
	PreferredInternationalPrefix string
	NationalPrefix               string
	PreferredExtnPrefix          string
	NationalPrefixForParsing     string
	NationalPrefixTransformRule  string
	LeadingDigits                string

	MainCountryForCode            bool
	LeadingZeroPossible           bool
	MobileNumberPortableRegion    bool
	SameMobileAndFixedLinePattern bool

	GeneralDesc             *PhoneNumberDesc
	FixedLine               *PhoneNumberDesc
	Mobile                  *PhoneNumberDesc
	TollFree                *PhoneNumberDesc
	PremiumRate             *PhoneNumberDesc
	SharedCost              *PhoneNumberDesc
	PersonalNumber          *PhoneNumberDesc
	Voip                    *PhoneNumberDesc
	Pager                   *PhoneNumberDesc
	UAN                     *PhoneNumberDesc
	Voicemail               *PhoneNumberDesc
	NoInternationalDialling *PhoneNumberDesc
	Emergency               *PhoneNumberDesc
	ShortCode               *PhoneNumberDesc
	StandardRate            *PhoneNumberDesc
	CarrierSpecific         *PhoneNumberDesc
	SMSServices             *PhoneNumberDesc

	NumberFormats     []NumberFormat
	IntlNumberFormats []NumberFormat
}

// Collection is the compiled metadata table, one entry per input record in
// document order.
type Collection struct {
	Territories []*TerritoryMetadata
}

// ByID returns the first territory with the given region id, or nil.
func (c *Collection) ByID(id string) *TerritoryMetadata {
	if c == nil {
		return nil
	}
	for _, t := range c.Territories {
		if t.ID == id {
			return t
		}
	}
	return nil
}
