package metadata

// CountryCodeToRegionMap derives the country-calling-code index from a
// compiled collection: each code maps to the region ids that share it, with
// the territory flagged main-country-for-code first and the rest in
// encounter order.
func CountryCodeToRegionMap(c *Collection) map[int][]string {
	out := make(map[int][]string)
	if c == nil {
		return out
	}
	for _, t := range c.Territories {
		regions := out[t.CountryCode]
		if t.MainCountryForCode {
			regions = append([]string{t.ID}, regions...)
		} else {
			regions = append(regions, t.ID)
		}
		out[t.CountryCode] = regions
	}
	return out
}
