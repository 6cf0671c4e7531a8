// Package geo maps country names to continents and extracts country
// tokens from free-text destination strings.
package geo

import "strings"

// Continents returned by Continent. Antarctica is omitted; no destination
// data ever references it.
const (
	Africa       = "Africa"
	Asia         = "Asia"
	Europe       = "Europe"
	NorthAmerica = "North America"
	Oceania      = "Oceania"
	SouthAmerica = "South America"
)

var countryContinents = map[string]string{
	"Afghanistan":            Asia,
	"Albania":                Europe,
	"Algeria":                Africa,
	"Argentina":              SouthAmerica,
	"Armenia":                Asia,
	"Australia":              Oceania,
	"Austria":                Europe,
	"Azerbaijan":             Asia,
	"Bahamas":                NorthAmerica,
	"Bahrain":                Asia,
	"Bangladesh":             Asia,
	"Barbados":               NorthAmerica,
	"Belgium":                Europe,
	"Belize":                 NorthAmerica,
	"Bhutan":                 Asia,
	"Bolivia":                SouthAmerica,
	"Bosnia and Herzegovina": Europe,
	"Botswana":               Africa,
	"Brazil":                 SouthAmerica,
	"Brunei":                 Asia,
	"Bulgaria":               Europe,
	"Cambodia":               Asia,
	"Cameroon":               Africa,
	"Canada":                 NorthAmerica,
	"Chile":                  SouthAmerica,
	"China":                  Asia,
	"Colombia":               SouthAmerica,
	"Costa Rica":             NorthAmerica,
	"Croatia":                Europe,
	"Cuba":                   NorthAmerica,
	"Cyprus":                 Europe,
	"Czech Republic":         Europe,
	"Denmark":                Europe,
	"Dominican Republic":     NorthAmerica,
	"Ecuador":                SouthAmerica,
	"Egypt":                  Africa,
	"El Salvador":            NorthAmerica,
	"Estonia":                Europe,
	"Ethiopia":               Africa,
	"Fiji":                   Oceania,
	"Finland":                Europe,
	"France":                 Europe,
	"Georgia":                Asia,
	"Germany":                Europe,
	"Ghana":                  Africa,
	"Greece":                 Europe,
	"Guatemala":              NorthAmerica,
	"Honduras":               NorthAmerica,
	"Hungary":                Europe,
	"Iceland":                Europe,
	"India":                  Asia,
	"Indonesia":              Asia,
	"Iran":                   Asia,
	"Iraq":                   Asia,
	"Ireland":                Europe,
	"Israel":                 Asia,
	"Italy":                  Europe,
	"Jamaica":                NorthAmerica,
	"Japan":                  Asia,
	"Jordan":                 Asia,
	"Kazakhstan":             Asia,
	"Kenya":                  Africa,
	"Kuwait":                 Asia,
	"Kyrgyzstan":             Asia,
	"Laos":                   Asia,
	"Latvia":                 Europe,
	"Lebanon":                Asia,
	"Lithuania":              Europe,
	"Luxembourg":             Europe,
	"Madagascar":             Africa,
	"Malaysia":               Asia,
	"Maldives":               Asia,
	"Malta":                  Europe,
	"Mauritius":              Africa,
	"Mexico":                 NorthAmerica,
	"Monaco":                 Europe,
	"Mongolia":               Asia,
	"Montenegro":             Europe,
	"Morocco":                Africa,
	"Mozambique":             Africa,
	"Myanmar":                Asia,
	"Namibia":                Africa,
	"Nepal":                  Asia,
	"Netherlands":            Europe,
	"New Zealand":            Oceania,
	"Nicaragua":              NorthAmerica,
	"Nigeria":                Africa,
	"North Macedonia":        Europe,
	"Norway":                 Europe,
	"Oman":                   Asia,
	"Pakistan":               Asia,
	"Panama":                 NorthAmerica,
	"Papua New Guinea":       Oceania,
	"Paraguay":               SouthAmerica,
	"Peru":                   SouthAmerica,
	"Philippines":            Asia,
	"Poland":                 Europe,
	"Portugal":               Europe,
	"Qatar":                  Asia,
	"Romania":                Europe,
	"Russia":                 Europe,
	"Rwanda":                 Africa,
	"Saudi Arabia":           Asia,
	"Senegal":                Africa,
	"Serbia":                 Europe,
	"Seychelles":             Africa,
	"Singapore":              Asia,
	"Slovakia":               Europe,
	"Slovenia":               Europe,
	"South Africa":           Africa,
	"South Korea":            Asia,
	"Spain":                  Europe,
	"Sri Lanka":              Asia,
	"Sweden":                 Europe,
	"Switzerland":            Europe,
	"Taiwan":                 Asia,
	"Tanzania":               Africa,
	"Thailand":               Asia,
	"Tunisia":                Africa,
	"Turkey":                 Asia,
	"Uganda":                 Africa,
	"Ukraine":                Europe,
	"United Arab Emirates":   Asia,
	"United Kingdom":         Europe,
	"United States":          NorthAmerica,
	"Uruguay":                SouthAmerica,
	"Uzbekistan":             Asia,
	"Venezuela":              SouthAmerica,
	"Vietnam":                Asia,
	"Zambia":                 Africa,
	"Zimbabwe":               Africa,
}

// Continent returns the continent for a country name, matched exactly.
// The second return is false when the country is unknown; unknown
// countries still count toward the countries-visited total, they just
// contribute no continent.
func Continent(country string) (string, bool) {
	c, ok := countryContinents[country]
	return c, ok
}

// ExtractCountry pulls the country token out of a free-text destination.
// Destinations read "City, Country" or just "Country"; the token after
// the last comma, trimmed, is taken as the country. A single-segment
// destination is returned whole.
func ExtractCountry(destination string) string {
	idx := strings.LastIndex(destination, ",")
	if idx < 0 {
		return strings.TrimSpace(destination)
	}
	return strings.TrimSpace(destination[idx+1:])
}
