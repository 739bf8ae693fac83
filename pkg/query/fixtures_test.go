package query

import "github.com/sanonone/countrydb/pkg/country"

// fixture is a small dataset with deliberate ties: Cairo/Paris/Seoul have
// equal capital lengths, GB and FR share a population, and KR/KP share a
// first letter in Asia.
func fixture() []country.Country {
	return []country.Country{
		{Code: "EG", Name: "Egypt", Capital: "Cairo", Region: country.Africa, Population: 102334403, Area: 1002450},
		{Code: "NG", Name: "Nigeria", Capital: "Abuja", Region: country.Africa, Population: 206139587, Area: 923768},
		{Code: "BR", Name: "Brazil", Capital: "Brasília", Region: country.Americas, Population: 212559409, Area: 8515767},
		{Code: "CA", Name: "Canada", Capital: "Ottawa", Region: country.Americas, Population: 38005238, Area: 9984670},
		{Code: "KR", Name: "Korea (Republic of)", Capital: "Seoul", Region: country.Asia, Population: 51780579, Area: 100210},
		{Code: "KP", Name: "Korea (Democratic People's Republic of)", Capital: "Pyongyang", Region: country.Asia, Population: 25778815, Area: 120538},
		{Code: "FR", Name: "France", Capital: "Paris", Region: country.Europe, Population: 67391582, Area: 551695},
		{Code: "DE", Name: "Germany", Capital: "Berlin", Region: country.Europe, Population: 83240525, Area: 357114},
		{Code: "GB", Name: "United Kingdom", Capital: "London", Region: country.Europe, Population: 67391582, Area: 242900},
		{Code: "HU", Name: "Hungary", Capital: "Budapest", Region: country.Europe, Population: 9749763, Area: 93028},
		{Code: "AU", Name: "Australia", Capital: "Canberra", Region: country.Oceania, Population: 25687041, Area: 7692024},
	}
}

func codes(countries []country.Country) []string {
	out := make([]string, len(countries))
	for i, c := range countries {
		out[i] = c.Code
	}
	return out
}
