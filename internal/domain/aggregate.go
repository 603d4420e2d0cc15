package domain

import (
	"sort"
	"strings"
)

// UnknownType is the bucket for records with a missing TYPE_SUMMARY field.
const UnknownType = "Unknown"

// CountryCount is one row of a country ranking.
type CountryCount struct {
	Country string
	Count   int
}

// TypeCount is one row of a vessel type tally.
type TypeCount struct {
	Type  string
	Count int
}

// UniqueCountries returns the distinct COUNTRY values across the fleet,
// sorted ascending. Records without a country are skipped.
func (f Fleet) UniqueCountries() []string {
	seen := make(map[string]bool)
	var countries []string
	for _, ship := range f {
		if ship.Country == "" || seen[ship.Country] {
			continue
		}
		seen[ship.Country] = true
		countries = append(countries, ship.Country)
	}
	sort.Strings(countries)
	return countries
}

// TopCountries ranks countries by ship count, descending, ties broken by
// country name ascending. At most n rows are returned; when fewer than n
// distinct countries exist, all of them are. n <= 0 yields nil.
func (f Fleet) TopCountries(n int) []CountryCount {
	if n <= 0 {
		return nil
	}

	counts := make(map[string]int)
	for _, ship := range f {
		if ship.Country == "" {
			continue
		}
		counts[ship.Country]++
	}

	ranking := make([]CountryCount, 0, len(counts))
	for country, count := range counts {
		ranking = append(ranking, CountryCount{Country: country, Count: count})
	}
	sort.Slice(ranking, func(i, j int) bool {
		if ranking[i].Count != ranking[j].Count {
			return ranking[i].Count > ranking[j].Count
		}
		return ranking[i].Country < ranking[j].Country
	})

	if len(ranking) > n {
		ranking = ranking[:n]
	}
	return ranking
}

// TypeCounts tallies ships by TYPE_SUMMARY. Records without a type are
// grouped under [UnknownType]. Rows are sorted descending by count, ties
// broken by type name ascending.
func (f Fleet) TypeCounts() []TypeCount {
	counts := make(map[string]int)
	for _, ship := range f {
		shipType := ship.Type
		if shipType == "" {
			shipType = UnknownType
		}
		counts[shipType]++
	}

	tally := make([]TypeCount, 0, len(counts))
	for shipType, count := range counts {
		tally = append(tally, TypeCount{Type: shipType, Count: count})
	}
	sort.Slice(tally, func(i, j int) bool {
		if tally[i].Count != tally[j].Count {
			return tally[i].Count > tally[j].Count
		}
		return tally[i].Type < tally[j].Type
	})
	return tally
}

// SearchByName returns the ships whose name contains term, compared
// case-insensitively. Matches keep their original dataset order. An empty
// term matches every record.
func (f Fleet) SearchByName(term string) []Ship {
	term = strings.ToLower(term)
	var matches []Ship
	for _, ship := range f {
		if strings.Contains(strings.ToLower(ship.Name), term) {
			matches = append(matches, ship)
		}
	}
	return matches
}

// Speeds returns every successfully parsed speed value, in dataset order.
func (f Fleet) Speeds() []float64 {
	var speeds []float64
	for _, ship := range f {
		if ship.Speed != nil {
			speeds = append(speeds, *ship.Speed)
		}
	}
	return speeds
}

// Positions returns every successfully parsed coordinate pair, in dataset order.
func (f Fleet) Positions() []Geo {
	var positions []Geo
	for _, ship := range f {
		if ship.Position != nil {
			positions = append(positions, *ship.Position)
		}
	}
	return positions
}
