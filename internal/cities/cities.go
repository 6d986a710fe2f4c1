// Package cities holds the embedded reference city/country table. It is the
// in-memory counterpart of the reference_cities table; the seeder writes the
// database copy from this list so the two sources cannot drift.
package cities

import (
	"strings"

	"leadflow/internal/core/domain"
)

var table = []domain.City{
	// 1M+
	{Name: "New York", Country: "United States", Bracket: domain.Bracket1MPlus},
	{Name: "Los Angeles", Country: "United States", Bracket: domain.Bracket1MPlus},
	{Name: "Chicago", Country: "United States", Bracket: domain.Bracket1MPlus},
	{Name: "Houston", Country: "United States", Bracket: domain.Bracket1MPlus},
	{Name: "Phoenix", Country: "United States", Bracket: domain.Bracket1MPlus},
	{Name: "Philadelphia", Country: "United States", Bracket: domain.Bracket1MPlus},
	{Name: "San Antonio", Country: "United States", Bracket: domain.Bracket1MPlus},
	{Name: "San Diego", Country: "United States", Bracket: domain.Bracket1MPlus},
	{Name: "Dallas", Country: "United States", Bracket: domain.Bracket1MPlus},
	{Name: "London", Country: "United Kingdom", Bracket: domain.Bracket1MPlus},
	{Name: "Birmingham", Country: "United Kingdom", Bracket: domain.Bracket1MPlus},
	{Name: "Toronto", Country: "Canada", Bracket: domain.Bracket1MPlus},
	{Name: "Montreal", Country: "Canada", Bracket: domain.Bracket1MPlus},
	{Name: "Sydney", Country: "Australia", Bracket: domain.Bracket1MPlus},
	{Name: "Melbourne", Country: "Australia", Bracket: domain.Bracket1MPlus},

	// 500K-1M
	{Name: "Austin", Country: "United States", Bracket: domain.Bracket500KTo1M},
	{Name: "Jacksonville", Country: "United States", Bracket: domain.Bracket500KTo1M},
	{Name: "Fort Worth", Country: "United States", Bracket: domain.Bracket500KTo1M},
	{Name: "Columbus", Country: "United States", Bracket: domain.Bracket500KTo1M},
	{Name: "Charlotte", Country: "United States", Bracket: domain.Bracket500KTo1M},
	{Name: "San Francisco", Country: "United States", Bracket: domain.Bracket500KTo1M},
	{Name: "Indianapolis", Country: "United States", Bracket: domain.Bracket500KTo1M},
	{Name: "Seattle", Country: "United States", Bracket: domain.Bracket500KTo1M},
	{Name: "Denver", Country: "United States", Bracket: domain.Bracket500KTo1M},
	{Name: "Boston", Country: "United States", Bracket: domain.Bracket500KTo1M},
	{Name: "Glasgow", Country: "United Kingdom", Bracket: domain.Bracket500KTo1M},
	{Name: "Leeds", Country: "United Kingdom", Bracket: domain.Bracket500KTo1M},
	{Name: "Winnipeg", Country: "Canada", Bracket: domain.Bracket500KTo1M},
	{Name: "Adelaide", Country: "Australia", Bracket: domain.Bracket500KTo1M},

	// 250K-500K
	{Name: "Miami", Country: "United States", Bracket: domain.Bracket250K500K},
	{Name: "Oakland", Country: "United States", Bracket: domain.Bracket250K500K},
	{Name: "Minneapolis", Country: "United States", Bracket: domain.Bracket250K500K},
	{Name: "Tulsa", Country: "United States", Bracket: domain.Bracket250K500K},
	{Name: "Tampa", Country: "United States", Bracket: domain.Bracket250K500K},
	{Name: "New Orleans", Country: "United States", Bracket: domain.Bracket250K500K},
	{Name: "Cleveland", Country: "United States", Bracket: domain.Bracket250K500K},
	{Name: "Manchester", Country: "United Kingdom", Bracket: domain.Bracket250K500K},
	{Name: "Bristol", Country: "United Kingdom", Bracket: domain.Bracket250K500K},
	{Name: "Halifax", Country: "Canada", Bracket: domain.Bracket250K500K},
	{Name: "Canberra", Country: "Australia", Bracket: domain.Bracket250K500K},

	// 100K-250K
	{Name: "Springfield", Country: "United States", Bracket: domain.Bracket100K250K},
	{Name: "Salem", Country: "United States", Bracket: domain.Bracket100K250K},
	{Name: "Eugene", Country: "United States", Bracket: domain.Bracket100K250K},
	{Name: "Fort Lauderdale", Country: "United States", Bracket: domain.Bracket100K250K},
	{Name: "Tempe", Country: "United States", Bracket: domain.Bracket100K250K},
	{Name: "Providence", Country: "United States", Bracket: domain.Bracket100K250K},
	{Name: "Knoxville", Country: "United States", Bracket: domain.Bracket100K250K},
	{Name: "Oxford", Country: "United Kingdom", Bracket: domain.Bracket100K250K},
	{Name: "Cambridge", Country: "United Kingdom", Bracket: domain.Bracket100K250K},
	{Name: "Kingston", Country: "Canada", Bracket: domain.Bracket100K250K},
	{Name: "Geelong", Country: "Australia", Bracket: domain.Bracket100K250K},

	// 50K-100K
	{Name: "Bozeman", Country: "United States", Bracket: domain.Bracket50K100K},
	{Name: "Santa Fe", Country: "United States", Bracket: domain.Bracket50K100K},
	{Name: "Flagstaff", Country: "United States", Bracket: domain.Bracket50K100K},
	{Name: "Missoula", Country: "United States", Bracket: domain.Bracket50K100K},
	{Name: "Napa", Country: "United States", Bracket: domain.Bracket50K100K},
	{Name: "Bath", Country: "United Kingdom", Bracket: domain.Bracket50K100K},
	{Name: "Chester", Country: "United Kingdom", Bracket: domain.Bracket50K100K},
	{Name: "Fredericton", Country: "Canada", Bracket: domain.Bracket50K100K},
	{Name: "Ballarat", Country: "Australia", Bracket: domain.Bracket50K100K},
}

// All returns the full reference table.
func All() []domain.City {
	out := make([]domain.City, len(table))
	copy(out, table)
	return out
}

// ForBracket returns the reference cities in the given bracket.
func ForBracket(b domain.CityBracket) []domain.City {
	var out []domain.City
	for _, c := range table {
		if c.Bracket == b {
			out = append(out, c)
		}
	}
	return out
}

// Names returns just the city names of the given list.
func Names(list []domain.City) []string {
	out := make([]string, len(list))
	for i, c := range list {
		out[i] = c.Name
	}
	return out
}

// CountryFor looks up the country for a city name, case-insensitively.
// When bracket is non-empty the search is restricted to that bracket;
// otherwise the whole table is scanned. Returns "" when unknown.
func CountryFor(name string, bracket domain.CityBracket) string {
	for _, c := range table {
		if bracket != "" && c.Bracket != bracket {
			continue
		}
		if strings.EqualFold(c.Name, name) {
			return c.Country
		}
	}
	if bracket != "" {
		// the stored bracket may not match where the city actually sits
		return CountryFor(name, "")
	}
	return ""
}
