package domain

// CityBracket is a population-range label used to pick a reference city
// list when a campaign has no explicit cities.
type CityBracket string

const (
	Bracket1MPlus   CityBracket = "1M+"
	Bracket500KTo1M CityBracket = "500K-1M"
	Bracket250K500K CityBracket = "250K-500K"
	Bracket100K250K CityBracket = "100K-250K"
	Bracket50K100K  CityBracket = "50K-100K"
)

// Brackets lists all recognized population brackets, largest first.
var Brackets = []CityBracket{
	Bracket1MPlus,
	Bracket500KTo1M,
	Bracket250K500K,
	Bracket100K250K,
	Bracket50K100K,
}

func (b CityBracket) Valid() bool {
	for _, v := range Brackets {
		if b == v {
			return true
		}
	}
	return false
}

// City is one entry of the reference city/country table.
type City struct {
	Name    string
	Country string
	Bracket CityBracket
}
