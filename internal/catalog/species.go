package catalog

import "fmt"

type Species int

const (
	Humans Species = iota
	Beavers
	Lizards
	Harpies
	Foxes

	speciesCount
)

var speciesSymbols = [speciesCount]string{
	Humans:  "Humans",
	Beavers: "Beavers",
	Lizards: "Lizards",
	Harpies: "Harpies",
	Foxes:   "Foxes",
}

var speciesNames [speciesCount]string

func init() {
	for s, sym := range speciesSymbols {
		speciesNames[s] = Titleize(sym)
	}
}

// AllSpecies lists species in menu order, which differs from identity
// order.
func AllSpecies() []Species {
	return []Species{Beavers, Humans, Harpies, Lizards, Foxes}
}

func (s Species) String() string {
	if s < 0 || s >= speciesCount {
		return fmt.Sprintf("Species(%d)", int(s))
	}
	return speciesNames[s]
}

// HousingNeeds are the building materials every species needs.
func HousingNeeds() []Need {
	return []Need{mustNeed(Planks), mustNeed(Fabric), mustNeed(Bricks)}
}

// Needs returns the species' own needs followed by the housing needs.
func (s Species) Needs() []Need {
	var own []Need
	switch s {
	case Beavers:
		own = []Need{
			mustNeed(Biscuits),
			mustNeed(PickledGoods),
			ServiceNeed(Education),
			ServiceNeed(Luxury),
			mustNeed(Coats),
		}
	case Harpies:
		own = []Need{
			mustNeed(Jerky),
			mustNeed(Paste),
			ServiceNeed(Education),
			ServiceNeed(Treatment),
			mustNeed(Coats),
			mustNeed(Boots),
		}
	case Humans:
		own = []Need{
			mustNeed(Porridge),
			mustNeed(Biscuits),
			mustNeed(Pie),
			ServiceNeed(Religion),
			ServiceNeed(Leisure),
			mustNeed(Coats),
		}
	case Lizards:
		own = []Need{
			mustNeed(Pie),
			mustNeed(PickledGoods),
			mustNeed(Jerky),
			mustNeed(Skewers),
			ServiceNeed(Brawling),
			mustNeed(Boots),
		}
	case Foxes:
		own = []Need{
			mustNeed(Porridge),
			mustNeed(Skewers),
			mustNeed(PickledGoods),
			mustNeed(Boots),
			ServiceNeed(Religion),
			ServiceNeed(Treatment),
		}
	default:
		panic("catalog: needs for unknown species " + s.String())
	}
	return append(own, HousingNeeds()...)
}

// ParseSpecies accepts display ("Beavers") or loosely cased ("beavers")
// names.
func ParseSpecies(value string) (Species, error) {
	want := Pascalize(value)
	for s, sym := range speciesSymbols {
		if sym == want {
			return Species(s), nil
		}
	}
	return 0, invalidValue("species", value, speciesNames[:])
}
