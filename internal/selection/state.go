package selection

import (
	"fmt"
	"strings"

	"github.com/appengine-ltd/for-the-queen/internal/catalog"
	"github.com/appengine-ltd/for-the-queen/internal/parser"
)

// Kind names one editable menu.
type Kind int

const (
	KindSpecies Kind = iota
	KindServices
	KindFuel
	KindCraftingResources
	KindBuildingMaterials
	KindConsumableItems
	KindSimpleFood
	KindComplexFood
	KindClothing
)

var kindSymbols = [...]string{
	KindSpecies:           "Species",
	KindServices:          "Services",
	KindFuel:              "Fuel",
	KindCraftingResources: "CraftingResources",
	KindBuildingMaterials: "BuildingMaterials",
	KindConsumableItems:   "ConsumableItems",
	KindSimpleFood:        "SimpleFood",
	KindComplexFood:       "ComplexFood",
	KindClothing:          "Clothing",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindSymbols) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return catalog.Titleize(kindSymbols[k])
}

// Label is the router entry for the kind, e.g. "Edit Simple Food".
func (k Kind) Label() string {
	return catalog.Titleize("Edit" + kindSymbols[k])
}

// Title is the prompt shown above the kind's checklist.
func (k Kind) Title() string {
	switch k {
	case KindSpecies:
		return "Select your species:"
	case KindServices:
		return "Select services you can provide:"
	case KindFuel:
		return "Select the fuel you can produce:"
	}
	return fmt.Sprintf("Select the %s you can produce:", strings.ToLower(k.String()))
}

var resourceKinds = map[Kind]catalog.Category{
	KindFuel:              catalog.CategoryFuel,
	KindCraftingResources: catalog.CategoryCraftingResource,
	KindBuildingMaterials: catalog.CategoryBuildingMaterial,
	KindConsumableItems:   catalog.CategoryConsumableItem,
	KindSimpleFood:        catalog.CategorySimpleFood,
	KindComplexFood:       catalog.CategoryComplexFood,
	KindClothing:          catalog.CategoryClothing,
}

// RouterKinds lists the router entries in display order.
func RouterKinds() []Kind {
	return []Kind{
		KindSimpleFood,
		KindBuildingMaterials,
		KindFuel,
		KindCraftingResources,
		KindComplexFood,
		KindClothing,
		KindConsumableItems,
		KindServices,
		KindSpecies,
	}
}

// ParseLabel maps a router entry back to its kind.
func ParseLabel(label string) (Kind, error) {
	labels := make([]string, 0, len(kindSymbols))
	for _, k := range RouterKinds() {
		if k.Label() == label {
			return k, nil
		}
		labels = append(labels, k.Label())
	}
	return 0, &catalog.InvalidValueError{Kind: "menu", Value: label, Suggestions: parser.NewMatcher(labels).Suggest(label, 3)}
}

// State holds one menu per kind. It is owned by the interaction loop and
// changed only between renders.
type State struct {
	species   *Menu[catalog.Species]
	services  *Menu[catalog.Service]
	resources map[Kind]*Menu[catalog.Resource]
}

// NewState builds empty menus with the given resources pre-selected.
func NewState(preselected ...catalog.Resource) *State {
	s := &State{
		species:   NewMenu("species", catalog.AllSpecies()),
		services:  NewMenu("service", catalog.AllServices()),
		resources: make(map[Kind]*Menu[catalog.Resource], len(resourceKinds)),
	}
	for k, c := range resourceKinds {
		s.resources[k] = NewMenu(strings.ToLower(c.String()), catalog.ResourcesIn(c))
	}
	for k, c := range resourceKinds {
		var picks []catalog.Resource
		for _, r := range preselected {
			if r.Category() == c {
				picks = append(picks, r)
			}
		}
		s.resources[k].Select(picks)
	}
	return s
}

func (s *State) View(k Kind) (View, error) {
	switch k {
	case KindSpecies:
		return s.species.View(), nil
	case KindServices:
		return s.services.View(), nil
	}
	m, ok := s.resources[k]
	if !ok {
		return View{}, fmt.Errorf("view %s: %w", k, catalog.ErrInvalidCategoryValue)
	}
	return m.View(), nil
}

// Apply atomically replaces the selection of one menu.
func (s *State) Apply(k Kind, names []string) error {
	switch k {
	case KindSpecies:
		return s.species.Apply(names)
	case KindServices:
		return s.services.Apply(names)
	}
	m, ok := s.resources[k]
	if !ok {
		return fmt.Errorf("apply %s: %w", k, catalog.ErrInvalidCategoryValue)
	}
	return m.Apply(names)
}

func (s *State) SelectedSpecies() []catalog.Species {
	return s.species.Selected()
}

func (s *State) SpeciesEmpty() bool {
	return s.species.IsEmpty()
}

// SelectedNames is the combined set of selected service and resource
// display names.
func (s *State) SelectedNames() map[string]bool {
	out := make(map[string]bool)
	for _, name := range s.services.SelectedStrings() {
		out[name] = true
	}
	for _, m := range s.resources {
		for _, name := range m.SelectedStrings() {
			out[name] = true
		}
	}
	return out
}

