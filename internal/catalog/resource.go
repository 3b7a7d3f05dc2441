// Package catalog holds the static production graph: every resource,
// service and species, the recipes that produce them and the needs each
// species has.
package catalog

import "fmt"

type Category int

const (
	CategoryFuel Category = iota
	CategoryCraftingResource
	CategoryBuildingMaterial
	CategoryConsumableItem
	CategorySimpleFood
	CategoryComplexFood
	CategoryClothing
)

var categorySymbols = [...]string{
	CategoryFuel:             "Fuel",
	CategoryCraftingResource: "CraftingResource",
	CategoryBuildingMaterial: "BuildingMaterial",
	CategoryConsumableItem:   "ConsumableItem",
	CategorySimpleFood:       "SimpleFood",
	CategoryComplexFood:      "ComplexFood",
	CategoryClothing:         "Clothing",
}

func (c Category) String() string {
	if c < 0 || int(c) >= len(categorySymbols) {
		return fmt.Sprintf("Category(%d)", int(c))
	}
	return Titleize(categorySymbols[c])
}

func Categories() []Category {
	return []Category{
		CategoryFuel,
		CategoryCraftingResource,
		CategoryBuildingMaterial,
		CategoryConsumableItem,
		CategorySimpleFood,
		CategoryComplexFood,
		CategoryClothing,
	}
}

// Resource identifies one producible good. Constants are declared grouped
// by category, so integer order is category order then declaration order.
type Resource int

const (
	// Fuel
	Oil Resource = iota
	Coal
	SeaMarrow
	Wood

	// Crafting resources
	Pottery
	Waterskins
	Barrels
	DrizzleWater
	StormWater
	ClearanceWater
	Resin
	Leather
	Algae
	PlantFiber
	Scales
	Reed
	Herbs
	Flour
	Grain
	Dye
	CopperBars
	CrystallizedDew
	Stones
	Clay
	Salt
	CopperOre

	// Building materials
	Planks
	Fabric
	Bricks

	// Consumable items
	Scrolls
	Incense
	TrainingGear
	Wine
	Ale
	Tea

	// Simple food
	Mushrooms
	Roots
	Vegetables
	Fish
	Meat
	Eggs
	Insects
	Berries

	// Complex food
	Porridge
	Biscuits
	Pie
	PickledGoods
	Jerky
	Paste
	Skewers

	// Clothing
	Coats
	Boots

	resourceCount
)

type resourceInfo struct {
	symbol   string
	category Category
}

var resourceTable = [resourceCount]resourceInfo{
	Oil:       {"Oil", CategoryFuel},
	Coal:      {"Coal", CategoryFuel},
	SeaMarrow: {"SeaMarrow", CategoryFuel},
	Wood:      {"Wood", CategoryFuel},

	Pottery:         {"Pottery", CategoryCraftingResource},
	Waterskins:      {"Waterskins", CategoryCraftingResource},
	Barrels:         {"Barrels", CategoryCraftingResource},
	DrizzleWater:    {"DrizzleWater", CategoryCraftingResource},
	StormWater:      {"StormWater", CategoryCraftingResource},
	ClearanceWater:  {"ClearanceWater", CategoryCraftingResource},
	Resin:           {"Resin", CategoryCraftingResource},
	Leather:         {"Leather", CategoryCraftingResource},
	Algae:           {"Algae", CategoryCraftingResource},
	PlantFiber:      {"PlantFiber", CategoryCraftingResource},
	Scales:          {"Scales", CategoryCraftingResource},
	Reed:            {"Reed", CategoryCraftingResource},
	Herbs:           {"Herbs", CategoryCraftingResource},
	Flour:           {"Flour", CategoryCraftingResource},
	Grain:           {"Grain", CategoryCraftingResource},
	Dye:             {"Dye", CategoryCraftingResource},
	CopperBars:      {"CopperBars", CategoryCraftingResource},
	CrystallizedDew: {"CrystallizedDew", CategoryCraftingResource},
	Stones:          {"Stones", CategoryCraftingResource},
	Clay:            {"Clay", CategoryCraftingResource},
	Salt:            {"Salt", CategoryCraftingResource},
	CopperOre:       {"CopperOre", CategoryCraftingResource},

	Planks: {"Planks", CategoryBuildingMaterial},
	Fabric: {"Fabric", CategoryBuildingMaterial},
	Bricks: {"Bricks", CategoryBuildingMaterial},

	Scrolls:      {"Scrolls", CategoryConsumableItem},
	Incense:      {"Incense", CategoryConsumableItem},
	TrainingGear: {"TrainingGear", CategoryConsumableItem},
	Wine:         {"Wine", CategoryConsumableItem},
	Ale:          {"Ale", CategoryConsumableItem},
	Tea:          {"Tea", CategoryConsumableItem},

	Mushrooms:  {"Mushrooms", CategorySimpleFood},
	Roots:      {"Roots", CategorySimpleFood},
	Vegetables: {"Vegetables", CategorySimpleFood},
	Fish:       {"Fish", CategorySimpleFood},
	Meat:       {"Meat", CategorySimpleFood},
	Eggs:       {"Eggs", CategorySimpleFood},
	Insects:    {"Insects", CategorySimpleFood},
	Berries:    {"Berries", CategorySimpleFood},

	Porridge:     {"Porridge", CategoryComplexFood},
	Biscuits:     {"Biscuits", CategoryComplexFood},
	Pie:          {"Pie", CategoryComplexFood},
	PickledGoods: {"PickledGoods", CategoryComplexFood},
	Jerky:        {"Jerky", CategoryComplexFood},
	Paste:        {"Paste", CategoryComplexFood},
	Skewers:      {"Skewers", CategoryComplexFood},

	Coats: {"Coats", CategoryClothing},
	Boots: {"Boots", CategoryClothing},
}

var resourceNames [resourceCount]string

func init() {
	for r, info := range resourceTable {
		resourceNames[r] = Titleize(info.symbol)
	}
}

func (r Resource) valid() bool {
	return r >= 0 && r < resourceCount
}

// String returns the display name, e.g. "Sea Marrow".
func (r Resource) String() string {
	if !r.valid() {
		return fmt.Sprintf("Resource(%d)", int(r))
	}
	return resourceNames[r]
}

// Symbol returns the symbolic name, e.g. "SeaMarrow".
func (r Resource) Symbol() string {
	if !r.valid() {
		return ""
	}
	return resourceTable[r].symbol
}

func (r Resource) Category() Category {
	return resourceTable[r].category
}

// AllResources lists every resource in catalog order.
func AllResources() []Resource {
	out := make([]Resource, 0, resourceCount)
	for r := Resource(0); r < resourceCount; r++ {
		out = append(out, r)
	}
	return out
}

// ResourcesIn lists the members of one category in menu order.
func ResourcesIn(c Category) []Resource {
	var out []Resource
	for _, r := range AllResources() {
		if r.Category() == c {
			out = append(out, r)
		}
	}
	return out
}

// ParseResource resolves a display or symbolic name.
func ParseResource(value string) (Resource, error) {
	want := Pascalize(value)
	for r, info := range resourceTable {
		if info.symbol == want {
			return Resource(r), nil
		}
	}
	return 0, invalidValue("resource", value, resourceNames[:])
}
