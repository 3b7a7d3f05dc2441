package catalog

// Slot is one ingredient position of a recipe. Any single alternative
// satisfies it.
type Slot []Resource

// Recipe is an AND of slots. An empty recipe marks a raw good.
type Recipe []Slot

// Strings renders the slot alternatives with their display names.
func (s Slot) Strings() []string {
	out := make([]string, len(s))
	for i, r := range s {
		out[i] = r.String()
	}
	return out
}

func slot(alts ...Resource) Slot { return append(Slot(nil), alts...) }

func recipe(slots ...Slot) Recipe { return Recipe(slots) }

var (
	anyFuel      = []Resource{Wood, Oil, Coal, SeaMarrow}
	anyContainer = []Resource{Pottery, Barrels, Waterskins}
)

// Recipe returns a fresh copy of the resource's recipe; callers may modify
// it freely.
func (r Resource) Recipe() Recipe {
	switch r {
	case Oil:
		return recipe(slot(Grain, Meat, Vegetables, PlantFiber, Fish))
	case Coal:
		return recipe(slot(Wood, Algae))
	case SeaMarrow, Wood:
		return nil

	case Pottery:
		return recipe(slot(Clay), slot(anyFuel...))
	case Waterskins:
		return recipe(slot(Leather, Scales), slot(Oil, Meat, Salt))
	case Barrels:
		return recipe(slot(CopperBars, CrystallizedDew), slot(Planks))
	case Leather:
		return recipe(slot(Algae, Reed, Grain, Vegetables))
	case Herbs:
		return recipe(slot(DrizzleWater))
	case Flour:
		return recipe(slot(Grain, Mushrooms, Roots, Algae))
	case Dye:
		return recipe(slot(Insects, Berries, CopperOre, Scales, Coal))
	case CopperBars:
		return recipe(slot(CopperOre, Scales), slot(anyFuel...))
	case CrystallizedDew:
		return recipe(
			slot(Herbs, Insects, Resin, Vegetables, Algae),
			slot(Stones, Clay, Salt),
			slot(StormWater, DrizzleWater, ClearanceWater),
		)
	case Clay, Reed, Resin:
		return recipe(slot(ClearanceWater))
	case DrizzleWater, StormWater, ClearanceWater, Algae, PlantFiber,
		Scales, Grain, Stones, Salt, CopperOre:
		return nil

	case Planks:
		return recipe(slot(Wood))
	case Fabric:
		return recipe(slot(PlantFiber, Reed, Algae))
	case Bricks:
		return recipe(slot(Clay, Stones))

	case Scrolls:
		return recipe(slot(Leather, PlantFiber, Wood), slot(Dye, Wine))
	case Incense:
		return recipe(slot(Herbs, Roots, Insects, Scales, Salt, Resin), slot(anyFuel...))
	case TrainingGear:
		return recipe(slot(Stones, CopperBars, CrystallizedDew), slot(Planks, Reed, Leather))
	case Wine:
		return recipe(slot(Berries, Mushrooms, Reed), slot(anyContainer...))
	case Ale:
		return recipe(slot(Grain, Roots), slot(anyContainer...))
	case Tea:
		return recipe(slot(Herbs, Dye, Resin, Mushrooms, Roots), slot(anyContainer...))

	case Mushrooms:
		return recipe(slot(DrizzleWater))
	case Roots, Vegetables, Fish, Insects, Berries:
		return nil
	case Meat:
		return recipe(slot(PlantFiber, Reed, Algae, Grain, Vegetables))
	case Eggs:
		return recipe(slot(Grain, Insects, Reed, Berries))

	case Porridge:
		return recipe(
			slot(Grain, Vegetables, Mushrooms, Herbs, Fish),
			slot(ClearanceWater, StormWater, DrizzleWater),
		)
	case Biscuits:
		return recipe(slot(Flour), slot(Herbs, Berries, Roots, Eggs, Salt))
	case Pie:
		return recipe(slot(Flour), slot(Herbs, Meat, Insects, Berries, Fish))
	case PickledGoods:
		return recipe(slot(Vegetables, Mushrooms, Roots, Berries, Eggs), slot(anyContainer...))
	case Jerky:
		return recipe(slot(Insects, Meat), slot(Salt, Wood, SeaMarrow, Coal, Oil))
	case Paste:
		return recipe(slot(Dye, Salt), slot(Eggs, Fish, Meat))
	case Skewers:
		return recipe(
			slot(Insects, Meat, Mushrooms, Fish, Jerky),
			slot(Vegetables, Roots, Berries, Eggs),
		)

	case Coats:
		return recipe(slot(Fabric, Leather), slot(Dye, Resin))
	case Boots:
		return recipe(slot(Leather, Scales))
	}
	panic("catalog: recipe for unknown resource " + r.String())
}

// IsRaw reports whether the resource has no recipe.
func (r Resource) IsRaw() bool {
	return len(r.Recipe()) == 0
}
