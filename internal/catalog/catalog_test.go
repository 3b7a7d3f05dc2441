package catalog

import (
	"errors"
	"reflect"
	"testing"
)

func TestTitleizeTable(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "PickledGoods", want: "Pickled Goods"},
		{in: "SeaMarrow", want: "Sea Marrow"},
		{in: "Wood", want: "Wood"},
		{in: "CrystallizedDew", want: "Crystallized Dew"},
		{in: "EditSimpleFood", want: "Edit Simple Food"},
		{in: "HTTPServer", want: "Http Server"},
		{in: "pickled goods", want: "Pickled Goods"},
	}
	for _, tc := range tests {
		if got := Titleize(tc.in); got != tc.want {
			t.Fatalf("Titleize(%q)=%q want=%q", tc.in, got, tc.want)
		}
	}
}

func TestPascalizeRoundTrip(t *testing.T) {
	for _, r := range AllResources() {
		if got := Pascalize(r.String()); got != r.Symbol() {
			t.Fatalf("Pascalize(%q)=%q want=%q", r.String(), got, r.Symbol())
		}
	}
}

func TestEveryResourceIsCatalogued(t *testing.T) {
	seen := map[string]bool{}
	for _, r := range AllResources() {
		if r.Symbol() == "" {
			t.Fatalf("resource %d has no symbol", int(r))
		}
		if seen[r.String()] {
			t.Fatalf("duplicate display name %q", r.String())
		}
		seen[r.String()] = true

		// Recipe panics for anything missing from the switch.
		for i, s := range r.Recipe() {
			if len(s) == 0 {
				t.Fatalf("%s slot %d is empty", r, i)
			}
			for _, alt := range s {
				if !alt.valid() {
					t.Fatalf("%s slot %d references invalid resource %d", r, i, int(alt))
				}
			}
		}
	}
	total := 0
	for _, c := range Categories() {
		total += len(ResourcesIn(c))
	}
	if total != len(AllResources()) {
		t.Fatalf("categories cover %d resources, catalog has %d", total, len(AllResources()))
	}
}

func TestRecipesAreAcyclic(t *testing.T) {
	const (
		unvisited = iota
		visiting
		done
	)
	state := map[Resource]int{}
	var visit func(r Resource, path []Resource)
	visit = func(r Resource, path []Resource) {
		switch state[r] {
		case visiting:
			t.Fatalf("cycle through %v", append(path, r))
		case done:
			return
		}
		state[r] = visiting
		for _, s := range r.Recipe() {
			for _, alt := range s {
				visit(alt, append(path, r))
			}
		}
		state[r] = done
	}
	for _, r := range AllResources() {
		visit(r, nil)
	}
}

func TestPotteryRecipe(t *testing.T) {
	want := Recipe{
		{Clay},
		{Wood, Oil, Coal, SeaMarrow},
	}
	if got := Pottery.Recipe(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Pottery recipe=%v want=%v", got, want)
	}
	if got := Clay.Recipe(); !reflect.DeepEqual(got, Recipe{{ClearanceWater}}) {
		t.Fatalf("Clay recipe=%v", got)
	}
}

func TestRecipeIsACopy(t *testing.T) {
	r := Pottery.Recipe()
	r[1][0] = Salt
	if Pottery.Recipe()[1][0] != Wood {
		t.Fatalf("mutating a returned recipe leaked into the catalog")
	}
	if CopperBars.Recipe()[1][0] != Wood {
		t.Fatalf("shared fuel slot was mutated")
	}
}

func TestCategoryMenusMatchCatalogOrder(t *testing.T) {
	tests := []struct {
		cat  Category
		want []Resource
	}{
		{cat: CategoryFuel, want: []Resource{Oil, Coal, SeaMarrow, Wood}},
		{cat: CategoryBuildingMaterial, want: []Resource{Planks, Fabric, Bricks}},
		{cat: CategoryClothing, want: []Resource{Coats, Boots}},
		{cat: CategoryConsumableItem, want: []Resource{Scrolls, Incense, TrainingGear, Wine, Ale, Tea}},
	}
	for _, tc := range tests {
		if got := ResourcesIn(tc.cat); !reflect.DeepEqual(got, tc.want) {
			t.Fatalf("ResourcesIn(%s)=%v want=%v", tc.cat, got, tc.want)
		}
	}
	if n := len(ResourcesIn(CategoryCraftingResource)); n != 22 {
		t.Fatalf("expected 22 crafting resources, got %d", n)
	}
}

func TestServiceProviders(t *testing.T) {
	want := map[Service]Resource{
		Education: Scrolls,
		Religion:  Incense,
		Treatment: Tea,
		Luxury:    Wine,
		Leisure:   Ale,
		Brawling:  TrainingGear,
	}
	for _, s := range AllServices() {
		if got := s.Recipe(); !reflect.DeepEqual(got, Recipe{{want[s]}}) {
			t.Fatalf("%s recipe=%v want [[%s]]", s, got, want[s])
		}
	}
}

func TestSpeciesNeeds(t *testing.T) {
	beavers := Beavers.Needs()
	want := []string{"Biscuits", "Pickled Goods", "Education", "Luxury", "Coats", "Planks", "Fabric", "Bricks"}
	if len(beavers) != len(want) {
		t.Fatalf("Beavers needs=%v", beavers)
	}
	for i, n := range beavers {
		if n.String() != want[i] {
			t.Fatalf("Beavers need %d=%q want %q", i, n, want[i])
		}
	}
	for _, s := range AllSpecies() {
		seen := map[Need]bool{}
		for _, n := range s.Needs() {
			if seen[n] {
				t.Fatalf("%s lists %s twice", s, n)
			}
			seen[n] = true
		}
	}
}

func TestResourceNeedRejectsNonNeedCategories(t *testing.T) {
	if _, err := ResourceNeed(Wood); !errors.Is(err, ErrInvalidCategoryValue) {
		t.Fatalf("expected ErrInvalidCategoryValue for fuel need, got %v", err)
	}
	n, err := ResourceNeed(Planks)
	if err != nil {
		t.Fatalf("ResourceNeed(Planks): %v", err)
	}
	if n.Kind() != NeedBuildingMaterial {
		t.Fatalf("expected building material kind, got %v", n.Kind())
	}
	if got := n.Recipe(); !reflect.DeepEqual(got, Recipe{{Wood}}) {
		t.Fatalf("Planks need recipe=%v", got)
	}
}

func TestCompareNeedsOrdersKindThenValue(t *testing.T) {
	coats := mustNeed(Coats)
	boots := mustNeed(Boots)
	pie := mustNeed(Pie)
	edu := ServiceNeed(Education)
	planks := mustNeed(Planks)

	ordered := []Need{coats, boots, pie, edu, planks}
	for i := 0; i+1 < len(ordered); i++ {
		if CompareNeeds(ordered[i], ordered[i+1]) >= 0 {
			t.Fatalf("expected %s < %s", ordered[i], ordered[i+1])
		}
	}
	if CompareNeeds(edu, ServiceNeed(Education)) != 0 {
		t.Fatalf("expected equal needs to compare 0")
	}
}

func TestParseLookups(t *testing.T) {
	r, err := ParseResource("pickled goods")
	if err != nil || r != PickledGoods {
		t.Fatalf("ParseResource=%v,%v", r, err)
	}
	s, err := ParseSpecies("Harpies")
	if err != nil || s != Harpies {
		t.Fatalf("ParseSpecies=%v,%v", s, err)
	}
	svc, err := ParseService("brawling")
	if err != nil || svc != Brawling {
		t.Fatalf("ParseService=%v,%v", svc, err)
	}
}

func TestParseInvalidValueSuggests(t *testing.T) {
	_, err := ParseSpecies("Beevers")
	if !errors.Is(err, ErrInvalidCategoryValue) {
		t.Fatalf("expected ErrInvalidCategoryValue, got %v", err)
	}
	var inv *InvalidValueError
	if !errors.As(err, &inv) {
		t.Fatalf("expected *InvalidValueError, got %T", err)
	}
	if len(inv.Suggestions) == 0 || inv.Suggestions[0] != "Beavers" {
		t.Fatalf("expected Beavers suggestion, got %+v", inv.Suggestions)
	}
}
