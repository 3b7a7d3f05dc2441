package needs

import (
	"testing"

	"github.com/appengine-ltd/for-the-queen/internal/catalog"
)

func need(t *testing.T, r catalog.Resource) catalog.Need {
	t.Helper()
	n, err := catalog.ResourceNeed(r)
	if err != nil {
		t.Fatalf("ResourceNeed(%s): %v", r, err)
	}
	return n
}

func TestAggregateEmpty(t *testing.T) {
	res := Aggregate(nil)
	if len(res.Counts) != 0 {
		t.Fatalf("expected no counts, got %+v", res.Counts)
	}
	if res.Species != 0 {
		t.Fatalf("expected 0 species, got %d", res.Species)
	}
}

func TestBeaversAndHumansShareCoats(t *testing.T) {
	res := Aggregate([]catalog.Species{catalog.Beavers, catalog.Humans})
	if res.Species != 2 {
		t.Fatalf("expected 2 species, got %d", res.Species)
	}
	if got := res.Of(need(t, catalog.Coats)); got != 2 {
		t.Fatalf("expected Coats=2, got %d", got)
	}
	if got := res.Of(need(t, catalog.Biscuits)); got != 2 {
		t.Fatalf("expected Biscuits=2, got %d", got)
	}
	if got := res.Of(need(t, catalog.Porridge)); got != 1 {
		t.Fatalf("expected Porridge=1, got %d", got)
	}
	if got := res.Of(catalog.ServiceNeed(catalog.Brawling)); got != 0 {
		t.Fatalf("expected Brawling=0, got %d", got)
	}
}

func TestAggregateMatchesMembership(t *testing.T) {
	all := catalog.AllSpecies()
	// Every subset of the species catalog.
	for mask := 0; mask < 1<<len(all); mask++ {
		var picked []catalog.Species
		for i, s := range all {
			if mask&(1<<i) != 0 {
				picked = append(picked, s)
			}
		}
		res := Aggregate(picked)
		for _, c := range res.Counts {
			want := 0
			for _, s := range picked {
				for _, n := range s.Needs() {
					if n == c.Need {
						want++
					}
				}
			}
			if c.Count != want {
				t.Fatalf("%v: %s count=%d want=%d", picked, c.Need, c.Count, want)
			}
			if c.Count > len(picked) {
				t.Fatalf("%v: %s count %d exceeds species %d", picked, c.Need, c.Count, len(picked))
			}
		}
	}
}

func TestAggregateOrdering(t *testing.T) {
	res := Aggregate(catalog.AllSpecies())
	for i := 0; i+1 < len(res.Counts); i++ {
		a, b := res.Counts[i], res.Counts[i+1]
		if a.Count < b.Count {
			t.Fatalf("counts not descending at %d: %+v then %+v", i, a, b)
		}
		if a.Count == b.Count && catalog.CompareNeeds(a.Need, b.Need) >= 0 {
			t.Fatalf("tie not broken by need order at %d: %s then %s", i, a.Need, b.Need)
		}
	}
	// Housing is shared by all five; building materials sort after the
	// other kinds within the same count.
	top := res.Counts[:3]
	want := []string{"Planks", "Fabric", "Bricks"}
	for i, c := range top {
		if c.Count != 5 || c.Need.String() != want[i] {
			t.Fatalf("expected %s=5 at %d, got %s=%d", want[i], i, c.Need, c.Count)
		}
	}
}

func TestSharedDropsSingles(t *testing.T) {
	res := Aggregate([]catalog.Species{catalog.Lizards, catalog.Foxes})
	for _, c := range res.Shared(2) {
		if c.Count < 2 {
			t.Fatalf("Shared(2) kept %s=%d", c.Need, c.Count)
		}
	}
	if got := res.Of(need(t, catalog.Skewers)); got != 2 {
		t.Fatalf("expected Skewers=2, got %d", got)
	}
}
