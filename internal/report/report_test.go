package report

import (
	"strings"
	"testing"

	"github.com/appengine-ltd/for-the-queen/internal/catalog"
	"github.com/appengine-ltd/for-the-queen/internal/needs"
)

func TestPluralizeTable(t *testing.T) {
	tests := []struct {
		in   []string
		want string
	}{
		{in: nil, want: "None"},
		{in: []string{"a"}, want: "a"},
		{in: []string{"a", "b"}, want: "a or b"},
		{in: []string{"a", "b", "c"}, want: "a, b, or c"},
		{in: []string{"Wood", "Oil", "Coal"}, want: "Wood, Oil, or Coal"},
		{in: []string{"Wood", "Oil", "Coal", "Sea Marrow"}, want: "Wood, Oil, Coal, or Sea Marrow"},
	}
	for _, tc := range tests {
		if got := Pluralize(tc.in, "or"); got != tc.want {
			t.Fatalf("Pluralize(%q)=%q want=%q", tc.in, got, tc.want)
		}
	}
	if got := Pluralize([]string{"x", "y"}, "and"); got != "x and y" {
		t.Fatalf("custom conjunction: got %q", got)
	}
}

func TestBuildEmptySelection(t *testing.T) {
	lines := Build(needs.Aggregate(nil), nil)
	if len(lines) != 1 || lines[0].Kind != LineSeparator {
		t.Fatalf("expected only the closing separator, got %+v", lines)
	}
}

func TestBeaversAndHumansReport(t *testing.T) {
	res := needs.Aggregate([]catalog.Species{catalog.Beavers, catalog.Humans})
	lines := Build(res, Names{"Wood": true, "Coats": true})
	text := Text(lines)

	if !strings.Contains(text, "Needed by 2/2 species\n") {
		t.Fatalf("missing 2/2 header:\n%s", text)
	}
	if strings.Count(text, "Needed by 2/2 species") != 1 {
		t.Fatalf("header repeated:\n%s", text)
	}

	var coats *Line
	for i := range lines {
		if lines[i].Kind == LineNeed && lines[i].Tokens[0].Text == "Coats" {
			coats = &lines[i]
		}
	}
	if coats == nil {
		t.Fatalf("missing Coats line:\n%s", text)
	}
	if !coats.Tokens[0].Selected {
		t.Fatalf("expected Coats to be annotated selected")
	}
	if strings.Contains(text, " > Porridge") {
		t.Fatalf("single-species need leaked into report:\n%s", text)
	}
}

func TestReportSuppressesSingles(t *testing.T) {
	all := catalog.AllSpecies()
	for mask := 0; mask < 1<<len(all); mask++ {
		var picked []catalog.Species
		for i, s := range all {
			if mask&(1<<i) != 0 {
				picked = append(picked, s)
			}
		}
		res := needs.Aggregate(picked)
		for _, l := range Build(res, nil) {
			if l.Kind != LineNeed {
				continue
			}
			for _, c := range res.Counts {
				if c.Need.String() == l.Tokens[0].Text && c.Count < MinShared {
					t.Fatalf("%v: need %s with count %d listed", picked, c.Need, c.Count)
				}
			}
		}
	}
}

func TestHeadersFollowCountGroups(t *testing.T) {
	res := needs.Aggregate(catalog.AllSpecies())
	lines := Build(res, nil)
	var headers []string
	for _, l := range lines {
		if l.Kind == LineHeader {
			headers = append(headers, l.Text())
		}
	}
	want := []string{
		"Needed by 5/5 species",
		"Needed by 3/5 species",
		"Needed by 2/5 species",
	}
	if strings.Join(headers, "|") != strings.Join(want, "|") {
		t.Fatalf("headers=%q want=%q", headers, want)
	}
}

func TestSingleAlternativeSlotExpandsOneLevel(t *testing.T) {
	// Pottery is not a need, so exercise the expansion through Biscuits,
	// whose first slot is Flour alone.
	res := needs.Aggregate([]catalog.Species{catalog.Beavers, catalog.Humans})
	lines := Build(res, nil)
	text := Text(lines)
	want := " > Biscuits\n" +
		"  > Flour\n" +
		"    > Grain, Mushrooms, Roots, or Algae\n" +
		"  > Herbs, Berries, Roots, Eggs, or Salt\n"
	if !strings.Contains(text, want) {
		t.Fatalf("expected nested flour expansion:\n%s", text)
	}
}

func TestNestedExpansionStopsAtOneLevel(t *testing.T) {
	// Planks -> [Wood]; Wood is raw so nothing nests. Bricks -> [Clay,
	// Stones] has two alternatives so nothing nests either.
	res := needs.Aggregate([]catalog.Species{catalog.Lizards, catalog.Foxes})
	lines := Build(res, nil)
	for i, l := range lines {
		if l.Kind != LineNestedSlot {
			continue
		}
		prev := lines[i-1]
		if prev.Kind != LineSlot && prev.Kind != LineNestedSlot {
			t.Fatalf("nested line %q not under a slot", l.Text())
		}
		if l.Indent != 2 {
			t.Fatalf("nested line at indent %d", l.Indent)
		}
	}
	text := Text(lines)
	if !strings.Contains(text, " > Planks\n  > Wood\n > Fabric\n") {
		t.Fatalf("expected planks without nested lines:\n%s", text)
	}
}

func TestServiceNeedNestsProviderRecipe(t *testing.T) {
	// Religion is shared by Humans and Foxes and resolves to [[Incense]].
	res := needs.Aggregate([]catalog.Species{catalog.Humans, catalog.Foxes})
	text := Text(Build(res, Names{"Incense": true}))
	want := " > Religion\n" +
		"  > Incense\n" +
		"    > Herbs, Roots, Insects, Scales, Salt, or Resin\n" +
		"    > Wood, Oil, Coal, or Sea Marrow\n"
	if !strings.Contains(text, want) {
		t.Fatalf("expected religion expansion:\n%s", text)
	}
}

func TestPotterySlotsRenderWithNestedClay(t *testing.T) {
	r := catalog.Pottery.Recipe()
	var lines []Line
	for _, s := range r {
		lines = append(lines, slotLine(LineSlot, 1, s, nil))
		if len(s) == 1 {
			for _, nested := range s[0].Recipe() {
				lines = append(lines, slotLine(LineNestedSlot, 2, nested, nil))
			}
		}
	}
	want := "  > Clay\n    > Clearance Water\n  > Wood, Oil, Coal, or Sea Marrow\n"
	if got := Text(lines); got != want {
		t.Fatalf("pottery rendering=%q want=%q", got, want)
	}
}

func TestRenderStylesEachToken(t *testing.T) {
	l := Line{Kind: LineSlot, Indent: 1, Tokens: []Token{
		{Text: "Wood", Selected: true},
		{Text: "Oil"},
	}}
	got := l.Render(func(t Token) string {
		if t.Selected {
			return "[" + t.Text + "]"
		}
		return t.Text
	})
	if got != "  > [Wood] or Oil" {
		t.Fatalf("Render=%q", got)
	}
	header := plain(LineHeader, "Needed by 2/2 species")
	if got := header.Render(func(Token) string { return "x" }); got != "Needed by 2/2 species" {
		t.Fatalf("header should not be styled, got %q", got)
	}
}
