// Package report turns a needs aggregation into the annotated shopping list
// shown after every menu interaction.
package report

import (
	"fmt"
	"strings"

	"github.com/appengine-ltd/for-the-queen/internal/catalog"
	"github.com/appengine-ltd/for-the-queen/internal/needs"
)

// MinShared is the smallest species count a need must reach to be listed.
// Needs of a single species carry no planning signal.
const MinShared = 2

const (
	separator   = "-----------------------"
	conjunction = "or"
)

type LineKind int

const (
	LineSeparator LineKind = iota
	LineHeader
	LineNeed
	LineSlot
	LineNestedSlot
)

// Token is one annotated name. Selected means the user produces it.
type Token struct {
	Text     string
	Selected bool
}

// Line is one row of the report. Need and slot lines carry one token per
// alternative; header and separator lines carry a single plain token.
type Line struct {
	Kind   LineKind
	Indent int
	Tokens []Token
}

var prefixes = map[LineKind]string{
	LineNeed:       " > ",
	LineSlot:       "  > ",
	LineNestedSlot: "    > ",
}

// Annotated reports whether the line's tokens carry selection state.
func (l Line) Annotated() bool {
	switch l.Kind {
	case LineNeed, LineSlot, LineNestedSlot:
		return true
	}
	return false
}

// Render formats the line, passing each annotated token through style.
func (l Line) Render(style func(Token) string) string {
	if !l.Annotated() {
		parts := make([]string, len(l.Tokens))
		for i, t := range l.Tokens {
			parts[i] = t.Text
		}
		return strings.Join(parts, "")
	}
	parts := make([]string, len(l.Tokens))
	for i, t := range l.Tokens {
		parts[i] = style(t)
	}
	return prefixes[l.Kind] + Pluralize(parts, conjunction)
}

// Text is the uncolored rendering.
func (l Line) Text() string {
	return l.Render(func(t Token) string { return t.Text })
}

// Selection answers whether a display name is currently produced.
type Selection interface {
	IsSelected(name string) bool
}

// Names is a set of selected display names.
type Names map[string]bool

func (n Names) IsSelected(name string) bool { return n[name] }

// Build assembles the report for an aggregation. Each listed need is
// followed by its recipe slots; a slot with a single alternative is
// expanded one level further into that alternative's own recipe.
func Build(res needs.Result, sel Selection) []Line {
	var (
		lines []Line
		last  int
	)
	for _, c := range res.Counts {
		if c.Count < MinShared {
			continue
		}
		if c.Count != last {
			lines = append(lines,
				plain(LineSeparator, separator),
				plain(LineHeader, fmt.Sprintf("Needed by %d/%d species", c.Count, res.Species)),
				plain(LineSeparator, separator),
			)
			last = c.Count
		}

		lines = append(lines, Line{
			Kind:   LineNeed,
			Indent: 0,
			Tokens: []Token{annotate(c.Need.String(), sel)},
		})

		for _, s := range c.Need.Recipe() {
			lines = append(lines, slotLine(LineSlot, 1, s, sel))
			if len(s) == 1 {
				for _, nested := range s[0].Recipe() {
					lines = append(lines, slotLine(LineNestedSlot, 2, nested, sel))
				}
			}
		}
	}
	lines = append(lines, plain(LineSeparator, separator))
	return lines
}

// Text renders lines without color, one per row.
func Text(lines []Line) string {
	var b strings.Builder
	for _, l := range lines {
		b.WriteString(l.Text())
		b.WriteByte('\n')
	}
	return b.String()
}

func plain(kind LineKind, text string) Line {
	return Line{Kind: kind, Tokens: []Token{{Text: text}}}
}

func slotLine(kind LineKind, indent int, s catalog.Slot, sel Selection) Line {
	tokens := make([]Token, len(s))
	for i, r := range s {
		tokens[i] = annotate(r.String(), sel)
	}
	return Line{Kind: kind, Indent: indent, Tokens: tokens}
}

func annotate(name string, sel Selection) Token {
	return Token{Text: name, Selected: sel != nil && sel.IsSelected(name)}
}
