// Package selection tracks what the user has picked in each menu.
package selection

import (
	"errors"
	"fmt"

	"github.com/appengine-ltd/for-the-queen/internal/catalog"
	"github.com/appengine-ltd/for-the-queen/internal/parser"
)

// Option is a catalog entity that can appear in a menu.
type Option interface {
	comparable
	fmt.Stringer
}

// View is what a prompt needs to draw a menu with current picks checked.
type View struct {
	Options         []string
	SelectedIndexes []int
	IsEmpty         bool
}

// Menu is a checklist over a fixed option list. It is keyed by option
// identity; display strings are only used by Apply.
type Menu[T Option] struct {
	kind    string
	options []T
	checked []bool
	matcher *parser.Matcher
}

// NewMenu builds an unchecked menu. kind names the entity type in errors.
func NewMenu[T Option](kind string, options []T) *Menu[T] {
	names := make([]string, len(options))
	for i, o := range options {
		names[i] = o.String()
	}
	return &Menu[T]{
		kind:    kind,
		options: append([]T(nil), options...),
		checked: make([]bool, len(options)),
		matcher: parser.NewMatcher(names),
	}
}

func (m *Menu[T]) Options() []T {
	return append([]T(nil), m.options...)
}

func (m *Menu[T]) View() View {
	v := View{
		Options: make([]string, len(m.options)),
		IsEmpty: true,
	}
	for i, o := range m.options {
		v.Options[i] = o.String()
		if m.checked[i] {
			v.SelectedIndexes = append(v.SelectedIndexes, i)
			v.IsEmpty = false
		}
	}
	return v
}

// Select replaces the checked set with exactly the given items. Items not
// on the menu are ignored.
func (m *Menu[T]) Select(items []T) {
	want := make(map[T]bool, len(items))
	for _, it := range items {
		want[it] = true
	}
	next := make([]bool, len(m.options))
	for i, o := range m.options {
		next[i] = want[o]
	}
	m.checked = next
}

// Apply replaces the checked set from display strings. Strings that name
// no option select nothing and are reported in the returned error; the
// remaining strings are still applied.
func (m *Menu[T]) Apply(names []string) error {
	var (
		picked []T
		errs   []error
	)
	for _, name := range names {
		i, ok := m.index(name)
		if !ok {
			errs = append(errs, &catalog.InvalidValueError{
				Kind:        m.kind,
				Value:       name,
				Suggestions: m.matcher.Suggest(name, 3),
			})
			continue
		}
		picked = append(picked, m.options[i])
	}
	m.Select(picked)
	return errors.Join(errs...)
}

func (m *Menu[T]) index(name string) (int, bool) {
	for i, o := range m.options {
		if o.String() == name {
			return i, true
		}
	}
	resolved, ok := m.matcher.Resolve(name)
	if !ok {
		return 0, false
	}
	for i, o := range m.options {
		if o.String() == resolved {
			return i, true
		}
	}
	return 0, false
}

func (m *Menu[T]) Selected() []T {
	var out []T
	for i, o := range m.options {
		if m.checked[i] {
			out = append(out, o)
		}
	}
	return out
}

func (m *Menu[T]) SelectedStrings() []string {
	sel := m.Selected()
	out := make([]string, len(sel))
	for i, o := range sel {
		out[i] = o.String()
	}
	return out
}

func (m *Menu[T]) IsEmpty() bool {
	for _, c := range m.checked {
		if c {
			return false
		}
	}
	return true
}
