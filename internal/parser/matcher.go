// Package parser matches loosely typed input against a fixed set of names.
package parser

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

type entry struct {
	name     string
	key      string
	squashed string
}

// Matcher scores input against known display names. Exact matches ignore
// case, punctuation and spacing; near misses are scored by edit distance.
type Matcher struct {
	entries []entry
}

func NewMatcher(names []string) *Matcher {
	m := &Matcher{entries: make([]entry, 0, len(names))}
	for _, n := range names {
		m.Register(n)
	}
	return m
}

func (m *Matcher) Register(name string) {
	key := normaliseInput(name)
	if key == "" {
		return
	}
	m.entries = append(m.entries, entry{name: name, key: key, squashed: squash(key)})
}

// Resolve returns the single name the input denotes exactly.
func (m *Matcher) Resolve(raw string) (string, bool) {
	in := normaliseInput(raw)
	if in == "" {
		return "", false
	}
	sq := squash(in)
	for _, e := range m.entries {
		if e.key == in || e.squashed == sq {
			return e.name, true
		}
	}
	return "", false
}

// Candidates scores every known name against the input, best first.
func (m *Matcher) Candidates(raw string) []Candidate {
	in := normaliseInput(raw)
	if in == "" {
		return nil
	}
	sq := squash(in)

	cands := make([]Candidate, 0, len(m.entries))
	for _, e := range m.entries {
		switch {
		case e.key == in || e.squashed == sq:
			cands = append(cands, Candidate{Name: e.name, Score: 1.0, Source: SourceExact})
		case len(in) >= 2 && strings.HasPrefix(e.key, in):
			cands = append(cands, Candidate{Name: e.name, Score: 0.9, Source: SourcePrefix})
		default:
			if len(sq) < 3 {
				continue
			}
			dist := levenshtein.ComputeDistance(sq, e.squashed)
			if dist > levenshteinLimit(len(e.squashed)) {
				continue
			}
			score := 0.72 - (0.08 * float64(dist))
			if strings.Contains(in, e.key) {
				score += 0.04
			}
			cands = append(cands, Candidate{Name: e.name, Score: score, Source: SourceLev})
		}
	}

	sort.SliceStable(cands, func(i, j int) bool {
		if cands[i].Score == cands[j].Score {
			return cands[i].Name < cands[j].Name
		}
		return cands[i].Score > cands[j].Score
	})
	return cands
}

// Suggest returns up to n distinct names close to the input.
func (m *Matcher) Suggest(raw string, n int) []string {
	if n <= 0 {
		return nil
	}
	var out []string
	seen := map[string]bool{}
	for _, c := range m.Candidates(raw) {
		if seen[c.Name] {
			continue
		}
		seen[c.Name] = true
		out = append(out, c.Name)
		if len(out) >= n {
			break
		}
	}
	return out
}

func levenshteinLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}
