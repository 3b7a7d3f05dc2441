package parser

// Source records how a candidate matched the input.
type Source string

const (
	SourceExact  Source = "exact"
	SourcePrefix Source = "prefix"
	SourceLev    Source = "lev"
)

// Candidate is one scored match of user input against a known name.
type Candidate struct {
	Name   string
	Score  float64
	Source Source
}
