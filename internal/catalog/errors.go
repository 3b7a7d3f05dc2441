package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/appengine-ltd/for-the-queen/internal/parser"
)

// ErrInvalidCategoryValue is returned when a string names no entity of the
// requested kind.
var ErrInvalidCategoryValue = errors.New("invalid category value")

// InvalidValueError carries the rejected value and close matches for it.
type InvalidValueError struct {
	Kind        string
	Value       string
	Suggestions []string
}

func (e *InvalidValueError) Error() string {
	msg := fmt.Sprintf("%q is not a valid %s", e.Value, e.Kind)
	if len(e.Suggestions) > 0 {
		msg += fmt.Sprintf(" (did you mean %s?)", strings.Join(e.Suggestions, ", "))
	}
	return msg
}

func (e *InvalidValueError) Unwrap() error {
	return ErrInvalidCategoryValue
}

const maxSuggestions = 3

func invalidValue(kind, value string, known []string) error {
	return &InvalidValueError{
		Kind:        kind,
		Value:       value,
		Suggestions: parser.NewMatcher(known).Suggest(value, maxSuggestions),
	}
}
