package report

import (
	"fmt"
	"strings"
)

// Pluralize joins alternatives with a conjunction:
//
//	[]            -> "None"
//	[a]           -> "a"
//	[a b]         -> "a or b"
//	[a b c]       -> "a, b, or c"
func Pluralize(options []string, word string) string {
	switch len(options) {
	case 0:
		return "None"
	case 1:
		return options[0]
	case 2:
		return fmt.Sprintf("%s %s %s", options[0], word, options[1])
	default:
		last := len(options) - 1
		return fmt.Sprintf("%s, %s %s", strings.Join(options[:last], ", "), word, options[last])
	}
}
