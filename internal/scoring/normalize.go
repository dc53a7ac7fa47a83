// Package scoring implements the multi-factor resume scoring primitives:
// text normalization, experience extraction, skill and keyword coverage,
// semantic similarity, and the final score aggregation.
package scoring

import (
	"regexp"
	"strings"
)

var whitespaceRe = regexp.MustCompile(`\s+`)

// Normalize lower-cases text, collapses whitespace runs (including newlines
// and tabs) to single spaces, and trims the ends. It is pure and idempotent;
// empty input yields empty output.
func Normalize(text string) string {
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(strings.ToLower(text), " "))
}
