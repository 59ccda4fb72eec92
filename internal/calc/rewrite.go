package calc

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// sciLiteral matches display-formatted numbers such as "1.989 × 10**-25"
// after "^" has been rewritten.
var sciLiteral = regexp.MustCompile(`(\d+\.?\d*)\s*×\s*10\*\*([+-]?\d+)`)

// Rewrite turns user-facing syntax into the evaluator's grammar: the input is
// NFC-normalized, "^" becomes "**", and M×10^E literals become (M * 10**E).
func Rewrite(raw string) string {
	s := norm.NFC.String(raw)
	s = strings.ReplaceAll(s, "^", "**")
	return sciLiteral.ReplaceAllString(s, "($1 * 10**$2)")
}
