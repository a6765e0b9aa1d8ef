package match

import (
	"strings"
	"unicode"
)

// argumentPrefix is the prefix generated code puts in front of argument
// names when quantities are used; users sometimes copy it back into
// descriptions.
const argumentPrefix = "mfront_"

// NormalizeIdent lower-cases an identifier and strips separators and the
// generated argument prefix, so "mfront_Temperature", "temperature" and
// "Tempe_rature" compare equal.
func NormalizeIdent(s string) string {
	s = strings.TrimPrefix(s, argumentPrefix)

	var sb strings.Builder

	sb.Grow(len(s))

	for _, r := range s {
		if isSeparator(r) {
			continue
		}

		sb.WriteRune(unicode.ToLower(r))
	}

	return sb.String()
}

func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == ' ' || r == '.'
}
