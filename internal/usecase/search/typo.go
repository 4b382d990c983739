package search

import (
	"strings"
	"unicode"
)

// Correction is the outcome of typo correction.
type Correction struct {
	// Corrected is the query as lower-cased tokens joined by single spaces.
	Corrected string
	// Corrections lists each replacement as "typo → correction".
	Corrections []string
}

// CorrectTypos replaces whole tokens found in the misspelling table.
// Tokens are compared after non-word characters are stripped; substrings
// of a token are never corrected.
func CorrectTypos(query string) Correction {
	tokens := strings.Fields(query)
	out := make([]string, len(tokens))
	var corrections []string

	for i, tok := range tokens {
		cleaned := cleanToken(tok)
		if fix, ok := misspellings[cleaned]; ok {
			out[i] = fix
			corrections = append(corrections, cleaned+" → "+fix)
			continue
		}
		out[i] = strings.ToLower(tok)
	}

	return Correction{Corrected: strings.Join(out, " "), Corrections: corrections}
}

// cleanToken lower-cases tok and drops everything but letters, digits and underscores.
func cleanToken(tok string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
			return unicode.ToLower(r)
		}
		return -1
	}, tok)
}
