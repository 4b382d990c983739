package search

import (
	"github.com/kailas-cloud/shelf/internal/domain/search/intent"
)

// MaxSuggestions caps the suggestion list.
const MaxSuggestions = 5

// GenerateSuggestions proposes alternate queries. Informational only: the
// result never feeds back into filtering or ranking.
func GenerateSuggestions(query string, in intent.Intent) []string {
	var out []string
	switch in {
	case intent.General:
		out = []string{
			`"` + query + `"`,
			query + " introduction",
			query + " advanced",
			query + " handbook",
			query + " guide",
		}
	case intent.Topic:
		out = []string{
			query + " textbook",
			query + " fundamentals",
			query + " principles",
			query + " theory",
			query + " practice",
		}
	case intent.Author:
		name := stripAuthorPrefix(query)
		if name == "" {
			return []string{}
		}
		out = []string{
			"books by " + name,
			name + " complete works",
			name + " collection",
		}
	default:
		return []string{}
	}
	if len(out) > MaxSuggestions {
		out = out[:MaxSuggestions]
	}
	return out
}
