package search

import (
	"regexp"
	"strings"

	"github.com/kailas-cloud/shelf/internal/domain/search/intent"
)

// ExpandQuery returns query followed by its synonym and author-name variants.
// The query itself is always first and duplicates are dropped.
func ExpandQuery(query string, in intent.Intent) []string {
	terms := newTermSet(query)

	for _, tok := range strings.Fields(strings.ToLower(query)) {
		alts, ok := synonyms[tok]
		if !ok {
			continue
		}
		re := regexp.MustCompile(`(?i)` + regexp.QuoteMeta(tok))
		for _, alt := range alts {
			terms.add(re.ReplaceAllLiteralString(query, alt))
		}
	}

	if in == intent.Author {
		name := stripAuthorPrefix(query)
		terms.add(name)
		if parts := strings.Fields(name); len(parts) >= 2 {
			last := parts[len(parts)-1]
			first := strings.Join(parts[:len(parts)-1], " ")
			terms.add(last + ", " + first)
			terms.add(string([]rune(parts[0])[:1]) + ". " + last)
		}
	}

	return terms.list
}

// termSet is an insertion-ordered set of non-empty strings.
type termSet struct {
	seen map[string]struct{}
	list []string
}

func newTermSet(first string) *termSet {
	s := &termSet{seen: make(map[string]struct{})}
	s.seen[first] = struct{}{}
	s.list = append(s.list, first)
	return s
}

func (s *termSet) add(term string) {
	if term == "" {
		return
	}
	if _, ok := s.seen[term]; ok {
		return
	}
	s.seen[term] = struct{}{}
	s.list = append(s.list, term)
}
