package search

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/kailas-cloud/shelf/internal/domain/catalog"
	"github.com/kailas-cloud/shelf/internal/domain/search/intent"
)

var (
	isbnPattern    = regexp.MustCompile(`^(\d{10}|\d{13}|\d{9}[\dXx])$`)
	articlePattern = regexp.MustCompile(`^(the|a|an)\s`)
)

// DetectIntent classifies a query. Rules are checked in a fixed order and
// the first match wins: isbn, author, title, topic, general.
func DetectIntent(query string) intent.Intent {
	q := strings.TrimSpace(query)
	lower := strings.ToLower(q)

	switch {
	case isbnPattern.MatchString(catalog.CompactCode(q)):
		return intent.ISBN
	case isAuthorQuery(lower):
		return intent.Author
	case strings.HasPrefix(lower, "title:"),
		strings.Contains(q, `"`),
		articlePattern.MatchString(lower):
		return intent.Title
	case isTopicQuery(lower):
		return intent.Topic
	default:
		return intent.General
	}
}

func isAuthorQuery(lower string) bool {
	if strings.HasPrefix(lower, "by ") || strings.Contains(lower, " by ") || strings.HasPrefix(lower, "author:") {
		return true
	}
	return looksLikeName(lower)
}

// looksLikeName reports whether the query is exactly two alphabetic tokens,
// neither of them a synonym-table key.
func looksLikeName(lower string) bool {
	parts := strings.Fields(lower)
	if len(parts) != 2 {
		return false
	}
	for _, p := range parts {
		if _, ok := synonyms[p]; ok {
			return false
		}
		for _, r := range p {
			if !unicode.IsLetter(r) {
				return false
			}
		}
	}
	return true
}

func isTopicQuery(lower string) bool {
	if strings.Contains(lower, "about ") || strings.Contains(lower, "topic:") || strings.Contains(lower, "subject:") {
		return true
	}
	for key := range synonyms {
		if strings.Contains(lower, key) {
			return true
		}
	}
	return false
}

// stripAuthorPrefix removes a leading "by " or "author:" and surrounding spaces.
func stripAuthorPrefix(q string) string {
	q = strings.TrimSpace(q)
	lower := strings.ToLower(q)
	switch {
	case strings.HasPrefix(lower, "by "):
		q = q[len("by "):]
	case strings.HasPrefix(lower, "author:"):
		q = q[len("author:"):]
	}
	return strings.TrimSpace(q)
}
