package search

import (
	"strings"
	"time"

	"github.com/kailas-cloud/shelf/internal/domain/catalog"
	"github.com/kailas-cloud/shelf/internal/domain/search/intent"
)

// Weights are the additive components of the relevance score.
type Weights struct {
	TitleMatch       float64
	AuthorMatch      float64
	DescriptionMatch float64

	TitlePrefix  float64
	AuthorIntent float64
	ISBNIntent   float64

	TermTitle       float64
	TermAuthor      float64
	TermDescription float64

	FreshnessWindow time.Duration
	FreshnessBonus  float64
	AvailableBonus  float64
	ResourceBonus   float64
}

// DefaultWeights returns the stock ranking weights.
func DefaultWeights() Weights {
	return Weights{
		TitleMatch:       100,
		AuthorMatch:      90,
		DescriptionMatch: 70,
		TitlePrefix:      50,
		AuthorIntent:     80,
		ISBNIntent:       200,
		TermTitle:        30,
		TermAuthor:       25,
		TermDescription:  20,
		FreshnessWindow:  30 * 24 * time.Hour,
		FreshnessBonus:   10,
		AvailableBonus:   15,
		ResourceBonus:    10,
	}
}

// Score computes the relevance of item for query. terms is the expanded term
// set and normally contains query itself, so a literal match is counted both
// as a query match and as a term match. Pure: now is the only clock input.
func (w Weights) Score(item *catalog.Item, query string, terms []string, in intent.Intent, now time.Time) float64 {
	title := strings.ToLower(item.Title)
	author := strings.ToLower(item.Author)
	desc := strings.ToLower(item.Description)
	q := strings.ToLower(strings.TrimSpace(query))

	var score float64

	if q != "" {
		if strings.Contains(title, q) {
			score += w.TitleMatch
		}
		if strings.Contains(author, q) {
			score += w.AuthorMatch
		}
		if strings.Contains(desc, q) {
			score += w.DescriptionMatch
		}
	}

	switch in {
	case intent.Title:
		if q != "" && strings.HasPrefix(title, q) {
			score += w.TitlePrefix
		}
	case intent.Author:
		if name := strings.ToLower(stripAuthorPrefix(query)); name != "" && strings.Contains(author, name) {
			score += w.AuthorIntent
		}
	case intent.ISBN:
		code := catalog.CompactCode(q)
		if code != "" && (strings.Contains(strings.ToLower(catalog.CompactCode(item.ISBN)), code) ||
			strings.Contains(strings.ToLower(catalog.CompactCode(item.Barcode)), code)) {
			score += w.ISBNIntent
		}
	}

	for _, term := range terms {
		t := strings.ToLower(term)
		if t == "" {
			continue
		}
		if strings.Contains(title, t) {
			score += w.TermTitle
		}
		if strings.Contains(author, t) {
			score += w.TermAuthor
		}
		if strings.Contains(desc, t) {
			score += w.TermDescription
		}
	}

	if !item.AddedAt.IsZero() && now.Sub(item.AddedAt) <= w.FreshnessWindow {
		score += w.FreshnessBonus
	}
	if item.Available {
		score += w.AvailableBonus
	}
	if item.HasPDF() {
		score += w.ResourceBonus
	}

	return score
}
