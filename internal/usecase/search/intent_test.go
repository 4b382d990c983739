package search

import (
	"testing"

	"github.com/kailas-cloud/shelf/internal/domain/search/intent"
)

func TestDetectIntent(t *testing.T) {
	tests := []struct {
		query string
		want  intent.Intent
	}{
		// isbn
		{"978-0-13-468599-1", intent.ISBN},
		{"9780134685991", intent.ISBN},
		{"0-306-40615-2", intent.ISBN},
		{"0 306 40615 2", intent.ISBN},
		{"030640615X", intent.ISBN},
		// author
		{"by Stephen King", intent.Author},
		{"novels by tolkien", intent.Author},
		{"author: Le Guin", intent.Author},
		{"Stephen King", intent.Author},
		{"stephen king", intent.Author},
		// title
		{"title: Dune", intent.Title},
		{`"dune messiah"`, intent.Title},
		{"the lord of the rings", intent.Title},
		{"a tale of two cities", intent.Title},
		// topic
		{"ai ethics", intent.Topic},
		{"intro to ml", intent.Topic},
		{"learn about dinosaurs today", intent.Topic},
		{"subject: geology", intent.Topic},
		// general
		{"quantum", intent.General},
		{"", intent.General},
		{"12345", intent.General},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			if got := DetectIntent(tt.query); got != tt.want {
				t.Errorf("DetectIntent(%q) = %q, want %q", tt.query, got, tt.want)
			}
		})
	}
}

func TestDetectIntent_ISBNBeatsAuthor(t *testing.T) {
	// Two whitespace-separated tokens that also form an ISBN-10.
	if got := DetectIntent("03064 06152"); got != intent.ISBN {
		t.Errorf("got %q, want isbn", got)
	}
}

func TestDetectIntent_AlwaysValid(t *testing.T) {
	inputs := []string{"", " ", "???", "by", "x y z", `"`, "title:", "ISBN 123"}
	for _, q := range inputs {
		if got := DetectIntent(q); !got.IsValid() {
			t.Errorf("DetectIntent(%q) = %q, not a valid intent", q, got)
		}
	}
}

func TestStripAuthorPrefix(t *testing.T) {
	tests := map[string]string{
		"by Stephen King":  "Stephen King",
		"BY  Le Guin":      "Le Guin",
		"author:Tolkien":   "Tolkien",
		"author: Tolkien ": "Tolkien",
		"Jane Austen":      "Jane Austen",
	}
	for in, want := range tests {
		if got := stripAuthorPrefix(in); got != want {
			t.Errorf("stripAuthorPrefix(%q) = %q, want %q", in, got, want)
		}
	}
}
