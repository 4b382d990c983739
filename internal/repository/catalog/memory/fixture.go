package memory

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	domcat "github.com/kailas-cloud/shelf/internal/domain/catalog"
	repocat "github.com/kailas-cloud/shelf/internal/repository/catalog"
)

type fixtureFile struct {
	Items []fixtureItem `yaml:"items"`
}

type fixtureItem struct {
	ID                  string   `yaml:"id"`
	Title               string   `yaml:"title"`
	Author              string   `yaml:"author"`
	ISBN                string   `yaml:"isbn"`
	Barcode             string   `yaml:"barcode"`
	Description         string   `yaml:"description"`
	Language            string   `yaml:"language"`
	Type                string   `yaml:"type"`
	PeriodicalFrequency string   `yaml:"periodical_frequency"`
	Categories          []string `yaml:"categories"`
	PublishedAt         string   `yaml:"published_at"`
	AddedAt             string   `yaml:"added_at"`
	Size                int      `yaml:"size"`
	Available           *bool    `yaml:"available"`
	CoverImage          string   `yaml:"cover_image"`
	PDFURL              string   `yaml:"pdf_url"`
}

// LoadFile reads a YAML fixture from path into the store.
func (s *Store) LoadFile(path string) error {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("open fixture: %w", err)
	}
	defer func() { _ = f.Close() }()

	if err := s.Load(f); err != nil {
		return fmt.Errorf("load fixture %s: %w", path, err)
	}
	return nil
}

// Load decodes a YAML fixture and adds its items. Nothing is added when any
// item is invalid.
func (s *Store) Load(r io.Reader) error {
	var doc fixtureFile
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil && err != io.EOF {
		return fmt.Errorf("decode: %w", err)
	}

	items := make([]domcat.Item, 0, len(doc.Items))
	for i, fi := range doc.Items {
		it, err := fi.toDomain()
		if err != nil {
			return fmt.Errorf("item %d: %w", i, err)
		}
		items = append(items, it)
	}
	s.Add(items...)
	return nil
}

func (fi fixtureItem) toDomain() (domcat.Item, error) {
	typ := domcat.Book
	if fi.Type != "" {
		t, ok := domcat.ParseType(fi.Type)
		if !ok {
			return domcat.Item{}, fmt.Errorf("unknown type %q", fi.Type)
		}
		typ = t
	}
	published, err := repocat.ParseTimestamp(fi.PublishedAt)
	if err != nil {
		return domcat.Item{}, fmt.Errorf("published_at: %w", err)
	}
	added, err := repocat.ParseTimestamp(fi.AddedAt)
	if err != nil {
		return domcat.Item{}, fmt.Errorf("added_at: %w", err)
	}
	available := true
	if fi.Available != nil {
		available = *fi.Available
	}

	return domcat.Item{
		ID:                  fi.ID,
		Title:               fi.Title,
		Author:              fi.Author,
		ISBN:                fi.ISBN,
		Barcode:             fi.Barcode,
		Description:         fi.Description,
		Language:            fi.Language,
		Type:                typ,
		PeriodicalFrequency: fi.PeriodicalFrequency,
		Categories:          fi.Categories,
		PublishedAt:         published,
		AddedAt:             added,
		Size:                fi.Size,
		Available:           available,
		CoverImage:          fi.CoverImage,
		PDFURL:              fi.PDFURL,
	}, nil
}
