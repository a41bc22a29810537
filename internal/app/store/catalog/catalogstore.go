// internal/app/store/catalog/catalogstore.go

// Package catalog serves the seeded listings and trending destinations
// from the document, with search and browse filtering.
package catalog

import (
	"context"
	"strings"

	"github.com/dalemusser/wandernext/internal/app/store/document"
	"github.com/dalemusser/wandernext/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/text"
	"go.uber.org/zap"
)

// Store reads the catalog section of the document.
type Store struct {
	Docs *document.Store
	Log  *zap.Logger
}

// New creates a catalog Store over the document store.
func New(docs *document.Store, logger *zap.Logger) *Store {
	return &Store{Docs: docs, Log: logger}
}

// Listings returns every catalog listing in seed order.
func (s *Store) Listings(ctx context.Context) ([]models.Listing, error) {
	doc, err := s.Docs.Load(ctx)
	if err != nil {
		return nil, err
	}
	return doc.Catalog.Listings, nil
}

// Trending returns the featured destinations for the landing page.
func (s *Store) Trending(ctx context.Context) ([]models.TrendingItem, error) {
	doc, err := s.Docs.Load(ctx)
	if err != nil {
		return nil, err
	}
	return doc.Catalog.Trending, nil
}

// Get returns the listing with the given id.
func (s *Store) Get(ctx context.Context, id string) (models.Listing, bool, error) {
	doc, err := s.Docs.Load(ctx)
	if err != nil {
		return models.Listing{}, false, err
	}
	for _, l := range doc.Catalog.Listings {
		if l.ID == id {
			return l, true, nil
		}
	}
	return models.Listing{}, false, nil
}

// Search returns listings whose name, location, or description contains
// the query, case/diacritic-insensitively. An empty query is the caller's
// validation failure; here it simply matches nothing.
func (s *Store) Search(ctx context.Context, query string) ([]models.Listing, error) {
	q := text.Fold(strings.TrimSpace(query))
	if q == "" {
		return nil, nil
	}

	doc, err := s.Docs.Load(ctx)
	if err != nil {
		return nil, err
	}

	var out []models.Listing
	for _, l := range doc.Catalog.Listings {
		if strings.Contains(text.Fold(l.Name), q) ||
			strings.Contains(text.Fold(l.Location), q) ||
			strings.Contains(text.Fold(l.Description), q) {
			out = append(out, l)
		}
	}
	return out, nil
}

// Filter narrows listings by category, maximum price, and minimum rating.
// Zero values leave the corresponding dimension unconstrained. Relative
// order of the seed catalog is preserved.
type Filter struct {
	Category  string
	MaxPrice  int
	MinRating float64
}

// Browse returns the listings matching the filter.
func (s *Store) Browse(ctx context.Context, f Filter) ([]models.Listing, error) {
	doc, err := s.Docs.Load(ctx)
	if err != nil {
		return nil, err
	}

	var out []models.Listing
	for _, l := range doc.Catalog.Listings {
		if f.Category != "" && l.Category != f.Category {
			continue
		}
		if f.MaxPrice > 0 && l.Price > f.MaxPrice {
			continue
		}
		if f.MinRating > 0 && l.Rating < f.MinRating {
			continue
		}
		out = append(out, l)
	}
	return out, nil
}
