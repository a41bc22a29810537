// internal/app/store/travellog/travellogstore.go

// Package travellog is the bookmark and itinerary ledger: per-account
// bookmarked listing ids (toggle membership) and an append-only itinerary
// log.
package travellog

import (
	"context"
	"time"

	"github.com/dalemusser/wandernext/internal/app/store/document"
	"github.com/dalemusser/wandernext/internal/domain/models"
	"go.uber.org/zap"
)

// Store manages per-account bookmarks and itinerary entries.
type Store struct {
	Docs *document.Store
	Log  *zap.Logger
}

// New creates a travellog Store over the document store.
func New(docs *document.Store, logger *zap.Logger) *Store {
	return &Store{Docs: docs, Log: logger}
}

// ToggleBookmark adds the listing to the account's bookmarks if absent and
// removes it if present. Toggling twice restores the original contents and
// order. It reports whether the listing is bookmarked after the call.
func (s *Store) ToggleBookmark(ctx context.Context, accountID, listingID string) (bookmarked bool, err error) {
	err = s.Docs.Update(ctx, func(doc *models.Document) error {
		list := doc.Bookmarks[accountID]
		for i, id := range list {
			if id == listingID {
				doc.Bookmarks[accountID] = append(list[:i], list[i+1:]...)
				bookmarked = false
				return nil
			}
		}
		doc.Bookmarks[accountID] = append(list, listingID)
		bookmarked = true
		return nil
	})
	return bookmarked, err
}

// Bookmarks returns the account's bookmarked listing ids in toggle order.
func (s *Store) Bookmarks(ctx context.Context, accountID string) ([]string, error) {
	doc, err := s.Docs.Load(ctx)
	if err != nil {
		return nil, err
	}
	return doc.Bookmarks[accountID], nil
}

// IsBookmarked reports whether the account has bookmarked the listing.
func (s *Store) IsBookmarked(ctx context.Context, accountID, listingID string) (bool, error) {
	list, err := s.Bookmarks(ctx, accountID)
	if err != nil {
		return false, err
	}
	for _, id := range list {
		if id == listingID {
			return true, nil
		}
	}
	return false, nil
}

// AddEntry appends an itinerary entry with the current timestamp. The
// itinerary is a log, not a set: identical entries are valid and never
// deduplicated.
func (s *Store) AddEntry(ctx context.Context, accountID, listingID, destination string) error {
	if destination == "" {
		destination = "General"
	}
	entry := models.ItineraryEntry{
		ListingID:   listingID,
		Destination: destination,
		AddedAt:     time.Now().UTC(),
	}
	return s.Docs.Update(ctx, func(doc *models.Document) error {
		doc.Itinerary[accountID] = append(doc.Itinerary[accountID], entry)
		return nil
	})
}

// Entries returns the account's itinerary log in insertion order.
func (s *Store) Entries(ctx context.Context, accountID string) ([]models.ItineraryEntry, error) {
	doc, err := s.Docs.Load(ctx)
	if err != nil {
		return nil, err
	}
	return doc.Itinerary[accountID], nil
}
