// internal/domain/models/itinerary.go
package models

import "time"

// ItineraryEntry is one line of a traveler's itinerary log. The itinerary
// is append-only: identical entries are valid and never deduplicated.
type ItineraryEntry struct {
	ListingID   string    `json:"listing_id"`
	Destination string    `json:"destination"`
	AddedAt     time.Time `json:"added_at"`
}
