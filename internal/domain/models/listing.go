// internal/domain/models/listing.go
package models

// Listing categories.
const (
	CategoryAccommodation = "accommodation"
	CategoryCafe          = "cafe"
	CategoryAttraction    = "attraction"
)

// Listing is a catalog entry: a stay, cafe, or attraction a traveler can
// browse, bookmark, and add to an itinerary.
type Listing struct {
	ID            string   `json:"id"`
	Category      string   `json:"category"` // accommodation | cafe | attraction
	Name          string   `json:"name"`
	Price         int      `json:"price"` // per night / per visit, USD
	Rating        float64  `json:"rating"`
	Location      string   `json:"location"`
	TravelerTypes []string `json:"traveler_types"`
	Images        []string `json:"images,omitempty"`
	Description   string   `json:"description,omitempty"`
	Address       string   `json:"address,omitempty"`
	Contact       string   `json:"contact,omitempty"`
	MapURL        string   `json:"map_url,omitempty"`
}

// SuitsTravelerType reports whether the listing is applicable to the
// given traveler type.
func (l Listing) SuitsTravelerType(t string) bool {
	for _, tt := range l.TravelerTypes {
		if tt == t {
			return true
		}
	}
	return false
}

// TrendingItem is a featured destination shown on the landing page.
type TrendingItem struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Image string `json:"image,omitempty"`
}

// Catalog is the static seed data: listings plus trending destinations.
type Catalog struct {
	Listings []Listing      `json:"listings"`
	Trending []TrendingItem `json:"trending"`
}
