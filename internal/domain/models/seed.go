// internal/domain/models/seed.go
package models

// SeedCatalog returns the demo catalog a fresh document starts with.
func SeedCatalog() Catalog {
	return Catalog{
		Listings: []Listing{
			{
				ID:            "lst_1",
				Category:      CategoryAccommodation,
				Name:          "Azure Bay Hotel",
				Price:         120,
				Rating:        4.5,
				Location:      "Goa, India",
				TravelerTypes: []string{TravelerCouple, TravelerFamily},
				Images:        []string{"https://images.unsplash.com/photo-1502920917128-1aa500764ce7?q=80&w=1200&auto=format&fit=crop"},
				Description:   "Seaside hotel with infinity pool and private beach access.",
				Address:       "123 Beach Rd, Goa",
				Contact:       "+91 00000 00000",
				MapURL:        "https://maps.google.com",
			},
			{
				ID:            "lst_2",
				Category:      CategoryCafe,
				Name:          "Roast & Coast Cafe",
				Price:         8,
				Rating:        4.3,
				Location:      "Lisbon, Portugal",
				TravelerTypes: []string{TravelerSolo, TravelerCouple},
				Images:        []string{"https://images.unsplash.com/photo-1453614512568-c4024d13c247?q=80&w=1200&auto=format&fit=crop"},
				Description:   "Specialty coffee with ocean views and pastel de nata.",
				Address:       "Alfama, Lisbon",
				Contact:       "+351 000 000 000",
				MapURL:        "https://maps.google.com",
			},
			{
				ID:            "lst_3",
				Category:      CategoryAttraction,
				Name:          "Skyline Gardens",
				Price:         25,
				Rating:        4.7,
				Location:      "Singapore",
				TravelerTypes: []string{TravelerFamily, TravelerCouple},
				Images:        []string{"https://images.unsplash.com/photo-1549877452-9c387954fbc0?q=80&w=1200&auto=format&fit=crop"},
				Description:   "Iconic supertree grove with light shows and skywalks.",
				Address:       "18 Marina Gardens Dr",
				Contact:       "+65 0000 0000",
				MapURL:        "https://maps.google.com",
			},
		},
		Trending: []TrendingItem{
			{ID: "tr_1", Title: "Santorini Sunsets", Image: "https://images.unsplash.com/photo-1509126522513-167c06e22a0f?q=80&w=1200&auto=format&fit=crop"},
			{ID: "tr_2", Title: "Kyoto Temples", Image: "https://images.unsplash.com/photo-1500315331616-db1a23f40e96?q=80&w=1200&auto=format&fit=crop"},
			{ID: "tr_3", Title: "Iceland Ring Road", Image: "https://images.unsplash.com/photo-1441974231531-c6227db76b6e?q=80&w=1200&auto=format&fit=crop"},
		},
	}
}
