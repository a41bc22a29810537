// internal/domain/models/document.go
package models

// Document is the single serializable root object holding all persisted
// application state. Reads and writes are whole-document: callers load the
// entire document, mutate it, and save it back in one replacement.
type Document struct {
	Accounts  map[string]Account          `json:"accounts"`  // login_id_ci -> account
	Profiles  map[string]Profile          `json:"profiles"`  // account id -> profile
	Bookmarks map[string][]string         `json:"bookmarks"` // account id -> listing ids, toggle membership
	Itinerary map[string][]ItineraryEntry `json:"itinerary"` // account id -> append-only log
	Forum     Forum                       `json:"forum"`
	Catalog   Catalog                     `json:"catalog"`
	Session   string                      `json:"session,omitempty"` // signed-in account id, or empty
}

// DefaultDocument returns the document used when the storage slot is
// absent or unparsable: empty registries plus the seeded catalog.
func DefaultDocument() Document {
	return Document{
		Accounts:  map[string]Account{},
		Profiles:  map[string]Profile{},
		Bookmarks: map[string][]string{},
		Itinerary: map[string][]ItineraryEntry{},
		Forum: Forum{
			Posts:    []Post{},
			Pending:  []Post{},
			Comments: map[int][]Comment{},
			Likes:    map[int][]string{},
		},
		Catalog: SeedCatalog(),
	}
}

// Normalize replaces nil collections with empty ones so callers can index
// into the document without nil checks. A decoded document that omitted a
// field behaves identically to the default document for that field.
func (d *Document) Normalize() {
	if d.Accounts == nil {
		d.Accounts = map[string]Account{}
	}
	if d.Profiles == nil {
		d.Profiles = map[string]Profile{}
	}
	if d.Bookmarks == nil {
		d.Bookmarks = map[string][]string{}
	}
	if d.Itinerary == nil {
		d.Itinerary = map[string][]ItineraryEntry{}
	}
	if d.Forum.Posts == nil {
		d.Forum.Posts = []Post{}
	}
	if d.Forum.Pending == nil {
		d.Forum.Pending = []Post{}
	}
	if d.Forum.Comments == nil {
		d.Forum.Comments = map[int][]Comment{}
	}
	if d.Forum.Likes == nil {
		d.Forum.Likes = map[int][]string{}
	}
	if len(d.Catalog.Listings) == 0 && len(d.Catalog.Trending) == 0 {
		d.Catalog = SeedCatalog()
	}
}
