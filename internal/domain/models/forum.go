// internal/domain/models/forum.go
package models

import "time"

// Post is a community forum post. A post lives in exactly one of the
// pending queue or the approved feed at any moment.
type Post struct {
	ID        int       `json:"id"`
	AuthorID  string    `json:"author_id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	Category  string    `json:"category,omitempty"`
	Tags      []string  `json:"tags"`
	CreatedAt time.Time `json:"created_at"`
}

// Comment is an append-only reply on an approved post.
type Comment struct {
	ID        string    `json:"id"`
	AccountID string    `json:"account_id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// Forum holds the moderation pipeline state.
//
//   - Posts: approved feed, newest-first on approval.
//   - Pending: submitted-but-unapproved queue, FIFO submission order.
//   - LastID: monotonically increasing counter, source of post identity.
//   - Comments/Likes: registries keyed by post id; purged with the post.
type Forum struct {
	Posts    []Post               `json:"posts"`
	Pending  []Post               `json:"pending"`
	LastID   int                  `json:"last_id"`
	Comments map[int][]Comment    `json:"comments"`
	Likes    map[int][]string     `json:"likes"` // post id -> account ids, toggle membership
}
