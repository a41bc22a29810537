// internal/app/store/forum/forumstore.go

// Package forum implements the community moderation pipeline.
//
// Post lifecycle: Submit appends to the pending queue (FIFO); Approve
// moves the post to the head of the approved feed; Reject drops it from
// the queue; Remove deletes an approved post together with its comment
// and like registries. A post lives in exactly one of pending/posts at
// any moment, and post ids come from a counter that only ever increases.
package forum

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/dalemusser/wandernext/internal/app/store/document"
	"github.com/dalemusser/wandernext/internal/app/system/htmlsanitize"
	"github.com/dalemusser/wandernext/internal/domain/models"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	// ErrEmptyPost is returned when a submission has a blank title or body.
	ErrEmptyPost = errors.New("post title and body are required")

	// ErrNotModerator is returned when a non-moderator calls a moderation
	// operation. The store checks the capability itself rather than
	// trusting the caller.
	ErrNotModerator = errors.New("moderator role required")

	// ErrPostNotFound is returned when the target post id is in neither
	// the expected queue nor feed.
	ErrPostNotFound = errors.New("post not found")
)

// Store is the forum moderation pipeline over the document store.
type Store struct {
	Docs *document.Store
	Log  *zap.Logger
}

// New creates a forum Store over the document store.
func New(docs *document.Store, logger *zap.Logger) *Store {
	return &Store{Docs: docs, Log: logger}
}

// Submit creates a post and appends it to the pending queue. The assigned
// id is strictly greater than every previously assigned id. Tags arrive as
// a comma-separated string; empties are dropped, so an empty tags field
// yields an empty slice, never [""].
func (s *Store) Submit(ctx context.Context, authorID, title, body, category, tags string) (models.Post, error) {
	title = htmlsanitize.SanitizeText(title)
	body = strings.TrimSpace(htmlsanitize.Sanitize(body))
	if title == "" || body == "" {
		return models.Post{}, ErrEmptyPost
	}

	var post models.Post
	err := s.Docs.Update(ctx, func(doc *models.Document) error {
		doc.Forum.LastID++
		post = models.Post{
			ID:        doc.Forum.LastID,
			AuthorID:  authorID,
			Title:     title,
			Body:      body,
			Category:  htmlsanitize.SanitizeText(category),
			Tags:      splitTags(tags),
			CreatedAt: time.Now().UTC(),
		}
		doc.Forum.Pending = append(doc.Forum.Pending, post)
		return nil
	})
	if err != nil {
		return models.Post{}, err
	}

	s.Log.Info("post submitted for review",
		zap.Int("post_id", post.ID),
		zap.String("author_id", authorID))
	return post, nil
}

// Approve moves a pending post to the head of the approved feed. Only a
// moderator may approve; the transition is forward-only.
func (s *Store) Approve(ctx context.Context, actorID string, postID int) error {
	return s.Docs.Update(ctx, func(doc *models.Document) error {
		if err := requireModerator(doc, actorID); err != nil {
			return err
		}
		for i, p := range doc.Forum.Pending {
			if p.ID == postID {
				doc.Forum.Pending = append(doc.Forum.Pending[:i], doc.Forum.Pending[i+1:]...)
				doc.Forum.Posts = append([]models.Post{p}, doc.Forum.Posts...)
				return nil
			}
		}
		return ErrPostNotFound
	})
}

// Reject drops a pending post without publishing it, purging any keyed
// comment/like entries so nothing dangles.
func (s *Store) Reject(ctx context.Context, actorID string, postID int) error {
	return s.Docs.Update(ctx, func(doc *models.Document) error {
		if err := requireModerator(doc, actorID); err != nil {
			return err
		}
		for i, p := range doc.Forum.Pending {
			if p.ID == postID {
				doc.Forum.Pending = append(doc.Forum.Pending[:i], doc.Forum.Pending[i+1:]...)
				delete(doc.Forum.Comments, postID)
				delete(doc.Forum.Likes, postID)
				return nil
			}
		}
		return ErrPostNotFound
	})
}

// Remove deletes an approved post and purges its comment and like
// registries as one operation. Valid from the approved state only.
func (s *Store) Remove(ctx context.Context, actorID string, postID int) error {
	return s.Docs.Update(ctx, func(doc *models.Document) error {
		if err := requireModerator(doc, actorID); err != nil {
			return err
		}
		for i, p := range doc.Forum.Posts {
			if p.ID == postID {
				doc.Forum.Posts = append(doc.Forum.Posts[:i], doc.Forum.Posts[i+1:]...)
				delete(doc.Forum.Comments, postID)
				delete(doc.Forum.Likes, postID)
				return nil
			}
		}
		return ErrPostNotFound
	})
}

// ToggleLike toggles the account's membership in the post's like set and
// reports whether the post is liked after the call. The post must be in
// the approved feed; a removed or pending id yields ErrPostNotFound so a
// stale form can never recreate a purged like registry.
func (s *Store) ToggleLike(ctx context.Context, postID int, accountID string) (liked bool, err error) {
	err = s.Docs.Update(ctx, func(doc *models.Document) error {
		if !inFeed(doc, postID) {
			return ErrPostNotFound
		}
		set := doc.Forum.Likes[postID]
		for i, id := range set {
			if id == accountID {
				doc.Forum.Likes[postID] = append(set[:i], set[i+1:]...)
				liked = false
				return nil
			}
		}
		doc.Forum.Likes[postID] = append(set, accountID)
		liked = true
		return nil
	})
	return liked, err
}

// AddComment appends a comment to the post. Whitespace-only text is a
// silent no-op, not an error: added=false and no state change.
func (s *Store) AddComment(ctx context.Context, postID int, accountID, text string) (added bool, err error) {
	text = htmlsanitize.SanitizeText(text)
	if text == "" {
		return false, nil
	}
	comment := models.Comment{
		ID:        "c_" + uuid.NewString(),
		AccountID: accountID,
		Text:      text,
		CreatedAt: time.Now().UTC(),
	}
	err = s.Docs.Update(ctx, func(doc *models.Document) error {
		if !inFeed(doc, postID) {
			return ErrPostNotFound
		}
		doc.Forum.Comments[postID] = append(doc.Forum.Comments[postID], comment)
		return nil
	})
	return err == nil, err
}

// Posts returns the approved feed, newest-first.
func (s *Store) Posts(ctx context.Context) ([]models.Post, error) {
	doc, err := s.Docs.Load(ctx)
	if err != nil {
		return nil, err
	}
	return doc.Forum.Posts, nil
}

// Pending returns the moderation queue in submission order.
func (s *Store) Pending(ctx context.Context) ([]models.Post, error) {
	doc, err := s.Docs.Load(ctx)
	if err != nil {
		return nil, err
	}
	return doc.Forum.Pending, nil
}

// Comments returns the post's comments in insertion order.
func (s *Store) Comments(ctx context.Context, postID int) ([]models.Comment, error) {
	doc, err := s.Docs.Load(ctx)
	if err != nil {
		return nil, err
	}
	return doc.Forum.Comments[postID], nil
}

// Likes returns the account ids that currently like the post.
func (s *Store) Likes(ctx context.Context, postID int) ([]string, error) {
	doc, err := s.Docs.Load(ctx)
	if err != nil {
		return nil, err
	}
	return doc.Forum.Likes[postID], nil
}

// inFeed reports whether the post id is in the approved feed.
func inFeed(doc *models.Document, postID int) bool {
	for _, p := range doc.Forum.Posts {
		if p.ID == postID {
			return true
		}
	}
	return false
}

func requireModerator(doc *models.Document, actorID string) error {
	for _, a := range doc.Accounts {
		if a.ID == actorID {
			if a.IsModerator() {
				return nil
			}
			break
		}
	}
	return ErrNotModerator
}

// splitTags turns a comma-separated tags field into a clean slice.
func splitTags(tags string) []string {
	out := []string{}
	for _, t := range strings.Split(tags, ",") {
		t = htmlsanitize.SanitizeText(t)
		if t != "" {
			out = append(out, t)
		}
	}
	return out
}
