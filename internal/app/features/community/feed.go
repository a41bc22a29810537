// internal/app/features/community/feed.go
package community

import (
	"context"
	"net/http"
	"strconv"

	uierrors "github.com/dalemusser/wandernext/internal/app/features/errors"
	"github.com/dalemusser/wandernext/internal/app/store/forum"
	"github.com/dalemusser/wandernext/internal/app/system/auth"
	"github.com/dalemusser/wandernext/internal/app/system/timeouts"
	"github.com/dalemusser/wandernext/internal/app/system/viewdata"
	"github.com/dalemusser/wandernext/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// commentVM pairs a comment with its author's display name.
type commentVM struct {
	models.Comment
	AuthorName string
}

// postVM decorates a post with everything the feed shows.
type postVM struct {
	models.Post
	AuthorName string
	LikeCount  int
	Liked      bool
	Comments   []commentVM
}

type feedPageData struct {
	viewdata.BaseVM
	Posts     []postVM
	Submitted bool
}

// ServeFeed handles GET /community: the approved feed, newest approval first.
func (h *Handler) ServeFeed(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	posts, err := h.Forum.Posts(ctx)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "load feed failed", err, "A server error occurred.", "/")
		return
	}

	viewerID := ""
	if u, ok := auth.CurrentUser(r); ok {
		viewerID = u.ID
	}

	data := feedPageData{
		BaseVM:    viewdata.NewBaseVM(r, "Community", "/"),
		Posts:     h.decorate(ctx, posts, viewerID),
		Submitted: r.URL.Query().Get("submitted") == "1",
	}

	templates.Render(w, r, "community_feed", data)
}

func (h *Handler) decorate(ctx context.Context, posts []models.Post, viewerID string) []postVM {
	names := map[string]string{}
	nameFor := func(accountID string) string {
		if n, ok := names[accountID]; ok {
			return n
		}
		n := "traveler"
		if p, ok, err := h.Identity.Profile(ctx, accountID); err == nil && ok {
			n = p.DisplayName
		}
		names[accountID] = n
		return n
	}

	out := make([]postVM, 0, len(posts))
	for _, p := range posts {
		vm := postVM{Post: p, AuthorName: nameFor(p.AuthorID)}

		likes, err := h.Forum.Likes(ctx, p.ID)
		if err != nil {
			h.Log.Error("load likes", zap.Int("post_id", p.ID), zap.Error(err))
		}
		vm.LikeCount = len(likes)
		for _, id := range likes {
			if id == viewerID {
				vm.Liked = true
				break
			}
		}

		comments, err := h.Forum.Comments(ctx, p.ID)
		if err != nil {
			h.Log.Error("load comments", zap.Int("post_id", p.ID), zap.Error(err))
		}
		for _, c := range comments {
			vm.Comments = append(vm.Comments, commentVM{Comment: c, AuthorName: nameFor(c.AccountID)})
		}

		out = append(out, vm)
	}
	return out
}

// HandleSubmitPost handles POST /community/posts. New posts land in the
// moderation queue, not the feed.
func (h *Handler) HandleSubmitPost(w http.ResponseWriter, r *http.Request) {
	u, ok := auth.CurrentUser(r)
	if !ok {
		uierrors.RenderUnauthorized(w, r, "/login")
		return
	}
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Invalid form data.", "/community")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	_, err := h.Forum.Submit(ctx, u.ID,
		r.FormValue("title"),
		r.FormValue("body"),
		r.FormValue("category"),
		r.FormValue("tags"),
	)
	if err != nil {
		if err == forum.ErrEmptyPost {
			h.ErrLog.LogBadRequest(w, r, "empty post rejected", nil, "A post needs both a title and a body.", "/community")
			return
		}
		h.ErrLog.LogServerError(w, r, "submit post failed", err, "Failed to submit your post.", "/community")
		return
	}

	http.Redirect(w, r, "/community?submitted=1", http.StatusSeeOther)
}

// HandleToggleLike handles POST /community/posts/{postID}/like.
func (h *Handler) HandleToggleLike(w http.ResponseWriter, r *http.Request) {
	u, ok := auth.CurrentUser(r)
	if !ok {
		uierrors.RenderUnauthorized(w, r, "/login")
		return
	}
	postID, err := strconv.Atoi(chi.URLParam(r, "postID"))
	if err != nil {
		h.ErrLog.LogBadRequest(w, r, "bad post id", err, "Invalid post.", "/community")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	liked, err := h.Forum.ToggleLike(ctx, postID, u.ID)
	if err != nil {
		if err == forum.ErrPostNotFound {
			uierrors.RenderNotFound(w, r, "That post is no longer available.", "/community")
			return
		}
		h.ErrLog.LogServerError(w, r, "toggle like failed", err, "Failed to update like.", "/community")
		return
	}

	if r.Header.Get("HX-Request") == "true" {
		likes, _ := h.Forum.Likes(ctx, postID)
		label := "♡"
		if liked {
			label = "♥"
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte(`<button class="btn like" hx-post="/community/posts/` + strconv.Itoa(postID) + `/like" hx-swap="outerHTML">` +
			label + ` ` + strconv.Itoa(len(likes)) + `</button>`))
		return
	}

	http.Redirect(w, r, "/community", http.StatusSeeOther)
}

// HandleAddComment handles POST /community/posts/{postID}/comments.
// Whitespace-only comments are dropped without complaint.
func (h *Handler) HandleAddComment(w http.ResponseWriter, r *http.Request) {
	u, ok := auth.CurrentUser(r)
	if !ok {
		uierrors.RenderUnauthorized(w, r, "/login")
		return
	}
	postID, err := strconv.Atoi(chi.URLParam(r, "postID"))
	if err != nil {
		h.ErrLog.LogBadRequest(w, r, "bad post id", err, "Invalid post.", "/community")
		return
	}
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Invalid form data.", "/community")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if _, err := h.Forum.AddComment(ctx, postID, u.ID, r.FormValue("text")); err != nil {
		if err == forum.ErrPostNotFound {
			uierrors.RenderNotFound(w, r, "That post is no longer available.", "/community")
			return
		}
		h.ErrLog.LogServerError(w, r, "add comment failed", err, "Failed to add comment.", "/community")
		return
	}

	http.Redirect(w, r, "/community", http.StatusSeeOther)
}
