// internal/app/features/community/moderation.go
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
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
)

type moderationPageData struct {
	viewdata.BaseVM
	Pending []postVM
}

// ServeModerationQueue handles GET /community/moderation.
// Routing already requires the moderator role; the store checks again.
func (h *Handler) ServeModerationQueue(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	pending, err := h.Forum.Pending(ctx)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "load moderation queue failed", err, "A server error occurred.", "/community")
		return
	}

	viewerID := ""
	if u, ok := auth.CurrentUser(r); ok {
		viewerID = u.ID
	}

	templates.Render(w, r, "community_moderation", moderationPageData{
		BaseVM:  viewdata.NewBaseVM(r, "Moderation queue", "/community"),
		Pending: h.decorate(ctx, pending, viewerID),
	})
}

// moderationAction runs one queue operation and maps store errors to
// user-facing responses.
func (h *Handler) moderationAction(w http.ResponseWriter, r *http.Request, act func(ctx context.Context, actorID string, postID int) error) {
	u, ok := auth.CurrentUser(r)
	if !ok {
		uierrors.RenderUnauthorized(w, r, "/login")
		return
	}
	postID, err := strconv.Atoi(chi.URLParam(r, "postID"))
	if err != nil {
		h.ErrLog.LogBadRequest(w, r, "bad post id", err, "Invalid post.", "/community/moderation")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	switch err := act(ctx, u.ID, postID); err {
	case nil:
		http.Redirect(w, r, "/community/moderation", http.StatusSeeOther)
	case forum.ErrNotModerator:
		uierrors.RenderForbidden(w, r, "Only moderators can manage the queue.", "/community")
	case forum.ErrPostNotFound:
		uierrors.RenderNotFound(w, r, "That post is no longer in the queue.", "/community/moderation")
	default:
		h.ErrLog.LogServerError(w, r, "moderation action failed", err, "A server error occurred.", "/community/moderation")
	}
}

// HandleApprove handles POST /community/moderation/{postID}/approve.
func (h *Handler) HandleApprove(w http.ResponseWriter, r *http.Request) {
	h.moderationAction(w, r, h.Forum.Approve)
}

// HandleReject handles POST /community/moderation/{postID}/reject.
func (h *Handler) HandleReject(w http.ResponseWriter, r *http.Request) {
	h.moderationAction(w, r, h.Forum.Reject)
}

// HandleRemove handles POST /community/posts/{postID}/remove: takes an
// approved post out of the feed and purges its comments and likes.
func (h *Handler) HandleRemove(w http.ResponseWriter, r *http.Request) {
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

	switch err := h.Forum.Remove(ctx, u.ID, postID); err {
	case nil:
		http.Redirect(w, r, "/community", http.StatusSeeOther)
	case forum.ErrNotModerator:
		uierrors.RenderForbidden(w, r, "Only moderators can remove posts.", "/community")
	case forum.ErrPostNotFound:
		uierrors.RenderNotFound(w, r, "That post is not in the feed.", "/community")
	default:
		h.ErrLog.LogServerError(w, r, "remove post failed", err, "A server error occurred.", "/community")
	}
}
