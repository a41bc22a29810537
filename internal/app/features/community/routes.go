// internal/app/features/community/routes.go
package community

import (
	"github.com/dalemusser/wandernext/internal/app/system/auth"
	"github.com/dalemusser/wandernext/internal/app/system/authz"
	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.ServeFeed)

	r.Group(func(pr chi.Router) {
		pr.Use(sm.RequireSignedIn)
		pr.Post("/posts", h.HandleSubmitPost)
		pr.Post("/posts/{postID}/like", h.HandleToggleLike)
		pr.Post("/posts/{postID}/comments", h.HandleAddComment)
	})

	r.Group(func(mr chi.Router) {
		mr.Use(sm.RequireRole(authz.RoleModerator))
		mr.Get("/moderation", h.ServeModerationQueue)
		mr.Post("/moderation/{postID}/approve", h.HandleApprove)
		mr.Post("/moderation/{postID}/reject", h.HandleReject)
		mr.Post("/posts/{postID}/remove", h.HandleRemove)
	})

	return r
}
