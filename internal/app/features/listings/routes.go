// internal/app/features/listings/routes.go
package listings

import (
	"github.com/dalemusser/wandernext/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.ServeList)
	r.Get("/{listingID}", h.ServeDetail)

	r.Group(func(pr chi.Router) {
		pr.Use(sm.RequireSignedIn)
		pr.Post("/{listingID}/bookmark", h.HandleToggleBookmark)
		pr.Post("/{listingID}/itinerary", h.HandleAddToItinerary)
	})

	return r
}
