// internal/app/features/utilities/routes.go
package utilities

import "github.com/go-chi/chi/v5"

func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeUtilities)
	return r
}
