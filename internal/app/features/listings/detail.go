// internal/app/features/listings/detail.go
package listings

import (
	"context"
	"net/http"

	uierrors "github.com/dalemusser/wandernext/internal/app/features/errors"
	"github.com/dalemusser/wandernext/internal/app/system/auth"
	"github.com/dalemusser/wandernext/internal/app/system/timeouts"
	"github.com/dalemusser/wandernext/internal/app/system/viewdata"
	"github.com/dalemusser/wandernext/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type detailPageData struct {
	viewdata.BaseVM
	Listing    models.Listing
	Bookmarked bool
}

// ServeDetail handles GET /listings/{listingID}.
func (h *Handler) ServeDetail(w http.ResponseWriter, r *http.Request) {
	listingID := chi.URLParam(r, "listingID")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	listing, found, err := h.Catalog.Get(ctx, listingID)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "load listing failed", err, "A server error occurred.", "/listings")
		return
	}
	if !found {
		uierrors.RenderNotFound(w, r, "We couldn't find that place.", "/listings")
		return
	}

	bookmarked := false
	if u, ok := auth.CurrentUser(r); ok {
		bookmarked, err = h.TravelLog.IsBookmarked(ctx, u.ID, listingID)
		if err != nil {
			h.Log.Error("load bookmark state", zap.Error(err))
		}
	}

	templates.Render(w, r, "listings_detail", detailPageData{
		BaseVM:     viewdata.NewBaseVM(r, listing.Name, "/listings"),
		Listing:    listing,
		Bookmarked: bookmarked,
	})
}

// HandleToggleBookmark handles POST /listings/{listingID}/bookmark.
// HTMX requests get the refreshed bookmark button; plain posts bounce
// back to the listing.
func (h *Handler) HandleToggleBookmark(w http.ResponseWriter, r *http.Request) {
	u, ok := auth.CurrentUser(r)
	if !ok {
		uierrors.RenderUnauthorized(w, r, "/login")
		return
	}
	listingID := chi.URLParam(r, "listingID")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if _, found, err := h.Catalog.Get(ctx, listingID); err != nil || !found {
		if err != nil {
			h.ErrLog.LogServerError(w, r, "load listing failed", err, "A server error occurred.", "/listings")
			return
		}
		uierrors.RenderNotFound(w, r, "We couldn't find that place.", "/listings")
		return
	}

	bookmarked, err := h.TravelLog.ToggleBookmark(ctx, u.ID, listingID)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "toggle bookmark failed", err, "Failed to update bookmark.", "/listings/"+listingID)
		return
	}

	if r.Header.Get("HX-Request") == "true" {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		label := "☆ Save"
		if bookmarked {
			label = "★ Saved"
		}
		w.Write([]byte(`<button class="btn bookmark" hx-post="/listings/` + listingID + `/bookmark" hx-swap="outerHTML">` + label + `</button>`))
		return
	}

	http.Redirect(w, r, "/listings/"+listingID, http.StatusSeeOther)
}

// HandleAddToItinerary handles POST /listings/{listingID}/itinerary.
func (h *Handler) HandleAddToItinerary(w http.ResponseWriter, r *http.Request) {
	u, ok := auth.CurrentUser(r)
	if !ok {
		uierrors.RenderUnauthorized(w, r, "/login")
		return
	}
	listingID := chi.URLParam(r, "listingID")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	listing, found, err := h.Catalog.Get(ctx, listingID)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "load listing failed", err, "A server error occurred.", "/listings")
		return
	}
	if !found {
		uierrors.RenderNotFound(w, r, "We couldn't find that place.", "/listings")
		return
	}

	if err := h.TravelLog.AddEntry(ctx, u.ID, listingID, listing.Location); err != nil {
		h.ErrLog.LogServerError(w, r, "add itinerary entry failed", err, "Failed to update itinerary.", "/listings/"+listingID)
		return
	}

	if r.Header.Get("HX-Request") == "true" {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte(`<span class="muted">Added to itinerary</span>`))
		return
	}

	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}
