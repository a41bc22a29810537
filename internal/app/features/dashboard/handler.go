// internal/app/features/dashboard/handler.go

// Package dashboard renders the signed-in traveler's home base: saved
// places, the trip itinerary, and personalized picks.
package dashboard

import (
	"context"
	"net/http"

	uierrors "github.com/dalemusser/wandernext/internal/app/features/errors"
	"github.com/dalemusser/wandernext/internal/app/store/catalog"
	"github.com/dalemusser/wandernext/internal/app/store/identity"
	"github.com/dalemusser/wandernext/internal/app/store/travellog"
	"github.com/dalemusser/wandernext/internal/app/system/auth"
	"github.com/dalemusser/wandernext/internal/app/system/recommend"
	"github.com/dalemusser/wandernext/internal/app/system/timeouts"
	"github.com/dalemusser/wandernext/internal/app/system/viewdata"
	"github.com/dalemusser/wandernext/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

const picksLimit = 3

type Handler struct {
	Catalog   *catalog.Store
	TravelLog *travellog.Store
	Identity  *identity.Store
	ErrLog    *uierrors.ErrorLogger
	Log       *zap.Logger
}

func NewHandler(cat *catalog.Store, tl *travellog.Store, ids *identity.Store, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Catalog:   cat,
		TravelLog: tl,
		Identity:  ids,
		ErrLog:    errLog,
		Log:       logger,
	}
}

type dashboardData struct {
	viewdata.BaseVM
	DisplayName string
	Bookmarks   []models.Listing
	Itinerary   []models.ItineraryEntry
	Picks       []models.Listing
}

// ServeDashboard handles GET /dashboard.
func (h *Handler) ServeDashboard(w http.ResponseWriter, r *http.Request) {
	u, ok := auth.CurrentUser(r)
	if !ok {
		uierrors.RenderUnauthorized(w, r, "/login")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	data := dashboardData{
		BaseVM:      viewdata.NewBaseVM(r, "Your trips", "/"),
		DisplayName: u.Name,
	}

	if p, ok, err := h.Identity.Profile(ctx, u.ID); err == nil && ok {
		data.DisplayName = p.DisplayName
		data.Picks = h.picks(ctx, &p)
	} else {
		if err != nil {
			h.Log.Error("load profile", zap.String("account_id", u.ID), zap.Error(err))
		}
		data.Picks = h.picks(ctx, nil)
	}

	data.Bookmarks = h.bookmarkedListings(ctx, u.ID)

	entries, err := h.TravelLog.Entries(ctx, u.ID)
	if err != nil {
		h.Log.Error("load itinerary", zap.String("account_id", u.ID), zap.Error(err))
	}
	data.Itinerary = entries

	templates.Render(w, r, "dashboard", data)
}

// bookmarkedListings resolves the account's saved listing ids against the
// catalog. Ids whose listing has since disappeared are skipped.
func (h *Handler) bookmarkedListings(ctx context.Context, accountID string) []models.Listing {
	ids, err := h.TravelLog.Bookmarks(ctx, accountID)
	if err != nil {
		h.Log.Error("load bookmarks", zap.String("account_id", accountID), zap.Error(err))
		return nil
	}

	out := make([]models.Listing, 0, len(ids))
	for _, id := range ids {
		if l, ok, err := h.Catalog.Get(ctx, id); err == nil && ok {
			out = append(out, l)
		}
	}
	return out
}

func (h *Handler) picks(ctx context.Context, profile *models.Profile) []models.Listing {
	listings, err := h.Catalog.Listings(ctx)
	if err != nil {
		h.Log.Error("load listings for picks", zap.Error(err))
		return nil
	}
	return recommend.Recommend(listings, profile, picksLimit)
}
