package home

import (
	"context"
	"net/http"

	"github.com/dalemusser/wandernext/internal/app/store/catalog"
	"github.com/dalemusser/wandernext/internal/app/store/identity"
	"github.com/dalemusser/wandernext/internal/app/system/auth"
	"github.com/dalemusser/wandernext/internal/app/system/recommend"
	"github.com/dalemusser/wandernext/internal/app/system/timeouts"
	"github.com/dalemusser/wandernext/internal/app/system/viewdata"
	"github.com/dalemusser/wandernext/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

// topPicksLimit caps the "top picks for you" strip on the landing page.
const topPicksLimit = 4

// Handler holds dependencies needed to serve the home page.
type Handler struct {
	Catalog  *catalog.Store
	Identity *identity.Store
	Log      *zap.Logger
}

func NewHandler(cat *catalog.Store, ids *identity.Store, logger *zap.Logger) *Handler {
	return &Handler{
		Catalog:  cat,
		Identity: ids,
		Log:      logger,
	}
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET / – landing                                                             |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeRoot(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	trending, err := h.Catalog.Trending(ctx)
	if err != nil {
		h.Log.Error("load trending", zap.Error(err))
	}
	listings, err := h.Catalog.Listings(ctx)
	if err != nil {
		h.Log.Error("load listings", zap.Error(err))
	}

	// Signed-in travelers get ranked picks; visitors see the plain catalog.
	var profile *models.Profile
	if u, ok := auth.CurrentUser(r); ok {
		if p, found, perr := h.Identity.Profile(ctx, u.ID); perr == nil && found {
			profile = &p
		}
	}

	data := struct {
		viewdata.BaseVM
		Trending []models.TrendingItem
		TopPicks []models.Listing
	}{
		BaseVM:   viewdata.NewBaseVM(r, "Welcome", "/"),
		Trending: trending,
		TopPicks: recommend.Recommend(listings, profile, topPicksLimit),
	}

	templates.Render(w, r, "home", data)
}
