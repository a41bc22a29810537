// internal/app/features/listings/list.go
package listings

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/dalemusser/wandernext/internal/app/store/catalog"
	"github.com/dalemusser/wandernext/internal/app/system/auth"
	"github.com/dalemusser/wandernext/internal/app/system/timeouts"
	"github.com/dalemusser/wandernext/internal/app/system/viewdata"
	"github.com/dalemusser/wandernext/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

// listingVM decorates a listing with the viewer's bookmark state.
type listingVM struct {
	models.Listing
	Bookmarked bool
}

type listPageData struct {
	viewdata.BaseVM
	Listings  []listingVM
	Query     string
	Category  string
	MaxPrice  string
	MinRating string
}

// ServeList handles GET /listings with optional search and filters.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	q := strings.TrimSpace(query.Get(r, "q"))
	category := strings.TrimSpace(query.Get(r, "category"))
	maxPriceRaw := strings.TrimSpace(query.Get(r, "max_price"))
	minRatingRaw := strings.TrimSpace(query.Get(r, "min_rating"))

	var (
		results []models.Listing
		err     error
	)
	if q != "" {
		results, err = h.Catalog.Search(ctx, q)
	} else {
		filter := catalog.Filter{Category: category}
		if v, convErr := strconv.Atoi(maxPriceRaw); convErr == nil && v > 0 {
			filter.MaxPrice = v
		}
		if v, convErr := strconv.ParseFloat(minRatingRaw, 64); convErr == nil && v > 0 {
			filter.MinRating = v
		}
		results, err = h.Catalog.Browse(ctx, filter)
	}
	if err != nil {
		h.ErrLog.LogServerError(w, r, "browse listings failed", err, "A server error occurred.", "/")
		return
	}

	data := listPageData{
		BaseVM:    viewdata.NewBaseVM(r, "Explore", "/"),
		Listings:  h.decorate(ctx, r, results),
		Query:     q,
		Category:  category,
		MaxPrice:  maxPriceRaw,
		MinRating: minRatingRaw,
	}

	templates.Render(w, r, "listings_list", data)
}

// decorate marks each listing with the viewer's bookmark state. Visitors
// get everything unmarked.
func (h *Handler) decorate(ctx context.Context, r *http.Request, in []models.Listing) []listingVM {
	out := make([]listingVM, 0, len(in))

	var bookmarked map[string]bool
	if u, ok := auth.CurrentUser(r); ok {
		ids, err := h.TravelLog.Bookmarks(ctx, u.ID)
		if err != nil {
			h.Log.Error("load bookmarks", zap.Error(err))
		} else {
			bookmarked = make(map[string]bool, len(ids))
			for _, id := range ids {
				bookmarked[id] = true
			}
		}
	}

	for _, l := range in {
		out = append(out, listingVM{Listing: l, Bookmarked: bookmarked[l.ID]})
	}
	return out
}
