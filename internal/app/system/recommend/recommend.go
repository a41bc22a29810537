// internal/app/system/recommend/recommend.go

// Package recommend scores catalog listings against a traveler profile.
// It is a pure function over its inputs and never touches the document.
package recommend

import (
	"sort"

	"github.com/dalemusser/wandernext/internal/domain/models"
)

const (
	budgetFitScore    = 2
	travelerTypeScore = 3
	maxRatingScore    = 5
)

// Score returns the listing's score for the profile: +2 when the price is
// inside the budget range (inclusive), +3 when the traveler type matches,
// plus the rating capped at 5.
func Score(l models.Listing, p models.Profile) float64 {
	var sc float64
	if l.Price >= p.BudgetMin && l.Price <= p.BudgetMax {
		sc += budgetFitScore
	}
	if l.SuitsTravelerType(p.TravelerType) {
		sc += travelerTypeScore
	}
	rating := l.Rating
	if rating > maxRatingScore {
		rating = maxRatingScore
	}
	return sc + rating
}

// Recommend returns up to limit listings ranked for the profile: filtered
// to the profile's traveler type and sorted by descending score, ties
// keeping their prior relative order. A nil profile (anonymous caller)
// yields the first limit listings unfiltered and unscored.
func Recommend(listings []models.Listing, profile *models.Profile, limit int) []models.Listing {
	if limit <= 0 {
		return nil
	}
	if profile == nil {
		if len(listings) > limit {
			return listings[:limit]
		}
		return listings
	}

	var matched []models.Listing
	for _, l := range listings {
		if l.SuitsTravelerType(profile.TravelerType) {
			matched = append(matched, l)
		}
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return Score(matched[i], *profile) > Score(matched[j], *profile)
	})

	if len(matched) > limit {
		matched = matched[:limit]
	}
	return matched
}
