package recommend_test

import (
	"testing"

	"github.com/dalemusser/wandernext/internal/app/system/recommend"
	"github.com/dalemusser/wandernext/internal/domain/models"
)

func soloProfile(min, max int) *models.Profile {
	return &models.Profile{TravelerType: models.TravelerSolo, BudgetMin: min, BudgetMax: max}
}

func listing(id string, price int, rating float64, types ...string) models.Listing {
	return models.Listing{ID: id, Price: price, Rating: rating, TravelerTypes: types}
}

func TestRecommend_FiltersTravelerType(t *testing.T) {
	listings := []models.Listing{
		listing("a", 50, 4.0, models.TravelerSolo),
		listing("b", 50, 4.9, models.TravelerFamily),
		listing("c", 50, 4.5, models.TravelerSolo, models.TravelerCouple),
	}

	got := recommend.Recommend(listings, soloProfile(0, 100), 10)
	if len(got) != 2 {
		t.Fatalf("got %d listings, want 2", len(got))
	}
	for _, l := range got {
		if !l.SuitsTravelerType(models.TravelerSolo) {
			t.Errorf("listing %s does not suit the profile's traveler type", l.ID)
		}
	}
}

func TestRecommend_RespectsLimit(t *testing.T) {
	var listings []models.Listing
	for _, id := range []string{"a", "b", "c", "d", "e"} {
		listings = append(listings, listing(id, 50, 4.0, models.TravelerSolo))
	}

	if got := recommend.Recommend(listings, soloProfile(0, 100), 3); len(got) != 3 {
		t.Errorf("got %d listings, want 3", len(got))
	}
}

func TestRecommend_DescendingScoreOrder(t *testing.T) {
	p := soloProfile(0, 100)
	listings := []models.Listing{
		listing("cheap-low", 50, 3.0, models.TravelerSolo),   // 2+3+3 = 8
		listing("pricey-high", 500, 4.9, models.TravelerSolo), // 3+4.9 = 7.9
		listing("cheap-high", 60, 4.8, models.TravelerSolo),  // 2+3+4.8 = 9.8
	}

	got := recommend.Recommend(listings, p, 3)
	if len(got) != 3 {
		t.Fatalf("got %d listings, want 3", len(got))
	}
	for i := 1; i < len(got); i++ {
		if recommend.Score(got[i], *p) > recommend.Score(got[i-1], *p) {
			t.Errorf("scores not descending at %d: %s before %s", i, got[i-1].ID, got[i].ID)
		}
	}
	if got[0].ID != "cheap-high" {
		t.Errorf("top pick: got %s, want cheap-high", got[0].ID)
	}
}

func TestRecommend_StableTies(t *testing.T) {
	listings := []models.Listing{
		listing("first", 50, 4.0, models.TravelerSolo),
		listing("second", 50, 4.0, models.TravelerSolo),
		listing("third", 50, 4.0, models.TravelerSolo),
	}

	got := recommend.Recommend(listings, soloProfile(0, 100), 3)
	want := []string{"first", "second", "third"}
	for i, l := range got {
		if l.ID != want[i] {
			t.Errorf("position %d: got %s, want %s (ties must keep prior order)", i, l.ID, want[i])
		}
	}
}

func TestRecommend_AnonymousGetsFirstN(t *testing.T) {
	listings := []models.Listing{
		listing("a", 50, 4.0, models.TravelerFamily),
		listing("b", 50, 4.9, models.TravelerCouple),
		listing("c", 50, 4.5, models.TravelerSolo),
	}

	got := recommend.Recommend(listings, nil, 2)
	if len(got) != 2 || got[0].ID != "a" || got[1].ID != "b" {
		t.Errorf("anonymous: got %v, want first two unfiltered", got)
	}
}

func TestScore_RatingCappedAtFive(t *testing.T) {
	l := listing("x", 50, 9.9, models.TravelerSolo)
	p := soloProfile(0, 100)

	// 2 (budget) + 3 (type) + 5 (capped rating)
	if got := recommend.Score(l, *p); got != 10 {
		t.Errorf("Score: got %v, want 10", got)
	}
}

func TestScore_BudgetBoundariesInclusive(t *testing.T) {
	p := soloProfile(50, 100)

	atMin := recommend.Score(listing("min", 50, 0, models.TravelerSolo), *p)
	atMax := recommend.Score(listing("max", 100, 0, models.TravelerSolo), *p)
	outside := recommend.Score(listing("out", 101, 0, models.TravelerSolo), *p)

	if atMin != 5 || atMax != 5 {
		t.Errorf("boundary scores: got min=%v max=%v, want 5 each", atMin, atMax)
	}
	if outside != 3 {
		t.Errorf("outside-budget score: got %v, want 3", outside)
	}
}
