// internal/app/features/profile/profile.go
package profile

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	uierrors "github.com/dalemusser/wandernext/internal/app/features/errors"
	"github.com/dalemusser/wandernext/internal/app/store/identity"
	"github.com/dalemusser/wandernext/internal/app/system/authz"
	"github.com/dalemusser/wandernext/internal/app/system/timeouts"
	"github.com/dalemusser/wandernext/internal/app/system/viewdata"
	"github.com/dalemusser/wandernext/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
)

// profileData is the view model for the profile page.
type profileData struct {
	viewdata.BaseVM

	// Account info (read-only display)
	LoginID string

	// Editable profile fields
	DisplayName  string
	AvatarURL    string
	TravelerType string
	Interests    string // comma-joined for the form
	BudgetMin    int
	BudgetMax    int

	// Form state
	Error   string
	Success string
}

// ServeProfile renders the signed-in traveler's profile page.
func (h *Handler) ServeProfile(w http.ResponseWriter, r *http.Request) {
	_, _, accountID, ok := authz.UserCtx(r)
	if !ok {
		uierrors.RenderUnauthorized(w, r, "/login")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	account, found, err := h.Identity.Get(ctx, accountID)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "load account failed", err, "A server error occurred.", "/")
		return
	}
	if !found {
		uierrors.RenderNotFound(w, r, "Account not found.", "/")
		return
	}

	p, _, err := h.Identity.Profile(ctx, accountID)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "load profile failed", err, "A server error occurred.", "/")
		return
	}

	data := h.pageData(r, account.LoginID, p)
	if r.URL.Query().Get("success") == "profile" {
		data.Success = "Profile saved."
	}

	templates.Render(w, r, "profile", data)
}

// HandleUpdateProfile processes the profile edit form.
// POST /profile
func (h *Handler) HandleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	_, _, accountID, ok := authz.UserCtx(r)
	if !ok {
		uierrors.RenderUnauthorized(w, r, "/login")
		return
	}

	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Invalid form data.", "/profile")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	account, found, err := h.Identity.Get(ctx, accountID)
	if err != nil || !found {
		uierrors.RenderNotFound(w, r, "Account not found.", "/")
		return
	}

	displayName := strings.TrimSpace(r.FormValue("display_name"))
	travelerType := strings.TrimSpace(r.FormValue("traveler_type"))
	interests := splitInterests(r.FormValue("interests"))
	avatarURL := strings.TrimSpace(r.FormValue("avatar_url"))

	if displayName == "" {
		h.renderWithError(w, r, ctx, account.LoginID, "Please enter a display name.")
		return
	}
	switch travelerType {
	case models.TravelerSolo, models.TravelerCouple, models.TravelerFamily:
	default:
		h.renderWithError(w, r, ctx, account.LoginID, "Please choose a traveler type.")
		return
	}

	budgetMin, errMin := strconv.Atoi(strings.TrimSpace(r.FormValue("budget_min")))
	budgetMax, errMax := strconv.Atoi(strings.TrimSpace(r.FormValue("budget_max")))
	if errMin != nil || errMax != nil || budgetMin < 0 || budgetMax < budgetMin {
		h.renderWithError(w, r, ctx, account.LoginID, "Budget must be a valid range (min ≤ max).")
		return
	}

	update := identity.ProfileUpdate{
		DisplayName:  &displayName,
		TravelerType: &travelerType,
		Interests:    &interests,
		BudgetMin:    &budgetMin,
		BudgetMax:    &budgetMax,
	}
	if avatarURL != "" {
		update.AvatarURL = &avatarURL
	}

	if err := h.Identity.UpdateProfile(ctx, update); err != nil {
		h.ErrLog.LogServerError(w, r, "update profile failed", err, "Failed to save profile.", "/profile")
		return
	}

	http.Redirect(w, r, "/profile?success=profile", http.StatusSeeOther)
}

func (h *Handler) pageData(r *http.Request, loginID string, p models.Profile) profileData {
	return profileData{
		BaseVM:       viewdata.NewBaseVM(r, "Profile", "/"),
		LoginID:      loginID,
		DisplayName:  p.DisplayName,
		AvatarURL:    p.AvatarURL,
		TravelerType: p.TravelerType,
		Interests:    strings.Join(p.Interests, ", "),
		BudgetMin:    p.BudgetMin,
		BudgetMax:    p.BudgetMax,
	}
}

func (h *Handler) renderWithError(w http.ResponseWriter, r *http.Request, ctx context.Context, loginID, msg string) {
	p, _, _ := h.Identity.Profile(ctx, authz.AccountID(r))
	data := h.pageData(r, loginID, p)
	data.Error = msg
	templates.Render(w, r, "profile", data)
}

func splitInterests(raw string) []string {
	parts := strings.Split(raw, ",")
	out := []string{}
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
