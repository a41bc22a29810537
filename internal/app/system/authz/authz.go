// internal/app/system/authz/authz.go
package authz

import (
	"net/http"
	"strings"

	"github.com/dalemusser/wandernext/internal/app/system/auth"
)

// UserCtx returns the user's role (lowercased), name, account ID, and a
// found flag. If no user is present in context, it returns
// "visitor", "", "", false. This ensures callers can trust that ok=true
// means a valid, authenticated user.
// The role is normalized to lowercase for consistent comparison.
func UserCtx(r *http.Request) (role string, name string, accountID string, ok bool) {
	user, ok := auth.CurrentUser(r)
	if !ok {
		return "visitor", "", "", false
	}
	return strings.ToLower(user.Role), user.Name, user.ID, true
}

// IsModerator reports whether the current request's user is a moderator.
func IsModerator(r *http.Request) bool {
	role, _, _, ok := UserCtx(r)
	return ok && role == RoleModerator
}

// IsTraveler reports whether the current request's user is a regular traveler.
func IsTraveler(r *http.Request) bool {
	role, _, _, ok := UserCtx(r)
	return ok && role == RoleTraveler
}

// AccountID returns the current user's account ID, or "" if not signed in.
func AccountID(r *http.Request) string {
	_, _, id, ok := UserCtx(r)
	if !ok {
		return ""
	}
	return id
}
