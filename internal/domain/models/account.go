// internal/domain/models/account.go
package models

import "time"

// Terminology: User Identifiers
//   - AccountID / accountID / account_id: The opaque string (UUID) that uniquely identifies an account record
//   - LoginID / loginID / login_id: The human-readable string users type to log in

// Account roles.
const (
	RoleTraveler  = "traveler"
	RoleModerator = "moderator"
)

// Account is a registered identity: one per unique login ID.
//
// The credential is opaque by contract: it is hashed at rest but never
// verified on login. WanderNext is a prototype identity layer, not an
// auth system.
type Account struct {
	ID             string    `json:"id"`
	LoginID        string    `json:"login_id"`
	LoginIDCI      string    `json:"login_id_ci"` // lowercase, diacritics-stripped
	CredentialHash string    `json:"credential_hash,omitempty"`
	Role           string    `json:"role"` // traveler | moderator
	CreatedAt      time.Time `json:"created_at"`
}

// IsModerator reports whether the account carries the moderator capability.
func (a Account) IsModerator() bool {
	return a.Role == RoleModerator
}

// Traveler types a profile can declare.
const (
	TravelerSolo   = "solo"
	TravelerCouple = "couple"
	TravelerFamily = "family"
)

// Profile is the per-account preference record, created with defaults on
// first login and merged field-by-field on update.
type Profile struct {
	DisplayName  string   `json:"display_name"`
	AvatarURL    string   `json:"avatar_url,omitempty"`
	TravelerType string   `json:"traveler_type"` // solo | couple | family
	Interests    []string `json:"interests"`
	BudgetMin    int      `json:"budget_min"`
	BudgetMax    int      `json:"budget_max"`
}

// DefaultProfile returns the profile a brand-new account starts with.
// The display name is derived from the login ID's local part.
func DefaultProfile(displayName string) Profile {
	return Profile{
		DisplayName:  displayName,
		TravelerType: TravelerSolo,
		Interests:    []string{"nature"},
		BudgetMin:    0,
		BudgetMax:    1000,
	}
}
