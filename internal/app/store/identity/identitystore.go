// internal/app/store/identity/identitystore.go
package identity

// Terminology: User Identifiers
//   - AccountID / accountID / account_id: The opaque string (UUID) that uniquely identifies an account record
//   - LoginID / loginID / login_id: The human-readable string users type to log in

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/dalemusser/wandernext/internal/app/store/document"
	"github.com/dalemusser/wandernext/internal/app/system/authutil"
	"github.com/dalemusser/wandernext/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/text"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrEmptyLoginID is returned when a login is attempted with a blank login ID.
var ErrEmptyLoginID = errors.New("login id is empty")

// Store is the identity and profile registry. Accounts are created lazily
// on first login; each account has exactly one profile once created.
type Store struct {
	Docs *document.Store
	Log  *zap.Logger

	// ModeratorLoginID grants the moderator role to the matching account
	// at login time. Comes from app config, mirrors a bootstrap admin.
	ModeratorLoginID string
}

// New creates an identity Store over the document store.
func New(docs *document.Store, moderatorLoginID string, logger *zap.Logger) *Store {
	return &Store{Docs: docs, Log: logger, ModeratorLoginID: text.Fold(moderatorLoginID)}
}

// Login resolves or creates the account for loginID and signs it in.
//
// The credential is intentionally not verified against the stored record:
// a known loginID is reused as-is (mock identity contract). An unknown
// loginID creates an account plus a default profile. Resolution is
// idempotent: the same loginID always yields the same account id, and a
// repeat login never resets the profile.
func (s *Store) Login(ctx context.Context, loginID, credential string) (models.Account, error) {
	loginID = strings.TrimSpace(loginID)
	if loginID == "" {
		return models.Account{}, ErrEmptyLoginID
	}
	key := text.Fold(loginID)

	var account models.Account
	err := s.Docs.Update(ctx, func(doc *models.Document) error {
		existing, known := doc.Accounts[key]
		if known {
			account = existing
			doc.Session = existing.ID
			return nil
		}

		hash, err := authutil.HashCredential(credential)
		if err != nil {
			return err
		}

		role := models.RoleTraveler
		if s.ModeratorLoginID != "" && key == s.ModeratorLoginID {
			role = models.RoleModerator
		}

		account = models.Account{
			ID:             "usr_" + uuid.NewString(),
			LoginID:        loginID,
			LoginIDCI:      key,
			CredentialHash: hash,
			Role:           role,
			CreatedAt:      time.Now().UTC(),
		}
		doc.Accounts[key] = account
		doc.Profiles[account.ID] = models.DefaultProfile(displayNameFor(loginID))
		doc.Session = account.ID
		return nil
	})
	if err != nil {
		return models.Account{}, err
	}

	s.Log.Info("account signed in",
		zap.String("account_id", account.ID),
		zap.String("role", account.Role))
	return account, nil
}

// Logout clears the document session. Signing out while signed out is a no-op.
func (s *Store) Logout(ctx context.Context) error {
	return s.Docs.Update(ctx, func(doc *models.Document) error {
		doc.Session = ""
		return nil
	})
}

// Current returns the signed-in account, ok=false when there is no session.
func (s *Store) Current(ctx context.Context) (models.Account, bool, error) {
	doc, err := s.Docs.Load(ctx)
	if err != nil {
		return models.Account{}, false, err
	}
	if doc.Session == "" {
		return models.Account{}, false, nil
	}
	for _, a := range doc.Accounts {
		if a.ID == doc.Session {
			return a, true, nil
		}
	}
	return models.Account{}, false, nil
}

// Get returns the account with the given account id.
func (s *Store) Get(ctx context.Context, accountID string) (models.Account, bool, error) {
	doc, err := s.Docs.Load(ctx)
	if err != nil {
		return models.Account{}, false, err
	}
	for _, a := range doc.Accounts {
		if a.ID == accountID {
			return a, true, nil
		}
	}
	return models.Account{}, false, nil
}

// Profile returns the profile for the given account id.
func (s *Store) Profile(ctx context.Context, accountID string) (models.Profile, bool, error) {
	doc, err := s.Docs.Load(ctx)
	if err != nil {
		return models.Profile{}, false, err
	}
	p, ok := doc.Profiles[accountID]
	return p, ok, nil
}

// ProfileUpdate carries the fields of a partial profile edit. Nil fields
// are left untouched by UpdateProfile.
type ProfileUpdate struct {
	DisplayName  *string
	AvatarURL    *string
	TravelerType *string
	Interests    *[]string
	BudgetMin    *int
	BudgetMax    *int
}

// UpdateProfile merges the given fields into the signed-in account's
// profile. With no session it is silently a no-op, per the prototype
// identity contract.
func (s *Store) UpdateProfile(ctx context.Context, update ProfileUpdate) error {
	return s.Docs.Update(ctx, func(doc *models.Document) error {
		if doc.Session == "" {
			return nil
		}
		p, ok := doc.Profiles[doc.Session]
		if !ok {
			return nil
		}
		if update.DisplayName != nil {
			p.DisplayName = *update.DisplayName
		}
		if update.AvatarURL != nil {
			p.AvatarURL = *update.AvatarURL
		}
		if update.TravelerType != nil {
			p.TravelerType = *update.TravelerType
		}
		if update.Interests != nil {
			p.Interests = *update.Interests
		}
		if update.BudgetMin != nil {
			p.BudgetMin = *update.BudgetMin
		}
		if update.BudgetMax != nil {
			p.BudgetMax = *update.BudgetMax
		}
		doc.Profiles[doc.Session] = p
		return nil
	})
}

// displayNameFor derives the default display name from a login ID: the
// part before the '@' for emails, the whole ID otherwise.
func displayNameFor(loginID string) string {
	if at := strings.Index(loginID, "@"); at > 0 {
		return loginID[:at]
	}
	return loginID
}
