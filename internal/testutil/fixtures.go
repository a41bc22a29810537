package testutil

import (
	"context"
	"net/http"
	"path/filepath"
	"testing"
	"time"

	"github.com/dalemusser/wandernext/internal/app/store/document"
	"github.com/dalemusser/wandernext/internal/app/store/identity"
	"github.com/dalemusser/wandernext/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// ModeratorLoginID is the login ID that fixtures treat as the configured
// moderator account.
const ModeratorLoginID = "admin@wandernext.com"

// WithChiURLParam adds a chi URL parameter to the request context.
// Use this in handler tests that need to access chi.URLParam values.
func WithChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// SetupTestStore creates a document store backed by a file slot in a
// per-test temp directory.
func SetupTestStore(t *testing.T) *document.Store {
	t.Helper()
	slot := document.NewFileSlot(filepath.Join(t.TempDir(), "wandernext.json"))
	return document.New(slot, zap.NewNop())
}

// TestContext returns a context with a generous timeout for test operations.
func TestContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 10*time.Second)
}

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	docs *document.Store
	ids  *identity.Store
	t    *testing.T
}

// NewFixtures creates a new Fixtures instance over the given document store.
func NewFixtures(t *testing.T, docs *document.Store) *Fixtures {
	t.Helper()
	return &Fixtures{
		docs: docs,
		ids:  identity.New(docs, ModeratorLoginID, zap.NewNop()),
		t:    t,
	}
}

// Docs returns the underlying document store for direct access in tests.
func (f *Fixtures) Docs() *document.Store {
	return f.docs
}

// CreateTraveler signs up a traveler account with the given login ID and
// returns the created account.
func (f *Fixtures) CreateTraveler(ctx context.Context, loginID string) models.Account {
	f.t.Helper()

	account, err := f.ids.Login(ctx, loginID, "traveler1!")
	if err != nil {
		f.t.Fatalf("failed to create test traveler: %v", err)
	}
	return account
}

// CreateModerator signs up the configured moderator account and returns it.
func (f *Fixtures) CreateModerator(ctx context.Context) models.Account {
	f.t.Helper()

	account, err := f.ids.Login(ctx, ModeratorLoginID, "moderate1!")
	if err != nil {
		f.t.Fatalf("failed to create test moderator: %v", err)
	}
	if !account.IsModerator() {
		f.t.Fatal("fixture moderator account does not carry the moderator role")
	}
	return account
}
