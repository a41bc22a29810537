package authgoogle_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/dalemusser/wandernext/internal/app/features/authgoogle"
	"github.com/dalemusser/wandernext/internal/app/store/identity"
	"github.com/dalemusser/wandernext/internal/app/system/auth"
	"github.com/dalemusser/wandernext/internal/testutil"
	"go.uber.org/zap"
)

func newHandler(t *testing.T, clientID, clientSecret string) *authgoogle.Handler {
	t.Helper()
	docs := testutil.SetupTestStore(t)
	logger := zap.NewNop()
	ids := identity.New(docs, testutil.ModeratorLoginID, logger)

	sessionMgr, err := auth.NewSessionManager("test-session-key-must-be-32-chars-long", "test-session", "", 24*time.Hour, false, logger)
	if err != nil {
		t.Fatalf("NewSessionManager failed: %v", err)
	}

	return authgoogle.NewHandler(ids, sessionMgr, clientID, clientSecret, "http://localhost:8080", false, logger)
}

func newTestHandler(t *testing.T) *authgoogle.Handler {
	t.Helper()
	return newHandler(t, "test-client-id", "test-client-secret")
}

func TestNewHandler(t *testing.T) {
	h := newTestHandler(t)
	if h == nil {
		t.Fatal("NewHandler() returned nil")
	}
}

func TestIsConfigured_Configured(t *testing.T) {
	h := newTestHandler(t)
	if !h.IsConfigured() {
		t.Error("IsConfigured() should return true with client ID and secret")
	}
}

func TestIsConfigured_NotConfigured(t *testing.T) {
	h := newHandler(t, "", "")
	if h.IsConfigured() {
		t.Error("IsConfigured() should return false without client ID and secret")
	}
}

func TestServeLogin_NotConfigured(t *testing.T) {
	h := newHandler(t, "", "")

	req := httptest.NewRequest("GET", "/auth/google", nil)
	rec := httptest.NewRecorder()

	h.ServeLogin(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Errorf("expected status %d, got %d", http.StatusSeeOther, rec.Code)
	}
	if location := rec.Header().Get("Location"); !strings.Contains(location, "google_not_configured") {
		t.Errorf("Location = %q, want to contain 'google_not_configured'", location)
	}
}

func TestServeLogin_RedirectsToGoogle(t *testing.T) {
	handler := newTestHandler(t)

	req := httptest.NewRequest("GET", "/auth/google", nil)
	rec := httptest.NewRecorder()

	handler.ServeLogin(rec, req)

	if rec.Code != http.StatusTemporaryRedirect {
		t.Errorf("expected status %d, got %d", http.StatusTemporaryRedirect, rec.Code)
	}
	if location := rec.Header().Get("Location"); !strings.Contains(location, "accounts.google.com") {
		t.Errorf("Location = %q, want to contain 'accounts.google.com'", location)
	}

	// The state must land in a cookie for the callback to check.
	var found bool
	for _, c := range rec.Result().Cookies() {
		if c.Name == "oauth_state" && c.Value != "" {
			found = true
		}
	}
	if !found {
		t.Error("expected oauth_state cookie to be set")
	}
}

func TestServeCallback_MissingState(t *testing.T) {
	handler := newTestHandler(t)

	req := httptest.NewRequest("GET", "/auth/google/callback?code=test-code", nil)
	rec := httptest.NewRecorder()

	handler.ServeCallback(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Errorf("expected status %d, got %d", http.StatusSeeOther, rec.Code)
	}
	if location := rec.Header().Get("Location"); !strings.Contains(location, "invalid_state") {
		t.Errorf("Location = %q, want to contain 'invalid_state'", location)
	}
}

func TestServeCallback_GoogleError(t *testing.T) {
	handler := newTestHandler(t)

	req := httptest.NewRequest("GET", "/auth/google/callback?error=access_denied", nil)
	rec := httptest.NewRecorder()

	handler.ServeCallback(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Errorf("expected status %d, got %d", http.StatusSeeOther, rec.Code)
	}
	if location := rec.Header().Get("Location"); !strings.Contains(location, "google_denied") {
		t.Errorf("Location = %q, want to contain 'google_denied'", location)
	}
}

func TestServeCallback_StateMismatch(t *testing.T) {
	handler := newTestHandler(t)

	req := httptest.NewRequest("GET", "/auth/google/callback?state=forged&code=test-code", nil)
	req.AddCookie(&http.Cookie{Name: "oauth_state", Value: "genuine"})
	rec := httptest.NewRecorder()

	handler.ServeCallback(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Errorf("expected status %d, got %d", http.StatusSeeOther, rec.Code)
	}
	if location := rec.Header().Get("Location"); !strings.Contains(location, "invalid_state") {
		t.Errorf("Location = %q, want to contain 'invalid_state'", location)
	}
}

func TestRoutes(t *testing.T) {
	handler := newTestHandler(t)

	router := authgoogle.Routes(handler)
	if router == nil {
		t.Fatal("Routes() returned nil")
	}
}
