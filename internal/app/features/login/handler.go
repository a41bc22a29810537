// internal/app/features/login/handler.go
package login

// Terminology: User Identifiers
//   - AccountID / accountID / account_id: the opaque "usr_" string that uniquely identifies an account record
//   - LoginID / loginID / login_id: the human-readable string users type to log in

import (
	"context"
	"net/http"
	"strings"

	uierrors "github.com/dalemusser/wandernext/internal/app/features/errors"
	"github.com/dalemusser/wandernext/internal/app/store/identity"
	"github.com/dalemusser/wandernext/internal/app/system/auth"
	"github.com/dalemusser/wandernext/internal/app/system/authutil"
	"github.com/dalemusser/wandernext/internal/app/system/timeouts"
	"github.com/dalemusser/wandernext/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

type Handler struct {
	Identity      *identity.Store
	Log           *zap.Logger
	SessionMgr    *auth.SessionManager
	ErrLog        *uierrors.ErrorLogger
	GoogleEnabled bool // True if Google OAuth is configured
}

/*─────────────────────────────────────────────────────────────────────────────*
| Template-data                                                               |
*─────────────────────────────────────────────────────────────────────────────*/

type loginFormData struct {
	viewdata.BaseVM
	Error         string
	LoginID       string // What the user typed
	ReturnURL     string
	PasswordRules string
	GoogleEnabled bool // True if Google OAuth is configured
}

func NewHandler(
	ids *identity.Store,
	sessionMgr *auth.SessionManager,
	errLog *uierrors.ErrorLogger,
	googleEnabled bool,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		Identity:      ids,
		Log:           logger,
		SessionMgr:    sessionMgr,
		ErrLog:        errLog,
		GoogleEnabled: googleEnabled,
	}
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /login                                                                  |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeLogin(w http.ResponseWriter, r *http.Request) {
	ret := query.Get(r, "return")

	templates.Render(w, r, "login", loginFormData{
		BaseVM:        viewdata.NewBaseVM(r, "Login", "/"),
		ReturnURL:     ret,
		PasswordRules: authutil.PasswordRules(),
		GoogleEnabled: h.GoogleEnabled,
	})
}

/*─────────────────────────────────────────────────────────────────────────────*
| POST /login                                                                 |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) HandleLoginPost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Invalid form data.", "/login")
		return
	}

	loginID := strings.TrimSpace(r.FormValue("login_id"))
	if loginID == "" {
		h.renderFormWithError(w, r, "Please enter your login ID.", loginID)
		return
	}

	// The registry accepts any credential for an existing account; the
	// rules only gate what new credentials may look like.
	credential := r.FormValue("password")
	if ok, msg := authutil.ValidatePassword(credential); !ok {
		h.renderFormWithError(w, r, msg, loginID)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	account, err := h.Identity.Login(ctx, loginID, credential)
	if err != nil {
		if err == identity.ErrEmptyLoginID {
			h.renderFormWithError(w, r, "Please enter your login ID.", loginID)
			return
		}
		h.ErrLog.LogServerError(w, r, "login failed", err, "A server error occurred.", "/login")
		return
	}

	name := account.LoginID
	if profile, ok, perr := h.Identity.Profile(ctx, account.ID); perr == nil && ok {
		name = profile.DisplayName
	}

	sessionUser := &auth.SessionUser{
		ID:      account.ID,
		Name:    name,
		LoginID: account.LoginID,
		Role:    account.Role,
	}
	if err := h.SessionMgr.SignIn(w, r, sessionUser); err != nil {
		h.ErrLog.LogServerError(w, r, "save session failed", err, "A server error occurred.", "/login")
		return
	}

	h.Log.Info("user signed in",
		zap.String("account_id", account.ID),
		zap.String("role", account.Role))

	http.Redirect(w, r, safeReturn(r.FormValue("return")), http.StatusSeeOther)
}

// safeReturn only honors same-site relative paths; anything else falls
// back to the dashboard.
func safeReturn(ret string) string {
	ret = strings.TrimSpace(ret)
	if ret == "" || !strings.HasPrefix(ret, "/") || strings.HasPrefix(ret, "//") {
		return "/dashboard"
	}
	return ret
}

func (h *Handler) renderFormWithError(w http.ResponseWriter, r *http.Request, msg, loginID string) {
	templates.Render(w, r, "login", loginFormData{
		BaseVM:        viewdata.NewBaseVM(r, "Login", "/"),
		Error:         msg,
		LoginID:       loginID,
		ReturnURL:     strings.TrimSpace(r.FormValue("return")),
		PasswordRules: authutil.PasswordRules(),
		GoogleEnabled: h.GoogleEnabled,
	})
}
