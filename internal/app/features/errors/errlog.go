// internal/app/features/errors/errlog.go
package errors

import (
	"net/http"

	"github.com/dalemusser/wandernext/internal/app/system/auth"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

// ErrorLogger pairs structured logging with user-facing error pages.
// Handlers call one method and get both: the operational detail goes to
// the log, the friendly message goes to the browser.
type ErrorLogger struct {
	log *zap.Logger
}

// NewErrorLogger builds an ErrorLogger on the given zap logger.
func NewErrorLogger(logger *zap.Logger) *ErrorLogger {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ErrorLogger{log: logger}
}

func (e *ErrorLogger) logRequest(r *http.Request, level func(string, ...zap.Field), logMsg string, err error) {
	fields := []zap.Field{
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
	}
	if u, ok := auth.CurrentUser(r); ok {
		fields = append(fields, zap.String("account_id", u.ID))
	}
	if err != nil {
		fields = append(fields, zap.Error(err))
	}
	level(logMsg, fields...)
}

func (e *ErrorLogger) renderPage(w http.ResponseWriter, r *http.Request, status int, title, userMsg, backURL string) {
	u, signed := auth.CurrentUser(r)
	role, name := "", ""
	if signed && u != nil {
		role, name = u.Role, u.Name
	}
	if backURL == "" {
		backURL = "/"
	}

	w.WriteHeader(status)
	templates.Render(w, r, "error_message", pageData{
		Title:      title,
		IsLoggedIn: signed,
		Role:       role,
		UserName:   name,
		Message:    userMsg,
		BackURL:    backURL,
	})
}

// LogBadRequest logs the detail at warn level and renders a 400 page
// with the user-facing message and a back link.
func (e *ErrorLogger) LogBadRequest(w http.ResponseWriter, r *http.Request, logMsg string, err error, userMsg, backURL string) {
	e.logRequest(r, e.log.Warn, logMsg, err)
	e.renderPage(w, r, http.StatusBadRequest, "Something's not right", userMsg, backURL)
}

// LogForbidden logs the detail at warn level and renders a 403 page.
func (e *ErrorLogger) LogForbidden(w http.ResponseWriter, r *http.Request, logMsg string, err error, userMsg, backURL string) {
	e.logRequest(r, e.log.Warn, logMsg, err)
	e.renderPage(w, r, http.StatusForbidden, "Access denied", userMsg, backURL)
}

// LogServerError logs the detail at error level and renders a 500 page.
func (e *ErrorLogger) LogServerError(w http.ResponseWriter, r *http.Request, logMsg string, err error, userMsg, backURL string) {
	e.logRequest(r, e.log.Error, logMsg, err)
	e.renderPage(w, r, http.StatusInternalServerError, "Something went wrong", userMsg, backURL)
}

// HTMX variants write a small fragment instead of a full page so the
// message can land inside the swapped target.

func (e *ErrorLogger) htmxFragment(w http.ResponseWriter, status int, userMsg string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	w.Write([]byte(`<div class="error-banner" role="alert">` + userMsg + `</div>`))
}

// HTMXLogBadRequest logs at warn level and writes a 400 error fragment.
func (e *ErrorLogger) HTMXLogBadRequest(w http.ResponseWriter, r *http.Request, logMsg string, err error, userMsg, backURL string) {
	e.logRequest(r, e.log.Warn, logMsg, err)
	e.htmxFragment(w, http.StatusBadRequest, userMsg)
}

// HTMXLogForbidden logs at warn level and writes a 403 error fragment.
func (e *ErrorLogger) HTMXLogForbidden(w http.ResponseWriter, r *http.Request, logMsg string, err error, userMsg, backURL string) {
	e.logRequest(r, e.log.Warn, logMsg, err)
	e.htmxFragment(w, http.StatusForbidden, userMsg)
}

// HTMXLogServerError logs at error level and writes a 500 error fragment.
func (e *ErrorLogger) HTMXLogServerError(w http.ResponseWriter, r *http.Request, logMsg string, err error, userMsg, backURL string) {
	e.logRequest(r, e.log.Error, logMsg, err)
	e.htmxFragment(w, http.StatusInternalServerError, userMsg)
}
