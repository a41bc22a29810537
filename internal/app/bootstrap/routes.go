// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	aboutfeature "github.com/dalemusser/wandernext/internal/app/features/about"
	authgooglefeature "github.com/dalemusser/wandernext/internal/app/features/authgoogle"
	communityfeature "github.com/dalemusser/wandernext/internal/app/features/community"
	dashboardfeature "github.com/dalemusser/wandernext/internal/app/features/dashboard"
	errorsfeature "github.com/dalemusser/wandernext/internal/app/features/errors"
	healthfeature "github.com/dalemusser/wandernext/internal/app/features/health"
	homefeature "github.com/dalemusser/wandernext/internal/app/features/home"
	listingsfeature "github.com/dalemusser/wandernext/internal/app/features/listings"
	loginfeature "github.com/dalemusser/wandernext/internal/app/features/login"
	logoutfeature "github.com/dalemusser/wandernext/internal/app/features/logout"
	profilefeature "github.com/dalemusser/wandernext/internal/app/features/profile"
	userinfofeature "github.com/dalemusser/wandernext/internal/app/features/userinfo"
	utilitiesfeature "github.com/dalemusser/wandernext/internal/app/features/utilities"
	"github.com/dalemusser/wandernext/internal/app/store/catalog"
	"github.com/dalemusser/wandernext/internal/app/store/forum"
	"github.com/dalemusser/wandernext/internal/app/store/identity"
	"github.com/dalemusser/wandernext/internal/app/store/travellog"
	"github.com/dalemusser/wandernext/internal/app/system/auth"
	"github.com/dalemusser/wandernext/internal/app/system/destinfo"
	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/pantry/fileserver"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"github.com/gorilla/csrf"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, store connection, and any
// Startup hooks have completed. It boots the template engine, applies
// session and CSRF middleware, and mounts feature routers for every
// application area: home, listings, community, dashboard, profile,
// utilities, and authentication.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	// Secure cookies are enabled in production mode.
	secure := coreCfg.Env == "prod"
	sessionMgr, err := auth.NewSessionManager(appCfg.SessionKey, appCfg.SessionName, appCfg.SessionDomain, appCfg.SessionTTL, secure, logger)
	if err != nil {
		logger.Error("session manager init failed", zap.Error(err))
		return nil, err
	}

	// Initialize and boot the template engine once at startup.
	// Dev mode enables template reloading for faster iteration.
	eng := templates.New(coreCfg.Env == "dev")
	if err := eng.Boot(logger); err != nil {
		logger.Error("template engine boot failed", zap.Error(err))
		return nil, err
	}
	templates.UseEngine(eng, logger)

	// Stores over the shared document.
	ids := identity.New(deps.Docs, appCfg.ModeratorLoginID, logger)
	cat := catalog.New(deps.Docs, logger)
	tl := travellog.New(deps.Docs, logger)
	forumStore := forum.New(deps.Docs, logger)
	dest := destinfo.NewClient(appCfg.GeocodeBaseURL, appCfg.WeatherBaseURL, logger)

	errLog := errorsfeature.NewErrorLogger(logger)
	googleEnabled := appCfg.GoogleClientID != "" && appCfg.GoogleClientSecret != ""

	r := chi.NewRouter()

	// Global auth middleware: loads SessionUser into context if logged in.
	// This makes the current user available to all handlers via auth.CurrentUser(r).
	r.Use(sessionMgr.LoadSessionUser)

	// CSRF protection for all form posts. Templates embed the token via
	// viewdata.NewBaseVM.
	r.Use(csrf.Protect([]byte(appCfg.SessionKey),
		csrf.Secure(secure),
		csrf.Path("/"),
	))

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.Docs, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Static assets with pre-compressed file support (gzip/brotli)
	r.Handle("/static/*", fileserver.Handler("/static", "public"))

	// Public pages
	homeHandler := homefeature.NewHandler(cat, ids, logger)
	r.Mount("/", homefeature.Routes(homeHandler))

	aboutHandler := aboutfeature.NewHandler(logger)
	r.Mount("/about", aboutfeature.Routes(aboutHandler))

	listingsHandler := listingsfeature.NewHandler(cat, tl, errLog, logger)
	r.Mount("/listings", listingsfeature.Routes(listingsHandler, sessionMgr))

	communityHandler := communityfeature.NewHandler(forumStore, ids, errLog, logger)
	r.Mount("/community", communityfeature.Routes(communityHandler, sessionMgr))

	utilitiesHandler := utilitiesfeature.NewHandler(dest, appCfg.HomeCountry, logger)
	r.Mount("/utilities", utilitiesfeature.Routes(utilitiesHandler))

	// Authentication
	loginHandler := loginfeature.NewHandler(ids, sessionMgr, errLog, googleEnabled, logger)
	r.Mount("/login", loginfeature.Routes(loginHandler))

	logoutHandler := logoutfeature.NewHandler(ids, sessionMgr, logger)
	r.Mount("/logout", logoutfeature.Routes(logoutHandler, sessionMgr))

	googleHandler := authgooglefeature.NewHandler(ids, sessionMgr, appCfg.GoogleClientID, appCfg.GoogleClientSecret, appCfg.BaseURL, secure, logger)
	r.Mount("/auth/google", authgooglefeature.Routes(googleHandler))

	// Error pages
	errorsHandler := errorsfeature.NewHandler()
	r.Get("/forbidden", errorsHandler.Forbidden)
	r.Get("/unauthorized", errorsHandler.Unauthorized)

	// Signed-in areas
	dashboardHandler := dashboardfeature.NewHandler(cat, tl, ids, errLog, logger)
	r.Mount("/dashboard", dashboardfeature.Routes(dashboardHandler, sessionMgr))

	profileHandler := profilefeature.NewHandler(ids, errLog, logger)
	r.Mount("/profile", profilefeature.Routes(profileHandler, sessionMgr))

	// Session introspection for front-end scripts
	userinfofeature.MountRoutes(r, userinfofeature.NewHandler())

	return r, nil
}
