// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"
	"time"

	"github.com/dalemusser/waffle/config"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.uber.org/zap"
)

// appConfigKeys defines the configuration keys for WanderNext.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: store_backend, session_name, etc.
//   - Environment variables: WANDERNEXT_STORE_BACKEND, WANDERNEXT_SESSION_NAME, etc.
//   - Command-line flags: --store_backend, --session_name, etc.
var appConfigKeys = []config.AppKey{
	// Document store
	{Name: "store_backend", Default: "file", Desc: "Document store backend: 'file' or 'mongo'"},
	{Name: "store_path", Default: "./data/wandernext.json", Desc: "JSON file path for the file backend"},
	{Name: "store_slot_key", Default: "wandernext_v1", Desc: "Document key for the mongo backend"},

	// MongoDB (mongo backend only)
	{Name: "mongo_uri", Default: "mongodb://localhost:27017", Desc: "MongoDB connection URI"},
	{Name: "mongo_database", Default: "wandernext", Desc: "MongoDB database name"},

	// Sessions
	{Name: "session_key", Default: "dev-only-change-me-please-0123456789ABCDEF", Desc: "Session signing key (must be strong in production)"},
	{Name: "session_name", Default: "wandernext-session", Desc: "Session cookie name"},
	{Name: "session_domain", Default: "", Desc: "Session cookie domain (blank means current host)"},
	{Name: "session_ttl", Default: "168h", Desc: "Session lifetime (e.g., 24h, 168h)"},

	// The moderator seat
	{Name: "moderator_login_id", Default: "admin@wandernext.com", Desc: "Login id granted the moderator role"},

	// Google OAuth configuration
	{Name: "google_client_id", Default: "", Desc: "Google OAuth2 client ID"},
	{Name: "google_client_secret", Default: "", Desc: "Google OAuth2 client secret"},

	// Base URL for OAuth callbacks
	{Name: "base_url", Default: "http://localhost:3000", Desc: "Base URL for OAuth callbacks"},

	// Destination utilities
	{Name: "home_country", Default: "IN", Desc: "Default nationality for visa lookups"},
	{Name: "geocoding_base_url", Default: "", Desc: "Open-Meteo geocoding endpoint override (blank uses the public API)"},
	{Name: "weather_base_url", Default: "", Desc: "Open-Meteo forecast endpoint override (blank uses the public API)"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// It is called early in startup so that both WAFFLE and the app have
// access to configuration before any backends or handlers are built.
//
// WAFFLE's config.LoadWithAppConfig handles:
//   - Loading from .env files
//   - Loading from config.yaml/json/toml files
//   - Reading environment variables (WAFFLE_* for core, WANDERNEXT_* for app)
//   - Parsing command-line flags
//   - Merging with precedence: flags > env > files > defaults
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "WANDERNEXT", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		StoreBackend: appValues.String("store_backend"),
		StorePath:    appValues.String("store_path"),
		StoreSlotKey: appValues.String("store_slot_key"),

		MongoURI:      appValues.String("mongo_uri"),
		MongoDatabase: appValues.String("mongo_database"),

		SessionKey:    appValues.String("session_key"),
		SessionName:   appValues.String("session_name"),
		SessionDomain: appValues.String("session_domain"),
		SessionTTL:    appValues.Duration("session_ttl", 168*time.Hour),

		ModeratorLoginID: appValues.String("moderator_login_id"),

		GoogleClientID:     appValues.String("google_client_id"),
		GoogleClientSecret: appValues.String("google_client_secret"),

		BaseURL: appValues.String("base_url"),

		HomeCountry:    appValues.String("home_country"),
		GeocodeBaseURL: appValues.String("geocoding_base_url"),
		WeatherBaseURL: appValues.String("weather_base_url"),
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig performs app-specific config validation.
//
// Return nil to accept the loaded config, or an error to abort startup.
// This is the right place to enforce required fields or invariants that
// involve both the core and app configs.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	switch appCfg.StoreBackend {
	case "file":
		if appCfg.StorePath == "" {
			return fmt.Errorf("store_backend 'file' requires store_path")
		}
	case "mongo":
		if err := wafflemongo.ValidateURI(appCfg.MongoURI); err != nil {
			logger.Error("invalid MongoDB URI", zap.Error(err))
			return fmt.Errorf("invalid MongoDB URI: %w", err)
		}
		if appCfg.StoreSlotKey == "" {
			return fmt.Errorf("store_backend 'mongo' requires store_slot_key")
		}
	default:
		return fmt.Errorf("unknown store_backend %q (want 'file' or 'mongo')", appCfg.StoreBackend)
	}

	if appCfg.SessionKey == "" {
		return fmt.Errorf("session_key must not be empty")
	}

	return nil
}
