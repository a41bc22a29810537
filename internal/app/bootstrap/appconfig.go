// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// WAFFLE's CoreConfig handles framework-level settings (ports, TLS,
// logging, CORS). AppConfig is everything specific to WanderNext: where
// the travel document lives, session cookies, the moderator seat, OAuth
// credentials, and the destination-info endpoints.
type AppConfig struct {
	// Document store configuration. "file" persists the document as JSON
	// on disk; "mongo" keeps it in a single keyed MongoDB record.
	StoreBackend string // "file" or "mongo"
	StorePath    string // JSON file path for the file backend
	StoreSlotKey string // document key for the mongo backend

	// MongoDB connection configuration (mongo backend only)
	MongoURI      string
	MongoDatabase string

	// Session management configuration
	SessionKey    string        // Secret key for signing session cookies (must be strong in production)
	SessionName   string        // Cookie name for sessions (default: wandernext-session)
	SessionDomain string        // Cookie domain (blank means current host)
	SessionTTL    time.Duration // How long a signed-in session lasts

	// The login id that receives the moderator role on first sign-in.
	ModeratorLoginID string

	// Google OAuth configuration
	GoogleClientID     string
	GoogleClientSecret string

	// Base URL for OAuth callbacks (e.g., "https://wandernext.com")
	BaseURL string

	// Destination utilities configuration
	HomeCountry    string // default nationality for visa lookups
	GeocodeBaseURL string // Open-Meteo geocoding endpoint override
	WeatherBaseURL string // Open-Meteo forecast endpoint override
}
