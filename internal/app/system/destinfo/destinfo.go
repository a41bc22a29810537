// internal/app/system/destinfo/destinfo.go

// Package destinfo answers destination utility lookups: current weather via
// the Open-Meteo geocoding + forecast APIs, plus static visa, transport,
// and culture/safety guidance.
package destinfo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
)

const (
	// DefaultGeocodeBaseURL is the Open-Meteo geocoding API.
	DefaultGeocodeBaseURL = "https://geocoding-api.open-meteo.com"
	// DefaultWeatherBaseURL is the Open-Meteo forecast API.
	DefaultWeatherBaseURL = "https://api.open-meteo.com"

	requestTimeout = 10 * time.Second
)

// Client looks up destination weather from Open-Meteo. Base URLs are
// configurable so tests can point at local servers.
type Client struct {
	http        *http.Client
	geocodeBase string
	weatherBase string
	log         *zap.Logger
}

// NewClient builds a Client. Empty base URLs fall back to the public
// Open-Meteo endpoints; a nil logger falls back to a no-op logger.
func NewClient(geocodeBase, weatherBase string, logger *zap.Logger) *Client {
	if geocodeBase == "" {
		geocodeBase = DefaultGeocodeBaseURL
	}
	if weatherBase == "" {
		weatherBase = DefaultWeatherBaseURL
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		http:        &http.Client{Timeout: requestTimeout},
		geocodeBase: strings.TrimRight(geocodeBase, "/"),
		weatherBase: strings.TrimRight(weatherBase, "/"),
		log:         logger,
	}
}

// Weather is the current conditions at a resolved place.
type Weather struct {
	City        string
	CountryCode string
	TempC       float64
	WindKPH     float64
}

type geocodeResponse struct {
	Results []struct {
		Name        string  `json:"name"`
		Latitude    float64 `json:"latitude"`
		Longitude   float64 `json:"longitude"`
		CountryCode string  `json:"country_code"`
	} `json:"results"`
}

type forecastResponse struct {
	CurrentWeather struct {
		Temperature float64 `json:"temperature"`
		WindSpeed   float64 `json:"windspeed"`
	} `json:"current_weather"`
}

// CurrentWeather geocodes the city name and fetches its current conditions.
// ok is false when the city cannot be resolved; err covers transport and
// decode failures. Callers render either case as "not available".
func (c *Client) CurrentWeather(ctx context.Context, city string) (Weather, bool, error) {
	city = strings.TrimSpace(city)
	if city == "" {
		return Weather{}, false, nil
	}

	geoURL := fmt.Sprintf("%s/v1/search?name=%s&count=1", c.geocodeBase, url.QueryEscape(city))
	var geo geocodeResponse
	if err := c.getJSON(ctx, geoURL, &geo); err != nil {
		return Weather{}, false, fmt.Errorf("geocode %q: %w", city, err)
	}
	if len(geo.Results) == 0 {
		c.log.Debug("city not found", zap.String("city", city))
		return Weather{}, false, nil
	}
	loc := geo.Results[0]

	fcURL := fmt.Sprintf("%s/v1/forecast?latitude=%v&longitude=%v&current_weather=true",
		c.weatherBase, loc.Latitude, loc.Longitude)
	var fc forecastResponse
	if err := c.getJSON(ctx, fcURL, &fc); err != nil {
		return Weather{}, false, fmt.Errorf("forecast for %q: %w", city, err)
	}

	return Weather{
		City:        loc.Name,
		CountryCode: loc.CountryCode,
		TempC:       fc.CurrentWeather.Temperature,
		WindKPH:     fc.CurrentWeather.WindSpeed,
	}, true, nil
}

func (c *Client) getJSON(ctx context.Context, rawURL string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// VisaText returns guidance for travel between two ISO country codes.
// Mock rules; a real integration would query a visa database.
func VisaText(countryFrom, countryTo string) string {
	from := strings.ToUpper(strings.TrimSpace(countryFrom))
	to := strings.ToUpper(strings.TrimSpace(countryTo))
	switch {
	case from == "IN" && to == "FR":
		return "Schengen visa required for Indian nationals."
	case from == "US" && to == "GB":
		return "Visa-free up to 6 months for US passport holders."
	default:
		return "Check official embassy website for the latest visa requirements."
	}
}

// TransportTip is one local-transport option with a ballpark cost.
type TransportTip struct {
	Mode string
	Cost string
	Tip  string
}

// TransportTips returns the local transport options shown on the
// utilities page. The set is static regardless of destination.
func TransportTips() []TransportTip {
	return []TransportTip{
		{Mode: "Metro", Cost: "$2-4", Tip: "Buy a day pass for savings."},
		{Mode: "Taxi", Cost: "$10-20", Tip: "Use licensed cabs or apps."},
		{Mode: "Bike", Cost: "$5/day", Tip: "Great for short distances and scenic routes."},
	}
}

// CultureSafetyTips returns general cultural and safety guidance.
func CultureSafetyTips() []string {
	return []string{
		"Respect local customs and dress codes in religious sites.",
		"Keep emergency numbers handy; avoid isolated areas late night.",
		"Carry a copy of your ID and travel insurance.",
	}
}
