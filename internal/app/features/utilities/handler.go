// internal/app/features/utilities/handler.go

// Package utilities serves the destination lookup page: live weather for
// a city, visa guidance for a nationality/destination pair, and the
// static transport and culture/safety tips.
package utilities

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/dalemusser/wandernext/internal/app/system/destinfo"
	"github.com/dalemusser/wandernext/internal/app/system/timeouts"
	"github.com/dalemusser/wandernext/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

type Handler struct {
	Dest        *destinfo.Client
	HomeCountry string
	Log         *zap.Logger
}

// NewHandler wires the lookup page. homeCountry is the default nationality
// used when the visitor leaves the field blank.
func NewHandler(dest *destinfo.Client, homeCountry string, logger *zap.Logger) *Handler {
	return &Handler{Dest: dest, HomeCountry: homeCountry, Log: logger}
}

type utilitiesData struct {
	viewdata.BaseVM
	City        string
	Country     string
	Nationality string
	Searched    bool
	WeatherText string
	VisaText    string
	Transport   []destinfo.TransportTip
	CultureTips []string
}

// ServeUtilities handles GET /utilities. With a city or country in the
// query it also runs the lookup; the tips render either way.
func (h *Handler) ServeUtilities(w http.ResponseWriter, r *http.Request) {
	city := strings.TrimSpace(query.Get(r, "city"))
	country := strings.TrimSpace(query.Get(r, "country"))
	nationality := strings.TrimSpace(query.Get(r, "nationality"))
	if nationality == "" {
		nationality = h.HomeCountry
	}

	data := utilitiesData{
		BaseVM:      viewdata.NewBaseVM(r, "Travel utilities", "/"),
		City:        city,
		Country:     country,
		Nationality: nationality,
		Transport:   destinfo.TransportTips(),
		CultureTips: destinfo.CultureSafetyTips(),
	}

	if city != "" || country != "" {
		data.Searched = true
		data.WeatherText = h.weatherText(r.Context(), city)
		data.VisaText = destinfo.VisaText(nationality, country)
	}

	templates.Render(w, r, "utilities", data)
}

// weatherText resolves the city's current conditions into a display line.
// Lookup failures degrade to "Not available" rather than an error page.
func (h *Handler) weatherText(parent context.Context, city string) string {
	if city == "" {
		return "Not available"
	}

	ctx, cancel := context.WithTimeout(parent, timeouts.Medium())
	defer cancel()

	wx, ok, err := h.Dest.CurrentWeather(ctx, city)
	if err != nil {
		h.Log.Warn("weather lookup failed", zap.String("city", city), zap.Error(err))
		return "Not available"
	}
	if !ok {
		return "Not available"
	}
	return fmt.Sprintf("%s (%s): %.1f°C, wind %.0f km/h", wx.City, wx.CountryCode, wx.TempC, wx.WindKPH)
}
