package destinfo_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dalemusser/wandernext/internal/app/system/destinfo"
	"go.uber.org/zap"
)

func newTestServers(t *testing.T, geocodeBody, forecastBody string) (geocode, forecast *httptest.Server) {
	t.Helper()
	geocode = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/search" {
			t.Errorf("geocode path: got %q", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(geocodeBody))
	}))
	t.Cleanup(geocode.Close)

	forecast = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/forecast" {
			t.Errorf("forecast path: got %q", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(forecastBody))
	}))
	t.Cleanup(forecast.Close)
	return geocode, forecast
}

func TestCurrentWeather_ResolvesCity(t *testing.T) {
	geocode, forecast := newTestServers(t,
		`{"results":[{"name":"Paris","latitude":48.85,"longitude":2.35,"country_code":"FR"}]}`,
		`{"current_weather":{"temperature":21.5,"windspeed":12.0}}`,
	)

	client := destinfo.NewClient(geocode.URL, forecast.URL, zap.NewNop())
	w, ok, err := client.CurrentWeather(context.Background(), "Paris")
	if err != nil {
		t.Fatalf("CurrentWeather failed: %v", err)
	}
	if !ok {
		t.Fatal("expected city to resolve")
	}
	if w.City != "Paris" || w.CountryCode != "FR" {
		t.Errorf("place: got %s/%s", w.City, w.CountryCode)
	}
	if w.TempC != 21.5 || w.WindKPH != 12.0 {
		t.Errorf("conditions: got temp=%v wind=%v", w.TempC, w.WindKPH)
	}
}

func TestCurrentWeather_UnknownCity(t *testing.T) {
	geocode, forecast := newTestServers(t, `{"results":[]}`, `{}`)

	client := destinfo.NewClient(geocode.URL, forecast.URL, zap.NewNop())
	_, ok, err := client.CurrentWeather(context.Background(), "Nowhereville")
	if err != nil {
		t.Fatalf("CurrentWeather failed: %v", err)
	}
	if ok {
		t.Error("expected unknown city to report ok=false")
	}
}

func TestCurrentWeather_BlankCity(t *testing.T) {
	client := destinfo.NewClient("http://127.0.0.1:1", "http://127.0.0.1:1", zap.NewNop())

	_, ok, err := client.CurrentWeather(context.Background(), "   ")
	if err != nil || ok {
		t.Errorf("blank city: ok=%v err=%v, want false/nil without any request", ok, err)
	}
}

func TestCurrentWeather_ServerErrorSurfaces(t *testing.T) {
	geocode := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(geocode.Close)

	client := destinfo.NewClient(geocode.URL, geocode.URL, zap.NewNop())
	if _, _, err := client.CurrentWeather(context.Background(), "Paris"); err == nil {
		t.Error("expected error from failing geocode server")
	}
}

func TestVisaText_Rules(t *testing.T) {
	if got := destinfo.VisaText("IN", "FR"); got != "Schengen visa required for Indian nationals." {
		t.Errorf("IN->FR: got %q", got)
	}
	if got := destinfo.VisaText("us", "gb"); got != "Visa-free up to 6 months for US passport holders." {
		t.Errorf("us->gb (case folded): got %q", got)
	}
	if got := destinfo.VisaText("DE", "JP"); got != "Check official embassy website for the latest visa requirements." {
		t.Errorf("default: got %q", got)
	}
}

func TestStaticTips(t *testing.T) {
	if tips := destinfo.TransportTips(); len(tips) != 3 || tips[0].Mode != "Metro" {
		t.Errorf("TransportTips: got %+v", tips)
	}
	if tips := destinfo.CultureSafetyTips(); len(tips) != 3 {
		t.Errorf("CultureSafetyTips: got %d entries, want 3", len(tips))
	}
}
