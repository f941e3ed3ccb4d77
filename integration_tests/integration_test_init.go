package integrationtest

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"

	"github.com/fakhrymubarak/weather-widget/internal/config"
	"github.com/fakhrymubarak/weather-widget/internal/handler"
	"github.com/fakhrymubarak/weather-widget/internal/repository"
	"github.com/fakhrymubarak/weather-widget/internal/storage"
)

const testAPIKey = "test_api_key"

// mockWeatherAPI stands in for api.weatherapi.com. It serves the Chicago
// fixture for any known city or zip and mirrors the provider's error codes.
func mockWeatherAPI(fixturePath string) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("key") != testAPIKey {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"error":{"code":2006,"message":"API key is invalid."}}`))
			return
		}
		if q.Get("days") != "7" || q.Get("aqi") != "no" || q.Get("alerts") != "no" {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error":{"code":1005,"message":"API request url is invalid"}}`))
			return
		}
		switch q.Get("q") {
		case "Chicago", "60614", "Denver":
			data, err := os.ReadFile(fixturePath)
			if err != nil {
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write(data)
		case "Garbled":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"location": {"name": `))
		default:
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error":{"code":1006,"message":"No matching location found."}}`))
		}
	}))
}

// setupIntegrationTestServer wires the real repository and store behind the
// real routes, exactly as main does, using the current configuration.
func setupIntegrationTestServer() (*httptest.Server, storage.Store, error) {
	cfg := config.Load()
	store, err := storage.Open(cfg.Storage)
	if err != nil {
		return nil, nil, err
	}
	repo := repository.NewForecastRepository(repository.ConfigFrom(cfg.WeatherAPI))
	return httptest.NewServer(handler.NewWidgetHandler(repo, store).Routes()), store, nil
}

func fixturePath() string {
	p, _ := filepath.Abs("../testdata/forecast_chicago.json")
	return p
}
