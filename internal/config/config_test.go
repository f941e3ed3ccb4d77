package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetWeatherApiKey(t *testing.T) {
	// Test with the environment variable set
	expectedKey := "test_api_key_123"
	t.Setenv("WEATHERAPI_API_KEY", expectedKey)

	result := GetWeatherApiKey()
	if result != expectedKey {
		t.Errorf("Expected API key %s, got %s", expectedKey, result)
	}

	// Test with environment variable not set
	os.Unsetenv("WEATHERAPI_API_KEY")
	result = GetWeatherApiKey()
	if result != "" {
		t.Errorf("Expected empty string, got %s", result)
	}
}

func TestGetWeatherApiUrl(t *testing.T) {
	want := "https://api.weatherapi.com/v1/forecast.json"
	got := GetWeatherApiUrl()
	if got != want {
		t.Errorf("Expected API URL %s, got %s", want, got)
	}
}

func TestGetForecastDays(t *testing.T) {
	assert.Equal(t, 7, GetForecastDays())
}

func TestGetRedisAddr_TestOverride(t *testing.T) {
	// config_test.yaml is merged on top of config.yaml under go test
	assert.Equal(t, "localhost:16379", GetRedisAddr())
}

func TestGetServerPort(t *testing.T) {
	want := "8080"
	got := GetServerPort()
	if got != want {
		t.Errorf("Expected server port %s, got %s", want, got)
	}
}

func TestGetServerTimeout(t *testing.T) {
	assert.Equal(t, 15*time.Second, GetServerTimeout("read_header_timeout"))
	assert.Equal(t, 10*time.Second, GetServerTimeout("write_timeout"))
	assert.Equal(t, 30*time.Second, GetServerTimeout("idle_timeout"))
}

func TestGetServerTimeout_UnknownKeyFallsBack(t *testing.T) {
	assert.Equal(t, 15*time.Second, GetServerTimeout("does_not_exist"))
}

func TestStorageSettings(t *testing.T) {
	assert.Equal(t, "redis", GetStorageDriver())
	assert.Equal(t, "weather_widget_test.db", GetSQLitePath())
	assert.Equal(t, "savedLocation", GetStorageKey())
	assert.Equal(t, "widget_session", GetSessionCookieName())
}

func TestLoad(t *testing.T) {
	t.Setenv("WEATHERAPI_API_KEY", "k")

	cfg := Load()

	assert.Equal(t, "k", cfg.WeatherAPI.APIKey)
	assert.Equal(t, 7, cfg.WeatherAPI.Days)
	assert.Equal(t, "https://api.weatherapi.com/v1/forecast.json", cfg.WeatherAPI.URL)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, "savedLocation", cfg.Storage.Key)
	assert.Equal(t, "widget_session", cfg.Session.CookieName)
}

func TestReloadConfigForTest(t *testing.T) {
	// Should not panic or error
	ReloadConfigForTest()
	assert.Equal(t, "8080", GetServerPort())
}

func TestGetLogger_Singleton(t *testing.T) {
	l1 := GetLogger()
	l2 := GetLogger()
	assert.NotNil(t, l1)
	assert.Same(t, l1, l2)
}

func TestGetProjectRoot(t *testing.T) {
	root, err := getProjectRoot()
	assert.NoError(t, err)
	_, statErr := os.Stat(root + "/go.mod")
	assert.NoError(t, statErr)
}
