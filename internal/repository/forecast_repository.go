package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/fakhrymubarak/weather-widget/internal/config"
	"github.com/fakhrymubarak/weather-widget/internal/model"
)

// Custom error types
var (
	ErrAPIKeyMissing     = errors.New("API key missing")
	ErrTransport         = errors.New("weather API unreachable")
	ErrUpstreamStatus    = errors.New("weather API returned non-OK status")
	ErrMalformedResponse = errors.New("weather API response malformed")
)

// ErrorKind classifies a failed fetch. Every kind is terminal for the request.
type ErrorKind int

const (
	KindTransport ErrorKind = iota
	KindStatus
	KindMalformed
)

func (k ErrorKind) String() string {
	switch k {
	case KindStatus:
		return "status"
	case KindMalformed:
		return "malformed"
	default:
		return "transport"
	}
}

// FetchError wraps the underlying cause of a failed forecast lookup.
type FetchError struct {
	Kind       ErrorKind
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.Kind == KindStatus {
		return fmt.Sprintf("forecast fetch failed: status %d", e.StatusCode)
	}
	return fmt.Sprintf("forecast fetch failed (%s): %v", e.Kind, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// Is lets errors.Is match a FetchError against the sentinel for its kind.
func (e *FetchError) Is(target error) bool {
	switch e.Kind {
	case KindTransport:
		return target == ErrTransport
	case KindStatus:
		return target == ErrUpstreamStatus
	case KindMalformed:
		return target == ErrMalformedResponse
	}
	return false
}

// Config holds the forecast endpoint settings.
type Config struct {
	URL    string
	APIKey string
	Days   int
}

// ConfigFrom extracts the repository settings from the application config.
func ConfigFrom(cfg config.WeatherAPIConfig) Config {
	return Config{URL: cfg.URL, APIKey: cfg.APIKey, Days: cfg.Days}
}

// ForecastRepository defines the interface for forecast data access
type ForecastRepository interface {
	FetchForecast(ctx context.Context, location string) (*model.ForecastResponse, error)
}

type forecastRepository struct {
	cfg        Config
	httpClient *http.Client
}

// NewForecastRepository creates a new forecast repository instance
func NewForecastRepository(cfg Config, httpClient ...*http.Client) ForecastRepository {
	client := http.DefaultClient
	if len(httpClient) > 0 && httpClient[0] != nil {
		client = httpClient[0]
	}
	if cfg.Days <= 0 {
		cfg.Days = 7
	}
	return &forecastRepository{
		cfg:        cfg,
		httpClient: client,
	}
}

// BuildForecastURL returns the forecast.json request URL for location.
func BuildForecastURL(cfg Config, location string) string {
	return fmt.Sprintf("%s?key=%s&q=%s&days=%s&aqi=no&alerts=no",
		cfg.URL, url.QueryEscape(cfg.APIKey), url.QueryEscape(location), strconv.Itoa(cfg.Days))
}

// FetchForecast issues exactly one request for location and decodes the payload as is.
func (r *forecastRepository) FetchForecast(ctx context.Context, location string) (*model.ForecastResponse, error) {
	if r.cfg.APIKey == "" {
		return nil, &FetchError{Kind: KindTransport, Err: ErrAPIKeyMissing}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, BuildForecastURL(r.cfg, location), nil)
	if err != nil {
		return nil, &FetchError{Kind: KindTransport, Err: err}
	}

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil, &FetchError{Kind: KindTransport, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &FetchError{Kind: KindStatus, StatusCode: resp.StatusCode, Err: ErrUpstreamStatus}
	}

	var data model.ForecastResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, &FetchError{Kind: KindMalformed, Err: err}
	}

	config.GetLogger().Debugw("Weather data", "location", location, "resolved", locationName(&data))
	return &data, nil
}

func locationName(data *model.ForecastResponse) string {
	if data.Location == nil {
		return ""
	}
	return data.Location.Name
}
