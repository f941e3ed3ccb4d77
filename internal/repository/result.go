package repository

import (
	"context"

	"github.com/fakhrymubarak/weather-widget/internal/model"
)

// Result is the outcome of one asynchronous fetch: exactly one of Forecast
// or Err is set.
type Result struct {
	Location string
	Forecast *model.ForecastResponse
	Err      error
}

// OK reports whether the fetch resolved to a forecast.
func (r Result) OK() bool { return r.Err == nil && r.Forecast != nil }

// FetchForecastAsync runs one fetch in its own goroutine and delivers the
// Result on the returned channel, which is closed afterwards.
func FetchForecastAsync(ctx context.Context, repo ForecastRepository, location string) <-chan Result {
	out := make(chan Result, 1)
	go func() {
		defer close(out)
		forecast, err := repo.FetchForecast(ctx, location)
		if err == nil && forecast == nil {
			err = &FetchError{Kind: KindMalformed, Err: ErrMalformedResponse}
		}
		out <- Result{Location: location, Forecast: forecast, Err: err}
	}()
	return out
}
