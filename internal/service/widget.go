package service

import (
	"context"
	"errors"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/fakhrymubarak/weather-widget/internal/config"
	"github.com/fakhrymubarak/weather-widget/internal/render"
	"github.com/fakhrymubarak/weather-widget/internal/repository"
	"github.com/fakhrymubarak/weather-widget/internal/storage"
	"github.com/fakhrymubarak/weather-widget/internal/validator"
)

// User-facing notifications.
const (
	MsgInvalidLocation = "Please enter a valid city name or 5-digit ZIP code."
	MsgFetchFailed     = "Failed to retrieve weather data."
)

var ErrInvalidLocation = errors.New("invalid location")

// Notifier shows a blocking notification to the user.
type Notifier interface {
	Alert(msg string)
}

// Options are the collaborators of a Widget.
type Options struct {
	Repo      repository.ForecastRepository
	Store     storage.Store
	Sink      render.Sink
	Notifier  Notifier
	SessionID string
	Logger    *zap.SugaredLogger
}

// Widget drives one page: it validates searches, remembers the last location,
// fetches forecasts and renders them onto its sink.
//
// Fetches are neither deduplicated nor cancelled. Each resolved fetch renders
// a complete pass; when fetches overlap, the one that resolves last wins.
type Widget struct {
	repo      repository.ForecastRepository
	store     storage.Store
	sink      render.Sink
	notifier  Notifier
	sessionID string
	log       *zap.SugaredLogger

	renderMu sync.Mutex
	inflight sync.WaitGroup
}

func NewWidget(opts Options) *Widget {
	log := opts.Logger
	if log == nil {
		log = config.GetLogger()
	}
	return &Widget{
		repo:      opts.Repo,
		store:     opts.Store,
		sink:      opts.Sink,
		notifier:  opts.Notifier,
		sessionID: opts.SessionID,
		log:       log,
	}
}

// Search handles a search submission. Validation happens before anything
// else; an invalid location raises one alert and returns ErrInvalidLocation.
// A valid location is saved before its fetch is issued, so it is remembered
// even if the fetch fails. Search does not wait for the fetch.
func (w *Widget) Search(ctx context.Context, raw string) error {
	w.sink.SetAttr(render.IDSearchInput, "value", raw)

	location := strings.TrimSpace(raw)
	if !validator.IsValidLocation(location) {
		w.notifier.Alert(MsgInvalidLocation)
		return ErrInvalidLocation
	}

	if err := w.store.Save(ctx, w.sessionID, location); err != nil {
		w.log.Warnw("Could not save location", "session", w.sessionID, "location", location, "error", err)
	}

	w.lookup(ctx, location)
	return nil
}

// Load restores the session's last location, pre-fills the input with it and
// fetches it. The stored value is not validated again. ok is false when
// nothing was stored.
func (w *Widget) Load(ctx context.Context) (location string, ok bool) {
	location, ok, err := w.store.LoadLast(ctx, w.sessionID)
	if err != nil {
		w.log.Warnw("Could not load saved location", "session", w.sessionID, "error", err)
		return "", false
	}
	if !ok {
		return "", false
	}

	w.sink.SetAttr(render.IDSearchInput, "value", location)
	w.lookup(ctx, location)
	return location, true
}

// Wait blocks until every fetch issued so far has resolved and been applied.
func (w *Widget) Wait() {
	w.inflight.Wait()
}

func (w *Widget) lookup(ctx context.Context, location string) {
	results := repository.FetchForecastAsync(ctx, w.repo, location)
	w.inflight.Add(1)
	go func() {
		defer w.inflight.Done()
		w.apply(<-results)
	}()
}

func (w *Widget) apply(res repository.Result) {
	if !res.OK() {
		w.log.Errorw("Fetch Error", "location", res.Location, "error", res.Err)
		w.notifier.Alert(MsgFetchFailed)
		return
	}

	w.renderMu.Lock()
	defer w.renderMu.Unlock()
	render.RenderAll(w.sink, res.Forecast)
}
