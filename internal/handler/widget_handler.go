package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/fakhrymubarak/weather-widget/internal/config"
	"github.com/fakhrymubarak/weather-widget/internal/middleware"
	"github.com/fakhrymubarak/weather-widget/internal/model"
	"github.com/fakhrymubarak/weather-widget/internal/page"
	"github.com/fakhrymubarak/weather-widget/internal/repository"
	"github.com/fakhrymubarak/weather-widget/internal/service"
	"github.com/fakhrymubarak/weather-widget/internal/storage"
	"github.com/fakhrymubarak/weather-widget/internal/validator"
)

// WidgetHandler serves the widget page and the forecast JSON API.
type WidgetHandler struct {
	Repo  repository.ForecastRepository
	Store storage.Store
	Log   *zap.SugaredLogger
}

func NewWidgetHandler(repo repository.ForecastRepository, store storage.Store) *WidgetHandler {
	return &WidgetHandler{
		Repo:  repo,
		Store: store,
		Log:   config.GetLogger(),
	}
}

// Routes returns the service's HTTP surface wrapped in the session and logging middleware.
func (h *WidgetHandler) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", h.HandlePage)
	mux.HandleFunc("/search", h.HandleSearch)
	mux.HandleFunc("/api/forecast", h.HandleForecast)
	mux.HandleFunc("/healthz", h.HandleHealth)
	mux.Handle("/static/", http.StripPrefix("/static/", http.FileServer(http.FS(page.StaticFS()))))
	return middleware.RequestLogger(h.Log)(middleware.Session(mux))
}

func (h *WidgetHandler) writeJSONResponse(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.Log.Errorw("could not encode json", "error", err)
	}
}

// allowMethods answers 405 unless r uses one of methods.
func (h *WidgetHandler) allowMethods(w http.ResponseWriter, r *http.Request, methods ...string) bool {
	for _, m := range methods {
		if r.Method == m {
			return true
		}
	}
	w.Header().Set("Allow", strings.Join(methods, ", "))
	http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	return false
}

func (h *WidgetHandler) newWidget(r *http.Request) (*service.Widget, *page.Document, error) {
	doc, err := page.NewDocument()
	if err != nil {
		return nil, nil, err
	}
	w := service.NewWidget(service.Options{
		Repo:      h.Repo,
		Store:     h.Store,
		Sink:      doc,
		Notifier:  doc,
		SessionID: middleware.SessionID(r.Context()),
		Logger:    h.Log,
	})
	return w, doc, nil
}

// HandlePage serves the widget. If the session has a remembered location,
// the page comes back pre-filled and with that location's forecast rendered.
func (h *WidgetHandler) HandlePage(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if !h.allowMethods(w, r, http.MethodGet, http.MethodHead) {
		return
	}

	widget, doc, err := h.newWidget(r)
	if err != nil {
		h.fail(w, err)
		return
	}
	widget.Load(r.Context())
	widget.Wait()
	h.writePage(w, doc)
}

// HandleSearch validates the submitted location, remembers it and renders
// its forecast. Invalid input and failed lookups come back as page alerts.
func (h *WidgetHandler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	// search saves and fetches, so HEAD is refused
	if !h.allowMethods(w, r, http.MethodGet) {
		return
	}

	widget, doc, err := h.newWidget(r)
	if err != nil {
		h.fail(w, err)
		return
	}
	if err := widget.Search(r.Context(), r.URL.Query().Get("location")); err != nil && !errors.Is(err, service.ErrInvalidLocation) {
		h.fail(w, err)
		return
	}
	widget.Wait()
	h.writePage(w, doc)
}

// HandleForecast returns the raw forecast for a location as JSON. It does not
// touch the session's remembered location.
func (h *WidgetHandler) HandleForecast(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		h.writeJSONResponse(w, http.StatusMethodNotAllowed, model.ErrorResponse("Method not allowed"))
		return
	}

	location := strings.TrimSpace(r.URL.Query().Get("location"))
	if !validator.IsValidLocation(location) {
		h.writeJSONResponse(w, http.StatusBadRequest, model.ErrorResponse(service.MsgInvalidLocation))
		return
	}

	res := <-repository.FetchForecastAsync(r.Context(), h.Repo, location)
	if !res.OK() {
		h.Log.Errorw("Fetch Error", "location", location, "error", res.Err)
		h.writeJSONResponse(w, http.StatusBadGateway, model.ErrorResponse(service.MsgFetchFailed))
		return
	}

	h.writeJSONResponse(w, http.StatusOK, model.SuccessResponse(res.Forecast))
}

func (h *WidgetHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	h.writeJSONResponse(w, http.StatusOK, model.Response{Message: "ok"})
}

func (h *WidgetHandler) writePage(w http.ResponseWriter, doc *page.Document) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	if err := doc.Render(w); err != nil {
		h.Log.Errorw("could not render page", "error", err)
	}
}

func (h *WidgetHandler) fail(w http.ResponseWriter, err error) {
	h.Log.Errorw("could not build page", "error", err)
	http.Error(w, "Internal server error", http.StatusInternalServerError)
}
