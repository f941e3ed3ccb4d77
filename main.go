package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fakhrymubarak/weather-widget/internal/config"
	"github.com/fakhrymubarak/weather-widget/internal/handler"
	"github.com/fakhrymubarak/weather-widget/internal/middleware"
	"github.com/fakhrymubarak/weather-widget/internal/repository"
	"github.com/fakhrymubarak/weather-widget/internal/storage"
)

func newServer(cfg config.Config, h http.Handler) *http.Server {
	return &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           h,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}
}

func main() {
	log := config.GetLogger()
	defer func() { _ = log.Sync() }()

	cfg := config.Load()
	if cfg.WeatherAPI.APIKey == "" {
		log.Warn("WEATHERAPI_API_KEY is not set; every lookup will fail")
	}

	store, err := storage.Open(cfg.Storage)
	if err != nil {
		log.Fatalw("could not open location store", "driver", cfg.Storage.Driver, "error", err)
	}
	defer store.Close()

	middleware.SetSessionCookieName(cfg.Session.CookieName)
	repo := repository.NewForecastRepository(repository.ConfigFrom(cfg.WeatherAPI))
	srv := newServer(cfg, handler.NewWidgetHandler(repo, store).Routes())

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Infow("Weather widget running", "port", cfg.Server.Port, "storage", cfg.Storage.Driver)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalw("ListenAndServe failed", "error", err)
		}
	}()

	<-stop
	log.Info("Shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Errorw("server shutdown", "error", err)
	}
}
