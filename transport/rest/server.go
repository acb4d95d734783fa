package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const shutdownTimeout = 5 * time.Second

// NewHandler routes the game API. Metrics are served from gatherer on /metrics.
func NewHandler(logger *slog.Logger, gameUseCase gameUseCase, gatherer prometheus.Gatherer) http.Handler {
	h := &handlers{
		logger:      logger.With("component", "rest"),
		gameUseCase: gameUseCase,
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/ping", pingHandler)
	r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	r.Route("/games", func(r chi.Router) {
		r.Post("/", h.createGame)

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", h.getGame)
			r.Delete("/", h.deleteGame)
			r.Post("/squares/{cell}", h.makeTurn)
			r.Post("/jump/{step}", h.jumpTo)
			r.Post("/order", h.toggleOrder)
		})
	})

	return r
}

// Start - serves handler on port until ctx is canceled.
func Start(ctx context.Context, port string, handler http.Handler) error {
	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  30 * time.Second,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		_ = srv.Shutdown(shutdownCtx)
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}
