package main

import (
	"context"
	"errors"
	"floorPlanner/internal/config"
	"floorPlanner/internal/gateway"
	"floorPlanner/internal/http-server/handlers/plan/addGuest"
	"floorPlanner/internal/http-server/handlers/plan/createTable"
	"floorPlanner/internal/http-server/handlers/plan/deleteGuest"
	"floorPlanner/internal/http-server/handlers/plan/deleteTable"
	"floorPlanner/internal/http-server/handlers/plan/getSummary"
	"floorPlanner/internal/http-server/handlers/plan/importGuests"
	"floorPlanner/internal/http-server/handlers/plan/loadPlan"
	"floorPlanner/internal/http-server/handlers/plan/moveGuest"
	"floorPlanner/internal/http-server/handlers/plan/removeGuest"
	"floorPlanner/internal/http-server/handlers/plan/savePlan"
	"floorPlanner/internal/http-server/handlers/plan/updateTable"
	"floorPlanner/internal/http-server/middleware/mwlogger"
	"floorPlanner/internal/lib/logger/handlers/slogpretty"
	"floorPlanner/internal/lib/logger/sl"
	"floorPlanner/internal/session"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

func main() {
	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)

	log.Info("Starting floor planner", slog.String("env", cfg.Env))
	log.Debug("Debug messages are enabled")

	backend := gateway.New(&cfg.Backend)
	plans := session.NewRegistry()

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(mwlogger.New(log))
	router.Use(middleware.Recoverer)
	router.Use(middleware.URLFormat)

	router.Route("/events/{id}/plan", func(r chi.Router) {
		r.Post("/load", loadPlan.New(log, backend, plans))
		r.Post("/save", savePlan.New(log, plans, backend))
		r.Post("/import", importGuests.New(log, backend, plans))
		r.Get("/summary", getSummary.New(log, plans))

		r.Post("/tables", createTable.New(log, plans))
		r.Put("/tables/{tableID}", updateTable.New(log, plans))
		r.Delete("/tables/{tableID}", deleteTable.New(log, plans))

		r.Post("/guests", addGuest.New(log, plans))
		r.Post("/guests/{guestID}/move", moveGuest.New(log, plans))
		r.Post("/guests/{guestID}/unseat", removeGuest.New(log, plans))
		r.Delete("/guests/{guestID}", deleteGuest.New(log, plans))
	})

	log.Info("starting server", slog.String("address", cfg.HTTPServer.Address))

	srv := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGTERM, syscall.SIGINT, os.Interrupt)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("failed to start server", sl.Err(err))
			stop <- syscall.SIGTERM
		}
	}()

	sign := <-stop

	log.Info("application stopping", slog.String("signal", sign.String()))

	if err := srv.Shutdown(context.Background()); err != nil {
		log.Error("failed to shutdown server", sl.Err(err))
	}

	log.Info("application stopped")
}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = setupPrettySlog()
	case envDev:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envProd:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}

	return log
}

func setupPrettySlog() *slog.Logger {
	opts := slogpretty.PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{
			Level: slog.LevelDebug,
		},
	}

	h := opts.NewPrettyHandler(os.Stdout)

	return slog.New(h)
}
