package main

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/krongr/adboard/internal/api"
	apimiddleware "github.com/krongr/adboard/internal/api/middleware"
	"github.com/krongr/adboard/internal/config"
	"github.com/krongr/adboard/internal/platform/postgres"
	"github.com/krongr/adboard/internal/service"
)

// application holds the dependencies of the running server.
// Everything is constructed once at startup and passed down explicitly;
// nothing here lives in package-level state.
type application struct {
	config      *config.Config
	logger      *slog.Logger
	db          *sql.DB
	userService service.UserService
	adService   service.AdService
}

// newApplication wires stores and services on top of the shared connection pool.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	userStore := postgres.NewUserStore(db, logger)
	adStore := postgres.NewAdStore(db, logger)

	return &application{
		config:      cfg,
		logger:      logger,
		db:          db,
		userService: service.NewUserService(userStore, db, logger),
		adService:   service.NewAdService(adStore, userStore, db, logger),
	}, nil
}

// setupRouter creates and configures the application router with all routes and middleware.
// Returns the configured router.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(apimiddleware.Trace)

	userHandler := api.NewUserHandler(app.userService)
	adHandler := api.NewAdHandler(app.adService)

	// Register routes
	r.Route("/users", func(r chi.Router) {
		r.Post("/", userHandler.CreateUser)
	})

	r.Route("/ads", func(r chi.Router) {
		r.Get("/", adHandler.ListAds)
		r.Post("/", adHandler.CreateAd)
		// The bare verbs without an id still reach the handlers, which
		// reject them with 400 instead of chi's default 405.
		r.Patch("/", adHandler.UpdateAd)
		r.Delete("/", adHandler.DeleteAd)
		r.Patch("/{id}", adHandler.UpdateAd)
		r.Delete("/{id}", adHandler.DeleteAd)
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("failed to write health check response", "error", err)
		}
	})

	return r
}

// cleanup releases the application's resources during shutdown.
func (app *application) cleanup() {
	closeDatabase(app.db, app.logger)
}
