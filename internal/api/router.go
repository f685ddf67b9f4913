package api

import (
	"net/http"

	"github.com/dcamargo/restaurant-finder/internal/api/handlers"
	"github.com/dcamargo/restaurant-finder/internal/api/middleware"
	"github.com/dcamargo/restaurant-finder/internal/config"
	"github.com/dcamargo/restaurant-finder/internal/service"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"golang.org/x/time/rate"
)

func NewRouter(services *service.Services, cfg *config.Config) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestID)
	r.Use(middleware.CORS)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	// Initialize handlers
	userHandler := handlers.NewUserHandler(services.User, services.Auth)
	restaurantHandler := handlers.NewRestaurantHandler(services.Restaurant)
	transactionHandler := handlers.NewTransactionHandler(services.Transaction)

	// Default 5 requests per minute per client on the credential endpoints
	credentialLimit := middleware.RateLimit(rate.Limit(cfg.AuthRatePerSecond), cfg.AuthRateBurst)

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/users", func(r chi.Router) {
			// Public routes
			r.With(credentialLimit).Post("/", userHandler.Register)
			r.With(credentialLimit).Post("/login", userHandler.Login)

			// Protected routes
			r.Group(func(r chi.Router) {
				r.Use(middleware.Auth(services.Auth))
				r.Post("/logout", userHandler.Logout)
				r.Get("/", userHandler.List)
				r.Get("/{username}", userHandler.Get)
				r.Put("/{username}", userHandler.Update)
				r.Delete("/{username}", userHandler.Delete)
			})
		})

		// Restaurant routes are the audited surface; Audit wraps Auth so
		// rejected requests are recorded too.
		r.Route("/restaurants", func(r chi.Router) {
			r.Use(middleware.Audit(services.Transaction))
			r.Use(middleware.Auth(services.Auth))
			r.Get("/", restaurantHandler.Search)
		})

		r.Route("/transactions", func(r chi.Router) {
			r.Use(middleware.Auth(services.Auth))
			r.Get("/all", transactionHandler.ListAll)
			r.Get("/me", transactionHandler.ListMine)
		})
	})

	return r
}
