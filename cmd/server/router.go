package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/classtrack/classtrack-api/internal/api"
	apiMiddleware "github.com/classtrack/classtrack-api/internal/api/middleware"
	"github.com/classtrack/classtrack-api/internal/domain"
)

// setupRouter creates and configures the application router with all routes
// and middleware. Stage order matters: CORS runs first, tracing next, and
// the recovery boundary wraps everything route-specific so any panic from a
// later stage or handler becomes a uniform 500.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   app.config.Server.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	r.Use(apiMiddleware.Trace)
	r.Use(apiMiddleware.Recovery)

	// Create API handlers using the application's services
	courseHandler := api.NewCourseHandler(app.courseStore)
	userHandler := api.NewUserHandler(app.userStore, app.hasher)
	authHandler := api.NewAuthHandler(app.userStore, app.jwtService, app.hasher, app.loginLimiter)
	authMiddleware := apiMiddleware.NewAuthMiddleware(app.jwtService)

	// Register routes
	r.Route("/api", func(r chi.Router) {
		// Course endpoints (public)
		r.Route("/courses", func(r chi.Router) {
			r.Get("/", courseHandler.List)
			r.Post("/", courseHandler.Create)
			r.Get("/{id}", courseHandler.Get)
			r.Put("/{id}", courseHandler.Update)
			r.Delete("/{id}", courseHandler.Delete)
		})

		// User endpoints; mutations past registration require authentication,
		// deletion additionally requires the privileged role
		r.Route("/users", func(r chi.Router) {
			r.Get("/", userHandler.List)
			r.Post("/", userHandler.Register)
			r.Get("/{id}", userHandler.Get)
			r.With(authMiddleware.Authenticate).
				Put("/{id}", userHandler.Update)
			r.With(authMiddleware.Authenticate, apiMiddleware.RequireRole(domain.RoleAdmin)).
				Delete("/{id}", userHandler.Delete)
		})

		// Authentication endpoint (public)
		r.Post("/login", authHandler.Login)
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
