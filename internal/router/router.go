package router

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Ares-Judda/Wang-Api/internal/config"
	"github.com/Ares-Judda/Wang-Api/internal/handler"
	"github.com/Ares-Judda/Wang-Api/internal/middleware"
)

type Handlers struct {
	Auth     *handler.AuthHandler
	User     *handler.UserHandler
	Property *handler.PropertyHandler
	FAQ      *handler.FAQHandler
	Rental   *handler.RentalHandler
	Docs     *handler.DocsHandler
}

// New assembles the middleware chain and the route table. uploadRoot is
// served read-only under /uploads, matching the public paths the upload
// store hands out. healthCheck reports database reachability.
func New(
	cfg *config.Config,
	authMiddleware *middleware.AuthMiddleware,
	handlers Handlers,
	uploadRoot string,
	healthCheck func(ctx context.Context) error,
) http.Handler {
	r := chi.NewRouter()
	rateLimitMiddleware := middleware.NewRateLimitMiddleware(cfg.RateLimitRPM, cfg.AuthRateLimitRPM)

	r.Use(middleware.Recovery)
	r.Use(middleware.Logging)
	r.Use(middleware.CORS(cfg.CORSOrigins))
	r.Use(middleware.SecurityHeaders)
	r.Use(rateLimitMiddleware.Handler)

	r.Get("/health", func(w http.ResponseWriter, req *http.Request) {
		if healthCheck != nil {
			if err := healthCheck(req.Context()); err != nil {
				w.WriteHeader(http.StatusServiceUnavailable)
				_, _ = w.Write([]byte("database unreachable"))
				return
			}
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Get("/openapi.yaml", handlers.Docs.OpenAPI)
	r.Get("/swagger", handlers.Docs.SwaggerUI)

	fileServer := http.StripPrefix("/uploads/", http.FileServer(http.Dir(uploadRoot)))
	r.Get("/uploads/*", fileServer.ServeHTTP)

	r.Route("/api", func(api chi.Router) {
		api.Use(middleware.Timeout(cfg.RequestTimeout))

		api.Route("/auth", func(auth chi.Router) {
			auth.Post("/register", handlers.Auth.Register)
			auth.Post("/login", handlers.Auth.Login)
			auth.Post("/refresh-token", handlers.Auth.Refresh)
		})

		api.Route("/users", func(users chi.Router) {
			users.Post("/change-password", handlers.User.ChangePassword)
			users.With(authMiddleware.RequireAuth).Get("/", handlers.User.List)
			users.With(authMiddleware.RequireAuth).Get("/profile", handlers.User.Profile)
		})

		api.Route("/properties", func(properties chi.Router) {
			properties.Get("/", handlers.Property.List)
			properties.Post("/", handlers.Property.Create)
			properties.Put("/", handlers.Property.Update)
			properties.Get("/details", handlers.Property.Details)
		})

		api.Route("/faqs", func(faqs chi.Router) {
			faqs.Post("/", handlers.FAQ.Create)
			faqs.Put("/answer", handlers.FAQ.Answer)
		})

		api.Get("/contracts", handlers.Rental.Contracts)
		api.Post("/payments", handlers.Rental.CreatePayment)
	})

	return r
}
