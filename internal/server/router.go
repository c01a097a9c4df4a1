// Package server assembles the HTTP routes of the service.
package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"

	"github.com/sbilibin2017/gw-tweeter/internal/handlers"
	"github.com/sbilibin2017/gw-tweeter/internal/middlewares"
	"github.com/sbilibin2017/gw-tweeter/internal/services"
)

// Config holds everything the router needs.
type Config struct {
	Auth    *services.AuthService
	Tweets  *services.TweetService
	Tokener middlewares.Tokener
	Log     *zap.SugaredLogger
	// DB wraps tweet mutations in a request transaction when set.
	DB *sqlx.DB
	// SwaggerURL is the location of doc.json served under /swagger/*.
	SwaggerURL string
}

// NewRouter returns the chi router serving the public API.
func NewRouter(cfg Config) http.Handler {
	log := cfg.Log
	if log == nil {
		log = zap.NewNop().Sugar()
	}

	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(log))

	r.Get("/healthz", handlers.NewHealthHandler())
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL(cfg.SwaggerURL)))

	authMiddleware := middlewares.AuthMiddleware(cfg.Tokener)

	r.Route("/auth", func(r chi.Router) {
		r.Post("/signup", handlers.NewSignupHandler(cfg.Auth))
		r.Post("/login", handlers.NewLoginHandler(cfg.Auth))
		r.With(authMiddleware).Get("/me", handlers.NewMeHandler(cfg.Auth))
	})

	r.Route("/tweets", func(r chi.Router) {
		r.Use(authMiddleware)

		r.Get("/", handlers.NewListTweetsHandler(cfg.Tweets))
		r.Post("/", handlers.NewCreateTweetHandler(cfg.Tweets))
		r.Get("/{id}", handlers.NewGetTweetHandler(cfg.Tweets))

		r.Group(func(r chi.Router) {
			if cfg.DB != nil {
				r.Use(middlewares.TxMiddleware(cfg.DB))
			}
			r.Put("/{id}", handlers.NewUpdateTweetHandler(cfg.Tweets))
			r.Delete("/{id}", handlers.NewDeleteTweetHandler(cfg.Tweets))
		})
	})

	return r
}
