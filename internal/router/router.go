package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/notalone-dev/notalone/internal/middleware"
	"github.com/notalone-dev/notalone/internal/middleware/metrics"
	rl "github.com/notalone-dev/notalone/internal/middleware/ratelimiter"
	"github.com/notalone-dev/notalone/internal/setup"
)

// New creates and configures the router with all the routes.
func New(deps *setup.Dependencies) *chi.Mux {
	cfg := deps.Config.Public
	h := deps.Handler

	r := chi.NewRouter()

	r.Use(chimw.Compress(5))

	origins := cfg.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "Authorization", "X-Admin-Password", "X-Deletion-Token", "X-User-Token"},
	}))

	r.Use(middleware.SecurityHeaders(cfg.SecureHeaders))
	r.Use(metrics.Middleware)

	// One bucket per IP across all write endpoints
	writeLimiter := rl.New(cfg.WriteRatePerMinute/60.0, cfg.WriteBurst, time.Duration(cfg.LimiterExpireMinutes)*time.Minute)
	writeLimit := middleware.RateLimit(writeLimiter, middleware.GetIP)

	r.Get("/health", h.Health)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())
	r.Post("/admin/verify", h.VerifyAdmin)

	r.Route("/stories", func(r chi.Router) {
		r.Get("/", h.GetStories)
		r.With(writeLimit).Post("/", h.CreateStory)

		r.Route("/{id}", func(r chi.Router) {
			r.Delete("/", h.DeleteStory)
			r.Get("/comments", h.GetComments)
			r.With(writeLimit).Post("/comments", h.CreateComment)
			r.Get("/reactions", h.GetReactions)
			r.With(writeLimit).Post("/reactions", h.ToggleReaction)
		})
	})

	r.Delete("/comments/{id}", h.DeleteComment)

	return r
}
