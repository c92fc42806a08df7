package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/saulo-duarte/gritboard/internal/analytics"
	"github.com/saulo-duarte/gritboard/internal/config"
	"github.com/saulo-duarte/gritboard/internal/middlewares"
)

type RouterConfig struct {
	AnalyticsHandler  *analytics.Handler
	CorsAllowedOrigin string
}

func New(cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewares.CorsMiddleware(cfg.CorsAllowedOrigin))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		config.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Mount("/analytics", analytics.Routes(cfg.AnalyticsHandler))
	return r
}
