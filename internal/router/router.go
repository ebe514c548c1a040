package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/ZmnRobin/pc-builder/internal/handler"
)

func Setup(h *handler.Handler) http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	// Routes
	r.Post("/recommend-build", h.RecommendBuild)
	r.Post("/compare-builds", h.CompareBuilds)
	r.Get("/components", h.GetComponents)
	r.Post("/scrape-now", h.ScrapeNow)
	r.Get("/build-templates", h.GetTemplates)
	r.Get("/market-insights", h.GetMarketInsights)
	r.Get("/health", h.GetHealth)

	return r
}
