package handler

import (
	"context"
	"net/http"
	"time"
)

// scrapeTimeout bounds a background scrape kicked off over HTTP. A full
// StarTech crawl takes a few minutes at the default rate limit.
const scrapeTimeout = 10 * time.Minute

// POST /scrape-now
func (h *Handler) ScrapeNow(w http.ResponseWriter, r *http.Request) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), scrapeTimeout)
		defer cancel()
		h.service.ScrapeAndRefresh(ctx)
	}()

	writeJSON(w, http.StatusAccepted, ScrapeResponse{
		Status:  "accepted",
		Message: "Scrape started, catalog will refresh when it completes",
	})
}

// GET /build-templates
func (h *Handler) GetTemplates(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"templates": h.service.Templates(),
	})
}

// GET /market-insights
func (h *Handler) GetMarketInsights(w http.ResponseWriter, r *http.Request) {
	insights, err := h.service.MarketInsights(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", "An unexpected error occurred")
		return
	}
	writeJSON(w, http.StatusOK, insights)
}

// GET /health
func (h *Handler) GetHealth(w http.ResponseWriter, r *http.Request) {
	health := h.service.Health(r.Context())
	status := http.StatusOK
	if health.Status != "healthy" {
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, status, health)
}
