package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/ZmnRobin/pc-builder/internal/domain"
	"github.com/ZmnRobin/pc-builder/internal/repository"
	"github.com/ZmnRobin/pc-builder/internal/scraper"
	"github.com/ZmnRobin/pc-builder/internal/service"
)

// Service is what handlers need from the application layer; narrowed to an
// interface so handler tests can stub it.
type Service interface {
	RecommendBuild(ctx context.Context, req domain.BuildRequest) (*service.RecommendResult, error)
	CompareBuilds(ctx context.Context, req domain.CompareRequest) (*domain.Comparison, error)
	ListComponents(ctx context.Context, f repository.ComponentFilter) ([]domain.Component, error)
	ScrapeAndRefresh(ctx context.Context) (scraper.Stats, error)
	MarketInsights(ctx context.Context) (*service.MarketInsights, error)
	Templates() []service.BuildTemplate
	Health(ctx context.Context) service.Health
}

type Handler struct {
	service Service
}

func NewHandler(svc Service) *Handler {
	return &Handler{service: svc}
}

// write JSON response
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writes JSON error response.
func writeError(w http.ResponseWriter, status int, errCode, message string) {
	writeJSON(w, status, ErrorResponse{
		Error:   errCode,
		Message: message,
	})
}
