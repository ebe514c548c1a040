package handler

import (
	"time"

	"github.com/ZmnRobin/pc-builder/internal/domain"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

type BuildResponse struct {
	Build    *domain.Build `json:"build"`
	Metadata BuildMeta     `json:"metadata"`
}

type BuildMeta struct {
	CacheHit    bool      `json:"cache_hit"`
	GeneratedAt time.Time `json:"generated_at"`
}

type ComponentsResponse struct {
	Components []domain.Component `json:"components"`
	Count      int                `json:"count"`
}

type ScrapeResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
