package service

import (
	"context"
	"time"
)

// Health reports the state of the service's dependencies.
type Health struct {
	Status     string `json:"status"`
	Database   string `json:"database"`
	Cache      string `json:"cache"`
	Components int    `json:"components"`
	CatalogAge string `json:"catalog_age"`
}

// Health pings postgres and redis and summarizes the current snapshot.
// A failing dependency degrades the status but still returns a report.
func (s *Service) Health(ctx context.Context) Health {
	h := Health{Status: "healthy", Database: "connected", Cache: "connected"}

	if _, _, err := s.repo.CountComponents(ctx); err != nil {
		h.Status = "unhealthy"
		h.Database = "unreachable"
	}
	if err := s.cache.Ping(ctx); err != nil {
		h.Status = "unhealthy"
		h.Cache = "unreachable"
	}

	snap := s.catalog.Current()
	h.Components = snap.Total()
	if !snap.TakenAt.IsZero() {
		h.CatalogAge = snap.Age(time.Now()).Round(time.Second).String()
	}
	return h
}
