package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/ZmnRobin/pc-builder/internal/cache"
	"github.com/ZmnRobin/pc-builder/internal/catalog"
	"github.com/ZmnRobin/pc-builder/internal/domain"
	"github.com/ZmnRobin/pc-builder/internal/engine"
	"github.com/ZmnRobin/pc-builder/internal/repository"
	"github.com/ZmnRobin/pc-builder/internal/scraper"
)

type Service struct {
	repo    *repository.Repository
	cache   *cache.Cache
	engine  *engine.Engine
	catalog *catalog.Store
	scraper *scraper.Scraper
	log     *zap.Logger
}

func New(
	repo *repository.Repository,
	c *cache.Cache,
	eng *engine.Engine,
	cat *catalog.Store,
	scr *scraper.Scraper,
	log *zap.Logger,
) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{repo: repo, cache: c, engine: eng, catalog: cat, scraper: scr, log: log}
}

// RecommendResult pairs a build with whether it came from cache.
type RecommendResult struct {
	Build    *domain.Build
	CacheHit bool
}

// RecommendBuild serves one recommendation, cache-aside. Cache failures are
// logged and bypassed; a cold cache must never block a recommendation.
func (s *Service) RecommendBuild(ctx context.Context, req domain.BuildRequest) (*RecommendResult, error) {
	cached, found, err := s.cache.GetBuild(ctx, req)
	if err != nil {
		s.log.Warn("build cache get failed", zap.Error(err))
	}
	if found {
		return &RecommendResult{Build: cached, CacheHit: true}, nil
	}

	build, err := s.engine.Recommend(s.catalog.Current(), req)
	if err != nil {
		return nil, err
	}

	if cacheErr := s.cache.SetBuild(ctx, req, build); cacheErr != nil {
		s.log.Warn("build cache set failed", zap.Error(cacheErr))
	}
	s.logBuild(ctx, build)

	return &RecommendResult{Build: build}, nil
}

// CompareBuilds runs the pipeline once per requested budget.
func (s *Service) CompareBuilds(ctx context.Context, req domain.CompareRequest) (*domain.Comparison, error) {
	cmp, err := s.engine.CompareBudgets(s.catalog.Current(), req)
	if err != nil {
		return nil, err
	}
	for _, b := range cmp.Builds {
		s.logBuild(ctx, b)
	}
	return cmp, nil
}

// logBuild persists a served recommendation; failures are logged, not
// surfaced, since the build has already been produced.
func (s *Service) logBuild(ctx context.Context, build *domain.Build) {
	err := s.repo.SaveBuildLog(ctx, domain.BuildLog{
		ID:         uuid.NewString(),
		Purpose:    build.Purpose,
		Budget:     build.Budget,
		TotalPrice: build.TotalPrice,
		FitScore:   build.FitScore,
		Unfilled:   len(build.Unfilled),
		CreatedAt:  build.GeneratedAt,
	})
	if err != nil {
		s.log.Warn("build log save failed", zap.Error(err))
	}
}

// ListComponents exposes the stored catalog with optional filters.
func (s *Service) ListComponents(ctx context.Context, f repository.ComponentFilter) ([]domain.Component, error) {
	return s.repo.ListComponents(ctx, f)
}

// RefreshCatalog loads the in-stock inventory and publishes it as a new
// immutable snapshot, then drops cached builds computed from the old one.
func (s *Service) RefreshCatalog(ctx context.Context) error {
	components, err := s.repo.ListInStock(ctx)
	if err != nil {
		return eris.Wrap(err, "refresh catalog")
	}
	snap := catalog.BuildSnapshot(components, time.Now().UTC())
	s.catalog.Publish(snap)

	if err := s.cache.InvalidateBuilds(ctx); err != nil {
		s.log.Warn("cache invalidation failed after catalog refresh", zap.Error(err))
	}
	s.log.Info("catalog snapshot published", zap.Int("components", snap.Total()))
	return nil
}

// ScrapeAndRefresh runs a full scrape, then republishes the catalog.
func (s *Service) ScrapeAndRefresh(ctx context.Context) (scraper.Stats, error) {
	stats, err := s.scraper.ScrapeAll(ctx)
	if err != nil {
		return stats, err
	}
	return stats, s.RefreshCatalog(ctx)
}
