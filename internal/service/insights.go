package service

import (
	"context"
	"time"

	"github.com/rotisserie/eris"

	"github.com/ZmnRobin/pc-builder/internal/domain"
	"github.com/ZmnRobin/pc-builder/internal/repository"
)

// trendWindow splits price history into "recent" and "earlier" halves for
// the market insight trends.
const trendWindow = 7 * 24 * time.Hour

// MarketInsights is a point-in-time market summary.
type MarketInsights struct {
	TotalComponents   int                                   `json:"total_components"`
	InStockComponents int                                   `json:"in_stock_components"`
	BuildsServed      int                                   `json:"builds_served"`
	SnapshotTakenAt   time.Time                             `json:"snapshot_taken_at"`
	PriceTrends       []repository.PriceTrend               `json:"price_trends"`
	BestValue         map[domain.Category]domain.Component  `json:"best_value"`
}

// MarketInsights aggregates catalog counts, price trends and per-category
// best-value picks from the current snapshot.
func (s *Service) MarketInsights(ctx context.Context) (*MarketInsights, error) {
	total, inStock, err := s.repo.CountComponents(ctx)
	if err != nil {
		return nil, eris.Wrap(err, "market insights")
	}
	served, err := s.repo.CountBuildLogs(ctx, "")
	if err != nil {
		return nil, eris.Wrap(err, "market insights")
	}
	trends, err := s.repo.PriceTrends(ctx, time.Now().Add(-trendWindow))
	if err != nil {
		return nil, eris.Wrap(err, "market insights")
	}

	snap := s.catalog.Current()
	return &MarketInsights{
		TotalComponents:   total,
		InStockComponents: inStock,
		BuildsServed:      served,
		SnapshotTakenAt:   snap.TakenAt,
		PriceTrends:       trends,
		BestValue:         bestValuePicks(snap),
	}, nil
}

// bestValuePicks returns, per category, the component with the most
// performance per BDT in the current snapshot.
func bestValuePicks(snap *domain.Snapshot) map[domain.Category]domain.Component {
	picks := make(map[domain.Category]domain.Component)
	for _, cat := range domain.AllCategories() {
		var best domain.Component
		bestRatio := -1.0
		for _, c := range snap.Category(cat) {
			if c.PriceBDT <= 0 {
				continue
			}
			ratio := float64(c.PerformanceScore) / float64(c.PriceBDT)
			if ratio > bestRatio {
				best, bestRatio = c, ratio
			}
		}
		if bestRatio >= 0 {
			picks[cat] = best
		}
	}
	return picks
}
