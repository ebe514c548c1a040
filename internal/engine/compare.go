package engine

import (
	"fmt"

	"github.com/ZmnRobin/pc-builder/internal/domain"
)

// CompareBudgets runs the full recommendation pipeline once per budget and
// assembles a comparative report. Results come back in input order; each
// run is independent and shares no mutable state with the others. Budget
// validation happens up front so an input error rejects the whole request
// instead of producing a partial comparison.
func (e *Engine) CompareBudgets(snapshot *domain.Snapshot, req domain.CompareRequest) (*domain.Comparison, error) {
	profile, ok := domain.ProfileFor(req.Purpose)
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownPurpose, req.Purpose)
	}
	if len(req.Budgets) == 0 {
		return nil, fmt.Errorf("%w: no budgets given", domain.ErrInvalidBudget)
	}
	for _, b := range req.Budgets {
		if b <= 0 {
			return nil, fmt.Errorf("%w: got %d", domain.ErrInvalidBudget, b)
		}
		if b < profile.MinBudget {
			return nil, fmt.Errorf("%w: %s needs at least %d, got %d",
				domain.ErrInsufficientBudget, profile.Purpose, profile.MinBudget, b)
		}
	}

	builds := make([]*domain.Build, 0, len(req.Budgets))
	for _, budget := range req.Budgets {
		build, err := e.Recommend(snapshot, domain.BuildRequest{
			Budget:       budget,
			Purpose:      req.Purpose,
			PreferBrands: req.PreferBrands,
			AvoidBrands:  req.AvoidBrands,
		})
		if err != nil {
			return nil, err
		}
		builds = append(builds, build)
	}

	cmp := &domain.Comparison{Purpose: req.Purpose, Builds: builds}
	cmp.Cheapest = indexOfMin(builds, func(b *domain.Build) float64 { return float64(b.TotalPrice) })
	cmp.BestPerformance = indexOfMax(builds, func(b *domain.Build) float64 { return b.FitScore })
	cmp.BestValue = indexOfMax(builds, valuePerPrice)
	cmp.Insights = comparisonInsights(cmp)
	return cmp, nil
}

// valuePerPrice scales fit score per currency unit into a readable number.
func valuePerPrice(b *domain.Build) float64 {
	if b.TotalPrice <= 0 {
		return 0
	}
	return b.FitScore / float64(b.TotalPrice) * 10000
}

func comparisonInsights(cmp *domain.Comparison) []string {
	var insights []string
	if bv := cmp.Builds[cmp.BestValue]; bv != nil {
		insights = append(insights, fmt.Sprintf(
			"Best value at BDT %d: fit score %.1f for BDT %d spent",
			bv.Budget, bv.FitScore, bv.TotalPrice))
	}
	if bp := cmp.Builds[cmp.BestPerformance]; bp != nil {
		insights = append(insights, fmt.Sprintf(
			"Highest fit score %.1f comes from the BDT %d budget",
			bp.FitScore, bp.Budget))
	}
	return insights
}

func indexOfMin(builds []*domain.Build, key func(*domain.Build) float64) int {
	best := 0
	for i, b := range builds {
		if key(b) < key(builds[best]) {
			best = i
		}
	}
	return best
}

func indexOfMax(builds []*domain.Build, key func(*domain.Build) float64) int {
	best := 0
	for i, b := range builds {
		if key(b) > key(builds[best]) {
			best = i
		}
	}
	return best
}
