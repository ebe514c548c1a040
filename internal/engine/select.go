package engine

import (
	"github.com/ZmnRobin/pc-builder/internal/domain"
)

// selectBuild greedily fills categories in the profile's priority order.
// Each pick filters the catalog down to in-stock, tier-eligible, compatible
// candidates within the category's sub-budget and keeps the best value.
// Categories that cannot be filled get a bounded reallocation retry with
// the unspent headroom of the whole build; after that they stay unfilled
// rather than aborting the build. This is a greedy constructive heuristic,
// not an exhaustive search.
//
// It returns the build plus the per-category value score of each pick,
// which the scorer reuses so the fit score reflects selection-time values.
func (e *Engine) selectBuild(
	snapshot *domain.Snapshot,
	profile domain.Profile,
	budget int,
	alloc Allocation,
	prefs brandPrefs,
) (*domain.Build, map[domain.Category]float64, error) {
	chosen := make(map[domain.Category]domain.Component)
	catScores := make(map[domain.Category]float64)

	// leftover tracks the unspent part of each category's allocation; its
	// sum is the headroom the reallocation passes may lend out.
	leftover := make(Allocation, len(alloc))
	for c, v := range alloc {
		leftover[c] = v
	}

	var unfilled []domain.Category
	for _, cat := range profile.Required() {
		comp, score, ok := e.pickBest(snapshot.Category(cat), cat, profile, chosen, leftover[cat], prefs)
		if !ok {
			unfilled = append(unfilled, cat)
			continue
		}
		chosen[cat] = comp
		catScores[cat] = score
		leftover[cat] -= comp.PriceBDT
	}

	for pass := 0; pass < maxReallocPasses && len(unfilled) > 0; pass++ {
		var still []domain.Category
		for _, cat := range unfilled {
			pool := leftover.Sum()
			comp, score, ok := e.pickBest(snapshot.Category(cat), cat, profile, chosen, pool, prefs)
			if !ok {
				still = append(still, cat)
				continue
			}
			chosen[cat] = comp
			catScores[cat] = score
			drainPool(leftover, cat, profile.Priority, comp.PriceBDT)
		}
		if len(still) == len(unfilled) {
			unfilled = still
			break // no progress, further passes change nothing
		}
		unfilled = still
	}

	if len(chosen) == 0 {
		return nil, nil, domain.ErrInsufficientOptions
	}

	total := 0
	for _, c := range chosen {
		total += c.PriceBDT
	}

	return &domain.Build{
		Purpose:         profile.Purpose,
		Budget:          budget,
		Components:      chosen,
		Allocation:      alloc,
		TotalPrice:      total,
		RemainingBudget: budget - total,
		Unfilled:        unfilled,
	}, catScores, nil
}

// pickBest chooses the highest-value candidate for a category within
// subBudget. Ties go to the higher absolute price (marginally better
// hardware inside the same budget), then to the lexically smaller name so
// results are reproducible.
func (e *Engine) pickBest(
	candidates []domain.Component,
	cat domain.Category,
	profile domain.Profile,
	partial map[domain.Category]domain.Component,
	subBudget int,
	prefs brandPrefs,
) (domain.Component, float64, bool) {
	if subBudget <= 0 {
		return domain.Component{}, 0, false
	}

	eligible := make([]domain.Component, 0, len(candidates))
	for _, c := range candidates {
		if !c.InStock || c.PriceBDT <= 0 || c.PriceBDT > subBudget {
			continue
		}
		if cat == domain.CategoryGPU && profile.MinGPUTier != domain.TierUnknown &&
			TierOf(cat, c.Name) < profile.MinGPUTier {
			continue
		}
		eligible = append(eligible, c)
	}
	eligible = FilterCompatible(eligible, partial)
	if len(eligible) == 0 {
		return domain.Component{}, 0, false
	}

	best := eligible[0]
	bestScore := e.valueScore(best, subBudget, prefs)
	for _, c := range eligible[1:] {
		s := e.valueScore(c, subBudget, prefs)
		if s > bestScore ||
			(s == bestScore && c.PriceBDT > best.PriceBDT) ||
			(s == bestScore && c.PriceBDT == best.PriceBDT && c.Name < best.Name) {
			best, bestScore = c, s
		}
	}
	return best, bestScore, true
}

// drainPool charges a reallocation-pass purchase against the leftovers:
// the category's own remainder first, then donors in priority order.
func drainPool(leftover Allocation, cat domain.Category, priority []domain.Category, price int) {
	take := func(c domain.Category) {
		if price <= 0 {
			return
		}
		n := min(leftover[c], price)
		leftover[c] -= n
		price -= n
	}
	take(cat)
	for _, c := range priority {
		take(c)
	}
}
