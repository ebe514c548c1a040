package engine

import (
	"fmt"

	"github.com/ZmnRobin/pc-builder/internal/domain"
)

// Allocation maps each required category to its share of the budget.
type Allocation map[domain.Category]int

// Sum is the total currently allocated across categories.
func (a Allocation) Sum() int {
	total := 0
	for _, v := range a {
		total += v
	}
	return total
}

// Allocate splits a total budget into per-category sub-budgets using the
// profile's weight table. Sub-budgets are floored, and the rounding
// remainder goes to the highest-weighted category so integer truncation
// never under-allocates. Pure function of its inputs.
func Allocate(budget int, profile domain.Profile) (Allocation, error) {
	if budget <= 0 {
		return nil, fmt.Errorf("%w: got %d", domain.ErrInvalidBudget, budget)
	}
	if budget < profile.MinBudget {
		return nil, fmt.Errorf("%w: %s needs at least %d, got %d",
			domain.ErrInsufficientBudget, profile.Purpose, profile.MinBudget, budget)
	}

	alloc := make(Allocation, len(profile.Weights))
	weightTotal := 0.0
	for _, c := range profile.Required() {
		w := profile.Weights[c]
		alloc[c] = int(float64(budget) * w)
		weightTotal += w
	}

	// Hand the truncation remainder to the top category. Only the portion
	// the weights actually claim is distributable; profiles with weights
	// summing below 1 keep the rest as slack.
	claimed := int(float64(budget) * weightTotal)
	if remainder := claimed - alloc.Sum(); remainder > 0 {
		alloc[profile.TopCategory()] += remainder
	}

	return alloc, nil
}
