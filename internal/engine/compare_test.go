package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ZmnRobin/pc-builder/internal/domain"
)

func TestCompareBudgets_MoreMoneyNeverHurts(t *testing.T) {
	e := New(Options{})
	snap := snapshotOf(testCatalog()...)

	cmp, err := e.CompareBudgets(snap, domain.CompareRequest{
		Budgets: []int{40000, 80000, 120000},
		Purpose: domain.PurposeContentCreation,
	})
	require.NoError(t, err)
	require.Len(t, cmp.Builds, 3)

	// Results come back in input order.
	for i, budget := range []int{40000, 80000, 120000} {
		assert.Equal(t, budget, cmp.Builds[i].Budget)
		assert.LessOrEqual(t, cmp.Builds[i].TotalPrice, budget)
	}

	// Fit score is non-decreasing across increasing budgets.
	assert.LessOrEqual(t, cmp.Builds[0].FitScore, cmp.Builds[1].FitScore)
	assert.LessOrEqual(t, cmp.Builds[1].FitScore, cmp.Builds[2].FitScore)

	assert.Equal(t, 0, cmp.Cheapest)
	assert.Equal(t, 2, cmp.BestPerformance)
	assert.NotEmpty(t, cmp.Insights)
}

func TestCompareBudgets_IndependentRuns(t *testing.T) {
	e := New(Options{})
	snap := snapshotOf(testCatalog()...)

	cmp, err := e.CompareBudgets(snap, domain.CompareRequest{
		Budgets: []int{80000, 80000},
		Purpose: domain.PurposeGamingMid,
	})
	require.NoError(t, err)
	require.Len(t, cmp.Builds, 2)

	// Same budget twice must yield the same build; the runs share nothing.
	cmp.Builds[1].GeneratedAt = cmp.Builds[0].GeneratedAt
	assert.Equal(t, cmp.Builds[0], cmp.Builds[1])
}

func TestCompareBudgets_RejectsWholeCallOnBadBudget(t *testing.T) {
	e := New(Options{})
	snap := snapshotOf(testCatalog()...)

	_, err := e.CompareBudgets(snap, domain.CompareRequest{
		Budgets: []int{80000, -1},
		Purpose: domain.PurposeGamingMid,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidBudget)

	// One budget below the purpose floor also rejects everything.
	_, err = e.CompareBudgets(snap, domain.CompareRequest{
		Budgets: []int{80000, 30000},
		Purpose: domain.PurposeGamingMid,
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientBudget)

	_, err = e.CompareBudgets(snap, domain.CompareRequest{
		Budgets: []int{},
		Purpose: domain.PurposeGamingMid,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidBudget)

	_, err = e.CompareBudgets(snap, domain.CompareRequest{
		Budgets: []int{80000},
		Purpose: "mining_rig",
	})
	assert.ErrorIs(t, err, domain.ErrUnknownPurpose)
}
