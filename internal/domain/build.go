package domain

import "time"

type CompatibilityStatus string

const (
	CompatibilityValid   CompatibilityStatus = "valid"
	CompatibilityInvalid CompatibilityStatus = "invalid"
)

// BuildRequest is the engine-facing input contract.
type BuildRequest struct {
	Budget       int      `json:"budget"`
	Purpose      Purpose  `json:"purpose"`
	PreferBrands []string `json:"prefer_brands,omitempty"`
	AvoidBrands  []string `json:"avoid_brands,omitempty"`
}

// CompareRequest asks for one build per budget, all for the same purpose.
type CompareRequest struct {
	Budgets      []int    `json:"budgets"`
	Purpose      Purpose  `json:"purpose"`
	PreferBrands []string `json:"prefer_brands,omitempty"`
	AvoidBrands  []string `json:"avoid_brands,omitempty"`
}

// Build is a finished recommendation. It is never mutated after the engine
// returns it; comparisons produce fresh instances.
type Build struct {
	Purpose         Purpose                `json:"purpose"`
	Budget          int                    `json:"budget"`
	Components      map[Category]Component `json:"components"`
	Allocation      map[Category]int       `json:"allocation"`
	TotalPrice      int                    `json:"total_price"`
	RemainingBudget int                    `json:"remaining_budget"`
	FitScore        float64                `json:"fit_score"`
	Compatibility   CompatibilityStatus    `json:"compatibility"`
	Violations      []string               `json:"violations,omitempty"`
	Unfilled        []Category             `json:"unfilled,omitempty"`
	Rationale       []string               `json:"rationale"`
	Warnings        []string               `json:"warnings,omitempty"`
	StaleCatalog    bool                   `json:"stale_catalog,omitempty"`
	GeneratedAt     time.Time              `json:"generated_at"`
}

// Filled reports whether every required category got a component.
func (b *Build) Filled() bool {
	return len(b.Unfilled) == 0
}

// Comparison holds one build per requested budget, in request order.
type Comparison struct {
	Purpose         Purpose  `json:"purpose"`
	Builds          []*Build `json:"builds"`
	Cheapest        int      `json:"cheapest"`
	BestPerformance int      `json:"best_performance"`
	BestValue       int      `json:"best_value"`
	Insights        []string `json:"insights"`
}

// BuildLog is the persisted record of a served recommendation.
type BuildLog struct {
	ID         string    `json:"id"`
	Purpose    Purpose   `json:"purpose"`
	Budget     int       `json:"budget"`
	TotalPrice int       `json:"total_price"`
	FitScore   float64   `json:"fit_score"`
	Unfilled   int       `json:"unfilled"`
	CreatedAt  time.Time `json:"created_at"`
}
