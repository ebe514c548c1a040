package domain

type Purpose string

const (
	PurposeGamingBudget    Purpose = "gaming_budget"
	PurposeGamingMid       Purpose = "gaming_mid"
	PurposeGamingHighEnd   Purpose = "gaming_high"
	PurposeOffice          Purpose = "office"
	PurposeProductivity    Purpose = "productivity"
	PurposeContentCreation Purpose = "content_creation"
)

// Profile describes how a usage purpose spends a budget: which categories
// are required, how the budget splits across them, and the order in which
// the selector fills them (highest-impact category first).
type Profile struct {
	Purpose   Purpose
	Weights   map[Category]float64
	Priority  []Category
	MinBudget int
	// MinGPUTier is the lowest acceptable GPU class for this purpose.
	// TierUnknown means no floor.
	MinGPUTier Tier
}

// Required returns the categories this profile allocates budget to,
// in priority order.
func (p Profile) Required() []Category {
	out := make([]Category, 0, len(p.Priority))
	for _, c := range p.Priority {
		if p.Weights[c] > 0 {
			out = append(out, c)
		}
	}
	return out
}

// TopCategory is the highest-weighted category; allocation rounding
// remainders land here.
func (p Profile) TopCategory() Category {
	var top Category
	best := -1.0
	for _, c := range p.Priority {
		if w := p.Weights[c]; w > best {
			best = w
			top = c
		}
	}
	return top
}

var profiles = map[Purpose]Profile{
	PurposeGamingBudget: {
		Purpose: PurposeGamingBudget,
		Weights: map[Category]float64{
			CategoryGPU: 0.35, CategoryCPU: 0.20, CategoryRAM: 0.12,
			CategoryMotherboard: 0.10, CategoryStorage: 0.08,
			CategoryPSU: 0.08, CategoryCase: 0.05, CategoryCooling: 0.02,
		},
		Priority:  gamingPriority,
		MinBudget: 25000,
	},
	PurposeGamingMid: {
		Purpose: PurposeGamingMid,
		Weights: map[Category]float64{
			CategoryGPU: 0.40, CategoryCPU: 0.22, CategoryRAM: 0.12,
			CategoryMotherboard: 0.08, CategoryStorage: 0.08,
			CategoryPSU: 0.06, CategoryCase: 0.03, CategoryCooling: 0.01,
		},
		Priority:  gamingPriority,
		MinBudget: 50000,
	},
	PurposeGamingHighEnd: {
		Purpose: PurposeGamingHighEnd,
		Weights: map[Category]float64{
			CategoryGPU: 0.45, CategoryCPU: 0.25, CategoryRAM: 0.10,
			CategoryMotherboard: 0.08, CategoryStorage: 0.06,
			CategoryPSU: 0.04, CategoryCase: 0.02,
		},
		Priority:   gamingPriority,
		MinBudget:  100000,
		MinGPUTier: TierMid,
	},
	PurposeOffice: {
		Purpose: PurposeOffice,
		Weights: map[Category]float64{
			CategoryCPU: 0.30, CategoryRAM: 0.20, CategoryStorage: 0.20,
			CategoryMotherboard: 0.15, CategoryGPU: 0.05,
			CategoryPSU: 0.05, CategoryCase: 0.05,
		},
		Priority:  workstationPriority,
		MinBudget: 20000,
	},
	PurposeProductivity: {
		Purpose: PurposeProductivity,
		Weights: map[Category]float64{
			CategoryCPU: 0.35, CategoryRAM: 0.25, CategoryStorage: 0.15,
			CategoryMotherboard: 0.10, CategoryGPU: 0.08,
			CategoryPSU: 0.05, CategoryCase: 0.02,
		},
		Priority:  workstationPriority,
		MinBudget: 30000,
	},
	PurposeContentCreation: {
		Purpose: PurposeContentCreation,
		Weights: map[Category]float64{
			CategoryCPU: 0.30, CategoryGPU: 0.25, CategoryRAM: 0.20,
			CategoryStorage: 0.10, CategoryMotherboard: 0.08,
			CategoryPSU: 0.05, CategoryCase: 0.02,
		},
		Priority:  creatorPriority,
		MinBudget: 40000,
	},
}

// Fill orders: GPU leads gaming builds, CPU leads everything else.
// The motherboard always comes right after the CPU so socket constraints
// are pinned before RAM is chosen.
var (
	gamingPriority = []Category{
		CategoryGPU, CategoryCPU, CategoryMotherboard, CategoryRAM,
		CategoryStorage, CategoryPSU, CategoryCase, CategoryCooling,
	}
	workstationPriority = []Category{
		CategoryCPU, CategoryMotherboard, CategoryRAM, CategoryStorage,
		CategoryGPU, CategoryPSU, CategoryCase,
	}
	creatorPriority = []Category{
		CategoryCPU, CategoryGPU, CategoryMotherboard, CategoryRAM,
		CategoryStorage, CategoryPSU, CategoryCase,
	}
)

// ProfileFor looks up the profile for a purpose.
func ProfileFor(purpose Purpose) (Profile, bool) {
	p, ok := profiles[purpose]
	return p, ok
}

// Purposes lists every known purpose.
func Purposes() []Purpose {
	return []Purpose{
		PurposeGamingBudget, PurposeGamingMid, PurposeGamingHighEnd,
		PurposeOffice, PurposeProductivity, PurposeContentCreation,
	}
}
