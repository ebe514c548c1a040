package engine

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ZmnRobin/pc-builder/internal/domain"
)

func comp(name string, cat domain.Category, price, perf int, specs domain.Specs) domain.Component {
	return domain.Component{
		Name:             name,
		Brand:            firstWord(name),
		Category:         cat,
		PriceBDT:         price,
		InStock:          true,
		Specs:            specs,
		PerformanceScore: perf,
	}
}

func firstWord(s string) string {
	for i, r := range s {
		if r == ' ' {
			return s[:i]
		}
	}
	return s
}

func snapshotOf(comps ...domain.Component) *domain.Snapshot {
	byCat := make(map[domain.Category][]domain.Component)
	for _, c := range comps {
		byCat[c.Category] = append(byCat[c.Category], c)
	}
	return &domain.Snapshot{TakenAt: time.Now().UTC(), Components: byCat}
}

// testCatalog is a small but fully buildable market: every purpose can put
// together a complete compatible build at a reasonable budget.
func testCatalog() []domain.Component {
	return []domain.Component{
		comp("AMD Ryzen 5 5600 AM4 6 Core Processor", domain.CategoryCPU, 15000, 70, domain.Specs{Socket: "AM4", Cores: 6}),
		comp("Intel Core i5-12400F LGA1700 6 Core Processor", domain.CategoryCPU, 17000, 72, domain.Specs{Socket: "LGA1700", Cores: 6}),
		comp("AMD Ryzen 7 7700X AM5 8 Core Processor", domain.CategoryCPU, 38000, 88, domain.Specs{Socket: "AM5", Cores: 8}),

		comp("Gigabyte B550M DS3H Motherboard", domain.CategoryMotherboard, 11000, 55, domain.Specs{Chipset: "B550", MemoryType: "DDR4"}),
		comp("ASRock B660M Pro RS DDR4 Motherboard", domain.CategoryMotherboard, 13000, 58, domain.Specs{Chipset: "B660", MemoryType: "DDR4"}),
		comp("MSI PRO B650M-A WiFi Motherboard", domain.CategoryMotherboard, 21000, 65, domain.Specs{Chipset: "B650", MemoryType: "DDR5"}),
		comp("MSI MAG Z690 Tomahawk WiFi DDR5 Motherboard", domain.CategoryMotherboard, 29500, 66, domain.Specs{Chipset: "Z690", MemoryType: "DDR5"}),

		comp("Corsair Vengeance LPX 16GB DDR4 3200MHz", domain.CategoryRAM, 5000, 60, domain.Specs{MemoryType: "DDR4", CapacityGB: 16, SpeedMHz: 3200}),
		comp("Corsair Vengeance 32GB DDR5 5600MHz", domain.CategoryRAM, 14000, 80, domain.Specs{MemoryType: "DDR5", CapacityGB: 32, SpeedMHz: 5600}),

		comp("MSI GeForce GTX 1650 4GB", domain.CategoryGPU, 17000, 40, domain.Specs{MemoryGB: 4}),
		comp("Sapphire Pulse Radeon RX 6600 8GB", domain.CategoryGPU, 26000, 60, domain.Specs{MemoryGB: 8}),
		comp("Gigabyte GeForce RTX 4070 WindForce 12GB", domain.CategoryGPU, 82000, 85, domain.Specs{MemoryGB: 12}),

		comp("Crucial BX500 500GB SATA SSD", domain.CategoryStorage, 4500, 45, domain.Specs{CapacityGB: 500, StorageKind: "SSD"}),
		comp("Kingston NV2 1TB NVMe SSD", domain.CategoryStorage, 8000, 65, domain.Specs{CapacityGB: 1024, StorageKind: "NVMe"}),

		comp("Antec CSK 550W Bronze PSU", domain.CategoryPSU, 4500, 55, domain.Specs{Wattage: 550}),
		comp("Cooler Master MWE 750W Gold PSU", domain.CategoryPSU, 9800, 62, domain.Specs{Wattage: 750}),

		comp("Antec NX200M Mesh Case", domain.CategoryCase, 3800, 45, domain.Specs{}),
		comp("Corsair 4000D Airflow Case", domain.CategoryCase, 9500, 55, domain.Specs{}),

		comp("Deepcool AK400 CPU Air Cooler", domain.CategoryCooling, 3200, 50, domain.Specs{}),
	}
}

func TestRecommend_FullBuild(t *testing.T) {
	e := New(Options{})
	snap := snapshotOf(testCatalog()...)

	build, err := e.Recommend(snap, domain.BuildRequest{Budget: 80000, Purpose: domain.PurposeGamingMid})
	require.NoError(t, err)

	assert.Len(t, build.Components, 8, "every category should be filled at this budget")
	assert.Empty(t, build.Unfilled)
	assert.Equal(t, domain.CompatibilityValid, build.Compatibility)
	assert.Empty(t, build.Violations)
	assert.LessOrEqual(t, build.TotalPrice, build.Budget)
	assert.Equal(t, build.Budget-build.TotalPrice, build.RemainingBudget)
	assert.Len(t, build.Rationale, 8)
	assert.False(t, build.GeneratedAt.IsZero())
	assert.False(t, build.StaleCatalog)

	// Platform sanity: the chosen board must accept the chosen CPU socket
	// and the RAM generation must match the board.
	cpu := build.Components[domain.CategoryCPU]
	mb := build.Components[domain.CategoryMotherboard]
	ram := build.Components[domain.CategoryRAM]
	assert.Contains(t, chipsetsBySocket[cpu.Specs.Socket], mb.Specs.Chipset)
	assert.Equal(t, mb.Specs.MemoryType, ram.Specs.MemoryType)
}

func TestRecommend_PicksValueOverCheapest(t *testing.T) {
	e := New(Options{})
	snap := snapshotOf(testCatalog()...)

	build, err := e.Recommend(snap, domain.BuildRequest{Budget: 80000, Purpose: domain.PurposeGamingMid})
	require.NoError(t, err)

	// The RX 6600 scores better than the cheaper GTX 1650 inside the
	// 32000 BDT GPU share, despite costing more.
	gpu := build.Components[domain.CategoryGPU]
	assert.Equal(t, "Sapphire Pulse Radeon RX 6600 8GB", gpu.Name)
}

func TestRecommend_GPUUnfilledWhenTierTooLow(t *testing.T) {
	e := New(Options{})
	// Only low-tier GPUs on the market.
	var comps []domain.Component
	for _, c := range testCatalog() {
		if c.Category == domain.CategoryGPU && c.Name != "MSI GeForce GTX 1650 4GB" {
			continue
		}
		comps = append(comps, c)
	}
	snap := snapshotOf(comps...)

	build, err := e.Recommend(snap, domain.BuildRequest{Budget: 120000, Purpose: domain.PurposeGamingHighEnd})
	require.NoError(t, err)

	assert.Contains(t, build.Unfilled, domain.CategoryGPU)
	assert.Equal(t, domain.CompatibilityValid, build.Compatibility)
	// GPU carries 45% of the weight, so the score caps out at 55.
	assert.LessOrEqual(t, build.FitScore, 55.0)
}

func TestRecommend_Deterministic(t *testing.T) {
	e := New(Options{})
	snap := snapshotOf(testCatalog()...)
	req := domain.BuildRequest{Budget: 95000, Purpose: domain.PurposeProductivity}

	b1, err := e.Recommend(snap, req)
	require.NoError(t, err)
	b2, err := e.Recommend(snap, req)
	require.NoError(t, err)

	b2.GeneratedAt = b1.GeneratedAt
	assert.Equal(t, b1, b2)
}

func TestRecommend_NeverExceedsBudget(t *testing.T) {
	e := New(Options{})
	snap := snapshotOf(testCatalog()...)

	for budget := 50000; budget <= 200000; budget += 10000 {
		build, err := e.Recommend(snap, domain.BuildRequest{Budget: budget, Purpose: domain.PurposeGamingMid})
		require.NoError(t, err, "budget %d", budget)
		assert.LessOrEqual(t, build.TotalPrice, budget, "budget %d", budget)
	}
}

func TestRecommend_EmptyCatalog(t *testing.T) {
	e := New(Options{})
	snap := snapshotOf()

	_, err := e.Recommend(snap, domain.BuildRequest{Budget: 80000, Purpose: domain.PurposeGamingMid})
	assert.ErrorIs(t, err, domain.ErrInsufficientOptions)
}

func TestRecommend_InputValidation(t *testing.T) {
	e := New(Options{})
	snap := snapshotOf(testCatalog()...)

	_, err := e.Recommend(snap, domain.BuildRequest{Budget: 80000, Purpose: "mining_rig"})
	assert.ErrorIs(t, err, domain.ErrUnknownPurpose)

	_, err = e.Recommend(snap, domain.BuildRequest{Budget: 0, Purpose: domain.PurposeGamingMid})
	assert.ErrorIs(t, err, domain.ErrInvalidBudget)

	_, err = e.Recommend(snap, domain.BuildRequest{Budget: -500, Purpose: domain.PurposeGamingMid})
	assert.ErrorIs(t, err, domain.ErrInvalidBudget)

	_, err = e.Recommend(snap, domain.BuildRequest{Budget: 30000, Purpose: domain.PurposeGamingMid})
	assert.ErrorIs(t, err, domain.ErrInsufficientBudget)
	assert.False(t, errors.Is(err, domain.ErrInvalidBudget))
}

func TestRecommend_StaleCatalogAdvisory(t *testing.T) {
	e := New(Options{MaxCatalogAge: 24 * time.Hour})
	snap := snapshotOf(testCatalog()...)
	snap.TakenAt = time.Now().Add(-48 * time.Hour)

	build, err := e.Recommend(snap, domain.BuildRequest{Budget: 80000, Purpose: domain.PurposeGamingMid})
	require.NoError(t, err)
	assert.True(t, build.StaleCatalog)
}

func TestRecommend_BrandPreferenceIsSoft(t *testing.T) {
	e := New(Options{})
	snap := snapshotOf(testCatalog()...)

	// Avoiding Sapphire shaves 5 points off the RX 6600 but it still beats
	// the GTX 1650; an avoided brand is demoted, never excluded.
	build, err := e.Recommend(snap, domain.BuildRequest{
		Budget:      80000,
		Purpose:     domain.PurposeGamingMid,
		AvoidBrands: []string{"sapphire"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Sapphire", build.Components[domain.CategoryGPU].Brand)

	// Boosting MSI on top of the avoidance tips the pick over.
	build, err = e.Recommend(snap, domain.BuildRequest{
		Budget:       80000,
		Purpose:      domain.PurposeGamingMid,
		PreferBrands: []string{"MSI"},
		AvoidBrands:  []string{"Sapphire"},
	})
	require.NoError(t, err)
	assert.Equal(t, "MSI GeForce GTX 1650 4GB", build.Components[domain.CategoryGPU].Name)
}

func TestRecommend_TieBreaksOnName(t *testing.T) {
	e := New(Options{})
	comps := testCatalog()
	// Two coolers with identical price and score tie on value; the
	// lexically smaller name must win so results are reproducible.
	comps = append(comps,
		comp("Arctic Freezer 36 CPU Cooler", domain.CategoryCooling, 3200, 50, domain.Specs{}),
	)
	snap := snapshotOf(comps...)

	build, err := e.Recommend(snap, domain.BuildRequest{Budget: 80000, Purpose: domain.PurposeGamingMid})
	require.NoError(t, err)
	assert.Equal(t, "Arctic Freezer 36 CPU Cooler", build.Components[domain.CategoryCooling].Name)
}
