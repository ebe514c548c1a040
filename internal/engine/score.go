package engine

import (
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/ZmnRobin/pc-builder/internal/domain"
)

// valueScore rates a component inside a sub-budget: a blend of its 0-100
// performance score and how efficiently it spends the allocation, nudged
// by soft brand preferences. Higher is better.
func (e *Engine) valueScore(c domain.Component, subBudget int, prefs brandPrefs) float64 {
	perf := float64(c.PerformanceScore)
	efficiency := 100 - float64(c.PriceBDT)/float64(subBudget)*50
	score := perf*e.scoring.Performance + efficiency*e.scoring.Efficiency
	if prefs.prefers(c.Brand) {
		score += e.scoring.BrandBonus
	}
	if prefs.avoids(c.Brand) {
		score -= e.scoring.BrandBonus
	}
	return score
}

// scoreAndExplain finalizes a build in place: total price, 0-100 fit score,
// compatibility re-verification and one rationale line per filled category.
//
// The fit score is the weight-averaged value score of the filled categories
// over the weight of all required ones, so every unfilled category drags
// the score down by exactly its budget share. Violations found here mean a
// resolver bug and are logged as such.
func (e *Engine) scoreAndExplain(
	build *domain.Build,
	profile domain.Profile,
	catScores map[domain.Category]float64,
	prefs brandPrefs,
) {
	build.Compatibility = domain.CompatibilityValid
	if violations := verifyBuild(build.Components); len(violations) > 0 {
		build.Compatibility = domain.CompatibilityInvalid
		build.Violations = violations
		e.log.Error("selected build failed compatibility re-verification",
			zap.String("purpose", string(build.Purpose)),
			zap.Int("budget", build.Budget),
			zap.Strings("violations", violations),
		)
	}

	var weighted, totalWeight float64
	for _, cat := range profile.Required() {
		w := profile.Weights[cat]
		totalWeight += w
		if score, ok := catScores[cat]; ok {
			weighted += w * clamp(score, 0, 100)
		}
	}
	fit := 0.0
	if totalWeight > 0 {
		fit = weighted / totalWeight
	}
	fit -= 20 * float64(len(build.Violations))
	build.FitScore = math.Round(clamp(fit, 0, 100)*10) / 10

	build.Rationale = e.explain(build, profile, prefs)
	build.Warnings = bottleneckWarnings(build.Components)
}

// explain emits one short statement per filled category, in priority order.
func (e *Engine) explain(build *domain.Build, profile domain.Profile, prefs brandPrefs) []string {
	var lines []string
	for _, cat := range profile.Required() {
		c, ok := build.Components[cat]
		if !ok {
			continue
		}
		line := fmt.Sprintf("%s: %s - %s", cat, c.Name, e.reasonFor(cat, c, build))
		if prefs.prefers(c.Brand) {
			line += " (preferred brand)"
		}
		lines = append(lines, line)
	}
	for _, cat := range build.Unfilled {
		lines = append(lines, fmt.Sprintf("%s: no compatible option within the allocation, left unfilled", cat))
	}
	return lines
}

func (e *Engine) reasonFor(cat domain.Category, c domain.Component, build *domain.Build) string {
	switch cat {
	case domain.CategoryGPU:
		return fmt.Sprintf("best price-to-performance within its BDT %d share", build.Allocation[cat])
	case domain.CategoryCPU:
		return fmt.Sprintf("strongest %s-tier value for the budget", TierOf(cat, c.Name))
	case domain.CategoryMotherboard:
		if cpu, ok := build.Components[domain.CategoryCPU]; ok && cpu.Specs.Socket != "" {
			return fmt.Sprintf("%s chipset matches the %s socket", c.Specs.Chipset, cpu.Specs.Socket)
		}
		return "best value board in the allocation"
	case domain.CategoryRAM:
		if c.Specs.MemoryType != "" {
			return fmt.Sprintf("%s to match the platform", c.Specs.MemoryType)
		}
		return "best capacity and speed for the money"
	case domain.CategoryPSU:
		if c.Specs.Wattage > 0 {
			return fmt.Sprintf("%dW covers the build with headroom", c.Specs.Wattage)
		}
		return "stable power delivery within budget"
	case domain.CategoryStorage:
		return "fast boot and load times for the price"
	default:
		return "best value option within the allocation"
	}
}

// bottleneckWarnings flags strongly mismatched CPU/GPU tiers.
func bottleneckWarnings(components map[domain.Category]domain.Component) []string {
	cpu, hasCPU := components[domain.CategoryCPU]
	gpu, hasGPU := components[domain.CategoryGPU]
	if !hasCPU || !hasGPU {
		return nil
	}
	cpuTier := TierOf(domain.CategoryCPU, cpu.Name)
	gpuTier := TierOf(domain.CategoryGPU, gpu.Name)

	var warnings []string
	if cpuTier == domain.TierLow && gpuTier == domain.TierHigh {
		warnings = append(warnings, "CPU may bottleneck GPU performance; consider upgrading the CPU")
	}
	if gpuTier == domain.TierLow && cpuTier == domain.TierHigh {
		warnings = append(warnings, "GPU may limit gaming performance; consider upgrading the GPU")
	}
	return warnings
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
