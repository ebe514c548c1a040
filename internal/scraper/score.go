package scraper

import (
	"strings"

	"github.com/ZmnRobin/pc-builder/internal/domain"
)

// PerformanceScore rates a component 0-100 from its specs and model name.
// The heuristics favor core count and generation for CPUs, model tier and
// memory for GPUs, capacity and speed for RAM, and capacity and interface
// for storage. Categories without a heuristic sit at the base score.
func PerformanceScore(c domain.Component) int {
	score := 50
	lower := strings.ToLower(c.Name)

	switch c.Category {
	case domain.CategoryCPU:
		cores := c.Specs.Cores
		if cores == 0 {
			cores = 4
		}
		score += min(cores*5, 30)

		gen := c.Specs.Generation
		if gen == 0 {
			gen = 10
		}
		score += min((gen-10)*3, 20)

		switch {
		case strings.Contains(lower, "i9") || strings.Contains(lower, "ryzen 9"):
			score += 20
		case strings.Contains(lower, "i7") || strings.Contains(lower, "ryzen 7"):
			score += 15
		case strings.Contains(lower, "i5") || strings.Contains(lower, "ryzen 5"):
			score += 10
		}

	case domain.CategoryGPU:
		memory := c.Specs.MemoryGB
		if memory == 0 {
			memory = 4
		}
		score += min(memory*3, 25)

		for _, bonus := range gpuModelBonuses {
			if strings.Contains(lower, bonus.model) {
				score += bonus.points
				break
			}
		}

	case domain.CategoryRAM:
		capacity := c.Specs.CapacityGB
		if capacity == 0 {
			capacity = 8
		}
		score += min(capacity*2, 20)

		speed := c.Specs.SpeedMHz
		if speed == 0 {
			speed = 2400
		}
		score += min((speed-2400)/100, 15)

		if c.Specs.MemoryType == "DDR5" {
			score += 10
		}

	case domain.CategoryStorage:
		capacity := c.Specs.CapacityGB
		if capacity == 0 {
			capacity = 256
		}
		score += min(capacity/100, 20)

		switch c.Specs.StorageKind {
		case "NVMe":
			score += 20
		case "SSD":
			score += 10
		}

	case domain.CategoryPSU:
		// Wattage tracks quality loosely in this market segment.
		score += min(c.Specs.Wattage/50, 20)
	}

	return max(0, min(score, 100))
}

var gpuModelBonuses = []struct {
	model  string
	points int
}{
	{"rtx 4090", 40},
	{"rtx 4080", 35},
	{"rtx 4070", 30},
	{"rtx 4060", 25},
	{"rtx 3070", 20},
	{"rtx 3060", 15},
}
