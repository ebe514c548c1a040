package engine

import (
	"fmt"
	"strings"

	"github.com/ZmnRobin/pc-builder/internal/domain"
)

// Rule is a declarative pairwise compatibility predicate. A rule is in scope
// whenever one side of a candidate/partial-build pair matches A and the
// other matches B; Compatible is always called with the components in
// (A, B) order. Rules must not depend on each other's evaluation order.
type Rule struct {
	Name       string
	A, B       domain.Category
	Compatible func(a, b domain.Component) bool
	Describe   func(a, b domain.Component) string
}

// chipsetsBySocket maps a CPU socket to the motherboard chipsets that
// accept it.
var chipsetsBySocket = map[string][]string{
	"AM4":     {"B450", "B550", "X470", "X570", "A520"},
	"AM5":     {"B650", "X670", "B650E", "X670E"},
	"LGA1700": {"B660", "H670", "Z690", "B760", "H770", "Z790"},
	"LGA1200": {"B460", "H470", "Z490", "B560", "H570", "Z590"},
}

// memoryTypesBySocket maps a CPU socket to the RAM generations its platform
// supports. LGA1700 boards exist for both DDR4 and DDR5.
var memoryTypesBySocket = map[string][]string{
	"AM4":     {"DDR4"},
	"LGA1200": {"DDR4"},
	"AM5":     {"DDR5"},
	"LGA1700": {"DDR4", "DDR5"},
}

const (
	// baseSystemWatts is the draw of everything that isn't the CPU or GPU.
	baseSystemWatts = 300
	// psuHeadroom pads the computed draw before comparing against the PSU.
	psuHeadroom = 1.2
	// minPSUWatts is the floor below which no build should go.
	minPSUWatts = 450
	// defaultGPUWatts is assumed when the GPU model is not in the power table.
	defaultGPUWatts = 200
)

// cpuTierWatts is the rough draw of a CPU by performance tier.
var cpuTierWatts = map[domain.Tier]int{
	domain.TierHigh:    150,
	domain.TierMid:     100,
	domain.TierLow:     65,
	domain.TierUnknown: 100,
}

// rules is the full compatibility table, evaluated pairwise and
// order-insensitively as components join a build.
var rules = []Rule{
	{
		Name: "cpu-motherboard-socket",
		A:    domain.CategoryCPU,
		B:    domain.CategoryMotherboard,
		Compatible: func(cpu, mb domain.Component) bool {
			if cpu.Specs.Socket == "" || mb.Specs.Chipset == "" {
				return false // unknown data: assume incompatible
			}
			return containsFold(chipsetsBySocket[cpu.Specs.Socket], mb.Specs.Chipset)
		},
		Describe: func(cpu, mb domain.Component) string {
			return fmt.Sprintf("%s chipset does not accept socket %s", mb.Specs.Chipset, cpu.Specs.Socket)
		},
	},
	{
		Name: "cpu-ram-generation",
		A:    domain.CategoryCPU,
		B:    domain.CategoryRAM,
		Compatible: func(cpu, ram domain.Component) bool {
			if cpu.Specs.Socket == "" || ram.Specs.MemoryType == "" {
				return false
			}
			return containsFold(memoryTypesBySocket[cpu.Specs.Socket], ram.Specs.MemoryType)
		},
		Describe: func(cpu, ram domain.Component) string {
			return fmt.Sprintf("socket %s platform does not support %s", cpu.Specs.Socket, ram.Specs.MemoryType)
		},
	},
	{
		Name: "motherboard-ram-type",
		A:    domain.CategoryMotherboard,
		B:    domain.CategoryRAM,
		Compatible: func(mb, ram domain.Component) bool {
			if mb.Specs.MemoryType == "" || ram.Specs.MemoryType == "" {
				return false
			}
			return strings.EqualFold(mb.Specs.MemoryType, ram.Specs.MemoryType)
		},
		Describe: func(mb, ram domain.Component) string {
			return fmt.Sprintf("board takes %s, RAM is %s", mb.Specs.MemoryType, ram.Specs.MemoryType)
		},
	},
	{
		Name: "psu-gpu-wattage",
		A:    domain.CategoryPSU,
		B:    domain.CategoryGPU,
		Compatible: func(psu, gpu domain.Component) bool {
			if psu.Specs.Wattage == 0 {
				return false
			}
			return psu.Specs.Wattage >= requiredPSUWattsForGPU(gpu)
		},
		Describe: func(psu, gpu domain.Component) string {
			return fmt.Sprintf("%dW PSU below the %dW the GPU needs", psu.Specs.Wattage, requiredPSUWattsForGPU(gpu))
		},
	},
	{
		Name: "psu-cpu-wattage",
		A:    domain.CategoryPSU,
		B:    domain.CategoryCPU,
		Compatible: func(psu, cpu domain.Component) bool {
			if psu.Specs.Wattage == 0 {
				return false
			}
			return psu.Specs.Wattage >= requiredPSUWattsForCPU(cpu)
		},
		Describe: func(psu, cpu domain.Component) string {
			return fmt.Sprintf("%dW PSU below the %dW the CPU needs", psu.Specs.Wattage, requiredPSUWattsForCPU(cpu))
		},
	},
}

// The PSU check is pairwise, so the combined draw of CPU plus GPU is
// approximated by two independent rules. Each rule budgets the base system
// plus its own component; whichever demands more decides the floor a PSU
// must clear.
func requiredPSUWattsForGPU(gpu domain.Component) int {
	total := int(float64(baseSystemWatts+gpuWatts(gpu)) * psuHeadroom)
	return max(total, minPSUWatts)
}

func requiredPSUWattsForCPU(cpu domain.Component) int {
	draw := cpuTierWatts[TierOf(domain.CategoryCPU, cpu.Name)]
	total := int(float64(baseSystemWatts+draw) * psuHeadroom)
	return max(total, minPSUWatts)
}

func gpuWatts(gpu domain.Component) int {
	name := strings.ToLower(gpu.Name)
	for _, entry := range gpuDrawWatts {
		if strings.Contains(name, entry.model) {
			return entry.watts
		}
	}
	return defaultGPUWatts
}

// gpuDrawWatts maps GPU model substrings to board power draw. Longer model
// names come first so "4070 ti" wins over "4070".
var gpuDrawWatts = []struct {
	model string
	watts int
}{
	{"rtx 4090", 450},
	{"rtx 4080", 320},
	{"rtx 4070 ti", 285},
	{"rtx 4070", 200},
	{"rtx 4060 ti", 165},
	{"rtx 4060", 115},
	{"rtx 3070", 220},
	{"rtx 3060", 170},
	{"gtx 1660", 125},
	{"gtx 1650", 75},
	{"rx 6600", 132},
}

func containsFold(haystack []string, needle string) bool {
	for _, h := range haystack {
		if strings.EqualFold(h, needle) {
			return true
		}
	}
	return false
}
