package scraper

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/ZmnRobin/pc-builder/internal/domain"
)

// dutyPct is the import duty markup applied to listed prices.
const dutyPct = 15

var (
	digitsRe   = regexp.MustCompile(`\d+`)
	coresRe    = regexp.MustCompile(`(\d+)\s*core`)
	genRe      = regexp.MustCompile(`(\d+)(?:th|nd|rd|st)\s*gen`)
	capacityRe = regexp.MustCompile(`(\d+)\s*(gb|tb)`)
	speedRe    = regexp.MustCompile(`(\d+)\s*mhz`)
	wattageRe  = regexp.MustCompile(`(\d+)\s*w(?:att)?\b`)
)

// ParsePrice extracts an integer BDT price from listing text like
// "৳ 25,500" or "25,500Tk". Returns false for unpriced or zero-priced
// listings.
func ParsePrice(text string) (int, bool) {
	lower := strings.ToLower(text)
	if strings.Contains(lower, "up coming") || strings.Contains(lower, "upcoming") ||
		strings.Contains(lower, "out of stock") || strings.Contains(lower, "call for price") {
		return 0, false
	}
	cleaned := strings.NewReplacer("৳", "", "Tk", "", "tk", "", ",", "").Replace(text)
	m := digitsRe.FindString(cleaned)
	if m == "" {
		return 0, false
	}
	price, err := strconv.Atoi(m)
	if err != nil || price == 0 {
		return 0, false
	}
	return price, true
}

// withDuty applies the import duty markup in integer math.
func withDuty(price int) int {
	return price * (100 + dutyPct) / 100
}

// SpecsFromName extracts what specs it can from the product name alone.
// Listing pages rarely expose structured spec tables, so the name is the
// reliable signal; anything not recoverable stays zero-valued and the
// compatibility rules treat it as unknown.
func SpecsFromName(name string, category domain.Category) domain.Specs {
	var specs domain.Specs
	lower := strings.ToLower(name)

	switch category {
	case domain.CategoryCPU:
		switch {
		case strings.Contains(lower, "am5"):
			specs.Socket = "AM5"
		case strings.Contains(lower, "am4"):
			specs.Socket = "AM4"
		case strings.Contains(lower, "lga1700"):
			specs.Socket = "LGA1700"
		case strings.Contains(lower, "lga1200"):
			specs.Socket = "LGA1200"
		}
		if m := coresRe.FindStringSubmatch(lower); m != nil {
			specs.Cores, _ = strconv.Atoi(m[1])
		}
		if m := genRe.FindStringSubmatch(lower); m != nil {
			specs.Generation, _ = strconv.Atoi(m[1])
		}

	case domain.CategoryRAM:
		if m := capacityRe.FindStringSubmatch(lower); m != nil {
			specs.CapacityGB, _ = strconv.Atoi(m[1])
			if m[2] == "tb" {
				specs.CapacityGB *= 1024
			}
		}
		if m := speedRe.FindStringSubmatch(lower); m != nil {
			specs.SpeedMHz, _ = strconv.Atoi(m[1])
		}
		specs.MemoryType = memoryTypeFromName(lower)

	case domain.CategoryGPU:
		if m := capacityRe.FindStringSubmatch(lower); m != nil {
			specs.MemoryGB, _ = strconv.Atoi(m[1])
		}

	case domain.CategoryStorage:
		if m := capacityRe.FindStringSubmatch(lower); m != nil {
			specs.CapacityGB, _ = strconv.Atoi(m[1])
			if m[2] == "tb" {
				specs.CapacityGB *= 1024
			}
		}
		switch {
		case strings.Contains(lower, "nvme"):
			specs.StorageKind = "NVMe"
		case strings.Contains(lower, "ssd"):
			specs.StorageKind = "SSD"
		case strings.Contains(lower, "hdd"):
			specs.StorageKind = "HDD"
		}

	case domain.CategoryMotherboard:
		specs.Chipset = chipsetFromName(name)
		specs.MemoryType = memoryTypeFromName(lower)
		if specs.MemoryType == "" && specs.Chipset != "" {
			specs.MemoryType = defaultMemoryTypeForChipset(specs.Chipset)
		}

	case domain.CategoryPSU:
		if m := wattageRe.FindStringSubmatch(lower); m != nil {
			specs.Wattage, _ = strconv.Atoi(m[1])
		}
	}

	return specs
}

func memoryTypeFromName(lower string) string {
	switch {
	case strings.Contains(lower, "ddr5"):
		return "DDR5"
	case strings.Contains(lower, "ddr4"):
		return "DDR4"
	}
	return ""
}

// knownChipsets mirrors the socket compatibility table; longer names first
// so B650E matches before B650.
var knownChipsets = []string{
	"B650E", "X670E", "B650", "X670",
	"B450", "B550", "X470", "X570", "A520",
	"B660", "H670", "Z690", "B760", "H770", "Z790",
	"B460", "H470", "Z490", "B560", "H570", "Z590",
}

func chipsetFromName(name string) string {
	upper := strings.ToUpper(name)
	for _, cs := range knownChipsets {
		if strings.Contains(upper, cs) {
			return cs
		}
	}
	return ""
}

// defaultMemoryTypeForChipset falls back to the memory generation the
// chipset's platform launched with.
func defaultMemoryTypeForChipset(chipset string) string {
	switch chipset {
	case "B650", "X670", "B650E", "X670E":
		return "DDR5"
	case "B660", "H670", "Z690", "B760", "H770", "Z790":
		return "DDR5"
	default:
		return "DDR4"
	}
}

// BrandFromName takes the leading token of a product name as the brand.
func BrandFromName(name string) string {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
