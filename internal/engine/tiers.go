package engine

import (
	"strings"

	"github.com/ZmnRobin/pc-builder/internal/domain"
)

// tierKeywords classifies CPUs and GPUs by model-name substrings. Checked
// high to low so "i9" wins before a generic match.
var tierKeywords = map[domain.Category][]struct {
	tier     domain.Tier
	keywords []string
}{
	domain.CategoryCPU: {
		{domain.TierHigh, []string{"i9", "i7", "ryzen 9", "ryzen 7"}},
		{domain.TierMid, []string{"i5", "ryzen 5"}},
		{domain.TierLow, []string{"i3", "ryzen 3", "pentium", "celeron"}},
	},
	domain.CategoryGPU: {
		{domain.TierHigh, []string{"4090", "4080", "4070 ti", "3080", "3070 ti"}},
		{domain.TierMid, []string{"4070", "4060 ti", "3070", "3060 ti", "6700"}},
		{domain.TierLow, []string{"4060", "3060", "1660", "1650"}},
	},
}

// TierOf classifies a component name into a performance tier. Categories
// without a keyword table, and names matching nothing, default to mid.
func TierOf(category domain.Category, name string) domain.Tier {
	lower := strings.ToLower(name)
	for _, entry := range tierKeywords[category] {
		for _, kw := range entry.keywords {
			if strings.Contains(lower, kw) {
				return entry.tier
			}
		}
	}
	return domain.TierMid
}
