package domain

import "time"

type Category string

const (
	CategoryCPU         Category = "CPU"
	CategoryGPU         Category = "GPU"
	CategoryRAM         Category = "RAM"
	CategoryMotherboard Category = "Motherboard"
	CategoryStorage     Category = "Storage"
	CategoryPSU         Category = "PSU"
	CategoryCase        Category = "Case"
	CategoryCooling     Category = "Cooling"
)

// AllCategories returns every catalog category in display order.
func AllCategories() []Category {
	return []Category{
		CategoryCPU, CategoryGPU, CategoryRAM, CategoryMotherboard,
		CategoryStorage, CategoryPSU, CategoryCase, CategoryCooling,
	}
}

// Specs holds the attributes relevant to compatibility checks. Zero values
// mean the attribute is unknown for this component.
type Specs struct {
	Socket      string `json:"socket,omitempty"`
	Chipset     string `json:"chipset,omitempty"`
	MemoryType  string `json:"memory_type,omitempty"` // DDR4 or DDR5
	CapacityGB  int    `json:"capacity_gb,omitempty"`
	SpeedMHz    int    `json:"speed_mhz,omitempty"`
	Cores       int    `json:"cores,omitempty"`
	Generation  int    `json:"generation,omitempty"`
	Wattage     int    `json:"wattage,omitempty"`
	MemoryGB    int    `json:"memory_gb,omitempty"`
	StorageKind string `json:"storage_kind,omitempty"` // HDD, SSD or NVMe
	FormFactor  string `json:"form_factor,omitempty"`
}

type Component struct {
	ID               int64     `json:"id"`
	Name             string    `json:"name"`
	Brand            string    `json:"brand"`
	Category         Category  `json:"category"`
	PriceBDT         int       `json:"price_bdt"`
	URL              string    `json:"url"`
	InStock          bool      `json:"in_stock"`
	Retailer         string    `json:"retailer"`
	Specs            Specs     `json:"specs"`
	PerformanceScore int       `json:"performance_score"`
	FetchedAt        time.Time `json:"fetched_at"`
}

// Key is the stable catalog identity: retailers reuse product names within
// a category across price updates.
func (c Component) Key() string {
	return string(c.Category) + "/" + c.Name
}

// Tier buckets a component's rough performance class.
type Tier int

const (
	TierUnknown Tier = iota
	TierLow
	TierMid
	TierHigh
)

func (t Tier) String() string {
	switch t {
	case TierLow:
		return "low"
	case TierMid:
		return "mid"
	case TierHigh:
		return "high"
	default:
		return "unknown"
	}
}
