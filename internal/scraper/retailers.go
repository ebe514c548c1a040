package scraper

import "github.com/ZmnRobin/pc-builder/internal/domain"

// Retailer describes one retail source: a base URL plus the listing path
// for each category it sells.
type Retailer struct {
	Name       string
	BaseURL    string
	Categories map[domain.Category]string
}

// DefaultRetailers returns the supported retail sources. baseURL overrides
// the live site, which keeps tests off the network.
func DefaultRetailers(baseURL string) []Retailer {
	if baseURL == "" {
		baseURL = "https://www.startech.com.bd"
	}
	return []Retailer{
		{
			Name:    "StarTech.com.bd",
			BaseURL: baseURL,
			Categories: map[domain.Category]string{
				domain.CategoryCPU:         "/component/processor",
				domain.CategoryGPU:         "/component/graphics-card",
				domain.CategoryRAM:         "/component/ram",
				domain.CategoryMotherboard: "/component/motherboard",
				domain.CategoryStorage:     "/ssd",
				domain.CategoryPSU:         "/component/power-supply",
				domain.CategoryCase:        "/component/casing",
				domain.CategoryCooling:     "/component/cpu-cooler",
			},
		},
	}
}
