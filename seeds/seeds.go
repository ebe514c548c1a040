package seeds

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ZmnRobin/pc-builder/internal/domain"
	"github.com/ZmnRobin/pc-builder/internal/scraper"
)

// seedComponent is a catalog row before spec extraction. Specs, brand and
// the performance score are derived from the name the same way scraped
// listings are, so seeded data goes through the exact pipeline live data
// does.
type seedComponent struct {
	name     string
	category domain.Category
	price    int
}

func Setup(ctx context.Context, pool *pgxpool.Pool) error {
	rng := rand.New(rand.NewSource(42))

	// Truncate existing data before insert
	log.Println("[seed] truncating existing data")
	if _, err := pool.Exec(ctx, `
		TRUNCATE build_logs, price_history, components RESTART IDENTITY CASCADE
	`); err != nil {
		return fmt.Errorf("truncate: %w", err)
	}

	log.Println("[seed] inserting components")
	if err := seedComponents(ctx, pool, rng); err != nil {
		return fmt.Errorf("seed components: %w", err)
	}

	log.Println("[seed] inserting price history")
	if err := seedPriceHistory(ctx, pool, rng, len(catalog)); err != nil {
		return fmt.Errorf("seed price history: %w", err)
	}

	log.Println("[seed] seeding complete")
	return nil
}

var catalog = []seedComponent{
	// CPUs
	{"AMD Ryzen 5 5600G AM4 6 Core Processor", domain.CategoryCPU, 13800},
	{"AMD Ryzen 5 5600 AM4 6 Core Processor", domain.CategoryCPU, 14500},
	{"AMD Ryzen 7 5700X AM4 8 Core Processor", domain.CategoryCPU, 19500},
	{"AMD Ryzen 5 7600 AM5 6 Core Processor", domain.CategoryCPU, 26500},
	{"AMD Ryzen 7 7700X AM5 8 Core Processor", domain.CategoryCPU, 38500},
	{"AMD Ryzen 9 7900X AM5 12 Core Processor", domain.CategoryCPU, 52000},
	{"Intel Core i3-12100F 12th Gen LGA1700 4 Core Processor", domain.CategoryCPU, 10900},
	{"Intel Core i5-12400F 12th Gen LGA1700 6 Core Processor", domain.CategoryCPU, 16500},
	{"Intel Core i5-13600K 13th Gen LGA1700 14 Core Processor", domain.CategoryCPU, 36500},
	{"Intel Core i7-13700K 13th Gen LGA1700 16 Core Processor", domain.CategoryCPU, 48500},

	// Motherboards
	{"MSI B450M PRO-VDH Max AM4 Micro-ATX Motherboard", domain.CategoryMotherboard, 8900},
	{"Gigabyte B550M DS3H AM4 Motherboard", domain.CategoryMotherboard, 11500},
	{"ASUS TUF Gaming B550-Plus ATX Motherboard", domain.CategoryMotherboard, 16500},
	{"ASRock B660M Pro RS DDR4 Motherboard", domain.CategoryMotherboard, 13500},
	{"MSI PRO B760M-P DDR4 Motherboard", domain.CategoryMotherboard, 14800},
	{"MSI PRO B650M-A WiFi AM5 Motherboard", domain.CategoryMotherboard, 21500},
	{"Gigabyte B650 AORUS Elite AX Motherboard", domain.CategoryMotherboard, 27500},
	{"MSI MAG Z690 Tomahawk WiFi DDR5 Motherboard", domain.CategoryMotherboard, 29500},
	{"ASUS Prime Z790-P DDR5 Motherboard", domain.CategoryMotherboard, 32500},

	// RAM
	{"Corsair Vengeance LPX 8GB DDR4 3200MHz Desktop RAM", domain.CategoryRAM, 2800},
	{"Corsair Vengeance LPX 16GB DDR4 3200MHz Desktop RAM", domain.CategoryRAM, 4900},
	{"G.Skill Ripjaws V 16GB DDR4 3600MHz Desktop RAM", domain.CategoryRAM, 5400},
	{"TeamGroup T-Force Delta RGB 16GB DDR5 5200MHz Desktop RAM", domain.CategoryRAM, 8200},
	{"Corsair Vengeance 32GB DDR5 5600MHz Desktop RAM", domain.CategoryRAM, 14500},
	{"G.Skill Trident Z5 RGB 32GB DDR5 6000MHz Desktop RAM", domain.CategoryRAM, 16800},

	// GPUs
	{"Gigabyte GeForce GTX 1650 OC 4GB GDDR6 Graphics Card", domain.CategoryGPU, 17500},
	{"MSI GeForce GTX 1660 Super Ventus XS 6GB Graphics Card", domain.CategoryGPU, 23500},
	{"Sapphire Pulse Radeon RX 6600 8GB Graphics Card", domain.CategoryGPU, 26500},
	{"Gigabyte GeForce RTX 3060 Gaming OC 12GB Graphics Card", domain.CategoryGPU, 36500},
	{"MSI GeForce RTX 4060 Ventus 2X 8GB Graphics Card", domain.CategoryGPU, 42500},
	{"ASUS Dual GeForce RTX 4060 Ti 8GB Graphics Card", domain.CategoryGPU, 55000},
	{"Gigabyte GeForce RTX 4070 WindForce OC 12GB Graphics Card", domain.CategoryGPU, 82000},
	{"MSI GeForce RTX 4070 Ti Gaming X Trio 12GB Graphics Card", domain.CategoryGPU, 115000},
	{"ASUS TUF Gaming GeForce RTX 4080 16GB Graphics Card", domain.CategoryGPU, 165000},
	{"MSI GeForce RTX 4090 Suprim X 24GB Graphics Card", domain.CategoryGPU, 260000},

	// Storage
	{"Western Digital Blue 1TB HDD", domain.CategoryStorage, 4200},
	{"Crucial BX500 500GB SATA SSD", domain.CategoryStorage, 4500},
	{"Samsung 870 EVO 500GB SATA SSD", domain.CategoryStorage, 6500},
	{"Kingston NV2 1TB NVMe SSD", domain.CategoryStorage, 8200},
	{"Samsung 980 1TB NVMe SSD", domain.CategoryStorage, 10500},
	{"Samsung 980 Pro 2TB NVMe SSD", domain.CategoryStorage, 22500},

	// PSUs
	{"Thermaltake Smart 450W Standard PSU", domain.CategoryPSU, 3400},
	{"Antec CSK 550W 80 Plus Bronze PSU", domain.CategoryPSU, 4500},
	{"Corsair CV650 650W 80 Plus Bronze PSU", domain.CategoryPSU, 6200},
	{"Cooler Master MWE 750W 80 Plus Gold PSU", domain.CategoryPSU, 9800},
	{"Corsair RM850x 850W 80 Plus Gold PSU", domain.CategoryPSU, 15500},
	{"ASUS ROG Strix 1000W 80 Plus Gold PSU", domain.CategoryPSU, 24500},

	// Cases
	{"Antec NX200M Mesh Micro-ATX Gaming Case", domain.CategoryCase, 3800},
	{"NZXT H510 Flow Mid-Tower Case", domain.CategoryCase, 8900},
	{"Corsair 4000D Airflow Mid-Tower Case", domain.CategoryCase, 9500},
	{"Lian Li Lancool 216 Mid-Tower Case", domain.CategoryCase, 11500},

	// Cooling
	{"Deepcool AG400 CPU Air Cooler", domain.CategoryCooling, 2500},
	{"Deepcool AK400 CPU Air Cooler", domain.CategoryCooling, 3200},
	{"Cooler Master Hyper 212 Black Edition CPU Cooler", domain.CategoryCooling, 3600},
	{"NZXT Kraken 240 Liquid CPU Cooler", domain.CategoryCooling, 12500},
	{"Lian Li Galahad II 360 Liquid CPU Cooler", domain.CategoryCooling, 18500},
}

func seedComponents(ctx context.Context, pool *pgxpool.Pool, rng *rand.Rand) error {
	rows := []string{}
	args := []any{}

	for _, sc := range catalog {
		specs := scraper.SpecsFromName(sc.name, sc.category)
		component := domain.Component{
			Name:     sc.name,
			Brand:    scraper.BrandFromName(sc.name),
			Category: sc.category,
			PriceBDT: sc.price,
			Specs:    specs,
		}
		score := scraper.PerformanceScore(component)
		fetchedAt := time.Now().Add(-time.Duration(rng.Intn(48)) * time.Hour)
		url := "https://www.startech.com.bd/" + slugify(sc.name)

		base := len(args)
		rows = append(rows, fmt.Sprintf("($%d, $%d, $%d, $%d, $%d, $%d, $%d, $%d, $%d, $%d)",
			base+1, base+2, base+3, base+4, base+5, base+6, base+7, base+8, base+9, base+10))
		args = append(args, sc.name, component.Brand, string(sc.category), sc.price,
			url, true, "StarTech", specs, score, fetchedAt)
	}

	query := "INSERT INTO components (name, brand, category, price_bdt, url, in_stock, retailer, specs, performance_score, fetched_at) VALUES " +
		strings.Join(rows, ", ")

	_, err := pool.Exec(ctx, query, args...)
	return err
}

// seedPriceHistory writes a few weeks of past prices per component so the
// market insight trends have data on a fresh database. Prices drift within
// about 8% of the current listing.
func seedPriceHistory(ctx context.Context, pool *pgxpool.Pool, rng *rand.Rand, n int) error {
	rows := []string{}
	args := []any{}

	for id := 1; id <= n; id++ {
		price := catalog[id-1].price
		for _, daysAgo := range []int{21, 14, 7, 0} {
			drift := 1 + (rng.Float64()-0.5)*0.16
			recordedAt := time.Now().AddDate(0, 0, -daysAgo)

			base := len(args)
			rows = append(rows, fmt.Sprintf("($%d, $%d, $%d)", base+1, base+2, base+3))
			args = append(args, id, int(float64(price)*drift), recordedAt)
		}
	}

	if len(rows) == 0 {
		return nil
	}

	query := "INSERT INTO price_history (component_id, price_bdt, recorded_at) VALUES " +
		strings.Join(rows, ", ")

	_, err := pool.Exec(ctx, query, args...)
	return err
}

func slugify(name string) string {
	s := strings.ToLower(name)
	s = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		case r == ' ' || r == '-':
			return '-'
		}
		return -1
	}, s)
	return strings.Trim(s, "-")
}
