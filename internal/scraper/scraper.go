// Package scraper collects component prices from retail listing pages and
// feeds them into the component store. The recommendation engine never
// sees this package; it only consumes the snapshots built from the data
// collected here.
package scraper

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/ZmnRobin/pc-builder/internal/domain"
)

// Store is where scraped components land. UpsertComponent reports whether
// the row was new and whether its price moved, so the scraper can keep the
// price history append-only.
type Store interface {
	UpsertComponent(ctx context.Context, c domain.Component) (id int64, inserted, priceChanged bool, err error)
	RecordPrice(ctx context.Context, componentID int64, priceBDT int, at time.Time) error
}

type Scraper struct {
	client    *http.Client
	limiter   *rate.Limiter
	store     Store
	retailers []Retailer
	userAgent string
	log       *zap.Logger
	now       func() time.Time
}

type Options struct {
	Client            *http.Client
	RequestsPerSecond float64
	Retailers         []Retailer
	UserAgent         string
	Logger            *zap.Logger
}

func New(store Store, opts Options) *Scraper {
	if opts.Client == nil {
		opts.Client = &http.Client{Timeout: 15 * time.Second}
	}
	if opts.RequestsPerSecond <= 0 {
		opts.RequestsPerSecond = 1
	}
	if len(opts.Retailers) == 0 {
		opts.Retailers = DefaultRetailers("")
	}
	if opts.UserAgent == "" {
		opts.UserAgent = "pc-builder/1.0 (+https://github.com/ZmnRobin/pc-builder)"
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	return &Scraper{
		client:    opts.Client,
		limiter:   rate.NewLimiter(rate.Limit(opts.RequestsPerSecond), 1),
		store:     store,
		retailers: opts.Retailers,
		userAgent: opts.UserAgent,
		log:       opts.Logger,
		now:       time.Now,
	}
}

// Stats summarizes one scrape run.
type Stats struct {
	Inserted int `json:"inserted"`
	Updated  int `json:"updated"`
	Skipped  int `json:"skipped"`
}

func (s Stats) add(o Stats) Stats {
	return Stats{
		Inserted: s.Inserted + o.Inserted,
		Updated:  s.Updated + o.Updated,
		Skipped:  s.Skipped + o.Skipped,
	}
}

// ScrapeAll walks every retailer and category. Failures in one category are
// logged and skipped so a retailer layout change cannot take down the whole
// run; the error returned is non-nil only when nothing could be scraped.
func (s *Scraper) ScrapeAll(ctx context.Context) (Stats, error) {
	var total Stats
	var lastErr error
	succeeded := 0

	for _, retailer := range s.retailers {
		for _, category := range domain.AllCategories() {
			path, ok := retailer.Categories[category]
			if !ok {
				continue
			}
			stats, err := s.scrapeCategory(ctx, retailer, category, path)
			if err != nil {
				if ctx.Err() != nil {
					return total, eris.Wrap(ctx.Err(), "scrape aborted")
				}
				lastErr = err
				s.log.Warn("category scrape failed",
					zap.String("retailer", retailer.Name),
					zap.String("category", string(category)),
					zap.Error(err),
				)
				continue
			}
			succeeded++
			total = total.add(stats)
		}
	}

	if succeeded == 0 && lastErr != nil {
		return total, eris.Wrap(lastErr, "all categories failed")
	}
	s.log.Info("scrape complete",
		zap.Int("inserted", total.Inserted),
		zap.Int("updated", total.Updated),
		zap.Int("skipped", total.Skipped),
	)
	return total, nil
}

func (s *Scraper) scrapeCategory(ctx context.Context, retailer Retailer, category domain.Category, path string) (Stats, error) {
	base := retailer.BaseURL + path

	doc, err := s.fetch(ctx, base)
	if err != nil {
		return Stats{}, eris.Wrapf(err, "fetch %s", base)
	}

	var stats Stats
	pages := detectPages(doc)
	for page := 1; page <= pages; page++ {
		if page > 1 {
			doc, err = s.fetch(ctx, fmt.Sprintf("%s?page=%d", base, page))
			if err != nil {
				return stats, eris.Wrapf(err, "fetch page %d of %s", page, base)
			}
		}
		pageStats, err := s.storeListings(ctx, parseListings(doc, retailer, category, s.now()))
		if err != nil {
			return stats, err
		}
		stats = stats.add(pageStats)
	}
	return stats, nil
}

func (s *Scraper) fetch(ctx context.Context, url string) (*goquery.Document, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, eris.Wrap(err, "build request")
	}
	req.Header.Set("User-Agent", s.userAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, eris.Wrap(err, "request failed")
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, eris.Errorf("unexpected status %d", resp.StatusCode)
	}
	return goquery.NewDocumentFromReader(resp.Body)
}

func (s *Scraper) storeListings(ctx context.Context, components []domain.Component) (Stats, error) {
	var stats Stats
	for _, c := range components {
		id, inserted, priceChanged, err := s.store.UpsertComponent(ctx, c)
		if err != nil {
			return stats, eris.Wrapf(err, "upsert %s", c.Key())
		}
		switch {
		case inserted:
			stats.Inserted++
		case priceChanged:
			stats.Updated++
		default:
			stats.Skipped++
		}
		if inserted || priceChanged {
			if err := s.store.RecordPrice(ctx, id, c.PriceBDT, c.FetchedAt); err != nil {
				return stats, eris.Wrapf(err, "record price for %s", c.Key())
			}
		}
	}
	return stats, nil
}

// detectPages reads the pagination strip; a missing strip means one page.
func detectPages(doc *goquery.Document) int {
	pages := 1
	doc.Find(".pagination a").Each(func(_ int, sel *goquery.Selection) {
		if n, err := strconv.Atoi(strings.TrimSpace(sel.Text())); err == nil && n > pages {
			pages = n
		}
	})
	return pages
}

// parseListings extracts components from a listing page. Items without a
// usable name, price or link are skipped, as are unpriced listings.
func parseListings(doc *goquery.Document, retailer Retailer, category domain.Category, fetchedAt time.Time) []domain.Component {
	var components []domain.Component

	doc.Find(".p-item").Each(func(_ int, item *goquery.Selection) {
		name := strings.TrimSpace(firstText(item, ".p-item-name", ".p-item-details h4", "h4", "h3"))
		priceText := firstText(item, ".marks .price", ".p-item-price", ".price", ".marks")
		href, _ := item.Find("a").First().Attr("href")
		if name == "" || priceText == "" || href == "" {
			return
		}

		price, ok := ParsePrice(priceText)
		if !ok {
			return
		}
		if !strings.HasPrefix(href, "http") {
			href = retailer.BaseURL + "/" + strings.TrimPrefix(href, "/")
		}

		comp := domain.Component{
			Name:      name,
			Brand:     BrandFromName(name),
			Category:  category,
			PriceBDT:  withDuty(price),
			URL:       href,
			InStock:   true,
			Retailer:  retailer.Name,
			Specs:     SpecsFromName(name, category),
			FetchedAt: fetchedAt,
		}
		comp.PerformanceScore = PerformanceScore(comp)
		components = append(components, comp)
	})

	return components
}

func firstText(item *goquery.Selection, selectors ...string) string {
	for _, sel := range selectors {
		if text := strings.TrimSpace(item.Find(sel).First().Text()); text != "" {
			return text
		}
	}
	return ""
}
