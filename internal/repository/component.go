package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/ZmnRobin/pc-builder/internal/domain"
)

// UpsertComponent inserts or refreshes a scraped component, keyed by
// (name, category). It reports whether the row was new and whether the
// price moved so callers can maintain the price history.
func (r *Repository) UpsertComponent(ctx context.Context, c domain.Component) (int64, bool, bool, error) {
	var (
		id       int64
		oldPrice int
	)
	err := r.pool.QueryRow(ctx,
		`SELECT id, price_bdt FROM components WHERE name = $1 AND category = $2`,
		c.Name, c.Category,
	).Scan(&id, &oldPrice)

	if errors.Is(err, pgx.ErrNoRows) {
		err = r.pool.QueryRow(ctx,
			`INSERT INTO components
				(name, brand, category, price_bdt, url, in_stock, retailer, specs, performance_score, fetched_at)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			 RETURNING id`,
			c.Name, c.Brand, c.Category, c.PriceBDT, c.URL, c.InStock,
			c.Retailer, c.Specs, c.PerformanceScore, c.FetchedAt,
		).Scan(&id)
		if err != nil {
			return 0, false, false, fmt.Errorf("insert component %s: %w", c.Key(), err)
		}
		return id, true, false, nil
	}
	if err != nil {
		return 0, false, false, fmt.Errorf("lookup component %s: %w", c.Key(), err)
	}

	_, err = r.pool.Exec(ctx,
		`UPDATE components SET
			brand = $1, price_bdt = $2, url = $3, in_stock = $4, retailer = $5,
			specs = $6, performance_score = $7, fetched_at = $8
		 WHERE id = $9`,
		c.Brand, c.PriceBDT, c.URL, c.InStock, c.Retailer,
		c.Specs, c.PerformanceScore, c.FetchedAt, id,
	)
	if err != nil {
		return 0, false, false, fmt.Errorf("update component %s: %w", c.Key(), err)
	}
	return id, false, oldPrice != c.PriceBDT, nil
}

const componentColumns = `id, name, brand, category, price_bdt, url, in_stock, retailer, specs, performance_score, fetched_at`

// ListInStock returns every in-stock component, the raw material for a
// catalog snapshot.
func (r *Repository) ListInStock(ctx context.Context) ([]domain.Component, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+componentColumns+`
		 FROM components
		 WHERE in_stock
		 ORDER BY category, performance_score DESC, price_bdt ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("query in-stock components: %w", err)
	}
	defer rows.Close()
	return scanComponents(rows)
}

// ComponentFilter narrows a catalog listing.
type ComponentFilter struct {
	Category domain.Category
	MaxPrice int
	Limit    int
}

// ListComponents returns in-stock components matching the filter, best
// performers first.
func (r *Repository) ListComponents(ctx context.Context, f ComponentFilter) ([]domain.Component, error) {
	query := `SELECT ` + componentColumns + ` FROM components WHERE in_stock`
	args := []any{}

	if f.Category != "" {
		args = append(args, f.Category)
		query += fmt.Sprintf(" AND category = $%d", len(args))
	}
	if f.MaxPrice > 0 {
		args = append(args, f.MaxPrice)
		query += fmt.Sprintf(" AND price_bdt <= $%d", len(args))
	}
	limit := f.Limit
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	args = append(args, limit)
	query += fmt.Sprintf(" ORDER BY performance_score DESC, price_bdt ASC LIMIT $%d", len(args))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query components: %w", err)
	}
	defer rows.Close()
	return scanComponents(rows)
}

// CountComponents returns total and in-stock counts.
func (r *Repository) CountComponents(ctx context.Context) (total, inStock int, err error) {
	err = r.pool.QueryRow(ctx,
		`SELECT COUNT(*), COUNT(*) FILTER (WHERE in_stock) FROM components`,
	).Scan(&total, &inStock)
	if err != nil {
		return 0, 0, fmt.Errorf("count components: %w", err)
	}
	return total, inStock, nil
}

func scanComponents(rows pgx.Rows) ([]domain.Component, error) {
	var items []domain.Component
	for rows.Next() {
		var c domain.Component
		err := rows.Scan(&c.ID, &c.Name, &c.Brand, &c.Category, &c.PriceBDT, &c.URL,
			&c.InStock, &c.Retailer, &c.Specs, &c.PerformanceScore, &c.FetchedAt)
		if err != nil {
			return nil, fmt.Errorf("scan component: %w", err)
		}
		items = append(items, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate components: %w", err)
	}
	return items, nil
}
