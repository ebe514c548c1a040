package repository

import (
	"context"
	"fmt"
	"math"
	"time"
)

// RecordPrice appends one price observation for a component.
func (r *Repository) RecordPrice(ctx context.Context, componentID int64, priceBDT int, at time.Time) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO price_history (component_id, price_bdt, recorded_at) VALUES ($1, $2, $3)`,
		componentID, priceBDT, at,
	)
	if err != nil {
		return fmt.Errorf("record price for component %d: %w", componentID, err)
	}
	return nil
}

// PriceTrend is the average price movement of one category since a cutoff.
type PriceTrend struct {
	Category  string  `json:"category"`
	ChangePct float64 `json:"change_pct"`
	Direction string  `json:"direction"`
}

// PriceTrends compares average prices recorded after the cutoff against
// those before it, per category. Categories with observations on only one
// side of the cutoff are omitted.
func (r *Repository) PriceTrends(ctx context.Context, cutoff time.Time) ([]PriceTrend, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT c.category,
		        AVG(ph.price_bdt) FILTER (WHERE ph.recorded_at >= $1),
		        AVG(ph.price_bdt) FILTER (WHERE ph.recorded_at < $1)
		 FROM price_history ph
		 JOIN components c ON c.id = ph.component_id
		 GROUP BY c.category
		 ORDER BY c.category`,
		cutoff,
	)
	if err != nil {
		return nil, fmt.Errorf("query price trends: %w", err)
	}
	defer rows.Close()

	var trends []PriceTrend
	for rows.Next() {
		var (
			category        string
			recent, earlier *float64
		)
		if err := rows.Scan(&category, &recent, &earlier); err != nil {
			return nil, fmt.Errorf("scan price trend: %w", err)
		}
		if recent == nil || earlier == nil || *earlier == 0 {
			continue
		}
		pct := (*recent - *earlier) / *earlier * 100
		trend := PriceTrend{
			Category:  category,
			ChangePct: math.Round(pct*10) / 10,
			Direction: "stable",
		}
		switch {
		case pct > 1:
			trend.Direction = "up"
		case pct < -1:
			trend.Direction = "down"
		}
		trends = append(trends, trend)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate price trends: %w", err)
	}
	return trends, nil
}
