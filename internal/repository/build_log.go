package repository

import (
	"context"
	"fmt"

	"github.com/ZmnRobin/pc-builder/internal/domain"
)

// SaveBuildLog persists the outcome of a served recommendation.
func (r *Repository) SaveBuildLog(ctx context.Context, log domain.BuildLog) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO build_logs (id, purpose, budget, total_price, fit_score, unfilled, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		log.ID, log.Purpose, log.Budget, log.TotalPrice, log.FitScore, log.Unfilled, log.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("save build log %s: %w", log.ID, err)
	}
	return nil
}

// CountBuildLogs returns how many recommendations have been served for a
// purpose, or overall when purpose is empty.
func (r *Repository) CountBuildLogs(ctx context.Context, purpose domain.Purpose) (int, error) {
	var count int
	var err error
	if purpose == "" {
		err = r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM build_logs`).Scan(&count)
	} else {
		err = r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM build_logs WHERE purpose = $1`, purpose).Scan(&count)
	}
	if err != nil {
		return 0, fmt.Errorf("count build logs: %w", err)
	}
	return count, nil
}
