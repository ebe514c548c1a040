package main

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ZmnRobin/pc-builder/internal/config"
	"github.com/ZmnRobin/pc-builder/internal/repository"
	"github.com/ZmnRobin/pc-builder/internal/scraper"
)

var scrapeCmd = &cobra.Command{
	Use:   "scrape",
	Short: "Run one full catalog scrape and exit",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		log, err := zap.NewProduction()
		if err != nil {
			return fmt.Errorf("init logger: %w", err)
		}
		defer log.Sync()

		pool, err := connectDB(ctx, cfg)
		if err != nil {
			return err
		}
		defer pool.Close()

		scr := scraper.New(repository.New(pool), scraper.Options{
			Client:            &http.Client{Timeout: cfg.ScrapeHTTPTimeout},
			RequestsPerSecond: cfg.ScrapeRPS,
			Retailers:         scraper.DefaultRetailers(cfg.ScrapeBaseURL),
			UserAgent:         cfg.ScrapeUserAgent,
			Logger:            log,
		})

		stats, err := scr.ScrapeAll(ctx)
		if err != nil {
			return fmt.Errorf("scrape: %w", err)
		}
		log.Info("scrape finished",
			zap.Int("inserted", stats.Inserted),
			zap.Int("updated", stats.Updated),
			zap.Int("skipped", stats.Skipped),
		)
		return nil
	},
}
