package main

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/robfig/cron/v3"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ZmnRobin/pc-builder/internal/cache"
	"github.com/ZmnRobin/pc-builder/internal/catalog"
	"github.com/ZmnRobin/pc-builder/internal/config"
	"github.com/ZmnRobin/pc-builder/internal/engine"
	"github.com/ZmnRobin/pc-builder/internal/handler"
	"github.com/ZmnRobin/pc-builder/internal/repository"
	"github.com/ZmnRobin/pc-builder/internal/router"
	"github.com/ZmnRobin/pc-builder/internal/scraper"
	"github.com/ZmnRobin/pc-builder/internal/service"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API with the scheduled catalog scraper",
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve(cmd.Context())
	},
}

func serve(parent context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, err := zap.NewProduction()
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// ------------ PostgreSQL ---------------
	pool, err := connectDB(ctx, cfg)
	if err != nil {
		return err
	}
	defer pool.Close()
	log.Info("connected to PostgreSQL")

	// ------------ Redis ---------------
	redisOpts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return fmt.Errorf("parse redis url: %w", err)
	}
	redisClient := redis.NewClient(redisOpts)
	defer redisClient.Close()

	// ------------ Wiring ---------------
	repo := repository.New(pool)
	buildCache := cache.NewCache(redisClient, cfg.CacheTTL)
	if err := buildCache.Ping(ctx); err != nil {
		log.Warn("redis unreachable, cache will be bypassed", zap.Error(err))
	}

	eng := engine.New(engine.Options{
		Scoring: engine.ScoringWeights{
			Performance: cfg.PerformanceWeight,
			Efficiency:  cfg.EfficiencyWeight,
			BrandBonus:  cfg.BrandBonus,
		},
		MaxCatalogAge: cfg.CatalogMaxAge,
		Logger:        log,
	})

	store := catalog.NewStore()

	scr := scraper.New(repo, scraper.Options{
		Client:            &http.Client{Timeout: cfg.ScrapeHTTPTimeout},
		RequestsPerSecond: cfg.ScrapeRPS,
		Retailers:         scraper.DefaultRetailers(cfg.ScrapeBaseURL),
		UserAgent:         cfg.ScrapeUserAgent,
		Logger:            log,
	})

	svc := service.New(repo, buildCache, eng, store, scr, log)

	// Load whatever the database already holds so the engine can serve
	// before the first scrape finishes.
	if err := svc.RefreshCatalog(ctx); err != nil {
		log.Warn("initial catalog refresh failed", zap.Error(err))
	}

	// ------------ Scheduled scrapes ---------------
	scheduler := cron.New()
	if _, err := scheduler.AddFunc(cfg.ScrapeSchedule, func() {
		scrapeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
		defer cancel()
		if _, err := svc.ScrapeAndRefresh(scrapeCtx); err != nil {
			log.Error("scheduled scrape failed", zap.Error(err))
		}
	}); err != nil {
		return fmt.Errorf("schedule scrape %q: %w", cfg.ScrapeSchedule, err)
	}
	scheduler.Start()
	defer scheduler.Stop()

	// ---------------- Server --------------------
	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      router.Setup(handler.NewHandler(svc)),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 35 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server listening", zap.String("addr", cfg.Addr()))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server: %w", err)
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

func connectDB(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse database config: %w", err)
	}
	poolConfig.MaxConns = int32(cfg.DBPoolSize)
	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	if err := waitForDB(ctx, pool); err != nil {
		pool.Close()
		return nil, err
	}
	return pool, nil
}

func waitForDB(ctx context.Context, pool *pgxpool.Pool) error {
	for i := 0; i < 30; i++ {
		if err := pool.Ping(ctx); err == nil {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(1 * time.Second):
		}
	}
	return fmt.Errorf("database connection timeout after 30s")
}
