package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"github.com/ZmnRobin/pc-builder/internal/config"
	"github.com/ZmnRobin/pc-builder/seeds"
)

var migrateDownFlag bool

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply (or drop, with --down) the database schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		pool, err := connectDB(ctx, cfg)
		if err != nil {
			return err
		}
		defer pool.Close()

		if migrateDownFlag {
			return runMigration(ctx, pool, "migrations/create_tables.down.sql")
		}
		return runMigration(ctx, pool, "migrations/create_tables.up.sql")
	},
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load sample components into an empty database",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		pool, err := connectDB(ctx, cfg)
		if err != nil {
			return err
		}
		defer pool.Close()

		if err := runMigration(ctx, pool, "migrations/create_tables.up.sql"); err != nil {
			return err
		}

		var count int
		if err := pool.QueryRow(ctx, "SELECT COUNT(*) FROM components").Scan(&count); err != nil {
			return fmt.Errorf("check components count: %w", err)
		}
		if count > 0 {
			fmt.Printf("database already seeded (%d components), skipping\n", count)
			return nil
		}
		return seeds.Setup(ctx, pool)
	},
}

func init() {
	migrateCmd.Flags().BoolVar(&migrateDownFlag, "down", false, "drop all tables instead of creating them")
}

func runMigration(ctx context.Context, pool *pgxpool.Pool, path string) error {
	sql, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read migration file: %w", err)
	}
	if _, err := pool.Exec(ctx, string(sql)); err != nil {
		return fmt.Errorf("execute migration: %w", err)
	}
	return nil
}
