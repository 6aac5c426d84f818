package main

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/hortivise/payment-module/src/internal/adapter/repository/implementations"
	"github.com/hortivise/payment-module/src/internal/config"
	"github.com/hortivise/payment-module/src/internal/logger"
)

const migrateTimeout = 30 * time.Second

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), migrateTimeout)
			defer cancel()

			db, err := openDatabase(ctx, cfg)
			if err != nil {
				return err
			}
			defer db.Close()

			applied, err := implementations.RunMigrations(ctx, db, cfg.MigrationsDir)
			if err != nil {
				return fmt.Errorf("run migrations: %w", err)
			}

			logger.Info("migrations completed", logger.Fields{
				"applied": applied,
			})
			return nil
		},
	}
}

func openDatabase(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	db, err := implementations.Open(ctx, cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return db, nil
}
