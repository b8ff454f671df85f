package main

import (
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/GlebRadaev/investledger/internal/config"
	"github.com/GlebRadaev/investledger/internal/pg"
	"github.com/GlebRadaev/investledger/pkg/logger"
)

func init() {
	rootCmd.AddCommand(migrateCmd)
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending schema migrations",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		pool, err := connect(cmd)
		if err != nil {
			return err
		}
		defer pool.Close()

		if err := pg.RunMigrations(pool); err != nil {
			return err
		}
		zap.L().Info("migrations applied")
		return nil
	},
}

// connect loads the environment, applies flag overrides, initialises the
// global logger and opens a pool.
func connect(cmd *cobra.Command) (*pgxpool.Pool, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if dsn, _ := cmd.Flags().GetString("database"); dsn != "" {
		cfg.Database = dsn
	}
	if lvl, _ := cmd.Flags().GetString("log-level"); lvl != "" {
		cfg.LogLvl = lvl
	}
	if err := logger.InitLogger(logger.Options{Level: cfg.LogLvl, Format: cfg.LogFormat, Service: "ledgerctl"}); err != nil {
		return nil, fmt.Errorf("can't init logger: %w", err)
	}

	ctx := cmd.Context()
	pool, err := pgxpool.New(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("can't build pgx pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("can't reach database: %w", err)
	}
	return pool, nil
}
