package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:          "ledgerctl",
	Short:        "Operate the ledger database",
	Long:         `Maintenance commands for the ledger. Connection settings come from DATABASE_URI unless --database is given.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringP("database", "d", "", "database DSN, overrides DATABASE_URI")
	rootCmd.PersistentFlags().StringP("log-level", "l", "", "log level, overrides LOG_LVL")
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		cancel()
		os.Exit(1)
	}
}
