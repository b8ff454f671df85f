package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/GlebRadaev/investledger/internal/domain"
	"github.com/GlebRadaev/investledger/internal/pg"
	accountrepo "github.com/GlebRadaev/investledger/internal/repo/account-repo"
)

type SummaryLister interface {
	ListSummaries(ctx context.Context) ([]domain.Summary, error)
}

func init() {
	rootCmd.AddCommand(reconcileCmd)
}

var reconcileCmd = &cobra.Command{
	Use:   "reconcile",
	Short: "Check every balance against its request and adjustment history",
	Long: `Recomputes approved deposits minus approved and pending withdrawals plus
adjustments for each account and compares the result with the stored balance.
Exits non-zero when any account does not match.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		pool, err := connect(cmd)
		if err != nil {
			return err
		}
		defer pool.Close()

		return reconcile(cmd.Context(), accountrepo.New(pg.New(pool)), cmd.OutOrStdout())
	},
}

func reconcile(ctx context.Context, lister SummaryLister, out io.Writer) error {
	summaries, err := lister.ListSummaries(ctx)
	if err != nil {
		return fmt.Errorf("list summaries: %w", err)
	}

	mismatched := 0
	for _, s := range summaries {
		if s.Reconciled() {
			continue
		}
		mismatched++
		expected := s.TotalApprovedDeposits - s.TotalApprovedWithdrawals - s.PendingWithdrawals + s.TotalAdjustments
		fmt.Fprintf(out, "account %d: balance %d, expected %d (deposits %d, withdrawals %d, pending %d, adjustments %d)\n",
			s.AccountID, s.Balance, expected,
			s.TotalApprovedDeposits, s.TotalApprovedWithdrawals, s.PendingWithdrawals, s.TotalAdjustments)
	}

	zap.L().Info("reconciliation finished", zap.Int("accounts", len(summaries)), zap.Int("mismatched", mismatched))
	if mismatched > 0 {
		return fmt.Errorf("%d of %d accounts do not reconcile", mismatched, len(summaries))
	}
	fmt.Fprintf(out, "%d accounts reconciled\n", len(summaries))
	return nil
}
