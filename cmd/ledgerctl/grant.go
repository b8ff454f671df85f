package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/GlebRadaev/investledger/internal/domain"
	"github.com/GlebRadaev/investledger/internal/pg"
	userrepo "github.com/GlebRadaev/investledger/internal/repo/user-repo"
)

type RoleSetter interface {
	SetRole(ctx context.Context, login string, role domain.Role) (*domain.User, error)
}

func init() {
	grantAdminCmd.Flags().Bool("revoke", false, "demote the user back to the user role")
	rootCmd.AddCommand(grantAdminCmd)
}

var grantAdminCmd = &cobra.Command{
	Use:   "grant-admin <login>",
	Short: "Give an already registered user the admin role",
	Long: `The HTTP API registers every login with the user role. Operators are
promoted here after they have registered. Tokens issued before the change keep
their old role until they expire.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		revoke, _ := cmd.Flags().GetBool("revoke")

		pool, err := connect(cmd)
		if err != nil {
			return err
		}
		defer pool.Close()

		return grantAdmin(cmd.Context(), userrepo.New(pg.New(pool)), args[0], revoke, cmd.OutOrStdout())
	},
}

func grantAdmin(ctx context.Context, users RoleSetter, login string, revoke bool, out io.Writer) error {
	role := domain.RoleAdmin
	if revoke {
		role = domain.RoleUser
	}
	user, err := users.SetRole(ctx, login, role)
	if err != nil {
		return fmt.Errorf("set role of %q: %w", login, err)
	}
	zap.L().Info("user role changed", zap.String("login", login), zap.String("role", string(role)))
	fmt.Fprintf(out, "user %s (id %d) now has role %s\n", login, user.ID, role)
	return nil
}
