package main

import (
	"context"
	"fmt"
	"sattva/pkg/domain"
	"sattva/pkg/logger"
	"sattva/pkg/password"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// hashCommand constructs the 'hash' subcommand printing the stored form of a
// password, for seeding accounts by hand.
func hashCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hash",
		Short: "Prints the salted hash of a password",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()
			plain, _ := cmd.Flags().GetString("password")
			salt, _ := cmd.Flags().GetString("salt")
			role, _ := cmd.Flags().GetString("role")

			if salt == "" && role != "" {
				salt = password.DefaultRoleSalts()[domain.Role(role)]
				if salt == "" {
					logger.Fatal(ctx, "invalid role", zap.String("role", role))
				}
			}
			if salt == "" {
				var err error
				if salt, err = password.NewSalt(); err != nil {
					logger.Fatal(ctx, "could not create salt", zap.Error(err))
				}
			}

			fmt.Println(password.Hash(plain, salt)) //nolint: forbidigo
		},
	}

	cmd.Flags().String("password", "", "Plain text password")
	cmd.Flags().String("salt", "", "Salt to use; random when empty")
	cmd.Flags().String("role", "", "Use the fixed salt of this role")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}
