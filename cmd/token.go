package main

import (
	"context"
	"fmt"
	"sattva/internal/auth"
	"sattva/internal/config"
	"sattva/pkg/domain"
	"sattva/pkg/logger"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// tokenCommand constructs the 'token' subcommand that generates a signed RS256
// bearer token for a given user ID and role using the configured private key.
func tokenCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Generates a bearer token for given user ID and role",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()
			subject, _ := cmd.Flags().GetString("subject")
			role, _ := cmd.Flags().GetString("role")
			TTL, _ := cmd.Flags().GetDuration("ttl")

			userID, err := domain.ParseUserID(subject)
			if err != nil {
				logger.Fatal(ctx, "invalid subject", zap.Error(err))
			}
			if !domain.Role(role).Valid() {
				logger.Fatal(ctx, "invalid role", zap.String("role", role))
			}

			signer, err := auth.NewSigner(cfg.JWT.PrivateKey, cfg.JWT.TTL, cfg.JWT.Issuer)
			if err != nil {
				logger.Fatal(ctx, "could not create token signer", zap.Error(err))
			}

			signed, err := signer.SignFor(userID, domain.Role(role), TTL)
			if err != nil {
				logger.Fatal(ctx, "could not sign JWT", zap.Error(err))
			}

			fmt.Println(signed) //nolint: forbidigo
		},
	}

	cmd.Flags().String("subject", "", "User ID the token is issued for")
	cmd.Flags().String("role", string(domain.RoleFarmer), "Role claim (farmer, manufacturer, consumer)")
	cmd.Flags().Duration("ttl", 24*time.Hour, "Token TTL (e.g., 30s, 15m, 1h)")
	_ = cmd.MarkFlagRequired("subject")

	return cmd
}
