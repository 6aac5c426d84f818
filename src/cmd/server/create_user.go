package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hortivise/payment-module/src/internal/adapter/http/models"
	"github.com/hortivise/payment-module/src/internal/adapter/repository/implementations"
	"github.com/hortivise/payment-module/src/internal/config"
	"github.com/hortivise/payment-module/src/internal/usecase/services"
)

// createUserCmd bootstraps the first user. The register route itself needs
// an authenticated caller.
func createUserCmd() *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "create-user",
		Short: "Create an API user",
		RunE: func(cmd *cobra.Command, _ []string) error {
			req := models.RegisterRequest{Email: email, Password: password}
			if err := req.Validate(); err != nil {
				return fmt.Errorf("invalid user: %w", err)
			}

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

			auth := services.NewAuthService(
				implementations.NewUserRepository(db),
				implementations.NewAccessTokenRepository(db),
				cfg.AccessTokenTTL,
			)
			user, err := auth.CreateUser(ctx, req.Email, req.Password)
			if err != nil {
				return fmt.Errorf("create user: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "created user %s (%s)\n", user.ID, user.Email)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "user email")
	cmd.Flags().StringVar(&password, "password", "", "user password")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}
