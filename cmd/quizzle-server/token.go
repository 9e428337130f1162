package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/quizzle-app/quizzle/internal/auth"
)

func newTokenCommand() *cobra.Command {
	var ttl time.Duration
	command := &cobra.Command{
		Use:   "token <email>",
		Short: "Issue an API token for a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("loadConfig() > %w", err)
			}
			if cfg.Server.JWTSecret == "" {
				return errors.New("QUIZZLE_JWT_SECRET environment variable is required")
			}

			manager, err := auth.NewTokenManager(cfg.Server.JWTSecret)
			if err != nil {
				return fmt.Errorf("auth.NewTokenManager() > %w", err)
			}
			token, err := manager.Issue(args[0], ttl)
			if err != nil {
				return fmt.Errorf("manager.Issue() > %w", err)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), token)
			return err
		},
	}
	command.Flags().DurationVar(&ttl, "ttl", 30*24*time.Hour, "Token lifetime, 0 for no expiry")
	return command
}
