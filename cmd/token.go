package main

import (
	"fmt"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/yakoovad/orgstructure/internal/auth"
	"github.com/yakoovad/orgstructure/internal/config"
	"time"
)

func newTokenCmd() *cobra.Command {
	var (
		tokenType string
		subject   string
		ttl       time.Duration
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Print a signed API token",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if cfg.Auth.TokenSecret == "" {
				return errors.New("auth.token_secret (AUTH_TOKEN_SECRET) is not set")
			}

			tt, err := auth.ParseTokenType(tokenType)
			if err != nil {
				return err
			}

			token, err := auth.NewIssuer(cfg.Auth.TokenSecret).Generate(tt, subject, ttl)
			if err != nil {
				return errors.Wrap(err, "sign token")
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), token)
			return err
		},
	}

	cmd.Flags().StringVar(&tokenType, "type", string(auth.TokenTypeUser), "token type: user or admin")
	cmd.Flags().StringVar(&subject, "subject", "", "subject recorded in the token")
	cmd.Flags().DurationVar(&ttl, "ttl", 24*time.Hour, "token lifetime")
	return cmd
}
