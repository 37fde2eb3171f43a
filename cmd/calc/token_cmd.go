package main

import (
	"errors"
	"fmt"

	"github.com/GGmuzem/stackcalc/internal/auth"
	"github.com/spf13/cobra"
)

var subject string

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Выпустить токен доступа к HTTP API",
	Long:  "Выпускает JWT токен, подписанный ключом JWT_SECRET, на TOKEN_TTL_MINUTES минут.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if subject == "" {
			return errors.New("требуется --subject")
		}
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		authenticator, err := auth.NewAuthenticator(cfg.JWTSecret, cfg.TokenTTL)
		if err != nil {
			return err
		}
		token, err := authenticator.GenerateToken(subject)
		if err != nil {
			return fmt.Errorf("failed to generate token: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), token)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(tokenCmd)
	tokenCmd.Flags().StringVar(&subject, "subject", "", "Имя клиента в токене")
}
