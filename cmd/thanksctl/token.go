package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Wikia/thanksmetoo/internal/auth"
)

func newTokenCommand(opts *rootOptions) *cobra.Command {
	var userID int64

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint an access token for a user",
		Long: `Mint a bearer token that authenticates API calls as the given user.

Example:
  thanksctl token --user-id 42`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if userID <= 0 {
				return errors.New("--user-id must be a positive user id")
			}
			a := opts.cfg.Auth
			token, err := auth.NewJWTManager(a.JWTSecret, a.JWTIssuer, a.AccessTokenTTL).GenerateAccessToken(userID)
			if err != nil {
				return fmt.Errorf("generate token: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}

	cmd.Flags().Int64Var(&userID, "user-id", 0, "id of the user the token authenticates")
	_ = cmd.MarkFlagRequired("user-id")

	return cmd
}
