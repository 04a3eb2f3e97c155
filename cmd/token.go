package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var tokenScopes []string

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Issue an access token",
	Long: `Exchange the configured client credentials for a new access token
and print it. The token is not saved; use 'genius auth' for that.

Scopes are sent joined with '+', for example --scope me --scope vote.`,
	Args: cobra.NoArgs,
	RunE: runToken,
}

func init() {
	rootCmd.AddCommand(tokenCmd)
	tokenCmd.Flags().StringArrayVarP(&tokenScopes, "scope", "s", nil, "Scope to request (repeatable)")
}

func runToken(cmd *cobra.Command, args []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	token, err := s.client.IssueToken(context.Background(), tokenScopes...)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), token)
	return nil
}
