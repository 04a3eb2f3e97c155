package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var accountCmd = &cobra.Command{
	Use:   "account",
	Short: "Show the account behind the access token",
	Long: `Show the account behind the access token.

This needs a token issued with the "me" scope. 'genius auth' saves one;
without a saved token, one is requested automatically.`,
	Args: cobra.NoArgs,
	RunE: runAccount,
}

func init() {
	rootCmd.AddCommand(accountCmd)
}

func runAccount(cmd *cobra.Command, args []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	account, err := s.client.Account(context.Background())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s (%s)\n", account.Name, account.Login)
	fmt.Fprintf(out, "IQ: %d\n", account.IQ)
	if account.RoleForDisplay != "" {
		fmt.Fprintf(out, "Role: %s\n", account.RoleForDisplay)
	}
	return nil
}
