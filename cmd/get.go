package cmd

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/spf13/cobra"
)

var getParams []string

var getCmd = &cobra.Command{
	Use:   "get <endpoint>",
	Short: "Call any API endpoint and print the response",
	Long: `Perform an authenticated GET against an API endpoint and print the
response payload as indented JSON.

Examples:
  genius get /songs/378195
  genius get /annotations/10225840 --param text_format=plain`,
	Args: cobra.ExactArgs(1),
	RunE: runGet,
}

func init() {
	rootCmd.AddCommand(getCmd)
	getCmd.Flags().StringArrayVarP(&getParams, "param", "p", nil, "Query parameter as key=value (repeatable)")
}

func runGet(cmd *cobra.Command, args []string) error {
	endpoint := args[0]
	if !strings.HasPrefix(endpoint, "/") {
		endpoint = "/" + endpoint
	}

	query, err := parseParams(getParams)
	if err != nil {
		return err
	}

	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	resp, err := s.client.Raw(context.Background(), endpoint, query)
	if err != nil {
		return err
	}

	return printJSON(cmd.OutOrStdout(), resp)
}

// parseParams turns key=value pairs into query values
func parseParams(params []string) (url.Values, error) {
	query := url.Values{}
	for _, p := range params {
		key, value, ok := strings.Cut(p, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid parameter %q, expected key=value", p)
		}
		query.Add(key, value)
	}
	return query, nil
}
