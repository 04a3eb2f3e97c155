package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/jfmyers9/genius/internal/config"
	"github.com/jfmyers9/genius/internal/lookup"
	"github.com/jfmyers9/genius/pkg/genius"
	"github.com/spf13/cobra"
)

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Configure Genius API credentials",
	Long: `Configure Genius API credentials and verify them.

This command will:
1. Prompt for your Genius API client ID and client secret
2. Exchange them for an access token to check they work
3. Save the credentials and token to your config file

You can get API credentials from: https://genius.com/api-clients`,
	RunE: runAuth,
}

func init() {
	rootCmd.AddCommand(authCmd)
}

func runAuth(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	reader := bufio.NewReader(os.Stdin)

	// Load existing config
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	fmt.Println("Genius Authentication")
	fmt.Println("=====================")
	fmt.Println()
	fmt.Println("You can get API credentials from: https://genius.com/api-clients")
	fmt.Println()

	// Check if we already have credentials
	if cfg.HasCredentials() {
		fmt.Printf("Found existing API credentials.\n")
		fmt.Printf("Client ID: %s\n", cfg.Genius.ClientID)
		fmt.Print("\nUse existing credentials? [Y/n]: ")
		response, err := reader.ReadString('\n')
		if err != nil {
			response = "y"
		}
		response = strings.TrimSpace(strings.ToLower(response))
		if response != "" && response != "y" && response != "yes" {
			cfg.Genius.ClientID = ""
			cfg.Genius.ClientSecret = ""
			cfg.Genius.AccessToken = ""
		}
	}

	if cfg.Genius.ClientID == "" {
		fmt.Print("Enter your Genius Client ID: ")
		clientID, err := reader.ReadString('\n')
		if err != nil {
			return fmt.Errorf("failed to read client ID: %w", err)
		}
		cfg.Genius.ClientID = strings.TrimSpace(clientID)
	}

	if cfg.Genius.ClientSecret == "" {
		fmt.Print("Enter your Genius Client Secret: ")
		clientSecret, err := reader.ReadString('\n')
		if err != nil {
			return fmt.Errorf("failed to read client secret: %w", err)
		}
		cfg.Genius.ClientSecret = strings.TrimSpace(clientSecret)
	}

	if !cfg.HasCredentials() {
		return fmt.Errorf("client ID and client secret are required")
	}

	client, err := lookup.New(lookup.Options{
		ClientID:     cfg.Genius.ClientID,
		ClientSecret: cfg.Genius.ClientSecret,
		BaseURL:      cfg.Genius.BaseURL,
		UserAgent:    cfg.Genius.UserAgent,
		Logger:       setupLogger(logFile, logLevel),
	})
	if err != nil {
		return err
	}
	defer client.Close()

	// The "me" scope lets the saved token be used for 'genius account' too
	fmt.Println("\nRequesting access token...")
	token, err := client.IssueToken(ctx, genius.ScopeMe)
	if err != nil {
		return err
	}
	cfg.Genius.AccessToken = token

	if err := cfg.Save(); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	fmt.Printf("\n✓ Authentication successful!\n")
	fmt.Printf("✓ Credentials saved to %s/config.yaml\n", config.GetConfigDir())

	return nil
}
