package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"workspacemcp/internal/google"
)

func newAuthCmd() *cobra.Command {
	var (
		account string
		status  bool
	)

	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Authorize Google Workspace access for an account",
		Long: `Run the interactive OAuth flow for a Google account.

Prints the Google authorization URL, waits for the authorization code,
and stores the resulting token in the user cache directory. Use
--account to manage multiple Google accounts side by side.

Requires GOOGLE_CLIENT_ID and GOOGLE_CLIENT_SECRET env vars identifying
your OAuth application.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if status {
				return runAuthStatus(account)
			}
			return runAuth(cmd.Context(), account)
		},
	}

	cmd.Flags().StringVar(&account, "account", "default", "Account name to authorize")
	cmd.Flags().BoolVar(&status, "status", false, "Only report whether the account has a saved token")

	return cmd
}

func runAuthStatus(account string) error {
	if google.HasTokenForAccount(account) {
		fmt.Printf("Account %q is authorized.\n", account)
		return nil
	}
	fmt.Println(google.GetAuthenticationErrorMessage(account))
	return nil
}

func runAuth(ctx context.Context, account string) error {
	authURL, err := google.GetAuthURLForAccount(account)
	if err != nil {
		return err
	}

	fmt.Printf("To authorize account %q, visit this URL in your browser:\n\n  %s\n\n", account, authURL)
	fmt.Print("Enter the authorization code: ")

	reader := bufio.NewReader(os.Stdin)
	authCode, err := reader.ReadString('\n')
	if err != nil {
		return fmt.Errorf("failed to read authorization code: %w", err)
	}
	authCode = strings.TrimSpace(authCode)
	if authCode == "" {
		return fmt.Errorf("authorization code is required")
	}

	if err := google.SaveTokenForAccount(ctx, account, authCode); err != nil {
		return fmt.Errorf("failed to save token for account %s: %w", account, err)
	}

	fmt.Printf("Authorization successful for account %q. Token saved.\n", account)
	return nil
}
