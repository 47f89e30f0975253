package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/investlab/vollab/pkg/config"
	"github.com/investlab/vollab/pkg/server/middleware"
)

// tokenCmd represents the token command
var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Issue API bearer tokens",
	Long: `Issue a bearer token for the vollab API.

The token is signed with VOLLAB_API_SECRET and expires after the
configured api_token_ttl (in seconds).

Example:
  vollabctl token --subject research-notebook`,
	Run: func(cmd *cobra.Command, args []string) {
		subject, _ := cmd.Flags().GetString("subject")

		if err := generateToken(subject); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to issue token: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	tokenCmd.Flags().String("subject", "", "subject claim for the token (required)")
	_ = tokenCmd.MarkFlagRequired("subject")
	rootCmd.AddCommand(tokenCmd)
}

func generateToken(subject string) error {
	auth, err := middleware.NewJWTAuthenticator()
	if err != nil {
		return err
	}

	cfg := config.Get()
	if err := cfg.Validate(); err != nil {
		return err
	}

	token, err := auth.IssueToken(subject, cfg.TokenTTL())
	if err != nil {
		return err
	}

	fmt.Println(token)
	return nil
}
