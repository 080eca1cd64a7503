// Command admintoken prints a bearer token accepted by the admin API.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"eventregistration/config"
	"eventregistration/internal/adapters/auth"
)

var (
	subject string
	ttl     time.Duration
)

var rootCmd = &cobra.Command{
	Use:   "admintoken",
	Short: "Print an admin bearer token",
	Long: `Print a signed admin JWT for the event registration API.

The token is signed with JWT_SECRET (from the environment or .env) and carries
the admin role.

Examples:
  admintoken
  admintoken --sub ops-oncall --ttl 1h
  curl -H "Authorization: Bearer $(admintoken)" localhost:8080/event-types`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		token, err := auth.NewJWTIssuer(cfg.JWTSecret).Issue(subject, []string{auth.RoleAdmin}, ttl)
		if err != nil {
			return fmt.Errorf("issue token: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), token)
		return nil
	},
}

func init() {
	rootCmd.Flags().StringVar(&subject, "sub", "admin", "token subject (user ID)")
	rootCmd.Flags().DurationVar(&ttl, "ttl", 24*time.Hour, "token lifetime")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
