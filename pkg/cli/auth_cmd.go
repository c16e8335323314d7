package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"sharegov/internal/middleware"
)

func newAuthCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Authentication helpers",
	}
	cmd.AddCommand(newAuthTokenCmd())
	return cmd
}

func newAuthTokenCmd() *cobra.Command {
	var (
		principal string
		secret    string
		admin     bool
		expires   time.Duration
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Generate a dev-mode JWT token",
		Long:  "Generate an HS256 JWT token for development and testing against a locally running server.",
		Example: `  # Token for a regular user with the default dev secret
  gdsctl auth token --principal analyst1

  # Platform-admin token with a custom secret and expiry
  gdsctl auth token --principal admin_user --admin --secret mysecret --expires 48h`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if principal == "" {
				return fmt.Errorf("--principal is required")
			}
			signed, err := middleware.SignToken([]byte(secret), principal, admin, expires)
			if err != nil {
				return fmt.Errorf("sign token: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), signed)
			return nil
		},
	}

	cmd.Flags().StringVar(&principal, "principal", "", "principal name for the sub claim")
	cmd.Flags().StringVar(&secret, "secret", "dev-secret-change-in-production", "HS256 signing secret")
	cmd.Flags().BoolVar(&admin, "admin", false, "mark the token as a platform-admin")
	cmd.Flags().DurationVar(&expires, "expires", 24*time.Hour, "token lifetime")
	return cmd
}
