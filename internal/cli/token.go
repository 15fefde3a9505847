package cli

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/dhima/attendance-ledger/internal/api/middleware"
	"github.com/spf13/cobra"
)

// TokenResult is the payload printed by the token command.
type TokenResult struct {
	Token     string    `json:"token"`
	Subject   string    `json:"subject"`
	Role      string    `json:"role"`
	ExpiresAt time.Time `json:"expires_at"`
}

// NewTokenCommand creates the token command.
func NewTokenCommand(opts *RootOptions) *cobra.Command {
	var (
		subject string
		role    string
		ttl     time.Duration
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue a bearer token for the session endpoints",
		Long: `Sign a JWT with JWT_SECRET. Tokens with the admin role may open and
close check-in sessions over the HTTP API.

Example:
  ledgerctl token --subject ops@example.com --ttl 12h`,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := opts.formatter(cmd)
			if len(opts.env.JWTSecret) == 0 {
				return fail(out, errors.New("JWT_SECRET is not set"))
			}
			if ttl <= 0 {
				_ = out.Error(CodeRejected, "--ttl must be positive", nil)
				return WrapExitError(ExitFailure, "invalid --ttl", nil)
			}

			now := opts.env.Clock.Now()
			token, err := middleware.IssueToken(opts.env.JWTSecret, subject, role, now, ttl)
			if err != nil {
				return fail(out, err)
			}
			result := TokenResult{Token: token, Subject: subject, Role: role, ExpiresAt: now.Add(ttl)}
			return out.Success(result, "", func(w io.Writer) {
				fmt.Fprintln(w, token)
			})
		},
	}

	cmd.Flags().StringVar(&subject, "subject", "ledgerctl", "token subject")
	cmd.Flags().StringVar(&role, "role", middleware.RoleAdmin, "role claim")
	cmd.Flags().DurationVar(&ttl, "ttl", 24*time.Hour, "token lifetime")

	return cmd
}
