package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/lenslearn/internal/auth"
)

// newTokenCommand signs a development token with the server's shared secret.
func newTokenCommand(e *env) *cobra.Command {
	var ttl time.Duration

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Sign a development bearer token for --user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			session, err := e.session(true)
			if err != nil {
				return err
			}
			secret := e.v.GetString(keySecret)
			if secret == "" {
				return errors.New("jwt secret required: pass --secret or set LENSLEARN_AUTH_JWT_SECRET")
			}

			verifier := auth.NewVerifier(secret, e.v.GetString(keyIssuer), e.v.GetString(keyAudience))
			token, err := verifier.IssueToken(session.UserID, ttl)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}

	cmd.Flags().String("secret", "", "HS256 secret shared with the server")
	cmd.Flags().String("issuer", "", "token issuer")
	cmd.Flags().String("audience", "", "token audience")
	cmd.Flags().DurationVar(&ttl, "ttl", time.Hour, "token lifetime")
	e.v.BindPFlag(keySecret, cmd.Flags().Lookup("secret"))     //nolint:errcheck
	e.v.BindPFlag(keyIssuer, cmd.Flags().Lookup("issuer"))     //nolint:errcheck
	e.v.BindPFlag(keyAudience, cmd.Flags().Lookup("audience")) //nolint:errcheck
	return cmd
}
