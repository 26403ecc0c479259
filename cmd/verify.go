package cmd

import (
	"fmt"
	"regexp"

	"github.com/spf13/cobra"
)

var codePattern = regexp.MustCompile(`^\d{6}$`)

func newVerifyCmd(app *app) *cobra.Command {
	var email string
	var code string

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Verify a new account with the emailed code",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !codePattern.MatchString(code) {
				return fmt.Errorf("verification code must be 6 digits")
			}

			session, err := app.sessions.VerifyOTP(cmd.Context(), email, code)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Account verified. Signed in as %s\n", session.Profile.Email)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Account email")
	cmd.Flags().StringVar(&code, "code", "", "6-digit verification code")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("code")

	return cmd
}
