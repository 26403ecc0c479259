package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newLoginCmd(app *app) *cobra.Command {
	var email string
	var password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and store the session locally",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if password == "" {
				prompted, err := promptPassword(cmd.OutOrStdout(), "Password")
				if err != nil {
					return err
				}
				password = prompted
			}

			session, err := app.sessions.SignIn(cmd.Context(), email, password)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Welcome back, %s\n", session.Profile.FullName)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Account email")
	cmd.Flags().StringVar(&password, "password", "", "Password (prompted when omitted)")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}
