package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newWhoamiCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in profile",
		RunE: func(cmd *cobra.Command, _ []string) error {
			session, err := requireSession(cmd.Context(), app)
			if err != nil {
				return err
			}

			profile := session.Profile
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "%s <%s>\n", profile.FullName, profile.Email)
			if profile.Institution != "" {
				_, _ = fmt.Fprintln(out, profile.Institution)
			}
			if profile.Verified {
				_, _ = fmt.Fprintln(out, "verified")
			}
			return nil
		},
	}
}
