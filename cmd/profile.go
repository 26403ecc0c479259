package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fharpR4/roomie-app/internal/ports"
)

func newProfileCmd(app *app) *cobra.Command {
	var fullName string
	var phone string
	var institution string

	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Update the signed-in profile",
		RunE: func(cmd *cobra.Command, _ []string) error {
			session, err := requireSession(cmd.Context(), app)
			if err != nil {
				return err
			}

			var update ports.ProfileUpdate
			if cmd.Flags().Changed("name") {
				update.FullName = &fullName
			}
			if cmd.Flags().Changed("phone") {
				update.Phone = &phone
			}
			if cmd.Flags().Changed("institution") {
				update.Institution = &institution
			}
			if update.FullName == nil && update.Phone == nil && update.Institution == nil {
				return fmt.Errorf("nothing to update: pass --name, --phone or --institution")
			}

			profile, err := app.gateway.UpdateProfile(cmd.Context(), session.Profile.ID, update)
			if err != nil {
				return err
			}

			// Keep the durable snapshot in step with the backend row.
			if _, err := app.sessions.RefreshProfile(cmd.Context()); err != nil {
				app.logger.Warn("refresh after profile update", "error", err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Updated %s\n", profile.FullName)
			return nil
		},
	}

	cmd.Flags().StringVar(&fullName, "name", "", "Full name")
	cmd.Flags().StringVar(&phone, "phone", "", "Phone number")
	cmd.Flags().StringVar(&institution, "institution", "", "Institution name")

	return cmd
}
