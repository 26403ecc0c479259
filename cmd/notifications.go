package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fharpR4/roomie-app/internal/domain"
)

func newNotificationsCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "notifications",
		Short: "View notifications",
	}

	cmd.AddCommand(newNotificationsListCmd(app), newNotificationsReadCmd(app))

	return cmd
}

func newNotificationsListCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List your latest notifications",
		RunE: func(cmd *cobra.Command, _ []string) error {
			session, err := requireSession(cmd.Context(), app)
			if err != nil {
				return err
			}

			notifications, err := app.gateway.ListNotifications(cmd.Context(), session.Profile.ID)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(notifications) == 0 {
				_, _ = fmt.Fprintln(out, "No notifications.")
				return nil
			}
			for _, n := range notifications {
				marker := " "
				if !n.Read {
					marker = "*"
				}
				_, _ = fmt.Fprintf(out, "%s %s  %s\n", marker, n.ID, n.Title)
			}
			return nil
		},
	}
}

func newNotificationsReadCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "read <notification-id>",
		Short: "Mark a notification as read",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := requireSession(cmd.Context(), app); err != nil {
				return err
			}

			if err := app.gateway.MarkNotificationRead(cmd.Context(), domain.NotificationID(args[0])); err != nil {
				return err
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Marked as read")
			return nil
		},
	}
}
