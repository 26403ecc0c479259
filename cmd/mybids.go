package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newMyBidsCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "my-bids",
		Short: "List your bids, newest first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			session, err := requireSession(cmd.Context(), app)
			if err != nil {
				return err
			}

			bids, err := app.gateway.ListUserBids(cmd.Context(), session.Profile.ID)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(bids) == 0 {
				_, _ = fmt.Fprintln(out, "You have no bids.")
				return nil
			}
			for _, bid := range bids {
				title := string(bid.RoomID)
				if bid.Room != nil {
					title = bid.Room.Title
				}
				_, _ = fmt.Fprintf(out, "₦%d on %s (%s)\n", bid.Amount, title, bid.Status)
			}
			return nil
		},
	}
}
