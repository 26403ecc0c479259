package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fharpR4/roomie-app/internal/domain"
	"github.com/fharpR4/roomie-app/internal/ports"
)

func newMessagesCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "messages",
		Short: "Read and send messages",
	}

	cmd.AddCommand(newMessagesListCmd(app), newMessagesSendCmd(app))

	return cmd
}

func newMessagesListCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List conversations, most recent first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			session, err := requireSession(cmd.Context(), app)
			if err != nil {
				return err
			}

			messages, err := app.gateway.ListConversations(cmd.Context(), session.Profile.ID)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			conversations := domain.GroupConversations(session.Profile.ID, messages)
			if len(conversations) == 0 {
				_, _ = fmt.Fprintln(out, "No conversations yet.")
				return nil
			}
			for _, conv := range conversations {
				unread := ""
				if conv.Unread > 0 {
					unread = fmt.Sprintf(" [%d unread]", conv.Unread)
				}
				_, _ = fmt.Fprintf(out, "%s%s: %s\n", conv.Counterpart.FullName, unread, conv.LastMessage.Body)
			}
			return nil
		},
	}
}

func newMessagesSendCmd(app *app) *cobra.Command {
	var to string
	var body string

	cmd := &cobra.Command{
		Use:   "send",
		Short: "Send a message",
		RunE: func(cmd *cobra.Command, _ []string) error {
			session, err := requireSession(cmd.Context(), app)
			if err != nil {
				return err
			}

			msg, err := app.gateway.SendMessage(cmd.Context(), ports.NewMessage{
				SenderID:   session.Profile.ID,
				ReceiverID: domain.ProfileID(to),
				Body:       body,
			})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Sent %s\n", msg.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&to, "to", "", "Receiver profile ID")
	cmd.Flags().StringVar(&body, "body", "", "Message body")
	_ = cmd.MarkFlagRequired("to")
	_ = cmd.MarkFlagRequired("body")

	return cmd
}
