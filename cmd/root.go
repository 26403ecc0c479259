package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "roomie",
		Short:         "Roomie: student housing, roommates and peer lending from the terminal",
		Long:          "roomie is the terminal client for the Roomie marketplace: browse rooms, place bids, message roommates and manage your account against the hosted backend.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newLoginCmd(app),
		newRegisterCmd(app),
		newVerifyCmd(app),
		newLogoutCmd(app),
		newWhoamiCmd(app),
		newProfileCmd(app),
		newRoomsCmd(app),
		newMyBidsCmd(app),
		newMessagesCmd(app),
		newNotificationsCmd(app),
		newUploadCmd(app),
		newAppCmd(app),
	)

	return rootCmd
}
