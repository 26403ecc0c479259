package cmd

import (
	"github.com/spf13/cobra"

	"github.com/fharpR4/roomie-app/internal/adapters/render/shell"
)

func newAppCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "app",
		Short: "Open the interactive Roomie shell",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return shell.Run(cmd.Context(), app.sessions, app.gateway)
		},
	}
}
