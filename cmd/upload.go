package cmd

import (
	"fmt"
	"os"
	"path"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func newUploadCmd(app *app) *cobra.Command {
	var bucket string
	var file string

	cmd := &cobra.Command{
		Use:   "upload",
		Short: "Upload a file to a storage bucket and print its public URL",
		RunE: func(cmd *cobra.Command, _ []string) error {
			session, err := requireSession(cmd.Context(), app)
			if err != nil {
				return err
			}

			info, err := os.Stat(file)
			if err != nil {
				return fmt.Errorf("upload file: %w", err)
			}

			r, err := os.Open(file)
			if err != nil {
				return fmt.Errorf("upload file: %w", err)
			}
			defer func() { _ = r.Close() }()

			objectPath := path.Join(string(session.Profile.ID), uuid.NewString()+filepath.Ext(file))
			url, err := app.gateway.Upload(cmd.Context(), bucket, objectPath, r, info.Size())
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), url)
			return nil
		},
	}

	cmd.Flags().StringVar(&bucket, "bucket", "", "Storage bucket name")
	cmd.Flags().StringVar(&file, "file", "", "Path to the file to upload")
	_ = cmd.MarkFlagRequired("bucket")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}
