package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/fharpR4/roomie-app/internal/domain"
)

func newRegisterCmd(app *app) *cobra.Command {
	var fullName string
	var email string
	var phone string
	var password string
	var nationalID string
	var institution string
	var document string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account (personal info, security, verification)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if password == "" {
				prompted, err := promptPassword(cmd.OutOrStdout(), "Password")
				if err != nil {
					return err
				}
				confirmed, err := promptPassword(cmd.OutOrStdout(), "Confirm password")
				if err != nil {
					return err
				}
				password = prompted
				if password != confirmed {
					return domain.ErrPasswordMismatch
				}
			}

			reg := domain.NewRegistration()
			reg.FullName = fullName
			reg.Email = email
			reg.Phone = phone
			reg.Password = password
			reg.ConfirmPassword = password
			reg.NationalID = nationalID
			reg.Institution = institution

			info, err := os.Stat(document)
			if err != nil {
				return fmt.Errorf("verification document: %w", err)
			}
			reg.Document = &domain.Document{Name: info.Name(), Size: info.Size()}

			// Walk the same forward-gated sequence the interactive flow
			// uses; the first failing step reports all its violations.
			for reg.Step() < domain.StepVerification {
				if errs := reg.Next(); len(errs) > 0 {
					return errors.Join(errs...)
				}
			}
			if errs := reg.Next(); len(errs) > 0 {
				return errors.Join(errs...)
			}

			url, err := app.sessions.Register(cmd.Context(), reg, func() (io.ReadCloser, error) {
				return os.Open(document)
			})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Registered %s; document stored at %s\n", email, url)
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Run `roomie verify` with the code sent to you to finish.")
			return nil
		},
	}

	cmd.Flags().StringVar(&fullName, "name", "", "Full name")
	cmd.Flags().StringVar(&email, "email", "", "Email address")
	cmd.Flags().StringVar(&phone, "phone", "", "Phone number (11 digits, leading 0)")
	cmd.Flags().StringVar(&password, "password", "", "Password (prompted when omitted)")
	cmd.Flags().StringVar(&nationalID, "national-id", "", "National ID (11 digits)")
	cmd.Flags().StringVar(&institution, "institution", "", "Institution name")
	cmd.Flags().StringVar(&document, "document", "", "Path to the student ID document (max 5 MB)")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("phone")
	_ = cmd.MarkFlagRequired("national-id")
	_ = cmd.MarkFlagRequired("institution")
	_ = cmd.MarkFlagRequired("document")

	return cmd
}
