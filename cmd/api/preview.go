package main

import (
	"fmt"
	"time"

	"compliance-ai-backend/internal/domain"
	"compliance-ai-backend/internal/usecase"
	"compliance-ai-backend/pkg/validation"

	"github.com/spf13/cobra"
)

// newPreviewCommand renders the contact emails for a sample submission so
// template changes can be checked in a browser without sending mail.
func newPreviewCommand() *cobra.Command {
	var kind string
	var services []string
	var (
		fullName, companyName, addr, country, phone, description, method string
		consent                                                          bool
	)

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Render the admin or confirmation email to stdout",
		RunE: func(cmd *cobra.Command, args []string) error {
			items := make([]any, len(services))
			for i, s := range services {
				items[i] = s
			}
			payload := domain.ContactPayload{
				"fullName":          fullName,
				"companyName":       companyName,
				"email":             addr,
				"country":           country,
				"phone":             phone,
				"description":       description,
				"contactMethod":     method,
				"conflictScreening": consent,
				"services":          items,
			}

			sub, err := usecase.ParseSubmission(validation.New(), payload)
			if err != nil {
				return err
			}

			notification, confirmation, err := usecase.ComposeEmails(sub, "preview@localhost", time.Now())
			if err != nil {
				return err
			}

			switch kind {
			case "admin":
				fmt.Fprintln(cmd.OutOrStdout(), notification.HTMLBody)
			case "confirmation":
				fmt.Fprintln(cmd.OutOrStdout(), confirmation.HTMLBody)
			default:
				return fmt.Errorf("unknown kind %q (want admin or confirmation)", kind)
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&kind, "kind", "admin", "which email to render: admin or confirmation")
	flags.StringVar(&fullName, "full-name", "Jane Doe", "submitter name")
	flags.StringVar(&companyName, "company", "Acme", "company name")
	flags.StringVar(&addr, "email", "jane@acme.com", "submitter email")
	flags.StringVar(&country, "country", "Egypt", "country")
	flags.StringVar(&phone, "phone", "+201001234567", "phone number")
	flags.StringVar(&description, "description", "We need a GRC gap assessment.\nTimeline: Q1.", "free-text message")
	flags.StringVar(&method, "contact-method", "email", "preferred contact method")
	flags.BoolVar(&consent, "conflict-screening", true, "conflict of interest screening consent")
	flags.StringSliceVar(&services, "services", []string{"policy", "audit"}, "selected service identifiers")

	return cmd
}
