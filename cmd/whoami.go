package cmd

import (
	"encoding/json"
	"fmt"

	sessionrender "github.com/hugokent/staffctl/internal/adapters/render/session"
	"github.com/spf13/cobra"
)

func newWhoamiCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "whoami",
		Short: "Show the current session and what it can access",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			status, err := app.sessions.Status(cmd.Context())
			if err != nil {
				return err
			}

			if asJSON {
				payload := map[string]any{
					"authenticated": !status.Session.Anonymous(),
					"checkedAt":     status.CheckedAt,
				}
				if !status.Session.Anonymous() {
					payload["role"] = status.Session.Role
					payload["subjectId"] = status.Session.SubjectID
					payload["displayName"] = status.Session.DisplayName
				}

				encoded, err := json.MarshalIndent(payload, "", "  ")
				if err != nil {
					return fmt.Errorf("encode session status: %w", err)
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), string(encoded))
				return nil
			}

			output, err := app.sessionRenderer(status, sessionrender.RenderOptions{ShowAccess: true})
			if err != nil {
				return fmt.Errorf("render session status: %w", err)
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), output)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}
