package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newLogoutCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Discard the stored session credential",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.sessions.Logout(cmd.Context()); err != nil {
				return err
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Signed out.")
			return nil
		},
	}
}
