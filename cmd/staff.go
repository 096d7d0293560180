package cmd

import (
	"fmt"
	"net/http"
	"text/tabwriter"

	"github.com/hugokent/staffctl/internal/adapters/api"
	"github.com/hugokent/staffctl/internal/domain"
	"github.com/spf13/cobra"
)

var staffRequirement = domain.RequireRoles(domain.RoleHR, domain.RoleAdmin)

type staffMember struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Role       string `json:"role"`
	Department string `json:"department"`
	Email      string `json:"email"`
}

func newStaffCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:               "staff",
		Short:             "Browse the staff directory",
		PersistentPreRunE: guardCommand(app, staffRequirement),
	}

	cmd.AddCommand(newStaffListCmd(app), newStaffGetCmd(app))

	return cmd
}

func newStaffListCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List staff members",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var members []staffMember
			err := callAPI(cmd, app, api.Request{Method: http.MethodGet, Path: "/staff"}, &members, asJSON, "Fetching staff directory...")
			if err != nil {
				return err
			}

			if asJSON {
				return printJSON(cmd, members)
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tROLE\tDEPARTMENT\tEMAIL")
			for _, m := range members {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", m.ID, m.Name, m.Role, m.Department, m.Email)
			}
			return w.Flush()
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}

func newStaffGetCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "get <id>",
		Short: "Show one staff member",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var member staffMember
			err := callAPI(cmd, app, api.Request{Method: http.MethodGet, Path: "/staff/" + args[0]}, &member, asJSON, "Fetching staff member...")
			if err != nil {
				return err
			}

			if asJSON {
				return printJSON(cmd, member)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s (%s)\n", member.Name, member.ID)
			fmt.Fprintf(out, "role:       %s\n", member.Role)
			fmt.Fprintf(out, "department: %s\n", member.Department)
			fmt.Fprintf(out, "email:      %s\n", member.Email)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}
