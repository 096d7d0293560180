package cmd

import (
	"fmt"
	"net/http"
	"text/tabwriter"

	"github.com/hugokent/staffctl/internal/adapters/api"
	"github.com/hugokent/staffctl/internal/domain"
	"github.com/spf13/cobra"
)

var (
	leaveRequirement       = domain.RequireRoles(domain.RoleEmployee, domain.RoleHR, domain.RoleAdmin)
	leaveReviewRequirement = domain.RequireRoles(domain.RoleHR, domain.RoleAdmin)
)

type leaveRequest struct {
	ID     string `json:"id"`
	From   string `json:"from"`
	To     string `json:"to"`
	Reason string `json:"reason"`
	Status string `json:"status"`
}

func newLeaveCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:               "leave",
		Short:             "Manage leave requests",
		PersistentPreRunE: guardCommand(app, leaveRequirement),
	}

	cmd.AddCommand(newLeaveListCmd(app), newLeaveApplyCmd(app), newLeaveReviewCmd(app))

	return cmd
}

func newLeaveListCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List leave requests",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var requests []leaveRequest
			err := callAPI(cmd, app, api.Request{Method: http.MethodGet, Path: "/leave"}, &requests, asJSON, "Fetching leave requests...")
			if err != nil {
				return err
			}

			if asJSON {
				return printJSON(cmd, requests)
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tFROM\tTO\tSTATUS\tREASON")
			for _, r := range requests {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", r.ID, r.From, r.To, r.Status, r.Reason)
			}
			return w.Flush()
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}

func newLeaveApplyCmd(app *app) *cobra.Command {
	var from string
	var to string
	var reason string

	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Submit a leave request",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			body := map[string]string{"from": from, "to": to, "reason": reason}

			var created leaveRequest
			err := callAPI(cmd, app, api.Request{Method: http.MethodPost, Path: "/leave", Body: body}, &created, false, "Submitting leave request...")
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Leave request %s submitted (%s to %s)\n", created.ID, created.From, created.To)
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "First day of leave (YYYY-MM-DD)")
	cmd.Flags().StringVar(&to, "to", "", "Last day of leave (YYYY-MM-DD)")
	cmd.Flags().StringVar(&reason, "reason", "", "Reason shown to the reviewer")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}

func newLeaveReviewCmd(app *app) *cobra.Command {
	var approve bool
	var reject bool
	var note string

	cmd := &cobra.Command{
		Use:   "review <id>",
		Short: "Approve or reject a leave request",
		Args:  cobra.ExactArgs(1),
		// Reviewing is gated tighter than the rest of the leave subtree.
		PreRunE: guardCommand(app, leaveReviewRequirement),
		RunE: func(cmd *cobra.Command, args []string) error {
			if approve == reject {
				return fmt.Errorf("pass exactly one of --approve or --reject")
			}

			decision := "approved"
			if reject {
				decision = "rejected"
			}
			body := map[string]string{"decision": decision, "note": note}

			var updated leaveRequest
			err := callAPI(cmd, app, api.Request{Method: http.MethodPost, Path: "/leave/" + args[0] + "/review", Body: body}, &updated, false, "Submitting review...")
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Leave request %s %s\n", updated.ID, updated.Status)
			return nil
		},
	}

	cmd.Flags().BoolVar(&approve, "approve", false, "Approve the request")
	cmd.Flags().BoolVar(&reject, "reject", false, "Reject the request")
	cmd.Flags().StringVar(&note, "note", "", "Optional note for the requester")

	return cmd
}
