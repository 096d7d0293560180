package cmd

import (
	"fmt"
	"net/http"
	"net/url"
	"text/tabwriter"

	"github.com/hugokent/staffctl/internal/adapters/api"
	"github.com/hugokent/staffctl/internal/domain"
	"github.com/spf13/cobra"
)

var attendanceRequirement = domain.RequireRoles(domain.RoleEmployee, domain.RoleHR, domain.RoleAdmin)

type attendanceRecord struct {
	Date     string `json:"date"`
	CheckIn  string `json:"checkIn"`
	CheckOut string `json:"checkOut"`
	Status   string `json:"status"`
}

func newAttendanceCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:               "attendance",
		Short:             "View attendance records",
		PersistentPreRunE: guardCommand(app, attendanceRequirement),
	}

	cmd.AddCommand(newAttendanceListCmd(app))

	return cmd
}

func newAttendanceListCmd(app *app) *cobra.Command {
	var month string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List attendance records for a month",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			query := url.Values{}
			if month != "" {
				query.Set("month", month)
			}

			var records []attendanceRecord
			err := callAPI(cmd, app, api.Request{Method: http.MethodGet, Path: "/attendance", Query: query}, &records, asJSON, "Fetching attendance...")
			if err != nil {
				return err
			}

			if asJSON {
				return printJSON(cmd, records)
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "DATE\tCHECK-IN\tCHECK-OUT\tSTATUS")
			for _, r := range records {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", r.Date, r.CheckIn, r.CheckOut, r.Status)
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&month, "month", "", "Month to list (YYYY-MM, default: current)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}
