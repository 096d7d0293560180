package cmd

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/hugokent/staffctl/internal/adapters/api"
	"github.com/hugokent/staffctl/internal/domain"
	"github.com/spf13/cobra"
)

var payrollRequirement = domain.RequireRoles(domain.RoleEmployee, domain.RoleHR, domain.RoleAdmin)

type payslip struct {
	Month      string  `json:"month"`
	Gross      float64 `json:"gross"`
	Deductions float64 `json:"deductions"`
	Net        float64 `json:"net"`
	PaidOn     string  `json:"paidOn"`
}

func newPayrollCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:               "payroll",
		Short:             "View payroll information",
		PersistentPreRunE: guardCommand(app, payrollRequirement),
	}

	cmd.AddCommand(newPayrollShowCmd(app))

	return cmd
}

func newPayrollShowCmd(app *app) *cobra.Command {
	var month string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the payslip for a month",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			query := url.Values{}
			if month != "" {
				query.Set("month", month)
			}

			var slip payslip
			err := callAPI(cmd, app, api.Request{Method: http.MethodGet, Path: "/payroll", Query: query}, &slip, asJSON, "Fetching payslip...")
			if err != nil {
				return err
			}

			if asJSON {
				return printJSON(cmd, slip)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Payslip %s\n", slip.Month)
			fmt.Fprintf(out, "gross:      %.2f\n", slip.Gross)
			fmt.Fprintf(out, "deductions: %.2f\n", slip.Deductions)
			fmt.Fprintf(out, "net:        %.2f\n", slip.Net)
			if slip.PaidOn != "" {
				fmt.Fprintf(out, "paid on:    %s\n", slip.PaidOn)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&month, "month", "", "Month to show (YYYY-MM, default: latest)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}
