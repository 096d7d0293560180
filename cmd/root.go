package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "staffctl",
		Short:         "staffctl: staff-management console for the terminal",
		Long:          "staffctl talks to the staff-management API: sign in with a role-specific account, then browse attendance, payroll, leave requests and the staff directory, gated by your role.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newLoginCmd(app),
		newLogoutCmd(app),
		newWhoamiCmd(app),
		newStaffCmd(app),
		newAttendanceCmd(app),
		newLeaveCmd(app),
		newPayrollCmd(app),
	)

	return rootCmd
}
