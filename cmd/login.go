package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	"github.com/hugokent/staffctl/internal/domain"
	"github.com/spf13/cobra"
)

func newLoginCmd(app *app) *cobra.Command {
	var role string
	var username string
	var password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and store a session credential",
		RunE: func(cmd *cobra.Command, _ []string) error {
			parsedRole, err := parseRole(role)
			if err != nil {
				return err
			}

			if password == "" {
				password, err = readPassword(cmd)
				if err != nil {
					return err
				}
			}

			cred, err := app.sessions.Login(cmd.Context(), parsedRole, username, password)
			if err != nil {
				return loginErrorMessage(err)
			}

			name := cred.DisplayName
			if name == "" {
				name = username
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Signed in as %s (%s)\n", name, cred.Role)
			return nil
		},
	}

	cmd.Flags().StringVar(&role, "role", "", "Login endpoint to use (employee|hr|admin)")
	cmd.Flags().StringVar(&username, "username", "", "Account username")
	cmd.Flags().StringVar(&password, "password", "", "Account password (prompted when omitted)")
	_ = cmd.MarkFlagRequired("role")
	_ = cmd.MarkFlagRequired("username")

	return cmd
}

func parseRole(raw string) (domain.Role, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "employee":
		return domain.RoleEmployee, nil
	case "hr":
		return domain.RoleHR, nil
	case "admin":
		return domain.RoleAdmin, nil
	}
	return "", fmt.Errorf("unknown role %q (expected employee, hr or admin)", raw)
}

func readPassword(cmd *cobra.Command) (string, error) {
	_, _ = fmt.Fprint(cmd.OutOrStdout(), "Password: ")

	reader := bufio.NewReader(cmd.InOrStdin())
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("read password: %w", err)
	}

	password := strings.TrimRight(line, "\r\n")
	if password == "" {
		return "", errors.New("password is empty")
	}
	return password, nil
}

// loginErrorMessage keeps the three login failure kinds distinguishable for
// the user: a rejected password reads differently from a dead network, and a
// garbled server response is neither.
func loginErrorMessage(err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		return fmt.Errorf("login rejected: %w", err)
	case errors.Is(err, domain.ErrUnreachable):
		return fmt.Errorf("could not reach the staff API, try again: %w", err)
	case errors.Is(err, domain.ErrMalformedResponse):
		return fmt.Errorf("the staff API returned an unexpected response (this is not a password problem): %w", err)
	}
	return err
}
