package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/hugokent/staffctl/internal/adapters/api"
	"github.com/hugokent/staffctl/internal/application"
	"github.com/hugokent/staffctl/internal/domain"
	"github.com/spf13/cobra"
)

var (
	errSignInRequired   = errors.New("not signed in: run `staffctl login` first")
	errPermissionDenied = errors.New("you lack permission for this command")
)

// guardCommand re-checks the role gate on every invocation of the subtree, so
// a logout elsewhere is caught by the very next command.
func guardCommand(app *app, requirement domain.RoleRequirement) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		decision, session, err := app.guard.Authorize(cmd.Context(), requirement)
		if err != nil {
			return err
		}

		switch decision {
		case application.DecisionAllow:
			return nil
		case application.DecisionForbid:
			return fmt.Errorf("%w (signed in as %s)", errPermissionDenied, session.Role)
		default:
			return errSignInRequired
		}
	}
}

// callAPI performs one authorized request, showing a spinner unless the
// caller asked for JSON, and decodes the response into out when given.
func callAPI(cmd *cobra.Command, app *app, req api.Request, out any, asJSON bool, label string) error {
	fetch := func(ctx context.Context) error {
		resp, err := app.client.Do(ctx, req)
		if err != nil {
			return requestErrorMessage(err)
		}
		if out == nil {
			return nil
		}
		return resp.DecodeJSON(out)
	}

	if asJSON {
		return fetch(cmd.Context())
	}

	return runFetchSpinner(cmd.Context(), cmd.ErrOrStderr(), label, fetch)
}

func requestErrorMessage(err error) error {
	switch {
	case errors.Is(err, domain.ErrNotAuthenticated):
		return errSignInRequired
	case errors.Is(err, domain.ErrSessionExpired):
		return fmt.Errorf("your session expired, sign in again with `staffctl login`: %w", err)
	case errors.Is(err, domain.ErrForbidden):
		return fmt.Errorf("%w: %w", errPermissionDenied, err)
	case errors.Is(err, domain.ErrUnreachable):
		return fmt.Errorf("could not reach the staff API, try again: %w", err)
	}
	return err
}

func printJSON(cmd *cobra.Command, v any) error {
	encoded, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), string(encoded))
	return nil
}
