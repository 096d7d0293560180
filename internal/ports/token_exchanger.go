package ports

import (
	"context"

	"github.com/hugokent/staffctl/internal/domain"
)

// TokenExchanger trades proof of identity for a Credential against the remote
// API: Login with username/password on a role-specific endpoint, Refresh with
// a previously issued refresh token.
type TokenExchanger interface {
	Login(ctx context.Context, role domain.Role, username, password string) (domain.Credential, error)
	Refresh(ctx context.Context, refreshToken string) (domain.Credential, error)
}
