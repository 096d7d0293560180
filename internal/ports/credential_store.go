package ports

import (
	"context"

	"github.com/hugokent/staffctl/internal/domain"
)

// CredentialStore owns the persisted credential. Load returns
// domain.ErrNoCredential for an empty, partial or unparseable document; it
// never fails hard on malformed data. Save overwrites the full document.
// Clear is idempotent.
type CredentialStore interface {
	Load(ctx context.Context) (domain.Credential, error)
	Save(ctx context.Context, cred domain.Credential) error
	Clear(ctx context.Context) error
}
