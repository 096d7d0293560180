package memory

import (
	"context"
	"sync"

	"github.com/hugokent/staffctl/internal/domain"
	"github.com/hugokent/staffctl/internal/ports"
)

// Store keeps the credential in process memory. It backs tests and any
// embedding that has no use for persistence across runs.
type Store struct {
	mu      sync.RWMutex
	cred    domain.Credential
	present bool
}

var _ ports.CredentialStore = (*Store)(nil)

func NewStore() *Store {
	return &Store{}
}

func (s *Store) Save(ctx context.Context, cred domain.Credential) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.cred = cred
	s.present = true

	return nil
}

func (s *Store) Load(ctx context.Context) (domain.Credential, error) {
	if err := ctx.Err(); err != nil {
		return domain.Credential{}, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.present || !s.cred.Complete() {
		return domain.Credential{}, domain.ErrNoCredential
	}

	return s.cred, nil
}

func (s *Store) Clear(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.cred = domain.Credential{}
	s.present = false

	return nil
}
