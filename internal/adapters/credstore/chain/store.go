package chain

import (
	"context"
	"errors"
	"fmt"

	filestore "github.com/hugokent/staffctl/internal/adapters/credstore/file"
	passstore "github.com/hugokent/staffctl/internal/adapters/credstore/pass"
	"github.com/hugokent/staffctl/internal/domain"
	"github.com/hugokent/staffctl/internal/ports"
)

// Store composes a primary and a fallback credential store. Reads prefer the
// primary; writes land in the primary when it works. Clear reaches both
// backends so a logout never leaves a live credential behind in either one.
type Store struct {
	primary  ports.CredentialStore
	fallback ports.CredentialStore
}

var _ ports.CredentialStore = (*Store)(nil)

var (
	errNilPrimaryStore  = errors.New("primary credential store is nil")
	errNilFallbackStore = errors.New("fallback credential store is nil")
)

func NewStore(primary ports.CredentialStore, fallback ports.CredentialStore) *Store {
	store, err := NewStoreChecked(primary, fallback)
	if err != nil {
		panic(err)
	}

	return store
}

func NewStoreChecked(primary ports.CredentialStore, fallback ports.CredentialStore) (*Store, error) {
	if primary == nil {
		return nil, errNilPrimaryStore
	}
	if fallback == nil {
		return nil, errNilFallbackStore
	}

	return &Store{primary: primary, fallback: fallback}, nil
}

func NewPassFirstWithFileFallback(filePath string) (*Store, error) {
	return NewStoreChecked(passstore.NewStore(), filestore.NewStoreAtPath(filePath))
}

func (s *Store) Save(ctx context.Context, cred domain.Credential) error {
	err := s.primary.Save(ctx, cred)
	if err == nil {
		// A credential saved earlier in the fallback would shadow future
		// reads if the primary ever became unavailable again.
		if clearErr := s.fallback.Clear(ctx); clearErr != nil {
			return fmt.Errorf("clear fallback after primary save: %w", clearErr)
		}
		return nil
	}
	if shouldSkipFallback(err) {
		return err
	}

	fallbackErr := s.fallback.Save(ctx, cred)
	if fallbackErr == nil {
		return nil
	}

	return fmt.Errorf("primary backend save failed: %w; fallback backend save failed: %w", err, fallbackErr)
}

func (s *Store) Load(ctx context.Context) (domain.Credential, error) {
	cred, err := s.primary.Load(ctx)
	if err == nil {
		return cred, nil
	}
	if shouldSkipFallback(err) {
		return domain.Credential{}, err
	}

	fallbackCred, fallbackErr := s.fallback.Load(ctx)
	if fallbackErr == nil {
		return fallbackCred, nil
	}

	if errors.Is(err, domain.ErrNoCredential) && errors.Is(fallbackErr, domain.ErrNoCredential) {
		return domain.Credential{}, domain.ErrNoCredential
	}
	if errors.Is(fallbackErr, domain.ErrNoCredential) && errors.Is(err, passstore.ErrUnavailable) {
		return domain.Credential{}, domain.ErrNoCredential
	}

	return domain.Credential{}, fmt.Errorf("primary backend load failed: %w; fallback backend load failed: %w", err, fallbackErr)
}

func (s *Store) Clear(ctx context.Context) error {
	err := s.primary.Clear(ctx)
	if err != nil && shouldSkipFallback(err) {
		return err
	}
	if errors.Is(err, passstore.ErrUnavailable) {
		err = nil
	}

	fallbackErr := s.fallback.Clear(ctx)
	if err == nil && fallbackErr == nil {
		return nil
	}
	if err == nil {
		return fmt.Errorf("fallback backend clear failed: %w", fallbackErr)
	}
	if fallbackErr == nil {
		return fmt.Errorf("primary backend clear failed: %w", err)
	}

	return fmt.Errorf("primary backend clear failed: %w; fallback backend clear failed: %w", err, fallbackErr)
}

func shouldSkipFallback(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
