package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/hugokent/staffctl/internal/domain"
	"github.com/hugokent/staffctl/internal/ports"
)

// SessionService owns the session lifecycle: exchanging credentials for a
// token, tearing the session down, and deciding whether the store's current
// contents constitute a session. It never caches the credential; every
// question goes back to the store.
type SessionService struct {
	store     ports.CredentialStore
	exchanger ports.TokenExchanger
	clock     ports.Clock
}

func NewSessionService(store ports.CredentialStore, exchanger ports.TokenExchanger, clock ports.Clock) *SessionService {
	if clock == nil {
		clock = ports.SystemClock{}
	}

	return &SessionService{
		store:     store,
		exchanger: exchanger,
		clock:     clock,
	}
}

func (s *SessionService) Login(ctx context.Context, role domain.Role, username string, password string) (domain.Credential, error) {
	cred, err := s.exchanger.Login(ctx, role, username, password)
	if err != nil {
		// A failed exchange leaves any previously stored credential alone.
		return domain.Credential{}, fmt.Errorf("login: %w", err)
	}

	if err := s.store.Save(ctx, cred); err != nil {
		return domain.Credential{}, fmt.Errorf("save credential: %w", err)
	}

	return cred, nil
}

// Logout invalidates the session locally. The server is never told; revoking
// the token server-side would be an additive change here, not a new contract.
func (s *SessionService) Logout(ctx context.Context) error {
	if err := s.store.Clear(ctx); err != nil {
		return fmt.Errorf("clear credential: %w", err)
	}

	return nil
}

func (s *SessionService) CurrentSession(ctx context.Context) (domain.Session, error) {
	cred, err := s.store.Load(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrNoCredential) {
			return domain.AnonymousSession(), nil
		}
		return domain.Session{}, fmt.Errorf("load credential: %w", err)
	}

	return domain.AuthenticatedSession(cred), nil
}

// Status is CurrentSession stamped with the wall clock, for rendering.
func (s *SessionService) Status(ctx context.Context) (SessionStatus, error) {
	session, err := s.CurrentSession(ctx)
	if err != nil {
		return SessionStatus{}, err
	}

	return SessionStatus{Session: session, CheckedAt: s.clock.Now()}, nil
}
