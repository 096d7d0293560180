package application

import (
	"context"

	"github.com/hugokent/staffctl/internal/domain"
)

type Decision int

const (
	// DecisionSignIn: nobody is signed in; the caller should route to login.
	DecisionSignIn Decision = iota
	// DecisionAllow: the session's role is in the requirement set.
	DecisionAllow
	// DecisionForbid: the user is known, just not permitted.
	DecisionForbid
)

// Guard is the role gate in front of protected command subtrees. It decides
// from the store's current contents on every invocation, so a logout done
// elsewhere is observed by the very next guarded command. It is a usability
// layer; the server enforces authorization for real.
type Guard struct {
	sessions *SessionService
}

func NewGuard(sessions *SessionService) *Guard {
	return &Guard{sessions: sessions}
}

func (g *Guard) Authorize(ctx context.Context, requirement domain.RoleRequirement) (Decision, domain.Session, error) {
	session, err := g.sessions.CurrentSession(ctx)
	if err != nil {
		return DecisionSignIn, domain.Session{}, err
	}

	if session.Anonymous() {
		return DecisionSignIn, session, nil
	}
	if requirement.Allows(session.Role) {
		return DecisionAllow, session, nil
	}

	return DecisionForbid, session, nil
}
