package domain

// Session is the logical state derived from a stored Credential. It is never
// persisted; callers recompute it from the store so a logout performed
// elsewhere is visible on the next read.
type Session struct {
	Role        Role
	SubjectID   string
	DisplayName string
	anonymous   bool
}

func AnonymousSession() Session {
	return Session{anonymous: true}
}

func AuthenticatedSession(cred Credential) Session {
	return Session{
		Role:        cred.Role,
		SubjectID:   cred.SubjectID,
		DisplayName: cred.DisplayName,
	}
}

func (s Session) Anonymous() bool {
	return s.anonymous
}

// RoleRequirement is the set of role tags a protected command subtree accepts,
// fixed at construction time and tested by exact membership.
type RoleRequirement map[Role]struct{}

func RequireRoles(roles ...Role) RoleRequirement {
	req := make(RoleRequirement, len(roles))
	for _, role := range roles {
		req[role] = struct{}{}
	}
	return req
}

func (r RoleRequirement) Allows(role Role) bool {
	_, ok := r[role]
	return ok
}
