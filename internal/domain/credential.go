package domain

type Role string

const (
	RoleEmployee Role = "EMPLOYEE"
	RoleHR       Role = "HR"
	RoleAdmin    Role = "ADMIN"
)

// Roles returns the closed set of role tags the server may issue.
func Roles() []Role {
	return []Role{RoleEmployee, RoleHR, RoleAdmin}
}

func (r Role) Valid() bool {
	switch r {
	case RoleEmployee, RoleHR, RoleAdmin:
		return true
	}
	return false
}

// Credential is the persisted unit of identity. Token and Role must both be
// present for the credential to count as one; anything less is treated as
// absent by the stores.
type Credential struct {
	Token        string
	RefreshToken string
	Role         Role
	SubjectID    string
	DisplayName  string
}

func (c Credential) Complete() bool {
	return c.Token != "" && c.Role != ""
}
