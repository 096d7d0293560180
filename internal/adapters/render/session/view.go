package session

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/hugokent/staffctl/internal/application"
	"github.com/hugokent/staffctl/internal/domain"
)

type RenderOptions struct {
	// ShowAccess appends the per-command-area access overview.
	ShowAccess bool
}

type accessArea struct {
	label       string
	requirement domain.RoleRequirement
}

func accessAreas() []accessArea {
	return []accessArea{
		{label: "attendance", requirement: domain.RequireRoles(domain.RoleEmployee, domain.RoleHR, domain.RoleAdmin)},
		{label: "payroll", requirement: domain.RequireRoles(domain.RoleEmployee, domain.RoleHR, domain.RoleAdmin)},
		{label: "leave requests", requirement: domain.RequireRoles(domain.RoleEmployee, domain.RoleHR, domain.RoleAdmin)},
		{label: "leave review", requirement: domain.RequireRoles(domain.RoleHR, domain.RoleAdmin)},
		{label: "staff directory", requirement: domain.RequireRoles(domain.RoleHR, domain.RoleAdmin)},
	}
}

func renderView(status application.SessionStatus, opts RenderOptions, s styles) string {
	lines := []string{
		s.title.Render("staffctl session"),
	}

	if status.Session.Anonymous() {
		lines = append(lines,
			s.anonymous.Render("Not signed in."),
			s.meta.Render("Run `staffctl login --role <employee|hr|admin>` to start a session."),
		)
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	lines = append(lines,
		s.identity.Render(identityLine(status.Session)),
		fmt.Sprintf("%s %s", s.roleKey.Render("role:"), s.roleTag.Render(string(status.Session.Role))),
	)

	if opts.ShowAccess {
		lines = append(lines, s.section.Render(renderAccess(status.Session.Role, s)))
	}

	if !status.CheckedAt.IsZero() {
		lines = append(lines, s.meta.Render("checked at "+status.CheckedAt.Format("2006-01-02 15:04:05 MST")))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func identityLine(session domain.Session) string {
	name := session.DisplayName
	if name == "" {
		name = "(no display name)"
	}
	if session.SubjectID == "" {
		return name
	}
	return fmt.Sprintf("%s (#%s)", name, session.SubjectID)
}

func renderAccess(role domain.Role, s styles) string {
	lines := make([]string, 0, len(accessAreas())+1)
	lines = append(lines, s.roleKey.Render("access:"))

	for _, area := range accessAreas() {
		if area.requirement.Allows(role) {
			lines = append(lines, s.granted.Render("  + "+area.label))
		} else {
			lines = append(lines, s.denied.Render("  - "+area.label))
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
