package session

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title     lipgloss.Style
	identity  lipgloss.Style
	roleKey   lipgloss.Style
	roleTag   lipgloss.Style
	granted   lipgloss.Style
	denied    lipgloss.Style
	meta      lipgloss.Style
	anonymous lipgloss.Style
	section   lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:     lipgloss.NewStyle().Bold(true),
		identity:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		roleKey:   lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		roleTag:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("159")),
		granted:   lipgloss.NewStyle().Foreground(lipgloss.Color("78")),
		denied:    lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		meta:      lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		anonymous: lipgloss.NewStyle().Faint(true),
		section:   lipgloss.NewStyle().MarginTop(1),
	}
}
