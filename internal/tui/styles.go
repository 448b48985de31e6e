package tui

import "github.com/charmbracelet/lipgloss"

// theme holds the colours that differ between light and dark mode.
type theme struct {
	accent lipgloss.Color
	muted  lipgloss.Color
	tabBg  lipgloss.Color
}

var (
	darkTheme  = theme{accent: lipgloss.Color("205"), muted: lipgloss.Color("240"), tabBg: lipgloss.Color("236")}
	lightTheme = theme{accent: lipgloss.Color("125"), muted: lipgloss.Color("245"), tabBg: lipgloss.Color("254")}

	dangerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	docStyle = lipgloss.NewStyle().Padding(1, 2)
)

func themeFor(dark bool) theme {
	if dark {
		return darkTheme
	}
	return lightTheme
}

func (t theme) activeTab() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(t.accent).
		Background(t.tabBg).
		Padding(0, 1).
		Bold(true)
}

func (t theme) inactiveTab() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(t.muted).
		Padding(0, 1)
}

func (t theme) heading() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.accent).Bold(true)
}

func (t theme) status() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.muted).Italic(true)
}
