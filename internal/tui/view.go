package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.state {
	case StateHabits:
		content = m.viewHabits()
	case StateMood:
		content = m.viewMood()
	case StateWater:
		content = m.viewWater()
	case StateStats:
		content = m.viewStats()
	case StateAddHabit:
		content = m.form.View()
	}

	footer := ""
	if m.err != nil {
		footer = dangerStyle.Render("Error: " + m.err.Error())
	} else if m.status != "" {
		footer = m.theme.status().Render(m.status)
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewTabs(),
		docStyle.Render(content),
		footer,
		m.help.View(m),
	)
}

func (m Model) viewTabs() string {
	tabs := make([]string, 0, len(tabTitles)+1)
	active := m.state
	if active == StateAddHabit {
		active = StateHabits
	}
	for i, title := range tabTitles {
		if active == SessionState(i) {
			tabs = append(tabs, m.theme.activeTab().Render(title))
		} else {
			tabs = append(tabs, m.theme.inactiveTab().Render(title))
		}
	}
	tabs = append(tabs, m.theme.inactiveTab().Render(m.dashboard.Date))
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewHabits() string {
	s := m.dashboard.Summary
	header := m.theme.heading().Render(fmt.Sprintf("%d/%d done (%d%%)", s.Completed, s.Total, s.Percent()))
	return lipgloss.JoinVertical(lipgloss.Left, header, "", m.habits.View())
}

func (m Model) viewMood() string {
	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		m.moods.ListView(),
		"    ",
		m.moods.TodayView(),
	)
}

func (m Model) viewWater() string {
	h := m.dashboard.Hydration
	var b strings.Builder
	b.WriteString(m.theme.heading().Render("Hydration"))
	b.WriteString("\n\n")
	b.WriteString(m.water.ViewAs(float64(h.Percent()) / 100))
	fmt.Fprintf(&b, "\n\n%d / %d ml", h.IntakeMl, h.DailyTargetMl)
	if r := h.RemainingMl(); r > 0 {
		fmt.Fprintf(&b, "  (%d ml to go)", r)
	} else {
		b.WriteString("  Daily goal reached 🎉")
	}
	return b.String()
}

func (m Model) viewStats() string {
	s := m.summary
	var b strings.Builder
	b.WriteString(m.theme.heading().Render(fmt.Sprintf("Last %d days", s.Days)))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "Habit completion  %.0f%%\n", s.AverageCompletion)
	if s.BestHabit != nil {
		fmt.Fprintf(&b, "Best habit        %s (%d%%)\n", s.BestHabit.Name, s.BestHabit.Percent)
	}
	if s.AverageMood > 0 {
		fmt.Fprintf(&b, "Mood              %.1f/5.0 %s %s\n", s.AverageMood, s.Descriptor.Emoji, s.Descriptor.Label)
	} else {
		b.WriteString("Mood              no entries\n")
	}
	fmt.Fprintf(&b, "Positive streak   %d day(s)\n", s.PositiveStreak)
	if s.MostFrequent != nil {
		fmt.Fprintf(&b, "Most frequent     %s %s ×%d\n", s.MostFrequent.Emoji, s.MostFrequent.Label, s.MostFrequent.Count)
	}

	b.WriteString("\n")
	for _, d := range s.Completion {
		if s.Days > 7 && d.Percent == 0 {
			continue
		}
		fmt.Fprintf(&b, "%s  %s\n", d.Date[5:], strings.Repeat("▇", d.Percent/10))
	}
	return b.String()
}
