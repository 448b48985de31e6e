package tui

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/daywell/internal/analytics"
	"github.com/julianstephens/daywell/internal/constants"
	"github.com/julianstephens/daywell/internal/logger"
	"github.com/julianstephens/daywell/internal/tui/components/habits"
	"github.com/julianstephens/daywell/internal/tui/components/moods"
)

var errEmptyName = errors.New("name cannot be empty")

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if ws, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = ws.Width
		m.height = ws.Height
		m.help.Width = ws.Width
		m.water.Width = max(min(ws.Width-8, 60), 10)
		m.habits.SetSize(ws.Width-4, ws.Height-6)
		m.moods.SetSize(ws.Width-4, ws.Height-6)
		return m, nil
	}

	if m.state == StateAddHabit {
		return m.updateAddHabit(msg)
	}

	switch msg := msg.(type) {
	case habits.AddHabitMsg:
		m.habitForm = &HabitFormModel{}
		m.form = NewHabitForm(m.habitForm)
		m.state = StateAddHabit
		return m, m.form.Init()

	case habits.ToggleHabitMsg:
		m.apply(m.svc.Habits.ToggleCompleted(msg.ID, msg.Completed))
		return m, nil

	case habits.DeleteHabitMsg:
		err := m.svc.Habits.Remove(msg.ID)
		if err == nil {
			m.status = "Habit deleted"
		}
		m.apply(err)
		return m, nil

	case moods.LogMoodMsg:
		entry, err := m.svc.Mood.LogEntry("", msg.Label, "")
		if err == nil {
			m.status = fmt.Sprintf("Logged %s %s", entry.Emoji, entry.Label)
		}
		m.apply(err)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Tab):
			m.switchTab(1)
			return m, nil
		case key.Matches(msg, m.keys.ShiftTab):
			m.switchTab(tabCount - 1)
			return m, nil
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}
	}

	var cmd tea.Cmd
	switch m.state {
	case StateHabits:
		m.habits, cmd = m.habits.Update(msg)
	case StateMood:
		m.moods, cmd = m.moods.Update(msg)
	case StateWater:
		cmd = m.updateWater(msg)
	case StateStats:
		if msg, ok := msg.(tea.KeyMsg); ok && key.Matches(msg, m.keys.Period) {
			if m.period == analytics.PeriodWeekly {
				m.period = analytics.PeriodMonthly
			} else {
				m.period = analytics.PeriodWeekly
			}
			m.refresh()
		}
	}
	return m, cmd
}

func (m *Model) switchTab(step int) {
	m.state = SessionState((int(m.state) + step) % tabCount)
	m.status = ""
	m.refresh()
}

// apply records the outcome of a mutation and reloads the dashboard.
func (m *Model) apply(err error) {
	if err != nil {
		logger.Warn("TUI action failed", "error", err)
		m.status = err.Error()
	}
	m.refresh()
}

func (m *Model) updateWater(msg tea.Msg) tea.Cmd {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	var err error
	switch {
	case key.Matches(km, m.keys.Glass):
		_, err = m.svc.Hydration.AddIntake(constants.GlassMl)
	case key.Matches(km, m.keys.Double):
		_, err = m.svc.Hydration.AddIntake(constants.DoubleGlassMl)
	case key.Matches(km, m.keys.Reset):
		_, err = m.svc.Hydration.ResetToday()
	default:
		return nil
	}
	m.apply(err)
	return nil
}

func (m Model) updateAddHabit(msg tea.Msg) (tea.Model, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok && km.Type == tea.KeyEsc {
		m.state = StateHabits
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		h, err := m.svc.Habits.Add(m.habitForm.Name, m.habitForm.Description)
		if err != nil {
			// Stay in the form so the user can fix the name or cancel.
			m.status = err.Error()
			m.form.State = huh.StateNormal
			return m, cmd
		}
		m.status = "Added " + h.Name
		m.state = StateHabits
		m.refresh()
	case huh.StateAborted:
		m.state = StateHabits
	}
	return m, cmd
}
