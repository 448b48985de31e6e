// Package tui is the interactive dashboard. Every action goes through the
// same tracker operations as the CLI.
package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/daywell/internal/analytics"
	"github.com/julianstephens/daywell/internal/tracker"
	"github.com/julianstephens/daywell/internal/tui/components/habits"
	"github.com/julianstephens/daywell/internal/tui/components/moods"
)

type SessionState int

const (
	StateHabits SessionState = iota
	StateMood
	StateWater
	StateStats
	StateAddHabit
)

// tabCount is the number of tab states; states after it are overlays.
const tabCount = 4

var tabTitles = []string{"Habits", "Mood", "Water", "Stats"}

type HabitFormModel struct {
	Name        string
	Description string
}

type Model struct {
	svc       *tracker.Service
	state     SessionState
	keys      KeyMap
	help      help.Model
	theme     theme
	habits    habits.Model
	moods     moods.Model
	water     progress.Model
	form      *huh.Form
	habitForm *HabitFormModel
	dashboard tracker.Dashboard
	period    analytics.Period
	summary   analytics.Summary
	status    string
	err       error
	quitting  bool
	width     int
	height    int
}

func NewModel(svc *tracker.Service) Model {
	m := Model{
		svc:    svc,
		state:  StateHabits,
		keys:   DefaultKeyMap(),
		help:   help.New(),
		habits: habits.New(nil, 0, 0),
		moods:  moods.New(0, 0, svc.Location()),
		water:  progress.New(progress.WithDefaultGradient()),
		period: analytics.PeriodWeekly,
	}
	m.refresh()
	return m
}

// refresh reloads the dashboard, applying rollover when the day changed.
func (m *Model) refresh() {
	d, err := m.svc.Dashboard()
	if err != nil {
		m.err = err
		return
	}
	m.dashboard = d
	m.theme = themeFor(d.Settings.DarkMode)
	m.habits.SetHabits(d.Habits)
	m.moods.SetEntries(d.Moods)

	s, err := m.svc.Analytics.Summarize(m.period, d.Habits)
	if err != nil {
		m.err = err
		return
	}
	m.summary = s
	m.err = nil
}

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.keys.Tab, m.keys.Quit, m.keys.Help}
	return append(keys, m.actionKeys()...)
}

func (m Model) FullHelp() [][]key.Binding {
	global := []key.Binding{m.keys.Tab, m.keys.ShiftTab, m.keys.Quit, m.keys.Help}
	navigation := []key.Binding{m.keys.Up, m.keys.Down}
	return [][]key.Binding{global, navigation, m.actionKeys()}
}

func (m Model) actionKeys() []key.Binding {
	switch m.state {
	case StateHabits:
		return m.habits.Keys()
	case StateMood:
		return m.moods.Keys()
	case StateWater:
		return []key.Binding{m.keys.Glass, m.keys.Double, m.keys.Reset}
	case StateStats:
		return []key.Binding{m.keys.Period}
	}
	return nil
}

func (m Model) Init() tea.Cmd {
	return nil
}

func NewHabitForm(f *HabitFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Habit name").
				Value(&f.Name).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return errEmptyName
					}
					return nil
				}),
			huh.NewInput().
				Title("Description (optional)").
				Value(&f.Description),
		),
	)
}
