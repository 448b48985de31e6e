package habits

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/daywell/internal/models"
)

type AddHabitMsg struct{}

type ToggleHabitMsg struct {
	ID        string
	Completed bool
}

type DeleteHabitMsg struct {
	ID string
}

type Item struct {
	Habit models.Habit
}

func (i Item) Title() string {
	if i.Habit.Completed {
		return "✓ " + i.Habit.Name
	}
	return "○ " + i.Habit.Name
}

func (i Item) Description() string {
	if i.Habit.Description != nil && *i.Habit.Description != "" {
		return *i.Habit.Description
	}
	if i.Habit.Completed {
		return "completed today"
	}
	return "not completed today"
}

func (i Item) FilterValue() string { return i.Habit.Name }

type KeyMap struct {
	Add    key.Binding
	Toggle key.Binding
	Delete key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("x", "enter"),
			key.WithHelp("x/enter", "toggle done"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
	}
}

type Model struct {
	list list.Model
	keys KeyMap
}

func New(habits []models.Habit, width, height int) Model {
	l := list.New(items(habits), list.NewDefaultDelegate(), width, height)
	l.Title = "Habits"
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)

	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Add, keys.Toggle, keys.Delete}
	}

	return Model{list: l, keys: keys}
}

func items(habits []models.Habit) []list.Item {
	out := make([]list.Item, len(habits))
	for i, h := range habits {
		out[i] = Item{Habit: h}
	}
	return out
}

func (m *Model) SetHabits(habits []models.Habit) {
	m.list.SetItems(items(habits))
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}

func (m Model) Keys() []key.Binding {
	return []key.Binding{m.keys.Add, m.keys.Toggle, m.keys.Delete}
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.Add):
			return m, func() tea.Msg { return AddHabitMsg{} }
		case key.Matches(msg, m.keys.Toggle):
			if i, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return ToggleHabitMsg{ID: i.Habit.ID, Completed: !i.Habit.Completed} }
			}
			return m, nil
		case key.Matches(msg, m.keys.Delete):
			if i, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return DeleteHabitMsg{ID: i.Habit.ID} }
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if len(m.list.Items()) == 0 {
		return "No habits yet. Press 'a' to add one."
	}
	return m.list.View()
}
