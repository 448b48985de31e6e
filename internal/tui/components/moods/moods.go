package moods

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/daywell/internal/models"
	"github.com/julianstephens/daywell/internal/mood"
)

type LogMoodMsg struct {
	Label string
}

type Item struct {
	Mood mood.Mood
}

func (i Item) Title() string { return i.Mood.Emoji + "  " + i.Mood.Label }

func (i Item) Description() string {
	score, _ := mood.Score(i.Mood.Label, i.Mood.Emoji)
	return fmt.Sprintf("score %d/5", score)
}

func (i Item) FilterValue() string { return i.Mood.Label }

type Model struct {
	list    list.Model
	log     key.Binding
	entries []models.MoodEntry
	loc     *time.Location
}

func New(width, height int, loc *time.Location) Model {
	catalog := make([]list.Item, len(mood.Catalog))
	for i, m := range mood.Catalog {
		catalog[i] = Item{Mood: m}
	}

	d := list.NewDefaultDelegate()
	d.ShowDescription = false
	d.SetSpacing(0)
	l := list.New(catalog, d, width, height)
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)

	return Model{
		list: l,
		log: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "log mood"),
		),
		loc: loc,
	}
}

func (m *Model) SetEntries(entries []models.MoodEntry) {
	m.entries = entries
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width/2, height)
}

func (m Model) Keys() []key.Binding {
	return []key.Binding{m.log}
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && key.Matches(msg, m.log) {
		if i, ok := m.list.SelectedItem().(Item); ok {
			return m, func() tea.Msg { return LogMoodMsg{Label: i.Mood.Label} }
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// TodayView lists today's entries newest first with the day's average.
func (m Model) TodayView() string {
	if len(m.entries) == 0 {
		return "No moods logged today."
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Today (avg %.1f/5.0)\n\n", mood.AverageScore(m.entries))
	for _, e := range m.entries {
		at := time.UnixMilli(e.Timestamp).In(m.loc).Format("3:04 PM")
		fmt.Fprintf(&b, "%8s  %s %s\n", at, e.Emoji, e.Label)
	}
	return b.String()
}

func (m Model) ListView() string {
	return m.list.View()
}
