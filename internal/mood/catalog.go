package mood

import "strings"

// Mood is one selectable mood of the catalog.
type Mood struct {
	Label string
	Emoji string
}

// Catalog is the fixed set of moods offered when logging.
var Catalog = []Mood{
	{"Happy", "😊"}, {"Sad", "😢"}, {"Angry", "😠"}, {"Content", "🙂"},
	{"Tired", "😴"}, {"Anxious", "😰"}, {"Cool", "😎"}, {"Overwhelmed", "😣"},
	{"Thoughtful", "🤔"}, {"Excited", "😍"}, {"Peaceful", "😊"}, {"Grateful", "🙏"},
}

// scores maps labels onto a 1..5 scale.
var scores = map[string]int{
	"Happy":       5,
	"Excited":     5,
	"Peaceful":    4,
	"Content":     4,
	"Grateful":    4,
	"Cool":        4,
	"Thoughtful":  3,
	"Tired":       2,
	"Sad":         2,
	"Anxious":     2,
	"Overwhelmed": 1,
	"Angry":       1,
}

// Lookup finds a catalog mood by case-insensitive label.
func Lookup(label string) (Mood, bool) {
	label = strings.TrimSpace(label)
	for _, m := range Catalog {
		if strings.EqualFold(m.Label, label) {
			return m, true
		}
	}
	return Mood{}, false
}

// LookupEmoji finds the first catalog mood using emoji.
func LookupEmoji(emoji string) (Mood, bool) {
	for _, m := range Catalog {
		if m.Emoji == emoji {
			return m, true
		}
	}
	return Mood{}, false
}

// Score rates an entry by its label, then by its emoji. Unrecognized
// entries report ok=false and are left out of averages.
func Score(label, emoji string) (int, bool) {
	if s, ok := scores[label]; ok {
		return s, true
	}
	if m, ok := LookupEmoji(emoji); ok {
		return scores[m.Label], true
	}
	return 0, false
}

// Labels lists catalog labels in display order.
func Labels() []string {
	labels := make([]string, len(Catalog))
	for i, m := range Catalog {
		labels[i] = m.Label
	}
	return labels
}
