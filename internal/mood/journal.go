// Package mood is the per-day mood journal.
package mood

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/julianstephens/daywell/internal/errors"
	"github.com/julianstephens/daywell/internal/logger"
	"github.com/julianstephens/daywell/internal/models"
	"github.com/julianstephens/daywell/internal/storage"
	"github.com/julianstephens/daywell/internal/utils"
)

type Journal struct {
	provider storage.Provider
	clock    utils.Clock
	loc      *time.Location
}

func New(provider storage.Provider, clock utils.Clock, loc *time.Location) *Journal {
	if loc == nil {
		loc = time.Local
	}
	return &Journal{
		provider: provider,
		clock:    clock,
		loc:      loc,
	}
}

// LogEntry prepends a new entry to today's bucket. The bucket is the date at
// logging time. An empty emoji is filled from the catalog by label.
func (j *Journal) LogEntry(emoji, label, note string) (models.MoodEntry, error) {
	emoji = strings.TrimSpace(emoji)
	label = strings.TrimSpace(label)
	if emoji == "" {
		m, ok := Lookup(label)
		if !ok {
			return models.MoodEntry{}, errors.Validation("mood", "unknown mood %q, choose one of %s", label, strings.Join(Labels(), ", "))
		}
		emoji, label = m.Emoji, m.Label
	}

	now := j.clock()
	today := utils.DateKey(now, j.loc)

	entries, err := j.EntriesForDate(today)
	if err != nil {
		return models.MoodEntry{}, err
	}

	entry := models.MoodEntry{
		Emoji:     emoji,
		Label:     label,
		Timestamp: now.UnixMilli(),
		Note:      strings.TrimSpace(note),
	}
	entries = append([]models.MoodEntry{entry}, entries...)

	raw, err := json.Marshal(entries)
	if err != nil {
		return models.MoodEntry{}, err
	}
	if err := j.provider.Set(storage.PartitionMood, today, string(raw)); err != nil {
		return models.MoodEntry{}, fmt.Errorf("failed to save mood entry: %w", err)
	}

	logger.Debug("Logged mood", "date", today, "label", label)
	return entry, nil
}

// EntriesForDate returns date's entries, newest first. Dates without data
// yield an empty slice.
func (j *Journal) EntriesForDate(date string) ([]models.MoodEntry, error) {
	raw, ok, err := j.provider.Get(storage.PartitionMood, date)
	if err != nil {
		return nil, fmt.Errorf("failed to read mood entries for %s: %w", date, err)
	}
	if !ok || strings.TrimSpace(raw) == "" {
		return []models.MoodEntry{}, nil
	}

	var entries []models.MoodEntry
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		errors.Recovered(string(storage.PartitionMood), date, err)
		return []models.MoodEntry{}, nil
	}
	if entries == nil {
		entries = []models.MoodEntry{}
	}
	return entries, nil
}

// Today returns today's entries.
func (j *Journal) Today() ([]models.MoodEntry, error) {
	return j.EntriesForDate(j.today())
}

// AverageScoreForDate is the mean score of date's scorable entries, or 0.
func (j *Journal) AverageScoreForDate(date string) (float64, error) {
	entries, err := j.EntriesForDate(date)
	if err != nil {
		return 0, err
	}
	return AverageScore(entries), nil
}

// AverageScore is the mean score of the scorable entries, or 0.
func AverageScore(entries []models.MoodEntry) float64 {
	sum, n := 0, 0
	for _, e := range entries {
		if s, ok := Score(e.Label, e.Emoji); ok {
			sum += s
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return float64(sum) / float64(n)
}

// RepresentativeEmojiPerDay maps each day-of-month that has entries to its
// most frequent emoji. Ties go to the emoji seen first in the bucket.
func (j *Journal) RepresentativeEmojiPerDay(year int, month time.Month) (map[int]string, error) {
	result := map[int]string{}
	for day, date := range utils.MonthDates(year, month) {
		entries, err := j.EntriesForDate(date)
		if err != nil {
			return nil, err
		}
		if emoji, ok := MostFrequentEmoji(entries); ok {
			result[day+1] = emoji
		}
	}
	return result, nil
}

// MostFrequentEmoji picks the most common emoji, first seen on ties.
func MostFrequentEmoji(entries []models.MoodEntry) (string, bool) {
	if len(entries) == 0 {
		return "", false
	}
	counts := map[string]int{}
	var order []string
	for _, e := range entries {
		if _, seen := counts[e.Emoji]; !seen {
			order = append(order, e.Emoji)
		}
		counts[e.Emoji]++
	}

	best := order[0]
	for _, emoji := range order[1:] {
		if counts[emoji] > counts[best] {
			best = emoji
		}
	}
	return best, true
}

// ShareSummary renders date's entries as shareable text. ok is false when
// nothing was logged.
func (j *Journal) ShareSummary(date string) (string, bool, error) {
	entries, err := j.EntriesForDate(date)
	if err != nil {
		return "", false, err
	}
	if len(entries) == 0 {
		return "", false, nil
	}
	day, err := utils.ParseDate(date, j.loc)
	if err != nil {
		return "", false, err
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Mood summary for %s\n\n", day.Format("January 2, 2006"))
	for _, e := range entries {
		fmt.Fprintf(&sb, "%s %s — %s\n", e.Emoji, e.Label, time.UnixMilli(e.Timestamp).In(j.loc).Format("3:04 PM"))
	}
	return sb.String(), true, nil
}

// Dates lists every date with a bucket, oldest first.
func (j *Journal) Dates() ([]string, error) {
	return j.provider.Keys(storage.PartitionMood, "")
}

func (j *Journal) today() string {
	return utils.Today(j.clock, j.loc)
}
