package models

// MoodEntry is one immutable journal entry. Timestamp is Unix milliseconds.
type MoodEntry struct {
	Emoji     string `json:"emoji" yaml:"emoji"`
	Label     string `json:"label" yaml:"label"`
	Timestamp int64  `json:"timestamp" yaml:"timestamp"`
	Note      string `json:"note" yaml:"note"`
}

// MoodFrequency is the most common mood label over a window.
type MoodFrequency struct {
	Label string `json:"label" yaml:"label"`
	Emoji string `json:"emoji" yaml:"emoji"`
	Count int    `json:"count" yaml:"count"`
}

// MoodDescriptor is the qualitative band for an average mood score.
type MoodDescriptor struct {
	Label string `json:"label" yaml:"label"`
	Emoji string `json:"emoji" yaml:"emoji"`
}
