package moods

import (
	"strings"
	"time"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/daywell/internal/cli"
	"github.com/julianstephens/daywell/internal/errors"
	"github.com/julianstephens/daywell/internal/mood"
	"github.com/julianstephens/daywell/internal/utils"
)

type MoodCmd struct {
	Log      MoodLogCmd      `cmd:"" help:"Log how you feel right now."`
	List     MoodListCmd     `cmd:"" help:"List mood entries for a day." default:"1"`
	Calendar MoodCalendarCmd `cmd:"" help:"Show the most frequent mood of each day in a month."`
	Share    MoodShareCmd    `cmd:"" help:"Print a shareable summary of a day's moods."`
	Catalog  MoodCatalogCmd  `cmd:"" help:"List the moods you can log."`
}

// pickMood asks for a mood interactively. Replaced in tests.
var pickMood = func() (string, error) {
	var label string
	options := make([]huh.Option[string], 0, len(mood.Catalog))
	for _, m := range mood.Catalog {
		options = append(options, huh.NewOption(m.Emoji+"  "+m.Label, m.Label))
	}
	err := huh.NewSelect[string]().
		Title("How are you feeling?").
		Options(options...).
		Value(&label).
		Run()
	return label, err
}

type MoodLogCmd struct {
	Label string `arg:"" optional:"" help:"Mood label, e.g. Happy. Prompts when omitted."`
	Emoji string `help:"Custom emoji instead of the catalog one."`
	Note  string `short:"n" help:"Optional note."`
}

func (c *MoodLogCmd) Run(ctx *cli.Context) error {
	svc, err := ctx.Service()
	if err != nil {
		return err
	}

	label := c.Label
	if strings.TrimSpace(label) == "" && c.Emoji == "" {
		if label, err = pickMood(); err != nil {
			return err
		}
	}

	entry, err := svc.Mood.LogEntry(c.Emoji, label, c.Note)
	if err != nil {
		return err
	}
	at := time.UnixMilli(entry.Timestamp).In(svc.Location()).Format("3:04 PM")
	ctx.Printf("Logged %s %s at %s\n", entry.Emoji, entry.Label, at)

	avg, err := svc.Mood.AverageScoreForDate(svc.Today())
	if err != nil {
		return err
	}
	if avg > 0 {
		ctx.Printf("Today's average mood: %.1f/5.0\n", avg)
	}
	return nil
}

type MoodListCmd struct {
	Date string `help:"Date in YYYY-MM-DD format (default: today)."`
}

func (c *MoodListCmd) Run(ctx *cli.Context) error {
	svc, err := ctx.Service()
	if err != nil {
		return err
	}

	date, err := resolveDate(c.Date, svc.Today())
	if err != nil {
		return err
	}
	entries, err := svc.Mood.EntriesForDate(date)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		ctx.Printf("No moods logged on %s.\n", date)
		return nil
	}

	ctx.Printf("Moods for %s:\n", date)
	for _, e := range entries {
		at := time.UnixMilli(e.Timestamp).In(svc.Location()).Format("3:04 PM")
		ctx.Printf("  %8s  %s %s", at, e.Emoji, e.Label)
		if e.Note != "" {
			ctx.Printf("  - %s", e.Note)
		}
		ctx.Println()
	}
	avg := mood.AverageScore(entries)
	ctx.Printf("\nAverage: %.1f/5.0\n", avg)
	return nil
}

type MoodCalendarCmd struct {
	Month string `help:"Month in YYYY-MM format (default: this month)."`
}

func (c *MoodCalendarCmd) Run(ctx *cli.Context) error {
	svc, err := ctx.Service()
	if err != nil {
		return err
	}

	year, month := svc.Now().Year(), svc.Now().Month()
	if c.Month != "" {
		t, err := time.Parse("2006-01", c.Month)
		if err != nil {
			return errors.Validation("month", "%q is not in YYYY-MM format", c.Month)
		}
		year, month = t.Year(), t.Month()
	}

	emojis, err := svc.Mood.RepresentativeEmojiPerDay(year, month)
	if err != nil {
		return err
	}

	ctx.Printf("%s %d\n", month, year)
	ctx.Println("  Mo  Tu  We  Th  Fr  Sa  Su")
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	offset := (int(first.Weekday()) + 6) % 7
	ctx.Printf("%s", strings.Repeat("    ", offset))

	days := utils.DaysInMonth(year, month)
	for day := 1; day <= days; day++ {
		if e, ok := emojis[day]; ok {
			ctx.Printf("  %s", e)
		} else {
			ctx.Printf("  %2d", day)
		}
		if (offset+day)%7 == 0 {
			ctx.Println()
		}
	}
	if (offset+days)%7 != 0 {
		ctx.Println()
	}
	return nil
}

type MoodShareCmd struct {
	Date string `help:"Date in YYYY-MM-DD format (default: today)."`
}

func (c *MoodShareCmd) Run(ctx *cli.Context) error {
	svc, err := ctx.Service()
	if err != nil {
		return err
	}

	date, err := resolveDate(c.Date, svc.Today())
	if err != nil {
		return err
	}
	text, ok, err := svc.Mood.ShareSummary(date)
	if err != nil {
		return err
	}
	if !ok {
		ctx.Println("No moods logged to share.")
		return nil
	}
	ctx.Printf("%s", text)
	return nil
}

type MoodCatalogCmd struct{}

func (c *MoodCatalogCmd) Run(ctx *cli.Context) error {
	for _, m := range mood.Catalog {
		score, _ := mood.Score(m.Label, m.Emoji)
		ctx.Printf("  %s  %-12s %d\n", m.Emoji, m.Label, score)
	}
	return nil
}

func resolveDate(date, today string) (string, error) {
	if date == "" {
		return today, nil
	}
	if _, err := utils.ParseDate(date, time.UTC); err != nil {
		return "", errors.Validation("date", "%v", err)
	}
	return date, nil
}
