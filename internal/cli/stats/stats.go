package stats

import (
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/julianstephens/daywell/internal/analytics"
	"github.com/julianstephens/daywell/internal/cli"
)

type StatsCmd struct {
	Period string `arg:"" optional:"" default:"weekly" help:"weekly or monthly."`
	Format string `short:"f" enum:"text,json,yaml" default:"text" help:"Output format (text, json, yaml)."`
}

func (c *StatsCmd) Run(ctx *cli.Context) error {
	period, err := analytics.ParsePeriod(c.Period)
	if err != nil {
		return err
	}

	svc, err := ctx.Service()
	if err != nil {
		return err
	}
	habits, err := svc.Habits.List()
	if err != nil {
		return err
	}
	summary, err := svc.Analytics.Summarize(period, habits)
	if err != nil {
		return err
	}

	switch c.Format {
	case "json":
		enc := json.NewEncoder(ctx.Writer())
		enc.SetIndent("", "  ")
		return enc.Encode(summary)
	case "yaml":
		enc := yaml.NewEncoder(ctx.Writer())
		enc.SetIndent(2)
		defer enc.Close()
		return enc.Encode(summary)
	}

	printText(ctx, summary)
	return nil
}

func printText(ctx *cli.Context, s analytics.Summary) {
	title := strings.ToUpper(string(s.Period[:1])) + string(s.Period[1:])
	ctx.Printf("%s summary (last %d days)\n\n", title, s.Days)

	ctx.Println("Habit completion:")
	for _, d := range s.Completion {
		ctx.Printf("  %s  %s %3d%%\n", d.Date, bar(d.Percent, 10), d.Percent)
	}
	ctx.Printf("  Average: %.0f%%\n", s.AverageCompletion)
	if s.BestHabit != nil {
		ctx.Printf("  Best habit: %s (%d%%)\n", s.BestHabit.Name, s.BestHabit.Percent)
	}

	ctx.Println("\nMood:")
	if s.AverageMood > 0 {
		ctx.Printf("  Average: %.1f/5.0  %s %s\n", s.AverageMood, s.Descriptor.Emoji, s.Descriptor.Label)
	} else {
		ctx.Println("  No moods logged in this period.")
	}
	ctx.Printf("  Positive streak: %s\n", plural(s.PositiveStreak, "day"))
	if s.MostFrequent != nil {
		ctx.Printf("  Most frequent: %s %s (%s)\n", s.MostFrequent.Emoji, s.MostFrequent.Label, plural(s.MostFrequent.Count, "time"))
	}
}

func bar(percent, width int) string {
	filled := percent * width / 100
	return strings.Repeat("■", filled) + strings.Repeat("·", width-filled)
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}
