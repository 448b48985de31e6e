package system

import (
	"fmt"
	"os"
	"strings"

	"github.com/julianstephens/daywell/internal/cli"
	"github.com/julianstephens/daywell/internal/constants"
	"github.com/julianstephens/daywell/internal/prefs"
	"github.com/julianstephens/daywell/internal/storage/backend"
)

// ScheduleCmd prints a crontab entry that runs the reminder trigger at the
// configured hydration interval.
type ScheduleCmd struct {
	LogGlass bool `help:"Schedule automatic glass logging instead of notifications."`
}

var executableFunc = os.Executable

func (c *ScheduleCmd) Run(ctx *cli.Context) error {
	settings, err := prefs.New(ctx.Store).Load()
	if err != nil {
		return err
	}

	expr, err := CronExpression(settings.HydrationIntervalMin)
	if err != nil {
		return err
	}

	exe, err := executableFunc()
	if err != nil || exe == "" {
		exe = constants.AppName
	}

	args := []string{exe}
	switch ctx.Backend.Source {
	case backend.SourceKeyring:
		args = append(args, "--config", constants.KeyringConfigValue)
	case backend.SourceFlag:
		args = append(args, "--config", quote(ctx.Backend.Conn))
	case backend.SourceEnv:
		ctx.Printf("# %s must be set in the cron environment\n", constants.ConnectionEnvVar)
	}
	args = append(args, "remind")
	if c.LogGlass {
		args = append(args, "--log-glass")
	}

	if !settings.RemindersActive() {
		ctx.Println("# Reminders are currently disabled; enable them with 'daywell settings --notifications-enabled --hydration-enabled'")
	}
	ctx.Printf("%s %s\n", expr, strings.Join(args, " "))
	return nil
}

// CronExpression converts a reminder interval into a cron schedule.
func CronExpression(intervalMin int) (string, error) {
	if err := prefs.ValidateInterval(intervalMin); err != nil {
		return "", err
	}
	if intervalMin < 60 {
		return fmt.Sprintf("*/%d * * * *", intervalMin), nil
	}
	hours := intervalMin / 60
	if hours == 1 {
		return "0 * * * *", nil
	}
	return fmt.Sprintf("0 */%d * * *", hours), nil
}

func quote(s string) string {
	if strings.ContainsAny(s, " \t'\"$") {
		return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
	}
	return s
}
