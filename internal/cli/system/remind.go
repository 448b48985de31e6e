package system

import (
	"errors"
	"fmt"

	"github.com/julianstephens/daywell/internal/cli"
	"github.com/julianstephens/daywell/internal/hydration"
	"github.com/julianstephens/daywell/internal/notifier"
)

// RemindCmd is what cron, systemd or launchd runs every hydration interval.
type RemindCmd struct {
	LogGlass bool `help:"Log one glass of water instead of sending a notification."`
	DryRun   bool `help:"Print the notification to stdout instead of sending it."`
	Duration int  `help:"How long the tray shows the notification, in milliseconds." default:"5000"`
}

// newNotifier is replaced in tests.
var newNotifier = func() hydration.Notifier {
	return notifier.New()
}

type printNotifier struct {
	ctx *cli.Context
}

func (p printNotifier) Notify(text string, durationMs int) error {
	p.ctx.Printf("[DryRun] %s\n", text)
	return nil
}

func (c *RemindCmd) Run(ctx *cli.Context) error {
	svc, err := ctx.Service()
	if err != nil {
		return err
	}

	var n hydration.Notifier = printNotifier{ctx: ctx}
	if !c.DryRun {
		n = newNotifier()
	}

	outcome, err := svc.Reminder(n).Trigger(c.LogGlass, c.Duration)
	if err != nil {
		if errors.Is(err, notifier.ErrTrayNotRunning) {
			return fmt.Errorf("%w: start the tray app or use --log-glass", err)
		}
		return err
	}

	switch outcome.Action {
	case hydration.ActionSkipped:
		if c.DryRun {
			ctx.Println("Hydration reminders are disabled in settings.")
		}
	case hydration.ActionLogged:
		ctx.Printf("💧 Logged one glass: %d/%d ml\n", outcome.State.IntakeMl, outcome.State.DailyTargetMl)
	}
	return nil
}
