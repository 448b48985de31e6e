package habits

import (
	"github.com/julianstephens/daywell/internal/cli"
	"github.com/julianstephens/daywell/internal/models"
)

type HabitCmd struct {
	Add    HabitAddCmd    `cmd:"" help:"Add a new habit."`
	List   HabitListCmd   `cmd:"" help:"List today's habits." default:"1"`
	Edit   HabitEditCmd   `cmd:"" help:"Replace a habit's name, description and status."`
	Done   HabitDoneCmd   `cmd:"" help:"Mark a habit completed for today."`
	Undo   HabitUndoCmd   `cmd:"" help:"Mark a habit not completed for today."`
	Delete HabitDeleteCmd `cmd:"" help:"Delete a habit."`
}

type HabitAddCmd struct {
	Name        string `arg:"" help:"Habit name."`
	Description string `short:"d" help:"Optional description."`
}

func (c *HabitAddCmd) Run(ctx *cli.Context) error {
	svc, err := ctx.Service()
	if err != nil {
		return err
	}

	habit, err := svc.Habits.Add(c.Name, c.Description)
	if err != nil {
		return err
	}

	ctx.Printf("Added habit: %s (%s)\n", habit.Name, shortID(habit.ID))
	return printSummary(ctx)
}

type HabitListCmd struct {
	IDs bool `help:"Show full habit ids."`
}

func (c *HabitListCmd) Run(ctx *cli.Context) error {
	svc, err := ctx.Service()
	if err != nil {
		return err
	}

	habits, err := svc.Habits.List()
	if err != nil {
		return err
	}
	if len(habits) == 0 {
		ctx.Println("No habits yet. Add one with 'daywell habit add <name>'.")
		return nil
	}

	ctx.Printf("Habits for %s:\n", svc.Today())
	for _, h := range habits {
		id := shortID(h.ID)
		if c.IDs {
			id = h.ID
		}
		ctx.Printf("  %s %s  %s", checkbox(h), id, h.Name)
		if h.Description != nil {
			ctx.Printf("  - %s", *h.Description)
		}
		ctx.Println()
	}
	ctx.Println()
	return printSummary(ctx)
}

type HabitEditCmd struct {
	Habit       string `arg:"" help:"Habit id, id prefix or name."`
	Name        string `help:"New name." required:""`
	Description string `short:"d" help:"New description (empty clears it)."`
	Completed   bool   `help:"Completion status for today."`
}

func (c *HabitEditCmd) Run(ctx *cli.Context) error {
	svc, err := ctx.Service()
	if err != nil {
		return err
	}

	h, err := svc.Habits.FindByPrefix(c.Habit)
	if err != nil {
		return ctx.Advise(err)
	}
	updated, err := svc.Habits.Update(h.ID, c.Name, c.Description, c.Completed)
	if err != nil {
		return ctx.Advise(err)
	}

	ctx.Printf("Updated habit: %s\n", updated.Name)
	return printSummary(ctx)
}

type HabitDoneCmd struct {
	Habit string `arg:"" help:"Habit id, id prefix or name."`
}

func (c *HabitDoneCmd) Run(ctx *cli.Context) error {
	return setCompleted(ctx, c.Habit, true)
}

type HabitUndoCmd struct {
	Habit string `arg:"" help:"Habit id, id prefix or name."`
}

func (c *HabitUndoCmd) Run(ctx *cli.Context) error {
	return setCompleted(ctx, c.Habit, false)
}

type HabitDeleteCmd struct {
	Habit string `arg:"" help:"Habit id, id prefix or name."`
}

func (c *HabitDeleteCmd) Run(ctx *cli.Context) error {
	svc, err := ctx.Service()
	if err != nil {
		return err
	}

	h, err := svc.Habits.FindByPrefix(c.Habit)
	if err != nil {
		return ctx.Advise(err)
	}
	if err := svc.Habits.Remove(h.ID); err != nil {
		return err
	}

	ctx.Printf("Deleted habit: %s\n", h.Name)
	return printSummary(ctx)
}

func setCompleted(ctx *cli.Context, ref string, value bool) error {
	svc, err := ctx.Service()
	if err != nil {
		return err
	}

	h, err := svc.Habits.FindByPrefix(ref)
	if err != nil {
		return ctx.Advise(err)
	}
	if err := svc.Habits.ToggleCompleted(h.ID, value); err != nil {
		return ctx.Advise(err)
	}

	if value {
		ctx.Printf("✓ %s done for today\n", h.Name)
	} else {
		ctx.Printf("○ %s marked not done\n", h.Name)
	}
	return printSummary(ctx)
}

func printSummary(ctx *cli.Context) error {
	svc, err := ctx.Service()
	if err != nil {
		return err
	}
	s, err := svc.Habits.Summary()
	if err != nil {
		return err
	}
	ctx.Printf("Total: %d  Completed: %d  Remaining: %d  (%d%%)\n", s.Total, s.Completed, s.Remaining(), s.Percent())
	return nil
}

func checkbox(h models.Habit) string {
	if h.Completed {
		return "[x]"
	}
	return "[ ]"
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
