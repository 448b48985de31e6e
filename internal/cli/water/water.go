package water

import (
	"strings"

	"github.com/julianstephens/daywell/internal/cli"
	"github.com/julianstephens/daywell/internal/constants"
	"github.com/julianstephens/daywell/internal/models"
)

const barWidth = 20

type WaterCmd struct {
	Status WaterStatusCmd `cmd:"" help:"Show today's water intake." default:"1"`
	Add    WaterAddCmd    `cmd:"" help:"Log a custom amount in millilitres."`
	Glass  WaterGlassCmd  `cmd:"" help:"Log one glass (200 ml)."`
	Double WaterDoubleCmd `cmd:"" help:"Log a double glass (400 ml)."`
	Target WaterTargetCmd `cmd:"" help:"Set the daily target in millilitres."`
	Reset  WaterResetCmd  `cmd:"" help:"Reset today's intake to zero."`
}

type WaterStatusCmd struct{}

func (c *WaterStatusCmd) Run(ctx *cli.Context) error {
	svc, err := ctx.Service()
	if err != nil {
		return err
	}
	state, err := svc.Hydration.Snapshot()
	if err != nil {
		return err
	}
	printState(ctx, state)
	return nil
}

type WaterAddCmd struct {
	Amount int `arg:"" help:"Amount in millilitres."`
}

func (c *WaterAddCmd) Run(ctx *cli.Context) error {
	return add(ctx, c.Amount)
}

type WaterGlassCmd struct{}

func (c *WaterGlassCmd) Run(ctx *cli.Context) error {
	return add(ctx, constants.GlassMl)
}

type WaterDoubleCmd struct{}

func (c *WaterDoubleCmd) Run(ctx *cli.Context) error {
	return add(ctx, constants.DoubleGlassMl)
}

type WaterTargetCmd struct {
	Ml int `arg:"" help:"Daily target in millilitres (at least 200)."`
}

func (c *WaterTargetCmd) Run(ctx *cli.Context) error {
	svc, err := ctx.Service()
	if err != nil {
		return err
	}
	state, err := svc.Hydration.SetDailyTarget(c.Ml)
	if err != nil {
		return err
	}
	ctx.Printf("Daily target set to %d ml\n", state.DailyTargetMl)
	printState(ctx, state)
	return nil
}

type WaterResetCmd struct{}

func (c *WaterResetCmd) Run(ctx *cli.Context) error {
	svc, err := ctx.Service()
	if err != nil {
		return err
	}
	state, err := svc.Hydration.ResetToday()
	if err != nil {
		return err
	}
	ctx.Println("Today's intake reset.")
	printState(ctx, state)
	return nil
}

func add(ctx *cli.Context, amount int) error {
	svc, err := ctx.Service()
	if err != nil {
		return err
	}
	state, err := svc.Hydration.AddIntake(amount)
	if err != nil {
		return err
	}
	ctx.Printf("💧 +%d ml\n", amount)
	printState(ctx, state)
	return nil
}

func printState(ctx *cli.Context, state models.HydrationState) {
	filled := state.Percent() * barWidth / 100
	bar := strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)
	ctx.Printf("%s %d/%d ml (%d%%)\n", bar, state.IntakeMl, state.DailyTargetMl, state.Percent())
	if remaining := state.RemainingMl(); remaining > 0 {
		ctx.Printf("%d ml to go\n", remaining)
	} else {
		ctx.Println("Daily goal reached 🎉")
	}
}
