package water

import (
	"strings"
	"testing"

	"github.com/julianstephens/daywell/internal/cli/clitest"
	"github.com/julianstephens/daywell/internal/errors"
)

func TestWaterGlassAndDouble(t *testing.T) {
	ctx, out := clitest.New(t)

	if err := (&WaterGlassCmd{}).Run(ctx); err != nil {
		t.Fatalf("water glass failed: %v", err)
	}
	if err := (&WaterDoubleCmd{}).Run(ctx); err != nil {
		t.Fatalf("water double failed: %v", err)
	}
	if !strings.Contains(out.String(), "600/1600 ml (37%)") {
		t.Errorf("unexpected output: %s", out.String())
	}
	if !strings.Contains(out.String(), "1000 ml to go") {
		t.Errorf("missing remaining amount: %s", out.String())
	}
}

func TestWaterAddClampsToTarget(t *testing.T) {
	ctx, out := clitest.New(t)

	if err := (&WaterAddCmd{Amount: 5000}).Run(ctx); err != nil {
		t.Fatalf("water add failed: %v", err)
	}
	if !strings.Contains(out.String(), "1600/1600 ml (100%)") || !strings.Contains(out.String(), "Daily goal reached") {
		t.Errorf("unexpected output: %s", out.String())
	}
}

func TestWaterAddRejectsNonPositive(t *testing.T) {
	ctx, _ := clitest.New(t)
	if err := (&WaterAddCmd{Amount: 0}).Run(ctx); !errors.IsValidation(err) {
		t.Errorf("expected ValidationError, got %v", err)
	}
}

func TestWaterTarget(t *testing.T) {
	ctx, out := clitest.New(t)

	if err := (&WaterTargetCmd{Ml: 100}).Run(ctx); !errors.IsValidation(err) {
		t.Errorf("expected ValidationError for tiny target, got %v", err)
	}

	(&WaterAddCmd{Amount: 1000}).Run(ctx)
	out.Reset()
	if err := (&WaterTargetCmd{Ml: 800}).Run(ctx); err != nil {
		t.Fatalf("water target failed: %v", err)
	}
	if !strings.Contains(out.String(), "800/800 ml (100%)") {
		t.Errorf("intake should clamp to new target: %s", out.String())
	}
}

func TestWaterReset(t *testing.T) {
	ctx, out := clitest.New(t)
	(&WaterGlassCmd{}).Run(ctx)

	out.Reset()
	if err := (&WaterResetCmd{}).Run(ctx); err != nil {
		t.Fatalf("water reset failed: %v", err)
	}
	if !strings.Contains(out.String(), "0/1600 ml (0%)") {
		t.Errorf("unexpected output: %s", out.String())
	}
}
