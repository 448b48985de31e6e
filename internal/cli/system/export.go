package system

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/julianstephens/daywell/internal/cli"
	"github.com/julianstephens/daywell/internal/logger"
)

type ExportCmd struct {
	Format string `short:"f" enum:"json,yaml" default:"json" help:"Output format (json or yaml)."`
	Output string `short:"o" type:"path" help:"Write to this file instead of stdout."`
}

func (c *ExportCmd) Run(ctx *cli.Context) error {
	svc, err := ctx.Service()
	if err != nil {
		return err
	}
	data, err := svc.Export()
	if err != nil {
		return fmt.Errorf("failed to export data: %w", err)
	}

	w := ctx.Writer()
	if c.Output != "" {
		f, err := os.OpenFile(c.Output, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
		if err != nil {
			return fmt.Errorf("failed to create export file: %w", err)
		}
		defer f.Close()
		w = f
	}

	if err := encode(w, c.Format, data); err != nil {
		return err
	}

	if c.Output != "" {
		logger.Info("Exported data", "path", c.Output, "format", c.Format)
		ctx.Printf("✓ Exported %d habit(s), %d history day(s) and %d mood day(s) to %s\n",
			len(data.Habits), len(data.History), len(data.Mood), c.Output)
	}
	return nil
}

func encode(w io.Writer, format string, v interface{}) error {
	if format == "yaml" {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
