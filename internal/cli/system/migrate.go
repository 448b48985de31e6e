package system

import (
	"fmt"

	"github.com/julianstephens/daywell/internal/cli"
	"github.com/julianstephens/daywell/internal/storage/backend"
)

type MigrateCmd struct{}

func (c *MigrateCmd) Run(ctx *cli.Context) error {
	m, ok := ctx.Store.(backend.Migrator)
	if !ok {
		return fmt.Errorf("migrate only supports SQL storage (sqlite or postgres)")
	}

	count, err := m.Migrate(func(msg string) {
		ctx.Println(msg)
	})
	if err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	if count == 0 {
		ctx.Println("No migrations to apply. Database is up to date.")
	} else {
		ctx.Printf("\nSuccessfully applied %d migration(s).\n", count)
	}
	return nil
}
