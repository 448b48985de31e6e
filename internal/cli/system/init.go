package system

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/julianstephens/daywell/internal/cli"
	"github.com/julianstephens/daywell/internal/storage"
	"github.com/julianstephens/daywell/internal/storage/backend"
)

type InitCmd struct {
	Force  bool   `help:"Force reset by deleting the existing database file before initialization."`
	Source string `help:"Source database path or connection string to copy data from."`
}

func (c *InitCmd) Run(ctx *cli.Context) error {
	if c.Force {
		if err := c.reset(ctx); err != nil {
			return err
		}
	}

	if err := ctx.Store.Init(); err != nil {
		return err
	}
	ctx.Printf("Initialized daywell storage at: %s\n", ctx.Store.GetConfigPath())

	if c.Source != "" {
		ctx.Printf("Copying data from: %s\n", c.Source)
		if err := c.copyFrom(ctx, c.Source); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
		ctx.Println("Migration completed successfully!")
	}

	return nil
}

func (c *InitCmd) reset(ctx *cli.Context) error {
	if ctx.Backend.Kind == backend.KindPostgres {
		return fmt.Errorf("--force only supports file-based storage")
	}

	dbPath := ctx.Store.GetConfigPath()
	if abs, err := filepath.Abs(dbPath); err == nil {
		dbPath = abs
	}
	if c.Source != "" {
		if absSource, err := filepath.Abs(c.Source); err == nil && absSource == dbPath {
			return fmt.Errorf("cannot use --force when source and destination are the same: %s", dbPath)
		}
	}

	if _, err := os.Stat(dbPath); err == nil {
		if err := ctx.Store.Close(); err != nil {
			return fmt.Errorf("failed to close existing database: %w", err)
		}
		if err := os.Remove(dbPath); err != nil {
			return fmt.Errorf("failed to delete existing database: %w", err)
		}
		ctx.Printf("Deleted existing database at: %s\n", dbPath)
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("failed to access existing database: %w", err)
	}
	return nil
}

// copyFrom copies every key of every partition from source into the store.
func (c *InitCmd) copyFrom(ctx *cli.Context, source string) error {
	resolved, err := backend.Resolve(source)
	if err != nil {
		return err
	}
	src := backend.New(resolved)
	if err := src.Load(); err != nil {
		return fmt.Errorf("failed to load source database: %w", err)
	}
	defer src.Close()

	for _, p := range storage.Partitions {
		n, err := copyPartition(src, ctx.Store, p)
		if err != nil {
			return err
		}
		ctx.Printf("  Copied %d %s record(s)\n", n, p)
	}
	return nil
}

func copyPartition(src, dst storage.Provider, p storage.Partition) (int, error) {
	keys, err := src.Keys(p, "")
	if err != nil {
		return 0, fmt.Errorf("failed to list %s keys: %w", p, err)
	}
	if len(keys) == 0 {
		return 0, nil
	}

	values := make(map[string]string, len(keys))
	for _, key := range keys {
		v, ok, err := src.Get(p, key)
		if err != nil {
			return 0, fmt.Errorf("failed to read %s/%s: %w", p, key, err)
		}
		if ok {
			values[key] = v
		}
	}
	if err := dst.SetMany(p, values); err != nil {
		return 0, fmt.Errorf("failed to write %s: %w", p, err)
	}
	return len(values), nil
}
