package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"

	"github.com/julianstephens/daywell/internal/cli"
	"github.com/julianstephens/daywell/internal/cli/backups"
	"github.com/julianstephens/daywell/internal/cli/habits"
	"github.com/julianstephens/daywell/internal/cli/moods"
	"github.com/julianstephens/daywell/internal/cli/settings"
	"github.com/julianstephens/daywell/internal/cli/stats"
	"github.com/julianstephens/daywell/internal/cli/system"
	"github.com/julianstephens/daywell/internal/cli/water"
	"github.com/julianstephens/daywell/internal/constants"
	"github.com/julianstephens/daywell/internal/errors"
	"github.com/julianstephens/daywell/internal/logger"
	"github.com/julianstephens/daywell/internal/storage/backend"
	"github.com/julianstephens/daywell/internal/utils"
)

type CLI struct {
	Version kong.VersionFlag
	Config  string `help:"SQLite path, .json file, PostgreSQL connection string, or 'keyring'. PostgreSQL credentials must NOT be embedded; use DAYWELL_DB_CONNECTION, .pgpass or the OS keyring." type:"string" default:"~/.config/daywell/daywell.db"`
	Debug   bool   `help:"Log debug output to stderr."`

	Init     system.InitCmd       `cmd:"" help:"Initialize daywell storage."`
	Migrate  system.MigrateCmd    `cmd:"" help:"Run database migrations."`
	Doctor   system.DoctorCmd     `cmd:"" help:"Run health checks and diagnostics."`
	Tui      system.TuiCmd        `cmd:"" help:"Launch the interactive dashboard." default:"1"`
	Habit    habits.HabitCmd      `cmd:"" help:"Manage today's habits."`
	Mood     moods.MoodCmd        `cmd:"" help:"Log and review moods."`
	Water    water.WaterCmd       `cmd:"" help:"Track water intake."`
	Stats    stats.StatsCmd       `cmd:"" help:"Show weekly or monthly analytics."`
	Settings settings.SettingsCmd `cmd:"" help:"Manage application settings."`
	Remind   system.RemindCmd     `cmd:"" help:"Run the hydration reminder (call from cron or a timer)."`
	Schedule system.ScheduleCmd   `cmd:"" help:"Print a crontab entry for hydration reminders."`
	Export   system.ExportCmd     `cmd:"" help:"Export all data as JSON or YAML."`
	Backup   backups.BackupCmd    `cmd:"" help:"Manage database backups."`
	Keyring  system.KeyringCmd    `cmd:"" help:"Manage the PostgreSQL connection string in the OS keyring."`
}

// skipLoad lists commands that open the store themselves.
var skipLoad = map[string]bool{
	"init":    true,
	"migrate": true,
	"keyring": true,
	"doctor":  true,
}

func main() {
	// A missing .env is normal.
	_ = godotenv.Load()

	if err := run(os.Args[1:], os.Stdout, nil); err != nil {
		errors.Fatal(err)
	}
}

// run parses args and executes one command. A nil clock means time.Now.
func run(args []string, out io.Writer, clock utils.Clock) error {
	var cmd CLI
	parser, err := kong.New(&cmd,
		kong.Name(constants.AppName),
		kong.Description("Daily wellness tracker: habits, moods and hydration"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": constants.Version},
	)
	if err != nil {
		return err
	}
	ctx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	resolved, err := backend.Resolve(cmd.Config)
	if err != nil {
		return err
	}

	if err := logger.Init(logger.Config{Debug: cmd.Debug, ConfigDir: logDir(resolved)}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize logger: %v\n", err)
	}
	defer logger.Close()
	logger.Debug("Resolved storage backend", "kind", resolved.Kind, "source", resolved.Source)

	store := backend.New(resolved)
	defer store.Close()

	if !skipLoad[commandName(ctx)] {
		if err := store.Load(); err != nil {
			return err
		}
	}

	return ctx.Run(&cli.Context{
		Store:   store,
		Backend: resolved,
		Clock:   clock,
		Out:     out,
	})
}

// commandName is the top-level command of the parsed invocation.
func commandName(ctx *kong.Context) string {
	node := ctx.Selected()
	if node == nil {
		return ""
	}
	for node.Parent != nil && node.Parent.Type == kong.CommandNode {
		node = node.Parent
	}
	return node.Name
}

// logDir keeps logs next to a file store, or in the default config dir.
func logDir(r backend.Resolved) string {
	if r.Kind != backend.KindPostgres {
		return filepath.Dir(r.Conn)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".config", constants.AppName)
}
