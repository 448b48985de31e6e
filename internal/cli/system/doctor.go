package system

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/julianstephens/daywell/internal/backup"
	"github.com/julianstephens/daywell/internal/cli"
	"github.com/julianstephens/daywell/internal/constants"
	"github.com/julianstephens/daywell/internal/history"
	"github.com/julianstephens/daywell/internal/logger"
	"github.com/julianstephens/daywell/internal/models"
	"github.com/julianstephens/daywell/internal/prefs"
	"github.com/julianstephens/daywell/internal/storage"
	"github.com/julianstephens/daywell/internal/storage/backend"
	"github.com/julianstephens/daywell/internal/utils"
)

type DoctorCmd struct{}

type check struct {
	name     string
	fn       func(ctx *cli.Context) error
	needsDB  bool
	warnOnly bool
}

var checks = []check{
	{name: "Database reachable", fn: checkDBReachable},
	{name: "Schema version", fn: checkSchemaVersion, needsDB: true},
	{name: "Settings", fn: checkSettings, needsDB: true},
	{name: "Habit records", fn: checkHabits, needsDB: true},
	{name: "Mood records", fn: checkMoods, needsDB: true},
	{name: "Habit history records", fn: checkHistory, needsDB: true},
	{name: "Hydration state", fn: checkHydration, needsDB: true},
	{name: "Backups present", fn: checkBackupsPresent, warnOnly: true},
	{name: "Clock", fn: checkClock},
}

func (cmd *DoctorCmd) Run(ctx *cli.Context) error {
	ctx.Println("Running diagnostics...")
	ctx.Println()

	hasError := false
	dbReachable := true

	for _, c := range checks {
		if c.needsDB && !dbReachable {
			ctx.Printf("⊘ %s: SKIPPED (database not reachable)\n", c.name)
			continue
		}
		err := c.fn(ctx)
		switch {
		case err == nil:
			ctx.Printf("✓ %s: OK\n", c.name)
		case c.warnOnly:
			ctx.Printf("⚠ %s: WARNING\n", c.name)
			ctx.Printf("   %v\n", err)
		default:
			ctx.Printf("❌ %s: FAIL\n", c.name)
			ctx.Printf("   Error: %v\n", err)
			hasError = true
			if c.name == "Database reachable" {
				dbReachable = false
			}
		}
	}

	if path := logger.Path(); path != "" {
		ctx.Printf("\nLog file: %s\n", path)
	}

	ctx.Println()
	if hasError {
		ctx.Println("Diagnostics completed with errors.")
		return fmt.Errorf("one or more health checks failed")
	}

	ctx.Println("All diagnostics passed!")
	return nil
}

func checkDBReachable(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return fmt.Errorf("failed to load database: %w", err)
	}
	if _, err := ctx.Store.Keys(storage.PartitionSettings, ""); err != nil {
		return fmt.Errorf("failed to query database: %w", err)
	}
	return nil
}

func checkSchemaVersion(ctx *cli.Context) error {
	m, ok := ctx.Store.(backend.Migrator)
	if !ok {
		// JSON store has no schema version
		return nil
	}
	current, latest, err := m.SchemaVersions()
	if err != nil {
		return err
	}
	if current > latest {
		return fmt.Errorf("database schema version (%d) is newer than supported version (%d)", current, latest)
	}
	if current < latest {
		return fmt.Errorf("migrations incomplete: current version %d, latest version %d", current, latest)
	}
	return nil
}

func checkSettings(ctx *cli.Context) error {
	for _, key := range []string{constants.SettingNotificationsEnabled, constants.SettingHydrationEnabled, constants.SettingDarkMode} {
		raw, ok, err := ctx.Store.Get(storage.PartitionSettings, key)
		if err != nil {
			return err
		}
		if _, perr := strconv.ParseBool(raw); ok && perr != nil {
			return fmt.Errorf("%s holds %q, expected true or false", key, raw)
		}
	}

	raw, ok, err := ctx.Store.Get(storage.PartitionSettings, constants.SettingHydrationInterval)
	if err != nil {
		return err
	}
	if ok {
		n, perr := strconv.Atoi(raw)
		if perr != nil {
			return fmt.Errorf("%s holds %q, expected minutes", constants.SettingHydrationInterval, raw)
		}
		if err := prefs.ValidateInterval(n); err != nil {
			return err
		}
	}

	tz, ok, err := ctx.Store.Get(storage.PartitionSettings, constants.SettingTimezone)
	if err != nil {
		return err
	}
	if ok && !utils.ValidateTimezone(tz) {
		return fmt.Errorf("unknown timezone %q", tz)
	}
	return nil
}

func checkHabits(ctx *cli.Context) error {
	raw, ok, err := ctx.Store.Get(storage.PartitionHabits, constants.KeyHabits)
	if err != nil || !ok {
		return err
	}
	var habits []models.Habit
	if err := json.Unmarshal([]byte(raw), &habits); err != nil {
		return fmt.Errorf("%s is malformed: %w", constants.KeyHabits, err)
	}

	seen := make(map[string]bool, len(habits))
	for _, h := range habits {
		if h.ID == "" {
			return fmt.Errorf("habit %q has no id", h.Name)
		}
		if seen[h.ID] {
			return fmt.Errorf("duplicate habit ID found: %s", h.ID)
		}
		seen[h.ID] = true
	}

	if last, ok, err := ctx.Store.Get(storage.PartitionHabits, constants.KeyHabitLastDate); err != nil {
		return err
	} else if ok && !isDate(last) {
		return fmt.Errorf("%s holds %q, expected YYYY-MM-DD", constants.KeyHabitLastDate, last)
	}
	return nil
}

func checkMoods(ctx *cli.Context) error {
	dates, err := ctx.Store.Keys(storage.PartitionMood, "")
	if err != nil {
		return err
	}
	bad := 0
	for _, date := range dates {
		if !isDate(date) {
			bad++
			continue
		}
		raw, _, err := ctx.Store.Get(storage.PartitionMood, date)
		if err != nil {
			return err
		}
		var entries []models.MoodEntry
		if json.Unmarshal([]byte(raw), &entries) != nil {
			bad++
		}
	}
	if bad > 0 {
		return fmt.Errorf("found %d malformed mood record(s)", bad)
	}
	return nil
}

func checkHistory(ctx *cli.Context) error {
	keys, err := ctx.Store.Keys(storage.PartitionHabitHistory, constants.HabitHistoryKeyPrefix)
	if err != nil {
		return err
	}
	bad := 0
	for _, key := range keys {
		date := key[len(constants.HabitHistoryKeyPrefix):]
		if !isDate(date) || history.Key(date) != key {
			bad++
			continue
		}
		raw, _, err := ctx.Store.Get(storage.PartitionHabitHistory, key)
		if err != nil {
			return err
		}
		var snap models.HabitHistorySnapshot
		if json.Unmarshal([]byte(raw), &snap) != nil || snap.Total < 0 || snap.Completed < 0 || snap.Completed > snap.Total {
			bad++
		}
	}
	if bad > 0 {
		return fmt.Errorf("found %d malformed habit history record(s)", bad)
	}
	return nil
}

func checkHydration(ctx *cli.Context) error {
	for _, key := range []string{constants.KeyHydrationDailyTarget, constants.KeyHydrationIntake} {
		raw, ok, err := ctx.Store.Get(storage.PartitionSettings, key)
		if err != nil {
			return err
		}
		if _, perr := strconv.Atoi(raw); ok && perr != nil {
			return fmt.Errorf("%s holds %q, expected millilitres", key, raw)
		}
	}
	if last, ok, err := ctx.Store.Get(storage.PartitionSettings, constants.KeyHydrationLastDate); err != nil {
		return err
	} else if ok && !isDate(last) {
		return fmt.Errorf("%s holds %q, expected YYYY-MM-DD", constants.KeyHydrationLastDate, last)
	}
	return nil
}

func checkBackupsPresent(ctx *cli.Context) error {
	if ctx.Backend.Kind != backend.KindSQLite {
		return nil
	}
	mgr := backup.NewManager(ctx.Store.GetConfigPath())
	backups, err := mgr.ListBackups()
	if err != nil {
		return fmt.Errorf("failed to list backups: %w", err)
	}
	if len(backups) == 0 {
		return fmt.Errorf("no backups found - consider creating one with 'daywell backup create'")
	}
	return nil
}

func checkClock(ctx *cli.Context) error {
	clock := ctx.Clock
	if clock == nil {
		clock = time.Now
	}
	now := clock()
	if now.Year() < 2020 || now.Year() > 2100 {
		return fmt.Errorf("system time appears incorrect: %s", now.Format(time.RFC3339))
	}
	return nil
}

func isDate(s string) bool {
	_, err := time.Parse(constants.DateFormat, s)
	return err == nil
}
