package settings

import (
	"fmt"

	"github.com/julianstephens/daywell/internal/cli"
	"github.com/julianstephens/daywell/internal/prefs"
)

type SettingsCmd struct {
	List bool `help:"List current settings."`

	NotificationsEnabled *bool   `help:"Enable or disable notifications."`
	HydrationEnabled     *bool   `help:"Enable or disable hydration reminders."`
	HydrationInterval    *int    `help:"Minutes between hydration reminders (15, 30, 60 or 120)."`
	DarkMode             *bool   `help:"Use the dark TUI theme."`
	Timezone             *string `help:"IANA timezone for day boundaries, or Local."`
}

func (c *SettingsCmd) Run(ctx *cli.Context) error {
	store := prefs.New(ctx.Store)
	settings, err := store.Load()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	if c.List {
		ctx.Println("Current Settings:")
		ctx.Printf("  Timezone:              %s\n", settings.Timezone)
		ctx.Printf("  Dark Mode:             %v\n", settings.DarkMode)
		ctx.Println("\nReminder Settings:")
		ctx.Printf("  Notifications Enabled: %v\n", settings.NotificationsEnabled)
		ctx.Printf("  Hydration Enabled:     %v\n", settings.HydrationEnabled)
		ctx.Printf("  Hydration Interval:    %d min\n", settings.HydrationIntervalMin)
		return nil
	}

	updated := false
	if c.NotificationsEnabled != nil {
		settings.NotificationsEnabled = *c.NotificationsEnabled
		updated = true
	}
	if c.HydrationEnabled != nil {
		settings.HydrationEnabled = *c.HydrationEnabled
		updated = true
	}
	if c.HydrationInterval != nil {
		settings.HydrationIntervalMin = *c.HydrationInterval
		updated = true
	}
	if c.DarkMode != nil {
		settings.DarkMode = *c.DarkMode
		updated = true
	}
	if c.Timezone != nil {
		settings.Timezone = *c.Timezone
		updated = true
	}

	if updated {
		if err := store.Save(settings); err != nil {
			return err
		}
		ctx.Println("Settings updated successfully.")
		if c.HydrationInterval != nil {
			ctx.Println("Run 'daywell schedule' to update your reminder schedule.")
		}
	} else {
		ctx.Println("No changes specified. Use --list to view settings or flags to update them.")
	}

	return nil
}
