package settings

import (
	"fmt"

	"github.com/acampos-dev/secondbrain/internal/cli"
	"github.com/acampos-dev/secondbrain/internal/utils"
)

type SettingsCmd struct {
	Show SettingsShowCmd `cmd:"" help:"Show current settings." default:"1"`
	Set  SettingsSetCmd  `cmd:"" help:"Update settings."`
}

type SettingsShowCmd struct{}

func (c *SettingsShowCmd) Run(ctx *cli.Context) error {
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	fmt.Println("Current Settings:")
	fmt.Printf("  Day Start:             %s\n", settings.DayStart)
	fmt.Printf("  Day End:               %s\n", settings.DayEnd)
	fmt.Printf("  Timezone:              %s\n", settings.Timezone)
	fmt.Printf("  Notifications Enabled: %v\n", settings.NotificationsEnabled)
	fmt.Println("\nFocus Settings:")
	fmt.Printf("  Focus:                 %d min\n", settings.FocusMin)
	fmt.Printf("  Short Break:           %d min\n", settings.ShortBreakMin)
	fmt.Printf("  Long Break:            %d min\n", settings.LongBreakMin)
	return nil
}

type SettingsSetCmd struct {
	DayStart             *string `help:"Day start time (HH:MM)."`
	DayEnd               *string `help:"Day end time (HH:MM)."`
	Timezone             *string `help:"IANA timezone name, or 'Local'."`
	NotificationsEnabled *bool   `help:"Enable or disable notifications."`
	FocusMin             *int    `help:"Default focus session length in minutes."`
	ShortBreakMin        *int    `help:"Short break length in minutes."`
	LongBreakMin         *int    `help:"Long break length in minutes."`
}

func (c *SettingsSetCmd) Validate() error {
	if c.DayStart != nil && !utils.ValidateTimeFormat(*c.DayStart) {
		return fmt.Errorf("invalid day start time (expected HH:MM): %s", *c.DayStart)
	}
	if c.DayEnd != nil && !utils.ValidateTimeFormat(*c.DayEnd) {
		return fmt.Errorf("invalid day end time (expected HH:MM): %s", *c.DayEnd)
	}
	if c.Timezone != nil && !utils.ValidateTimezone(*c.Timezone) {
		return fmt.Errorf("unknown timezone: %s", *c.Timezone)
	}
	for _, v := range []*int{c.FocusMin, c.ShortBreakMin, c.LongBreakMin} {
		if v != nil && *v <= 0 {
			return fmt.Errorf("durations must be greater than zero")
		}
	}
	return nil
}

func (c *SettingsSetCmd) Run(ctx *cli.Context) error {
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	updated := false
	if c.DayStart != nil {
		settings.DayStart = *c.DayStart
		updated = true
	}
	if c.DayEnd != nil {
		settings.DayEnd = *c.DayEnd
		updated = true
	}
	if c.Timezone != nil {
		settings.Timezone = *c.Timezone
		updated = true
	}
	if c.NotificationsEnabled != nil {
		settings.NotificationsEnabled = *c.NotificationsEnabled
		updated = true
	}
	if c.FocusMin != nil {
		settings.FocusMin = *c.FocusMin
		updated = true
	}
	if c.ShortBreakMin != nil {
		settings.ShortBreakMin = *c.ShortBreakMin
		updated = true
	}
	if c.LongBreakMin != nil {
		settings.LongBreakMin = *c.LongBreakMin
		updated = true
	}

	if !updated {
		fmt.Println("No changes specified.")
		return nil
	}

	if err := ctx.Store.SaveSettings(settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	fmt.Println("Settings updated successfully.")
	return nil
}
