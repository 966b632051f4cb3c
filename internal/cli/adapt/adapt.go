package adapt

import (
	"fmt"
	"time"

	"github.com/acampos-dev/secondbrain/internal/cli"
	"github.com/acampos-dev/secondbrain/internal/models"
	"github.com/acampos-dev/secondbrain/internal/timeline"
	"github.com/acampos-dev/secondbrain/internal/utils"
)

type AdaptCmd struct {
	Set   AdaptSetCmd   `cmd:"" help:"Reschedule one activity for a date."`
	Event AdaptEventCmd `cmd:"" help:"Record an unexpected event for a date."`
	Show  AdaptShowCmd  `cmd:"" help:"Show a date's adaptation." default:"1"`
	Clear AdaptClearCmd `cmd:"" help:"Remove a date's adaptation."`
}

// loadOrNew returns the date's adaptation, creating an empty one when the
// date has none yet.
func loadOrNew(ctx *cli.Context, date string) (models.Adaptation, error) {
	existing, err := ctx.Store.GetAdaptation(date)
	if err != nil {
		return models.Adaptation{}, err
	}
	if existing != nil {
		return *existing, nil
	}
	return models.Adaptation{
		Date:      date,
		CreatedAt: time.Now(),
	}, nil
}

type AdaptSetCmd struct {
	Activity  string `arg:"" help:"Activity id or title."`
	Time      string `short:"t" help:"Adapted start time for the date."`
	Duration  int    `short:"d" help:"Adapted core duration in minutes."`
	Rationale string `short:"r" help:"Why the activity moved (shown on the block)."`
	Date      string `help:"Date (YYYY-MM-DD), defaults to today."`
}

func (c *AdaptSetCmd) Validate() error {
	if c.Time == "" && c.Duration == 0 {
		return fmt.Errorf("nothing to adapt: provide --time and/or --duration")
	}
	if c.Time != "" {
		if _, _, ok := timeline.ParseClock(c.Time); !ok {
			return fmt.Errorf("unparseable time: %q", c.Time)
		}
	}
	if c.Duration < 0 {
		return fmt.Errorf("duration must not be negative")
	}
	if c.Date != "" && !utils.ValidateDateFormat(c.Date) {
		return fmt.Errorf("invalid date format (expected YYYY-MM-DD): %s", c.Date)
	}
	return nil
}

func (c *AdaptSetCmd) Run(ctx *cli.Context) error {
	activity, err := ctx.ResolveActivity(c.Activity)
	if err != nil {
		return err
	}
	date := c.Date
	if date == "" {
		date = ctx.Today()
	}

	adaptation, err := loadOrNew(ctx, date)
	if err != nil {
		return err
	}
	if adaptation.Entries == nil {
		adaptation.Entries = make(map[string]models.AdaptedEntry)
	}
	adaptation.Entries[activity.ID] = models.AdaptedEntry{
		Time:        c.Time,
		DurationMin: c.Duration,
		Rationale:   c.Rationale,
	}

	if err := ctx.Store.SaveAdaptation(adaptation); err != nil {
		return err
	}
	fmt.Printf("Adapted %s for %s\n", activity.Title, date)
	return nil
}

type AdaptEventCmd struct {
	Title    string `arg:"" help:"Event title."`
	Time     string `short:"t" help:"Event start time." required:""`
	Duration int    `short:"d" help:"Event duration in minutes."`
	Date     string `help:"Date (YYYY-MM-DD), defaults to today."`
}

func (c *AdaptEventCmd) Validate() error {
	if _, _, ok := timeline.ParseClock(c.Time); !ok {
		return fmt.Errorf("unparseable time: %q", c.Time)
	}
	if c.Duration < 0 {
		return fmt.Errorf("duration must not be negative")
	}
	if c.Date != "" && !utils.ValidateDateFormat(c.Date) {
		return fmt.Errorf("invalid date format (expected YYYY-MM-DD): %s", c.Date)
	}
	return nil
}

func (c *AdaptEventCmd) Run(ctx *cli.Context) error {
	date := c.Date
	if date == "" {
		date = ctx.Today()
	}

	adaptation, err := loadOrNew(ctx, date)
	if err != nil {
		return err
	}
	adaptation.EventTitle = c.Title
	adaptation.EventTime = c.Time
	adaptation.EventDurationMin = c.Duration

	if err := ctx.Store.SaveAdaptation(adaptation); err != nil {
		return err
	}
	fmt.Printf("Recorded event %q at %s on %s\n", c.Title, c.Time, date)
	return nil
}

type AdaptShowCmd struct {
	Date string `arg:"" optional:"" help:"Date (YYYY-MM-DD), defaults to today."`
}

func (c *AdaptShowCmd) Run(ctx *cli.Context) error {
	date := c.Date
	if date == "" {
		date = ctx.Today()
	}

	adaptation, err := ctx.Store.GetAdaptation(date)
	if err != nil {
		return err
	}
	if adaptation == nil {
		fmt.Printf("No adaptation for %s\n", date)
		return nil
	}

	fmt.Printf("Adaptation for %s:\n", date)
	for id, entry := range adaptation.Entries {
		title := id
		if activity, err := ctx.Store.GetActivity(id); err == nil {
			title = activity.Title
		}
		line := fmt.Sprintf("  %s", title)
		if entry.Time != "" {
			line += fmt.Sprintf(" -> %s", entry.Time)
		}
		if entry.DurationMin > 0 {
			line += fmt.Sprintf(" (%dm)", entry.DurationMin)
		}
		if entry.Rationale != "" {
			line += fmt.Sprintf(" [%s]", entry.Rationale)
		}
		fmt.Println(line)
	}
	if adaptation.HasEvent() {
		fmt.Printf("  Event: %s at %s", adaptation.EventTitle, adaptation.EventTime)
		if adaptation.EventDurationMin > 0 {
			fmt.Printf(" (%dm)", adaptation.EventDurationMin)
		}
		fmt.Println()
	}
	return nil
}

type AdaptClearCmd struct {
	Date string `arg:"" optional:"" help:"Date (YYYY-MM-DD), defaults to today."`
}

func (c *AdaptClearCmd) Run(ctx *cli.Context) error {
	date := c.Date
	if date == "" {
		date = ctx.Today()
	}
	if err := ctx.Store.DeleteAdaptation(date); err != nil {
		return err
	}
	fmt.Printf("Cleared adaptation for %s\n", date)
	return nil
}
