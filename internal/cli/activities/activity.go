package activities

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/acampos-dev/secondbrain/internal/cli"
	"github.com/acampos-dev/secondbrain/internal/constants"
	"github.com/acampos-dev/secondbrain/internal/models"
	"github.com/acampos-dev/secondbrain/internal/timeline"
	"github.com/acampos-dev/secondbrain/internal/utils"
)

type ActivityCmd struct {
	Add       ActivityAddCmd       `cmd:"" help:"Add a new activity."`
	List      ActivityListCmd      `cmd:"" help:"List activities." default:"1"`
	Edit      ActivityEditCmd      `cmd:"" help:"Edit an existing activity."`
	Archive   ActivityArchiveCmd   `cmd:"" help:"Archive an activity."`
	Unarchive ActivityUnarchiveCmd `cmd:"" help:"Unarchive an activity."`
	Delete    ActivityDeleteCmd    `cmd:"" help:"Soft-delete an activity."`
	Restore   ActivityRestoreCmd   `cmd:"" help:"Restore a deleted activity."`
	Done      ActivityDoneCmd      `cmd:"" help:"Toggle completion for a date."`
	Skip      ActivitySkipCmd      `cmd:"" help:"Exclude an activity from a date."`
}

type ActivityAddCmd struct {
	Title    string `arg:"" help:"Activity title."`
	Time     string `short:"t" help:"Start time (lenient, e.g. '7:30 am' or '19:00')."`
	Duration int    `short:"d" help:"Core duration in minutes." default:"30"`
	Pre      int    `help:"Preparation minutes before the core block."`
	Reward   int    `help:"Reward minutes after the core block."`
	Total    int    `help:"Explicit total duration override in minutes."`
	Category string `short:"c" help:"Category label (e.g. health, work)."`
	Days     string `short:"w" help:"Comma-separated weekdays. Omit for daily."`
}

func (c *ActivityAddCmd) Validate() error {
	if c.Duration < 0 || c.Pre < 0 || c.Reward < 0 || c.Total < 0 {
		return fmt.Errorf("durations must not be negative")
	}
	if c.Time != "" {
		if _, _, ok := timeline.ParseClock(c.Time); !ok {
			return fmt.Errorf("unparseable time: %q", c.Time)
		}
	}
	if c.Days != "" {
		if _, err := utils.ParseWeekdays(c.Days); err != nil {
			return err
		}
	}
	return nil
}

func (c *ActivityAddCmd) Run(ctx *cli.Context) error {
	activity := models.Activity{
		ID:               uuid.New().String(),
		Title:            c.Title,
		Category:         c.Category,
		Frequency:        constants.FrequencyDaily,
		Time:             c.Time,
		DurationMin:      c.Duration,
		PreMin:           c.Pre,
		RewardMin:        c.Reward,
		TotalOverrideMin: c.Total,
		CreatedAt:        time.Now(),
	}

	if c.Days != "" {
		days, err := utils.ParseWeekdays(c.Days)
		if err != nil {
			return err
		}
		activity.Frequency = constants.FrequencySpecificDays
		activity.RepeatDays = days
	}

	if err := ctx.Store.AddActivity(activity); err != nil {
		return err
	}

	fmt.Printf("Added activity: %s (ID: %s)\n", c.Title, activity.ID)
	return nil
}

type ActivityListCmd struct {
	All      bool   `help:"Include archived activities."`
	Category string `short:"c" help:"Filter by category."`
	ShowIDs  bool   `help:"Show activity IDs." name:"show-ids"`
}

func (c *ActivityListCmd) Run(ctx *cli.Context) error {
	activities, err := ctx.Store.GetAllActivities(c.All, false)
	if err != nil {
		return fmt.Errorf("failed to get activities: %w", err)
	}
	if len(activities) == 0 {
		fmt.Println("No activities found")
		return nil
	}

	today := ctx.Today()
	fmt.Println("Activities:")
	for _, activity := range activities {
		if c.Category != "" && activity.Category != c.Category {
			continue
		}

		mark := " "
		if activity.CompletedOn(today) {
			mark = "x"
		}
		idStr := ""
		if c.ShowIDs {
			idStr = fmt.Sprintf(" (ID: %s)", activity.ID)
		}
		suffix := ""
		if activity.Archived {
			suffix = " [archived]"
		}

		timeStr := activity.Time
		if timeStr == "" {
			timeStr = "unscheduled"
		}
		fmt.Printf("  [%s] %s%s - %s, %s%s\n",
			mark, activity.Title, idStr, timeStr, cli.FormatScheduleSummary(activity), suffix)
	}
	return nil
}

type ActivityEditCmd struct {
	Activity string `arg:"" help:"Activity id or title."`

	Title    *string `help:"New title."`
	Time     *string `short:"t" help:"New start time."`
	Duration *int    `short:"d" help:"New core duration in minutes."`
	Pre      *int    `help:"New preparation minutes."`
	Reward   *int    `help:"New reward minutes."`
	Total    *int    `help:"New total override in minutes (0 clears it)."`
	Category *string `short:"c" help:"New category."`
	Days     *string `short:"w" help:"New comma-separated weekdays. Empty string means daily."`
}

func (c *ActivityEditCmd) Run(ctx *cli.Context) error {
	activity, err := ctx.ResolveActivity(c.Activity)
	if err != nil {
		return err
	}

	updated := false
	if c.Title != nil {
		activity.Title = *c.Title
		updated = true
	}
	if c.Time != nil {
		activity.Time = *c.Time
		updated = true
	}
	if c.Duration != nil {
		activity.DurationMin = *c.Duration
		updated = true
	}
	if c.Pre != nil {
		activity.PreMin = *c.Pre
		updated = true
	}
	if c.Reward != nil {
		activity.RewardMin = *c.Reward
		updated = true
	}
	if c.Total != nil {
		activity.TotalOverrideMin = *c.Total
		updated = true
	}
	if c.Category != nil {
		activity.Category = *c.Category
		updated = true
	}
	if c.Days != nil {
		if *c.Days == "" {
			activity.Frequency = constants.FrequencyDaily
			activity.RepeatDays = nil
		} else {
			days, err := utils.ParseWeekdays(*c.Days)
			if err != nil {
				return err
			}
			activity.Frequency = constants.FrequencySpecificDays
			activity.RepeatDays = days
		}
		updated = true
	}

	if !updated {
		fmt.Println("No changes specified.")
		return nil
	}

	if err := ctx.Store.UpdateActivity(activity); err != nil {
		return err
	}
	fmt.Printf("Updated activity: %s\n", activity.Title)
	return nil
}

type ActivityArchiveCmd struct {
	Activity string `arg:"" help:"Activity id or title."`
}

func (c *ActivityArchiveCmd) Run(ctx *cli.Context) error {
	activity, err := ctx.ResolveActivity(c.Activity)
	if err != nil {
		return err
	}
	if err := ctx.Store.ArchiveActivity(activity.ID); err != nil {
		return err
	}
	fmt.Printf("Archived activity: %s\n", activity.Title)
	return nil
}

type ActivityUnarchiveCmd struct {
	Activity string `arg:"" help:"Activity id or title."`
}

func (c *ActivityUnarchiveCmd) Run(ctx *cli.Context) error {
	activity, err := ctx.ResolveActivity(c.Activity)
	if err != nil {
		return err
	}
	if err := ctx.Store.UnarchiveActivity(activity.ID); err != nil {
		return err
	}
	fmt.Printf("Unarchived activity: %s\n", activity.Title)
	return nil
}

type ActivityDeleteCmd struct {
	Activity string `arg:"" help:"Activity id or title."`
}

func (c *ActivityDeleteCmd) Run(ctx *cli.Context) error {
	activity, err := ctx.ResolveActivity(c.Activity)
	if err != nil {
		return err
	}
	if err := ctx.Store.DeleteActivity(activity.ID); err != nil {
		return err
	}
	fmt.Printf("Deleted activity: %s (restore with 'sb activity restore %s')\n", activity.Title, activity.ID)
	return nil
}

type ActivityRestoreCmd struct {
	ID string `arg:"" help:"Activity id."`
}

func (c *ActivityRestoreCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.RestoreActivity(c.ID); err != nil {
		return err
	}
	fmt.Println("Activity restored.")
	return nil
}

type ActivityDoneCmd struct {
	Activity string `arg:"" help:"Activity id or title."`
	Date     string `help:"Date (YYYY-MM-DD), defaults to today."`
	Undo     bool   `help:"Clear the completion mark instead."`
}

func (c *ActivityDoneCmd) Validate() error {
	if c.Date != "" && !utils.ValidateDateFormat(c.Date) {
		return fmt.Errorf("invalid date format (expected YYYY-MM-DD): %s", c.Date)
	}
	return nil
}

func (c *ActivityDoneCmd) Run(ctx *cli.Context) error {
	activity, err := ctx.ResolveActivity(c.Activity)
	if err != nil {
		return err
	}
	day := c.Date
	if day == "" {
		day = ctx.Today()
	}

	if err := ctx.Store.SetActivityCompleted(activity.ID, day, !c.Undo); err != nil {
		return err
	}
	if c.Undo {
		fmt.Printf("Cleared completion: %s on %s\n", activity.Title, day)
	} else {
		fmt.Printf("Completed: %s on %s\n", activity.Title, day)
	}
	return nil
}

type ActivitySkipCmd struct {
	Activity string `arg:"" help:"Activity id or title."`
	Date     string `help:"Date (YYYY-MM-DD), defaults to today."`
	Undo     bool   `help:"Remove the exclusion instead."`
}

func (c *ActivitySkipCmd) Validate() error {
	if c.Date != "" && !utils.ValidateDateFormat(c.Date) {
		return fmt.Errorf("invalid date format (expected YYYY-MM-DD): %s", c.Date)
	}
	return nil
}

func (c *ActivitySkipCmd) Run(ctx *cli.Context) error {
	activity, err := ctx.ResolveActivity(c.Activity)
	if err != nil {
		return err
	}
	day := c.Date
	if day == "" {
		day = ctx.Today()
	}

	if err := ctx.Store.SetActivityExcluded(activity.ID, day, !c.Undo); err != nil {
		return err
	}
	if c.Undo {
		fmt.Printf("Restored: %s on %s\n", activity.Title, day)
	} else {
		fmt.Printf("Skipped: %s on %s\n", activity.Title, day)
	}
	return nil
}
