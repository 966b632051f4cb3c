package days

import (
	"fmt"
	"strings"
	"time"

	"github.com/acampos-dev/secondbrain/internal/cli"
	"github.com/acampos-dev/secondbrain/internal/constants"
	"github.com/acampos-dev/secondbrain/internal/timeline"
	"github.com/acampos-dev/secondbrain/internal/utils"
)

type DayCmd struct {
	Date     string `arg:"" optional:"" help:"Date (YYYY-MM-DD), defaults to today."`
	Category string `short:"c" help:"Only show blocks in this category."`
}

func (c *DayCmd) Validate() error {
	if c.Date != "" && !utils.ValidateDateFormat(c.Date) {
		return fmt.Errorf("invalid date format (expected YYYY-MM-DD): %s", c.Date)
	}
	return nil
}

func (c *DayCmd) Run(ctx *cli.Context) error {
	dateStr := c.Date
	if dateStr == "" {
		dateStr = ctx.Today()
	}

	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}
	loc, err := utils.LoadLocation(settings.Timezone)
	if err != nil {
		loc = time.Local
	}
	date, err := utils.ParseDateInLocation(dateStr, loc)
	if err != nil {
		return err
	}

	activities, err := ctx.Store.GetAllActivities(false, false)
	if err != nil {
		return fmt.Errorf("failed to get activities: %w", err)
	}
	adaptation, err := ctx.Store.GetAdaptation(dateStr)
	if err != nil {
		return err
	}

	blocks := timeline.Layout(activities, adaptation, date, c.Category)
	fmt.Printf("%s (%s)\n", dateStr, date.Weekday())
	fmt.Print(RenderBlocks(blocks))
	return nil
}

// RenderBlocks renders a laid-out day as indented text, one line per block,
// lane offset shown as indentation.
func RenderBlocks(blocks []timeline.Block) string {
	if len(blocks) == 0 {
		return "  (nothing scheduled)\n"
	}

	var b strings.Builder
	for _, block := range blocks {
		// A continuation strip carries no title and no completion mark; the
		// run it continues lives on yesterday's timeline.
		if block.IsSpillover {
			b.WriteString(fmt.Sprintf("      %-8s %s(%dm) [from yesterday]\n",
				block.TimeLabel, strings.Repeat("    ", block.Lane), block.DurationMin))
			if block.HasNextConnection {
				b.WriteString("       |\n")
			}
			continue
		}

		mark := " "
		if block.Completed {
			mark = "x"
		}

		b.WriteString(fmt.Sprintf("  [%s] %-8s %s%s (%dm)",
			mark, block.TimeLabel, strings.Repeat("    ", block.Lane), block.Title, block.DurationMin))

		var tags []string
		if block.IsEvent {
			tags = append(tags, "event")
		}
		if block.IsAdapted && block.Rationale != "" {
			tags = append(tags, block.Rationale)
		} else if block.IsAdapted {
			tags = append(tags, "adapted")
		}
		if block.Category != "" {
			tags = append(tags, block.Category)
		}
		if len(tags) > 0 {
			b.WriteString(" [" + strings.Join(tags, ", ") + "]")
		}
		b.WriteString("\n")

		if block.HasNextConnection {
			b.WriteString("       |\n")
		}
	}
	return b.String()
}

type WeekCmd struct {
	Activity string `arg:"" optional:"" help:"Activity id or title. Omit for all activities."`
	Date     string `help:"Any date inside the week (YYYY-MM-DD), defaults to today."`
}

func (c *WeekCmd) Validate() error {
	if c.Date != "" && !utils.ValidateDateFormat(c.Date) {
		return fmt.Errorf("invalid date format (expected YYYY-MM-DD): %s", c.Date)
	}
	return nil
}

func (c *WeekCmd) Run(ctx *cli.Context) error {
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}
	loc, err := utils.LoadLocation(settings.Timezone)
	if err != nil {
		loc = time.Local
	}

	today := time.Now().In(loc)
	ref := today
	if c.Date != "" {
		ref, err = utils.ParseDateInLocation(c.Date, loc)
		if err != nil {
			return err
		}
	}

	var targets []string
	if c.Activity != "" {
		activity, err := ctx.ResolveActivity(c.Activity)
		if err != nil {
			return err
		}
		targets = []string{activity.ID}
	}

	activities, err := ctx.Store.GetAllActivities(false, false)
	if err != nil {
		return fmt.Errorf("failed to get activities: %w", err)
	}

	monday := utils.MondayOf(ref)
	todayStr := today.Format(constants.DateFormat)
	fmt.Printf("Week of %s:\n", monday.Format(constants.DateFormat))
	for _, activity := range activities {
		if len(targets) > 0 && activity.ID != targets[0] {
			continue
		}
		summary := timeline.WeekShape(activity, ref, todayStr)
		fmt.Printf("  %-24s %s  %s\n",
			activity.Title, RenderWeekShape(summary, monday), weekBadge(summary))
	}
	return nil
}

// RenderWeekShape renders a seven-cell Monday-start strip. Unscheduled days
// show as dots so sparse shapes keep their alignment.
func RenderWeekShape(summary timeline.WeekSummary, monday time.Time) string {
	statusByDate := make(map[string]timeline.DayStatus, len(summary.Days))
	for _, day := range summary.Days {
		statusByDate[day.Date] = day.Status
	}

	var b strings.Builder
	for i := 0; i < 7; i++ {
		date := monday.AddDate(0, 0, i).Format(constants.DateFormat)
		switch statusByDate[date] {
		case timeline.StatusCompleted:
			b.WriteString("●")
		case timeline.StatusMissed:
			b.WriteString("○")
		case timeline.StatusFuture:
			b.WriteString("-")
		default:
			b.WriteString("·")
		}
	}
	return b.String()
}

func weekBadge(summary timeline.WeekSummary) string {
	if len(summary.Days) == 0 {
		return "(unscheduled this week)"
	}
	return fmt.Sprintf("%d/%d", summary.CompletedCount, len(summary.Days))
}
