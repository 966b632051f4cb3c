package focus

import (
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/google/uuid"

	"github.com/acampos-dev/secondbrain/internal/cli"
	"github.com/acampos-dev/secondbrain/internal/constants"
	"github.com/acampos-dev/secondbrain/internal/models"
	"github.com/acampos-dev/secondbrain/internal/notifier"
	"github.com/acampos-dev/secondbrain/internal/utils"
)

type FocusCmd struct {
	Start FocusStartCmd `cmd:"" help:"Run a focus countdown and record the session."`
	Log   FocusLogCmd   `cmd:"" help:"Record an already-finished session."`
	List  FocusListCmd  `cmd:"" help:"List recorded sessions." default:"1"`
}

type FocusStartCmd struct {
	Minutes  int    `arg:"" optional:"" help:"Session length. Defaults to the focus setting."`
	Activity string `short:"a" help:"Attribute the session to an activity (id or title)."`
	Break    bool   `short:"b" help:"Run a break instead of a focus session."`
	Note     string `help:"Session note."`
}

func (c *FocusStartCmd) Validate() error {
	if c.Minutes < 0 {
		return fmt.Errorf("minutes must not be negative")
	}
	return nil
}

func (c *FocusStartCmd) Run(ctx *cli.Context) error {
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	minutes := c.Minutes
	kind := constants.SessionFocus
	if c.Break {
		kind = constants.SessionBreak
		if minutes == 0 {
			minutes = settings.ShortBreakMin
		}
	} else if minutes == 0 {
		minutes = settings.FocusMin
	}

	activityID := ""
	label := string(kind)
	if c.Activity != "" {
		activity, err := ctx.ResolveActivity(c.Activity)
		if err != nil {
			return err
		}
		activityID = activity.ID
		label = activity.Title
	}

	started := time.Now()
	fmt.Printf("%s: %d minutes. Ctrl+C to abandon.\n", label, minutes)

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)
	defer signal.Stop(interrupt)

	deadline := started.Add(time.Duration(minutes) * time.Minute)
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-interrupt:
			fmt.Println("\nSession abandoned, nothing recorded.")
			return nil
		case now := <-ticker.C:
			remaining := deadline.Sub(now)
			if remaining <= 0 {
				fmt.Print("\r               \r")
				if settings.NotificationsEnabled {
					// Best effort; the terminal message below is the fallback.
					_ = notifier.New().Notify(fmt.Sprintf("%s finished (%dm)", label, minutes))
				}
				fmt.Printf("Done: %s (%dm)\n", label, minutes)
				return c.record(ctx, settings, activityID, kind, started, minutes)
			}
			fmt.Printf("\r%02d:%02d remaining", int(remaining.Minutes()), int(remaining.Seconds())%60)
		}
	}
}

func (c *FocusStartCmd) record(ctx *cli.Context, settings models.Settings, activityID string, kind constants.SessionKind, started time.Time, minutes int) error {
	day, err := models.GetTodayFromSettings(settings)
	if err != nil {
		day = started.Format(constants.DateFormat)
	}
	return ctx.Store.AddFocusSession(models.FocusSession{
		ID:         uuid.New().String(),
		ActivityID: activityID,
		Day:        day,
		StartedAt:  started,
		Minutes:    minutes,
		Kind:       kind,
		Note:       c.Note,
	})
}

type FocusLogCmd struct {
	Minutes  int    `arg:"" help:"Session length in minutes."`
	Activity string `short:"a" help:"Attribute the session to an activity (id or title)."`
	Break    bool   `short:"b" help:"Log a break instead of a focus session."`
	Note     string `help:"Session note."`
	Date     string `help:"Date (YYYY-MM-DD), defaults to today."`
}

func (c *FocusLogCmd) Validate() error {
	if c.Minutes <= 0 {
		return fmt.Errorf("minutes must be greater than zero")
	}
	if c.Date != "" && !utils.ValidateDateFormat(c.Date) {
		return fmt.Errorf("invalid date format (expected YYYY-MM-DD): %s", c.Date)
	}
	return nil
}

func (c *FocusLogCmd) Run(ctx *cli.Context) error {
	kind := constants.SessionFocus
	if c.Break {
		kind = constants.SessionBreak
	}

	activityID := ""
	if c.Activity != "" {
		activity, err := ctx.ResolveActivity(c.Activity)
		if err != nil {
			return err
		}
		activityID = activity.ID
	}

	day := c.Date
	if day == "" {
		day = ctx.Today()
	}

	session := models.FocusSession{
		ID:         uuid.New().String(),
		ActivityID: activityID,
		Day:        day,
		StartedAt:  time.Now().Add(-time.Duration(c.Minutes) * time.Minute),
		Minutes:    c.Minutes,
		Kind:       kind,
		Note:       c.Note,
	}
	if err := ctx.Store.AddFocusSession(session); err != nil {
		return err
	}
	fmt.Printf("Logged %dm %s session on %s\n", c.Minutes, kind, day)
	return nil
}

type FocusListCmd struct {
	Date string `arg:"" optional:"" help:"Date (YYYY-MM-DD), defaults to today."`
	Week bool   `short:"w" help:"Show the whole Monday-start week instead."`
}

func (c *FocusListCmd) Validate() error {
	if c.Date != "" && !utils.ValidateDateFormat(c.Date) {
		return fmt.Errorf("invalid date format (expected YYYY-MM-DD): %s", c.Date)
	}
	return nil
}

func (c *FocusListCmd) Run(ctx *cli.Context) error {
	day := c.Date
	if day == "" {
		day = ctx.Today()
	}

	var sessions []models.FocusSession
	var err error
	if c.Week {
		date, perr := time.Parse(constants.DateFormat, day)
		if perr != nil {
			return perr
		}
		monday := utils.MondayOf(date)
		sessions, err = ctx.Store.GetFocusSessions(
			monday.Format(constants.DateFormat),
			monday.AddDate(0, 0, 6).Format(constants.DateFormat))
	} else {
		sessions, err = ctx.Store.GetFocusSessionsForDay(day)
	}
	if err != nil {
		return fmt.Errorf("failed to get focus sessions: %w", err)
	}
	if len(sessions) == 0 {
		fmt.Println("No sessions recorded")
		return nil
	}

	activityTitles := make(map[string]string)
	totalFocus := 0
	fmt.Println("Sessions:")
	for _, session := range sessions {
		if session.Kind == constants.SessionFocus {
			totalFocus += session.Minutes
		}

		label := ""
		if session.ActivityID != "" {
			title, ok := activityTitles[session.ActivityID]
			if !ok {
				title = session.ActivityID
				if activity, err := ctx.Store.GetActivity(session.ActivityID); err == nil {
					title = activity.Title
				}
				activityTitles[session.ActivityID] = title
			}
			label = " - " + title
		}

		line := fmt.Sprintf("  %s %s %3dm %s%s",
			session.Day, session.StartedAt.Format("15:04"), session.Minutes, session.Kind, label)
		if session.Note != "" {
			line += fmt.Sprintf(" (%s)", session.Note)
		}
		fmt.Println(line)
	}
	fmt.Printf("\nTotal focus time: %dm\n", totalFocus)
	return nil
}
