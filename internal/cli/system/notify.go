package system

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/acampos-dev/secondbrain/internal/cli"
	"github.com/acampos-dev/secondbrain/internal/notifier"
	"github.com/acampos-dev/secondbrain/internal/reminder"
	"github.com/acampos-dev/secondbrain/internal/timeline"
	"github.com/acampos-dev/secondbrain/internal/utils"
)

// NotifyCmd is the hidden entry point used by cron or a login script. A bare
// invocation checks the current minute once; --watch stays resident.
type NotifyCmd struct {
	DryRun bool `help:"Print notifications to stdout instead of sending them."`
	Watch  bool `help:"Keep running and fire notifications as start times come up."`
}

type printSender struct{}

func (printSender) Notify(text string) error {
	fmt.Println(text)
	return nil
}

func (c *NotifyCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	var sender reminder.Sender = notifier.New()
	if c.DryRun {
		sender = printSender{}
	}

	if c.Watch {
		watcher := reminder.NewWatcher(ctx.Store, sender)
		runCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err := watcher.Run(runCtx); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	}

	return c.checkOnce(ctx, sender)
}

func (c *NotifyCmd) checkOnce(ctx *cli.Context, sender reminder.Sender) error {
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}
	if !settings.NotificationsEnabled {
		if c.DryRun {
			fmt.Println("Notifications are disabled in settings.")
		}
		return nil
	}

	loc, err := utils.LoadLocation(settings.Timezone)
	if err != nil {
		loc = time.Local
	}
	now := time.Now().In(loc)

	activities, err := ctx.Store.GetAllActivities(false, false)
	if err != nil {
		return fmt.Errorf("failed to get activities: %w", err)
	}
	adaptation, err := ctx.Store.GetAdaptation(now.Format("2006-01-02"))
	if err != nil {
		return fmt.Errorf("failed to get adaptation: %w", err)
	}

	currentMinute := float64(now.Hour()) + float64(now.Minute())/60
	fired := 0
	for _, block := range timeline.Layout(activities, adaptation, now, "") {
		if block.IsSpillover || block.Completed {
			continue
		}
		delta := block.Start - currentMinute
		if delta < 0 || delta >= 1.0/60 {
			continue
		}
		if err := sender.Notify(fmt.Sprintf("%s (%s)", block.Title, block.TimeLabel)); err != nil {
			return fmt.Errorf("failed to send notification: %w", err)
		}
		fired++
	}

	if c.DryRun && fired == 0 {
		fmt.Println("Nothing due this minute.")
	}
	return nil
}
