package reminder

import (
	"context"
	"fmt"
	"time"

	"github.com/acampos-dev/secondbrain/internal/constants"
	"github.com/acampos-dev/secondbrain/internal/logger"
	"github.com/acampos-dev/secondbrain/internal/storage"
	"github.com/acampos-dev/secondbrain/internal/timeline"
)

// Sender delivers one desktop notification.
type Sender interface {
	Notify(text string) error
}

// Watcher fires a notification when an activity's resolved start time comes
// up on the current day's timeline. Each activity fires at most once per day.
type Watcher struct {
	store  storage.Provider
	sender Sender
	now    func() time.Time

	fired map[string]bool // activity id + day
}

func NewWatcher(store storage.Provider, sender Sender) *Watcher {
	return &Watcher{
		store:  store,
		sender: sender,
		now:    time.Now,
		fired:  make(map[string]bool),
	}
}

// Run polls once a second until the context is cancelled. Notifications are
// suppressed entirely when settings disable them.
func (w *Watcher) Run(ctx context.Context) error {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if err := w.tick(); err != nil {
				logger.Error("reminder tick failed", "error", err)
			}
		}
	}
}

func (w *Watcher) tick() error {
	settings, err := w.store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}
	if !settings.NotificationsEnabled {
		return nil
	}

	loc, err := time.LoadLocation(settings.Timezone)
	if err != nil {
		loc = time.Local
	}
	now := w.now().In(loc)
	due, err := w.dueActivities(now)
	if err != nil {
		return err
	}

	for _, block := range due {
		key := block.ActivityID + "|" + now.Format(constants.DateFormat)
		if block.IsEvent {
			key = block.ID + "|" + now.Format(constants.DateFormat)
		}
		if w.fired[key] {
			continue
		}
		w.fired[key] = true

		text := fmt.Sprintf("%s (%s)", block.Title, block.TimeLabel)
		if err := w.sender.Notify(text); err != nil {
			logger.Warn("failed to deliver notification", "activity", block.Title, "error", err)
			continue
		}
		logger.Info("notification sent", "activity", block.Title)
	}
	return nil
}

// dueActivities returns today's blocks whose start falls in the current
// wall-clock minute. Spillover from yesterday never fires; it already did.
func (w *Watcher) dueActivities(now time.Time) ([]timeline.Block, error) {
	activities, err := w.store.GetAllActivities(false, false)
	if err != nil {
		return nil, fmt.Errorf("failed to load activities: %w", err)
	}
	adaptation, err := w.store.GetAdaptation(now.Format(constants.DateFormat))
	if err != nil {
		return nil, err
	}

	blocks := timeline.Layout(activities, adaptation, now, "")
	currentMinute := float64(now.Hour()) + float64(now.Minute())/60

	var due []timeline.Block
	for _, block := range blocks {
		if block.IsSpillover || block.Completed {
			continue
		}
		delta := block.Start - currentMinute
		if delta >= 0 && delta < 1.0/60 {
			due = append(due, block)
		}
	}
	return due, nil
}
