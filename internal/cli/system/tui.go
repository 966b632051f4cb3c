package system

import (
	"context"
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/acampos-dev/secondbrain/internal/cli"
	"github.com/acampos-dev/secondbrain/internal/logger"
	"github.com/acampos-dev/secondbrain/internal/notifier"
	"github.com/acampos-dev/secondbrain/internal/reminder"
	"github.com/acampos-dev/secondbrain/internal/storage"
	"github.com/acampos-dev/secondbrain/internal/tui"
)

type TuiCmd struct{}

func (c *TuiCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	// Automatic backup on TUI startup, after a successful load.
	ctx.PerformAutomaticBackup()

	stop := startReminders(ctx.Store, notifier.New())
	defer stop()

	p := tea.NewProgram(tui.NewModel(ctx.Store), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Alas, there's been an error: %v", err)
		os.Exit(1)
	}
	return nil
}

// startReminders runs a reminder watcher in the background so due activities
// fire OS notifications while the TUI is open. The returned stop func cancels
// the watcher.
func startReminders(store storage.Provider, sender reminder.Sender) (stop func()) {
	runCtx, cancel := context.WithCancel(context.Background())
	go func() {
		if err := reminder.NewWatcher(store, sender).Run(runCtx); err != nil && !errors.Is(err, context.Canceled) {
			logger.Error("reminder watcher stopped", "error", err)
		}
	}()
	return cancel
}
