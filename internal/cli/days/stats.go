package days

import (
	"fmt"
	"time"

	"github.com/acampos-dev/secondbrain/internal/cli"
	"github.com/acampos-dev/secondbrain/internal/insights"
	"github.com/acampos-dev/secondbrain/internal/utils"
)

type StatsCmd struct {
	Window int `short:"n" help:"Window size in days." default:"28"`
}

func (c *StatsCmd) Validate() error {
	if c.Window < 1 {
		return fmt.Errorf("window must be at least 1 day")
	}
	return nil
}

func (c *StatsCmd) Run(ctx *cli.Context) error {
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}
	loc, err := utils.LoadLocation(settings.Timezone)
	if err != nil {
		loc = time.Local
	}

	analyzer := insights.NewAnalyzer(ctx.Store)
	stats, suggestions, err := analyzer.AnalyzeAll(time.Now().In(loc), c.Window)
	if err != nil {
		return err
	}
	if len(stats) == 0 {
		fmt.Println("No activities found")
		return nil
	}

	fmt.Printf("Last %d days:\n", c.Window)
	for _, s := range stats {
		if s.ScheduledDays == 0 {
			fmt.Printf("  %-24s not scheduled in window\n", s.Title)
			continue
		}
		fmt.Printf("  %-24s %d/%d (%.0f%%), streak %d (best %d)\n",
			s.Title, s.CompletedDays, s.ScheduledDays, s.CompletionRate*100,
			s.CurrentStreak, s.BestStreak)
	}

	if len(suggestions) > 0 {
		fmt.Println("\nSuggestions:")
		for _, suggestion := range suggestions {
			fmt.Printf("  %s: %s\n", suggestion.Title, suggestion.Reason)
		}
	}
	return nil
}
