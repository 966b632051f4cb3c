package system

import (
	"fmt"
	"time"

	"github.com/acampos-dev/secondbrain/internal/backup"
	"github.com/acampos-dev/secondbrain/internal/cli"
	"github.com/acampos-dev/secondbrain/internal/keyring"
	"github.com/acampos-dev/secondbrain/internal/utils"
	"github.com/acampos-dev/secondbrain/internal/validation"
)

type DoctorCmd struct{}

func (cmd *DoctorCmd) Run(ctx *cli.Context) error {
	fmt.Println("Running diagnostics...")
	fmt.Println()

	hasError := false
	dbReachable := false

	if err := checkDBReachable(ctx); err != nil {
		fmt.Printf("FAIL Database reachable\n")
		fmt.Printf("     %v\n", err)
		hasError = true
	} else {
		fmt.Printf("  OK Database reachable\n")
		dbReachable = true
	}

	if dbReachable {
		if err := checkClockTimezone(ctx); err != nil {
			fmt.Printf("FAIL Clock/timezone\n")
			fmt.Printf("     %v\n", err)
			hasError = true
		} else {
			fmt.Printf("  OK Clock/timezone\n")
		}

		if report, err := checkData(ctx); err != nil {
			fmt.Printf("FAIL Data validation\n")
			fmt.Printf("     %v\n", err)
			hasError = true
		} else if report != "" {
			fmt.Printf("WARN Data validation\n")
			fmt.Printf("     %s\n", report)
		} else {
			fmt.Printf("  OK Data validation\n")
		}
	} else {
		fmt.Printf("SKIP Clock/timezone (database not reachable)\n")
		fmt.Printf("SKIP Data validation (database not reachable)\n")
	}

	if err := checkBackupsPresent(ctx); err != nil {
		fmt.Printf("WARN Backups present\n")
		fmt.Printf("     %v\n", err)
	} else {
		fmt.Printf("  OK Backups present\n")
	}

	if keyring.IsAvailable() {
		fmt.Printf("  OK OS keyring available\n")
	} else {
		fmt.Printf("WARN OS keyring not available (Postgres credentials must come from the environment or .pgpass)\n")
	}

	fmt.Println()
	if hasError {
		fmt.Println("Diagnostics completed with errors.")
		return fmt.Errorf("one or more health checks failed")
	}
	fmt.Println("All diagnostics passed.")
	return nil
}

func checkDBReachable(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return fmt.Errorf("failed to load database: %w", err)
	}
	if _, err := ctx.Store.GetSettings(); err != nil {
		return fmt.Errorf("failed to read settings: %w", err)
	}
	return nil
}

func checkClockTimezone(ctx *cli.Context) error {
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return err
	}
	loc, err := utils.LoadLocation(settings.Timezone)
	if err != nil {
		return fmt.Errorf("configured timezone %q cannot be loaded: %w", settings.Timezone, err)
	}
	now := time.Now().In(loc)
	if now.Year() < 2020 {
		return fmt.Errorf("system clock reports %s, which looks wrong", now.Format(time.RFC3339))
	}
	return nil
}

// checkData runs the conflict detector over everything on disk. A non-empty
// report is a warning, not a failure, since a bad time string still renders.
func checkData(ctx *cli.Context) (string, error) {
	activities, err := ctx.Store.GetAllActivities(true, false)
	if err != nil {
		return "", fmt.Errorf("failed to load activities: %w", err)
	}

	v := validation.New()
	result := v.ValidateActivities(activities)

	if adaptation, err := ctx.Store.GetAdaptation(ctx.Today()); err == nil && adaptation != nil {
		adaptResult := v.ValidateAdaptation(adaptation, activities)
		result.Conflicts = append(result.Conflicts, adaptResult.Conflicts...)
	}

	if !result.HasConflicts() {
		return "", nil
	}
	return result.FormatReport(), nil
}

func checkBackupsPresent(ctx *cli.Context) error {
	mgr := backup.NewManager(ctx.Store.GetConfigPath())
	backups, err := mgr.ListBackups()
	if err != nil {
		return fmt.Errorf("failed to list backups: %w", err)
	}
	if len(backups) == 0 {
		return fmt.Errorf("no backups found, consider creating one with 'sb backup create'")
	}
	return nil
}
