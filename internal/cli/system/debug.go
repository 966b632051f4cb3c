package system

import (
	"encoding/json"
	"fmt"

	"github.com/acampos-dev/secondbrain/internal/cli"
	"github.com/acampos-dev/secondbrain/internal/utils"
)

type DebugCmd struct {
	Info         *DebugInfoCmd         `cmd:"" help:"Show storage summary." default:"1"`
	DBPath       *DebugDBPathCmd       `cmd:"" help:"Show database path."`
	DumpActivity *DebugDumpActivityCmd `cmd:"" help:"Dump an activity as JSON."`
	DumpDay      *DebugDumpDayCmd      `cmd:"" help:"Dump an adaptation record as JSON."`
	DumpSettings *DebugDumpSettingsCmd `cmd:"" help:"Dump settings as JSON."`
}

type DebugInfoCmd struct{}

func (cmd *DebugInfoCmd) Run(ctx *cli.Context) error {
	info := map[string]any{
		"path":  ctx.Store.GetConfigPath(),
		"today": ctx.Today(),
	}

	if activities, err := ctx.Store.GetAllActivities(true, false); err == nil {
		info["activities"] = len(activities)
	}
	if tasks, err := ctx.Store.GetAllTasks(true, false); err == nil {
		info["tasks"] = len(tasks)
	}
	if notes, err := ctx.Store.GetAllNotes(); err == nil {
		info["notes"] = len(notes)
	}
	if projects, err := ctx.Store.GetAllProjects(true); err == nil {
		info["projects"] = len(projects)
	}

	return printJSON(info)
}

type DebugDBPathCmd struct{}

func (cmd *DebugDBPathCmd) Run(ctx *cli.Context) error {
	return printJSON(map[string]string{"path": ctx.Store.GetConfigPath()})
}

type DebugDumpActivityCmd struct {
	Activity string `arg:"" help:"Activity ID or title."`
}

func (cmd *DebugDumpActivityCmd) Run(ctx *cli.Context) error {
	activity, err := ctx.ResolveActivity(cmd.Activity)
	if err != nil {
		return err
	}
	return printJSON(activity)
}

type DebugDumpDayCmd struct {
	Date string `arg:"" help:"Date of the adaptation to dump (YYYY-MM-DD or 'today')."`
}

func (cmd *DebugDumpDayCmd) Run(ctx *cli.Context) error {
	date := cmd.Date
	if date == "today" {
		date = ctx.Today()
	}
	if !utils.ValidateDateFormat(date) {
		return fmt.Errorf("invalid date format: %s (expected YYYY-MM-DD or 'today')", date)
	}

	adaptation, err := ctx.Store.GetAdaptation(date)
	if err != nil {
		return fmt.Errorf("failed to get adaptation: %w", err)
	}
	if adaptation == nil {
		return fmt.Errorf("no adaptation found for date: %s", date)
	}
	return printJSON(adaptation)
}

type DebugDumpSettingsCmd struct{}

func (cmd *DebugDumpSettingsCmd) Run(ctx *cli.Context) error {
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}
	return printJSON(settings)
}

func printJSON(v any) error {
	jsonBytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	fmt.Println(string(jsonBytes))
	return nil
}
