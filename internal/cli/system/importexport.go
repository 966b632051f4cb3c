package system

import (
	"fmt"
	"os"

	"github.com/acampos-dev/secondbrain/internal/cli"
	"github.com/acampos-dev/secondbrain/internal/storage"
)

type ExportCmd struct {
	File string `arg:"" optional:"" help:"Destination file; stdout when omitted."`
}

func (c *ExportCmd) Run(ctx *cli.Context) error {
	out := os.Stdout
	if c.File != "" {
		f, err := os.Create(c.File)
		if err != nil {
			return fmt.Errorf("failed to create export file: %w", err)
		}
		defer f.Close()
		out = f
	}

	if err := storage.Export(ctx.Store, out); err != nil {
		return fmt.Errorf("export failed: %w", err)
	}
	if c.File != "" {
		fmt.Printf("Exported snapshot to %s\n", c.File)
	}
	return nil
}

type ImportCmd struct {
	File string `arg:"" help:"Snapshot file or legacy record export to import."`
}

func (c *ImportCmd) Run(ctx *cli.Context) error {
	f, err := os.Open(c.File)
	if err != nil {
		return fmt.Errorf("failed to open import file: %w", err)
	}
	defer f.Close()

	ctx.PerformAutomaticBackup()

	result, err := storage.Import(ctx.Store, f)
	if err != nil {
		return fmt.Errorf("import failed: %w", err)
	}

	fmt.Println("Import completed:")
	for _, line := range []struct {
		label string
		count int
	}{
		{"activities", result.Activities},
		{"areas", result.Areas},
		{"projects", result.Projects},
		{"tasks", result.Tasks},
		{"notes", result.Notes},
		{"focus sessions", result.Sessions},
		{"metrics", result.Metrics},
	} {
		if line.count > 0 {
			fmt.Printf("  %d %s\n", line.count, line.label)
		}
	}
	return nil
}
