package system

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/acampos-dev/secondbrain/internal/cli"
	"github.com/acampos-dev/secondbrain/internal/storage"
)

type InitCmd struct {
	Force  bool   `help:"Delete any existing database before initializing."`
	Source string `help:"Database path or connection string to migrate data from."`
}

func (c *InitCmd) Run(ctx *cli.Context) error {
	if c.Force {
		if err := c.removeExisting(ctx); err != nil {
			return err
		}
	}

	if err := ctx.Store.Init(); err != nil {
		return err
	}
	fmt.Printf("Initialized storage at: %s\n", ctx.Store.GetConfigPath())

	if c.Source != "" {
		fmt.Printf("Migrating data from: %s\n", c.Source)
		if err := c.migrateData(ctx, c.Source); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
		fmt.Println("Migration completed successfully.")
	}

	return nil
}

func (c *InitCmd) removeExisting(ctx *cli.Context) error {
	dbPath := ctx.Store.GetConfigPath()
	if storage.IsPostgresURL(dbPath) {
		return fmt.Errorf("--force is only supported for SQLite databases")
	}

	if c.Source != "" && !storage.IsPostgresURL(c.Source) {
		absDB, errDB := filepath.Abs(dbPath)
		absSource, errSource := filepath.Abs(c.Source)
		if errDB == nil && errSource == nil && absDB == absSource {
			return fmt.Errorf("cannot use --force when source and destination are the same: %s", absDB)
		}
	}

	if _, err := os.Stat(dbPath); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to access existing database: %w", err)
	}

	// Close first to avoid deleting a locked file.
	if err := ctx.Store.Close(); err != nil {
		return fmt.Errorf("failed to close existing database: %w", err)
	}
	if err := os.Remove(dbPath); err != nil {
		return fmt.Errorf("failed to delete existing database: %w", err)
	}
	fmt.Printf("Deleted existing database at: %s\n", dbPath)
	return nil
}

func (c *InitCmd) migrateData(ctx *cli.Context, source string) error {
	var sourceStore storage.Provider
	if storage.IsPostgresURL(source) {
		if storage.HasEmbeddedCredentials(source) {
			return fmt.Errorf("source connection string contains embedded credentials; use environment variables or .pgpass instead")
		}
		sourceStore = storage.NewPostgresStore(source)
	} else {
		sourceStore = storage.NewSQLiteStore(source)
	}

	if err := sourceStore.Load(); err != nil {
		return fmt.Errorf("failed to load source database: %w", err)
	}
	defer sourceStore.Close()

	fmt.Println("  Migrating settings...")
	settings, err := sourceStore.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings from source: %w", err)
	}
	if err := ctx.Store.SaveSettings(settings); err != nil {
		return fmt.Errorf("failed to save settings to destination: %w", err)
	}

	fmt.Println("  Migrating activities...")
	activities, err := sourceStore.GetAllActivities(true, true)
	if err != nil {
		return fmt.Errorf("failed to get activities from source: %w", err)
	}
	for _, activity := range activities {
		if err := ctx.Store.AddActivity(activity); err != nil {
			return fmt.Errorf("failed to add activity %s: %w", activity.ID, err)
		}
	}
	fmt.Printf("    Migrated %d activities\n", len(activities))

	fmt.Println("  Migrating areas...")
	areas, err := sourceStore.GetAllAreas()
	if err != nil {
		return fmt.Errorf("failed to get areas from source: %w", err)
	}
	for _, area := range areas {
		if err := ctx.Store.AddArea(area); err != nil {
			return fmt.Errorf("failed to add area %s: %w", area.ID, err)
		}
	}
	fmt.Printf("    Migrated %d areas\n", len(areas))

	fmt.Println("  Migrating projects...")
	projects, err := sourceStore.GetAllProjects(true)
	if err != nil {
		return fmt.Errorf("failed to get projects from source: %w", err)
	}
	for _, project := range projects {
		if err := ctx.Store.AddProject(project); err != nil {
			return fmt.Errorf("failed to add project %s: %w", project.ID, err)
		}
	}
	fmt.Printf("    Migrated %d projects\n", len(projects))

	fmt.Println("  Migrating tasks...")
	tasks, err := sourceStore.GetAllTasks(true, true)
	if err != nil {
		return fmt.Errorf("failed to get tasks from source: %w", err)
	}
	for _, task := range tasks {
		if err := ctx.Store.AddTask(task); err != nil {
			return fmt.Errorf("failed to add task %s: %w", task.ID, err)
		}
	}
	fmt.Printf("    Migrated %d tasks\n", len(tasks))

	fmt.Println("  Migrating notes...")
	notes, err := sourceStore.GetAllNotes()
	if err != nil {
		return fmt.Errorf("failed to get notes from source: %w", err)
	}
	for _, note := range notes {
		if err := ctx.Store.AddNote(note); err != nil {
			return fmt.Errorf("failed to add note %s: %w", note.ID, err)
		}
	}
	fmt.Printf("    Migrated %d notes\n", len(notes))

	fmt.Println("  Migrating focus sessions...")
	sessions, err := sourceStore.GetFocusSessions("0000-00-00", "9999-12-31")
	if err != nil {
		return fmt.Errorf("failed to get focus sessions from source: %w", err)
	}
	for _, session := range sessions {
		if err := ctx.Store.AddFocusSession(session); err != nil {
			return fmt.Errorf("failed to add focus session %s: %w", session.ID, err)
		}
	}
	fmt.Printf("    Migrated %d focus sessions\n", len(sessions))

	fmt.Println("  Migrating metrics...")
	metrics, err := sourceStore.GetMetrics("", "0000-00-00", "9999-12-31")
	if err != nil {
		return fmt.Errorf("failed to get metrics from source: %w", err)
	}
	for _, metric := range metrics {
		if err := ctx.Store.AddMetric(metric); err != nil {
			return fmt.Errorf("failed to add metric %s: %w", metric.ID, err)
		}
	}
	fmt.Printf("    Migrated %d metrics\n", len(metrics))

	return nil
}
