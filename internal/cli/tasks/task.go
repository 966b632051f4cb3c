package tasks

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/acampos-dev/secondbrain/internal/cli"
	"github.com/acampos-dev/secondbrain/internal/constants"
	"github.com/acampos-dev/secondbrain/internal/models"
	"github.com/acampos-dev/secondbrain/internal/utils"
)

type TaskCmd struct {
	Add     TaskAddCmd     `cmd:"" help:"Add a new task."`
	List    TaskListCmd    `cmd:"" help:"List tasks." default:"1"`
	Done    TaskDoneCmd    `cmd:"" help:"Mark a task as done."`
	Edit    TaskEditCmd    `cmd:"" help:"Edit an existing task."`
	Delete  TaskDeleteCmd  `cmd:"" help:"Soft-delete a task."`
	Restore TaskRestoreCmd `cmd:"" help:"Restore a deleted task."`
}

func parseStatus(s string) (constants.TaskStatus, error) {
	switch constants.TaskStatus(strings.ToLower(s)) {
	case constants.TaskStatusInbox:
		return constants.TaskStatusInbox, nil
	case constants.TaskStatusNext:
		return constants.TaskStatusNext, nil
	case constants.TaskStatusSomeday:
		return constants.TaskStatusSomeday, nil
	case constants.TaskStatusDone:
		return constants.TaskStatusDone, nil
	}
	return "", fmt.Errorf("invalid status: %s (expected inbox|next|someday|done)", s)
}

func resolveTask(ctx *cli.Context, ref string) (models.Task, error) {
	if task, err := ctx.Store.GetTask(ref); err == nil {
		return task, nil
	}
	tasks, err := ctx.Store.GetAllTasks(true, false)
	if err != nil {
		return models.Task{}, fmt.Errorf("failed to get tasks: %w", err)
	}
	for _, task := range tasks {
		if strings.EqualFold(task.Title, ref) {
			return task, nil
		}
	}
	return models.Task{}, fmt.Errorf("no task matches %q", ref)
}

type TaskAddCmd struct {
	Title   string `arg:"" help:"Task title."`
	Status  string `short:"s" help:"Status (inbox|next|someday)." default:"inbox"`
	Due     string `help:"Due date (YYYY-MM-DD)."`
	Project string `short:"p" help:"Project id or name."`
	Note    string `help:"Free-form note."`
}

func (c *TaskAddCmd) Validate() error {
	if _, err := parseStatus(c.Status); err != nil {
		return err
	}
	if c.Due != "" && !utils.ValidateDateFormat(c.Due) {
		return fmt.Errorf("invalid due date format (expected YYYY-MM-DD): %s", c.Due)
	}
	return nil
}

func (c *TaskAddCmd) Run(ctx *cli.Context) error {
	status, _ := parseStatus(c.Status)

	projectID := ""
	if c.Project != "" {
		projects, err := ctx.Store.GetAllProjects(true)
		if err != nil {
			return fmt.Errorf("failed to get projects: %w", err)
		}
		for _, project := range projects {
			if project.ID == c.Project || strings.EqualFold(project.Name, c.Project) {
				projectID = project.ID
				break
			}
		}
		if projectID == "" {
			return fmt.Errorf("no project matches %q", c.Project)
		}
	}

	task := models.Task{
		ID:        uuid.New().String(),
		Title:     c.Title,
		Status:    status,
		Due:       c.Due,
		ProjectID: projectID,
		Note:      c.Note,
		CreatedAt: time.Now(),
	}
	if err := ctx.Store.AddTask(task); err != nil {
		return err
	}

	fmt.Printf("Added task: %s (ID: %s)\n", c.Title, task.ID)
	return nil
}

type TaskListCmd struct {
	All     bool   `help:"Include done tasks."`
	Status  string `short:"s" help:"Filter by status."`
	ShowIDs bool   `help:"Show task IDs." name:"show-ids"`
}

func (c *TaskListCmd) Run(ctx *cli.Context) error {
	tasks, err := ctx.Store.GetAllTasks(c.All, false)
	if err != nil {
		return fmt.Errorf("failed to get tasks: %w", err)
	}
	if len(tasks) == 0 {
		fmt.Println("No tasks found")
		return nil
	}

	today := ctx.Today()
	fmt.Println("Tasks:")
	for _, task := range tasks {
		if c.Status != "" && string(task.Status) != strings.ToLower(c.Status) {
			continue
		}

		idStr := ""
		if c.ShowIDs {
			idStr = fmt.Sprintf(" (ID: %s)", task.ID)
		}
		line := fmt.Sprintf("  [%s] %s%s", task.Status, task.Title, idStr)
		if task.Due != "" {
			if task.Overdue(today) {
				line += fmt.Sprintf(" - OVERDUE (due %s)", task.Due)
			} else {
				line += fmt.Sprintf(" - due %s", task.Due)
			}
		}
		fmt.Println(line)
	}
	return nil
}

type TaskDoneCmd struct {
	Task string `arg:"" help:"Task id or title."`
}

func (c *TaskDoneCmd) Run(ctx *cli.Context) error {
	task, err := resolveTask(ctx, c.Task)
	if err != nil {
		return err
	}

	now := time.Now()
	task.Status = constants.TaskStatusDone
	task.CompletedAt = &now
	if err := ctx.Store.UpdateTask(task); err != nil {
		return err
	}
	fmt.Printf("Done: %s\n", task.Title)
	return nil
}

type TaskEditCmd struct {
	Task string `arg:"" help:"Task id or title."`

	Title  *string `help:"New title."`
	Status *string `short:"s" help:"New status (inbox|next|someday|done)."`
	Due    *string `help:"New due date (YYYY-MM-DD), empty string clears it."`
	Note   *string `help:"New note."`
}

func (c *TaskEditCmd) Run(ctx *cli.Context) error {
	task, err := resolveTask(ctx, c.Task)
	if err != nil {
		return err
	}

	updated := false
	if c.Title != nil {
		task.Title = *c.Title
		updated = true
	}
	if c.Status != nil {
		status, err := parseStatus(*c.Status)
		if err != nil {
			return err
		}
		task.Status = status
		if status == constants.TaskStatusDone && task.CompletedAt == nil {
			now := time.Now()
			task.CompletedAt = &now
		}
		updated = true
	}
	if c.Due != nil {
		if *c.Due != "" && !utils.ValidateDateFormat(*c.Due) {
			return fmt.Errorf("invalid due date format (expected YYYY-MM-DD): %s", *c.Due)
		}
		task.Due = *c.Due
		updated = true
	}
	if c.Note != nil {
		task.Note = *c.Note
		updated = true
	}

	if !updated {
		fmt.Println("No changes specified.")
		return nil
	}
	if err := ctx.Store.UpdateTask(task); err != nil {
		return err
	}
	fmt.Printf("Updated task: %s\n", task.Title)
	return nil
}

type TaskDeleteCmd struct {
	Task string `arg:"" help:"Task id or title."`
}

func (c *TaskDeleteCmd) Run(ctx *cli.Context) error {
	task, err := resolveTask(ctx, c.Task)
	if err != nil {
		return err
	}
	if err := ctx.Store.DeleteTask(task.ID); err != nil {
		return err
	}
	fmt.Printf("Deleted task: %s (restore with 'sb task restore %s')\n", task.Title, task.ID)
	return nil
}

type TaskRestoreCmd struct {
	ID string `arg:"" help:"Task id."`
}

func (c *TaskRestoreCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.RestoreTask(c.ID); err != nil {
		return err
	}
	fmt.Println("Task restored.")
	return nil
}
