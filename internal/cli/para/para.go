package para

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/acampos-dev/secondbrain/internal/cli"
	"github.com/acampos-dev/secondbrain/internal/constants"
	"github.com/acampos-dev/secondbrain/internal/models"
)

type ProjectCmd struct {
	Add     ProjectAddCmd     `cmd:"" help:"Add a new project."`
	List    ProjectListCmd    `cmd:"" help:"List projects." default:"1"`
	Archive ProjectArchiveCmd `cmd:"" help:"Archive a project."`
	Delete  ProjectDeleteCmd  `cmd:"" help:"Soft-delete a project."`
}

type AreaCmd struct {
	Add    AreaAddCmd    `cmd:"" help:"Add a new area."`
	List   AreaListCmd   `cmd:"" help:"List areas." default:"1"`
	Delete AreaDeleteCmd `cmd:"" help:"Soft-delete an area."`
}

func resolveProject(ctx *cli.Context, ref string) (models.Project, error) {
	if project, err := ctx.Store.GetProject(ref); err == nil {
		return project, nil
	}
	projects, err := ctx.Store.GetAllProjects(true)
	if err != nil {
		return models.Project{}, fmt.Errorf("failed to get projects: %w", err)
	}
	for _, project := range projects {
		if strings.EqualFold(project.Name, ref) {
			return project, nil
		}
	}
	return models.Project{}, fmt.Errorf("no project matches %q", ref)
}

type ProjectAddCmd struct {
	Name string `arg:"" help:"Project name."`
	Area string `short:"a" help:"Area id or name."`
}

func (c *ProjectAddCmd) Run(ctx *cli.Context) error {
	areaID := ""
	if c.Area != "" {
		areas, err := ctx.Store.GetAllAreas()
		if err != nil {
			return fmt.Errorf("failed to get areas: %w", err)
		}
		for _, area := range areas {
			if area.ID == c.Area || strings.EqualFold(area.Name, c.Area) {
				areaID = area.ID
				break
			}
		}
		if areaID == "" {
			return fmt.Errorf("no area matches %q", c.Area)
		}
	}

	project := models.Project{
		ID:        uuid.New().String(),
		Name:      c.Name,
		AreaID:    areaID,
		Status:    constants.ProjectActive,
		CreatedAt: time.Now(),
	}
	if err := ctx.Store.AddProject(project); err != nil {
		return err
	}
	fmt.Printf("Added project: %s (ID: %s)\n", c.Name, project.ID)
	return nil
}

type ProjectListCmd struct {
	All     bool `help:"Include archived projects."`
	ShowIDs bool `help:"Show project IDs." name:"show-ids"`
}

func (c *ProjectListCmd) Run(ctx *cli.Context) error {
	projects, err := ctx.Store.GetAllProjects(c.All)
	if err != nil {
		return fmt.Errorf("failed to get projects: %w", err)
	}
	if len(projects) == 0 {
		fmt.Println("No projects found")
		return nil
	}

	areas, err := ctx.Store.GetAllAreas()
	if err != nil {
		return fmt.Errorf("failed to get areas: %w", err)
	}
	areaNames := make(map[string]string, len(areas))
	for _, area := range areas {
		areaNames[area.ID] = area.Name
	}

	tasks, err := ctx.Store.GetAllTasks(false, false)
	if err != nil {
		return fmt.Errorf("failed to get tasks: %w", err)
	}
	openTasks := make(map[string]int)
	for _, task := range tasks {
		if task.ProjectID != "" {
			openTasks[task.ProjectID]++
		}
	}

	fmt.Println("Projects:")
	for _, project := range projects {
		idStr := ""
		if c.ShowIDs {
			idStr = fmt.Sprintf(" (ID: %s)", project.ID)
		}
		line := fmt.Sprintf("  [%s] %s%s", project.Status, project.Name, idStr)
		if name, ok := areaNames[project.AreaID]; ok {
			line += fmt.Sprintf(" - %s", name)
		}
		if n := openTasks[project.ID]; n > 0 {
			line += fmt.Sprintf(" (%d open tasks)", n)
		}
		fmt.Println(line)
	}
	return nil
}

type ProjectArchiveCmd struct {
	Project string `arg:"" help:"Project id or name."`
}

func (c *ProjectArchiveCmd) Run(ctx *cli.Context) error {
	project, err := resolveProject(ctx, c.Project)
	if err != nil {
		return err
	}
	project.Status = constants.ProjectArchived
	if err := ctx.Store.UpdateProject(project); err != nil {
		return err
	}
	fmt.Printf("Archived project: %s\n", project.Name)
	return nil
}

type ProjectDeleteCmd struct {
	Project string `arg:"" help:"Project id or name."`
}

func (c *ProjectDeleteCmd) Run(ctx *cli.Context) error {
	project, err := resolveProject(ctx, c.Project)
	if err != nil {
		return err
	}
	if err := ctx.Store.DeleteProject(project.ID); err != nil {
		return err
	}
	fmt.Printf("Deleted project: %s\n", project.Name)
	return nil
}

type AreaAddCmd struct {
	Name string `arg:"" help:"Area name."`
}

func (c *AreaAddCmd) Run(ctx *cli.Context) error {
	area := models.Area{
		ID:        uuid.New().String(),
		Name:      c.Name,
		CreatedAt: time.Now(),
	}
	if err := ctx.Store.AddArea(area); err != nil {
		return err
	}
	fmt.Printf("Added area: %s (ID: %s)\n", c.Name, area.ID)
	return nil
}

type AreaListCmd struct {
	ShowIDs bool `help:"Show area IDs." name:"show-ids"`
}

func (c *AreaListCmd) Run(ctx *cli.Context) error {
	areas, err := ctx.Store.GetAllAreas()
	if err != nil {
		return fmt.Errorf("failed to get areas: %w", err)
	}
	if len(areas) == 0 {
		fmt.Println("No areas found")
		return nil
	}

	fmt.Println("Areas:")
	for _, area := range areas {
		if c.ShowIDs {
			fmt.Printf("  %s (ID: %s)\n", area.Name, area.ID)
		} else {
			fmt.Printf("  %s\n", area.Name)
		}
	}
	return nil
}

type AreaDeleteCmd struct {
	Area string `arg:"" help:"Area id or name."`
}

func (c *AreaDeleteCmd) Run(ctx *cli.Context) error {
	areas, err := ctx.Store.GetAllAreas()
	if err != nil {
		return fmt.Errorf("failed to get areas: %w", err)
	}
	for _, area := range areas {
		if area.ID == c.Area || strings.EqualFold(area.Name, c.Area) {
			if err := ctx.Store.DeleteArea(area.ID); err != nil {
				return err
			}
			fmt.Printf("Deleted area: %s\n", area.Name)
			return nil
		}
	}
	return fmt.Errorf("no area matches %q", c.Area)
}
