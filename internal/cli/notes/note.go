package notes

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/acampos-dev/secondbrain/internal/cli"
	"github.com/acampos-dev/secondbrain/internal/models"
)

type NoteCmd struct {
	Add    NoteAddCmd    `cmd:"" help:"Add a new note."`
	List   NoteListCmd   `cmd:"" help:"List notes." default:"1"`
	Show   NoteShowCmd   `cmd:"" help:"Show a note's full body."`
	Edit   NoteEditCmd   `cmd:"" help:"Edit an existing note."`
	Delete NoteDeleteCmd `cmd:"" help:"Soft-delete a note."`
}

func resolveNote(ctx *cli.Context, ref string) (models.Note, error) {
	if note, err := ctx.Store.GetNote(ref); err == nil {
		return note, nil
	}
	notes, err := ctx.Store.GetAllNotes()
	if err != nil {
		return models.Note{}, fmt.Errorf("failed to get notes: %w", err)
	}
	for _, note := range notes {
		if strings.EqualFold(note.Title, ref) {
			return note, nil
		}
	}
	return models.Note{}, fmt.Errorf("no note matches %q", ref)
}

type NoteAddCmd struct {
	Title string `arg:"" help:"Note title."`
	Body  string `short:"b" help:"Note body (markdown)."`
	Tags  string `short:"t" help:"Comma-separated tags."`
}

func (c *NoteAddCmd) Run(ctx *cli.Context) error {
	now := time.Now()
	note := models.Note{
		ID:        uuid.New().String(),
		Title:     c.Title,
		Body:      c.Body,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if c.Tags != "" {
		for _, tag := range strings.Split(c.Tags, ",") {
			if tag = strings.TrimSpace(tag); tag != "" {
				note.Tags = append(note.Tags, tag)
			}
		}
	}

	if err := ctx.Store.AddNote(note); err != nil {
		return err
	}
	fmt.Printf("Added note: %s (ID: %s)\n", c.Title, note.ID)
	return nil
}

type NoteListCmd struct {
	Tag     string `short:"t" help:"Filter by tag."`
	ShowIDs bool   `help:"Show note IDs." name:"show-ids"`
}

func (c *NoteListCmd) Run(ctx *cli.Context) error {
	notes, err := ctx.Store.GetAllNotes()
	if err != nil {
		return fmt.Errorf("failed to get notes: %w", err)
	}
	if len(notes) == 0 {
		fmt.Println("No notes found")
		return nil
	}

	fmt.Println("Notes:")
	for _, note := range notes {
		if c.Tag != "" && !hasTag(note, c.Tag) {
			continue
		}
		idStr := ""
		if c.ShowIDs {
			idStr = fmt.Sprintf(" (ID: %s)", note.ID)
		}
		line := fmt.Sprintf("  %s%s - %s", note.Title, idStr, note.UpdatedAt.Format("2006-01-02"))
		if len(note.Tags) > 0 {
			line += fmt.Sprintf(" [%s]", strings.Join(note.Tags, ", "))
		}
		fmt.Println(line)
	}
	return nil
}

func hasTag(note models.Note, tag string) bool {
	for _, t := range note.Tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}

type NoteShowCmd struct {
	Note string `arg:"" help:"Note id or title."`
}

func (c *NoteShowCmd) Run(ctx *cli.Context) error {
	note, err := resolveNote(ctx, c.Note)
	if err != nil {
		return err
	}

	fmt.Printf("# %s\n", note.Title)
	if len(note.Tags) > 0 {
		fmt.Printf("Tags: %s\n", strings.Join(note.Tags, ", "))
	}
	fmt.Printf("Updated: %s\n\n", note.UpdatedAt.Format("2006-01-02 15:04"))
	if note.Body != "" {
		fmt.Println(note.Body)
	}
	return nil
}

type NoteEditCmd struct {
	Note string `arg:"" help:"Note id or title."`

	Title *string `help:"New title."`
	Body  *string `short:"b" help:"New body."`
	Tags  *string `short:"t" help:"New comma-separated tags, empty string clears them."`
}

func (c *NoteEditCmd) Run(ctx *cli.Context) error {
	note, err := resolveNote(ctx, c.Note)
	if err != nil {
		return err
	}

	updated := false
	if c.Title != nil {
		note.Title = *c.Title
		updated = true
	}
	if c.Body != nil {
		note.Body = *c.Body
		updated = true
	}
	if c.Tags != nil {
		note.Tags = nil
		for _, tag := range strings.Split(*c.Tags, ",") {
			if tag = strings.TrimSpace(tag); tag != "" {
				note.Tags = append(note.Tags, tag)
			}
		}
		updated = true
	}

	if !updated {
		fmt.Println("No changes specified.")
		return nil
	}

	note.UpdatedAt = time.Now()
	if err := ctx.Store.UpdateNote(note); err != nil {
		return err
	}
	fmt.Printf("Updated note: %s\n", note.Title)
	return nil
}

type NoteDeleteCmd struct {
	Note string `arg:"" help:"Note id or title."`
}

func (c *NoteDeleteCmd) Run(ctx *cli.Context) error {
	note, err := resolveNote(ctx, c.Note)
	if err != nil {
		return err
	}
	if err := ctx.Store.DeleteNote(note.ID); err != nil {
		return err
	}
	fmt.Printf("Deleted note: %s\n", note.Title)
	return nil
}
