package metrics

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/acampos-dev/secondbrain/internal/cli"
	"github.com/acampos-dev/secondbrain/internal/models"
	"github.com/acampos-dev/secondbrain/internal/utils"
)

type LogCmd struct {
	Add    LogAddCmd    `cmd:"" help:"Log a data point."`
	List   LogListCmd   `cmd:"" help:"List logged data points." default:"1"`
	Delete LogDeleteCmd `cmd:"" help:"Delete a data point."`
}

type LogAddCmd struct {
	Kind  string  `arg:"" help:"Metric kind (e.g. weight, sleep, expense)."`
	Value float64 `arg:"" help:"Metric value."`
	Unit  string  `short:"u" help:"Unit label (kg, h, EUR, ...)."`
	Note  string  `help:"Free-form note."`
	Date  string  `help:"Date (YYYY-MM-DD), defaults to today."`
}

func (c *LogAddCmd) Validate() error {
	if c.Kind == "" {
		return fmt.Errorf("kind must not be empty")
	}
	if c.Date != "" && !utils.ValidateDateFormat(c.Date) {
		return fmt.Errorf("invalid date format (expected YYYY-MM-DD): %s", c.Date)
	}
	return nil
}

func (c *LogAddCmd) Run(ctx *cli.Context) error {
	day := c.Date
	if day == "" {
		day = ctx.Today()
	}

	metric := models.Metric{
		ID:        uuid.New().String(),
		Day:       day,
		Kind:      c.Kind,
		Value:     c.Value,
		Unit:      c.Unit,
		Note:      c.Note,
		CreatedAt: time.Now(),
	}
	if err := ctx.Store.AddMetric(metric); err != nil {
		return err
	}
	fmt.Printf("Logged %s = %g%s on %s\n", c.Kind, c.Value, c.Unit, day)
	return nil
}

type LogListCmd struct {
	Kind    string `arg:"" optional:"" help:"Filter by metric kind."`
	From    string `help:"Start date (YYYY-MM-DD), defaults to 30 days ago."`
	To      string `help:"End date (YYYY-MM-DD), defaults to today."`
	ShowIDs bool   `help:"Show metric IDs." name:"show-ids"`
}

func (c *LogListCmd) Validate() error {
	if c.From != "" && !utils.ValidateDateFormat(c.From) {
		return fmt.Errorf("invalid from date format (expected YYYY-MM-DD): %s", c.From)
	}
	if c.To != "" && !utils.ValidateDateFormat(c.To) {
		return fmt.Errorf("invalid to date format (expected YYYY-MM-DD): %s", c.To)
	}
	return nil
}

func (c *LogListCmd) Run(ctx *cli.Context) error {
	to := c.To
	if to == "" {
		to = ctx.Today()
	}
	from := c.From
	if from == "" {
		end, err := time.Parse("2006-01-02", to)
		if err != nil {
			return err
		}
		from = end.AddDate(0, 0, -30).Format("2006-01-02")
	}

	metrics, err := ctx.Store.GetMetrics(c.Kind, from, to)
	if err != nil {
		return fmt.Errorf("failed to get metrics: %w", err)
	}
	if len(metrics) == 0 {
		fmt.Println("No data points found")
		return nil
	}

	fmt.Printf("Data points (%s to %s):\n", from, to)
	for _, metric := range metrics {
		idStr := ""
		if c.ShowIDs {
			idStr = fmt.Sprintf(" (ID: %s)", metric.ID)
		}
		line := fmt.Sprintf("  %s  %-10s %g%s%s", metric.Day, metric.Kind, metric.Value, metric.Unit, idStr)
		if metric.Note != "" {
			line += fmt.Sprintf(" (%s)", metric.Note)
		}
		fmt.Println(line)
	}
	return nil
}

type LogDeleteCmd struct {
	ID string `arg:"" help:"Metric id."`
}

func (c *LogDeleteCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.DeleteMetric(c.ID); err != nil {
		return err
	}
	fmt.Println("Data point deleted.")
	return nil
}
