package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/acampos-dev/secondbrain/internal/timeline"
	"github.com/acampos-dev/secondbrain/internal/utils"
)

func newActivityForm(fm *ActivityFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Value(&fm.Title).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("title cannot be empty")
					}
					return nil
				}),
			huh.NewInput().
				Title("Start time").
				Description("e.g. 06:30 or 7:30 pm; empty renders at midnight").
				Value(&fm.Time).
				Validate(validateClock),
			huh.NewInput().
				Title("Duration (min)").
				Value(&fm.Duration).
				Validate(validateMinutes),
			huh.NewInput().
				Title("Category").
				Value(&fm.Category),
			huh.NewInput().
				Title("Days").
				Description("Comma-separated weekdays (mon,wed,fri); empty means daily").
				Value(&fm.Days).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return nil
					}
					_, err := utils.ParseWeekdays(s)
					return err
				}),
		),
	).WithTheme(huh.ThemeDracula())
}

func newEventForm(fm *EventFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Event title").
				Value(&fm.Title).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("event title cannot be empty")
					}
					return nil
				}),
			huh.NewInput().
				Title("Start time").
				Value(&fm.Time).
				Validate(func(s string) error {
					if _, _, ok := timeline.ParseClock(s); !ok {
						return fmt.Errorf("unparseable time: %s", s)
					}
					return nil
				}),
			huh.NewInput().
				Title("Duration (min)").
				Value(&fm.Duration).
				Validate(validateMinutes),
		),
	).WithTheme(huh.ThemeDracula())
}

func validateClock(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	if _, _, ok := timeline.ParseClock(s); !ok {
		return fmt.Errorf("unparseable time: %s", s)
	}
	return nil
}

func validateMinutes(s string) error {
	i, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return err
	}
	if i <= 0 {
		return fmt.Errorf("duration must be a positive number of minutes")
	}
	return nil
}
