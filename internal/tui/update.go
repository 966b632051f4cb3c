package tui

import (
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/google/uuid"

	"github.com/acampos-dev/secondbrain/internal/constants"
	"github.com/acampos-dev/secondbrain/internal/models"
	"github.com/acampos-dev/secondbrain/internal/utils"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.state == StateAddActivity || m.state == StateAddEvent {
		return m.updateForm(msg)
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		m.now = time.Time(msg).In(m.location)
		return m, tick()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Tab), key.Matches(msg, m.keys.ShiftTab):
		if m.state == StateDay {
			m.state = StateWeek
		} else {
			m.state = StateDay
		}
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Refresh):
		m.reload()
		return m, nil

	case key.Matches(msg, m.keys.PrevDay):
		m.date = m.date.AddDate(0, 0, -m.stepDays())
		m.selected = 0
		m.reload()
		return m, nil

	case key.Matches(msg, m.keys.NextDay):
		m.date = m.date.AddDate(0, 0, m.stepDays())
		m.selected = 0
		m.reload()
		return m, nil

	case key.Matches(msg, m.keys.Today):
		m.date = time.Now().In(m.location)
		m.selected = 0
		m.reload()
		return m, nil
	}

	if m.state != StateDay {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Up):
		if m.selected > 0 {
			m.selected--
		}
	case key.Matches(msg, m.keys.Down):
		if m.selected < len(m.blocks)-1 {
			m.selected++
		}
	case key.Matches(msg, m.keys.Toggle):
		m.toggleSelected()
	case key.Matches(msg, m.keys.Add):
		m.activityForm = &ActivityFormModel{Duration: "30"}
		m.form = newActivityForm(m.activityForm)
		m.state = StateAddActivity
		return m, m.form.Init()
	case key.Matches(msg, m.keys.Event):
		m.eventForm = &EventFormModel{Duration: "60"}
		m.form = newEventForm(m.eventForm)
		m.state = StateAddEvent
		return m, m.form.Init()
	}
	return m, nil
}

// stepDays widens the arrow keys to week jumps on the week view.
func (m Model) stepDays() int {
	if m.state == StateWeek {
		return 7
	}
	return 1
}

func (m *Model) toggleSelected() {
	if m.selected >= len(m.blocks) {
		return
	}
	block := m.blocks[m.selected]
	if block.IsEvent {
		m.status = "events have no completion state"
		return
	}

	// The continuation strip carries no completion state of its own; the run
	// it continues is toggled on yesterday's timeline.
	if block.IsSpillover {
		m.status = "continuation from yesterday, toggle it there"
		return
	}

	err := m.store.SetActivityCompleted(block.ActivityID, m.date.Format(constants.DateFormat), !block.Completed)
	if err != nil {
		m.status = "failed to update completion: " + err.Error()
		return
	}
	m.reload()
}

func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
		m.state = StateDay
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		if m.state == StateAddActivity {
			m.saveActivity()
		} else {
			m.saveEvent()
		}
		m.state = StateDay
		m.reload()
	case huh.StateAborted:
		m.state = StateDay
	}
	return m, cmd
}

func (m *Model) saveActivity() {
	duration, err := strconv.Atoi(strings.TrimSpace(m.activityForm.Duration))
	if err != nil || duration <= 0 {
		duration = constants.DefaultCoreMin
	}

	activity := models.Activity{
		ID:          uuid.NewString(),
		Title:       strings.TrimSpace(m.activityForm.Title),
		Category:    strings.TrimSpace(m.activityForm.Category),
		Frequency:   constants.FrequencyDaily,
		Time:        strings.TrimSpace(m.activityForm.Time),
		DurationMin: duration,
		CreatedAt:   time.Now(),
	}
	if days := strings.TrimSpace(m.activityForm.Days); days != "" {
		weekdays, err := utils.ParseWeekdays(days)
		if err == nil && len(weekdays) > 0 {
			activity.Frequency = constants.FrequencySpecificDays
			activity.RepeatDays = weekdays
		}
	}

	if err := m.store.AddActivity(activity); err != nil {
		m.status = "failed to add activity: " + err.Error()
	}
}

func (m *Model) saveEvent() {
	duration, err := strconv.Atoi(strings.TrimSpace(m.eventForm.Duration))
	if err != nil || duration <= 0 {
		duration = constants.DefaultEventMin
	}

	day := m.date.Format(constants.DateFormat)
	adaptation, err := m.store.GetAdaptation(day)
	if err != nil {
		m.status = "failed to load adaptation: " + err.Error()
		return
	}
	if adaptation == nil {
		adaptation = &models.Adaptation{Date: day, CreatedAt: time.Now()}
	}
	adaptation.EventTitle = strings.TrimSpace(m.eventForm.Title)
	adaptation.EventTime = strings.TrimSpace(m.eventForm.Time)
	adaptation.EventDurationMin = duration

	if err := m.store.SaveAdaptation(*adaptation); err != nil {
		m.status = "failed to save event: " + err.Error()
	}
}
