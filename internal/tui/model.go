package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/acampos-dev/secondbrain/internal/constants"
	"github.com/acampos-dev/secondbrain/internal/models"
	"github.com/acampos-dev/secondbrain/internal/storage"
	"github.com/acampos-dev/secondbrain/internal/timeline"
	"github.com/acampos-dev/secondbrain/internal/utils"
)

type SessionState int

const (
	StateDay SessionState = iota
	StateWeek
	StateAddActivity
	StateAddEvent
)

type ActivityFormModel struct {
	Title    string
	Time     string
	Duration string
	Category string
	Days     string
}

type EventFormModel struct {
	Title    string
	Time     string
	Duration string
}

type Model struct {
	store storage.Provider
	state SessionState
	keys  KeyMap
	help  help.Model

	date       time.Time
	location   *time.Location
	settings   models.Settings
	activities []models.Activity
	adaptation *models.Adaptation
	blocks     []timeline.Block

	selected int
	now      time.Time

	form         *huh.Form
	activityForm *ActivityFormModel
	eventForm    *EventFormModel

	quitting bool
	width    int
	height   int
	status   string
}

func NewModel(store storage.Provider) Model {
	m := Model{
		store: store,
		state: StateDay,
		keys:  DefaultKeyMap(),
		help:  help.New(),
		now:   time.Now(),
	}

	settings, err := store.GetSettings()
	if err == nil {
		m.settings = settings
	}
	loc, err := utils.LoadLocation(m.settings.Timezone)
	if err != nil {
		loc = time.Local
	}
	m.location = loc
	m.date = time.Now().In(loc)

	m.reload()
	return m
}

// reload re-reads everything for the focused date and recomputes the layout.
func (m *Model) reload() {
	day := m.date.Format(constants.DateFormat)

	activities, err := m.store.GetAllActivities(false, false)
	if err != nil {
		m.status = "failed to load activities: " + err.Error()
		return
	}
	m.activities = activities

	adaptation, err := m.store.GetAdaptation(day)
	if err != nil {
		m.status = "failed to load adaptation: " + err.Error()
		return
	}
	m.adaptation = adaptation

	m.blocks = timeline.Layout(m.activities, m.adaptation, m.date, "")
	if m.selected >= len(m.blocks) {
		m.selected = len(m.blocks) - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
	m.status = ""
}

func (m Model) today() string {
	return time.Now().In(m.location).Format(constants.DateFormat)
}

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.keys.Tab, m.keys.PrevDay, m.keys.NextDay, m.keys.Quit, m.keys.Help}
	if m.state == StateDay {
		keys = append(keys, m.keys.Toggle, m.keys.Add, m.keys.Event)
	}
	return keys
}

func (m Model) FullHelp() [][]key.Binding {
	global := []key.Binding{m.keys.Tab, m.keys.ShiftTab, m.keys.Quit, m.keys.Help, m.keys.Refresh}
	navigation := []key.Binding{m.keys.Up, m.keys.Down, m.keys.PrevDay, m.keys.NextDay, m.keys.Today}
	actions := []key.Binding{m.keys.Toggle, m.keys.Add, m.keys.Event}
	return [][]key.Binding{global, navigation, actions}
}

type TickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func (m Model) Init() tea.Cmd {
	return tick()
}
