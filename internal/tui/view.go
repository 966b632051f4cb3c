package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/acampos-dev/secondbrain/internal/constants"
	"github.com/acampos-dev/secondbrain/internal/timeline"
	"github.com/acampos-dev/secondbrain/internal/utils"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.state {
	case StateDay:
		content = m.viewDay()
	case StateWeek:
		content = m.viewWeek()
	case StateAddActivity, StateAddEvent:
		content = m.form.View()
	}

	var status string
	if m.status != "" {
		status = statusStyle.Render(m.status)
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewTabs(),
		content,
		status,
		m.help.View(m),
	)
}

func (m Model) viewTabs() string {
	var tabs []string
	tabTitles := []string{"Day", "Week"}
	for i, title := range tabTitles {
		if m.state == SessionState(i) {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewDay() string {
	header := m.date.Format("Monday, 2006-01-02")
	if m.adaptation != nil {
		header += "  (adapted)"
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render(header))
	b.WriteString("\n")

	if len(m.blocks) == 0 {
		b.WriteString(hourStyle.Render("  (nothing scheduled)"))
		return docStyle.Render(b.String())
	}

	isToday := m.date.Format(constants.DateFormat) == m.today()
	nowHours := float64(m.now.Hour()) + float64(m.now.Minute())/60
	markerDrawn := !isToday

	lastHour := -1
	for i, block := range m.blocks {
		if !markerDrawn && block.Start >= nowHours {
			b.WriteString(nowMarkerStyle.Render(fmt.Sprintf("       ── now %s ──", m.now.Format("3:04 PM"))))
			b.WriteString("\n")
			markerDrawn = true
		}

		hour := int(block.Start)
		gutter := "      "
		if hour != lastHour {
			gutter = hourStyle.Render(fmt.Sprintf("%5s ", hourLabel(hour)))
			lastHour = hour
		}

		b.WriteString(gutter)
		b.WriteString(m.renderBlock(block, i == m.selected))
		b.WriteString("\n")
		if block.HasNextConnection {
			b.WriteString(hourStyle.Render("         |"))
			b.WriteString("\n")
		}
	}
	if !markerDrawn {
		b.WriteString(nowMarkerStyle.Render(fmt.Sprintf("       ── now %s ──", m.now.Format("3:04 PM"))))
		b.WriteString("\n")
	}

	return docStyle.Render(b.String())
}

func (m Model) renderBlock(block timeline.Block, selected bool) string {
	// A continuation strip from yesterday renders without title or checkbox.
	if block.IsSpillover {
		line := fmt.Sprintf("%s    %-8s (%dm)  [from yesterday]",
			strings.Repeat("    ", block.Lane), block.TimeLabel, block.DurationMin)
		style := spilloverBlockStyle
		if selected {
			style = selectedBlockStyle
		}
		return style.Render("  " + line)
	}

	mark := "[ ]"
	if block.Completed {
		mark = "[x]"
	}
	if block.IsEvent {
		mark = "[!]"
	}

	var tags []string
	if block.IsEvent {
		tags = append(tags, "event")
	}
	if block.IsAdapted {
		if block.Rationale != "" {
			tags = append(tags, block.Rationale)
		} else {
			tags = append(tags, "adapted")
		}
	}
	if block.Category != "" {
		tags = append(tags, block.Category)
	}
	tagText := ""
	if len(tags) > 0 {
		tagText = "  [" + strings.Join(tags, ", ") + "]"
	}

	line := fmt.Sprintf("%s%s %-8s %s (%dm)%s",
		strings.Repeat("    ", block.Lane), mark, block.TimeLabel, block.Title, block.DurationMin, tagText)

	style := lipgloss.NewStyle()
	switch {
	case selected:
		style = selectedBlockStyle
		line = "▸ " + line
	case block.Completed:
		style = completedBlockStyle
		line = "  " + line
	case block.IsEvent:
		style = eventBlockStyle
		line = "  " + line
	default:
		line = "  " + line
	}
	return style.Render(line)
}

func (m Model) viewWeek() string {
	monday := utils.MondayOf(m.date)
	header := fmt.Sprintf("Week of %s", monday.Format("2006-01-02"))

	var b strings.Builder
	b.WriteString(headerStyle.Render(header))
	b.WriteString("\n")

	if len(m.activities) == 0 {
		b.WriteString(hourStyle.Render("  (no activities)"))
		return docStyle.Render(b.String())
	}

	today := m.today()
	for _, a := range m.activities {
		summary := timeline.WeekShape(a, m.date, today)
		strip := weekStrip(summary, monday)

		badge := fmt.Sprintf("%d/%d", summary.CompletedCount, len(summary.Days))
		if len(summary.Days) == 0 {
			badge = "unscheduled"
		}
		b.WriteString(fmt.Sprintf("  %s  %-28s %s\n", strip, a.Title, hourStyle.Render(badge)))
	}

	return docStyle.Render(b.String())
}

// weekStrip renders seven cells Monday through Sunday. Unscheduled days show
// as a faint dot.
func weekStrip(summary timeline.WeekSummary, monday time.Time) string {
	statusByDate := make(map[string]timeline.DayStatus, len(summary.Days))
	for _, d := range summary.Days {
		statusByDate[d.Date] = d.Status
	}

	var cells strings.Builder
	for i := 0; i < 7; i++ {
		date := monday.AddDate(0, 0, i).Format(constants.DateFormat)
		switch statusByDate[date] {
		case timeline.StatusCompleted:
			cells.WriteString("●")
		case timeline.StatusMissed:
			cells.WriteString("○")
		case timeline.StatusFuture:
			cells.WriteString("-")
		default:
			cells.WriteString("·")
		}
	}
	return cells.String()
}

func hourLabel(hour int) string {
	switch {
	case hour == 0:
		return "12am"
	case hour < 12:
		return fmt.Sprintf("%dam", hour)
	case hour == 12:
		return "12pm"
	default:
		return fmt.Sprintf("%dpm", hour-12)
	}
}
