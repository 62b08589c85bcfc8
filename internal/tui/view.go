package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/julianstephens/habitflow/internal/stats"
	"github.com/julianstephens/habitflow/internal/sync"
	"github.com/julianstephens/habitflow/internal/utils"
)

func (m Model) View() string {
	if m.form != nil {
		return m.form.View()
	}

	var b strings.Builder

	b.WriteString(m.styles.Title.Render("HabitFlow"))
	b.WriteString("\n")
	if readable, err := utils.ReadableDate(utils.TodayKey()); err == nil {
		b.WriteString(m.styles.Date.Render(readable))
	}
	b.WriteString("\n\n")

	if len(m.habits) == 0 {
		b.WriteString(m.styles.Habit.Render("No habits yet. Press 'a' to add one."))
		b.WriteString("\n")
	}

	for i, h := range m.habits {
		cursor := "  "
		style := m.styles.Habit
		if i == m.cursor {
			cursor = m.styles.Cursor.Render("> ")
			style = m.styles.Selected
		}

		marker := "[ ]"
		if h.Count >= h.Goal {
			marker = m.styles.Complete.Render("[x]")
		}

		progress := fmt.Sprintf("%s / %s", trimFloat(h.Count), trimFloat(h.Goal))
		if h.Unit != "" {
			progress += " " + h.Unit
		}

		line := fmt.Sprintf("%s %s  %s", marker, h.Name, m.styles.Progress.Render(progress))
		b.WriteString(cursor + style.Render(line))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.styles.Status.Render(m.summaryLine()))
	b.WriteString("\n")

	if m.status != "" {
		style := m.styles.Status
		if m.statErr {
			style = m.styles.ErrStatus
		}
		b.WriteString(style.Render(m.status))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.styles.Help.Render(m.help.View(m.keys)))
	return b.String()
}

func (m Model) summaryLine() string {
	completed := 0
	for _, h := range m.habits {
		if h.Count >= h.Goal {
			completed++
		}
	}
	line := fmt.Sprintf("%d/%d complete", completed, len(m.habits))

	today := utils.TodayKey()
	if streak := stats.CurrentStreak(m.tracker.Logs(), today); streak > 0 {
		line += fmt.Sprintf("  ·  %d day streak", streak)
	}
	if m.dispatcher.State() == sync.Syncing {
		line += "  ·  syncing..."
	}
	return line
}

func trimFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
