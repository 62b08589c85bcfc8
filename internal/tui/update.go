package tui

import (
	"errors"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/habitflow/internal/models"
	"github.com/julianstephens/habitflow/internal/sync"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
	case tickMsg:
		// Refresh the projection each second so a session left running
		// across midnight rolls over to the new day.
		m.refresh()
		return m, tick()
	}

	switch m.mode {
	case modeAdd:
		return m.updateAdd(msg)
	case modeConfirmDelete, modeConfirmReset:
		return m.updateConfirm(msg)
	}
	return m.updateBrowse(msg)
}

func (m Model) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(keyMsg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(keyMsg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(keyMsg, m.keys.Down):
		if m.cursor < len(m.habits)-1 {
			m.cursor++
		}
	case key.Matches(keyMsg, m.keys.Increment):
		if h, ok := m.selected(); ok {
			if err := m.tracker.Track(h.ID); err != nil {
				m.setErr(err.Error())
			} else {
				m.status = ""
			}
			m.refresh()
		}
	case key.Matches(keyMsg, m.keys.Decrement):
		if h, ok := m.selected(); ok {
			if err := m.tracker.Untrack(h.ID); err != nil {
				m.setErr(err.Error())
			} else {
				m.status = ""
			}
			m.refresh()
		}
	case key.Matches(keyMsg, m.keys.Add):
		m.mode = modeAdd
		m.newAddForm()
		return m, m.form.Init()
	case key.Matches(keyMsg, m.keys.Delete):
		if _, ok := m.selected(); ok {
			m.mode = modeConfirmDelete
			m.confirm = false
			m.form = confirmForm("Delete this habit?", "History is kept; the habit disappears from today's list.", &m.confirm)
			return m, m.form.Init()
		}
	case key.Matches(keyMsg, m.keys.Reset):
		m.mode = modeConfirmReset
		m.confirm = false
		m.form = confirmForm("Reset today?", "All of today's counts go back to zero.", &m.confirm)
		return m, m.form.Init()
	case key.Matches(keyMsg, m.keys.Sync):
		switch err := m.dispatcher.SyncNow(); {
		case err == nil:
			m.setStatus("sync dispatched")
		case errors.Is(err, sync.ErrNotConfigured):
			m.setErr("sync is not configured (habitflow sync config)")
		case errors.Is(err, sync.ErrSyncInFlight):
			m.setErr("a sync is already in flight")
		default:
			m.setErr(err.Error())
		}
	}
	return m, nil
}

func (m Model) updateAdd(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "esc" {
		m.mode = modeBrowse
		m.form = nil
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}
	if m.form.State == huh.StateCompleted {
		m.addHabit()
		m.mode = modeBrowse
		m.form = nil
		m.refresh()
	}
	return m, cmd
}

func (m Model) updateConfirm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "esc" {
		m.mode = modeBrowse
		m.form = nil
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}
	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	if m.confirm {
		switch m.mode {
		case modeConfirmDelete:
			if h, ok := m.selected(); ok {
				if err := m.tracker.DeleteHabit(h.ID); err != nil {
					m.setErr(err.Error())
				} else {
					m.setStatus("deleted " + h.Name)
				}
			}
		case modeConfirmReset:
			if err := m.tracker.ResetToday(); err != nil {
				m.setErr(err.Error())
			} else {
				m.setStatus("today reset")
			}
		}
	}
	m.mode = modeBrowse
	m.form = nil
	m.refresh()
	return m, cmd
}

func (m Model) selected() (models.Habit, bool) {
	if m.cursor < 0 || m.cursor >= len(m.habits) {
		return models.Habit{}, false
	}
	return m.habits[m.cursor], true
}

func confirmForm(title, description string, value *bool) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Description(description).
				Affirmative("Yes").
				Negative("No").
				Value(value),
		),
	)
}
