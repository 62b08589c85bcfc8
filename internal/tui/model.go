package tui

import (
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/google/uuid"

	"github.com/julianstephens/habitflow/internal/constants"
	"github.com/julianstephens/habitflow/internal/models"
	"github.com/julianstephens/habitflow/internal/sync"
	"github.com/julianstephens/habitflow/internal/tracker"
	"github.com/julianstephens/habitflow/internal/validation"
)

type mode int

const (
	modeBrowse mode = iota
	modeAdd
	modeConfirmDelete
	modeConfirmReset
)

type tickMsg time.Time

type Model struct {
	tracker    *tracker.Tracker
	dispatcher *sync.Dispatcher

	keys   KeyMap
	help   help.Model
	styles Styles

	mode    mode
	cursor  int
	habits  []models.Habit
	status  string
	statErr bool
	width   int

	form     *huh.Form
	formName string
	formGoal string
	formUnit string
	confirm  bool
}

func NewModel(t *tracker.Tracker, d *sync.Dispatcher, theme constants.Theme) Model {
	m := Model{
		tracker:    t,
		dispatcher: d,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		styles:     NewStyles(theme),
	}
	m.refresh()
	return m
}

func (m *Model) refresh() {
	byID := m.tracker.Habits()
	m.habits = make([]models.Habit, 0, len(byID))
	for _, h := range byID {
		m.habits = append(m.habits, h)
	}
	sort.Slice(m.habits, func(i, j int) bool {
		a, b := strings.ToLower(m.habits[i].Name), strings.ToLower(m.habits[j].Name)
		if a != b {
			return a < b
		}
		return m.habits[i].ID < m.habits[j].ID
	})
	if m.cursor >= len(m.habits) {
		m.cursor = len(m.habits) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *Model) newAddForm() {
	m.formName, m.formGoal, m.formUnit = "", "1", ""
	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Name").Value(&m.formName),
			huh.NewInput().Title("Daily goal").Value(&m.formGoal),
			huh.NewInput().Title("Unit").Value(&m.formUnit),
		),
	)
}

func (m *Model) addHabit() {
	goal, err := validation.ParseCount(m.formGoal)
	if err != nil {
		m.setErr("invalid goal: " + m.formGoal)
		return
	}
	h := models.Habit{
		ID:   uuid.New().String(),
		Name: strings.TrimSpace(m.formName),
		Goal: goal,
		Unit: strings.TrimSpace(m.formUnit),
		Step: 1,
	}
	if err := validation.ValidateHabit(h); err != nil {
		m.setErr(err.Error())
		return
	}
	if err := m.tracker.AddHabit(h); err != nil {
		m.setErr(err.Error())
		return
	}
	m.setStatus("added " + h.Name)
}

func (m *Model) setStatus(s string) {
	m.status = s
	m.statErr = false
}

func (m *Model) setErr(s string) {
	m.status = s
	m.statErr = true
}

func (m Model) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
