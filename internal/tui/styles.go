package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/habitflow/internal/constants"
)

type Styles struct {
	Title     lipgloss.Style
	Date      lipgloss.Style
	Cursor    lipgloss.Style
	Habit     lipgloss.Style
	Selected  lipgloss.Style
	Complete  lipgloss.Style
	Progress  lipgloss.Style
	Status    lipgloss.Style
	ErrStatus lipgloss.Style
	Help      lipgloss.Style
}

func NewStyles(theme constants.Theme) Styles {
	var (
		accent   = lipgloss.Color("99")
		done     = lipgloss.Color("42")
		subtle   = lipgloss.Color("241")
		errColor = lipgloss.Color("203")
	)
	if theme == constants.ThemeLight {
		accent = lipgloss.Color("55")
		done = lipgloss.Color("28")
		subtle = lipgloss.Color("245")
	}
	return Styles{
		Title:     lipgloss.NewStyle().Bold(true).Foreground(accent).Padding(0, 1),
		Date:      lipgloss.NewStyle().Foreground(subtle).Padding(0, 1),
		Cursor:    lipgloss.NewStyle().Foreground(accent).Bold(true),
		Habit:     lipgloss.NewStyle().Padding(0, 1),
		Selected:  lipgloss.NewStyle().Padding(0, 1).Bold(true),
		Complete:  lipgloss.NewStyle().Foreground(done),
		Progress:  lipgloss.NewStyle().Foreground(subtle),
		Status:    lipgloss.NewStyle().Foreground(subtle).Padding(0, 1),
		ErrStatus: lipgloss.NewStyle().Foreground(errColor).Padding(0, 1),
		Help:      lipgloss.NewStyle().Padding(0, 1),
	}
}
