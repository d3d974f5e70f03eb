package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type Theme struct {
	Title          lipgloss.Style
	Label          lipgloss.Style
	Value          lipgloss.Style
	Border         lipgloss.Style
	FocusedBorder  lipgloss.Style
	Hint           lipgloss.Style
	Error          lipgloss.Style
	Success        lipgloss.Style
	Consumption    lipgloss.Style
	Expenditure    lipgloss.Style
	Cursor         lipgloss.Style
	Button         lipgloss.Style
	ButtonDisabled lipgloss.Style
	Modal          lipgloss.Style
}

var DefaultTheme = Theme{
	Title:          lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#A6E3A1")),
	Label:          lipgloss.NewStyle().Faint(true).Foreground(lipgloss.Color("#89B4FA")),
	Value:          lipgloss.NewStyle().Foreground(lipgloss.Color("#F2CDCD")),
	Border:         lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#45475A")).Padding(0, 1),
	FocusedBorder:  lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#89B4FA")).Padding(0, 1),
	Hint:           lipgloss.NewStyle().Faint(true).Foreground(lipgloss.Color("#CBA6F7")),
	Error:          lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F38BA8")),
	Success:        lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#A6E3A1")),
	Consumption:    lipgloss.NewStyle().Foreground(lipgloss.Color("#F9E2AF")),
	Expenditure:    lipgloss.NewStyle().Foreground(lipgloss.Color("#89B4FA")),
	Cursor:         lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F5C2E7")),
	Button:         lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#1E1E2E")).Background(lipgloss.Color("#A6E3A1")).Padding(0, 1),
	ButtonDisabled: lipgloss.NewStyle().Faint(true).Foreground(lipgloss.Color("#6C7086")).Background(lipgloss.Color("#313244")).Padding(0, 1),
	Modal:          lipgloss.NewStyle().Border(lipgloss.DoubleBorder()).BorderForeground(lipgloss.Color("#F38BA8")).Padding(1, 2),
}

// MonoTheme drops colour for terminals that render it badly.
var MonoTheme = Theme{
	Title:          lipgloss.NewStyle().Bold(true),
	Label:          lipgloss.NewStyle().Faint(true),
	Value:          lipgloss.NewStyle(),
	Border:         lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(0, 1),
	FocusedBorder:  lipgloss.NewStyle().Border(lipgloss.ThickBorder()).Padding(0, 1),
	Hint:           lipgloss.NewStyle().Faint(true),
	Error:          lipgloss.NewStyle().Bold(true),
	Success:        lipgloss.NewStyle().Bold(true),
	Consumption:    lipgloss.NewStyle(),
	Expenditure:    lipgloss.NewStyle(),
	Cursor:         lipgloss.NewStyle().Bold(true),
	Button:         lipgloss.NewStyle().Reverse(true).Padding(0, 1),
	ButtonDisabled: lipgloss.NewStyle().Faint(true).Padding(0, 1),
	Modal:          lipgloss.NewStyle().Border(lipgloss.DoubleBorder()).Padding(1, 2),
}

// ThemeByName maps the config theme key; unknown names get DefaultTheme.
func ThemeByName(name string) Theme {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "mono", "monochrome", "none":
		return MonoTheme
	}
	return DefaultTheme
}
