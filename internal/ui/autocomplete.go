package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// SuggestFunc returns up to max completions for the typed prefix.
type SuggestFunc func(prefix string, max int) []string

// AutocompleteModel represents a text input with autocomplete functionality
type AutocompleteModel struct {
	input          textinput.Model
	suggestions    []string
	showing        bool
	selected       int
	source         SuggestFunc
	style          lipgloss.Style
	activeStyle    lipgloss.Style
	maxSuggestions int
}

// NewAutocomplete creates a new autocomplete input model
func NewAutocomplete(source SuggestFunc, maxSuggestions int) AutocompleteModel {
	input := textinput.New()
	input.Placeholder = "Type..."

	return AutocompleteModel{
		input:          input,
		source:         source,
		maxSuggestions: maxSuggestions,
		style:          lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		activeStyle:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	}
}

// Update handles the autocomplete logic
func (m AutocompleteModel) Update(msg tea.Msg) (AutocompleteModel, tea.Cmd) {
	var cmd tea.Cmd

	km, ok := msg.(tea.KeyMsg)
	if !ok {
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	switch km.Type {
	case tea.KeyTab:
		if m.showing {
			m.selected = (m.selected + 1) % len(m.suggestions)
			return m, nil
		}
	case tea.KeyShiftTab:
		if m.showing {
			m.selected = (m.selected - 1 + len(m.suggestions)) % len(m.suggestions)
			return m, nil
		}
	case tea.KeyEnter:
		if m.showing {
			m.input.SetValue(m.suggestions[m.selected])
			m.input.CursorEnd()
			m.hide()
			return m, nil
		}
	case tea.KeyEscape:
		if m.showing {
			m.hide()
			return m, nil
		}
	}

	old := m.input.Value()
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != old {
		m.refresh()
	}
	return m, cmd
}

func (m *AutocompleteModel) refresh() {
	m.selected = 0
	m.suggestions = nil
	if m.source != nil && strings.TrimSpace(m.input.Value()) != "" {
		m.suggestions = m.source(m.input.Value(), m.maxSuggestions)
	}
	m.showing = len(m.suggestions) > 0
}

func (m *AutocompleteModel) hide() {
	m.showing = false
	m.selected = 0
}

// View renders the autocomplete input and suggestions
func (m AutocompleteModel) View() string {
	var content strings.Builder

	content.WriteString(m.input.View())

	if m.showing {
		for i, suggestion := range m.suggestions {
			if i >= m.maxSuggestions {
				break
			}
			content.WriteString("\n")
			if i == m.selected {
				content.WriteString(m.activeStyle.Render("▶ " + suggestion))
			} else {
				content.WriteString(m.style.Render("  " + suggestion))
			}
		}
	}

	return content.String()
}

func (m AutocompleteModel) Value() string { return m.input.Value() }

// SetValue replaces the text without opening suggestions.
func (m *AutocompleteModel) SetValue(value string) {
	m.input.SetValue(value)
	m.hide()
}

func (m *AutocompleteModel) Focus() tea.Cmd {
	m.hide()
	return m.input.Focus()
}

func (m *AutocompleteModel) Blur() {
	m.input.Blur()
	m.hide()
}


func (m *AutocompleteModel) SetWidth(width int) { m.input.Width = width }

func (m *AutocompleteModel) SetPlaceholder(placeholder string) { m.input.Placeholder = placeholder }

func (m AutocompleteModel) Suggestions() []string { return m.suggestions }

// Showing reports whether the suggestion list is open and non-empty.
func (m AutocompleteModel) Showing() bool { return m.showing }
