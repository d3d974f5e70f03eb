package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ramanasai/caltrack/internal/activity"
	"github.com/ramanasai/caltrack/internal/app"
	"github.com/ramanasai/caltrack/internal/catalog"
	"github.com/ramanasai/caltrack/internal/form"
	"github.com/ramanasai/caltrack/internal/utils"
	"github.com/ramanasai/caltrack/internal/version"
)

type focusField int
type mode int

const (
	focusCategory focusField = iota
	focusName
	focusCalories
	focusSubmit
	focusList
	focusCount
)

const (
	modeNormal mode = iota
	modeConfirmRestart
	modeHelp
)

const (
	formWidth    = 44
	minListRows  = 5
	reservedRows = 18 // header, form, tracker and status bar
)

// Model is the Bubble Tea model. Every change to the activity list goes
// through app.Dispatch; the model itself only holds view state.
type Model struct {
	app  *app.App
	form *form.Controller

	name     AutocompleteModel
	calories textinput.Model

	focus     focusField
	mode      mode
	cursor    int
	status    string
	statusErr bool

	width, height int
	th            Theme
}

func New(a *app.App, th Theme) Model {
	m := Model{
		app:   a,
		form:  form.New(a.Catalog()),
		th:    th,
		focus: focusName,
	}

	m.name = NewAutocomplete(suggestNames(a), 5)
	m.name.SetPlaceholder("What did you eat or do?")
	m.name.SetWidth(30)
	m.name.Focus()

	m.calories = textinput.New()
	m.calories.Placeholder = "kcal"
	m.calories.CharLimit = 12
	m.calories.Width = 12

	return m
}

// Run starts the program on the alternate screen and blocks until it exits.
func Run(a *app.App, th Theme) error {
	_, err := tea.NewProgram(New(a, th), tea.WithAltScreen()).Run()
	return err
}

// suggestNames completes from names already in the list, most recent first.
func suggestNames(a *app.App) SuggestFunc {
	return func(prefix string, max int) []string {
		prefix = strings.ToLower(strings.TrimSpace(prefix))
		list := a.State().Activities
		seen := map[string]bool{}
		var out []string
		for i := len(list) - 1; i >= 0 && len(out) < max; i-- {
			name := list[i].Name
			key := strings.ToLower(name)
			if seen[key] || key == prefix || !strings.HasPrefix(key, prefix) {
				continue
			}
			seen[key] = true
			out = append(out, name)
		}
		return out
	}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		switch m.mode {
		case modeConfirmRestart:
			return m.updateConfirm(msg.String())
		case modeHelp:
			m.mode = modeNormal
			return m, nil
		}
		return m.updateNormal(msg)
	}

	return m.updateInput(msg)
}

func (m Model) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := msg.String()

	// an open suggestion list owns its navigation keys
	if m.focus == focusName && m.name.Showing() {
		switch k {
		case "tab", "shift+tab", "enter", "esc":
			var cmd tea.Cmd
			m.name, cmd = m.name.Update(msg)
			_ = m.form.SetField(form.FieldName, m.name.Value())
			return m, cmd
		}
	}

	switch k {
	case "tab":
		return m.setFocus((m.focus + 1) % focusCount)
	case "shift+tab":
		return m.setFocus((m.focus + focusCount - 1) % focusCount)
	case "ctrl+r":
		return m.askRestart()
	case "esc":
		return m.clearForm()
	case "enter":
		if m.focus != focusList {
			return m.submit()
		}
	}

	switch m.focus {
	case focusCategory:
		switch k {
		case "left", "h", "up", "k":
			m.cycleCategory(-1)
		case "right", "l", "down", "j", " ":
			m.cycleCategory(1)
		}
		return m, nil
	case focusSubmit:
		if k == " " {
			return m.submit()
		}
		return m, nil
	case focusList:
		return m.updateList(k)
	}

	return m.updateInput(msg)
}

// updateInput feeds msg to the focused text field and copies its text into
// the draft.
func (m Model) updateInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.focus {
	case focusName:
		m.name, cmd = m.name.Update(msg)
		_ = m.form.SetField(form.FieldName, m.name.Value())
	case focusCalories:
		m.calories, cmd = m.calories.Update(msg)
		_ = m.form.SetField(form.FieldCalories, m.calories.Value())
	}
	return m, cmd
}

func (m Model) updateList(k string) (tea.Model, tea.Cmd) {
	list := m.app.State().Activities
	switch k {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(list)-1 {
			m.cursor++
		}
	case "home", "g":
		m.cursor = 0
	case "end", "G":
		m.cursor = max(len(list)-1, 0)
	case "e", "enter":
		return m.edit()
	case "d", "x", "delete":
		return m.remove()
	case "R":
		return m.askRestart()
	case "?":
		m.mode = modeHelp
	case "q":
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) updateConfirm(k string) (tea.Model, tea.Cmd) {
	switch k {
	case "y", "Y", "enter":
		n := len(m.app.State().Activities)
		m.dispatch(activity.RestartApp{})
		m.form.Reset()
		m.loadInputs()
		m.cursor = 0
		m.mode = modeNormal
		m.setStatus(fmt.Sprintf("Cleared %d %s", n, plural(n, "activity", "activities")), false)
	case "n", "N", "esc", "q":
		m.mode = modeNormal
		m.setStatus("Restart cancelled", false)
	}
	return m, nil
}

// ----- actions -----

func (m Model) submit() (tea.Model, tea.Cmd) {
	editing := m.form.Editing(m.app.State())
	act, err := m.form.Submit()
	if err != nil {
		m.setStatus(err.Error(), true)
		return m, nil
	}
	m.dispatch(act)
	m.loadInputs()

	saved := act.(activity.SaveActivity).Activity
	if editing {
		m.setStatus("Updated "+saved.Name, false)
	} else {
		m.setStatus("Added "+saved.Name, false)
	}
	return m.setFocus(focusName)
}

func (m Model) edit() (tea.Model, tea.Cmd) {
	list := m.app.State().Activities
	if len(list) == 0 {
		return m, nil
	}
	sel := list[m.cursor]
	state := m.dispatch(activity.SetActiveID{ID: sel.ID})
	if m.form.Draft().ID != sel.ID {
		m.form.Reload(state)
	}
	m.loadInputs()
	m.setStatus("Editing "+sel.Name, false)
	return m.setFocus(focusName)
}

func (m Model) remove() (tea.Model, tea.Cmd) {
	list := m.app.State().Activities
	if len(list) == 0 {
		return m, nil
	}
	sel := list[m.cursor]
	m.dispatch(activity.DeleteActivity{ID: sel.ID})
	if m.form.Draft().ID == sel.ID {
		m.form.Reset()
		m.loadInputs()
	}
	m.setStatus("Deleted "+sel.Name, false)
	return m, nil
}

func (m Model) askRestart() (tea.Model, tea.Cmd) {
	if len(m.app.State().Activities) == 0 {
		m.setStatus("Nothing to restart", false)
		return m, nil
	}
	m.mode = modeConfirmRestart
	return m, nil
}

func (m Model) clearForm() (tea.Model, tea.Cmd) {
	if m.form.Editing(m.app.State()) {
		m.setStatus("Edit cancelled", false)
	} else {
		m.setStatus("", false)
	}
	m.form.Reset()
	m.loadInputs()
	return m, nil
}

// dispatch runs a through the app and keeps the form and cursor in step
// with the new state.
func (m *Model) dispatch(a activity.Action) activity.State {
	state := m.app.Dispatch(a)
	m.form.Sync(state)
	if m.cursor >= len(state.Activities) {
		m.cursor = max(len(state.Activities)-1, 0)
	}
	return state
}

func (m *Model) cycleCategory(dir int) {
	cat := m.app.Catalog()
	m.form.SetCategory(cat.Next(m.form.Draft().Category, dir))
}

// loadInputs copies the draft into the text fields.
func (m *Model) loadInputs() {
	d := m.form.Draft()
	m.name.SetValue(d.Name)
	m.name.input.CursorEnd()
	cal := ""
	if d.Calories != 0 {
		cal = m.form.FieldText(form.FieldCalories)
	}
	m.calories.SetValue(cal)
	m.calories.CursorEnd()
}

func (m Model) setFocus(f focusField) (tea.Model, tea.Cmd) {
	m.focus = f
	m.name.Blur()
	m.calories.Blur()
	switch f {
	case focusName:
		return m, m.name.Focus()
	case focusCalories:
		return m, m.calories.Focus()
	}
	return m, nil
}

func (m *Model) setStatus(s string, isErr bool) {
	m.status = s
	m.statusErr = isErr
}

// ----- view -----

func (m Model) View() string {
	if m.mode == modeConfirmRestart {
		return m.overlay(m.renderConfirm())
	}
	if m.mode == modeHelp {
		return m.overlay(m.renderHelp())
	}

	formBox := m.renderForm()
	tracker := m.renderTracker()
	top := lipgloss.JoinHorizontal(lipgloss.Top, formBox, " ", tracker)
	if m.width > 0 && lipgloss.Width(top) > m.width {
		top = lipgloss.JoinVertical(lipgloss.Left, formBox, tracker)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		top,
		m.renderList(),
		m.statusBar(),
	)
}

func (m Model) renderHeader() string {
	title := m.th.Title.Render("Caltrack") + " " + m.th.Hint.Render(version.GetVersion())
	restart := m.th.Button.Render("Restart (ctrl+r)")
	if len(m.app.State().Activities) == 0 {
		restart = m.th.ButtonDisabled.Render("Restart (ctrl+r)")
	}
	gap := 2
	if m.width > 0 {
		gap = max(m.width-lipgloss.Width(title)-lipgloss.Width(restart), 2)
	}
	return title + strings.Repeat(" ", gap) + restart + "\n"
}

func (m Model) renderForm() string {
	d := m.form.Draft()
	cat := m.app.Catalog()

	label := func(f focusField, s string) string {
		s = fmt.Sprintf("%-9s", s)
		if m.focus == f {
			return m.th.Cursor.Render(s)
		}
		return m.th.Label.Render(s)
	}

	heading := "New activity"
	if m.form.Editing(m.app.State()) {
		heading = "Editing " + activity.ShortID(d.ID)
	}

	var b strings.Builder
	b.WriteString(m.th.Title.Render(heading))
	b.WriteString("\n\n")
	b.WriteString(label(focusCategory, "Category"))
	b.WriteString(m.renderCategory(cat.Label(d.Category), kindOf(cat, d.Category)))
	b.WriteString("\n")
	b.WriteString(label(focusName, "Name"))
	b.WriteString(m.name.View())
	b.WriteString("\n")
	b.WriteString(label(focusCalories, "Calories"))
	b.WriteString(m.calories.View())
	b.WriteString("\n\n")

	button := m.th.ButtonDisabled.Render(m.form.SubmitLabel())
	if m.form.Valid() {
		button = m.th.Button.Render(m.form.SubmitLabel())
	}
	if m.focus == focusSubmit {
		button = m.th.Cursor.Render("▶ ") + button
	} else {
		button = "  " + button
	}
	b.WriteString(button)

	if problems := m.form.Problems(); len(problems) > 0 && (d.Name != "" || m.calories.Value() != "") {
		b.WriteString("\n")
		b.WriteString(m.th.Hint.Render(strings.Join(problems, "; ")))
	}

	border := m.th.Border
	if m.focus != focusList {
		border = m.th.FocusedBorder
	}
	return border.Width(formWidth).Render(b.String())
}

func (m Model) renderCategory(name string, kind catalog.Kind) string {
	s := m.styleFor(kind).Render(name)
	if m.focus == focusCategory {
		return "‹ " + s + " ›"
	}
	return "  " + s
}

func (m Model) renderTracker() string {
	t := m.app.Totals()
	net := m.th.Success
	if t.Net < 0 {
		net = m.th.Error
	}
	lines := []string{
		m.th.Title.Render("Today"),
		"",
		m.th.Label.Render("Consumed ") + m.th.Consumption.Render(utils.DisplayCalories(t.Consumed)),
		m.th.Label.Render("Burned   ") + m.th.Expenditure.Render(utils.DisplayCalories(t.Burned)),
		m.th.Label.Render("Net      ") + net.Render(utils.DisplayCalories(t.Net)),
	}
	return m.th.Border.Render(strings.Join(lines, "\n"))
}

func (m Model) renderList() string {
	state := m.app.State()
	cat := m.app.Catalog()

	var b strings.Builder
	b.WriteString(m.th.Title.Render(fmt.Sprintf("Activities (%d)", len(state.Activities))))
	b.WriteString("\n")

	if len(state.Activities) == 0 {
		b.WriteString(m.th.Hint.Render("Nothing logged yet. Fill in the form and press enter."))
	}

	start, end := m.visibleRange(len(state.Activities))
	for i := start; i < end; i++ {
		a := state.Activities[i]
		marker := "  "
		if m.focus == focusList && i == m.cursor {
			marker = m.th.Cursor.Render("▶ ")
		}
		active := " "
		if a.ID == state.ActiveID {
			active = m.th.Cursor.Render("*")
		}
		kind := kindOf(cat, a.Category)
		row := fmt.Sprintf("%s%s %s  %s  %s",
			marker, active,
			m.th.Hint.Render(activity.ShortID(a.ID)),
			m.styleFor(kind).Render(padRight(cat.Label(a.Category), 10)),
			padRight(a.Name, 24),
		)
		row += m.styleFor(kind).Render(utils.DisplayCalories(a.Calories) + " kcal")
		b.WriteString(row)
		if i < end-1 {
			b.WriteString("\n")
		}
	}

	border := m.th.Border
	if m.focus == focusList {
		border = m.th.FocusedBorder
	}
	if m.width > 4 {
		border = border.Width(m.width - 4)
	}
	return border.Render(b.String())
}

// visibleRange keeps the cursor on screen when the list outgrows the terminal.
func (m Model) visibleRange(n int) (int, int) {
	rows := n
	if m.height > 0 {
		rows = max(m.height-reservedRows, minListRows)
	}
	if n <= rows {
		return 0, n
	}
	start := clamp(m.cursor-rows/2, 0, n-rows)
	return start, start + rows
}

func (m Model) statusBar() string {
	var hints string
	switch m.focus {
	case focusCategory:
		hints = "←/→ category • tab next field • enter save"
	case focusName, focusCalories:
		hints = "tab next field • enter save • esc clear"
	case focusSubmit:
		hints = "enter/space save • tab list"
	case focusList:
		hints = "↑/↓ move • e edit • d delete • R restart • ? help • q quit"
	}
	status := m.th.Success.Render(m.status)
	if m.statusErr {
		status = m.th.Error.Render(m.status)
	}
	if m.status == "" {
		return m.th.Hint.Render(hints)
	}
	return status + "  " + m.th.Hint.Render(hints)
}

func (m Model) renderConfirm() string {
	n := len(m.app.State().Activities)
	return m.th.Modal.Render(lipgloss.JoinVertical(lipgloss.Left,
		m.th.Error.Render("Start over?"),
		"",
		fmt.Sprintf("This removes all %d %s.", n, plural(n, "activity", "activities")),
		"",
		m.th.Hint.Render("y confirm • n cancel"),
	))
}

func (m Model) renderHelp() string {
	lines := []string{
		m.th.Title.Render("Keys"),
		"",
		"tab / shift+tab   move between fields and the list",
		"←/→ or space      change category",
		"enter             save the activity",
		"esc               clear the form or cancel an edit",
		"e                 edit the highlighted activity",
		"d                 delete the highlighted activity",
		"R / ctrl+r        remove everything",
		"q / ctrl+c        quit",
		"",
		m.th.Hint.Render("press any key"),
	}
	return m.th.Border.Render(strings.Join(lines, "\n"))
}

func (m Model) overlay(box string) string {
	if m.width == 0 || m.height == 0 {
		return box
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

func (m Model) styleFor(k catalog.Kind) lipgloss.Style {
	switch k {
	case catalog.KindConsumption:
		return m.th.Consumption
	case catalog.KindExpenditure:
		return m.th.Expenditure
	}
	return m.th.Hint
}

func kindOf(cat *catalog.Catalog, id int) catalog.Kind {
	if c, ok := cat.Find(id); ok {
		return c.Kind
	}
	return ""
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func padRight(s string, w int) string {
	if n := lipgloss.Width(s); n < w {
		return s + strings.Repeat(" ", w-n)
	}
	return s
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
