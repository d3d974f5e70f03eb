package utils

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/ramanasai/caltrack/internal/activity"
	"github.com/ramanasai/caltrack/internal/catalog"
)

// OutputFormat represents different output formats
type OutputFormat string

const (
	FormatDefault OutputFormat = "default"
	FormatTable   OutputFormat = "table"
	FormatJSON    OutputFormat = "json"
	FormatCSV     OutputFormat = "csv"
	FormatCompact OutputFormat = "compact"
	FormatQuiet   OutputFormat = "quiet"
)

// ParseFormat maps a --format value to an OutputFormat.
func ParseFormat(s string) (OutputFormat, error) {
	switch f := OutputFormat(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return FormatDefault, nil
	case FormatDefault, FormatTable, FormatJSON, FormatCSV, FormatCompact, FormatQuiet:
		return f, nil
	}
	return FormatDefault, fmt.Errorf("unknown format %q", s)
}

// RenderConfig contains configuration for output rendering
type RenderConfig struct {
	Format   OutputFormat
	Width    int
	ShowID   bool
	FullID   bool
	ShowKind bool
	Color    bool
}

// DefaultRenderConfig returns a default render configuration
func DefaultRenderConfig() *RenderConfig {
	width := 80
	if colEnv := os.Getenv("COLUMNS"); colEnv != "" {
		if v, err := strconv.Atoi(colEnv); err == nil && v > 40 {
			width = v
		}
	}

	return &RenderConfig{
		Format:   FormatDefault,
		Width:    width,
		ShowID:   true,
		ShowKind: true,
		Color:    true,
	}
}

// Row is one activity joined with its category for display.
type Row struct {
	ID           string       `json:"id"`
	Category     int          `json:"category"`
	CategoryName string       `json:"category_name"`
	Kind         catalog.Kind `json:"kind,omitempty"`
	Name         string       `json:"name"`
	Calories     float64      `json:"calories"`
}

// ActivityList is a page of rows plus the totals over the whole list.
type ActivityList struct {
	Activities []Row           `json:"activities"`
	Totals     activity.Totals `json:"totals"`
	Total      int             `json:"total"`
	Page       int             `json:"page,omitempty"`
	PerPage    int             `json:"per_page,omitempty"`
	TotalPages int             `json:"total_pages,omitempty"`
}

// NewActivityList joins list with cat and keeps only the page described by p.
// A nil p keeps everything.
func NewActivityList(list []activity.Activity, cat *catalog.Catalog, p *PaginationInfo) *ActivityList {
	out := &ActivityList{
		Activities: []Row{},
		Totals:     activity.Summarize(list, cat),
		Total:      len(list),
	}
	page := list
	if p != nil {
		start, end := p.Offset, p.Offset+p.PerPage
		if start > len(list) {
			start = len(list)
		}
		if end > len(list) {
			end = len(list)
		}
		page = list[start:end]
		out.Page, out.PerPage, out.TotalPages = p.Current, p.PerPage, p.TotalPages
	}
	for _, a := range page {
		row := Row{ID: a.ID, Category: a.Category, CategoryName: cat.Label(a.Category), Name: a.Name, Calories: a.Calories}
		if c, ok := cat.Find(a.Category); ok {
			row.Kind = c.Kind
		}
		out.Activities = append(out.Activities, row)
	}
	return out
}

// Renderer handles output formatting
type Renderer struct {
	config *RenderConfig
	styles *Styles
}

// Styles contains lipgloss styles for different elements
type Styles struct {
	Title       lipgloss.Style
	Separator   lipgloss.Style
	Meta        lipgloss.Style
	ID          lipgloss.Style
	Category    lipgloss.Style
	Consumption lipgloss.Style
	Expenditure lipgloss.Style
	Text        lipgloss.Style
	Highlight   lipgloss.Style
	Success     lipgloss.Style
	Error       lipgloss.Style
	Warning     lipgloss.Style
}

// NewRenderer creates a new renderer with the given config
func NewRenderer(config *RenderConfig) *Renderer {
	if config == nil {
		config = DefaultRenderConfig()
	}
	return &Renderer{
		config: config,
		styles: initStyles(config.Color),
	}
}

func initStyles(color bool) *Styles {
	styles := &Styles{}

	if color {
		styles.Title = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#A6E3A1"))
		styles.Separator = lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7086"))
		styles.Meta = lipgloss.NewStyle().Faint(true)
		styles.ID = lipgloss.NewStyle().Faint(true)
		styles.Category = lipgloss.NewStyle().Bold(true)
		styles.Consumption = lipgloss.NewStyle().Foreground(lipgloss.Color("#F9E2AF"))
		styles.Expenditure = lipgloss.NewStyle().Foreground(lipgloss.Color("#89B4FA"))
		styles.Text = lipgloss.NewStyle()
		styles.Highlight = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F9E2AF"))
		styles.Success = lipgloss.NewStyle().Foreground(lipgloss.Color("#A6E3A1"))
		styles.Error = lipgloss.NewStyle().Foreground(lipgloss.Color("#F38BA8"))
		styles.Warning = lipgloss.NewStyle().Foreground(lipgloss.Color("#FAB387"))
	} else {
		// Monochrome styles
		styles.Title = lipgloss.NewStyle().Bold(true)
		styles.Separator = lipgloss.NewStyle()
		styles.Meta = lipgloss.NewStyle()
		styles.ID = lipgloss.NewStyle()
		styles.Category = lipgloss.NewStyle().Bold(true)
		styles.Consumption = lipgloss.NewStyle()
		styles.Expenditure = lipgloss.NewStyle()
		styles.Text = lipgloss.NewStyle()
		styles.Highlight = lipgloss.NewStyle().Bold(true)
		styles.Success = lipgloss.NewStyle()
		styles.Error = lipgloss.NewStyle()
		styles.Warning = lipgloss.NewStyle()
	}

	return styles
}

// RenderActivityList renders a list of activities according to the configured format
func (r *Renderer) RenderActivityList(list *ActivityList) (string, error) {
	switch r.config.Format {
	case FormatJSON:
		return renderJSON(list)
	case FormatCSV:
		return r.renderCSV(list)
	case FormatTable:
		return r.renderTable(list), nil
	case FormatCompact:
		return r.renderCompact(list), nil
	case FormatQuiet:
		return r.renderQuiet(list), nil
	default:
		return r.renderDefault(list), nil
	}
}

// RenderTotals renders the calorie tracker block.
func (r *Renderer) RenderTotals(t activity.Totals) (string, error) {
	if r.config.Format == FormatJSON {
		return renderJSON(t)
	}
	var b strings.Builder
	b.WriteString(r.styles.Title.Render("Calories"))
	b.WriteString("\n")
	b.WriteString(r.rule())
	b.WriteString("\n")
	fmt.Fprintf(&b, "%-10s %s\n", "Consumed", r.styles.Consumption.Render(DisplayCalories(t.Consumed)))
	fmt.Fprintf(&b, "%-10s %s\n", "Burned", r.styles.Expenditure.Render(DisplayCalories(t.Burned)))
	net := r.styles.Success
	if t.Net < 0 {
		net = r.styles.Warning
	}
	fmt.Fprintf(&b, "%-10s %s\n", "Net", net.Bold(true).Render(DisplayCalories(t.Net)))
	return b.String(), nil
}

func (r *Renderer) renderDefault(list *ActivityList) string {
	var builder strings.Builder

	builder.WriteString(r.styles.Title.Render("Activities"))
	builder.WriteString("\n")
	builder.WriteString(r.rule())
	builder.WriteString("\n")

	if list.Total == 0 {
		builder.WriteString(r.styles.Meta.Render("No activities yet"))
		builder.WriteString("\n")
		return builder.String()
	}

	if list.TotalPages > 1 {
		pagination := NewPagination(list.Total, list.PerPage, list.Page)
		builder.WriteString(r.styles.Meta.Render(pagination.FormatSummary()))
		builder.WriteString("\n")
	}

	for _, row := range list.Activities {
		builder.WriteString(r.renderRow(row))
		builder.WriteString("\n")
	}
	builder.WriteString(r.rule())
	builder.WriteString("\n")
	fmt.Fprintf(&builder, "%s  %s  %s\n",
		r.styles.Consumption.Render("in "+DisplayCalories(list.Totals.Consumed)),
		r.styles.Expenditure.Render("out "+DisplayCalories(list.Totals.Burned)),
		r.styles.Highlight.Render("net "+DisplayCalories(list.Totals.Net)))

	if list.TotalPages > 1 {
		pagination := NewPagination(list.Total, list.PerPage, list.Page)
		if nav := pagination.FormatNavigation(); nav != "" {
			builder.WriteString(r.styles.Meta.Render(nav))
			builder.WriteString("\n")
		}
	}

	return builder.String()
}

func (r *Renderer) renderRow(row Row) string {
	var parts []string
	if r.config.ShowID {
		parts = append(parts, r.styles.ID.Render("["+r.id(row.ID)+"]"))
	}
	parts = append(parts, r.styleFor(row.Kind).Bold(true).Render(row.CategoryName))
	parts = append(parts, r.styles.Text.Render(row.Name))
	parts = append(parts, r.styleFor(row.Kind).Render(DisplayCalories(row.Calories)+" kcal"))
	if r.config.ShowKind && row.Kind != "" {
		parts = append(parts, r.styles.Meta.Render(string(row.Kind)))
	}
	return strings.Join(parts, "  ")
}

func renderJSON(v any) (string, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal JSON: %w", err)
	}
	return string(data), nil
}

func (r *Renderer) renderCSV(list *ActivityList) (string, error) {
	var builder strings.Builder
	w := csv.NewWriter(&builder)
	if err := w.Write([]string{"id", "category", "category_name", "kind", "name", "calories"}); err != nil {
		return "", err
	}
	for _, row := range list.Activities {
		rec := []string{
			row.ID,
			strconv.Itoa(row.Category),
			row.CategoryName,
			string(row.Kind),
			row.Name,
			strconv.FormatFloat(row.Calories, 'f', -1, 64),
		}
		if err := w.Write(rec); err != nil {
			return "", err
		}
	}
	w.Flush()
	return builder.String(), w.Error()
}

func (r *Renderer) renderTable(list *ActivityList) string {
	var builder strings.Builder

	builder.WriteString("ID\tCategory\tCalories\tName\n")
	builder.WriteString(strings.Repeat("-", r.config.Width))
	builder.WriteString("\n")

	for _, row := range list.Activities {
		name := runewidth.Truncate(row.Name, 50, "...")
		builder.WriteString(strings.Join([]string{r.id(row.ID), row.CategoryName, DisplayCalories(row.Calories), name}, "\t"))
		builder.WriteString("\n")
	}

	return builder.String()
}

func (r *Renderer) renderCompact(list *ActivityList) string {
	var builder strings.Builder

	for _, row := range list.Activities {
		sign := "+"
		if row.Kind == catalog.KindExpenditure {
			sign = "-"
		}
		fmt.Fprintf(&builder, "%s %s %s\n",
			r.styles.ID.Render(activity.ShortID(row.ID)),
			r.styleFor(row.Kind).Render(sign+DisplayCalories(row.Calories)),
			row.Name)
	}

	return builder.String()
}

// renderQuiet prints only ids, for scripting
func (r *Renderer) renderQuiet(list *ActivityList) string {
	var builder strings.Builder

	for _, row := range list.Activities {
		builder.WriteString(row.ID)
		builder.WriteString("\n")
	}

	return builder.String()
}

func (r *Renderer) id(id string) string {
	if r.config.FullID {
		return id
	}
	return activity.ShortID(id)
}

func (r *Renderer) rule() string {
	return r.styles.Separator.Render(strings.Repeat("─", min(r.config.Width, 120)))
}

func (r *Renderer) styleFor(k catalog.Kind) lipgloss.Style {
	switch k {
	case catalog.KindConsumption:
		return r.styles.Consumption
	case catalog.KindExpenditure:
		return r.styles.Expenditure
	default:
		return r.styles.Meta
	}
}

// DisplayCalories prints whole numbers without decimals and everything else
// with at most one.
func DisplayCalories(v float64) string {
	if v == float64(int64(v)) {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatFloat(v, 'f', 1, 64)
}
