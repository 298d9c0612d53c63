package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"vdot/internal/analysis"
	"vdot/internal/store"
	"vdot/internal/table"
)

// event is a selectable race distance
type event struct {
	label  string
	meters float64
}

var events = []event{
	{"5K", analysis.Distance5K},
	{"10K", analysis.Distance10K},
	{"Half-Marathon", analysis.DistanceHalfMara},
	{"Marathon", analysis.DistanceMarathon},
}

// CalculatorModel is the equivalence calculator screen model
type CalculatorModel struct {
	store *store.Store
	units Units

	input    textinput.Model
	eventIdx int
	live     bool // compute rows directly instead of table lookups

	vdot    float64
	hasVDOT bool
	row     table.Row
	hasRow  bool
}

// NewCalculatorModel creates a new calculator model
func NewCalculatorModel(s *store.Store, units Units, defaultEvent string) CalculatorModel {
	ti := textinput.New()
	ti.Placeholder = "Time (h:mm:ss)"
	ti.CharLimit = 8
	ti.Width = 14
	ti.Focus()

	m := CalculatorModel{
		store: s,
		units: units,
		input: ti,
	}

	for i, e := range events {
		if strings.EqualFold(strings.ReplaceAll(e.label, "-Marathon", ""), defaultEvent) ||
			strings.EqualFold(e.label, defaultEvent) {
			m.eventIdx = i
		}
	}

	return m
}

// Init initializes the calculator screen
func (m CalculatorModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m CalculatorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		// Arrow keys left/right belong to the text input cursor, so the
		// event selector cycles on up/down.
		case "up":
			m.eventIdx = (m.eventIdx + len(events) - 1) % len(events)
			m.recompute()
			return m, nil
		case "down":
			m.eventIdx = (m.eventIdx + 1) % len(events)
			m.recompute()
			return m, nil
		case "ctrl+l":
			m.live = !m.live
			m.recompute()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.recompute()
	return m, cmd
}

// recompute derives the fitness score and equivalence row from the
// current input. Invalid or incomplete input clears the results.
func (m *CalculatorModel) recompute() {
	m.hasVDOT = false
	m.hasRow = false

	seconds, err := ParseDuration(m.input.Value())
	if err != nil {
		return
	}

	m.vdot = analysis.CalculateVDOT(events[m.eventIdx].meters, seconds)
	m.hasVDOT = true

	if !table.InRange(table.GridIndex(m.vdot)) {
		return
	}

	var row table.Row
	if m.live {
		row, err = table.ComputeRow(m.vdot)
	} else {
		row, err = m.store.Lookup(m.vdot)
	}
	if err != nil {
		return
	}

	m.row = row
	m.hasRow = true
}

// View renders the calculator screen
func (m CalculatorModel) View() string {
	left := m.renderInputPanel()
	right := m.renderResultsPanel()

	body := lipgloss.JoinHorizontal(lipgloss.Top, left, "    ", right)
	footer := statusStyle.Render("  ↑/↓: event distance  ctrl+l: toggle live computation")

	return lipgloss.JoinVertical(lipgloss.Left, body, footer)
}

func (m CalculatorModel) renderInputPanel() string {
	var sections []string

	sections = append(sections, cardTitleStyle.Render("Race Performance"))

	var selector []string
	for i, e := range events {
		if i == m.eventIdx {
			selector = append(selector, selectedStyle.Render(e.label))
		} else {
			selector = append(selector, unselectedStyle.Render(e.label))
		}
	}
	sections = append(sections, lipgloss.JoinHorizontal(lipgloss.Center, selector...))
	sections = append(sections, "")
	sections = append(sections, m.input.View())
	sections = append(sections, "")
	sections = append(sections, m.renderIndicator())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m CalculatorModel) renderIndicator() string {
	if !m.hasVDOT {
		return indicatorDefaultStyle.Render("VDOT  ?")
	}

	label := fmt.Sprintf("VDOT  %.1f", m.vdot)
	if table.InRange(table.GridIndex(m.vdot)) {
		return indicatorGoodStyle.Render(label)
	}
	return indicatorBadStyle.Render(label)
}

func (m CalculatorModel) renderResultsPanel() string {
	var sections []string

	sections = append(sections, cardTitleStyle.Render("Equivalent race performances"))
	sections = append(sections, m.renderRacesTable())
	sections = append(sections, "")
	sections = append(sections, cardTitleStyle.Render(fmt.Sprintf("Training paces (%s)", m.units.PaceLabel())))
	sections = append(sections, m.renderPacesTable())

	if m.live {
		sections = append(sections, "")
		sections = append(sections, statusStyle.Render("  live computation (no table)"))
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m CalculatorModel) renderRacesTable() string {
	var lines []string

	lines = append(lines, tableHeaderStyle.Render(fmt.Sprintf(" %-15s  %10s", "Race", "Time")))

	times := []string{"-", "-", "-", "-"}
	if m.hasRow {
		times = []string{
			FormatDuration(m.row.FiveK),
			FormatDuration(m.row.TenK),
			FormatDuration(m.row.Half),
			FormatDuration(m.row.Marathon),
		}
	}

	for i, e := range events {
		lines = append(lines, tableRowStyle.Render(fmt.Sprintf("%-15s  %10s", e.label, times[i])))
	}

	return strings.Join(lines, "\n")
}

func (m CalculatorModel) renderPacesTable() string {
	var lines []string

	lines = append(lines, tableHeaderStyle.Render(fmt.Sprintf(" %-15s  %13s", "Type", "Pace")))

	type paceLine struct {
		label string
		value string
	}

	paces := []paceLine{
		{"Easy", "-"},
		{"Marathon", "-"},
		{"Threshold", "-"},
		{"Interval", "-"},
		{"Repetitions", "-"},
	}
	if m.hasRow {
		paces = []paceLine{
			{"Easy", m.units.FormatPaceRange(m.row.EasyFast, m.row.EasySlow)},
			{"Marathon", m.units.FormatPace(m.row.MarathonPace)},
			{"Threshold", m.units.FormatPace(m.row.Threshold)},
			{"Interval", m.units.FormatPace(m.row.Interval)},
			{"Repetitions", m.units.FormatPace(m.row.Repetition)},
		}
	}

	for _, p := range paces {
		lines = append(lines, tableRowStyle.Render(fmt.Sprintf("%-15s  %13s", p.label, p.value)))
	}

	return strings.Join(lines, "\n")
}
