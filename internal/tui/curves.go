package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"vdot/internal/store"
	"vdot/internal/table"
)

// CurvesModel plots equivalence curves across the whole fitness range
type CurvesModel struct {
	store *store.Store
	units Units

	rows     []table.Row
	eventIdx int
	err      error
}

// NewCurvesModel creates a new curves model
func NewCurvesModel(s *store.Store, units Units) CurvesModel {
	return CurvesModel{
		store: s,
		units: units,
	}
}

// Init loads the table rows
func (m CurvesModel) Init() tea.Cmd {
	return func() tea.Msg {
		rows, err := m.store.Rows()
		if err != nil {
			return curvesErrMsg{err}
		}
		return curvesLoadedMsg{rows}
	}
}

type curvesLoadedMsg struct {
	rows []table.Row
}

type curvesErrMsg struct {
	err error
}

// Update handles messages
func (m CurvesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case curvesLoadedMsg:
		m.rows = msg.rows
		return m, nil

	case curvesErrMsg:
		m.err = msg.err
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "left", "h":
			m.eventIdx = (m.eventIdx + len(events) - 1) % len(events)
		case "right", "l":
			m.eventIdx = (m.eventIdx + 1) % len(events)
		}
	}

	return m, nil
}

// View renders the curves screen
func (m CurvesModel) View() string {
	if m.err != nil {
		return errorStyle.Render("Error: " + m.err.Error())
	}
	if len(m.rows) == 0 {
		return statusStyle.Render("Loading table...")
	}

	var sections []string
	sections = append(sections, m.renderSelector())
	sections = append(sections, "")
	sections = append(sections, m.renderRaceChart())
	sections = append(sections, m.renderPaceChart())
	sections = append(sections, statusStyle.Render("  ←/→: event distance"))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m CurvesModel) renderSelector() string {
	var selector []string
	for i, e := range events {
		if i == m.eventIdx {
			selector = append(selector, selectedStyle.Render(e.label))
		} else {
			selector = append(selector, unselectedStyle.Render(e.label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, selector...)
}

// raceSeconds picks the selected event's race time from a row.
func (m CurvesModel) raceSeconds(r table.Row) int {
	switch m.eventIdx {
	case 0:
		return r.FiveK
	case 1:
		return r.TenK
	case 2:
		return r.Half
	default:
		return r.Marathon
	}
}

func (m CurvesModel) renderRaceChart() string {
	data := make([]float64, len(m.rows))
	for i, r := range m.rows {
		data[i] = float64(m.raceSeconds(r)) / 60
	}

	title := cardTitleStyle.Render(fmt.Sprintf("%s race time (minutes) by VDOT", events[m.eventIdx].label))
	graph := asciigraph.Plot(data,
		asciigraph.Height(8),
		asciigraph.Width(60),
		asciigraph.Precision(0),
	)

	first := m.rows[0]
	last := m.rows[len(m.rows)-1]
	span := statusStyle.Render(fmt.Sprintf("  VDOT %.1f: %s    VDOT %.1f: %s",
		first.VDOT(), FormatDuration(m.raceSeconds(first)),
		last.VDOT(), FormatDuration(m.raceSeconds(last))))

	return lipgloss.JoinVertical(lipgloss.Left, title, graph, span, "")
}

func (m CurvesModel) renderPaceChart() string {
	data := make([]float64, len(m.rows))
	for i, r := range m.rows {
		data[i] = float64(r.Threshold) / 60
	}

	title := cardTitleStyle.Render("Threshold pace (min/km) by VDOT")
	graph := asciigraph.Plot(data,
		asciigraph.Height(8),
		asciigraph.Width(60),
		asciigraph.Precision(1),
	)

	first := m.rows[0]
	last := m.rows[len(m.rows)-1]
	span := statusStyle.Render(fmt.Sprintf("  VDOT %.1f: %s    VDOT %.1f: %s",
		first.VDOT(), m.units.FormatPace(first.Threshold),
		last.VDOT(), m.units.FormatPace(last.Threshold)))

	return strings.Join([]string{title, graph, span}, "\n")
}
