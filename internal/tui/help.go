package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// HelpModel is the help screen model
type HelpModel struct {
	viewport viewport.Model
	ready    bool
}

// NewHelpModel creates a new help model
func NewHelpModel() HelpModel {
	return HelpModel{}
}

// Init initializes the help screen
func (m HelpModel) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m HelpModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-6) // Reserve space for header/nav
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - 6
		}
		m.viewport.SetContent(m.renderContent())
	}

	// Handle viewport scrolling
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View renders the help screen
func (m HelpModel) View() string {
	if !m.ready {
		return m.renderContent()
	}

	footer := statusStyle.Render("  j/k or arrows: scroll  esc: back")
	return lipgloss.JoinVertical(lipgloss.Left, m.viewport.View(), footer)
}

func (m HelpModel) renderContent() string {
	var sections []string

	title := cardTitleStyle.Render("Keyboard Shortcuts")
	sections = append(sections, title)

	navSection := m.renderSection("Navigation", []keyHelp{
		{"tab", "Next screen"},
		{"1", "Calculator (from curves or help)"},
		{"2", "Curves (from help)"},
		{"?", "Help (this screen)"},
		{"esc", "Back to calculator"},
		{"q / ctrl+c", "Quit (q only outside the calculator input)"},
	})
	sections = append(sections, navSection)

	calcSection := m.renderSection("Calculator", []keyHelp{
		{"type", "Race time as MM:SS or H:MM:SS"},
		{"↑ / ↓", "Cycle event distance"},
		{"ctrl+l", "Toggle live computation (off-grid tenths)"},
	})
	sections = append(sections, calcSection)

	curvesSection := m.renderSection("Curves", []keyHelp{
		{"← / →", "Cycle event distance"},
	})
	sections = append(sections, curvesSection)

	sections = append(sections, m.renderPaceHelp())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

type keyHelp struct {
	key  string
	desc string
}

func (m HelpModel) renderSection(title string, keys []keyHelp) string {
	var lines []string

	lines = append(lines, "")
	lines = append(lines, lipgloss.NewStyle().Bold(true).Foreground(secondaryColor).Render(title))

	for _, k := range keys {
		lines = append(lines, "  "+RenderKeyHelp(k.key, k.desc))
	}

	return strings.Join(lines, "\n")
}

func (m HelpModel) renderPaceHelp() string {
	var lines []string

	lines = append(lines, "")
	lines = append(lines, lipgloss.NewStyle().Bold(true).Foreground(secondaryColor).Render("Training Paces Explained"))
	lines = append(lines, "")

	paces := []struct {
		name string
		desc string
	}{
		{"VDOT", "Aerobic fitness score derived from a race performance. Supported range 30.0-85.0."},
		{"Easy", "Conversational aerobic running. Shown as a range, faster end first."},
		{"Marathon", "Steady pace you could hold for a full marathon."},
		{"Threshold", "Comfortably hard. Roughly one-hour race effort."},
		{"Interval", "Hard repeats at close to maximal aerobic effort."},
		{"Repetitions", "Short fast repeats for speed and economy."},
	}

	mutedStyle := lipgloss.NewStyle().Foreground(mutedColor)

	for _, pace := range paces {
		lines = append(lines, "  "+helpKeyStyle.Render(pace.name))
		lines = append(lines, "  "+mutedStyle.Render(pace.desc))
		lines = append(lines, "")
	}

	return strings.Join(lines, "\n")
}
