package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"vdot/internal/config"
	"vdot/internal/store"
)

// Screen identifiers
type Screen int

const (
	ScreenCalculator Screen = iota
	ScreenCurves
	ScreenHelp
)

// App is the root Bubble Tea model
type App struct {
	screen     Screen
	prevScreen Screen

	// Screen models
	calculator CalculatorModel
	curves     CurvesModel
	help       HelpModel

	store *store.Store

	// Window dimensions
	width  int
	height int
}

// NewApp creates a new App with all dependencies
func NewApp(s *store.Store, cfg config.Config) *App {
	units := NewUnits(cfg.Display)

	return &App{
		screen:     ScreenCalculator,
		store:      s,
		calculator: NewCalculatorModel(s, units, cfg.Calculator.DefaultEvent),
		curves:     NewCurvesModel(s, units),
		help:       NewHelpModel(),
	}
}

// Init initializes the app
func (a *App) Init() tea.Cmd {
	return a.calculator.Init()
}

// Update handles messages
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return a, tea.Quit
		case "tab":
			a.screen = (a.screen + 1) % 3
			return a, a.initScreen()
		}

		// The calculator owns the keyboard while its input is focused,
		// so digit and letter shortcuts only apply on other screens.
		if a.screen != ScreenCalculator {
			switch msg.String() {
			case "q":
				return a, tea.Quit
			case "1":
				a.screen = ScreenCalculator
				return a, a.calculator.Init()
			case "2":
				a.screen = ScreenCurves
				return a, a.curves.Init()
			case "?":
				a.prevScreen = a.screen
				a.screen = ScreenHelp
				return a, nil
			case "esc":
				if a.screen == ScreenHelp {
					a.screen = a.prevScreen
					return a, nil
				}
				a.screen = ScreenCalculator
				return a, nil
			}
		}

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
	}

	// Delegate to current screen
	var cmd tea.Cmd
	switch a.screen {
	case ScreenCalculator:
		var m tea.Model
		m, cmd = a.calculator.Update(msg)
		a.calculator = m.(CalculatorModel)
	case ScreenCurves:
		var m tea.Model
		m, cmd = a.curves.Update(msg)
		a.curves = m.(CurvesModel)
	case ScreenHelp:
		var m tea.Model
		m, cmd = a.help.Update(msg)
		a.help = m.(HelpModel)
	}

	return a, cmd
}

func (a *App) initScreen() tea.Cmd {
	switch a.screen {
	case ScreenCalculator:
		return a.calculator.Init()
	case ScreenCurves:
		return a.curves.Init()
	default:
		return nil
	}
}

// View renders the app
func (a *App) View() string {
	header := a.renderHeader()
	nav := a.renderNav()

	var content string
	switch a.screen {
	case ScreenCalculator:
		content = a.calculator.View()
	case ScreenCurves:
		content = a.curves.View()
	case ScreenHelp:
		content = a.help.View()
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, nav, content)
}

func (a *App) renderHeader() string {
	return headerStyle.Render("VDOT Race Equivalence Calculator")
}

func (a *App) renderNav() string {
	items := []struct {
		key    string
		label  string
		screen Screen
	}{
		{"1", "Calculator", ScreenCalculator},
		{"2", "Curves", ScreenCurves},
		{"?", "Help", ScreenHelp},
	}

	var nav string
	for i, item := range items {
		if i > 0 {
			nav += "  "
		}

		label := "[" + item.key + "] " + item.label
		if a.screen == item.screen {
			nav += navActiveStyle.Render(label)
		} else {
			nav += navInactiveStyle.Render(label)
		}
	}

	nav += "  " + navInactiveStyle.Render("[tab] Next  [ctrl+c] Quit")

	return navStyle.Render(nav)
}
