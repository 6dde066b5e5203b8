package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"vo2max/internal/config"
	"vo2max/internal/service"
)

// Screen identifiers
type Screen int

const (
	ScreenAssessment Screen = iota
	ScreenProjection
	ScreenReference
	ScreenHelp
)

func (s Screen) String() string {
	switch s {
	case ScreenAssessment:
		return "assessment"
	case ScreenProjection:
		return "projection"
	case ScreenReference:
		return "reference"
	case ScreenHelp:
		return "help"
	}
	return "unknown"
}

// App is the root Bubble Tea model
type App struct {
	screen     Screen
	prevScreen Screen

	// Screen models
	assessment AssessmentModel
	projection ProjectionModel
	reference  ReferenceModel
	help       HelpModel

	logger zerolog.Logger

	// Window dimensions
	width  int
	height int
}

// NewApp creates a new App with all dependencies
func NewApp(svc *service.AssessmentService, cfg *config.Config, logger zerolog.Logger) *App {
	return &App{
		screen:     ScreenAssessment,
		logger:     logger,
		assessment: NewAssessmentModel(svc, cfg.Profile),
		projection: NewProjectionModel(cfg.Display),
		reference:  NewReferenceModel(svc, 0, 0),
		help:       NewHelpModel(),
	}
}

// Init initializes the app
func (a *App) Init() tea.Cmd {
	return a.assessment.Init()
}

// Update handles messages
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		// None of these keys are valid form input
		switch msg.String() {
		case "q", "ctrl+c":
			return a, tea.Quit
		case "a":
			a.switchTo(ScreenAssessment)
			return a, nil
		case "p":
			a.switchTo(ScreenProjection)
			return a, nil
		case "t":
			a.switchTo(ScreenReference)
			return a, nil
		case "?":
			if a.screen != ScreenHelp {
				a.prevScreen = a.screen
			}
			a.switchTo(ScreenHelp)
			return a, nil
		case "esc":
			if a.screen == ScreenHelp {
				a.switchTo(a.prevScreen)
				return a, nil
			}
		}

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, a.broadcast(msg)

	case AssessmentUpdatedMsg:
		if msg.Err != nil {
			a.logger.Warn().Err(msg.Err).Msg("assessment failed")
		}
		return a, a.broadcast(msg)
	}

	// Delegate to current screen
	var cmd tea.Cmd
	switch a.screen {
	case ScreenAssessment:
		var m tea.Model
		m, cmd = a.assessment.Update(msg)
		a.assessment = m.(AssessmentModel)
	case ScreenProjection:
		var m tea.Model
		m, cmd = a.projection.Update(msg)
		a.projection = m.(ProjectionModel)
	case ScreenReference:
		var m tea.Model
		m, cmd = a.reference.Update(msg)
		a.reference = m.(ReferenceModel)
	case ScreenHelp:
		var m tea.Model
		m, cmd = a.help.Update(msg)
		a.help = m.(HelpModel)
	}

	return a, cmd
}

// broadcast delivers msg to every screen, not only the visible one
func (a *App) broadcast(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd
	var m tea.Model
	var cmd tea.Cmd

	m, cmd = a.assessment.Update(msg)
	a.assessment = m.(AssessmentModel)
	cmds = append(cmds, cmd)

	m, cmd = a.projection.Update(msg)
	a.projection = m.(ProjectionModel)
	cmds = append(cmds, cmd)

	m, cmd = a.reference.Update(msg)
	a.reference = m.(ReferenceModel)
	cmds = append(cmds, cmd)

	return tea.Batch(cmds...)
}

func (a *App) switchTo(s Screen) {
	if s != a.screen {
		a.logger.Debug().Stringer("from", a.screen).Stringer("to", s).Msg("switching screen")
	}
	a.screen = s
}

// View renders the app
func (a *App) View() string {
	header := a.renderHeader()
	nav := a.renderNav()

	var content string
	switch a.screen {
	case ScreenAssessment:
		content = a.assessment.View()
	case ScreenProjection:
		content = a.projection.View()
	case ScreenReference:
		content = a.reference.View()
	case ScreenHelp:
		content = a.help.View()
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, nav, content)
}

func (a *App) renderHeader() string {
	return headerStyle.Render("VO2 Max Analysis")
}

func (a *App) renderNav() string {
	items := []struct {
		key    string
		label  string
		screen Screen
	}{
		{"a", "Assessment", ScreenAssessment},
		{"p", "Projection", ScreenProjection},
		{"t", "Table", ScreenReference},
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

	nav += "  " + navInactiveStyle.Render("[q] Quit")

	return navStyle.Render(nav)
}
