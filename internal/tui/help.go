package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"vo2max/internal/analysis"
)

// HelpModel is the help screen model
type HelpModel struct{}

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
	return m, nil
}

// View renders the help screen
func (m HelpModel) View() string {
	var sections []string

	title := cardTitleStyle.Render("Keyboard Shortcuts")
	sections = append(sections, title)

	navSection := m.renderSection("Navigation", []keyHelp{
		{"a", "Assessment"},
		{"p", "Decline projection"},
		{"t", "Reference table"},
		{"?", "Help (this screen)"},
		{"q", "Quit"},
		{"esc", "Back / close help"},
	})
	sections = append(sections, navSection)

	formSection := m.renderSection("Assessment Form", []keyHelp{
		{"tab / down", "Next field"},
		{"shift+tab / up", "Previous field"},
		{"left / right", "Toggle sex, change decline rate"},
		{"m / f", "Select male or female"},
		{"- / +", "Decline rate by 0.1%"},
	})
	sections = append(sections, formSection)

	projSection := m.renderSection("Projection", []keyHelp{
		{"h", "Show or hide activity levels"},
	})
	sections = append(sections, projSection)

	sections = append(sections, m.renderAbout())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

type keyHelp struct {
	key  string
	desc string
}

func (m HelpModel) renderSection(title string, keys []keyHelp) string {
	var lines []string

	lines = append(lines, "")
	lines = append(lines, sectionStyle.Render(title))

	for _, k := range keys {
		lines = append(lines, "  "+RenderKeyHelp(k.key, k.desc))
	}

	return strings.Join(lines, "\n")
}

func (m HelpModel) renderAbout() string {
	var lines []string

	lines = append(lines, "")
	lines = append(lines, sectionStyle.Render("Why VO2 Max Is Important"))
	lines = append(lines, mutedStyle.Render("  VO2 max is a measure of your body's maximum oxygen uptake capacity. It's an"))
	lines = append(lines, mutedStyle.Render("  indicator of cardiovascular fitness and can predict overall health and"))
	lines = append(lines, mutedStyle.Render("  longevity. Improving it can lead to better endurance, reduced risk of"))
	lines = append(lines, mutedStyle.Render("  cardiovascular disease and improved quality of life."))

	lines = append(lines, "")
	lines = append(lines, sectionStyle.Render("Activity Level Examples"))
	for _, ex := range analysis.ActivityExamples {
		level := fmt.Sprintf("%s (%s %s)", ex.Level, formatVO2Value(ex.VO2Max), vo2Unit)
		lines = append(lines, "  "+RenderKeyHelp(level, ex.Description))
	}

	lines = append(lines, "")
	lines = append(lines, sectionStyle.Render("Chart Activity Levels"))
	for _, a := range analysis.ActivityThresholds {
		lines = append(lines, fmt.Sprintf("  %s %s", helpKeyStyle.Render(fmt.Sprintf("%5s", formatVO2Value(a.VO2Max))), helpDescStyle.Render(a.Label)))
	}

	lines = append(lines, "")
	lines = append(lines, sectionStyle.Render("Categories"))
	lines = append(lines, "  "+RenderKeyHelp(string(analysis.CategorySuperior), "95th percentile and up"))
	lines = append(lines, "  "+RenderKeyHelp(string(analysis.CategoryExcellent), "80th to 95th"))
	lines = append(lines, "  "+RenderKeyHelp(string(analysis.CategoryGood), "60th to 80th"))
	lines = append(lines, "  "+RenderKeyHelp(string(analysis.CategoryFair), "40th to 60th"))
	lines = append(lines, "  "+RenderKeyHelp(string(analysis.CategoryPoor), "below the 40th"))

	return strings.Join(lines, "\n")
}
