package tui

import (
	"errors"
	"fmt"
	"math"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"vo2max/internal/analysis"
	"vo2max/internal/config"
	"vo2max/internal/service"
)

// errShortProjection is returned when there are too few points to plot
var errShortProjection = errors.New("projection has fewer than two points")

// minChartCeiling is the lowest upper bound of the chart's y axis
const minChartCeiling = 80

// ProjectionModel is the decline projection screen model
type ProjectionModel struct {
	display config.DisplayConfig
	data     *service.AssessmentData
	err      error
	inputErr error
}

// NewProjectionModel creates a new projection model
func NewProjectionModel(display config.DisplayConfig) ProjectionModel {
	return ProjectionModel{display: display}
}

// Init initializes the projection screen
func (m ProjectionModel) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m ProjectionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case AssessmentUpdatedMsg:
		m.data = msg.Data
		m.err = msg.Err
		m.inputErr = msg.InputErr
	case tea.KeyMsg:
		switch msg.String() {
		case "h":
			show := !m.display.Thresholds()
			m.display.ShowThresholds = &show
		}
	}
	return m, nil
}

// View renders the projection screen
func (m ProjectionModel) View() string {
	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("\n  Error: %v", m.err))
	}

	if m.inputErr != nil && !errors.Is(m.inputErr, errNoVO2) {
		return warningStyle.Render(fmt.Sprintf("\n  %s. Fix it on the assessment screen ('a') to see a projection.", capitalize(m.inputErr.Error())))
	}

	if m.data == nil {
		return mutedStyle.Render("\n  Enter your VO2 max on the assessment screen ('a') to see a projection.")
	}

	var sections []string

	title := cardTitleStyle.Render("Estimated VO2 Max Decline with Age and Activity Levels")
	subtitle := mutedStyle.Render(fmt.Sprintf("From %s at age %d, declining %s",
		formatVO2(m.data.Query.VO2Max), m.data.Query.Age, formatRate(m.data.Query.DeclineRate)))

	chart, err := renderDeclineChart(m.data, m.display)
	if err != nil {
		chart = errorStyle.Render(fmt.Sprintf("An error occurred while generating the plot: %v", err))
	}
	sections = append(sections, cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, subtitle, "", chart)))

	sections = append(sections, m.renderCrossings())
	sections = append(sections, statusStyle.Render("h: toggle activity levels  a: assessment  ?: help"))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m ProjectionModel) renderCrossings() string {
	var lines []string

	lines = append(lines, renderSectionHeader("Activity Levels", 60))
	lines = append(lines, tableHeaderStyle.Render(fmt.Sprintf("  %-30s  %10s  %s", "Activity", "VO2 max", "Projection")))

	for _, c := range m.data.Crossings {
		var status string
		switch {
		case c.AlreadyBelow:
			status = errorStyle.Render("below now")
		case c.Crosses:
			status = warningStyle.Render(fmt.Sprintf("below from age %d", c.Age))
		default:
			status = successStyle.Render(fmt.Sprintf("above through %d", analysis.TerminalAge))
		}
		lines = append(lines, fmt.Sprintf("  %-30s  %10s  %s", c.Activity.Label, formatVO2Value(c.Activity.VO2Max), status))
	}

	lines = append(lines, "")
	lines = append(lines, RenderMetric(fmt.Sprintf("At age %d", analysis.TerminalAge), formatVO2(m.data.ProjectedAtLast)))

	return strings.Join(lines, "\n")
}

// renderDeclineChart plots the projection with the activity levels as flat
// lines. A panic inside the plotting library is turned into an error.
func renderDeclineChart(data *service.AssessmentData, display config.DisplayConfig) (chart string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("plotting projection: %v", r)
		}
	}()

	values := data.Projection.Values()
	if len(values) < 2 {
		return "", errShortProjection
	}

	series := [][]float64{values}
	colors := []asciigraph.AnsiColor{asciigraph.Green}
	if display.Thresholds() {
		for _, a := range analysis.ActivityThresholds {
			series = append(series, flatLine(a.VO2Max, len(values)))
			colors = append(colors, asciigraph.DarkGray)
		}
	}

	ceiling := math.Max(minChartCeiling, data.Query.VO2Max*1.1)
	first := data.Projection[0].Age
	last := data.Projection[len(data.Projection)-1].Age

	chart = asciigraph.PlotMany(series,
		asciigraph.Height(display.ChartHeight),
		asciigraph.Width(display.ChartWidth),
		asciigraph.LowerBound(0),
		asciigraph.UpperBound(ceiling),
		asciigraph.Precision(1),
		asciigraph.SeriesColors(colors...),
		asciigraph.Caption(fmt.Sprintf("VO2 max (%s) by age, %d to %d", vo2Unit, first, last)),
	)
	return chart, nil
}

func flatLine(v float64, n int) []float64 {
	line := make([]float64, n)
	for i := range line {
		line[i] = v
	}
	return line
}
