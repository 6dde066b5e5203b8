package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"vo2max/internal/analysis"
	"vo2max/internal/service"
)

// ReferenceModel shows the percentile table for the selected sex along with
// the row interpolated for the entered age
type ReferenceModel struct {
	service  *service.AssessmentService
	sex      analysis.Sex
	age      int
	data     *service.AssessmentData
	viewport viewport.Model
	ready    bool
}

// NewReferenceModel creates a new reference table model
func NewReferenceModel(svc *service.AssessmentService, width, height int) ReferenceModel {
	m := ReferenceModel{service: svc}
	if width > 0 && height > 0 {
		m.viewport = viewport.New(width, height-6)
		m.ready = true
	}
	return m
}

// Init initializes the reference screen
func (m ReferenceModel) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m ReferenceModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case AssessmentUpdatedMsg:
		m.sex = msg.Sex
		m.age = msg.Age
		m.data = msg.Data

	case tea.WindowSizeMsg:
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-6)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - 6
		}
	}

	if m.ready {
		m.viewport.SetContent(m.renderContent())
	}

	// Handle viewport scrolling
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View renders the reference screen
func (m ReferenceModel) View() string {
	if !m.ready {
		return "\n  Initializing..."
	}

	footer := statusStyle.Render("  j/k or arrows: scroll  a: assessment")
	return lipgloss.JoinVertical(lipgloss.Left, m.viewport.View(), footer)
}

func (m ReferenceModel) renderContent() string {
	var lines []string

	lines = append(lines, "")
	lines = append(lines, cardTitleStyle.Render(fmt.Sprintf("VO2 Max Norms - %s (%s)", m.sex, vo2Unit)))

	rows, err := m.service.ReferenceRows(m.sex)
	if err != nil {
		lines = append(lines, errorStyle.Render(fmt.Sprintf("  Error: %v", err)))
		return strings.Join(lines, "\n")
	}

	lines = append(lines, tableHeaderStyle.Render(referenceHeader()))

	yourRowShown := false
	for _, r := range rows {
		if m.showYourRow() && !yourRowShown && m.age < r.Age {
			lines = append(lines, m.renderYourRow())
			yourRowShown = true
		}

		line := formatReferenceRow(fmt.Sprintf("%d", r.Age), r.Values)
		if m.showYourRow() && m.age == r.Age {
			line = tableSelectedStyle.Render(line)
			yourRowShown = true
		}
		lines = append(lines, line)
	}
	if m.showYourRow() && !yourRowShown {
		lines = append(lines, m.renderYourRow())
	}

	lines = append(lines, "")
	lines = append(lines, renderSectionHeader("How This Table Is Used", 60))
	lines = append(lines, mutedStyle.Render("  Ages between decades are interpolated linearly; ages below 20 or above"))
	lines = append(lines, mutedStyle.Render("  70 use the nearest decade. Values above the 95th percentile extrapolate"))
	lines = append(lines, mutedStyle.Render("  toward 1.2x the 95th value (100th), values below the 20th toward 0.8x"))
	lines = append(lines, mutedStyle.Render("  the 20th value (0th)."))

	if m.data != nil {
		lines = append(lines, "")
		lines = append(lines, RenderMetric("Your percentile", fmt.Sprintf("%.1f (%s)", m.data.Percentile, m.data.PercentileLabel)))
	}
	lines = append(lines, "")

	return strings.Join(lines, "\n")
}

// showYourRow reports whether the interpolated row is available
func (m ReferenceModel) showYourRow() bool {
	return m.data != nil && m.age > 0
}

// renderYourRow highlights the row interpolated for the entered age. Anchor
// ages highlight the table row itself instead.
func (m ReferenceModel) renderYourRow() string {
	label := fmt.Sprintf("%d*", m.age)
	return tableSelectedStyle.Render(formatReferenceRow(label, m.data.ReferenceRow))
}

func referenceHeader() string {
	var b strings.Builder
	fmt.Fprintf(&b, "  %-6s", "Age")
	for _, p := range analysis.PercentileBoundaries {
		fmt.Fprintf(&b, "  %7s", fmt.Sprintf("%.0fth", p))
	}
	return b.String()
}

func formatReferenceRow(label string, row analysis.ReferenceRow) string {
	var b strings.Builder
	fmt.Fprintf(&b, "  %-6s", label)
	for _, v := range row {
		fmt.Fprintf(&b, "  %7s", formatVO2Value(v))
	}
	return b.String()
}
