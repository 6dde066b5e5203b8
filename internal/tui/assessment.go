package tui

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"vo2max/internal/analysis"
	"vo2max/internal/config"
	"vo2max/internal/service"
)

// AssessmentUpdatedMsg is sent after every recompute so the other screens
// can follow the form
type AssessmentUpdatedMsg struct {
	Sex  analysis.Sex
	Age  int // 0 while the age field is invalid
	Data *service.AssessmentData
	Err  error

	// InputErr is set when the form can't produce a query
	InputErr error
}

// AssessmentModel is the input form plus the percentile results
type AssessmentModel struct {
	service *service.AssessmentService
	form    FormModel

	data     *service.AssessmentData
	err      error // computation error
	inputErr error // form can't produce a query
}

// NewAssessmentModel creates the assessment screen and runs the first
// assessment from the profile values
func NewAssessmentModel(svc *service.AssessmentService, profile config.ProfileConfig) AssessmentModel {
	m := AssessmentModel{
		service: svc,
		form:    NewFormModel(profile),
	}
	m.recompute()
	return m
}

// Init initializes the assessment screen
func (m AssessmentModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.updatedCmd())
}

// Update handles messages
func (m AssessmentModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(AssessmentUpdatedMsg); ok {
		return m, nil
	}

	var cmd tea.Cmd
	before := m.snapshot()
	m.form, cmd = m.form.Update(msg)

	if m.snapshot() == before {
		return m, cmd
	}

	m.recompute()
	return m, tea.Batch(cmd, m.updatedCmd())
}

// formSnapshot captures the values that affect the assessment
type formSnapshot struct {
	vo2     string
	age     string
	sex     analysis.Sex
	decline float64
}

func (m AssessmentModel) snapshot() formSnapshot {
	return formSnapshot{
		vo2:     m.form.vo2Input.Value(),
		age:     m.form.ageInput.Value(),
		sex:     m.form.Sex(),
		decline: m.form.DeclineRate(),
	}
}

// recompute runs the assessment synchronously for the current inputs
func (m *AssessmentModel) recompute() {
	m.data = nil
	m.err = nil

	q, err := m.form.Query()
	if err != nil {
		m.inputErr = err
		return
	}
	m.inputErr = nil
	m.data, m.err = m.service.Assess(q)
}

func (m AssessmentModel) updatedCmd() tea.Cmd {
	msg := AssessmentUpdatedMsg{
		Sex:      m.form.Sex(),
		Data:     m.data,
		Err:      m.err,
		InputErr: m.inputErr,
	}
	if age, err := m.form.Age(); err == nil {
		msg.Age = age
	}
	return func() tea.Msg { return msg }
}

// View renders the assessment screen
func (m AssessmentModel) View() string {
	formCard := cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		cardTitleStyle.Render("Your Details"),
		m.form.View(),
	))

	var sections []string
	sections = append(sections, formCard)
	sections = append(sections, m.renderResults())
	sections = append(sections, statusStyle.Render("tab/↑↓: move  ←→: change sex or decline rate  p: projection  t: table  ?: help"))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m AssessmentModel) renderResults() string {
	if m.inputErr != nil {
		if errors.Is(m.inputErr, errNoVO2) {
			return mutedStyle.Render("\n  " + capitalize(m.inputErr.Error()) + ".")
		}
		return warningStyle.Render("\n  " + capitalize(m.inputErr.Error()))
	}

	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("\n  An error occurred while calculating the percentile: %v", m.err))
	}

	if m.data == nil {
		return ""
	}

	d := m.data
	var lines []string

	lines = append(lines, cardTitleStyle.Render("Results"))
	lines = append(lines, RenderMetric("Your VO2 max", formatVO2(d.Query.VO2Max)))
	lines = append(lines, RenderMetric(
		"Percentile",
		fmt.Sprintf("%.1f (%s percentile for a %d-year-old %s)", d.Percentile, d.PercentileLabel, d.Query.Age, d.Query.Sex),
	))
	lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Left,
		metricLabelStyle.Render("Fitness category"),
		categoryStyle(d.Category).Render(string(d.Category)),
	))
	lines = append(lines, "")
	lines = append(lines, RenderMetric("Target (75th pct)", formatVO2(roundTenth(d.Target))))
	lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Left,
		metricLabelStyle.Render("Progress"),
		RenderProgressBar(d.Progress, 30),
		" "+mutedStyle.Render(formatPercent(d.Progress)),
	))
	lines = append(lines, mutedStyle.Render(fmt.Sprintf("You've achieved %s of the target VO2 max", formatPercent(d.Progress))))
	lines = append(lines, "")

	if d.AtTarget {
		lines = append(lines, successStyle.Render("Great job! Your VO2 max is at or above the 75th percentile for your age and sex."))
		lines = append(lines, "It's important to maintain this level of fitness. Consider these tips:")
		for _, tip := range d.Tips {
			lines = append(lines, "  - "+tip)
		}
	} else {
		lines = append(lines, warningStyle.Render("Your VO2 max is below the 75th percentile target for your age and sex."))
		lines = append(lines, "Here are some tips to improve your VO2 max:")
		for i, tip := range d.Tips {
			lines = append(lines, fmt.Sprintf("  %d. %s", i+1, tip))
		}
	}
	lines = append(lines, "")

	lines = append(lines, RenderMetric("Workout suggestion", string(d.Workout)))
	lines = append(lines, mutedStyle.Render(d.WorkoutAdvice))

	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// capitalize uppercases the first ASCII letter of s
func capitalize(s string) string {
	if len(s) == 0 {
		return s
	}
	if s[0] >= 'a' && s[0] <= 'z' {
		return string(s[0]-32) + s[1:]
	}
	return s
}
