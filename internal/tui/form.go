package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"vo2max/internal/analysis"
	"vo2max/internal/config"
	"vo2max/internal/service"
)

// errNoVO2 means the VO2 max field is empty or zero; nothing is assessed yet
var errNoVO2 = errors.New("enter your VO2 max to see your percentile")

const declineStep = 0.1

type formField int

const (
	fieldVO2 formField = iota
	fieldAge
	fieldSex
	fieldDecline
	fieldCount
)

// FormModel holds the assessment inputs
type FormModel struct {
	vo2Input    textinput.Model
	ageInput    textinput.Model
	sex         analysis.Sex
	declineRate float64
	focus       formField
}

// NewFormModel creates a form prefilled from the profile config
func NewFormModel(profile config.ProfileConfig) FormModel {
	vo2 := textinput.New()
	vo2.Prompt = ""
	vo2.Placeholder = "e.g. 42.5"
	vo2.CharLimit = 5
	vo2.Width = 8
	if profile.VO2Max > 0 {
		vo2.SetValue(strconv.FormatFloat(roundTenth(profile.VO2Max), 'f', 1, 64))
	}

	age := textinput.New()
	age.Prompt = ""
	age.Placeholder = "20-70"
	age.CharLimit = 2
	age.Width = 8
	age.SetValue(strconv.Itoa(profile.Age))

	sex, err := analysis.ParseSex(profile.Sex)
	if err != nil {
		sex = analysis.SexMale
	}

	m := FormModel{
		vo2Input:    vo2,
		ageInput:    age,
		sex:         sex,
		declineRate: clampDecline(profile.DeclineRate),
	}
	m.vo2Input.Focus()
	return m
}

// Update handles navigation and editing keys
func (m FormModel) Update(msg tea.Msg) (FormModel, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m.updateInputs(msg)
	}

	switch key.String() {
	case "tab", "down":
		return m.setFocus((m.focus + 1) % fieldCount)
	case "shift+tab", "up":
		return m.setFocus((m.focus + fieldCount - 1) % fieldCount)
	}

	switch m.focus {
	case fieldSex:
		switch key.String() {
		case "left", "right", " ", "enter":
			if m.sex == analysis.SexMale {
				m.sex = analysis.SexFemale
			} else {
				m.sex = analysis.SexMale
			}
		case "m":
			m.sex = analysis.SexMale
		case "f":
			m.sex = analysis.SexFemale
		}
		return m, nil

	case fieldDecline:
		switch key.String() {
		case "left", "-":
			m.declineRate = clampDecline(m.declineRate - declineStep)
		case "right", "+", "=":
			m.declineRate = clampDecline(m.declineRate + declineStep)
		}
		return m, nil
	}

	if key.Type == tea.KeyRunes && !m.acceptsRunes(key.Runes) {
		return m, nil
	}
	return m.updateInputs(msg)
}

func (m FormModel) updateInputs(msg tea.Msg) (FormModel, tea.Cmd) {
	var cmd tea.Cmd
	switch m.focus {
	case fieldVO2:
		m.vo2Input, cmd = m.vo2Input.Update(msg)
	case fieldAge:
		m.ageInput, cmd = m.ageInput.Update(msg)
	}
	return m, cmd
}

// acceptsRunes reports whether typed runes are valid for the focused field.
// VO2 max takes digits and one decimal point, age takes digits only.
func (m FormModel) acceptsRunes(runes []rune) bool {
	for _, r := range runes {
		switch {
		case r >= '0' && r <= '9':
		case r == '.' && m.focus == fieldVO2 && !strings.Contains(m.vo2Input.Value(), "."):
		default:
			return false
		}
	}
	return true
}

func (m FormModel) setFocus(f formField) (FormModel, tea.Cmd) {
	m.focus = f
	m.vo2Input.Blur()
	m.ageInput.Blur()

	switch f {
	case fieldVO2:
		return m, m.vo2Input.Focus()
	case fieldAge:
		return m, m.ageInput.Focus()
	}
	return m, nil
}

// Sex returns the selected sex
func (m FormModel) Sex() analysis.Sex {
	return m.sex
}

// Age returns the entered age when it parses and is in range
func (m FormModel) Age() (int, error) {
	age, err := strconv.Atoi(strings.TrimSpace(m.ageInput.Value()))
	if err != nil {
		return 0, fmt.Errorf("age must be a whole number between %d and %d", config.MinAge, config.MaxAge)
	}
	if age < config.MinAge || age > config.MaxAge {
		return 0, fmt.Errorf("age must be between %d and %d", config.MinAge, config.MaxAge)
	}
	return age, nil
}

// DeclineRate returns the selected yearly decline rate in percent
func (m FormModel) DeclineRate() float64 {
	return m.declineRate
}

// Query builds a service query from the current inputs
func (m FormModel) Query() (service.Query, error) {
	age, err := m.Age()
	if err != nil {
		return service.Query{}, err
	}

	raw := strings.TrimSpace(m.vo2Input.Value())
	if raw == "" {
		return service.Query{}, errNoVO2
	}
	vo2, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return service.Query{}, fmt.Errorf("VO2 max %q is not a number", raw)
	}
	if vo2 <= 0 {
		return service.Query{}, errNoVO2
	}

	return service.Query{
		VO2Max:      vo2,
		Age:         age,
		Sex:         m.sex,
		DeclineRate: m.declineRate,
	}, nil
}

// View renders the form
func (m FormModel) View() string {
	sexLabel := fmt.Sprintf("‹ %s ›", m.sex)
	declineLabel := fmt.Sprintf("‹ %s ›", formatRate(m.declineRate))

	lines := []string{
		m.renderField(fieldVO2, "VO2 max (ml/kg/min)", m.vo2Input.View()),
		m.renderField(fieldAge, "Age", m.ageInput.View()),
		m.renderField(fieldSex, "Sex", sexLabel),
		m.renderField(fieldDecline, "Decline rate", declineLabel),
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m FormModel) renderField(f formField, label, value string) string {
	labelStyle := fieldLabelStyle
	marker := "  "
	if m.focus == f {
		labelStyle = fieldFocusedLabelStyle
		marker = navActiveStyle.Render("› ")
	}
	return marker + labelStyle.Render(label) + value
}

// clampDecline keeps the rate within the allowed range on a 0.1 grid
func clampDecline(rate float64) float64 {
	rate = roundTenth(rate)
	if rate < config.MinDeclineRate {
		return config.MinDeclineRate
	}
	if rate > config.MaxDeclineRate {
		return config.MaxDeclineRate
	}
	return rate
}
