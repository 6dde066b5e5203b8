package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vo2max/internal/analysis"
	"vo2max/internal/config"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func typeText(m FormModel, s string) FormModel {
	for _, r := range s {
		m, _ = m.Update(runes(string(r)))
	}
	return m
}

func press(m FormModel, t tea.KeyType, n int) FormModel {
	for i := 0; i < n; i++ {
		m, _ = m.Update(tea.KeyMsg{Type: t})
	}
	return m
}

func testProfile() config.ProfileConfig {
	return config.ProfileConfig{Sex: "female", Age: 45, DeclineRate: 0.7}
}

func TestFormModel_Defaults(t *testing.T) {
	m := NewFormModel(testProfile())

	assert.Equal(t, analysis.SexFemale, m.Sex())
	assert.Equal(t, 0.7, m.DeclineRate())

	age, err := m.Age()
	require.NoError(t, err)
	assert.Equal(t, 45, age)

	_, err = m.Query()
	assert.ErrorIs(t, err, errNoVO2)
}

func TestFormModel_PrefilledVO2(t *testing.T) {
	profile := testProfile()
	profile.VO2Max = 41.26
	profile.Sex = "nonsense"

	m := NewFormModel(profile)
	q, err := m.Query()
	require.NoError(t, err)
	assert.Equal(t, 41.3, q.VO2Max)
	assert.Equal(t, analysis.SexMale, q.Sex)
}

func TestFormModel_TypingVO2(t *testing.T) {
	m := NewFormModel(testProfile())

	m = typeText(m, "42.5")
	q, err := m.Query()
	require.NoError(t, err)
	assert.Equal(t, 42.5, q.VO2Max)
	assert.Equal(t, 45, q.Age)
	assert.Equal(t, analysis.SexFemale, q.Sex)
	assert.Equal(t, 0.7, q.DeclineRate)

	// A second decimal point and letters are ignored
	m = typeText(m, ".x")
	assert.Equal(t, "42.5", m.vo2Input.Value())

	// Zero means nothing to assess
	m = press(m, tea.KeyBackspace, 4)
	m = typeText(m, "0")
	_, err = m.Query()
	assert.ErrorIs(t, err, errNoVO2)
}

func TestFormModel_Age(t *testing.T) {
	m := NewFormModel(testProfile())
	m = typeText(m, "40")

	m = press(m, tea.KeyTab, 1)
	assert.Equal(t, fieldAge, m.focus)

	// Age takes digits only
	m = typeText(m, ".")
	assert.Equal(t, "45", m.ageInput.Value())

	m = press(m, tea.KeyBackspace, 2)
	m = typeText(m, "80")
	_, err := m.Age()
	assert.Error(t, err)
	_, err = m.Query()
	assert.Error(t, err)

	m = press(m, tea.KeyBackspace, 2)
	_, err = m.Age()
	assert.Error(t, err)

	m = typeText(m, "63")
	q, err := m.Query()
	require.NoError(t, err)
	assert.Equal(t, 63, q.Age)
}

func TestFormModel_Focus(t *testing.T) {
	m := NewFormModel(testProfile())
	assert.Equal(t, fieldVO2, m.focus)

	m = press(m, tea.KeyShiftTab, 1)
	assert.Equal(t, fieldDecline, m.focus)

	m = press(m, tea.KeyDown, 1)
	assert.Equal(t, fieldVO2, m.focus)

	m = press(m, tea.KeyTab, 2)
	assert.Equal(t, fieldSex, m.focus)
	assert.False(t, m.vo2Input.Focused())
	assert.False(t, m.ageInput.Focused())

	m = press(m, tea.KeyUp, 1)
	assert.Equal(t, fieldAge, m.focus)
	assert.True(t, m.ageInput.Focused())
}

func TestFormModel_Sex(t *testing.T) {
	m := NewFormModel(testProfile())
	m = press(m, tea.KeyTab, 2)

	m = press(m, tea.KeyRight, 1)
	assert.Equal(t, analysis.SexMale, m.Sex())

	m = press(m, tea.KeyLeft, 1)
	assert.Equal(t, analysis.SexFemale, m.Sex())

	m, _ = m.Update(runes("m"))
	assert.Equal(t, analysis.SexMale, m.Sex())

	m, _ = m.Update(runes("f"))
	assert.Equal(t, analysis.SexFemale, m.Sex())
}

func TestFormModel_DeclineRate(t *testing.T) {
	m := NewFormModel(testProfile())
	m = press(m, tea.KeyShiftTab, 1)

	m = press(m, tea.KeyRight, 1)
	assert.Equal(t, 0.8, m.DeclineRate())

	m = press(m, tea.KeyRight, 20)
	assert.Equal(t, config.MaxDeclineRate, m.DeclineRate())

	m = press(m, tea.KeyLeft, 20)
	assert.Equal(t, config.MinDeclineRate, m.DeclineRate())

	m, _ = m.Update(runes("+"))
	assert.Equal(t, 0.2, m.DeclineRate())
	m, _ = m.Update(runes("-"))
	assert.Equal(t, 0.1, m.DeclineRate())
}

func TestClampDecline(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{0, 0.1},
		{0.05, 0.1},
		{0.7, 0.7},
		{0.75, 0.8},
		{0.7 + 0.1, 0.8},
		{1.5, 1.5},
		{3, 1.5},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, clampDecline(tt.in), "clampDecline(%v)", tt.in)
	}
}

func TestFormModel_View(t *testing.T) {
	m := NewFormModel(testProfile())
	view := m.View()

	assert.Contains(t, view, "VO2 max")
	assert.Contains(t, view, "Female")
	assert.Contains(t, view, "0.7% / year")
}
