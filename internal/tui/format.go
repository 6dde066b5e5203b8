package tui

import (
	"fmt"
	"math"
)

const vo2Unit = "ml/kg/min"

// formatVO2 formats a VO2 max with one decimal and unit
func formatVO2(v float64) string {
	return fmt.Sprintf("%.1f %s", v, vo2Unit)
}

// formatVO2Value formats a VO2 max with one decimal, no unit
func formatVO2Value(v float64) string {
	return fmt.Sprintf("%.1f", v)
}

// formatPercent formats a 0-1 ratio as a percentage
func formatPercent(ratio float64) string {
	return fmt.Sprintf("%.1f%%", ratio*100)
}

// formatRate formats a yearly decline rate
func formatRate(rate float64) string {
	return fmt.Sprintf("%.1f%% / year", rate)
}

// roundTenth rounds to one decimal place
func roundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}
