package analysis

import "math"

const (
	// TerminalAge is the last age included in a projection
	TerminalAge = 90

	// DefaultDeclineRate is the default yearly VO2 max loss in percent
	DefaultDeclineRate = 0.7
)

// ProjectionPoint is the projected VO2 max at one age
type ProjectionPoint struct {
	Age    int
	VO2Max float64
}

// ProjectionSeries is a year-by-year projection, ages increasing by one
type ProjectionSeries []ProjectionPoint

// Project compounds a yearly percentage decline from startAge through
// terminalAge inclusive:
//
//	vo2(a) = current * (1 - rate/100)^(a - startAge)
//
// A startAge past terminalAge yields an empty series.
func Project(current float64, startAge int, ratePercent float64, terminalAge int) ProjectionSeries {
	if startAge > terminalAge {
		return ProjectionSeries{}
	}

	retention := 1 - ratePercent/100
	series := make(ProjectionSeries, 0, terminalAge-startAge+1)
	for age := startAge; age <= terminalAge; age++ {
		series = append(series, ProjectionPoint{
			Age:    age,
			VO2Max: current * math.Pow(retention, float64(age-startAge)),
		})
	}
	return series
}

// Ages returns the ages of the series
func (s ProjectionSeries) Ages() []int {
	ages := make([]int, len(s))
	for i, p := range s {
		ages[i] = p.Age
	}
	return ages
}

// Values returns the projected VO2 max values of the series
func (s ProjectionSeries) Values() []float64 {
	values := make([]float64, len(s))
	for i, p := range s {
		values[i] = p.VO2Max
	}
	return values
}

// At returns the projected value at age
func (s ProjectionSeries) At(age int) (float64, bool) {
	if len(s) == 0 {
		return 0, false
	}
	i := age - s[0].Age
	if i < 0 || i >= len(s) {
		return 0, false
	}
	return s[i].VO2Max, true
}

// CrossingAge returns the first age whose projected value is below threshold.
// ok is false when the series never drops below it.
func (s ProjectionSeries) CrossingAge(threshold float64) (age int, ok bool) {
	for _, p := range s {
		if p.VO2Max < threshold {
			return p.Age, true
		}
	}
	return 0, false
}
