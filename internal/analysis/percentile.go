package analysis

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// ErrComputation is returned when the reference table can't produce a valid
// percentile curve (missing rows, non-monotonic values).
var ErrComputation = errors.New("percentile computation failed")

// ErrUnknownSex is returned by ParseSex for unrecognized input
var ErrUnknownSex = errors.New("unknown sex")

// Sex selects which half of the reference table applies
type Sex int

const (
	SexMale Sex = iota
	SexFemale
)

// String returns the display label ("Male" or "Female")
func (s Sex) String() string {
	switch s {
	case SexMale:
		return "Male"
	case SexFemale:
		return "Female"
	default:
		return fmt.Sprintf("Sex(%d)", int(s))
	}
}

// ParseSex accepts "male", "m", "female" or "f" in any case
func ParseSex(s string) (Sex, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "male", "m":
		return SexMale, nil
	case "female", "f":
		return SexFemale, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownSex, s)
}

// Age anchors of the reference table
const (
	MinAnchorAge = 20
	MaxAnchorAge = 70
	anchorStep   = 10
)

// PercentileBoundaries are the percentiles of the five reference columns,
// highest first
var PercentileBoundaries = [5]float64{95, 80, 60, 40, 20}

// Synthetic ends of the percentile curve
const (
	ceilingFactor = 1.2 // 100th percentile = 95th value * 1.2
	floorFactor   = 0.8 // 0th percentile = 20th value * 0.8
)

// ReferenceRow holds VO2 max values (ml/kg/min) for the 95th, 80th, 60th,
// 40th and 20th percentile, in that order
type ReferenceRow [5]float64

// ReferenceTable maps an anchor age (20, 30, ... 70) to its row, per sex
type ReferenceTable struct {
	Male   map[int]ReferenceRow
	Female map[int]ReferenceRow
}

// DefaultReferenceTable contains VO2 max norms by age decade
var DefaultReferenceTable = ReferenceTable{
	Male: map[int]ReferenceRow{
		20: {55.4, 51.1, 45.4, 41.7, 37.1},
		30: {54.0, 48.3, 44.0, 40.5, 35.9},
		40: {52.5, 46.4, 42.4, 38.5, 33.6},
		50: {48.9, 43.4, 39.2, 35.6, 31.0},
		60: {45.7, 39.5, 35.5, 32.3, 28.1},
		70: {42.1, 36.7, 32.3, 29.4, 25.9},
	},
	Female: map[int]ReferenceRow{
		20: {49.6, 43.9, 39.5, 36.1, 32.2},
		30: {47.4, 42.4, 37.8, 34.4, 30.9},
		40: {45.3, 39.7, 36.3, 33.0, 29.5},
		50: {41.1, 36.7, 33.0, 30.1, 26.9},
		60: {37.8, 33.0, 30.0, 27.5, 24.4},
		70: {36.7, 30.9, 28.1, 25.9, 23.1},
	},
}

// Anchors returns the anchor ages in ascending order
func Anchors() []int {
	var anchors []int
	for age := MinAnchorAge; age <= MaxAnchorAge; age += anchorStep {
		anchors = append(anchors, age)
	}
	return anchors
}

// Estimator turns a VO2 max into a percentile using a reference table.
// It never mutates the table.
type Estimator struct {
	table ReferenceTable
}

// NewEstimator creates an estimator over the given table
func NewEstimator(table ReferenceTable) *Estimator {
	return &Estimator{table: table}
}

// DefaultEstimator returns an estimator over DefaultReferenceTable
func DefaultEstimator() *Estimator {
	return NewEstimator(DefaultReferenceTable)
}

// Row returns the table row for an anchor age
func (e *Estimator) Row(sex Sex, anchor int) (ReferenceRow, error) {
	var rows map[int]ReferenceRow
	switch sex {
	case SexMale:
		rows = e.table.Male
	case SexFemale:
		rows = e.table.Female
	default:
		return ReferenceRow{}, fmt.Errorf("%w: no reference data for %v", ErrComputation, sex)
	}

	row, ok := rows[anchor]
	if !ok {
		return ReferenceRow{}, fmt.Errorf("%w: no %v reference row for age %d", ErrComputation, sex, anchor)
	}
	return row, nil
}

// InterpolateRow returns the reference row for any age.
// Ages at or below 20 use the 20 row, ages at or above 70 use the 70 row;
// anything in between is interpolated linearly between the enclosing decades.
func (e *Estimator) InterpolateRow(age float64, sex Sex) (ReferenceRow, error) {
	if age <= MinAnchorAge {
		return e.Row(sex, MinAnchorAge)
	}
	if age >= MaxAnchorAge {
		return e.Row(sex, MaxAnchorAge)
	}

	lowerAge := int(math.Floor(age/anchorStep)) * anchorStep
	upperAge := lowerAge + anchorStep

	lower, err := e.Row(sex, lowerAge)
	if err != nil {
		return ReferenceRow{}, err
	}
	upper, err := e.Row(sex, upperAge)
	if err != nil {
		return ReferenceRow{}, err
	}

	fraction := (age - float64(lowerAge)) / anchorStep

	var row ReferenceRow
	for i := range row {
		row[i] = lower[i] + (upper[i]-lower[i])*fraction
	}
	return row, nil
}

// percentileCurve extends a row to seven points (synthetic 100th and 0th
// percentile) and returns it in ascending VO2 order
func percentileCurve(row ReferenceRow) (values, percentiles []float64) {
	values = make([]float64, 0, len(row)+2)
	percentiles = make([]float64, 0, len(row)+2)

	values = append(values, row[len(row)-1]*floorFactor)
	percentiles = append(percentiles, 0)
	for i := len(row) - 1; i >= 0; i-- {
		values = append(values, row[i])
		percentiles = append(percentiles, PercentileBoundaries[i])
	}
	values = append(values, row[0]*ceilingFactor)
	percentiles = append(percentiles, 100)

	return values, percentiles
}

// EstimatePercentile returns the percentile (0-100) of a VO2 max for the
// given age and sex. Values beyond the synthetic ceiling or floor clamp to
// 100 or 0.
func (e *Estimator) EstimatePercentile(vo2Max, age float64, sex Sex) (float64, error) {
	row, err := e.InterpolateRow(age, sex)
	if err != nil {
		return 0, err
	}

	values, percentiles := percentileCurve(row)
	p, err := Interp(vo2Max, values, percentiles)
	if err != nil {
		return 0, fmt.Errorf("%w: %v reference curve at age %v: %v", ErrComputation, sex, age, err)
	}
	return p, nil
}

// TargetAtPercentile is the inverse of EstimatePercentile: the VO2 max that
// sits at percentile p for the given age and sex. p is clamped to [0, 100].
func (e *Estimator) TargetAtPercentile(p, age float64, sex Sex) (float64, error) {
	row, err := e.InterpolateRow(age, sex)
	if err != nil {
		return 0, err
	}

	values, percentiles := percentileCurve(row)
	v, err := Interp(p, percentiles, values)
	if err != nil {
		return 0, fmt.Errorf("%w: %v reference curve at age %v: %v", ErrComputation, sex, age, err)
	}
	return v, nil
}

// TargetAt75th returns the 75th percentile VO2 max, a quarter of the way from
// the 80th toward the 60th percentile value. The result is not rounded.
func (e *Estimator) TargetAt75th(age float64, sex Sex) (float64, error) {
	row, err := e.InterpolateRow(age, sex)
	if err != nil {
		return 0, err
	}
	return row[1] + (row[2]-row[1])*0.25, nil
}

// Category is a fitness classification derived from a percentile
type Category string

const (
	CategorySuperior  Category = "Superior"
	CategoryExcellent Category = "Excellent"
	CategoryGood      Category = "Good"
	CategoryFair      Category = "Fair"
	CategoryPoor      Category = "Poor"
)

// Categorize maps a percentile to a fitness category (lower bounds inclusive)
func Categorize(percentile float64) Category {
	switch {
	case percentile >= 95:
		return CategorySuperior
	case percentile >= 80:
		return CategoryExcellent
	case percentile >= 60:
		return CategoryGood
	case percentile >= 40:
		return CategoryFair
	default:
		return CategoryPoor
	}
}
