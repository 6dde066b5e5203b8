package service

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog"

	"vo2max/internal/analysis"
)

// ErrInvalidQuery is returned when a query has values the core can't use
var ErrInvalidQuery = errors.New("invalid query")

// Query is one set of form inputs
type Query struct {
	VO2Max      float64
	Age         int
	Sex         analysis.Sex
	DeclineRate float64 // percent per year
}

// ThresholdCrossing tells when the projection drops below an activity level
type ThresholdCrossing struct {
	Activity     analysis.ActivityThreshold
	Age          int  // first age below the activity level
	AlreadyBelow bool // below at the starting age
	Crosses      bool // false when it stays above through TerminalAge
}

// AssessmentData contains everything the assessment screens display
type AssessmentData struct {
	Query Query

	Percentile      float64 // 0-100, unrounded
	PercentileLabel string  // "72nd"
	Category        analysis.Category

	Target          float64 // 75th percentile VO2 max, unrounded
	Progress        float64 // VO2 max / target, capped at 1
	AtTarget        bool
	Workout         analysis.WorkoutTier
	WorkoutAdvice   string
	Tips            []string
	ReferenceRow    analysis.ReferenceRow
	Projection      analysis.ProjectionSeries
	Crossings       []ThresholdCrossing
	ProjectedAtLast float64 // value at TerminalAge
}

// AssessmentService runs the percentile, target and projection computations
// for the TUI
type AssessmentService struct {
	estimator *analysis.Estimator
	logger    zerolog.Logger
}

// NewAssessmentService creates a new assessment service
func NewAssessmentService(estimator *analysis.Estimator, logger zerolog.Logger) *AssessmentService {
	if estimator == nil {
		estimator = analysis.DefaultEstimator()
	}
	return &AssessmentService{estimator: estimator, logger: logger}
}

// Assess computes a full assessment for q. A computation error aborts the
// whole assessment; no partial result is returned.
func (s *AssessmentService) Assess(q Query) (*AssessmentData, error) {
	if err := validateQuery(q); err != nil {
		return nil, err
	}

	age := float64(q.Age)

	row, err := s.estimator.InterpolateRow(age, q.Sex)
	if err != nil {
		s.logger.Error().Err(err).Int("age", q.Age).Stringer("sex", q.Sex).Msg("reference row lookup failed")
		return nil, fmt.Errorf("looking up reference row: %w", err)
	}

	percentile, err := s.estimator.EstimatePercentile(q.VO2Max, age, q.Sex)
	if err != nil {
		s.logger.Error().Err(err).Float64("vo2_max", q.VO2Max).Msg("percentile estimate failed")
		return nil, fmt.Errorf("estimating percentile: %w", err)
	}

	target, err := s.estimator.TargetAt75th(age, q.Sex)
	if err != nil {
		return nil, fmt.Errorf("computing target: %w", err)
	}

	data := &AssessmentData{
		Query:           q,
		Percentile:      percentile,
		PercentileLabel: humanize.Ordinal(int(math.Round(percentile))),
		Category:        analysis.Categorize(percentile),
		Target:          target,
		Progress:        math.Min(q.VO2Max/target, 1),
		AtTarget:        q.VO2Max >= target,
		ReferenceRow:    row,
	}

	data.Workout = analysis.Suggest(q.VO2Max, target)
	data.WorkoutAdvice = data.Workout.Recommendation()
	if data.AtTarget {
		data.Tips = slices.Clone(analysis.MaintainTips)
	} else {
		data.Tips = slices.Clone(analysis.ImprovementTips)
	}

	data.Projection = analysis.Project(q.VO2Max, q.Age, q.DeclineRate, analysis.TerminalAge)
	data.ProjectedAtLast, _ = data.Projection.At(analysis.TerminalAge)
	data.Crossings = thresholdCrossings(data.Projection)

	s.logger.Debug().
		Float64("vo2_max", q.VO2Max).
		Int("age", q.Age).
		Stringer("sex", q.Sex).
		Float64("decline_rate", q.DeclineRate).
		Float64("percentile", percentile).
		Str("category", string(data.Category)).
		Msg("assessment computed")

	return data, nil
}

// ReferenceRows returns every anchor row of the table for sex, youngest first
func (s *AssessmentService) ReferenceRows(sex analysis.Sex) ([]ReferenceRowDisplay, error) {
	var rows []ReferenceRowDisplay
	for _, anchor := range analysis.Anchors() {
		row, err := s.estimator.Row(sex, anchor)
		if err != nil {
			return nil, err
		}
		rows = append(rows, ReferenceRowDisplay{Age: anchor, Values: row})
	}
	return rows, nil
}

// ReferenceRowDisplay is one age band of the reference table
type ReferenceRowDisplay struct {
	Age    int
	Values analysis.ReferenceRow
}

func validateQuery(q Query) error {
	if math.IsNaN(q.VO2Max) || math.IsInf(q.VO2Max, 0) || q.VO2Max < 0 {
		return fmt.Errorf("%w: vo2 max must be a non-negative number, got %v", ErrInvalidQuery, q.VO2Max)
	}
	if math.IsNaN(q.DeclineRate) || q.DeclineRate < 0 || q.DeclineRate >= 100 {
		return fmt.Errorf("%w: decline rate must be between 0 and 100 percent, got %v", ErrInvalidQuery, q.DeclineRate)
	}
	return nil
}

func thresholdCrossings(series analysis.ProjectionSeries) []ThresholdCrossing {
	crossings := make([]ThresholdCrossing, 0, len(analysis.ActivityThresholds))
	for _, activity := range analysis.ActivityThresholds {
		c := ThresholdCrossing{Activity: activity}
		c.Age, c.Crosses = series.CrossingAge(activity.VO2Max)
		if c.Crosses && len(series) > 0 && c.Age == series[0].Age {
			c.AlreadyBelow = true
		}
		crossings = append(crossings, c)
	}
	return crossings
}
