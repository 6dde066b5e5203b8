package analysis

import "testing"

func TestSuggest(t *testing.T) {
	tests := []struct {
		current float64
		target  float64
		want    WorkoutTier
	}{
		{45, 45, TierMaintain},
		{50, 45, TierMaintain},
		{41, 45, TierAlmostThere},
		{40.6, 45, TierAlmostThere},
		{40, 45, TierImprovementNeeded}, // 0.9 * 45 = 40.5
		{35, 45, TierImprovementNeeded},
		{0, 45, TierImprovementNeeded},
	}

	for _, tt := range tests {
		if got := Suggest(tt.current, tt.target); got != tt.want {
			t.Errorf("Suggest(%v, %v) = %v, want %v", tt.current, tt.target, got, tt.want)
		}
	}
}

func TestWorkoutTier_Recommendation(t *testing.T) {
	for _, tier := range []WorkoutTier{TierMaintain, TierAlmostThere, TierImprovementNeeded} {
		if tier.Recommendation() == "" {
			t.Errorf("%v has no recommendation", tier)
		}
	}
	if TierMaintain.Recommendation() == TierImprovementNeeded.Recommendation() {
		t.Error("tiers should have distinct recommendations")
	}
}

func TestActivityThresholds(t *testing.T) {
	seen := make(map[string]bool)
	for i, a := range ActivityThresholds {
		if seen[a.Label] {
			t.Errorf("duplicate activity label %q", a.Label)
		}
		seen[a.Label] = true

		if i > 0 && a.VO2Max >= ActivityThresholds[i-1].VO2Max {
			t.Errorf("%q (%v) should be below %q", a.Label, a.VO2Max, ActivityThresholds[i-1].Label)
		}
	}
}

func TestActivityExamples(t *testing.T) {
	if len(ActivityExamples) == 0 {
		t.Fatal("no activity examples")
	}
	for i, ex := range ActivityExamples {
		if ex.Description == "" {
			t.Errorf("%q has no description", ex.Level)
		}
		if i > 0 && ex.VO2Max <= ActivityExamples[i-1].VO2Max {
			t.Errorf("%q (%v) should be above %q", ex.Level, ex.VO2Max, ActivityExamples[i-1].Level)
		}
	}
}
