package analysis

// WorkoutTier classifies how far a VO2 max is from its target
type WorkoutTier string

const (
	TierMaintain          WorkoutTier = "Maintain"
	TierAlmostThere       WorkoutTier = "Almost there"
	TierImprovementNeeded WorkoutTier = "Improvement needed"
)

// almostThereRatio is the fraction of the target that counts as close
const almostThereRatio = 0.9

var tierRecommendations = map[WorkoutTier]string{
	TierMaintain:          "3-4 HIIT sessions per week, 2-3 moderate cardio sessions",
	TierAlmostThere:       "4-5 HIIT sessions per week, 2-3 longer cardio sessions",
	TierImprovementNeeded: "Start with 2-3 HIIT sessions, gradually increase intensity and duration of cardio workouts",
}

// Suggest picks a workout tier for the current VO2 max relative to target
func Suggest(current, target float64) WorkoutTier {
	switch {
	case current >= target:
		return TierMaintain
	case current >= target*almostThereRatio:
		return TierAlmostThere
	default:
		return TierImprovementNeeded
	}
}

// Recommendation returns the fixed workout advice for the tier
func (t WorkoutTier) Recommendation() string {
	return tierRecommendations[t]
}

// MaintainTips are shown when the target has been reached
var MaintainTips = []string{
	"Continue with your current exercise routine",
	"Focus on maintaining overall health through balanced nutrition",
	"Include variety in your workouts to prevent plateaus",
}

// ImprovementTips are shown while below the target
var ImprovementTips = []string{
	"Incorporate High-Intensity Interval Training (HIIT) into your routine",
	"Gradually increase the duration and intensity of your cardio workouts",
	"Include a mix of cardio exercises (running, cycling, swimming)",
	"Ensure proper rest and recovery between workouts",
	"Maintain a balanced diet rich in nutrients to support your training",
}
