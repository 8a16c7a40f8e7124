// Package recommend runs the check-in decision cascade: an ordered list of
// independent detectors that produces exactly one recommendation per call
// from history, profile, and the current time.
package recommend

import (
	"github.com/ironcoach/ironcoach/internal/fatigue"
	"github.com/ironcoach/ironcoach/internal/routine"
)

// Kind tags the recommendation variant.
type Kind string

// Recommendation kinds, one per detector outcome.
const (
	KindRest              Kind = "rest"
	KindWorkout           Kind = "workout"
	KindActiveRecovery    Kind = "active_recovery"
	KindDeload            Kind = "deload"
	KindPromotion         Kind = "promotion"
	KindImbalance         Kind = "imbalance"
	KindStall             Kind = "stall"
	KindCircadianNudge    Kind = "circadian_nudge"
	KindEfficiencyWarning Kind = "efficiency_warning"
	KindGoalMismatch      Kind = "goal_mismatch"
	KindTechnicalPR       Kind = "technical_pr"
	KindDensityWarning    Kind = "density_warning"
	KindVolumePivot       Kind = "volume_pivot"
)

// titleKeys maps each kind to its title reference key.
var titleKeys = map[Kind]string{
	KindRest:              "rec_title_rest",
	KindWorkout:           "rec_title_workout",
	KindActiveRecovery:    "rec_title_active_recovery",
	KindDeload:            "rec_title_deload",
	KindPromotion:         "rec_title_promotion",
	KindImbalance:         "rec_title_imbalance",
	KindStall:             "rec_title_stall",
	KindCircadianNudge:    "rec_title_circadian_nudge",
	KindEfficiencyWarning: "rec_title_efficiency_warning",
	KindGoalMismatch:      "rec_title_goal_mismatch",
	KindTechnicalPR:       "rec_title_technical_pr",
	KindDensityWarning:    "rec_title_density_warning",
	KindVolumePivot:       "rec_title_volume_pivot",
}

// Payload is the kind-specific structured data of a recommendation.
type Payload interface {
	recommendationPayload()
}

// StallPayload reports an exercise stuck at a weight ceiling. SuggestedReps
// is non-zero when the stall escalates to a rep-range pivot.
type StallPayload struct {
	ExerciseID    int     `json:"exercise_id"`
	WeightKg      float64 `json:"weight_kg"`
	SessionsCount int     `json:"sessions_count"`
	SuggestedReps int     `json:"suggested_reps,omitempty"`
}

// VolumePivotPayload suggests trading sets for intensity after repeated
// stalls under a strength goal.
type VolumePivotPayload struct {
	ExerciseID int     `json:"exercise_id"`
	WeightKg   float64 `json:"weight_kg"`
	FromSets   int     `json:"from_sets"`
	ToSets     int     `json:"to_sets"`
}

// PromotionPayload suggests moving from an easier variant to a harder one.
type PromotionPayload struct {
	FromExerciseID int `json:"from_exercise_id"`
	ToExerciseID   int `json:"to_exercise_id"`
	Streak         int `json:"streak"`
}

// ImbalancePayload reports a strength ratio out of its expected band.
type ImbalancePayload struct {
	LiftA         int     `json:"lift_a"`
	LiftB         int     `json:"lift_b"`
	Ratio         float64 `json:"ratio"`
	ExpectedRatio float64 `json:"expected_ratio"`
}

// TechnicalPRPayload reports a rest-time improvement at a matched weight.
type TechnicalPRPayload struct {
	ExerciseID         int     `json:"exercise_id"`
	WeightKg           float64 `json:"weight_kg"`
	ImprovementSeconds float64 `json:"improvement_seconds"`
}

// DensityWarningPayload reports a drop in load per minute.
type DensityWarningPayload struct {
	DropPercent int `json:"drop_percent"`
}

// EfficiencyPayload counts overlong rests in the latest session.
type EfficiencyPayload struct {
	SlowSets int `json:"slow_sets"`
}

// CircadianPayload carries the time-of-day bucket behind the nudge.
type CircadianPayload struct {
	Bucket string `json:"bucket"`
}

// WorkoutPayload names the muscle group or rotation routine behind a
// workout recommendation.
type WorkoutPayload struct {
	Group     string `json:"group,omitempty"`
	RoutineID int    `json:"routine_id,omitempty"`
}

// GoalMismatchPayload reports training drifting away from the stated goal.
type GoalMismatchPayload struct {
	Goal        string  `json:"goal"`
	AverageReps float64 `json:"average_reps"`
}

func (StallPayload) recommendationPayload()          {}
func (VolumePivotPayload) recommendationPayload()    {}
func (PromotionPayload) recommendationPayload()      {}
func (ImbalancePayload) recommendationPayload()      {}
func (TechnicalPRPayload) recommendationPayload()    {}
func (DensityWarningPayload) recommendationPayload() {}
func (EfficiencyPayload) recommendationPayload()     {}
func (CircadianPayload) recommendationPayload()      {}
func (WorkoutPayload) recommendationPayload()        {}
func (GoalMismatchPayload) recommendationPayload()   {}

// Recommendation is the single output of a check-in. Title and reason are
// reference keys with parameters; the caller resolves them to display text.
type Recommendation struct {
	Kind         Kind              `json:"kind"`
	TitleKey     string            `json:"title_key"`
	ReasonKey    string            `json:"reason_key"`
	ReasonParams map[string]string `json:"reason_params,omitempty"`
	Payload      Payload           `json:"payload,omitempty"`
	Routine      *routine.Routine  `json:"routine,omitempty"`
	Systemic     *fatigue.Systemic `json:"systemic,omitempty"`
}

func newRecommendation(kind Kind, reasonKey string, params map[string]string) Recommendation {
	return Recommendation{
		Kind:         kind,
		TitleKey:     titleKeys[kind],
		ReasonKey:    reasonKey,
		ReasonParams: params,
	}
}
