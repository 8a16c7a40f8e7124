// Package history defines the workout history and profile types shared by the
// fatigue, strength, recommendation, and supplement engines. The types are
// read-only views: the engines never write back to them.
package history

import (
	"log/slog"
	"time"

	"github.com/ironcoach/ironcoach/internal/errors"
)

// SetKind classifies a performed set.
type SetKind string

// Set kind constants.
const (
	SetNormal  SetKind = "normal"
	SetWarmup  SetKind = "warmup"
	SetDrop    SetKind = "drop"
	SetFailure SetKind = "failure"
)

// Goal is the user's training goal.
type Goal string

// Goal constants.
const (
	GoalStrength  Goal = "strength"
	GoalMuscle    Goal = "muscle"
	GoalEndurance Goal = "endurance"
)

// Experience is the user's self-reported training experience.
type Experience string

// Experience constants.
const (
	ExperienceBeginner     Experience = "beginner"
	ExperienceIntermediate Experience = "intermediate"
	ExperienceAdvanced     Experience = "advanced"
)

// PerformedSet is a single set as performed. Immutable once the session ends.
type PerformedSet struct {
	Reps      int     `json:"reps"`
	WeightKg  float64 `json:"weight_kg"`
	Kind      SetKind `json:"kind"`
	Completed bool    `json:"completed"`
	// ActualRestSeconds is the measured rest before this set, 0 when unknown.
	ActualRestSeconds float64 `json:"actual_rest_seconds,omitempty"`
	TargetRestSeconds int     `json:"target_rest_seconds,omitempty"`
	// HoldSeconds is set instead of Reps for timed isometric holds.
	HoldSeconds int `json:"hold_seconds,omitempty"`
}

// WorkoutExercise is one exercise within a session or routine, with its sets
// in performed order.
type WorkoutExercise struct {
	ExerciseID int            `json:"exercise_id"`
	Sets       []PerformedSet `json:"sets"`
}

// Session is a finished workout. Immutable after completion.
type Session struct {
	ID          int               `json:"id"`
	RoutineID   int               `json:"routine_id"`
	StartedAt   time.Time         `json:"started_at"`
	CompletedAt time.Time         `json:"completed_at"`
	Exercises   []WorkoutExercise `json:"exercises"`
}

// ErrSessionEndsBeforeStart signals a malformed session. The engines fail
// fast on it instead of producing nonsense from negative durations.
var ErrSessionEndsBeforeStart = errors.NewSentinel("session ends before it starts")

// Validate checks session invariants the engines rely on.
func (s Session) Validate() error {
	if s.CompletedAt.Before(s.StartedAt) {
		return errors.Wrap(ErrSessionEndsBeforeStart, "validate session",
			slog.Int("session_id", s.ID),
			slog.Time("started_at", s.StartedAt),
			slog.Time("completed_at", s.CompletedAt))
	}
	return nil
}

// DurationMinutes returns the session length in minutes, never negative.
func (s Session) DurationMinutes() float64 {
	d := s.CompletedAt.Sub(s.StartedAt)
	if d < 0 {
		return 0
	}
	return d.Minutes()
}

// History is the user's sessions ordered newest first.
type History []Session

// Validate checks every session in the history.
func (h History) Validate() error {
	for _, session := range h {
		if err := session.Validate(); err != nil {
			return errors.Wrap(err, "validate history")
		}
	}
	return nil
}

// SessionsSince returns the sessions completed at or after the cutoff,
// preserving newest-first order.
func (h History) SessionsSince(cutoff time.Time) History {
	var out History
	for _, session := range h {
		if session.CompletedAt.Before(cutoff) {
			// Newest-first: everything after this is older still.
			break
		}
		out = append(out, session)
	}
	return out
}

// ExerciseFrequency counts how many sessions each exercise appears in.
func (h History) ExerciseFrequency() map[int]int {
	frequency := make(map[int]int)
	for _, session := range h {
		seen := make(map[int]bool, len(session.Exercises))
		for _, exercise := range session.Exercises {
			if !seen[exercise.ExerciseID] {
				frequency[exercise.ExerciseID]++
				seen[exercise.ExerciseID] = true
			}
		}
	}
	return frequency
}

// RecordedMax is an explicitly tested one-rep max for an exercise.
type RecordedMax struct {
	WeightKg float64   `json:"weight_kg"`
	Date     time.Time `json:"date"`
}

// Gender is used by the supplement dosage rules.
type Gender string

// Gender constants.
const (
	GenderFemale      Gender = "female"
	GenderMale        Gender = "male"
	GenderUnspecified Gender = "unspecified"
)

// Profile carries the user's settings consumed by the engines.
type Profile struct {
	Gender     Gender     `json:"gender"`
	Goal       Goal       `json:"goal"`
	Experience Experience `json:"experience"`
	// RecordedMaxes seeds the synthetic anchors, keyed by exercise id.
	RecordedMaxes map[int]RecordedMax `json:"recorded_maxes,omitempty"`
	// AdaptiveEfficiency enables density-based fatigue scaling.
	AdaptiveEfficiency bool `json:"adaptive_efficiency"`
	// Snoozes suppresses a recommendation kind for a week from the
	// recorded time, keyed by the kind's string value.
	Snoozes map[string]time.Time `json:"snoozes,omitempty"`
}

// SnoozeDuration is how long a snoozed recommendation kind stays quiet.
const SnoozeDuration = 7 * 24 * time.Hour

// Snoozed reports whether the given recommendation kind is snoozed at now.
func (p Profile) Snoozed(kind string, now time.Time) bool {
	snoozedAt, ok := p.Snoozes[kind]
	if !ok {
		return false
	}
	return now.Before(snoozedAt.Add(SnoozeDuration))
}

// OrDefault returns the goal, defaulting to muscle when unset or unknown.
func (g Goal) OrDefault() Goal {
	switch g {
	case GoalStrength, GoalMuscle, GoalEndurance:
		return g
	default:
		return GoalMuscle
	}
}

// OrDefault returns the experience level, defaulting to beginner.
func (e Experience) OrDefault() Experience {
	switch e {
	case ExperienceBeginner, ExperienceIntermediate, ExperienceAdvanced:
		return e
	default:
		return ExperienceBeginner
	}
}

// GoalOrDefault returns the profile goal, defaulting to muscle.
func (p Profile) GoalOrDefault() Goal {
	return p.Goal.OrDefault()
}

// ExperienceOrDefault returns the experience level, defaulting to beginner.
func (p Profile) ExperienceOrDefault() Experience {
	return p.Experience.OrDefault()
}
