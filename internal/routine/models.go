// Package routine assembles concrete workout templates. The smart generator
// fills a slot-based template for a training focus; the gap generator builds
// a fatigue-aware recovery session when the user is not ready for a normal
// workout.
package routine

import (
	"math/rand/v2"

	"github.com/ironcoach/ironcoach/internal/catalog"
	"github.com/ironcoach/ironcoach/internal/history"
)

// Focus selects the slot template for a generated routine.
type Focus string

// Training focuses.
const (
	FocusPush     Focus = "push"
	FocusPull     Focus = "pull"
	FocusLegs     Focus = "legs"
	FocusUpper    Focus = "upper"
	FocusLower    Focus = "lower"
	FocusFullBody Focus = "full_body"
)

// Modality is the equipment available to the user.
type Modality string

// Equipment modalities.
const (
	ModalityGym        Modality = "gym"
	ModalityHome       Modality = "home"
	ModalityBodyweight Modality = "bodyweight"
)

// TimePreference scales session length.
type TimePreference string

// Time preferences.
const (
	TimeShort    TimePreference = "short"
	TimeStandard TimePreference = "standard"
	TimeLong     TimePreference = "long"
)

// Settings tunes generated routines.
type Settings struct {
	Goal       history.Goal       `json:"goal"`
	Experience history.Experience `json:"experience"`
	Modality   Modality           `json:"modality"`
	Time       TimePreference     `json:"time"`
}

// Routine is a workout template. Sets are unfilled: weight zero, not
// completed. Name and Description hold reference keys for generated
// routines and literal text for user-created ones; the i18n layer passes
// unknown keys through unchanged.
type Routine struct {
	ID          int                       `json:"id"`
	Name        string                    `json:"name"`
	Description string                    `json:"description"`
	Exercises   []history.WorkoutExercise `json:"exercises"`
	IsTemplate  bool                      `json:"is_template"`
}

// ExerciseIDs returns the ids of the routine's exercises in order.
func (r Routine) ExerciseIDs() []int {
	ids := make([]int, 0, len(r.Exercises))
	for _, exercise := range r.Exercises {
		ids = append(ids, exercise.ExerciseID)
	}
	return ids
}

// Shuffle randomizes in-place selection order, matching the contract of
// rand.Shuffle. Tests inject a deterministic implementation.
type Shuffle func(n int, swap func(i, j int))

// Generator builds routines. The zero value is not usable; construct with
// NewGenerator.
type Generator struct {
	catalog catalog.Catalog
	shuffle Shuffle
}

// NewGenerator returns a generator over the given catalog. A nil shuffle
// defaults to the process-wide random source.
func NewGenerator(c catalog.Catalog, shuffle Shuffle) *Generator {
	if shuffle == nil {
		shuffle = rand.Shuffle
	}
	return &Generator{catalog: c, shuffle: shuffle}
}

// modalityAllows reports whether the exercise's equipment is available.
func modalityAllows(modality Modality, equipment catalog.Equipment) bool {
	switch modality {
	case ModalityGym:
		return true
	case ModalityHome:
		return equipment == catalog.EquipmentDumbbell ||
			equipment == catalog.EquipmentKettlebell ||
			equipment == catalog.EquipmentBodyweight
	case ModalityBodyweight:
		return equipment == catalog.EquipmentBodyweight
	default:
		return false
	}
}
