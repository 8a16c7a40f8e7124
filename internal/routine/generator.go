package routine

import (
	"log/slog"
	"sort"

	"github.com/ironcoach/ironcoach/internal/errors"
	"github.com/ironcoach/ironcoach/internal/history"
)

// ErrUnknownFocus signals a focus outside the template table.
var ErrUnknownFocus = errors.NewSentinel("unknown training focus")

const (
	// provenFavoriteMinUses is how often an exercise must appear in
	// history before it overrides a slot default.
	provenFavoriteMinUses = 3

	isometricHoldSeconds = 30
	minSetsShortSession  = 2
)

// goalParams tunes set, rep and rest prescriptions per training goal.
type goalParams struct {
	sets        int
	reps        int
	restSeconds int
}

var goalTuning = map[history.Goal]goalParams{
	history.GoalStrength:  {sets: 5, reps: 5, restSeconds: 180},
	history.GoalMuscle:    {sets: 3, reps: 10, restSeconds: 60},
	history.GoalEndurance: {sets: 3, reps: 15, restSeconds: 45},
}

// nameKeys maps a focus to the routine name reference key.
var nameKeys = map[Focus]string{
	FocusPush:     "routine_name_push",
	FocusPull:     "routine_name_pull",
	FocusLegs:     "routine_name_legs",
	FocusUpper:    "routine_name_upper",
	FocusLower:    "routine_name_lower",
	FocusFullBody: "routine_name_full_body",
}

// GenerateSmartRoutine assembles a routine for the focus by resolving each
// template slot to an exercise. Frequency history steers slots toward the
// user's proven favorites; nil frequency means defaults only.
func (g *Generator) GenerateSmartRoutine(
	focus Focus,
	settings Settings,
	frequency map[int]int,
) (Routine, error) {
	template, ok := focusTemplates[focus]
	if !ok {
		return Routine{}, errors.Wrap(ErrUnknownFocus, "generate smart routine",
			slog.String("focus", string(focus)))
	}

	params := goalTuning[settings.Goal.OrDefault()]
	if settings.Time == TimeShort && params.sets > minSetsShortSession {
		params.sets--
	}

	routine := Routine{
		Name:       nameKeys[focus],
		IsTemplate: true,
	}
	used := make(map[int]bool)
	for _, slotID := range template {
		exerciseID, ok := g.resolveSlot(slots[slotID], settings, frequency)
		if !ok || used[exerciseID] {
			continue
		}
		used[exerciseID] = true
		routine.Exercises = append(routine.Exercises, g.prescribe(exerciseID, params))
	}
	return routine, nil
}

// resolveSlot picks an exercise id for a slot: the user's proven favorite
// when one qualifies, the slot default otherwise. Beginner safety swaps are
// applied last.
func (g *Generator) resolveSlot(s slot, settings Settings, frequency map[int]int) (int, bool) {
	exerciseID, ok := g.favoriteForSlot(s, settings.Modality, frequency)
	if !ok {
		exerciseID, ok = s.defaults[settings.Modality]
		if !ok {
			return 0, false
		}
	}

	if settings.Experience == history.ExperienceBeginner {
		if swap, hasSwap := safetySwaps[exerciseID]; hasSwap {
			if ex, known := g.catalog.Get(swap); known && modalityAllows(settings.Modality, ex.Equipment) {
				exerciseID = swap
			}
		}
	}
	return exerciseID, true
}

// favoriteForSlot ranks the slot's candidate pool by usage frequency and
// returns the top candidate if it clears the proven-favorite bar.
func (g *Generator) favoriteForSlot(s slot, modality Modality, frequency map[int]int) (int, bool) {
	if len(frequency) == 0 {
		return 0, false
	}
	var candidates []int
	for _, ex := range g.catalog.All() {
		if s.predicate(ex) && modalityAllows(modality, ex.Equipment) && frequency[ex.ID] > 0 {
			candidates = append(candidates, ex.ID)
		}
	}
	if len(candidates) == 0 {
		return 0, false
	}
	sort.Slice(candidates, func(i, j int) bool {
		if frequency[candidates[i]] != frequency[candidates[j]] {
			return frequency[candidates[i]] > frequency[candidates[j]]
		}
		return candidates[i] < candidates[j]
	})
	if frequency[candidates[0]] < provenFavoriteMinUses {
		return 0, false
	}
	return candidates[0], true
}

// prescribe builds the unfilled sets for an exercise. Isometric movements
// become timed holds instead of rep sets.
func (g *Generator) prescribe(exerciseID int, params goalParams) history.WorkoutExercise {
	exercise := history.WorkoutExercise{ExerciseID: exerciseID}
	isometric := false
	if ex, ok := g.catalog.Get(exerciseID); ok {
		isometric = ex.Isometric
	}
	for range params.sets {
		set := history.PerformedSet{
			Kind:              history.SetNormal,
			TargetRestSeconds: params.restSeconds,
		}
		if isometric {
			set.HoldSeconds = isometricHoldSeconds
		} else {
			set.Reps = params.reps
		}
		exercise.Sets = append(exercise.Sets, set)
	}
	return exercise
}
