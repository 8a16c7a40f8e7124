// Package strength infers one-rep-max estimates from workout history. The
// synthetic anchor model normalizes whatever a user actually performs onto
// the four canonical lifts so disparate exercises become comparable.
package strength

import (
	"time"

	"github.com/ironcoach/ironcoach/internal/catalog"
	"github.com/ironcoach/ironcoach/internal/history"
)

// Pattern is one of the six movement patterns tracked in the strength profile.
type Pattern string

// Movement patterns.
const (
	PatternSquat        Pattern = "squat"
	PatternDeadlift     Pattern = "deadlift"
	PatternBench        Pattern = "bench"
	PatternOverhead     Pattern = "overhead_press"
	PatternRow          Pattern = "row"
	PatternVerticalPull Pattern = "vertical_pull"
)

// Patterns lists every pattern in presentation order.
func Patterns() []Pattern {
	return []Pattern{
		PatternSquat, PatternDeadlift, PatternBench,
		PatternOverhead, PatternRow, PatternVerticalPull,
	}
}

const (
	// epleyDivisor is the rep scaling constant of the Epley formula.
	epleyDivisor = 30.0
	// maxRepsFor1RM excludes high-rep sets as unreliable for estimation.
	maxRepsFor1RM = 12

	profileLookbackMonths = 6
)

// exercisePatterns buckets exercise ids into movement patterns for the
// strength profile.
var exercisePatterns = map[int]Pattern{
	catalog.ExerciseBarbellSquat:      PatternSquat,
	catalog.ExerciseLegPress:          PatternSquat,
	catalog.ExerciseGobletSquat:       PatternSquat,
	catalog.ExerciseLegExtension:      PatternSquat,
	catalog.ExerciseLunge:             PatternSquat,
	catalog.ExerciseJumpSquat:         PatternSquat,
	catalog.ExerciseDumbbellFrontSqt:  PatternSquat,
	catalog.ExerciseHackSquat:         PatternSquat,
	catalog.ExerciseDeadlift:          PatternDeadlift,
	catalog.ExerciseRomanianDeadlift:  PatternDeadlift,
	catalog.ExerciseHipThrust:         PatternDeadlift,
	catalog.ExerciseGluteBridge:       PatternDeadlift,
	catalog.ExerciseKettlebellSwing:   PatternDeadlift,
	catalog.ExerciseBenchPress:        PatternBench,
	catalog.ExerciseDumbbellBench:     PatternBench,
	catalog.ExerciseInclineDumbbell:   PatternBench,
	catalog.ExerciseCableFly:          PatternBench,
	catalog.ExercisePushUp:            PatternBench,
	catalog.ExerciseDip:               PatternBench,
	catalog.ExerciseChestPressMachine: PatternBench,
	catalog.ExerciseOverheadPress:     PatternOverhead,
	catalog.ExerciseDumbbellShoulder:  PatternOverhead,
	catalog.ExerciseLateralRaise:      PatternOverhead,
	catalog.ExerciseBarbellRow:        PatternRow,
	catalog.ExerciseSeatedCableRow:    PatternRow,
	catalog.ExerciseDumbbellRow:       PatternRow,
	catalog.ExerciseFacePull:          PatternRow,
	catalog.ExerciseLatPulldown:       PatternVerticalPull,
	catalog.ExercisePullUp:            PatternVerticalPull,
}

// AnchorSquat and friends are the canonical anchor lifts. Anchors are keyed
// by the lift's exercise id.
const (
	AnchorSquat    = catalog.ExerciseBarbellSquat
	AnchorBench    = catalog.ExerciseBenchPress
	AnchorDeadlift = catalog.ExerciseDeadlift
	AnchorOverhead = catalog.ExerciseOverheadPress
)

// AnchorLifts lists the canonical anchors in conventional order.
func AnchorLifts() []int {
	return []int{AnchorSquat, AnchorBench, AnchorDeadlift, AnchorOverhead}
}

type anchorRatio struct {
	anchorID int
	// ratio is exercise weight relative to the anchor: Leg Press at 2.5
	// means the leg press moves 2.5x the equivalent squat weight.
	ratio float64
}

// exerciseRatios maps specific exercises straight to an anchor and ratio.
var exerciseRatios = map[int]anchorRatio{
	catalog.ExerciseLegPress:          {AnchorSquat, 2.5},
	catalog.ExerciseHackSquat:         {AnchorSquat, 1.8},
	catalog.ExerciseGobletSquat:       {AnchorSquat, 0.6},
	catalog.ExerciseDumbbellFrontSqt:  {AnchorSquat, 0.7},
	catalog.ExerciseLunge:             {AnchorSquat, 0.5},
	catalog.ExerciseLegExtension:      {AnchorSquat, 0.9},
	catalog.ExerciseRomanianDeadlift:  {AnchorDeadlift, 0.85},
	catalog.ExerciseHipThrust:         {AnchorDeadlift, 1.1},
	catalog.ExerciseGluteBridge:       {AnchorDeadlift, 0.9},
	catalog.ExerciseDumbbellBench:     {AnchorBench, 0.8},
	catalog.ExerciseInclineDumbbell:   {AnchorBench, 0.7},
	catalog.ExerciseChestPressMachine: {AnchorBench, 1.0},
	catalog.ExerciseDumbbellShoulder:  {AnchorOverhead, 0.8},
	catalog.ExerciseLateralRaise:      {AnchorOverhead, 0.35},
}

// bodyPartAnchors is the fallback mapping for exercises without a specific
// ratio entry. Body parts absent here do not resolve to any anchor.
var bodyPartAnchors = map[catalog.BodyPart]int{
	catalog.BodyPartLegs:      AnchorSquat,
	catalog.BodyPartChest:     AnchorBench,
	catalog.BodyPartBack:      AnchorDeadlift,
	catalog.BodyPartShoulders: AnchorOverhead,
}

// equipmentRatios is the fallback ratio per equipment category. Bodyweight
// movements carry no meaningful external load and do not resolve.
var equipmentRatios = map[catalog.Equipment]float64{
	catalog.EquipmentBarbell:    1.0,
	catalog.EquipmentDumbbell:   0.8,
	catalog.EquipmentMachine:    1.2,
	catalog.EquipmentCable:      0.9,
	catalog.EquipmentKettlebell: 0.7,
}

// Estimated1RM applies the Epley formula to a single set. Returns 0 for sets
// that do not qualify for estimation.
func Estimated1RM(set history.PerformedSet) float64 {
	if !set.Completed || set.Reps <= 0 || set.Reps > maxRepsFor1RM || set.WeightKg <= 0 {
		return 0
	}
	return set.WeightKg * (1 + float64(set.Reps)/epleyDivisor)
}

// Profile maps each movement pattern to its best estimated one-rep max.
// Patterns with no qualifying history hold zero.
type Profile map[Pattern]float64

// MaxStrengthProfile computes the best estimated 1RM per movement pattern
// from the six months preceding the cutoff. The cutoff allows historical
// snapshotting; pass the current time for a live profile.
func MaxStrengthProfile(h history.History, cutoff time.Time) Profile {
	profile := make(Profile, len(Patterns()))
	for _, pattern := range Patterns() {
		profile[pattern] = 0
	}

	earliest := cutoff.AddDate(0, -profileLookbackMonths, 0)
	for _, session := range h {
		if session.CompletedAt.After(cutoff) || session.CompletedAt.Before(earliest) {
			continue
		}
		for _, exercise := range session.Exercises {
			pattern, ok := exercisePatterns[exercise.ExerciseID]
			if !ok {
				continue
			}
			for _, set := range exercise.Sets {
				if estimate := Estimated1RM(set); estimate > profile[pattern] {
					profile[pattern] = estimate
				}
			}
		}
	}
	return profile
}

// ResolveAnchorAndRatio maps an exercise to its anchor lift and ratio, first
// through the specific table, then through the body-part and equipment
// fallbacks. Returns false when the exercise cannot be normalized.
func ResolveAnchorAndRatio(exerciseID int, c catalog.Catalog) (int, float64, bool) {
	if entry, ok := exerciseRatios[exerciseID]; ok {
		return entry.anchorID, entry.ratio, true
	}
	ex, ok := c.Get(exerciseID)
	if !ok {
		return 0, 0, false
	}
	anchorID, ok := bodyPartAnchors[ex.BodyPart]
	if !ok {
		return 0, 0, false
	}
	ratio, ok := equipmentRatios[ex.Equipment]
	if !ok || ratio == 0 {
		return 0, 0, false
	}
	return anchorID, ratio, true
}

// Anchors maps canonical lift ids to inferred one-rep maxes.
type Anchors map[int]float64

// SyntheticAnchors infers a one-rep max for each canonical lift from six
// months of history. Recorded maxes in the profile seed the anchors as a
// lower bound; inference only ever raises them.
func SyntheticAnchors(h history.History, c catalog.Catalog, profile history.Profile, now time.Time) Anchors {
	anchors := make(Anchors, 4)

	for _, anchorID := range AnchorLifts() {
		if recorded, ok := profile.RecordedMaxes[anchorID]; ok && recorded.WeightKg > 0 {
			anchors[anchorID] = recorded.WeightKg
		}
	}

	earliest := now.AddDate(0, -profileLookbackMonths, 0)
	for _, session := range h {
		if session.CompletedAt.After(now) || session.CompletedAt.Before(earliest) {
			continue
		}
		for _, exercise := range session.Exercises {
			anchorID, ratio, ok := ResolveAnchorAndRatio(exercise.ExerciseID, c)
			if !ok || ratio == 0 {
				continue
			}
			for _, set := range exercise.Sets {
				estimate := Estimated1RM(set)
				if estimate == 0 {
					continue
				}
				implied := estimate / ratio
				if implied > anchors[anchorID] {
					anchors[anchorID] = implied
				}
			}
		}
	}
	return anchors
}

// Inferred is an inferred max for a non-anchor exercise, with the anchor it
// was derived from.
type Inferred struct {
	WeightKg float64
	AnchorID int
	Ratio    float64
}

// InferredMax projects an anchor onto a specific exercise through its ratio.
// Returns false when the exercise does not resolve or its anchor is unknown.
func InferredMax(exerciseID int, anchors Anchors, c catalog.Catalog) (Inferred, bool) {
	anchorID, ratio, ok := ResolveAnchorAndRatio(exerciseID, c)
	if !ok {
		return Inferred{}, false
	}
	anchorMax, ok := anchors[anchorID]
	if !ok || anchorMax == 0 {
		return Inferred{}, false
	}
	return Inferred{
		WeightKg: anchorMax * ratio,
		AnchorID: anchorID,
		Ratio:    ratio,
	}, true
}
