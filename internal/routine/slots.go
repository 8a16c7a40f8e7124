package routine

import "github.com/ironcoach/ironcoach/internal/catalog"

// Predicate is a biomechanical filter over catalog exercises.
type Predicate func(catalog.Exercise) bool

// slot is one position in a routine template. The predicate selects
// candidate exercises and defaults name the fallback per modality.
type slot struct {
	id        string
	predicate Predicate
	defaults  map[Modality]int
}

func hasPrimary(ex catalog.Exercise, muscle catalog.MuscleGroup) bool {
	for _, m := range ex.PrimaryMuscles {
		if m == muscle {
			return true
		}
	}
	return false
}

func hasSecondary(ex catalog.Exercise, muscle catalog.MuscleGroup) bool {
	for _, m := range ex.SecondaryMuscles {
		if m == muscle {
			return true
		}
	}
	return false
}

// slots defines every template slot once. Predicates approximate the
// movement the slot wants; defaults keep the routine sensible when the user
// has no history behind a slot.
var slots = map[string]slot{
	"chest-compound": {
		id: "chest-compound",
		predicate: func(ex catalog.Exercise) bool {
			return hasPrimary(ex, catalog.Chest) && hasSecondary(ex, catalog.Triceps) && !ex.Plyometric
		},
		defaults: map[Modality]int{
			ModalityGym:        catalog.ExerciseBenchPress,
			ModalityHome:       catalog.ExerciseDumbbellBench,
			ModalityBodyweight: catalog.ExercisePushUp,
		},
	},
	"chest-isolation": {
		id: "chest-isolation",
		predicate: func(ex catalog.Exercise) bool {
			return hasPrimary(ex, catalog.Chest) && !hasSecondary(ex, catalog.Triceps)
		},
		defaults: map[Modality]int{
			ModalityGym: catalog.ExerciseCableFly,
		},
	},
	"shoulder-press": {
		id: "shoulder-press",
		predicate: func(ex catalog.Exercise) bool {
			return ex.BodyPart == catalog.BodyPartShoulders && hasSecondary(ex, catalog.Triceps)
		},
		defaults: map[Modality]int{
			ModalityGym:  catalog.ExerciseOverheadPress,
			ModalityHome: catalog.ExerciseDumbbellShoulder,
		},
	},
	"shoulder-isolation": {
		id: "shoulder-isolation",
		predicate: func(ex catalog.Exercise) bool {
			return hasPrimary(ex, catalog.Shoulders) && !hasSecondary(ex, catalog.Triceps)
		},
		defaults: map[Modality]int{
			ModalityGym:  catalog.ExerciseLateralRaise,
			ModalityHome: catalog.ExerciseLateralRaise,
		},
	},
	"triceps": {
		id: "triceps",
		predicate: func(ex catalog.Exercise) bool {
			return hasPrimary(ex, catalog.Triceps)
		},
		defaults: map[Modality]int{
			ModalityGym:        catalog.ExerciseTricepsPushdown,
			ModalityHome:       catalog.ExerciseDip,
			ModalityBodyweight: catalog.ExerciseDip,
		},
	},
	"biceps": {
		id: "biceps",
		predicate: func(ex catalog.Exercise) bool {
			return hasPrimary(ex, catalog.Biceps)
		},
		defaults: map[Modality]int{
			ModalityGym:  catalog.ExerciseBicepsCurl,
			ModalityHome: catalog.ExerciseBicepsCurl,
		},
	},
	"back-horizontal": {
		id: "back-horizontal",
		predicate: func(ex catalog.Exercise) bool {
			return ex.BodyPart == catalog.BodyPartBack &&
				hasPrimary(ex, catalog.UpperBack) && hasSecondary(ex, catalog.Biceps)
		},
		defaults: map[Modality]int{
			ModalityGym:  catalog.ExerciseBarbellRow,
			ModalityHome: catalog.ExerciseDumbbellRow,
		},
	},
	"back-vertical": {
		id: "back-vertical",
		predicate: func(ex catalog.Exercise) bool {
			return hasPrimary(ex, catalog.Lats) && !hasPrimary(ex, catalog.UpperBack)
		},
		defaults: map[Modality]int{
			ModalityGym:        catalog.ExerciseLatPulldown,
			ModalityHome:       catalog.ExercisePullUp,
			ModalityBodyweight: catalog.ExercisePullUp,
		},
	},
	"rear-delt": {
		id: "rear-delt",
		predicate: func(ex catalog.Exercise) bool {
			return hasPrimary(ex, catalog.UpperBack) && hasPrimary(ex, catalog.Shoulders)
		},
		defaults: map[Modality]int{
			ModalityGym: catalog.ExerciseFacePull,
		},
	},
	"squat-pattern": {
		id: "squat-pattern",
		predicate: func(ex catalog.Exercise) bool {
			return hasPrimary(ex, catalog.Quads) && hasPrimary(ex, catalog.Glutes) && !ex.Plyometric
		},
		defaults: map[Modality]int{
			ModalityGym:        catalog.ExerciseBarbellSquat,
			ModalityHome:       catalog.ExerciseGobletSquat,
			ModalityBodyweight: catalog.ExerciseJumpSquat,
		},
	},
	"hinge-pattern": {
		id: "hinge-pattern",
		predicate: func(ex catalog.Exercise) bool {
			return (hasPrimary(ex, catalog.Hamstrings) || hasPrimary(ex, catalog.Glutes)) &&
				!hasPrimary(ex, catalog.Quads)
		},
		defaults: map[Modality]int{
			ModalityGym:        catalog.ExerciseRomanianDeadlift,
			ModalityHome:       catalog.ExerciseKettlebellSwing,
			ModalityBodyweight: catalog.ExerciseGluteBridge,
		},
	},
	"quad-isolation": {
		id: "quad-isolation",
		predicate: func(ex catalog.Exercise) bool {
			return hasPrimary(ex, catalog.Quads) && !hasPrimary(ex, catalog.Glutes) && !ex.Plyometric
		},
		defaults: map[Modality]int{
			ModalityGym: catalog.ExerciseLegExtension,
		},
	},
	"hamstring-isolation": {
		id: "hamstring-isolation",
		predicate: func(ex catalog.Exercise) bool {
			return hasPrimary(ex, catalog.Hamstrings) && len(ex.PrimaryMuscles) == 1
		},
		defaults: map[Modality]int{
			ModalityGym: catalog.ExerciseLegCurl,
		},
	},
	"glute": {
		id: "glute",
		predicate: func(ex catalog.Exercise) bool {
			return hasPrimary(ex, catalog.Glutes) && !hasPrimary(ex, catalog.Quads) &&
				!hasPrimary(ex, catalog.Hamstrings)
		},
		defaults: map[Modality]int{
			ModalityGym:        catalog.ExerciseHipThrust,
			ModalityHome:       catalog.ExerciseGluteBridge,
			ModalityBodyweight: catalog.ExerciseGluteBridge,
		},
	},
	"calves": {
		id: "calves",
		predicate: func(ex catalog.Exercise) bool {
			return hasPrimary(ex, catalog.Calves)
		},
		defaults: map[Modality]int{
			ModalityGym: catalog.ExerciseCalfRaise,
		},
	},
	"core": {
		id: "core",
		predicate: func(ex catalog.Exercise) bool {
			return ex.BodyPart == catalog.BodyPartCore && !ex.Plyometric
		},
		defaults: map[Modality]int{
			ModalityGym:        catalog.ExercisePlank,
			ModalityHome:       catalog.ExercisePlank,
			ModalityBodyweight: catalog.ExercisePlank,
		},
	},
}

// focusTemplates orders the slots per training focus.
var focusTemplates = map[Focus][]string{
	FocusPush:     {"chest-compound", "shoulder-press", "chest-isolation", "shoulder-isolation", "triceps"},
	FocusPull:     {"back-horizontal", "back-vertical", "rear-delt", "biceps"},
	FocusLegs:     {"squat-pattern", "hinge-pattern", "quad-isolation", "hamstring-isolation", "calves"},
	FocusUpper:    {"chest-compound", "back-horizontal", "shoulder-press", "back-vertical", "triceps", "biceps"},
	FocusLower:    {"squat-pattern", "hinge-pattern", "glute", "calves"},
	FocusFullBody: {"squat-pattern", "chest-compound", "back-horizontal", "shoulder-press", "core"},
}

// safetySwaps replaces technically demanding lifts for beginners.
var safetySwaps = map[int]int{
	catalog.ExerciseBarbellSquat:  catalog.ExerciseGobletSquat,
	catalog.ExerciseDeadlift:      catalog.ExerciseRomanianDeadlift,
	catalog.ExerciseBarbellRow:    catalog.ExerciseDumbbellRow,
	catalog.ExerciseOverheadPress: catalog.ExerciseDumbbellShoulder,
	catalog.ExercisePullUp:        catalog.ExerciseLatPulldown,
}
