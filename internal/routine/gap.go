package routine

import (
	"log/slog"
	"math"

	"github.com/ironcoach/ironcoach/internal/catalog"
	"github.com/ironcoach/ironcoach/internal/errors"
	"github.com/ironcoach/ironcoach/internal/fatigue"
	"github.com/ironcoach/ironcoach/internal/history"
)

// Zone is the readiness tier driving gap-session content.
type Zone string

// Readiness zones.
const (
	ZoneCritical Zone = "critical"
	ZoneCaution  Zone = "caution"
	ZoneGo       Zone = "go"
)

// ErrUnusableSettings signals a gap-session request whose settings cannot
// yield any exercise pool, e.g. an unknown equipment modality.
var ErrUnusableSettings = errors.NewSentinel("no usable equipment/experience combination")

// readinessGroups weights the muscle groups in the systemic readiness score.
var readinessGroups = []struct {
	muscles []catalog.MuscleGroup
	weight  float64
}{
	{[]catalog.MuscleGroup{catalog.Quads, catalog.Hamstrings, catalog.Glutes, catalog.Calves}, 0.4},
	{[]catalog.MuscleGroup{catalog.Lats, catalog.UpperBack, catalog.LowerBack}, 0.3},
	{[]catalog.MuscleGroup{catalog.Chest, catalog.Shoulders, catalog.Triceps}, 0.3},
}

type zoneThresholds struct {
	critical float64
	caution  float64
}

// Beginners get conservative thresholds: they tip into the lower zones at
// higher freshness than experienced lifters.
var experienceThresholds = map[history.Experience]zoneThresholds{
	history.ExperienceBeginner:     {critical: 45, caution: 65},
	history.ExperienceIntermediate: {critical: 35, caution: 55},
	history.ExperienceAdvanced:     {critical: 30, caution: 50},
}

var zoneVolume = map[Zone]float64{
	ZoneCritical: 0.5,
	ZoneCaution:  0.75,
	ZoneGo:       1.0,
}

var timeVolume = map[TimePreference]float64{
	TimeShort:    0.7,
	TimeStandard: 1.0,
	TimeLong:     1.3,
}

// Readiness computes the weighted systemic readiness score from freshness.
func Readiness(freshness fatigue.FreshnessMap) float64 {
	var score float64
	for _, group := range readinessGroups {
		var total float64
		for _, muscle := range group.muscles {
			total += freshness.Get(muscle)
		}
		score += total / float64(len(group.muscles)) * group.weight
	}
	return score
}

// ReadinessZone buckets a readiness score by experience level.
func ReadinessZone(readiness float64, experience history.Experience) Zone {
	thresholds := experienceThresholds[experience.OrDefault()]
	switch {
	case readiness < thresholds.critical:
		return ZoneCritical
	case readiness < thresholds.caution:
		return ZoneCaution
	default:
		return ZoneGo
	}
}

// GenerateGapSession builds a low-risk recovery session scaled to the user's
// readiness. Protected muscles are reserved for an upcoming workout and
// never loaded. The session is guaranteed non-empty: if filtering leaves
// nothing, any mobility exercise qualifies regardless of fatigue.
func (g *Generator) GenerateGapSession(
	protected []catalog.MuscleGroup,
	settings Settings,
	freshness fatigue.FreshnessMap,
) (Routine, error) {
	switch settings.Modality {
	case ModalityGym, ModalityHome, ModalityBodyweight:
	default:
		return Routine{}, errors.Wrap(ErrUnusableSettings, "generate gap session",
			slog.String("modality", string(settings.Modality)))
	}

	experience := settings.Experience.OrDefault()
	zone := ReadinessZone(Readiness(freshness), experience)
	thresholds := experienceThresholds[experience]

	protectedSet := make(map[catalog.MuscleGroup]bool, len(protected))
	for _, muscle := range protected {
		protectedSet[muscle] = true
	}

	pool := g.gapPool(zone, settings.Modality, freshness, thresholds.critical, protectedSet)
	volume := zoneVolume[zone] * timeVolume[timeOrStandard(settings.Time)]

	routine := Routine{
		Name:        "routine_name_gap",
		Description: "routine_desc_gap",
		IsTemplate:  true,
	}

	if settings.Goal.OrDefault() == history.GoalEndurance && zone != ZoneCritical {
		routine.Exercises = g.conditioningTemplate(pool, volume)
	} else {
		routine.Exercises = g.recoveryTemplate(pool, zone, volume)
	}

	if len(routine.Exercises) == 0 {
		routine.Exercises = g.mobilityFallback(volume)
	}
	return routine, nil
}

func timeOrStandard(t TimePreference) TimePreference {
	switch t {
	case TimeShort, TimeLong:
		return t
	default:
		return TimeStandard
	}
}

// gapPool filters the catalog down to what the zone allows.
func (g *Generator) gapPool(
	zone Zone,
	modality Modality,
	freshness fatigue.FreshnessMap,
	critical float64,
	protected map[catalog.MuscleGroup]bool,
) []catalog.Exercise {
	var pool []catalog.Exercise
	for _, ex := range g.catalog.All() {
		if !modalityAllows(modality, ex.Equipment) {
			continue
		}
		if muscleBlocked(ex, freshness, critical, protected) {
			continue
		}
		switch zone {
		case ZoneCritical:
			if ex.BodyPart != catalog.BodyPartMobility &&
				!(ex.BodyPart == catalog.BodyPartCore && !ex.Plyometric) {
				continue
			}
		case ZoneCaution:
			if ex.Plyometric {
				continue
			}
			if ex.Equipment == catalog.EquipmentBarbell &&
				(ex.BodyPart == catalog.BodyPartLegs || ex.BodyPart == catalog.BodyPartBack) {
				continue
			}
		case ZoneGo:
		}
		pool = append(pool, ex)
	}
	return pool
}

func muscleBlocked(
	ex catalog.Exercise,
	freshness fatigue.FreshnessMap,
	critical float64,
	protected map[catalog.MuscleGroup]bool,
) bool {
	for _, muscle := range ex.PrimaryMuscles {
		if protected[muscle] || freshness.Get(muscle) < critical {
			return true
		}
	}
	return false
}

// recoveryTemplate is the default gap shape: mobility opener, core work, a
// little isolation, mobility closer.
func (g *Generator) recoveryTemplate(pool []catalog.Exercise, zone Zone, volume float64) []history.WorkoutExercise {
	mobility := filterPool(pool, func(ex catalog.Exercise) bool {
		return ex.BodyPart == catalog.BodyPartMobility
	})
	core := filterPool(pool, func(ex catalog.Exercise) bool {
		return ex.BodyPart == catalog.BodyPartCore
	})
	isolation := filterPool(pool, func(ex catalog.Exercise) bool {
		return ex.BodyPart != catalog.BodyPartMobility && ex.BodyPart != catalog.BodyPartCore &&
			len(ex.PrimaryMuscles) == 1
	})

	g.shufflePool(mobility)
	g.shufflePool(core)
	g.shufflePool(isolation)

	isolationCount := 1
	if zone == ZoneGo {
		isolationCount = 2
	}

	var picked []catalog.Exercise
	picked = appendSome(picked, mobility, 1)
	picked = appendSome(picked, core, 1)
	picked = appendSome(picked, isolation, isolationCount)
	// Closer: a second mobility movement when one is available.
	picked = appendSome(picked, mobility, 1)

	return g.prescribeGap(picked, volume)
}

// conditioningTemplate shapes an endurance-goal gap session as short rounds.
func (g *Generator) conditioningTemplate(pool []catalog.Exercise, volume float64) []history.WorkoutExercise {
	conditioning := filterPool(pool, func(ex catalog.Exercise) bool {
		return ex.Plyometric || ex.BodyPart == catalog.BodyPartFullBody ||
			ex.BodyPart == catalog.BodyPartCore
	})
	g.shufflePool(conditioning)

	var picked []catalog.Exercise
	picked = appendSome(picked, conditioning, 4)

	rounds := scaledSets(3, volume)
	var exercises []history.WorkoutExercise
	for _, ex := range picked {
		exercise := history.WorkoutExercise{ExerciseID: ex.ID}
		for range rounds {
			exercise.Sets = append(exercise.Sets, history.PerformedSet{
				Kind:              history.SetNormal,
				HoldSeconds:       30,
				TargetRestSeconds: 30,
			})
		}
		exercises = append(exercises, exercise)
	}
	return exercises
}

// mobilityFallback guarantees a non-empty session.
func (g *Generator) mobilityFallback(volume float64) []history.WorkoutExercise {
	mobility := filterPool(g.catalog.All(), func(ex catalog.Exercise) bool {
		return ex.BodyPart == catalog.BodyPartMobility
	})
	if len(mobility) == 0 {
		return nil
	}
	g.shufflePool(mobility)
	return g.prescribeGap(mobility[:1], volume)
}

func (g *Generator) prescribeGap(picked []catalog.Exercise, volume float64) []history.WorkoutExercise {
	sets := scaledSets(2, volume)
	var exercises []history.WorkoutExercise
	for _, ex := range picked {
		exercise := history.WorkoutExercise{ExerciseID: ex.ID}
		for range sets {
			set := history.PerformedSet{
				Kind:              history.SetNormal,
				TargetRestSeconds: 45,
			}
			if ex.Isometric || ex.BodyPart == catalog.BodyPartMobility {
				set.HoldSeconds = isometricHoldSeconds
			} else {
				set.Reps = 12
			}
			exercise.Sets = append(exercise.Sets, set)
		}
		exercises = append(exercises, exercise)
	}
	return exercises
}

func scaledSets(base int, volume float64) int {
	sets := int(math.Round(float64(base) * volume))
	if sets < 1 {
		return 1
	}
	return sets
}

func filterPool(pool []catalog.Exercise, keep func(catalog.Exercise) bool) []catalog.Exercise {
	var out []catalog.Exercise
	for _, ex := range pool {
		if keep(ex) {
			out = append(out, ex)
		}
	}
	return out
}

func (g *Generator) shufflePool(pool []catalog.Exercise) {
	g.shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})
}

// appendSome takes up to count exercises from candidates that are not
// already picked.
func appendSome(picked, candidates []catalog.Exercise, count int) []catalog.Exercise {
	taken := 0
	for _, candidate := range candidates {
		if taken == count {
			break
		}
		duplicate := false
		for _, existing := range picked {
			if existing.ID == candidate.ID {
				duplicate = true
				break
			}
		}
		if duplicate {
			continue
		}
		picked = append(picked, candidate)
		taken++
	}
	return picked
}
