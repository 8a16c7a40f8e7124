// Package fatigue estimates per-muscle freshness and whole-body fatigue from
// workout history. Everything is recomputed from history and the current time
// on every call; there is no cached state to invalidate.
package fatigue

import (
	"math"
	"time"

	"github.com/ironcoach/ironcoach/internal/catalog"
	"github.com/ironcoach/ironcoach/internal/history"
)

const (
	// freshnessLookback bounds the sessions that can still contribute
	// fatigue. No recovery window exceeds 6 days.
	freshnessLookback = 6 * 24 * time.Hour

	defaultRecoveryHours = 72.0

	lowRepMultiplier   = 1.65
	highRepMultiplier  = 0.8
	failureBonus       = 0.3
	dropBonus          = 0.1
	warmupStress       = 0.5
	lowRepCeiling      = 6
	highRepFloor       = 12
	capacityStrength   = 10.0
	capacityMuscle     = 15.0
	capacityEndurance  = 20.0
	secondaryStressCut = 0.5

	systemicLookbackDays = 14
	systemicDecayDays    = 10.0
	sessionBaseCost      = 5.0
	compoundSetWeight    = 2.0
	systemicCostScale    = 150.0
	levelHighThreshold   = 60
	levelMediumThreshold = 30

	burnoutScoreThreshold = 70
	burnoutProjectDivisor = 5.0

	adaptiveMinSessions  = 2
	adaptiveWindow       = 5
	adaptiveMinMultiplier = 0.8
	adaptiveMaxMultiplier = 1.2
)

// recoveryWindows maps each muscle to its recovery window in hours. Muscles
// absent from the table recover in the default 72 hours.
var recoveryWindows = map[catalog.MuscleGroup]float64{
	catalog.Quads:      96,
	catalog.Hamstrings: 96,
	catalog.LowerBack:  96,
	catalog.Glutes:     72,
	catalog.Chest:      72,
	catalog.Lats:       72,
	catalog.UpperBack:  72,
	catalog.Shoulders:  48,
	catalog.Traps:      48,
	catalog.Biceps:     48,
	catalog.Triceps:    48,
	catalog.Forearms:   24,
	catalog.Calves:     24,
	catalog.Abs:        24,
	catalog.Obliques:   24,
	catalog.HipFlexors: 24,
}

// RecoveryWindowHours returns the recovery window for a muscle.
func RecoveryWindowHours(muscle catalog.MuscleGroup) float64 {
	if hours, ok := recoveryWindows[muscle]; ok {
		return hours
	}
	return defaultRecoveryHours
}

// Level classifies the systemic fatigue score.
type Level string

// Systemic fatigue levels.
const (
	LevelLow    Level = "Low"
	LevelMedium Level = "Medium"
	LevelHigh   Level = "High"
)

// Systemic is a whole-body fatigue snapshot.
type Systemic struct {
	Score int   `json:"score"`
	Level Level `json:"level"`
}

// Trend describes the direction of recent training load.
type Trend string

// Burnout trends.
const (
	TrendAccumulating Trend = "accumulating"
	TrendRecovering   Trend = "recovering"
	TrendStable       Trend = "stable"
)

// Burnout compares recent training frequency against the prior week.
// DaysToBurnout is zero unless load is accumulating at a high fatigue score.
type Burnout struct {
	Trend         Trend `json:"trend"`
	DaysToBurnout int   `json:"days_to_burnout,omitempty"`
}

// FreshnessMap maps muscles to a 0-100 freshness score. A muscle absent from
// the map has no contributing history and is treated as fully fresh.
type FreshnessMap map[catalog.MuscleGroup]float64

// Get returns the freshness for a muscle, 100 when untracked.
func (m FreshnessMap) Get(muscle catalog.MuscleGroup) float64 {
	if freshness, ok := m[muscle]; ok {
		return freshness
	}
	return 100
}

// Average returns the mean freshness over tracked muscles, 100 when empty.
func (m FreshnessMap) Average() float64 {
	if len(m) == 0 {
		return 100
	}
	var total float64
	for _, freshness := range m {
		total += freshness
	}
	return total / float64(len(m))
}

func capacityBaseline(goal history.Goal) float64 {
	switch goal {
	case history.GoalStrength:
		return capacityStrength
	case history.GoalEndurance:
		return capacityEndurance
	case history.GoalMuscle:
		return capacityMuscle
	default:
		return capacityMuscle
	}
}

// setStress converts one completed set into stress units.
func setStress(set history.PerformedSet) float64 {
	if !set.Completed {
		return 0
	}
	if set.Kind == history.SetWarmup {
		return warmupStress
	}
	stress := 1.0
	if set.Reps <= lowRepCeiling {
		stress *= lowRepMultiplier
	} else if set.Reps > highRepFloor {
		stress *= highRepMultiplier
	}
	switch set.Kind {
	case history.SetFailure:
		stress += failureBonus
	case history.SetDrop:
		stress += dropBonus
	case history.SetNormal, history.SetWarmup:
	}
	return stress
}

// Freshness computes the per-muscle freshness map from history. Unknown
// exercise ids contribute nothing. Muscles with no qualifying history are
// absent from the returned map.
func Freshness(
	h history.History,
	c catalog.Catalog,
	goal history.Goal,
	profile history.Profile,
	now time.Time,
) FreshnessMap {
	capacity := capacityBaseline(goal)
	recent := h.SessionsSince(now.Add(-freshnessLookback))

	adaptive := 1.0
	if profile.AdaptiveEfficiency && len(h) >= adaptiveMinSessions {
		adaptive = adaptiveMultiplier(h)
	}

	fatiguePoints := make(map[catalog.MuscleGroup]float64)
	for _, session := range recent {
		hoursSince := now.Sub(session.CompletedAt).Hours()
		if hoursSince < 0 {
			hoursSince = 0
		}
		for _, exercise := range session.Exercises {
			ex, ok := c.Get(exercise.ExerciseID)
			if !ok {
				continue
			}
			var stress float64
			for _, set := range exercise.Sets {
				stress += setStress(set)
			}
			stress *= adaptive
			if stress == 0 {
				continue
			}
			addMuscleFatigue(fatiguePoints, ex.PrimaryMuscles, stress, capacity, hoursSince)
			addMuscleFatigue(fatiguePoints, ex.SecondaryMuscles, stress*secondaryStressCut, capacity, hoursSince)
		}
	}

	freshness := make(FreshnessMap, len(fatiguePoints))
	for muscle, points := range fatiguePoints {
		freshness[muscle] = math.Round(math.Max(0, 100-points))
	}
	return freshness
}

func addMuscleFatigue(
	points map[catalog.MuscleGroup]float64,
	muscles []catalog.MuscleGroup,
	stress, capacity, hoursSince float64,
) {
	for _, muscle := range muscles {
		window := RecoveryWindowHours(muscle)
		if hoursSince >= window {
			continue
		}
		timeFactor := 1 - hoursSince/window
		points[muscle] += stress / capacity * 100 * timeFactor
	}
}

// sessionVolume is the total completed weight moved in a session.
func sessionVolume(session history.Session) float64 {
	var volume float64
	for _, exercise := range session.Exercises {
		for _, set := range exercise.Sets {
			if set.Completed {
				volume += set.WeightKg * float64(set.Reps)
			}
		}
	}
	return volume
}

func sessionDensity(session history.Session) float64 {
	minutes := session.DurationMinutes()
	if minutes == 0 {
		return 0
	}
	return sessionVolume(session) / minutes
}

// DensityRatio compares the most recent session's load-per-minute against the
// trailing five-session average. Returns 1 when there is not enough data or a
// denominator would be zero.
func DensityRatio(h history.History) float64 {
	if len(h) < adaptiveMinSessions {
		return 1
	}
	recent := sessionDensity(h[0])
	prior := h[1:]
	if len(prior) > adaptiveWindow {
		prior = prior[:adaptiveWindow]
	}
	var total float64
	for _, session := range prior {
		total += sessionDensity(session)
	}
	average := total / float64(len(prior))
	if average == 0 || recent == 0 {
		return 1
	}
	return recent / average
}

// adaptiveMultiplier scales stress by recent efficiency. A user moving more
// load per minute than their average accumulates less effective fatigue.
func adaptiveMultiplier(h history.History) float64 {
	ratio := DensityRatio(h)
	if ratio == 0 {
		return 1
	}
	multiplier := 1 / ratio
	if multiplier < adaptiveMinMultiplier {
		return adaptiveMinMultiplier
	}
	if multiplier > adaptiveMaxMultiplier {
		return adaptiveMaxMultiplier
	}
	return multiplier
}

// isCompound reports whether a barbell or dumbbell movement hits a large
// body region, which makes its sets cost double in the systemic model.
func isCompound(ex catalog.Exercise) bool {
	if ex.Equipment != catalog.EquipmentBarbell && ex.Equipment != catalog.EquipmentDumbbell {
		return false
	}
	switch ex.BodyPart {
	case catalog.BodyPartLegs, catalog.BodyPartBack, catalog.BodyPartChest:
		return true
	default:
		return false
	}
}

// SystemicFatigue aggregates two weeks of session cost with linear day decay.
func SystemicFatigue(h history.History, c catalog.Catalog, now time.Time) Systemic {
	recent := h.SessionsSince(now.AddDate(0, 0, -systemicLookbackDays))

	var totalCost float64
	for _, session := range recent {
		daysAgo := now.Sub(session.CompletedAt).Hours() / 24
		if daysAgo < 0 {
			daysAgo = 0
		}
		decay := 1 - daysAgo/systemicDecayDays
		if decay <= 0 {
			continue
		}
		var completedSets, compoundSets float64
		for _, exercise := range session.Exercises {
			ex, known := c.Get(exercise.ExerciseID)
			for _, set := range exercise.Sets {
				if !set.Completed {
					continue
				}
				completedSets++
				if known && isCompound(ex) {
					compoundSets++
				}
			}
		}
		totalCost += (sessionBaseCost + completedSets + compoundSetWeight*compoundSets) * decay
	}

	score := int(math.Round(totalCost / systemicCostScale * 100))
	if score > 100 {
		score = 100
	}
	level := LevelLow
	if score > levelHighThreshold {
		level = LevelHigh
	} else if score > levelMediumThreshold {
		level = LevelMedium
	}
	return Systemic{Score: score, Level: level}
}

// BurnoutAnalysis compares the last week's session count against the week
// before and projects days to burnout when load is piling up at a high
// fatigue score.
func BurnoutAnalysis(h history.History, c catalog.Catalog, now time.Time) Burnout {
	weekAgo := now.AddDate(0, 0, -7)
	twoWeeksAgo := now.AddDate(0, 0, -14)

	var recentCount, priorCount int
	for _, session := range h {
		switch {
		case !session.CompletedAt.Before(weekAgo):
			recentCount++
		case !session.CompletedAt.Before(twoWeeksAgo):
			priorCount++
		default:
			return burnoutFromCounts(recentCount, priorCount, h, c, now)
		}
	}
	return burnoutFromCounts(recentCount, priorCount, h, c, now)
}

func burnoutFromCounts(recentCount, priorCount int, h history.History, c catalog.Catalog, now time.Time) Burnout {
	trend := TrendStable
	switch {
	case recentCount > priorCount+1:
		trend = TrendAccumulating
	case recentCount < priorCount:
		trend = TrendRecovering
	}

	burnout := Burnout{Trend: trend}
	if trend == TrendAccumulating {
		if systemic := SystemicFatigue(h, c, now); systemic.Score > burnoutScoreThreshold {
			days := int(math.Round(float64(100-systemic.Score) / burnoutProjectDivisor))
			if days < 1 {
				days = 1
			}
			burnout.DaysToBurnout = days
		}
	}
	return burnout
}
