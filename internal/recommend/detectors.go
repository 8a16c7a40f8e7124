package recommend

import (
	"math"
	"sort"
	"strconv"
	"time"

	"github.com/ironcoach/ironcoach/internal/catalog"
	"github.com/ironcoach/ironcoach/internal/fatigue"
	"github.com/ironcoach/ironcoach/internal/history"
	"github.com/ironcoach/ironcoach/internal/routine"
	"github.com/ironcoach/ironcoach/internal/strength"
)

const (
	densityDropThreshold = 0.8

	stallTopExercises = 10
	stallMinSessions  = 3

	promotionStreak       = 3
	promotionRecentWindow = 5

	imbalanceStaticThreshold = 0.25
	imbalanceTrendThreshold  = 0.05
	imbalanceTrendLookback   = 30 * 24 * time.Hour

	slowRestSeconds   = 300
	slowSetsThreshold = 3

	onboardingSessionLimit = 15

	recoveryAvgThreshold  = 60
	recoveryPeakThreshold = 80
	recoveryProtectBelow  = 50

	readinessFreshness         = 80.0
	readinessFreshnessAdaptive = 70.0
	readinessRestDays          = 2.0
	highEfficiencyRatio        = 1.1
	routineOverlapThreshold    = 0.5

	goalMismatchMinSessions = 3
	goalMismatchWindow      = 5
)

// muscleBuckets groups muscles for readiness scoring, in evaluation order.
var muscleBuckets = []struct {
	name    string
	focus   routine.Focus
	muscles []catalog.MuscleGroup
}{
	{"push", routine.FocusPush, []catalog.MuscleGroup{catalog.Chest, catalog.Shoulders, catalog.Triceps}},
	{"pull", routine.FocusPull, []catalog.MuscleGroup{catalog.Lats, catalog.UpperBack, catalog.Biceps, catalog.Traps}},
	{"legs", routine.FocusLegs, []catalog.MuscleGroup{catalog.Quads, catalog.Hamstrings, catalog.Glutes, catalog.Calves}},
	{"full_body", routine.FocusFullBody, []catalog.MuscleGroup{catalog.Abs, catalog.Obliques, catalog.LowerBack}},
}

var legMuscles = []catalog.MuscleGroup{catalog.Quads, catalog.Hamstrings, catalog.Glutes, catalog.Calves}

type promotionPath struct {
	toID        int
	minWeightKg float64
}

// promotionPaths maps an easier variant to its upgrade and the top working
// weight that signals readiness.
var promotionPaths = map[int]promotionPath{
	catalog.ExerciseGobletSquat:      {catalog.ExerciseBarbellSquat, 30},
	catalog.ExerciseDumbbellBench:    {catalog.ExerciseBenchPress, 30},
	catalog.ExerciseDumbbellShoulder: {catalog.ExerciseOverheadPress, 25},
	catalog.ExerciseLatPulldown:      {catalog.ExercisePullUp, 60},
	catalog.ExerciseRomanianDeadlift: {catalog.ExerciseDeadlift, 80},
}

type imbalancePair struct {
	liftA    int
	liftB    int
	expected float64
}

// imbalancePairs lists the anchor ratios worth flagging: A is expected at
// roughly expected x B.
var imbalancePairs = []imbalancePair{
	{strength.AnchorSquat, strength.AnchorDeadlift, 0.85},
	{strength.AnchorOverhead, strength.AnchorBench, 0.65},
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// topWorkingWeight is the heaviest completed non-warmup set of an exercise.
func topWorkingWeight(exercise history.WorkoutExercise) float64 {
	var top float64
	for _, set := range exercise.Sets {
		if !set.Completed || set.Kind == history.SetWarmup {
			continue
		}
		if set.WeightKg > top {
			top = set.WeightKg
		}
	}
	return top
}

// trainedToday short-circuits the cascade after a completed workout: either
// celebrate a technical PR or point at recovery work.
func (e *Engine) trainedToday(in Input, _ fatigue.FreshnessMap, _ fatigue.Systemic) (Recommendation, bool) {
	if len(in.History) == 0 {
		return Recommendation{}, false
	}
	latest := in.History[0]
	if !sameDay(latest.CompletedAt.In(in.Now.Location()), in.Now) {
		return Recommendation{}, false
	}

	if rec, ok := e.technicalPR(latest, in.History[1:]); ok {
		return rec, true
	}
	return newRecommendation(KindActiveRecovery, "rec_reason_trained_today", nil), true
}

// technicalPR looks for a rest-time improvement at a matched top weight in
// today's session.
func (e *Engine) technicalPR(today history.Session, earlier history.History) (Recommendation, bool) {
	for _, exercise := range today.Exercises {
		top := topWorkingWeight(exercise)
		if top == 0 {
			continue
		}
		todayRest := restAtWeight(exercise, top)
		if todayRest == 0 {
			continue
		}
		priorRest, ok := priorRestAtWeight(earlier, exercise.ExerciseID, top)
		if !ok || priorRest <= todayRest {
			continue
		}
		improvement := priorRest - todayRest
		ex, _ := e.catalog.Get(exercise.ExerciseID)
		rec := newRecommendation(KindTechnicalPR, "rec_reason_technical_pr", map[string]string{
			"exercise": ex.Name,
			"seconds":  strconv.Itoa(int(math.Round(improvement))),
		})
		rec.Payload = TechnicalPRPayload{
			ExerciseID:         exercise.ExerciseID,
			WeightKg:           top,
			ImprovementSeconds: improvement,
		}
		return rec, true
	}
	return Recommendation{}, false
}

// restAtWeight is the shortest measured rest over completed working sets at
// the given weight, 0 when no set carries rest data.
func restAtWeight(exercise history.WorkoutExercise, weight float64) float64 {
	var best float64
	for _, set := range exercise.Sets {
		if !set.Completed || set.Kind == history.SetWarmup || set.WeightKg != weight {
			continue
		}
		if set.ActualRestSeconds > 0 && (best == 0 || set.ActualRestSeconds < best) {
			best = set.ActualRestSeconds
		}
	}
	return best
}

func priorRestAtWeight(earlier history.History, exerciseID int, weight float64) (float64, bool) {
	for _, session := range earlier {
		for _, exercise := range session.Exercises {
			if exercise.ExerciseID != exerciseID {
				continue
			}
			if topWorkingWeight(exercise) != weight {
				return 0, false
			}
			rest := restAtWeight(exercise, weight)
			return rest, rest > 0
		}
	}
	return 0, false
}

// densityWarning fires when adaptive mode sees load-per-minute fall at
// least 20% under the trailing average.
func (e *Engine) densityWarning(in Input, freshness fatigue.FreshnessMap, _ fatigue.Systemic) (Recommendation, bool) {
	if !in.Profile.AdaptiveEfficiency {
		return Recommendation{}, false
	}
	ratio := fatigue.DensityRatio(in.History)
	if ratio > densityDropThreshold {
		return Recommendation{}, false
	}
	drop := int(math.Round((1 - ratio) * 100))
	rec := newRecommendation(KindDensityWarning, "rec_reason_density_warning", map[string]string{
		"percent": strconv.Itoa(drop),
	})
	rec.Payload = DensityWarningPayload{DropPercent: drop}
	if gap, err := e.generator.GenerateGapSession(legMuscles, gapSettings(in), freshness); err == nil {
		rec.Routine = &gap
	}
	return rec, true
}

// deload fires on high systemic fatigue.
func (e *Engine) deload(in Input, freshness fatigue.FreshnessMap, systemic fatigue.Systemic) (Recommendation, bool) {
	if systemic.Level != fatigue.LevelHigh {
		return Recommendation{}, false
	}
	rec := newRecommendation(KindDeload, "rec_reason_deload", map[string]string{
		"score": strconv.Itoa(systemic.Score),
	})
	rec.Systemic = &systemic
	if gap, err := e.generator.GenerateGapSession(nil, gapSettings(in), freshness); err == nil {
		rec.Routine = &gap
	}
	return rec, true
}

// stall scans the most frequent exercises for a weight ceiling that has not
// moved in three or more consecutive sessions. A previously broken and
// re-reached ceiling escalates to a pivot suggestion.
func (e *Engine) stall(in Input, _ fatigue.FreshnessMap, _ fatigue.Systemic) (Recommendation, bool) {
	for _, exerciseID := range e.frequentExercises(in.History) {
		weights := sessionTopWeights(in.History, exerciseID)
		if len(weights) < stallMinSessions {
			continue
		}
		ceiling := weights[0]
		if ceiling == 0 {
			continue
		}

		streak := 1
		for _, weight := range weights[1:] {
			if weight != ceiling {
				break
			}
			streak++
		}
		if streak < stallMinSessions {
			continue
		}

		if hadDeloadCycle(weights[streak:], ceiling) {
			return e.stallPivot(in, exerciseID, ceiling), true
		}

		ex, _ := e.catalog.Get(exerciseID)
		rec := newRecommendation(KindStall, "rec_reason_stall", map[string]string{
			"exercise": ex.Name,
			"weight":   formatFloat(ceiling),
			"unit":     "kg",
			"count":    strconv.Itoa(streak),
		})
		rec.Payload = StallPayload{
			ExerciseID:    exerciseID,
			WeightKg:      ceiling,
			SessionsCount: streak,
		}
		return rec, true
	}
	return Recommendation{}, false
}

// hadDeloadCycle reports whether, before the current streak, the weight
// dipped under the ceiling and had reached the same ceiling earlier still.
// The scan is a deliberate heuristic; two partial dips in a row read as a
// single cycle.
func hadDeloadCycle(older []float64, ceiling float64) bool {
	dipped := false
	for _, weight := range older {
		if weight < ceiling {
			dipped = true
			continue
		}
		if dipped && weight == ceiling {
			return true
		}
	}
	return false
}

// stallPivot escalates a repeated stall: strength goals trade sets for
// intensity, muscle goals pivot the rep range.
func (e *Engine) stallPivot(in Input, exerciseID int, ceiling float64) Recommendation {
	ex, _ := e.catalog.Get(exerciseID)
	params := map[string]string{
		"exercise": ex.Name,
		"weight":   formatFloat(ceiling),
		"unit":     "kg",
	}

	if in.Profile.GoalOrDefault() == history.GoalStrength {
		params["sets"] = "3"
		rec := newRecommendation(KindVolumePivot, "rec_reason_volume_pivot", params)
		rec.Payload = VolumePivotPayload{
			ExerciseID: exerciseID,
			WeightKg:   ceiling,
			FromSets:   5,
			ToSets:     3,
		}
		return rec
	}

	params["reps"] = "8"
	rec := newRecommendation(KindStall, "rec_reason_stall_pivot", params)
	rec.Payload = StallPayload{
		ExerciseID:    exerciseID,
		WeightKg:      ceiling,
		SessionsCount: stallMinSessions,
		SuggestedReps: 8,
	}
	return rec
}

// frequentExercises returns the ten most performed exercise ids, most
// frequent first, ties broken by id for determinism.
func (e *Engine) frequentExercises(h history.History) []int {
	frequency := h.ExerciseFrequency()
	ids := make([]int, 0, len(frequency))
	for id := range frequency {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		if frequency[ids[i]] != frequency[ids[j]] {
			return frequency[ids[i]] > frequency[ids[j]]
		}
		return ids[i] < ids[j]
	})
	if len(ids) > stallTopExercises {
		ids = ids[:stallTopExercises]
	}
	return ids
}

// sessionTopWeights lists the exercise's top working weight per session,
// newest first, skipping sessions without the exercise.
func sessionTopWeights(h history.History, exerciseID int) []float64 {
	var weights []float64
	for _, session := range h {
		for _, exercise := range session.Exercises {
			if exercise.ExerciseID != exerciseID {
				continue
			}
			if top := topWorkingWeight(exercise); top > 0 {
				weights = append(weights, top)
			}
			break
		}
	}
	return weights
}

// promotion suggests an upgrade once a variant's criteria held for three
// consecutive appearances and the target is not already in rotation.
func (e *Engine) promotion(in Input, _ fatigue.FreshnessMap, _ fatigue.Systemic) (Recommendation, bool) {
	recentIDs := make(map[int]bool)
	for i, session := range in.History {
		if i == promotionRecentWindow {
			break
		}
		for _, exercise := range session.Exercises {
			recentIDs[exercise.ExerciseID] = true
		}
	}

	for _, fromID := range e.frequentExercises(in.History) {
		path, ok := promotionPaths[fromID]
		if !ok || recentIDs[path.toID] {
			continue
		}
		weights := sessionTopWeights(in.History, fromID)
		if len(weights) < promotionStreak {
			continue
		}
		qualified := true
		for _, weight := range weights[:promotionStreak] {
			if weight < path.minWeightKg {
				qualified = false
				break
			}
		}
		if !qualified {
			continue
		}

		from, _ := e.catalog.Get(fromID)
		to, _ := e.catalog.Get(path.toID)
		rec := newRecommendation(KindPromotion, "rec_reason_promotion", map[string]string{
			"from":  from.Name,
			"to":    to.Name,
			"count": strconv.Itoa(promotionStreak),
		})
		rec.Payload = PromotionPayload{
			FromExerciseID: fromID,
			ToExerciseID:   path.toID,
			Streak:         promotionStreak,
		}
		return rec, true
	}
	return Recommendation{}, false
}

// imbalance flags an anchor ratio outside its expected band when the
// deviation also worsened against a month-old snapshot.
func (e *Engine) imbalance(in Input, _ fatigue.FreshnessMap, _ fatigue.Systemic) (Recommendation, bool) {
	current := strength.SyntheticAnchors(in.History, e.catalog, in.Profile, in.Now)
	past := strength.SyntheticAnchors(in.History, e.catalog, in.Profile, in.Now.Add(-imbalanceTrendLookback))

	for _, pair := range imbalancePairs {
		ratio, ok := anchorRatioOf(current, pair)
		if !ok {
			continue
		}
		deviation := math.Abs(ratio-pair.expected) / pair.expected
		if deviation < imbalanceStaticThreshold {
			continue
		}
		pastRatio, ok := anchorRatioOf(past, pair)
		if ok {
			pastDeviation := math.Abs(pastRatio-pair.expected) / pair.expected
			if deviation < pastDeviation+imbalanceTrendThreshold {
				continue
			}
		}

		liftA, _ := e.catalog.Get(pair.liftA)
		liftB, _ := e.catalog.Get(pair.liftB)
		rec := newRecommendation(KindImbalance, "rec_reason_imbalance", map[string]string{
			"lift_a":   liftA.Name,
			"lift_b":   liftB.Name,
			"ratio":    formatFloat1(ratio),
			"expected": formatFloat1(pair.expected),
		})
		rec.Payload = ImbalancePayload{
			LiftA:         pair.liftA,
			LiftB:         pair.liftB,
			Ratio:         ratio,
			ExpectedRatio: pair.expected,
		}
		return rec, true
	}
	return Recommendation{}, false
}

func anchorRatioOf(anchors strength.Anchors, pair imbalancePair) (float64, bool) {
	a, b := anchors[pair.liftA], anchors[pair.liftB]
	if a == 0 || b == 0 {
		return 0, false
	}
	return a / b, true
}

// goalMismatch compares recent rep ranges against the stated goal.
func (e *Engine) goalMismatch(in Input, _ fatigue.FreshnessMap, _ fatigue.Systemic) (Recommendation, bool) {
	goal := in.Profile.GoalOrDefault()
	if goal == history.GoalMuscle {
		return Recommendation{}, false
	}

	var reps, sets int
	sessions := 0
	for i, session := range in.History {
		if i == goalMismatchWindow {
			break
		}
		sessions++
		for _, exercise := range session.Exercises {
			for _, set := range exercise.Sets {
				if set.Completed && set.Kind != history.SetWarmup && set.Reps > 0 {
					reps += set.Reps
					sets++
				}
			}
		}
	}
	if sessions < goalMismatchMinSessions || sets == 0 {
		return Recommendation{}, false
	}

	average := float64(reps) / float64(sets)
	mismatch := (goal == history.GoalStrength && average > 10) ||
		(goal == history.GoalEndurance && average < 8)
	if !mismatch {
		return Recommendation{}, false
	}

	rec := newRecommendation(KindGoalMismatch, "rec_reason_goal_mismatch", map[string]string{
		"goal": string(goal),
	})
	rec.Payload = GoalMismatchPayload{Goal: string(goal), AverageReps: average}
	return rec, true
}

// circadianNudge is purely advisory and only speaks up at risky hours: late
// nights, or dark winter mornings where warm-up matters more.
func (e *Engine) circadianNudge(in Input, _ fatigue.FreshnessMap, _ fatigue.Systemic) (Recommendation, bool) {
	hour := in.Now.Hour()
	if hour >= 21 || hour < 5 {
		rec := newRecommendation(KindCircadianNudge, "rec_reason_circadian_night", nil)
		rec.Payload = CircadianPayload{Bucket: "night"}
		return rec, true
	}
	if hour < 9 && isWinter(in.Now) {
		rec := newRecommendation(KindCircadianNudge, "rec_reason_circadian_winter", nil)
		rec.Payload = CircadianPayload{Bucket: "morning"}
		return rec, true
	}
	return Recommendation{}, false
}

// isWinter guesses the hemisphere from the UTC offset: offsets deep in the
// +8..+13 band are read as southern. Crude, but the nudge is advisory only.
func isWinter(now time.Time) bool {
	_, offset := now.Zone()
	southern := offset >= 8*3600
	month := now.Month()
	if southern {
		return month >= time.June && month <= time.August
	}
	return month == time.December || month <= time.February
}

// efficiencyWarning counts overlong rests in the latest session.
func (e *Engine) efficiencyWarning(in Input, _ fatigue.FreshnessMap, _ fatigue.Systemic) (Recommendation, bool) {
	if len(in.History) == 0 {
		return Recommendation{}, false
	}
	slow := 0
	for _, exercise := range in.History[0].Exercises {
		for _, set := range exercise.Sets {
			if set.Completed && set.ActualRestSeconds > slowRestSeconds {
				slow++
			}
		}
	}
	if slow < slowSetsThreshold {
		return Recommendation{}, false
	}
	rec := newRecommendation(KindEfficiencyWarning, "rec_reason_efficiency", map[string]string{
		"count": strconv.Itoa(slow),
	})
	rec.Payload = EfficiencyPayload{SlowSets: slow}
	return rec, true
}

// onboardingRotation walks new users through their custom routines in order.
func (e *Engine) onboardingRotation(in Input, _ fatigue.FreshnessMap, _ fatigue.Systemic) (Recommendation, bool) {
	if len(in.History) >= onboardingSessionLimit || len(in.Routines) == 0 {
		return Recommendation{}, false
	}

	next := in.Routines[0]
	if len(in.History) > 0 {
		lastID := in.History[0].RoutineID
		for i, r := range in.Routines {
			if r.ID == lastID {
				next = in.Routines[(i+1)%len(in.Routines)]
				break
			}
		}
	}

	rec := newRecommendation(KindWorkout, "rec_reason_workout_routine", map[string]string{
		"routine": next.Name,
	})
	rec.Payload = WorkoutPayload{RoutineID: next.ID}
	attached := next
	rec.Routine = &attached
	return rec, true
}

// lowFreshnessRecovery fires when everything is mediocre: average under 60
// with no muscle fresher than 80.
func (e *Engine) lowFreshnessRecovery(in Input, freshness fatigue.FreshnessMap, _ fatigue.Systemic) (Recommendation, bool) {
	if len(freshness) == 0 {
		return Recommendation{}, false
	}
	average := freshness.Average()
	if average >= recoveryAvgThreshold {
		return Recommendation{}, false
	}
	for _, value := range freshness {
		if value > recoveryPeakThreshold {
			return Recommendation{}, false
		}
	}

	var protected []catalog.MuscleGroup
	for muscle, value := range freshness {
		if value < recoveryProtectBelow {
			protected = append(protected, muscle)
		}
	}
	sort.Slice(protected, func(i, j int) bool { return protected[i] < protected[j] })

	rec := newRecommendation(KindActiveRecovery, "rec_reason_low_freshness", map[string]string{
		"freshness": strconv.Itoa(int(math.Round(average))),
	})
	if gap, err := e.generator.GenerateGapSession(protected, gapSettings(in), freshness); err == nil {
		rec.Routine = &gap
	}
	return rec, true
}

// groupReadiness scores the four muscle buckets and recommends training the
// one neglected longest among those that are recovered and rested.
func (e *Engine) groupReadiness(in Input, freshness fatigue.FreshnessMap, _ fatigue.Systemic) (Recommendation, bool) {
	if len(in.History) == 0 {
		return Recommendation{}, false
	}
	threshold := readinessFreshness
	if in.Profile.AdaptiveEfficiency && fatigue.DensityRatio(in.History) >= highEfficiencyRatio {
		threshold = readinessFreshnessAdaptive
	}
	frequency := in.History.ExerciseFrequency()

	type candidate struct {
		name      string
		focus     routine.Focus
		muscles   []catalog.MuscleGroup
		daysSince float64
		habit     int
	}
	var ready []candidate
	for _, bucket := range muscleBuckets {
		var total float64
		for _, muscle := range bucket.muscles {
			total += freshness.Get(muscle)
		}
		average := total / float64(len(bucket.muscles))
		daysSince := e.daysSinceGroupTrained(in.History, bucket.muscles, in.Now)
		if daysSince <= readinessRestDays || average <= threshold {
			continue
		}
		ready = append(ready, candidate{
			name:      bucket.name,
			focus:     bucket.focus,
			muscles:   bucket.muscles,
			daysSince: daysSince,
			habit:     e.habitScore(frequency, bucket.muscles),
		})
	}
	if len(ready) == 0 {
		return Recommendation{}, false
	}

	winner := ready[0]
	for _, c := range ready[1:] {
		if c.daysSince > winner.daysSince ||
			(c.daysSince == winner.daysSince && c.habit > winner.habit) {
			winner = c
		}
	}

	days := int(math.Min(winner.daysSince, 365))
	rec := newRecommendation(KindWorkout, "rec_reason_workout", map[string]string{
		"group": winner.name,
		"days":  strconv.Itoa(days),
	})
	rec.Payload = WorkoutPayload{Group: winner.name}

	if matched, ok := e.matchRoutine(in, winner.muscles); ok {
		rec.Routine = matched
		return rec, true
	}
	if generated, err := e.generator.GenerateSmartRoutine(winner.focus, gapSettings(in), frequency); err == nil {
		rec.Routine = &generated
	}
	return rec, true
}

// daysSinceGroupTrained finds the most recent session loading any muscle of
// the group. Returns a large value when the group was never trained.
func (e *Engine) daysSinceGroupTrained(h history.History, muscles []catalog.MuscleGroup, now time.Time) float64 {
	inGroup := make(map[catalog.MuscleGroup]bool, len(muscles))
	for _, muscle := range muscles {
		inGroup[muscle] = true
	}
	for _, session := range h {
		for _, exercise := range session.Exercises {
			ex, ok := e.catalog.Get(exercise.ExerciseID)
			if !ok {
				continue
			}
			for _, muscle := range ex.PrimaryMuscles {
				if inGroup[muscle] {
					return now.Sub(session.CompletedAt).Hours() / 24
				}
			}
		}
	}
	return math.MaxInt32
}

// habitScore sums how often the user performs exercises loading the group.
func (e *Engine) habitScore(frequency map[int]int, muscles []catalog.MuscleGroup) int {
	inGroup := make(map[catalog.MuscleGroup]bool, len(muscles))
	for _, muscle := range muscles {
		inGroup[muscle] = true
	}
	score := 0
	for id, count := range frequency {
		ex, ok := e.catalog.Get(id)
		if !ok {
			continue
		}
		for _, muscle := range ex.PrimaryMuscles {
			if inGroup[muscle] {
				score += count
				break
			}
		}
	}
	return score
}

// matchRoutine looks for an existing routine that mostly targets the group,
// preferring the one used least recently.
func (e *Engine) matchRoutine(in Input, muscles []catalog.MuscleGroup) (*routine.Routine, bool) {
	inGroup := make(map[catalog.MuscleGroup]bool, len(muscles))
	for _, muscle := range muscles {
		inGroup[muscle] = true
	}

	lastUsed := make(map[int]int)
	for i, session := range in.History {
		if _, seen := lastUsed[session.RoutineID]; !seen {
			lastUsed[session.RoutineID] = i
		}
	}

	bestIndex := -1
	bestRecency := -1
	for i, r := range in.Routines {
		if len(r.Exercises) == 0 {
			continue
		}
		matching := 0
		for _, exercise := range r.Exercises {
			ex, ok := e.catalog.Get(exercise.ExerciseID)
			if !ok {
				continue
			}
			for _, muscle := range ex.PrimaryMuscles {
				if inGroup[muscle] {
					matching++
					break
				}
			}
		}
		overlap := float64(matching) / float64(len(r.Exercises))
		if overlap < routineOverlapThreshold {
			continue
		}
		recency, used := lastUsed[r.ID]
		if !used {
			recency = math.MaxInt32
		}
		if recency > bestRecency {
			bestRecency = recency
			bestIndex = i
		}
	}
	if bestIndex == -1 {
		return nil, false
	}
	matched := in.Routines[bestIndex]
	return &matched, true
}
