package recommend_test

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/ironcoach/ironcoach/internal/catalog"
	"github.com/ironcoach/ironcoach/internal/errors"
	"github.com/ironcoach/ironcoach/internal/fatigue"
	"github.com/ironcoach/ironcoach/internal/history"
	"github.com/ironcoach/ironcoach/internal/recommend"
	"github.com/ironcoach/ironcoach/internal/routine"
)

// 18:00 UTC in March: outside every circadian trigger window.
var testNow = time.Date(2026, 3, 10, 18, 0, 0, 0, time.UTC)

func noShuffle(_ int, _ func(i, j int)) {}

func newEngine() *recommend.Engine {
	c := catalog.Default()
	return recommend.NewEngine(c, routine.NewGenerator(c, noShuffle))
}

func daysAgo(days int) time.Time {
	return testNow.Add(-time.Duration(days) * 24 * time.Hour)
}

func session(completedAt time.Time, exercises ...history.WorkoutExercise) history.Session {
	return history.Session{
		StartedAt:   completedAt.Add(-time.Hour),
		CompletedAt: completedAt,
		Exercises:   exercises,
	}
}

func exerciseSets(exerciseID int, sets ...history.PerformedSet) history.WorkoutExercise {
	return history.WorkoutExercise{ExerciseID: exerciseID, Sets: sets}
}

func workingSet(reps int, weight float64) history.PerformedSet {
	return history.PerformedSet{Reps: reps, WeightKg: weight, Kind: history.SetNormal, Completed: true}
}

// benchStallHistory holds the bench at the same top weight for the three
// most recent appearances with no earlier dip.
func benchStallHistory() history.History {
	return history.History{
		session(daysAgo(1), exerciseSets(catalog.ExerciseBenchPress,
			workingSet(5, 80), workingSet(5, 80), workingSet(5, 80))),
		session(daysAgo(3), exerciseSets(catalog.ExerciseBenchPress,
			workingSet(5, 80), workingSet(5, 80), workingSet(5, 80))),
		session(daysAgo(5), exerciseSets(catalog.ExerciseBenchPress,
			workingSet(5, 80), workingSet(5, 80), workingSet(5, 80))),
	}
}

func checkIn(t *testing.T, in recommend.Input) recommend.Recommendation {
	t.Helper()
	rec, err := newEngine().CheckIn(in)
	if err != nil {
		t.Fatalf("CheckIn() error = %v", err)
	}
	return rec
}

func TestCheckInEmptyHistory(t *testing.T) {
	rec := checkIn(t, recommend.Input{Now: testNow})

	if rec.Kind != recommend.KindRest {
		t.Errorf("Kind = %q, want rest for empty history", rec.Kind)
	}
	if rec.Systemic == nil || rec.Systemic.Score != 0 || rec.Systemic.Level != fatigue.LevelLow {
		t.Errorf("Systemic = %+v, want score 0 level Low", rec.Systemic)
	}
	if rec.Routine == nil || len(rec.Routine.Exercises) == 0 {
		t.Error("rest recommendation carries no generated session")
	}
}

func TestCheckInMalformedHistory(t *testing.T) {
	h := history.History{{
		StartedAt:   testNow,
		CompletedAt: testNow.Add(-time.Hour),
	}}
	_, err := newEngine().CheckIn(recommend.Input{History: h, Now: testNow})
	if !errors.Is(err, history.ErrSessionEndsBeforeStart) {
		t.Errorf("error = %v, want ErrSessionEndsBeforeStart", err)
	}
}

func TestCheckInStall(t *testing.T) {
	rec := checkIn(t, recommend.Input{History: benchStallHistory(), Now: testNow})

	if rec.Kind != recommend.KindStall {
		t.Fatalf("Kind = %q, want stall", rec.Kind)
	}
	payload, ok := rec.Payload.(recommend.StallPayload)
	if !ok {
		t.Fatalf("Payload type = %T, want StallPayload", rec.Payload)
	}
	want := recommend.StallPayload{
		ExerciseID:    catalog.ExerciseBenchPress,
		WeightKg:      80,
		SessionsCount: 3,
	}
	if diff := cmp.Diff(want, payload); diff != "" {
		t.Errorf("payload mismatch (-want +got):\n%s", diff)
	}
	if rec.ReasonParams["weight"] != "80" || rec.ReasonParams["count"] != "3" {
		t.Errorf("reason params = %v, want weight 80 count 3", rec.ReasonParams)
	}
}

func TestCheckInDeterminism(t *testing.T) {
	in := recommend.Input{History: benchStallHistory(), Now: testNow}

	first := checkIn(t, in)
	second := checkIn(t, in)

	if first.Kind != second.Kind {
		t.Errorf("kinds differ across identical calls: %q vs %q", first.Kind, second.Kind)
	}
	if diff := cmp.Diff(first.Payload, second.Payload); diff != "" {
		t.Errorf("payloads differ across identical calls:\n%s", diff)
	}
}

func TestCheckInTrainedTodayPreemptsStall(t *testing.T) {
	h := append(history.History{
		session(testNow.Add(-time.Hour), exerciseSets(catalog.ExerciseBenchPress,
			workingSet(5, 80), workingSet(5, 80), workingSet(5, 80))),
	}, benchStallHistory()...)

	rec := checkIn(t, recommend.Input{History: h, Now: testNow})
	if rec.Kind != recommend.KindActiveRecovery {
		t.Errorf("Kind = %q, want active_recovery after training today", rec.Kind)
	}
	if rec.ReasonKey != "rec_reason_trained_today" {
		t.Errorf("ReasonKey = %q, want rec_reason_trained_today", rec.ReasonKey)
	}
}

func TestCheckInTechnicalPR(t *testing.T) {
	restSet := func(reps int, weight, rest float64) history.PerformedSet {
		set := workingSet(reps, weight)
		set.ActualRestSeconds = rest
		return set
	}
	h := history.History{
		session(testNow.Add(-time.Hour), exerciseSets(catalog.ExerciseBenchPress,
			restSet(5, 80, 130), restSet(5, 80, 120))),
		session(daysAgo(2), exerciseSets(catalog.ExerciseBenchPress,
			restSet(5, 80, 160), restSet(5, 80, 150))),
	}

	rec := checkIn(t, recommend.Input{History: h, Now: testNow})
	if rec.Kind != recommend.KindTechnicalPR {
		t.Fatalf("Kind = %q, want technical_pr", rec.Kind)
	}
	payload := rec.Payload.(recommend.TechnicalPRPayload)
	if payload.WeightKg != 80 || payload.ImprovementSeconds != 30 {
		t.Errorf("payload = %+v, want 80 kg with 30s improvement", payload)
	}
}

func TestCheckInDeloadOnHighSystemicFatigue(t *testing.T) {
	var h history.History
	for day := 1; day <= 7; day++ {
		sets := make([]history.PerformedSet, 0, 20)
		for range 20 {
			sets = append(sets, workingSet(8, 60))
		}
		h = append(h, session(daysAgo(day), exerciseSets(catalog.ExerciseBenchPress, sets...)))
	}

	rec := checkIn(t, recommend.Input{History: h, Now: testNow})
	if rec.Kind != recommend.KindDeload {
		t.Fatalf("Kind = %q, want deload to preempt the bench stall", rec.Kind)
	}
	if rec.Systemic == nil || rec.Systemic.Level != fatigue.LevelHigh {
		t.Errorf("Systemic = %+v, want level High", rec.Systemic)
	}
	if rec.Routine == nil {
		t.Error("deload carries no generated recovery session")
	}
}

func TestCheckInVolumePivotAfterDeloadCycle(t *testing.T) {
	// Ceiling 100 for three sessions, with an earlier dip to 90 and a
	// still-earlier visit to the same ceiling.
	weights := []float64{100, 100, 100, 90, 100}
	var h history.History
	for i, weight := range weights {
		h = append(h, session(daysAgo(2*i+1),
			exerciseSets(catalog.ExerciseBenchPress, workingSet(5, weight))))
	}

	tests := []struct {
		name     string
		goal     history.Goal
		wantKind recommend.Kind
	}{
		{name: "strength goal pivots volume", goal: history.GoalStrength, wantKind: recommend.KindVolumePivot},
		{name: "muscle goal pivots rep range", goal: history.GoalMuscle, wantKind: recommend.KindStall},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := checkIn(t, recommend.Input{
				History: h,
				Profile: history.Profile{Goal: tt.goal},
				Now:     testNow,
			})
			if rec.Kind != tt.wantKind {
				t.Fatalf("Kind = %q, want %q", rec.Kind, tt.wantKind)
			}
			switch payload := rec.Payload.(type) {
			case recommend.VolumePivotPayload:
				if payload.FromSets != 5 || payload.ToSets != 3 {
					t.Errorf("payload = %+v, want 5 sets down to 3", payload)
				}
			case recommend.StallPayload:
				if payload.SuggestedReps != 8 {
					t.Errorf("payload = %+v, want suggested reps 8", payload)
				}
				if rec.ReasonKey != "rec_reason_stall_pivot" {
					t.Errorf("ReasonKey = %q, want rec_reason_stall_pivot", rec.ReasonKey)
				}
			default:
				t.Errorf("unexpected payload type %T", rec.Payload)
			}
		})
	}
}

func TestCheckInDensityWarning(t *testing.T) {
	h := history.History{
		session(daysAgo(1), exerciseSets(catalog.ExerciseBenchPress,
			workingSet(10, 30), workingSet(10, 30), workingSet(10, 30))),
		session(daysAgo(3), exerciseSets(catalog.ExerciseBenchPress,
			workingSet(10, 60), workingSet(10, 60), workingSet(10, 60))),
		session(daysAgo(5), exerciseSets(catalog.ExerciseBenchPress,
			workingSet(10, 60), workingSet(10, 60), workingSet(10, 60))),
	}

	rec := checkIn(t, recommend.Input{
		History: h,
		Profile: history.Profile{AdaptiveEfficiency: true},
		Now:     testNow,
	})
	if rec.Kind != recommend.KindDensityWarning {
		t.Fatalf("Kind = %q, want density_warning", rec.Kind)
	}
	payload := rec.Payload.(recommend.DensityWarningPayload)
	if payload.DropPercent != 50 {
		t.Errorf("DropPercent = %d, want 50", payload.DropPercent)
	}

	// The attached session protects the legs for the next workout.
	if rec.Routine == nil {
		t.Fatal("density warning carries no session")
	}
	c := catalog.Default()
	for _, id := range rec.Routine.ExerciseIDs() {
		ex, _ := c.Get(id)
		for _, muscle := range ex.PrimaryMuscles {
			switch muscle {
			case catalog.Quads, catalog.Hamstrings, catalog.Glutes, catalog.Calves:
				t.Errorf("gap session loads protected leg muscle %q via %q", muscle, ex.Name)
			}
		}
	}
}

func TestCheckInPromotion(t *testing.T) {
	h := history.History{
		session(daysAgo(1), exerciseSets(catalog.ExerciseGobletSquat, workingSet(8, 34))),
		session(daysAgo(3), exerciseSets(catalog.ExerciseGobletSquat, workingSet(8, 32))),
		session(daysAgo(5), exerciseSets(catalog.ExerciseGobletSquat, workingSet(8, 30))),
	}

	rec := checkIn(t, recommend.Input{History: h, Now: testNow})
	if rec.Kind != recommend.KindPromotion {
		t.Fatalf("Kind = %q, want promotion", rec.Kind)
	}
	payload := rec.Payload.(recommend.PromotionPayload)
	want := recommend.PromotionPayload{
		FromExerciseID: catalog.ExerciseGobletSquat,
		ToExerciseID:   catalog.ExerciseBarbellSquat,
		Streak:         3,
	}
	if diff := cmp.Diff(want, payload); diff != "" {
		t.Errorf("payload mismatch (-want +got):\n%s", diff)
	}
}

func TestCheckInSnoozeFallsThrough(t *testing.T) {
	rec := checkIn(t, recommend.Input{
		History: benchStallHistory(),
		Profile: history.Profile{
			Snoozes: map[string]time.Time{"stall": daysAgo(1)},
		},
		Now: testNow,
	})

	if rec.Kind == recommend.KindStall {
		t.Fatal("snoozed stall still returned")
	}
	if rec.Kind != recommend.KindWorkout {
		t.Errorf("Kind = %q, want workout after the stall is snoozed", rec.Kind)
	}
}

func TestCheckInEfficiencyWarning(t *testing.T) {
	slowSet := func(weight float64) history.PerformedSet {
		set := workingSet(8, weight)
		set.ActualRestSeconds = 320
		return set
	}
	h := history.History{
		session(daysAgo(1), exerciseSets(catalog.ExerciseBenchPress,
			slowSet(60), slowSet(65), slowSet(70))),
	}

	rec := checkIn(t, recommend.Input{History: h, Now: testNow})
	if rec.Kind != recommend.KindEfficiencyWarning {
		t.Fatalf("Kind = %q, want efficiency_warning", rec.Kind)
	}
	if payload := rec.Payload.(recommend.EfficiencyPayload); payload.SlowSets != 3 {
		t.Errorf("SlowSets = %d, want 3", payload.SlowSets)
	}
}

func TestCheckInOnboardingRotation(t *testing.T) {
	routines := []routine.Routine{
		{ID: 11, Name: "Monday A", Exercises: []history.WorkoutExercise{{ExerciseID: catalog.ExercisePlank}}},
		{ID: 12, Name: "Thursday B", Exercises: []history.WorkoutExercise{{ExerciseID: catalog.ExercisePushUp}}},
	}
	h := history.History{
		{
			RoutineID:   11,
			StartedAt:   daysAgo(2).Add(-time.Hour),
			CompletedAt: daysAgo(2),
			Exercises:   []history.WorkoutExercise{exerciseSets(catalog.ExercisePlank, workingSet(0, 0))},
		},
	}

	rec := checkIn(t, recommend.Input{History: h, Routines: routines, Now: testNow})
	if rec.Kind != recommend.KindWorkout {
		t.Fatalf("Kind = %q, want workout", rec.Kind)
	}
	payload := rec.Payload.(recommend.WorkoutPayload)
	if payload.RoutineID != 12 {
		t.Errorf("RoutineID = %d, want 12 to skip the immediate repeat", payload.RoutineID)
	}
	if rec.Routine == nil || rec.Routine.ID != 12 {
		t.Error("rotation recommendation does not attach the next routine")
	}
}

func TestCheckInCircadianNudgeAtNight(t *testing.T) {
	night := time.Date(2026, 3, 10, 22, 30, 0, 0, time.UTC)
	h := history.History{
		session(night.Add(-72*time.Hour), exerciseSets(catalog.ExerciseBarbellSquat, workingSet(8, 60))),
	}

	rec := checkIn(t, recommend.Input{History: h, Now: night})
	if rec.Kind != recommend.KindCircadianNudge {
		t.Fatalf("Kind = %q, want circadian_nudge at night", rec.Kind)
	}
	if payload := rec.Payload.(recommend.CircadianPayload); payload.Bucket != "night" {
		t.Errorf("Bucket = %q, want night", payload.Bucket)
	}
	if rec.Routine != nil {
		t.Error("circadian nudge must not attach a session")
	}
}

func TestCheckInGroupReadiness(t *testing.T) {
	// Legs trained five days ago, everything else never: the most
	// neglected upper-body group wins and gets a generated routine.
	h := history.History{
		session(daysAgo(5), exerciseSets(catalog.ExerciseBarbellSquat, workingSet(8, 60))),
	}

	rec := checkIn(t, recommend.Input{History: h, Now: testNow})
	if rec.Kind != recommend.KindWorkout {
		t.Fatalf("Kind = %q, want workout", rec.Kind)
	}
	payload := rec.Payload.(recommend.WorkoutPayload)
	if payload.Group != "push" {
		t.Errorf("Group = %q, want push as the first never-trained bucket", payload.Group)
	}
	if rec.Routine == nil || len(rec.Routine.Exercises) == 0 {
		t.Fatal("workout recommendation carries no routine")
	}
}

func TestCheckInGroupReadinessPrefersMatchingRoutine(t *testing.T) {
	h := history.History{
		session(daysAgo(5), exerciseSets(catalog.ExerciseBarbellSquat, workingSet(8, 60))),
	}
	pushRoutine := routine.Routine{
		ID:   21,
		Name: "My push day",
		Exercises: []history.WorkoutExercise{
			{ExerciseID: catalog.ExerciseBenchPress},
			{ExerciseID: catalog.ExerciseOverheadPress},
		},
	}

	// Enough older sessions to leave onboarding, with varying weights so
	// no stall streak forms.
	var padded history.History
	for day := 20; day < 34; day++ {
		padded = append(padded, session(daysAgo(day),
			exerciseSets(catalog.ExerciseBarbellSquat, workingSet(8, float64(30+day)))))
	}
	h = append(h, padded...)

	rec := checkIn(t, recommend.Input{History: h, Routines: []routine.Routine{pushRoutine}, Now: testNow})
	if rec.Kind != recommend.KindWorkout {
		t.Fatalf("Kind = %q, want workout", rec.Kind)
	}
	if rec.Routine == nil || rec.Routine.ID != pushRoutine.ID {
		t.Errorf("Routine = %+v, want the user's matching push routine", rec.Routine)
	}
}

func TestCheckInLowFreshnessActiveRecovery(t *testing.T) {
	failureSet := func(reps int, weight float64) history.PerformedSet {
		return history.PerformedSet{Reps: reps, WeightKg: weight, Kind: history.SetFailure, Completed: true}
	}
	fullBodyDay := func(completedAt time.Time) history.Session {
		return session(completedAt,
			exerciseSets(catalog.ExerciseBarbellSquat, failureSet(5, 100), failureSet(5, 100), failureSet(5, 100)),
			exerciseSets(catalog.ExerciseBenchPress, failureSet(5, 80), failureSet(5, 80), failureSet(5, 80)),
			exerciseSets(catalog.ExerciseOverheadPress, failureSet(5, 50), failureSet(5, 50)),
			exerciseSets(catalog.ExerciseBarbellRow, failureSet(5, 120), failureSet(5, 120)),
			exerciseSets(catalog.ExerciseBicepsCurl, failureSet(8, 20), failureSet(8, 20)),
		)
	}
	h := history.History{fullBodyDay(daysAgo(1)), fullBodyDay(daysAgo(2))}

	rec := checkIn(t, recommend.Input{
		History: h,
		Profile: history.Profile{Goal: history.GoalStrength},
		Now:     testNow,
	})
	if rec.Kind != recommend.KindActiveRecovery {
		t.Fatalf("Kind = %q, want active_recovery when everything is run down", rec.Kind)
	}
	if rec.ReasonKey != "rec_reason_low_freshness" {
		t.Errorf("ReasonKey = %q, want rec_reason_low_freshness", rec.ReasonKey)
	}
	if rec.Routine == nil || len(rec.Routine.Exercises) == 0 {
		t.Error("active recovery carries no session")
	}
}
