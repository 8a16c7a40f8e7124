package strength_test

import (
	"math"
	"testing"
	"time"

	"github.com/ironcoach/ironcoach/internal/catalog"
	"github.com/ironcoach/ironcoach/internal/history"
	"github.com/ironcoach/ironcoach/internal/strength"
)

var testNow = time.Date(2026, 3, 10, 18, 0, 0, 0, time.UTC)

func completedSet(reps int, weight float64) history.PerformedSet {
	return history.PerformedSet{Reps: reps, WeightKg: weight, Kind: history.SetNormal, Completed: true}
}

func sessionWith(completedAt time.Time, exerciseID int, sets ...history.PerformedSet) history.Session {
	return history.Session{
		StartedAt:   completedAt.Add(-time.Hour),
		CompletedAt: completedAt,
		Exercises:   []history.WorkoutExercise{{ExerciseID: exerciseID, Sets: sets}},
	}
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 0.1
}

func TestEstimated1RM(t *testing.T) {
	tests := []struct {
		name string
		set  history.PerformedSet
		want float64
	}{
		{
			name: "five rep set",
			set:  completedSet(5, 200),
			want: 233.3,
		},
		{
			name: "single rep is the weight plus a thirtieth",
			set:  completedSet(1, 100),
			want: 103.3,
		},
		{
			name: "twelve reps still qualifies",
			set:  completedSet(12, 60),
			want: 84,
		},
		{
			name: "thirteen reps excluded",
			set:  completedSet(13, 60),
			want: 0,
		},
		{
			name: "incomplete set excluded",
			set:  history.PerformedSet{Reps: 5, WeightKg: 100, Kind: history.SetNormal, Completed: false},
			want: 0,
		},
		{
			name: "zero weight excluded",
			set:  completedSet(5, 0),
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := strength.Estimated1RM(tt.set); !almostEqual(got, tt.want) {
				t.Errorf("Estimated1RM() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMaxStrengthProfile(t *testing.T) {
	h := history.History{
		sessionWith(testNow.Add(-24*time.Hour), catalog.ExerciseBarbellSquat,
			completedSet(5, 100), completedSet(5, 110)),
		sessionWith(testNow.Add(-48*time.Hour), catalog.ExerciseBenchPress,
			completedSet(8, 80)),
		// Older than six months, must not count.
		sessionWith(testNow.AddDate(0, -7, 0), catalog.ExerciseBarbellSquat,
			completedSet(5, 180)),
	}

	profile := strength.MaxStrengthProfile(h, testNow)

	wantSquat := 110 * (1 + 5.0/30)
	if !almostEqual(profile[strength.PatternSquat], wantSquat) {
		t.Errorf("squat pattern = %v, want %v", profile[strength.PatternSquat], wantSquat)
	}
	wantBench := 80 * (1 + 8.0/30)
	if !almostEqual(profile[strength.PatternBench], wantBench) {
		t.Errorf("bench pattern = %v, want %v", profile[strength.PatternBench], wantBench)
	}
	if profile[strength.PatternDeadlift] != 0 {
		t.Errorf("deadlift pattern = %v, want 0 for no history", profile[strength.PatternDeadlift])
	}
}

func TestMaxStrengthProfileEmptyHistory(t *testing.T) {
	profile := strength.MaxStrengthProfile(nil, testNow)
	for _, pattern := range strength.Patterns() {
		if profile[pattern] != 0 {
			t.Errorf("pattern %q = %v, want 0", pattern, profile[pattern])
		}
	}
}

func TestResolveAnchorAndRatio(t *testing.T) {
	c := catalog.Default()

	tests := []struct {
		name       string
		exerciseID int
		wantAnchor int
		wantRatio  float64
		wantOK     bool
	}{
		{
			name:       "leg press has a specific entry",
			exerciseID: catalog.ExerciseLegPress,
			wantAnchor: strength.AnchorSquat,
			wantRatio:  2.5,
			wantOK:     true,
		},
		{
			name:       "anchor lift resolves to itself via fallback",
			exerciseID: catalog.ExerciseBenchPress,
			wantAnchor: strength.AnchorBench,
			wantRatio:  1.0,
			wantOK:     true,
		},
		{
			name:       "cable back movement via fallback",
			exerciseID: catalog.ExerciseLatPulldown,
			wantAnchor: strength.AnchorDeadlift,
			wantRatio:  0.9,
			wantOK:     true,
		},
		{
			name:       "bodyweight core does not resolve",
			exerciseID: catalog.ExercisePlank,
			wantOK:     false,
		},
		{
			name:       "unknown exercise does not resolve",
			exerciseID: 404,
			wantOK:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			anchor, ratio, ok := strength.ResolveAnchorAndRatio(tt.exerciseID, c)
			if ok != tt.wantOK {
				t.Fatalf("ResolveAnchorAndRatio() ok = %v, want %v", ok, tt.wantOK)
			}
			if !tt.wantOK {
				return
			}
			if anchor != tt.wantAnchor || !almostEqual(ratio, tt.wantRatio) {
				t.Errorf("ResolveAnchorAndRatio() = (%d, %v), want (%d, %v)",
					anchor, ratio, tt.wantAnchor, tt.wantRatio)
			}
		})
	}
}

func TestSyntheticAnchorsFromLegPress(t *testing.T) {
	c := catalog.Default()
	h := history.History{
		sessionWith(testNow.Add(-24*time.Hour), catalog.ExerciseLegPress, completedSet(5, 200)),
	}

	anchors := strength.SyntheticAnchors(h, c, history.Profile{}, testNow)

	// 200 * (1 + 5/30) / 2.5 = 93.3.
	if !almostEqual(anchors[strength.AnchorSquat], 93.3) {
		t.Errorf("squat anchor = %v, want 93.3", anchors[strength.AnchorSquat])
	}
}

func TestSyntheticAnchorsSeededFromProfile(t *testing.T) {
	c := catalog.Default()
	profile := history.Profile{
		RecordedMaxes: map[int]history.RecordedMax{
			strength.AnchorSquat: {WeightKg: 120, Date: testNow.AddDate(0, -1, 0)},
		},
	}
	// Implies only ~93.3, below the recorded 120.
	h := history.History{
		sessionWith(testNow.Add(-24*time.Hour), catalog.ExerciseLegPress, completedSet(5, 200)),
	}

	anchors := strength.SyntheticAnchors(h, c, profile, testNow)
	if anchors[strength.AnchorSquat] != 120 {
		t.Errorf("squat anchor = %v, want recorded 120 as lower bound", anchors[strength.AnchorSquat])
	}

	// A stronger implying set raises the anchor past the seed.
	h = append(history.History{
		sessionWith(testNow.Add(-12*time.Hour), catalog.ExerciseLegPress, completedSet(5, 350)),
	}, h...)
	anchors = strength.SyntheticAnchors(h, c, profile, testNow)
	want := 350 * (1 + 5.0/30) / 2.5
	if !almostEqual(anchors[strength.AnchorSquat], want) {
		t.Errorf("squat anchor = %v, want raised to %v", anchors[strength.AnchorSquat], want)
	}
}

func TestSyntheticAnchorsMonotonicity(t *testing.T) {
	c := catalog.Default()
	base := history.History{
		sessionWith(testNow.Add(-72*time.Hour), catalog.ExerciseLegPress, completedSet(5, 200)),
	}
	more := append(history.History{
		sessionWith(testNow.Add(-24*time.Hour), catalog.ExerciseGobletSquat, completedSet(10, 30)),
		sessionWith(testNow.Add(-48*time.Hour), catalog.ExerciseBenchPress, completedSet(5, 80)),
	}, base...)

	before := strength.SyntheticAnchors(base, c, history.Profile{}, testNow)
	after := strength.SyntheticAnchors(more, c, history.Profile{}, testNow)

	for _, anchorID := range strength.AnchorLifts() {
		if after[anchorID] < before[anchorID] {
			t.Errorf("anchor %d decreased from %v to %v after adding history",
				anchorID, before[anchorID], after[anchorID])
		}
	}
}

func TestInferredMax(t *testing.T) {
	c := catalog.Default()
	anchors := strength.Anchors{strength.AnchorSquat: 100}

	inferred, ok := strength.InferredMax(catalog.ExerciseLegPress, anchors, c)
	if !ok {
		t.Fatal("InferredMax() ok = false, want true")
	}
	if !almostEqual(inferred.WeightKg, 250) {
		t.Errorf("inferred weight = %v, want 250", inferred.WeightKg)
	}
	if inferred.AnchorID != strength.AnchorSquat {
		t.Errorf("inferred anchor = %d, want squat", inferred.AnchorID)
	}

	if _, ok := strength.InferredMax(catalog.ExerciseBenchPress, anchors, c); ok {
		t.Error("InferredMax() resolved without a bench anchor, want false")
	}
	if _, ok := strength.InferredMax(catalog.ExercisePlank, anchors, c); ok {
		t.Error("InferredMax() resolved a bodyweight hold, want false")
	}
}
