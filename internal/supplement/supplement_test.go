package supplement_test

import (
	"testing"
	"time"

	"github.com/ironcoach/ironcoach/internal/history"
	"github.com/ironcoach/ironcoach/internal/supplement"
)

func TestPlan(t *testing.T) {
	tests := []struct {
		name        string
		profile     history.Profile
		wantParams  map[supplement.Supplement]map[string]string
	}{
		{
			name:    "male strength",
			profile: history.Profile{Gender: history.GenderMale, Goal: history.GoalStrength},
			wantParams: map[supplement.Supplement]map[string]string{
				supplement.Creatine: {"dose": "5"},
				supplement.Protein:  {"grams": "160"},
				supplement.Caffeine: {"dose": "200"},
			},
		},
		{
			name:    "female endurance",
			profile: history.Profile{Gender: history.GenderFemale, Goal: history.GoalEndurance},
			wantParams: map[supplement.Supplement]map[string]string{
				supplement.Creatine: {"dose": "3"},
				supplement.Protein:  {"grams": "120"},
				supplement.Caffeine: {"dose": "150"},
			},
		},
		{
			name:    "unspecified defaults",
			profile: history.Profile{},
			wantParams: map[supplement.Supplement]map[string]string{
				supplement.Creatine: {"dose": "3"},
				supplement.Protein:  {"grams": "140"},
				supplement.Caffeine: {"dose": "150"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan := supplement.Plan(tt.profile)
			if len(plan) != len(tt.wantParams) {
				t.Fatalf("Plan() returned %d doses, want %d", len(plan), len(tt.wantParams))
			}
			for _, dose := range plan {
				want, ok := tt.wantParams[dose.Supplement]
				if !ok {
					t.Errorf("unexpected supplement %q", dose.Supplement)
					continue
				}
				for key, value := range want {
					if dose.Params[key] != value {
						t.Errorf("%s param %q = %q, want %q", dose.Supplement, key, dose.Params[key], value)
					}
				}
				if dose.ReferenceKey == "" {
					t.Errorf("%s has empty reference key", dose.Supplement)
				}
			}
		})
	}
}

func volumeSession(day time.Time, weight float64) history.Session {
	return history.Session{
		StartedAt:   day,
		CompletedAt: day.Add(time.Hour),
		Exercises: []history.WorkoutExercise{{
			ExerciseID: 2,
			Sets: []history.PerformedSet{
				{Reps: 10, WeightKg: weight, Kind: history.SetNormal, Completed: true},
			},
		}},
	}
}

func TestCorrelate(t *testing.T) {
	base := time.Date(2026, 2, 2, 10, 0, 0, 0, time.UTC)
	day := func(n int) time.Time { return base.AddDate(0, 0, n) }

	var h history.History
	var intake []supplement.Intake
	// Three heavy sessions on creatine days, three light ones off.
	for n := 0; n < 3; n++ {
		h = append(h, volumeSession(day(2*n), 100))
		intake = append(intake, supplement.Intake{Supplement: supplement.Creatine, Date: day(2 * n)})
		h = append(h, volumeSession(day(2*n+1), 50))
	}

	results := supplement.Correlate(h, intake)
	if len(results) != 1 {
		t.Fatalf("Correlate() returned %d results, want 1", len(results))
	}
	got := results[0]
	if got.TakenSessions != 3 || got.OtherSessions != 3 {
		t.Errorf("sample counts = %d/%d, want 3/3", got.TakenSessions, got.OtherSessions)
	}
	if got.DeltaPercent != 100 {
		t.Errorf("DeltaPercent = %d, want 100", got.DeltaPercent)
	}
	if got.ReferenceKey != "supp_effect_up" {
		t.Errorf("ReferenceKey = %q, want supp_effect_up", got.ReferenceKey)
	}
	if got.Params["percent"] != "100" {
		t.Errorf("percent param = %q, want 100", got.Params["percent"])
	}
}

func TestCorrelateInsufficientData(t *testing.T) {
	base := time.Date(2026, 2, 2, 10, 0, 0, 0, time.UTC)

	h := history.History{volumeSession(base, 100), volumeSession(base.AddDate(0, 0, 1), 50)}
	intake := []supplement.Intake{{Supplement: supplement.Caffeine, Date: base}}

	results := supplement.Correlate(h, intake)
	if len(results) != 1 {
		t.Fatalf("Correlate() returned %d results, want 1", len(results))
	}
	if results[0].ReferenceKey != "supp_effect_early" {
		t.Errorf("ReferenceKey = %q, want supp_effect_early", results[0].ReferenceKey)
	}
	if results[0].DeltaPercent != 0 {
		t.Errorf("DeltaPercent = %d, want 0 without enough data", results[0].DeltaPercent)
	}
}

func TestCorrelateNoEffect(t *testing.T) {
	base := time.Date(2026, 2, 2, 10, 0, 0, 0, time.UTC)
	day := func(n int) time.Time { return base.AddDate(0, 0, n) }

	var h history.History
	var intake []supplement.Intake
	for n := 0; n < 3; n++ {
		h = append(h, volumeSession(day(2*n), 100))
		intake = append(intake, supplement.Intake{Supplement: supplement.Protein, Date: day(2 * n)})
		h = append(h, volumeSession(day(2*n+1), 100))
	}

	results := supplement.Correlate(h, intake)
	if results[0].ReferenceKey != "supp_effect_none" {
		t.Errorf("ReferenceKey = %q, want supp_effect_none", results[0].ReferenceKey)
	}
}
