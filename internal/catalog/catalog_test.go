package catalog_test

import (
	"testing"

	"github.com/ironcoach/ironcoach/internal/catalog"
)

func TestCatalogLookup(t *testing.T) {
	c := catalog.Default()

	tests := []struct {
		name       string
		id         int
		wantOK     bool
		wantName   string
		wantMuscle catalog.MuscleGroup
	}{
		{
			name:       "barbell squat",
			id:         catalog.ExerciseBarbellSquat,
			wantOK:     true,
			wantName:   "Barbell Squat",
			wantMuscle: catalog.Quads,
		},
		{
			name:       "leg press",
			id:         catalog.ExerciseLegPress,
			wantOK:     true,
			wantName:   "Leg Press",
			wantMuscle: catalog.Quads,
		},
		{
			name:   "unknown id",
			id:     99999,
			wantOK: false,
		},
		{
			name:   "zero id",
			id:     0,
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ex, ok := c.Get(tt.id)
			if ok != tt.wantOK {
				t.Fatalf("Get(%d) ok = %v, want %v", tt.id, ok, tt.wantOK)
			}
			if !tt.wantOK {
				return
			}
			if ex.Name != tt.wantName {
				t.Errorf("Get(%d) name = %q, want %q", tt.id, ex.Name, tt.wantName)
			}
			if len(ex.PrimaryMuscles) == 0 || ex.PrimaryMuscles[0] != tt.wantMuscle {
				t.Errorf("Get(%d) primary muscles = %v, want first %v", tt.id, ex.PrimaryMuscles, tt.wantMuscle)
			}
		})
	}
}

func TestNewLaterDuplicateWins(t *testing.T) {
	c := catalog.New([]catalog.Exercise{
		{ID: 1, Name: "First"},
		{ID: 2, Name: "Other"},
		{ID: 1, Name: "Second"},
	})

	if got := c.Len(); got != 2 {
		t.Fatalf("Len() = %d, want 2", got)
	}
	ex, ok := c.Get(1)
	if !ok || ex.Name != "Second" {
		t.Errorf("Get(1) = %q, %v, want Second, true", ex.Name, ok)
	}
	all := c.All()
	if len(all) != 2 || all[0].ID != 1 || all[1].ID != 2 {
		t.Errorf("All() ids out of order: %v", all)
	}
}

func TestDefaultCatalogConsistency(t *testing.T) {
	c := catalog.Default()
	if c.Len() == 0 {
		t.Fatal("default catalog is empty")
	}
	for _, ex := range c.All() {
		if ex.Name == "" {
			t.Errorf("exercise %d has no name", ex.ID)
		}
		if len(ex.PrimaryMuscles) == 0 && ex.BodyPart != catalog.BodyPartMobility {
			t.Errorf("exercise %q has no primary muscles", ex.Name)
		}
		if ex.Isometric && ex.Plyometric {
			t.Errorf("exercise %q is both isometric and plyometric", ex.Name)
		}
	}
}
