// Package catalog holds the immutable exercise reference data used by the
// fatigue, strength, and routine engines.
package catalog

// MuscleGroup identifies a single trackable muscle.
type MuscleGroup string

// Muscle group constants.
const (
	Chest      MuscleGroup = "Chest"
	Shoulders  MuscleGroup = "Shoulders"
	Triceps    MuscleGroup = "Triceps"
	Biceps     MuscleGroup = "Biceps"
	Forearms   MuscleGroup = "Forearms"
	Lats       MuscleGroup = "Lats"
	UpperBack  MuscleGroup = "Upper Back"
	LowerBack  MuscleGroup = "Lower Back"
	Traps      MuscleGroup = "Traps"
	Quads      MuscleGroup = "Quads"
	Hamstrings MuscleGroup = "Hamstrings"
	Glutes     MuscleGroup = "Glutes"
	Calves     MuscleGroup = "Calves"
	Abs        MuscleGroup = "Abs"
	Obliques   MuscleGroup = "Obliques"
	HipFlexors MuscleGroup = "Hip Flexors"
)

// BodyPart is the coarse region an exercise targets.
type BodyPart string

// Body part constants.
const (
	BodyPartChest     BodyPart = "chest"
	BodyPartBack      BodyPart = "back"
	BodyPartLegs      BodyPart = "legs"
	BodyPartShoulders BodyPart = "shoulders"
	BodyPartArms      BodyPart = "arms"
	BodyPartCore      BodyPart = "core"
	BodyPartFullBody  BodyPart = "full_body"
	BodyPartMobility  BodyPart = "mobility"
)

// Equipment is the equipment category an exercise requires.
type Equipment string

// Equipment constants.
const (
	EquipmentBarbell    Equipment = "barbell"
	EquipmentDumbbell   Equipment = "dumbbell"
	EquipmentMachine    Equipment = "machine"
	EquipmentCable      Equipment = "cable"
	EquipmentBodyweight Equipment = "bodyweight"
	EquipmentKettlebell Equipment = "kettlebell"
)

// Exercise represents a single exercise type, e.g. Squat, Bench Press, etc.
type Exercise struct {
	ID                  int           `json:"id"`
	Name                string        `json:"name"`
	BodyPart            BodyPart      `json:"body_part"`
	Equipment           Equipment     `json:"equipment"`
	PrimaryMuscles      []MuscleGroup `json:"primary_muscles"`
	SecondaryMuscles    []MuscleGroup `json:"secondary_muscles"`
	DescriptionMarkdown string        `json:"description_markdown"`
	// Isometric exercises are prescribed as timed holds instead of rep sets.
	Isometric bool `json:"isometric"`
	// Plyometric exercises are excluded from caution-zone gap sessions.
	Plyometric bool `json:"plyometric"`
}

// Catalog is a read-only index of exercises. Unknown ids resolve to "no
// muscle data" rather than an error so that history referencing retired
// exercises still processes cleanly.
type Catalog struct {
	byID  map[int]Exercise
	order []int
}

// New builds a catalog from the given exercises. Later duplicates of an id
// win, matching upsert semantics of the storage layer.
func New(exercises []Exercise) Catalog {
	byID := make(map[int]Exercise, len(exercises))
	order := make([]int, 0, len(exercises))
	for _, ex := range exercises {
		if _, seen := byID[ex.ID]; !seen {
			order = append(order, ex.ID)
		}
		byID[ex.ID] = ex
	}
	return Catalog{byID: byID, order: order}
}

// Get returns the exercise for the given id.
func (c Catalog) Get(id int) (Exercise, bool) {
	ex, ok := c.byID[id]
	return ex, ok
}

// All returns the exercises in insertion order.
func (c Catalog) All() []Exercise {
	exercises := make([]Exercise, 0, len(c.order))
	for _, id := range c.order {
		exercises = append(exercises, c.byID[id])
	}
	return exercises
}

// Len returns the number of exercises in the catalog.
func (c Catalog) Len() int {
	return len(c.byID)
}
