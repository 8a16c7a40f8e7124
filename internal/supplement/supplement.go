// Package supplement holds the dosage rule table and the intake correlation
// analysis. It shares the history and profile types with the training engines
// but is otherwise independent of them.
package supplement

import (
	"sort"
	"strconv"
	"time"

	"github.com/ironcoach/ironcoach/internal/history"
)

// Supplement identifies one of the tracked supplements.
type Supplement string

// Tracked supplements.
const (
	Creatine Supplement = "creatine"
	Protein  Supplement = "protein"
	Caffeine Supplement = "caffeine"
)

// Dose is one entry of a supplement plan. ReferenceKey and Params are
// resolved to display text by the caller, never here.
type Dose struct {
	Supplement   Supplement        `json:"supplement"`
	ReferenceKey string            `json:"reference_key"`
	Params       map[string]string `json:"params,omitempty"`
}

const (
	creatineDoseFemaleG = 3
	creatineDoseMaleG   = 5

	proteinStrengthG  = 160
	proteinMuscleG    = 140
	proteinEnduranceG = 120

	caffeineDoseFemaleMg = 150
	caffeineDoseMaleMg   = 200
)

// Plan derives the dosage table from the profile. The rules key on goal and
// gender only; unspecified gender gets the lower dose.
func Plan(profile history.Profile) []Dose {
	creatine := creatineDoseFemaleG
	caffeine := caffeineDoseFemaleMg
	if profile.Gender == history.GenderMale {
		creatine = creatineDoseMaleG
		caffeine = caffeineDoseMaleMg
	}

	protein := proteinMuscleG
	switch profile.GoalOrDefault() {
	case history.GoalStrength:
		protein = proteinStrengthG
	case history.GoalEndurance:
		protein = proteinEnduranceG
	}

	return []Dose{
		{
			Supplement:   Creatine,
			ReferenceKey: "supp_creatine",
			Params:       map[string]string{"dose": strconv.Itoa(creatine)},
		},
		{
			Supplement:   Protein,
			ReferenceKey: "supp_protein",
			Params:       map[string]string{"grams": strconv.Itoa(protein)},
		},
		{
			Supplement:   Caffeine,
			ReferenceKey: "supp_caffeine",
			Params:       map[string]string{"dose": strconv.Itoa(caffeine)},
		},
	}
}

// Intake is one logged supplement take.
type Intake struct {
	Supplement Supplement `json:"supplement"`
	Date       time.Time  `json:"date"`
}

const (
	// minSamplesPerSide is the minimum session count on both the taken
	// and the not-taken side before an effect is reported.
	minSamplesPerSide = 3
	// effectThresholdPercent is the volume delta under which the effect
	// reads as noise.
	effectThresholdPercent = 5
)

// Correlation compares average completed session volume on days a supplement
// was taken against days it was not.
type Correlation struct {
	Supplement    Supplement `json:"supplement"`
	TakenSessions int        `json:"taken_sessions"`
	OtherSessions int        `json:"other_sessions"`
	// DeltaPercent is the taken-side volume relative to the other side,
	// positive when taking correlates with more volume.
	DeltaPercent int               `json:"delta_percent"`
	ReferenceKey string            `json:"reference_key"`
	Params       map[string]string `json:"params,omitempty"`
}

// Correlate analyzes each logged supplement against the session history.
// Supplements without enough sessions on both sides report supp_effect_early
// instead of a delta. The result is ordered by supplement name.
func Correlate(h history.History, intake []Intake) []Correlation {
	takenDays := make(map[Supplement]map[string]bool)
	for _, entry := range intake {
		if takenDays[entry.Supplement] == nil {
			takenDays[entry.Supplement] = make(map[string]bool)
		}
		takenDays[entry.Supplement][dayKey(entry.Date)] = true
	}

	supplements := make([]Supplement, 0, len(takenDays))
	for supplement := range takenDays {
		supplements = append(supplements, supplement)
	}
	sort.Slice(supplements, func(i, j int) bool { return supplements[i] < supplements[j] })

	results := make([]Correlation, 0, len(supplements))
	for _, supplement := range supplements {
		results = append(results, correlateOne(h, supplement, takenDays[supplement]))
	}
	return results
}

func correlateOne(h history.History, supplement Supplement, days map[string]bool) Correlation {
	var takenVolume, otherVolume float64
	var taken, other int
	for _, session := range h {
		volume := completedVolume(session)
		if days[dayKey(session.CompletedAt)] {
			takenVolume += volume
			taken++
		} else {
			otherVolume += volume
			other++
		}
	}

	result := Correlation{
		Supplement:    supplement,
		TakenSessions: taken,
		OtherSessions: other,
		Params:        map[string]string{"supplement": string(supplement)},
	}
	if taken < minSamplesPerSide || other < minSamplesPerSide || otherVolume == 0 {
		result.ReferenceKey = "supp_effect_early"
		return result
	}

	takenAvg := takenVolume / float64(taken)
	otherAvg := otherVolume / float64(other)
	delta := int((takenAvg - otherAvg) / otherAvg * 100)
	result.DeltaPercent = delta

	if delta > effectThresholdPercent {
		result.ReferenceKey = "supp_effect_up"
		result.Params["percent"] = strconv.Itoa(delta)
		return result
	}
	result.ReferenceKey = "supp_effect_none"
	return result
}

func completedVolume(session history.Session) float64 {
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

func dayKey(t time.Time) string {
	return t.UTC().Format(time.DateOnly)
}
