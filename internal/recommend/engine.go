package recommend

import (
	"strconv"
	"time"

	"github.com/ironcoach/ironcoach/internal/catalog"
	"github.com/ironcoach/ironcoach/internal/errors"
	"github.com/ironcoach/ironcoach/internal/fatigue"
	"github.com/ironcoach/ironcoach/internal/history"
	"github.com/ironcoach/ironcoach/internal/routine"
)

// Engine evaluates the check-in cascade. It holds no state between calls;
// every invocation is a pure function of its input and the current time.
type Engine struct {
	catalog   catalog.Catalog
	generator *routine.Generator
}

// NewEngine builds an engine over the catalog. The generator supplies any
// routines attached to recommendations.
func NewEngine(c catalog.Catalog, generator *routine.Generator) *Engine {
	return &Engine{catalog: c, generator: generator}
}

// Input is everything a check-in decision depends on.
type Input struct {
	History  history.History
	Routines []routine.Routine
	Profile  history.Profile
	Settings routine.Settings
	Now      time.Time
}

// detector is one cascade step. A step returns ok=false to pass control to
// the next step.
type detector func(in Input, freshness fatigue.FreshnessMap, systemic fatigue.Systemic) (Recommendation, bool)

// CheckIn runs the cascade and returns exactly one recommendation. The only
// error condition is malformed history, which fails fast instead of
// producing nonsense.
func (e *Engine) CheckIn(in Input) (Recommendation, error) {
	if err := in.History.Validate(); err != nil {
		return Recommendation{}, errors.Wrap(err, "check in")
	}

	freshness := fatigue.Freshness(in.History, e.catalog, in.Profile.GoalOrDefault(), in.Profile, in.Now)
	systemic := fatigue.SystemicFatigue(in.History, e.catalog, in.Now)

	// Fixed priority order. The first matching detector wins; a snoozed
	// kind falls through to the next step.
	cascade := []detector{
		e.trainedToday,
		e.densityWarning,
		e.deload,
		e.stall,
		e.promotion,
		e.imbalance,
		e.goalMismatch,
		e.circadianNudge,
		e.efficiencyWarning,
		e.onboardingRotation,
		e.lowFreshnessRecovery,
		e.groupReadiness,
	}
	for _, step := range cascade {
		rec, ok := step(in, freshness, systemic)
		if !ok {
			continue
		}
		if in.Profile.Snoozed(string(rec.Kind), in.Now) {
			continue
		}
		return rec, nil
	}
	return e.restFallback(in, freshness, systemic), nil
}

// restFallback closes the cascade when no muscle group is ready: a rest
// recommendation with a light generated session attached.
func (e *Engine) restFallback(in Input, freshness fatigue.FreshnessMap, systemic fatigue.Systemic) Recommendation {
	rec := newRecommendation(KindRest, "rec_reason_rest", nil)
	rec.Systemic = &systemic
	if gap, err := e.generator.GenerateGapSession(nil, gapSettings(in), freshness); err == nil {
		rec.Routine = &gap
	}
	return rec
}

// gapSettings fills in defaults so a gap session can always be generated.
func gapSettings(in Input) routine.Settings {
	settings := in.Settings
	if settings.Modality == "" {
		settings.Modality = routine.ModalityGym
	}
	settings.Goal = in.Profile.GoalOrDefault()
	settings.Experience = in.Profile.ExperienceOrDefault()
	return settings
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func formatFloat1(f float64) string {
	return strconv.FormatFloat(f, 'f', 1, 64)
}
