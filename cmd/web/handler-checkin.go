package main

import (
	"net/http"
	"time"

	"github.com/ironcoach/ironcoach/internal/contexthelpers"
	"github.com/ironcoach/ironcoach/internal/errors"
	"github.com/ironcoach/ironcoach/internal/i18n"
	"github.com/ironcoach/ironcoach/internal/recommend"
	"github.com/ironcoach/ironcoach/internal/routine"
)

// checkInResponse is the recommendation with its reference keys resolved to
// display text in the session language.
type checkInResponse struct {
	recommend.Recommendation
	Title  string `json:"title"`
	Reason string `json:"reason"`
}

// checkInGET evaluates the recommendation cascade for the current moment.
// The equipment modality and session length come from query parameters; goal
// and experience come from the stored profile.
func (app *application) checkInGET(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	settings, ok := app.parseSettings(w, r)
	if !ok {
		return
	}

	rec, err := app.coachService.CheckIn(ctx, settings, time.Now())
	if err != nil {
		app.serverError(w, r, err)
		return
	}

	lang := contexthelpers.Language(ctx)
	resp := checkInResponse{
		Recommendation: rec,
		Title:          i18n.Translate(lang, rec.TitleKey),
		Reason:         i18n.Format(lang, rec.ReasonKey, rec.ReasonParams),
	}
	app.writeJSON(w, r, http.StatusOK, resp)
}

// parseSettings assembles routine settings from the profile and the
// modality/time query parameters. On an unknown modality it sends HTTP 400
// automatically and returns false.
func (app *application) parseSettings(w http.ResponseWriter, r *http.Request) (routine.Settings, bool) {
	profile, err := app.coachService.Profile(r.Context())
	if err != nil {
		app.serverError(w, r, err)
		return routine.Settings{}, false
	}

	settings := routine.Settings{
		Goal:       profile.GoalOrDefault(),
		Experience: profile.Experience,
		Modality:   routine.ModalityGym,
		Time:       routine.TimeStandard,
	}
	if modality := r.URL.Query().Get("modality"); modality != "" {
		switch routine.Modality(modality) {
		case routine.ModalityGym, routine.ModalityHome, routine.ModalityBodyweight:
			settings.Modality = routine.Modality(modality)
		default:
			app.clientError(w, r, http.StatusBadRequest, "unknown modality")
			return routine.Settings{}, false
		}
	}
	if pref := r.URL.Query().Get("time"); pref != "" {
		switch routine.TimePreference(pref) {
		case routine.TimeShort, routine.TimeStandard, routine.TimeLong:
			settings.Time = routine.TimePreference(pref)
		default:
			app.clientError(w, r, http.StatusBadRequest, "unknown time preference")
			return routine.Settings{}, false
		}
	}
	return settings, true
}

var snoozableKinds = map[recommend.Kind]bool{
	recommend.KindDeload:            true,
	recommend.KindPromotion:         true,
	recommend.KindImbalance:         true,
	recommend.KindStall:             true,
	recommend.KindCircadianNudge:    true,
	recommend.KindEfficiencyWarning: true,
	recommend.KindGoalMismatch:      true,
	recommend.KindDensityWarning:    true,
	recommend.KindVolumePivot:       true,
}

// snoozePOST suppresses a recommendation kind for the snooze window.
func (app *application) snoozePOST(w http.ResponseWriter, r *http.Request) {
	kind := recommend.Kind(r.PathValue("kind"))
	if !snoozableKinds[kind] {
		app.clientError(w, r, http.StatusBadRequest, "kind cannot be snoozed")
		return
	}
	if err := app.coachService.Snooze(r.Context(), kind, time.Now()); err != nil {
		app.serverError(w, r, errors.Wrap(err, "snooze recommendation"))
		return
	}
	app.writeJSON(w, r, http.StatusOK, map[string]string{"snoozed": string(kind)})
}

// freshnessGET reports the current per-muscle freshness scores.
func (app *application) freshnessGET(w http.ResponseWriter, r *http.Request) {
	freshness, err := app.coachService.Freshness(r.Context(), time.Now())
	if err != nil {
		app.serverError(w, r, err)
		return
	}
	app.writeJSON(w, r, http.StatusOK, freshness)
}
