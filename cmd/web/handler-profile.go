package main

import (
	"net/http"

	"github.com/ironcoach/ironcoach/internal/history"
)

// profileGET returns the stored profile.
func (app *application) profileGET(w http.ResponseWriter, r *http.Request) {
	profile, err := app.coachService.Profile(r.Context())
	if err != nil {
		app.serverError(w, r, err)
		return
	}
	app.writeJSON(w, r, http.StatusOK, profile)
}

var (
	validGenders = map[history.Gender]bool{
		"":                        true,
		history.GenderFemale:      true,
		history.GenderMale:        true,
		history.GenderUnspecified: true,
	}
	validGoals = map[history.Goal]bool{
		"":                    true,
		history.GoalStrength:  true,
		history.GoalMuscle:    true,
		history.GoalEndurance: true,
	}
	validExperiences = map[history.Experience]bool{
		"":                             true,
		history.ExperienceBeginner:     true,
		history.ExperienceIntermediate: true,
		history.ExperienceAdvanced:     true,
	}
)

// profilePUT replaces the stored profile. Snoozes are managed through the
// snooze endpoint and ignored here.
func (app *application) profilePUT(w http.ResponseWriter, r *http.Request) {
	var profile history.Profile
	if !app.decodeJSON(w, r, &profile) {
		return
	}
	if !validGenders[profile.Gender] {
		app.clientError(w, r, http.StatusBadRequest, "unknown gender")
		return
	}
	if !validGoals[profile.Goal] {
		app.clientError(w, r, http.StatusBadRequest, "unknown goal")
		return
	}
	if !validExperiences[profile.Experience] {
		app.clientError(w, r, http.StatusBadRequest, "unknown experience level")
		return
	}
	if err := app.coachService.SetProfile(r.Context(), profile); err != nil {
		app.serverError(w, r, err)
		return
	}
	app.writeJSON(w, r, http.StatusOK, profile)
}
