package main

import (
	"net/http"
	"time"

	"github.com/ironcoach/ironcoach/internal/catalog"
	"github.com/ironcoach/ironcoach/internal/errors"
	"github.com/ironcoach/ironcoach/internal/routine"
)

// routinesGET lists the stored routines.
func (app *application) routinesGET(w http.ResponseWriter, r *http.Request) {
	routines, err := app.coachService.Routines(r.Context())
	if err != nil {
		app.serverError(w, r, err)
		return
	}
	if routines == nil {
		routines = []routine.Routine{}
	}
	app.writeJSON(w, r, http.StatusOK, routines)
}

// routinesPOST stores a custom routine and returns its assigned id.
func (app *application) routinesPOST(w http.ResponseWriter, r *http.Request) {
	var item routine.Routine
	if !app.decodeJSON(w, r, &item) {
		return
	}
	if item.Name == "" {
		app.clientError(w, r, http.StatusBadRequest, "routine name is required")
		return
	}
	id, err := app.coachService.SaveRoutine(r.Context(), item)
	if err != nil {
		app.serverError(w, r, err)
		return
	}
	item.ID = id
	app.writeJSON(w, r, http.StatusCreated, item)
}

type generateRoutineRequest struct {
	Focus string `json:"focus"`
}

// routineGeneratePOST generates a routine for a training focus, preferring
// exercises the user performs often.
func (app *application) routineGeneratePOST(w http.ResponseWriter, r *http.Request) {
	var req generateRoutineRequest
	if !app.decodeJSON(w, r, &req) {
		return
	}

	settings, ok := app.parseSettings(w, r)
	if !ok {
		return
	}

	generated, err := app.coachService.GenerateRoutine(r.Context(), routine.Focus(req.Focus), settings)
	if err != nil {
		if errors.Is(err, routine.ErrUnknownFocus) {
			app.clientError(w, r, http.StatusBadRequest, "unknown training focus")
			return
		}
		app.serverError(w, r, err)
		return
	}
	app.writeJSON(w, r, http.StatusOK, generated)
}

type gapSessionRequest struct {
	Protected []catalog.MuscleGroup `json:"protected,omitempty"`
}

// gapSessionPOST generates a low-risk session scaled to current fatigue.
// Protected muscles are excluded regardless of their freshness.
func (app *application) gapSessionPOST(w http.ResponseWriter, r *http.Request) {
	var req gapSessionRequest
	if !app.decodeJSON(w, r, &req) {
		return
	}

	settings, ok := app.parseSettings(w, r)
	if !ok {
		return
	}

	gap, err := app.coachService.GenerateGapSession(r.Context(), req.Protected, settings, time.Now())
	if err != nil {
		app.serverError(w, r, err)
		return
	}
	app.writeJSON(w, r, http.StatusOK, gap)
}
