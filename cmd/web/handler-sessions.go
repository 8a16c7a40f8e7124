package main

import (
	"net/http"

	"github.com/ironcoach/ironcoach/internal/errors"
	"github.com/ironcoach/ironcoach/internal/history"
)

// sessionsGET lists the workout history, newest first.
func (app *application) sessionsGET(w http.ResponseWriter, r *http.Request) {
	h, err := app.coachService.History(r.Context())
	if err != nil {
		app.serverError(w, r, err)
		return
	}
	if h == nil {
		h = history.History{}
	}
	app.writeJSON(w, r, http.StatusOK, h)
}

// sessionsPOST records a completed workout session.
func (app *application) sessionsPOST(w http.ResponseWriter, r *http.Request) {
	var session history.Session
	if !app.decodeJSON(w, r, &session) {
		return
	}
	id, err := app.coachService.SaveSession(r.Context(), session)
	if err != nil {
		if errors.Is(err, history.ErrSessionEndsBeforeStart) {
			app.clientError(w, r, http.StatusBadRequest, "session ends before it starts")
			return
		}
		app.serverError(w, r, err)
		return
	}
	session.ID = id
	app.writeJSON(w, r, http.StatusCreated, session)
}
