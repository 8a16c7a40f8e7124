package main

import (
	"bytes"
	"net/http"

	"github.com/ironcoach/ironcoach/internal/catalog"
	"github.com/ironcoach/ironcoach/internal/errors"
	"github.com/yuin/goldmark"
)

// exercisesGET lists the exercise catalog.
func (app *application) exercisesGET(w http.ResponseWriter, r *http.Request) {
	app.writeJSON(w, r, http.StatusOK, app.coachService.Catalog().All())
}

// exerciseInfoResponse carries an exercise with its description rendered
// from Markdown to HTML.
type exerciseInfoResponse struct {
	catalog.Exercise
	DescriptionHTML string `json:"description_html"`
}

// exerciseInfoGET serves a single exercise with its rendered description.
func (app *application) exerciseInfoGET(w http.ResponseWriter, r *http.Request) {
	exerciseID, ok := app.parseExerciseIDParam(w, r)
	if !ok {
		return
	}

	exercise, found := app.coachService.Catalog().Get(exerciseID)
	if !found {
		http.NotFound(w, r)
		return
	}

	var rendered bytes.Buffer
	if err := goldmark.Convert([]byte(exercise.DescriptionMarkdown), &rendered); err != nil {
		app.serverError(w, r, errors.Wrap(err, "render exercise description"))
		return
	}

	app.writeJSON(w, r, http.StatusOK, exerciseInfoResponse{
		Exercise:        exercise,
		DescriptionHTML: rendered.String(),
	})
}
