package main

import (
	"net/http"
	"time"

	"github.com/ironcoach/ironcoach/internal/contexthelpers"
	"github.com/ironcoach/ironcoach/internal/i18n"
	"github.com/ironcoach/ironcoach/internal/supplement"
)

// doseResponse is a supplement dose with its reference key resolved to
// display text in the session language.
type doseResponse struct {
	supplement.Dose
	Text string `json:"text"`
}

// supplementPlanGET derives the dosage plan from the stored profile.
func (app *application) supplementPlanGET(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	plan, err := app.coachService.SupplementPlan(ctx)
	if err != nil {
		app.serverError(w, r, err)
		return
	}

	lang := contexthelpers.Language(ctx)
	doses := make([]doseResponse, 0, len(plan))
	for _, dose := range plan {
		doses = append(doses, doseResponse{
			Dose: dose,
			Text: i18n.Format(lang, dose.ReferenceKey, dose.Params),
		})
	}
	app.writeJSON(w, r, http.StatusOK, doses)
}

type intakeRequest struct {
	Supplement supplement.Supplement `json:"supplement"`
	Date       string                `json:"date"`
}

var validSupplements = map[supplement.Supplement]bool{
	supplement.Creatine: true,
	supplement.Protein:  true,
	supplement.Caffeine: true,
}

// supplementIntakePOST logs a supplement intake for a calendar day. An empty
// date means today. Logging the same day twice is a no-op.
func (app *application) supplementIntakePOST(w http.ResponseWriter, r *http.Request) {
	var req intakeRequest
	if !app.decodeJSON(w, r, &req) {
		return
	}
	if !validSupplements[req.Supplement] {
		app.clientError(w, r, http.StatusBadRequest, "unknown supplement")
		return
	}
	date := time.Now()
	if req.Date != "" {
		var err error
		if date, err = time.Parse(time.DateOnly, req.Date); err != nil {
			app.clientError(w, r, http.StatusBadRequest, "date must be formatted as 2006-01-02")
			return
		}
	}
	entry := supplement.Intake{Supplement: req.Supplement, Date: date}
	if err := app.coachService.LogIntake(r.Context(), entry); err != nil {
		app.serverError(w, r, err)
		return
	}
	app.writeJSON(w, r, http.StatusCreated, entry)
}

// correlationResponse is a supplement correlation with its reference key
// resolved to display text in the session language.
type correlationResponse struct {
	supplement.Correlation
	Text string `json:"text"`
}

// supplementReportGET correlates logged intake against training volume.
func (app *application) supplementReportGET(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	report, err := app.coachService.SupplementReport(ctx)
	if err != nil {
		app.serverError(w, r, err)
		return
	}

	lang := contexthelpers.Language(ctx)
	correlations := make([]correlationResponse, 0, len(report))
	for _, correlation := range report {
		correlations = append(correlations, correlationResponse{
			Correlation: correlation,
			Text:        i18n.Format(lang, correlation.ReferenceKey, correlation.Params),
		})
	}
	app.writeJSON(w, r, http.StatusOK, correlations)
}
